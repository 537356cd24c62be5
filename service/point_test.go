package service

import (
	"HikariCha/catalog"
	"HikariCha/dao"
	"HikariCha/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumePoints_InvalidAmount(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	_, err := s.point.ConsumePoints(ctx, 1, 0, models.TypeRewardRedeem, "order:1", "")
	assert.Error(t, err)
	_, err = s.point.ConsumePoints(ctx, 1, -10, models.TypeRewardRedeem, "order:1", "")
	assert.Error(t, err)
}

func TestConsumePoints_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	require.NoError(t, s.point.PointDAO.CreateAccount(ctx, 1, 50))

	_, err := s.point.ConsumePoints(ctx, 1, 100, models.TypeRewardRedeem, "order:1", "兑换失败")
	assert.Error(t, err)

	// 扣减未生效，也没有流水
	account, err := s.point.PointDAO.GetAccount(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 50, account.Balance)

	var logCount int64
	s.db.Model(&models.PointsLog{}).Count(&logCount)
	assert.Zero(t, logCount)
}

func TestConsumePoints_Success(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	require.NoError(t, s.point.PointDAO.CreateAccount(ctx, 1, 200))

	account, err := s.point.ConsumePoints(ctx, 1, 80, models.TypeRewardRedeem, "order:1", "兑换茶具")
	require.NoError(t, err)
	assert.EqualValues(t, 120, account.Balance)
	assert.EqualValues(t, 80, account.TotalUsed)

	var logs []models.PointsLog
	require.NoError(t, s.db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.EqualValues(t, -80, logs[0].Amount)
	assert.EqualValues(t, 120, logs[0].Balance)
	assert.Equal(t, "order:1", logs[0].SourceID)
}

// 同一业务单号只结算一次
func TestConsumePoints_Idempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	require.NoError(t, s.point.PointDAO.CreateAccount(ctx, 1, 200))

	_, err := s.point.ConsumePoints(ctx, 1, 80, models.TypeRewardRedeem, "order:1", "")
	require.NoError(t, err)

	_, err = s.point.ConsumePoints(ctx, 1, 80, models.TypeRewardRedeem, "order:1", "")
	assert.Error(t, err)

	account, err := s.point.PointDAO.GetAccount(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 120, account.Balance)
}

// 重复开户必须命中唯一键并被归类为重复键错误，
// 并发首次结算的败者据此拿到可重试错误而不是裸 500
func TestCreateAccount_DuplicateMapped(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	require.NoError(t, s.point.PointDAO.CreateAccount(ctx, 1, 100))

	err := s.point.PointDAO.CreateAccount(ctx, 1, 100)
	require.Error(t, err)
	assert.True(t, dao.IsDuplicateKeyError(err))
}

func TestGetAccountDashboard_NewUser(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	account, err := s.point.GetAccountDashboard(ctx, 404)
	require.NoError(t, err)
	assert.Zero(t, account.Balance)
	assert.Zero(t, account.TotalEarned)
}

// 成就结算与兑换扣减混合后的流水查询
func TestListPointRecords(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	_, err := s.achievement.Evaluate(ctx, 1, catalog.PostMaster, 5)
	require.NoError(t, err)
	_, err = s.point.ConsumePoints(ctx, 1, 30, models.TypeRewardRedeem, "order:1", "兑换")
	require.NoError(t, err)

	all, err := s.point.ListPointRecords(ctx, 1, "", 0, 10)
	require.NoError(t, err)
	require.Len(t, all.Records, 3)
	assert.False(t, all.HasMore)
	// ID 倒序：最新的扣减在最前
	assert.Equal(t, "EXPENSE", all.Records[0].OrderType)
	assert.EqualValues(t, -30, all.Records[0].Amount)

	income, err := s.point.ListPointRecords(ctx, 1, "income", 0, 10)
	require.NoError(t, err)
	require.Len(t, income.Records, 2)
	for _, r := range income.Records {
		assert.Equal(t, "INCOME", r.OrderType)
	}

	expense, err := s.point.ListPointRecords(ctx, 1, "expense", 0, 10)
	require.NoError(t, err)
	require.Len(t, expense.Records, 1)

	// 游标分页
	page1, err := s.point.ListPointRecords(ctx, 1, "", 0, 2)
	require.NoError(t, err)
	require.Len(t, page1.Records, 2)
	assert.True(t, page1.HasMore)

	page2, err := s.point.ListPointRecords(ctx, 1, "", page1.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, page2.Records, 1)
	assert.False(t, page2.HasMore)
}
