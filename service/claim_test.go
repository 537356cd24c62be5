package service

import (
	"HikariCha/catalog"
	"HikariCha/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 完成 POST_MASTER 1、2 级并结算 75 积分，作为领奖测试的前置状态
func completePostMaster(t *testing.T, s *testServices) {
	t.Helper()
	result, err := s.achievement.Evaluate(context.Background(), 1, catalog.PostMaster, 5)
	require.NoError(t, err)
	require.Len(t, result.NewlyCompleted, 2)
}

func TestListClaimable(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	completePostMaster(t, s)

	list, err := s.claim.ListClaimable(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "POST_MASTER_1", list[0].ID)
	assert.Equal(t, "POST_MASTER_2", list[1].ID)
	assert.Equal(t, 1, list[0].Level)
	assert.EqualValues(t, 25, list[0].Rewards.Points)
	assert.Equal(t, "Novice Poster", list[0].Rewards.Title)
	assert.NotEmpty(t, list[0].CompletedAt)
}

func TestListClaimable_EmptyUser(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	list, err := s.claim.ListClaimable(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, list)
}

// 领取只发称号徽章，积分在完成时已入账，余额保持不变
func TestClaim_Success(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	completePostMaster(t, s)

	result, err := s.claim.Claim(ctx, 1, "POST_MASTER_1")
	require.NoError(t, err)
	assert.Equal(t, "POST_MASTER", result.Type)
	assert.Equal(t, 1, result.Level)
	assert.Zero(t, result.Rewards.Points)
	assert.Equal(t, "Novice Poster", result.Rewards.Title)
	assert.Equal(t, "bronze", result.Rewards.BadgeColor)
	assert.EqualValues(t, 75, result.NewPointsBalance)

	progress, err := s.claim.ProgressDAO.GetByUserAndType(ctx, 1, "POST_MASTER")
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1}, []int(progress.ClaimedLevels))

	// 审计行带完成时积分快照
	var claimed []models.ClaimedReward
	require.NoError(t, s.db.Find(&claimed).Error)
	require.Len(t, claimed, 1)
	assert.EqualValues(t, 25, claimed[0].PointsAwarded)
	assert.Equal(t, "Novice Poster", claimed[0].TitleReward)

	var activityCount int64
	s.db.Model(&models.Activity{}).
		Where("type = ?", models.ActivityRewardClaimed).
		Count(&activityCount)
	assert.EqualValues(t, 1, activityCount)

	// 已领取的等级从可领取列表消失
	list, err := s.claim.ListClaimable(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "POST_MASTER_2", list[0].ID)
}

func TestClaim_InvalidID(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	_, err := s.claim.Claim(ctx, 1, "NOT_AN_ID")
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = s.claim.Claim(ctx, 1, "POST_MASTER_11")
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestClaim_NotCompleted(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	completePostMaster(t, s)

	_, err := s.claim.Claim(ctx, 1, "POST_MASTER_5")
	assert.ErrorIs(t, err, ErrNotCompleted)

	// 没有任何进度的用户同样拒绝
	_, err = s.claim.Claim(ctx, 99, "POST_MASTER_1")
	assert.ErrorIs(t, err, ErrNotCompleted)
}

func TestClaim_AlreadyClaimed(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	completePostMaster(t, s)

	_, err := s.claim.Claim(ctx, 1, "POST_MASTER_1")
	require.NoError(t, err)

	_, err = s.claim.Claim(ctx, 1, "POST_MASTER_1")
	assert.ErrorIs(t, err, ErrAlreadyClaimed)

	// 重复领取不产生第二条审计行，余额不变
	var claimedCount int64
	s.db.Model(&models.ClaimedReward{}).Count(&claimedCount)
	assert.EqualValues(t, 1, claimedCount)

	account, err := s.claim.PointDAO.GetAccount(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 75, account.Balance)
}

// JSON 集合丢失时，审计行唯一键仍然拦住重复领取
func TestClaim_UniqueKeyBackstop(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	completePostMaster(t, s)

	_, err := s.claim.Claim(ctx, 1, "POST_MASTER_1")
	require.NoError(t, err)

	// 人为清空 claimed_levels，模拟快路径失效
	require.NoError(t, s.claim.ProgressDAO.UpdateClaimedLevels(ctx, 1, "POST_MASTER", []int{}))

	_, err = s.claim.Claim(ctx, 1, "POST_MASTER_1")
	assert.ErrorIs(t, err, ErrAlreadyClaimed)
}

func TestClaimHistory(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	completePostMaster(t, s)

	_, err := s.claim.Claim(ctx, 1, "POST_MASTER_1")
	require.NoError(t, err)
	_, err = s.claim.Claim(ctx, 1, "POST_MASTER_2")
	require.NoError(t, err)

	history, err := s.claim.ClaimHistory(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	for _, item := range history {
		assert.Equal(t, "POST_MASTER", item.Type)
		assert.NotEmpty(t, item.ClaimedAt)
	}
}
