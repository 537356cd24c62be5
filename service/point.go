package service

import (
	"HikariCha/dao"
	"HikariCha/models"
	"HikariCha/types"
	"context"
	"errors"

	"gorm.io/gorm"
)

var _ IPointService = (*PointService)(nil)

type IPointService interface {
	// ConsumePoints 奖励兑换等支出场景的扣减，带业务单号幂等
	ConsumePoints(ctx context.Context, userID uint64, amount int64, changeType int, sourceID string, remark string) (*types.PointsAccount, error)

	// 查询
	GetAccountDashboard(ctx context.Context, userID uint64) (*types.PointsAccount, error)
	ListPointRecords(ctx context.Context, userID uint64, action string, cursor int64, limit int) (*types.ListPointsRecord, error)
}

type PointService struct {
	DB       *gorm.DB
	PointDAO *dao.Point
}

func (p *PointService) ConsumePoints(ctx context.Context, userID uint64, amount int64, changeType int, sourceID string, remark string) (*types.PointsAccount, error) {
	if amount <= 0 {
		return nil, errors.New("消费积分数额必须大于0")
	}

	var finalAccount models.UserPoint

	err := p.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pointDAO := dao.NewPoint(tx)

		// 1. 幂等检查
		exists, err := pointDAO.CheckLogExists(ctx, userID, sourceID, changeType)
		if err != nil {
			return errors.New("检查积分变动记录失败: " + err.Error())
		}
		if exists {
			return errors.New("该业务已处理，请勿重复操作")
		}

		// 2. 条件扣减：余额不足时更新不生效
		rows, err := pointDAO.SpendBalance(ctx, userID, amount)
		if err != nil {
			return errors.New("更新用户积分余额失败: " + err.Error())
		}
		if rows == 0 {
			return errors.New("积分余额不足")
		}

		account, err := pointDAO.GetAccount(ctx, userID)
		if err != nil {
			return errors.New("查询积分账户失败: " + err.Error())
		}
		finalAccount = *account

		// 3. 记录积分变动日志
		logRecord := &models.PointsLog{
			UserID:     userID,
			Amount:     -amount,
			Balance:    account.Balance,
			ChangeType: int8(changeType),
			SourceID:   sourceID,
			Remark:     remark,
			Status:     1,
		}
		if err := pointDAO.CreatePointLog(ctx, logRecord); err != nil {
			if dao.IsDuplicateKeyError(err) {
				return errors.New("该业务已处理，请勿重复操作")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &types.PointsAccount{
		Balance:     finalAccount.Balance,
		TotalEarned: int64(finalAccount.TotalEarned),
		TotalUsed:   int64(finalAccount.TotalUsed),
	}, nil
}

func (p *PointService) GetAccountDashboard(ctx context.Context, userID uint64) (*types.PointsAccount, error) {
	account, err := p.PointDAO.GetAccount(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 没记录说明是新用户，返回初始状态
			return &types.PointsAccount{}, nil
		}
		return nil, errors.New("查询积分账户失败")
	}
	pCount, pAmount, err := p.PointDAO.GetPendingStats(ctx, userID)
	if err != nil {
		pCount, pAmount = 0, 0
	}
	return &types.PointsAccount{
		Balance:       account.Balance,
		TotalEarned:   int64(account.TotalEarned),
		TotalUsed:     int64(account.TotalUsed),
		PendingCount:  pCount,
		PendingAmount: pAmount,
	}, nil
}

func (p *PointService) ListPointRecords(ctx context.Context, userID uint64, action string, cursor int64, limit int) (*types.ListPointsRecord, error) {
	logs, err := p.PointDAO.ListRecords(ctx, userID, action, cursor, limit+1)
	if err != nil {
		return nil, errors.New("查询积分流水失败")
	}

	resp := &types.ListPointsRecord{
		Records: make([]types.PointRecord, 0),
		HasMore: false,
	}

	if len(logs) > limit {
		resp.HasMore = true
		logs = logs[:limit]
		resp.NextCursor = int64(logs[len(logs)-1].ID)
	}

	for _, l := range logs {
		orderType := "INCOME"
		if l.Amount < 0 {
			orderType = "EXPENSE"
		}
		resp.Records = append(resp.Records, types.PointRecord{
			ID:          int64(l.ID),
			Amount:      l.Amount,
			Balance:     l.Balance,
			Description: l.Remark,
			OrderType:   orderType,
			Status:      int(l.Status),
			CreatedAt:   l.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return resp, nil
}
