package dao

import (
	"HikariCha/models"
	"context"

	"gorm.io/gorm"
)

type Point struct {
	Repo[models.UserPoint]
}

func NewPoint(db *gorm.DB) *Point {
	return &Point{
		Repo: NewRepo[models.UserPoint](db),
	}
}

// CheckLogExists 幂等检查：同一业务单号是否已结算过
func (p *Point) CheckLogExists(ctx context.Context, userID uint64, sourceID string, changeType int) (bool, error) {
	var count int64
	err := p.Db.WithContext(ctx).Model(&models.PointsLog{}).
		Where("user_id = ? AND source_id = ? AND change_type = ?", userID, sourceID, changeType).
		Count(&count).Error
	return count > 0, err
}

// GetAccount 获取账户信息
func (p *Point) GetAccount(ctx context.Context, userID uint64) (*models.UserPoint, error) {
	var account models.UserPoint
	err := p.Db.WithContext(ctx).Where("user_id = ?", userID).First(&account).Error
	return &account, err
}

// CreateAccount 初始化账户（针对新用户）
func (p *Point) CreateAccount(ctx context.Context, userID uint64, initialPoints int64) error {
	newAccount := &models.UserPoint{
		UserID:      userID,
		Balance:     initialPoints,
		TotalEarned: uint64(initialPoints),
		TotalUsed:   0,
	}
	return p.Db.WithContext(ctx).Create(newAccount).Error
}

func (p *Point) CreatePointLog(ctx context.Context, log *models.PointsLog) error {
	return p.Db.WithContext(ctx).Create(log).Error
}

// AddBalance 入账：余额与累计获得原子加
func (p *Point) AddBalance(ctx context.Context, userID uint64, amount int64) (int64, error) {
	result := p.Db.WithContext(ctx).Model(&models.UserPoint{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			// gorm.Expr 保证并发下的原子加减
			"balance":      gorm.Expr("balance + ?", amount),
			"total_earned": gorm.Expr("total_earned + ?", amount),
		})

	// 受影响行数为 0 表示需要自动开户
	return result.RowsAffected, result.Error
}

// SpendBalance 支出：余额减、累计使用加，余额不足时不生效
func (p *Point) SpendBalance(ctx context.Context, userID uint64, amount int64) (int64, error) {
	result := p.Db.WithContext(ctx).Model(&models.UserPoint{}).
		Where("user_id = ? AND balance >= ?", userID, amount).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance - ?", amount),
			"total_used": gorm.Expr("total_used + ?", amount),
		})
	return result.RowsAffected, result.Error
}

// GetPendingStats 统计待入账数据
func (p *Point) GetPendingStats(ctx context.Context, userID uint64) (count int64, amount int64, err error) {
	var res struct {
		Count  int64
		Amount int64
	}
	err = p.Db.WithContext(ctx).Model(&models.PointsLog{}).
		Select("COUNT(*) AS count, IFNULL(SUM(amount), 0) AS amount").
		Where("user_id = ? AND status = ?", userID, 0).
		Scan(&res).Error
	return res.Count, res.Amount, err
}

// ListRecords 分页筛选查询
func (p *Point) ListRecords(ctx context.Context, userID uint64, action string, cursor int64, limit int) ([]models.PointsLog, error) {
	var logs []models.PointsLog
	query := p.Db.WithContext(ctx).Where("user_id = ?", userID)

	switch action {
	case "income":
		query = query.Where("amount > ?", 0)
	case "expense":
		query = query.Where("amount < ?", 0)
	}

	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}

	err := query.Order("id DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
