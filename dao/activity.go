package dao

import (
	"HikariCha/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type ActivityDAO struct {
	Repo[models.Activity]
}

func NewActivityDAO(db *gorm.DB) *ActivityDAO {
	return &ActivityDAO{
		Repo: NewRepo[models.Activity](db),
	}
}

// ListByUser 游标分页查询用户活动流水，按 ID 倒序
func (d *ActivityDAO) ListByUser(ctx context.Context, userID uint64, cursor int64, limit int) ([]models.Activity, error) {
	var list []models.Activity
	query := d.Db.WithContext(ctx).Where("user_id = ?", userID)
	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}
	err := query.Order("id DESC").Limit(limit).Find(&list).Error
	return list, err
}

// ListByUserSince 按时间范围查询
func (d *ActivityDAO) ListByUserSince(ctx context.Context, userID uint64, since time.Time) ([]models.Activity, error) {
	var list []models.Activity
	err := d.Db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

