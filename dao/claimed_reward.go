package dao

import (
	"HikariCha/models"
	"context"

	"gorm.io/gorm"
)

type ClaimedRewardDAO struct {
	Repo[models.ClaimedReward]
}

func NewClaimedRewardDAO(db *gorm.DB) *ClaimedRewardDAO {
	return &ClaimedRewardDAO{
		Repo: NewRepo[models.ClaimedReward](db),
	}
}

// Exists 是否已领取过该等级奖励
func (d *ClaimedRewardDAO) Exists(ctx context.Context, userID uint64, achievementType string, level int) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND achievement_type = ? AND achievement_level = ?",
		userID, achievementType, level)
}

// ListByUser 用户领奖历史，按领取时间倒序
func (d *ClaimedRewardDAO) ListByUser(ctx context.Context, userID uint64, limit int) ([]models.ClaimedReward, error) {
	var list []models.ClaimedReward
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("claimed_at DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}
