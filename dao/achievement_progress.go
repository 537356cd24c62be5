package dao

import (
	"HikariCha/models"
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementProgressDAO struct {
	Repo[models.AchievementProgress]
}

func NewAchievementProgressDAO(db *gorm.DB) *AchievementProgressDAO {
	return &AchievementProgressDAO{
		Repo: NewRepo[models.AchievementProgress](db),
	}
}

// GetByUserAndType 查询单条进度，无记录返回 nil
func (d *AchievementProgressDAO) GetByUserAndType(ctx context.Context, userID uint64, achievementType string) (*models.AchievementProgress, error) {
	var progress models.AchievementProgress
	err := d.Db.WithContext(ctx).
		Where("user_id = ? AND achievement_type = ?", userID, achievementType).
		First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// ListByUser 查询用户全部进度记录
func (d *AchievementProgressDAO) ListByUser(ctx context.Context, userID uint64) ([]models.AchievementProgress, error) {
	var list []models.AchievementProgress
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("achievement_type ASC").
		Find(&list).Error
	return list, err
}

// CountByUser 用户已有进度记录条数（ACHIEVEMENT_HUNTER 的计数来源）
func (d *AchievementProgressDAO) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.AchievementProgress{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// Upsert 按 (user_id, achievement_type) 写入或更新进度
func (d *AchievementProgressDAO) Upsert(ctx context.Context, progress *models.AchievementProgress) error {
	return d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "achievement_type"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"current_level", "current_value", "completed_levels", "claimed_levels", "updated_at",
			}),
		}).
		Create(progress).Error
}

// UpdateClaimedLevels 领奖流程只动 claimed_levels
func (d *AchievementProgressDAO) UpdateClaimedLevels(ctx context.Context, userID uint64, achievementType string, claimed []int) error {
	return d.Db.WithContext(ctx).Model(&models.AchievementProgress{}).
		Where("user_id = ? AND achievement_type = ?", userID, achievementType).
		Update("claimed_levels", datatypes.NewJSONSlice(claimed)).Error
}
