package dao

import (
	"HikariCha/models"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 可自增的计数列白名单，防止拼接任意列名
var statColumns = map[string]struct{}{
	"post_count":           {},
	"comment_count":        {},
	"follower_count":       {},
	"friend_count":         {},
	"forum_post_count":     {},
	"forum_comment_count":  {},
	"forum_like_count":     {},
	"recipe_count":         {},
	"recipe_like_count":    {},
	"matcha_recipe_count":  {},
	"active_hours_count":   {},
	"helpful_action_count": {},
	"trending_post_count":  {},
	"border_count":         {},
}

type UserStatsDAO struct {
	Repo[models.UserStats]
}

func NewUserStatsDAO(db *gorm.DB) *UserStatsDAO {
	return &UserStatsDAO{
		Repo: NewRepo[models.UserStats](db),
	}
}

// GetOrCreate 获取或创建用户统计
func (d *UserStatsDAO) GetOrCreate(ctx context.Context, userID uint64) (*models.UserStats, error) {
	stats := &models.UserStats{UserID: userID}
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		FirstOrCreate(stats).Error
	return stats, err
}

// Incr 指定计数列原子自增，行不存在时自动建行
func (d *UserStatsDAO) Incr(ctx context.Context, userID uint64, column string, delta int64) error {
	if _, ok := statColumns[column]; !ok {
		return fmt.Errorf("dao.UserStats.Incr: 非法计数列 %s", column)
	}
	now := time.Now()
	stats := &models.UserStats{UserID: userID, CreatedAt: now, UpdatedAt: now}
	return d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				column:       gorm.Expr(column+" + ?", delta),
				"updated_at": now,
			}),
		}).
		Create(setStatColumn(stats, column, delta)).Error
}

// TouchDailyVisit 每日访问计数，同一自然日只生效一次
// 返回是否真正自增
func (d *UserStatsDAO) TouchDailyVisit(ctx context.Context, userID uint64) (bool, error) {
	if _, err := d.GetOrCreate(ctx, userID); err != nil {
		return false, err
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	result := d.Db.WithContext(ctx).Model(&models.UserStats{}).
		Where("user_id = ? AND (last_active_date IS NULL OR last_active_date < ?)", userID, today).
		Updates(map[string]interface{}{
			"active_days_count": gorm.Expr("active_days_count + ?", 1),
			"last_active_date":  today,
			"updated_at":        now,
		})
	return result.RowsAffected > 0, result.Error
}

// GetByUserID 根据用户ID获取统计
func (d *UserStatsDAO) GetByUserID(ctx context.Context, userID uint64) (*models.UserStats, error) {
	var stats models.UserStats
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&stats).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &stats, err
}

// setStatColumn 新建行时把首个增量写进对应字段
func setStatColumn(stats *models.UserStats, column string, delta int64) *models.UserStats {
	if delta < 0 {
		delta = 0
	}
	v := uint32(delta)
	switch column {
	case "post_count":
		stats.PostCount = v
	case "comment_count":
		stats.CommentCount = v
	case "follower_count":
		stats.FollowerCount = v
	case "friend_count":
		stats.FriendCount = v
	case "forum_post_count":
		stats.ForumPostCount = v
	case "forum_comment_count":
		stats.ForumCommentCount = v
	case "forum_like_count":
		stats.ForumLikeCount = v
	case "recipe_count":
		stats.RecipeCount = v
	case "recipe_like_count":
		stats.RecipeLikeCount = v
	case "matcha_recipe_count":
		stats.MatchaRecipeCount = v
	case "active_hours_count":
		stats.ActiveHoursCount = v
	case "helpful_action_count":
		stats.HelpfulActionCount = v
	case "trending_post_count":
		stats.TrendingPostCount = v
	case "border_count":
		stats.BorderCount = v
	}
	return stats
}
