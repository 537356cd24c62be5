package service

import (
	"HikariCha/catalog"
	"HikariCha/dao"
	"HikariCha/dao/cache"
	"HikariCha/models"
	"HikariCha/pkg/log"
	"HikariCha/pkg/snowflake"
	"HikariCha/types"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var _ IClaimService = (*ClaimService)(nil)

type IClaimService interface {
	// ListClaimable 已完成且未领取的等级清单
	ListClaimable(ctx context.Context, userID uint64) ([]types.ClaimableAchievement, error)
	// Claim 领取单个等级的称号与徽章，积分在完成时已结算，这里不再发放
	Claim(ctx context.Context, userID uint64, achievementID string) (*types.ClaimResult, error)
	// ClaimHistory 领奖历史，按领取时间倒序
	ClaimHistory(ctx context.Context, userID uint64, limit int) ([]types.ClaimedRewardItem, error)
}

type ClaimService struct {
	DB          *gorm.DB
	ProgressDAO *dao.AchievementProgressDAO
	ClaimedDAO  *dao.ClaimedRewardDAO
	PointDAO    *dao.Point
	Cache       *cache.AchievementCache
}

func (s *ClaimService) ListClaimable(ctx context.Context, userID uint64) ([]types.ClaimableAchievement, error) {
	rows, err := s.ProgressDAO.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	byType := make(map[string]*models.AchievementProgress, len(rows))
	for i := range rows {
		byType[rows[i].AchievementType] = &rows[i]
	}

	// 按目录固定顺序输出：类型序 + 等级升序
	out := make([]types.ClaimableAchievement, 0)
	for _, t := range catalog.All() {
		progress := byType[string(t)]
		if progress == nil {
			continue
		}
		spec, _ := catalog.Lookup(t)
		for _, lvl := range spec.Levels {
			if !progress.HasCompleted(lvl.Level) || progress.HasClaimed(lvl.Level) {
				continue
			}
			out = append(out, types.ClaimableAchievement{
				ID:          catalog.FormatAchievementID(t, lvl.Level),
				Type:        string(t),
				Title:       spec.Name,
				Description: spec.Description,
				Level:       lvl.Level,
				Rewards: types.RewardInfo{
					Points:     lvl.PointsReward,
					Title:      lvl.Title,
					BadgeColor: string(lvl.BadgeColor),
					Icon:       spec.Icon,
				},
				CompletedAt: progress.UpdatedAt.Format(time.RFC3339),
			})
		}
	}
	return out, nil
}

func (s *ClaimService) Claim(ctx context.Context, userID uint64, achievementID string) (*types.ClaimResult, error) {
	t, level, err := catalog.ParseAchievementID(achievementID)
	if err != nil {
		return nil, ErrInvalidType
	}
	spec, _ := catalog.Lookup(t)
	reward, _ := catalog.RewardFor(t, level)

	result := &types.ClaimResult{
		Type:  string(t),
		Level: level,
		Rewards: types.RewardInfo{
			// 积分已在完成结算时一次性入账，领取只发称号和徽章
			Points:     0,
			Title:      reward.Title,
			BadgeColor: string(reward.BadgeColor),
			Icon:       spec.Icon,
		},
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		progressDAO := dao.NewAchievementProgressDAO(tx)
		claimedDAO := dao.NewClaimedRewardDAO(tx)
		activityDAO := dao.NewActivityDAO(tx)

		progress, err := progressDAO.GetByUserAndType(ctx, userID, string(t))
		if err != nil {
			return err
		}
		if progress == nil || !progress.HasCompleted(level) {
			return ErrNotCompleted
		}
		if progress.HasClaimed(level) {
			return ErrAlreadyClaimed
		}
		exists, err := claimedDAO.Exists(ctx, userID, string(t), level)
		if err != nil {
			return err
		}
		if exists {
			return ErrAlreadyClaimed
		}

		// 审计行的唯一键是最终裁判，JSON 集合只是快路径
		record := &models.ClaimedReward{
			ID:               snowflake.GenID(),
			UserID:           userID,
			AchievementType:  string(t),
			AchievementLevel: level,
			PointsAwarded:    reward.PointsReward,
			TitleReward:      reward.Title,
			BadgeColor:       string(reward.BadgeColor),
		}
		if err := claimedDAO.Create(ctx, record); err != nil {
			if dao.IsDuplicateKeyError(err) {
				return ErrAlreadyClaimed
			}
			return err
		}

		claimed := append([]int(progress.ClaimedLevels), level)
		if err := progressDAO.UpdateClaimedLevels(ctx, userID, string(t), claimed); err != nil {
			return err
		}

		activity := &models.Activity{
			ID:          snowflake.GenID(),
			UserID:      userID,
			Type:        models.ActivityRewardClaimed,
			Title:       fmt.Sprintf("%s Level %d", spec.Name, level),
			Description: fmt.Sprintf("Claimed reward for %s Level %d", spec.Name, level),
			Metadata: datatypes.JSONMap{
				"type":        string(t),
				"level":       level,
				"title":       reward.Title,
				"badge_color": string(reward.BadgeColor),
			},
		}
		return activityDAO.Create(ctx, activity)
	})
	if err != nil {
		return nil, err
	}

	account, err := s.PointDAO.GetAccount(ctx, userID)
	if err == nil {
		result.NewPointsBalance = account.Balance
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.InvalidateProgress(ctx, userID); err != nil {
			log.L.Warn("invalidate progress cache", zap.Uint64("user_id", userID), zap.Error(err))
		}
	}

	return result, nil
}

func (s *ClaimService) ClaimHistory(ctx context.Context, userID uint64, limit int) ([]types.ClaimedRewardItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	rows, err := s.ClaimedDAO.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]types.ClaimedRewardItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, types.ClaimedRewardItem{
			ID:            catalog.FormatAchievementID(catalog.Type(row.AchievementType), row.AchievementLevel),
			Type:          row.AchievementType,
			Level:         row.AchievementLevel,
			PointsAwarded: row.PointsAwarded,
			Title:         row.TitleReward,
			BadgeColor:    row.BadgeColor,
			ClaimedAt:     row.ClaimedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}
