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
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var _ IAchievementService = (*AchievementService)(nil)

type IAchievementService interface {
	// Evaluate 评估单类成就：对比计数与阈值，结算新完成的等级
	Evaluate(ctx context.Context, userID uint64, t catalog.Type, value int64) (*types.EvaluationResult, error)
	// RecordActivity 行为触发入口：更新计数后评估，引擎异常不向触发方抛出
	RecordActivity(ctx context.Context, userID uint64, action string, durationMinutes int) (*types.TrackActivityResp, error)
	// GetProgress 全量进度快照（只读，带缓存）
	GetProgress(ctx context.Context, userID uint64) (*types.ProgressSnapshot, error)
	// ListActivities 成就相关活动流水，游标分页
	ListActivities(ctx context.Context, userID uint64, cursor int64, limit int) (*types.ListActivitiesResp, error)
	// ListActivitiesSince 指定时间之后的活动流水，按时间升序
	ListActivitiesSince(ctx context.Context, userID uint64, since time.Time) (*types.ListActivitiesResp, error)
}

type AchievementService struct {
	DB           *gorm.DB
	ProgressDAO  *dao.AchievementProgressDAO
	ActivityDAO  *dao.ActivityDAO
	StatsService IStatsService
	Cache        *cache.AchievementCache
}

func (s *AchievementService) Evaluate(ctx context.Context, userID uint64, t catalog.Type, value int64) (*types.EvaluationResult, error) {
	spec, ok := catalog.Lookup(t)
	if !ok {
		return nil, ErrInvalidType
	}
	if value < 0 {
		return nil, ErrInvalidValue
	}

	result := &types.EvaluationResult{NewlyCompleted: make([]types.UnlockedAchievement, 0)}
	dirty := false

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		progressDAO := dao.NewAchievementProgressDAO(tx)
		pointDAO := dao.NewPoint(tx)
		activityDAO := dao.NewActivityDAO(tx)

		// 事务内重读进度，防止并发双触发重复结算
		progress, err := progressDAO.GetByUserAndType(ctx, userID, string(t))
		if err != nil {
			return err
		}
		existed := progress != nil
		if progress == nil {
			progress = &models.AchievementProgress{
				UserID:          userID,
				AchievementType: string(t),
				CompletedLevels: datatypes.NewJSONSlice([]int{}),
				ClaimedLevels:   datatypes.NewJSONSlice([]int{}),
			}
		}

		// 升序扫描：阈值严格递增，一次计数跳变可同时完成多级，但不会跳过校验
		var newly []catalog.Level
		for _, lvl := range spec.Levels {
			if !progress.HasCompleted(lvl.Level) && value >= lvl.TargetValue {
				newly = append(newly, lvl)
			}
		}

		if len(newly) == 0 {
			// 无新完成：仅当已有记录且观测值变化时落一次更新，保证重复调用是真空操作
			if existed && progress.CurrentValue != value {
				progress.CurrentValue = value
				if err := progressDAO.Upsert(ctx, progress); err != nil {
					return err
				}
				dirty = true
			}
			return nil
		}

		completed := append([]int{}, progress.CompletedLevels...)
		maxLevel := progress.CurrentLevel
		var totalPoints int64
		for _, lvl := range newly {
			completed = append(completed, lvl.Level)
			if lvl.Level > maxLevel {
				maxLevel = lvl.Level
			}
			totalPoints += lvl.PointsReward
		}
		progress.CompletedLevels = datatypes.NewJSONSlice(completed)
		progress.CurrentLevel = maxLevel
		progress.CurrentValue = value

		if err := progressDAO.Upsert(ctx, progress); err != nil {
			return err
		}

		// 积分结算：整批一次余额调整，自动开户
		rows, err := pointDAO.AddBalance(ctx, userID, totalPoints)
		if err != nil {
			return err
		}
		if rows == 0 {
			if err := pointDAO.CreateAccount(ctx, userID, totalPoints); err != nil {
				// 并发首次结算时开户可能撞唯一键，归类为可重试
				if dao.IsDuplicateKeyError(err) {
					return ErrTransactionFailure
				}
				return err
			}
		}
		account, err := pointDAO.GetAccount(ctx, userID)
		if err != nil {
			return err
		}

		// 每级一条流水 + 一条活动记录，按等级升序；
		// 流水唯一键 (user, change_type, source_id) 把并发重复结算变成被拒绝的写入
		running := account.Balance - totalPoints
		for _, lvl := range newly {
			running += lvl.PointsReward
			logRecord := &models.PointsLog{
				UserID:     userID,
				Amount:     lvl.PointsReward,
				Balance:    running,
				ChangeType: models.TypeAchievementReward,
				SourceID:   fmt.Sprintf("ach:%s:%d", t, lvl.Level),
				Remark:     fmt.Sprintf("%s Level %d", spec.Name, lvl.Level),
				Status:     1,
			}
			if err := pointDAO.CreatePointLog(ctx, logRecord); err != nil {
				if dao.IsDuplicateKeyError(err) {
					return ErrTransactionFailure
				}
				return err
			}

			activity := &models.Activity{
				ID:          snowflake.GenID(),
				UserID:      userID,
				Type:        models.ActivityAchievementUnlocked,
				Title:       fmt.Sprintf("%s Level %d", spec.Name, lvl.Level),
				Description: fmt.Sprintf("You've unlocked %s Level %d!", spec.Name, lvl.Level),
				Metadata: datatypes.JSONMap{
					"type":          string(t),
					"level":         lvl.Level,
					"points":        lvl.PointsReward,
					"title":         lvl.Title,
					"badge_color":   string(lvl.BadgeColor),
					"current_value": value,
					"target_value":  lvl.TargetValue,
				},
			}
			if err := activityDAO.Create(ctx, activity); err != nil {
				return err
			}

			result.NewlyCompleted = append(result.NewlyCompleted, types.UnlockedAchievement{
				ID:          catalog.FormatAchievementID(t, lvl.Level),
				Type:        string(t),
				Level:       lvl.Level,
				TargetValue: lvl.TargetValue,
				Rewards: types.RewardInfo{
					Points:     lvl.PointsReward,
					Title:      lvl.Title,
					BadgeColor: string(lvl.BadgeColor),
					Icon:       spec.Icon,
				},
			})
		}

		result.TotalPointsAwarded = totalPoints
		dirty = true
		return nil
	})

	if err != nil {
		result.NewlyCompleted = result.NewlyCompleted[:0]
		result.TotalPointsAwarded = 0
		return nil, err
	}

	if dirty && s.Cache != nil {
		if err := s.Cache.InvalidateProgress(ctx, userID); err != nil {
			log.L.Warn("invalidate progress cache", zap.Uint64("user_id", userID), zap.Error(err))
		}
	}

	// 结算后快照：积分等派生计数包含本次入账
	if snap, snapErr := s.StatsService.Snapshot(ctx, userID); snapErr == nil {
		result.UpdatedStats = snap
	} else {
		log.L.Warn("snapshot after evaluate", zap.Uint64("user_id", userID), zap.Error(snapErr))
	}

	return result, nil
}

func (s *AchievementService) RecordActivity(ctx context.Context, userID uint64, action string, durationMinutes int) (*types.TrackActivityResp, error) {
	t, err := s.StatsService.Track(ctx, userID, action, durationMinutes)
	if err != nil {
		return nil, err
	}

	resp := &types.TrackActivityResp{Tracked: true}

	// 成就簿记失败不回滚也不影响触发动作本身，只带标记返回
	evaluation, err := s.evaluateFromSnapshot(ctx, userID, t)
	if err != nil {
		log.L.Error("achievement evaluate failed",
			zap.Uint64("user_id", userID),
			zap.String("action", action),
			zap.String("type", string(t)),
			zap.Error(err),
		)
		resp.AchievementError = err.Error()
		return resp, nil
	}
	resp.Evaluation = evaluation

	// 本次有新完成时级联评估派生计数类成就：
	// 成就猎人按进度行数计，积分猎人按结算后的余额折算
	if len(evaluation.NewlyCompleted) > 0 {
		for _, derived := range []catalog.Type{catalog.AchievementHunter, catalog.PointsHunter} {
			if derived == t {
				continue
			}
			if _, err := s.evaluateFromSnapshot(ctx, userID, derived); err != nil {
				log.L.Error("derived achievement cascade failed",
					zap.Uint64("user_id", userID),
					zap.String("type", string(derived)),
					zap.Error(err),
				)
			}
		}
	}

	return resp, nil
}

func (s *AchievementService) evaluateFromSnapshot(ctx context.Context, userID uint64, t catalog.Type) (*types.EvaluationResult, error) {
	snap, err := s.StatsService.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	value, ok := catalog.CounterValue(t, snap)
	if !ok {
		return nil, ErrInvalidType
	}
	// Evaluate 自带结算后快照，这里不再覆盖
	return s.Evaluate(ctx, userID, t, value)
}

func (s *AchievementService) GetProgress(ctx context.Context, userID uint64) (*types.ProgressSnapshot, error) {
	if s.Cache != nil {
		var cached types.ProgressSnapshot
		if s.Cache.GetProgress(ctx, userID, &cached) {
			return &cached, nil
		}
	}

	snap, err := s.StatsService.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.ProgressDAO.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	byType := make(map[string]*models.AchievementProgress, len(rows))
	for i := range rows {
		byType[rows[i].AchievementType] = &rows[i]
	}

	out := &types.ProgressSnapshot{
		UserID:       userID,
		Achievements: make([]types.TypeProgress, 0, len(catalog.All())),
		Stats:        snap,
	}

	for _, t := range catalog.All() {
		spec, _ := catalog.Lookup(t)
		value, _ := catalog.CounterValue(t, snap)
		progress := byType[string(t)]

		tp := types.TypeProgress{
			Type:         string(t),
			Name:         spec.Name,
			Icon:         spec.Icon,
			Category:     spec.Category,
			CurrentValue: value,
			Levels:       make([]types.LevelProgress, 0, len(spec.Levels)),
		}
		if progress != nil {
			tp.CurrentLevel = progress.CurrentLevel
			tp.TotalCompleted = len(progress.CompletedLevels)
		}

		for _, lvl := range spec.Levels {
			pct := float64(value) / float64(lvl.TargetValue) * 100
			if pct > 100 {
				pct = 100
			}
			lp := types.LevelProgress{
				Level:              lvl.Level,
				TargetValue:        lvl.TargetValue,
				PointsReward:       lvl.PointsReward,
				Title:              lvl.Title,
				BadgeColor:         string(lvl.BadgeColor),
				ProgressPercentage: pct,
			}
			if progress != nil {
				lp.Completed = progress.HasCompleted(lvl.Level)
				lp.Claimed = progress.HasClaimed(lvl.Level)
			}
			tp.Levels = append(tp.Levels, lp)
		}
		out.Achievements = append(out.Achievements, tp)
	}

	if s.Cache != nil {
		if err := s.Cache.SetProgress(ctx, userID, out); err != nil {
			log.L.Warn("set progress cache", zap.Uint64("user_id", userID), zap.Error(err))
		}
	}

	return out, nil
}

func (s *AchievementService) ListActivities(ctx context.Context, userID uint64, cursor int64, limit int) (*types.ListActivitiesResp, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := s.ActivityDAO.ListByUser(ctx, userID, cursor, limit+1)
	if err != nil {
		return nil, err
	}

	resp := &types.ListActivitiesResp{Activities: make([]types.ActivityItem, 0, len(rows))}
	if len(rows) > limit {
		resp.HasMore = true
		rows = rows[:limit]
		resp.NextCursor = rows[len(rows)-1].ID
	}
	for _, row := range rows {
		resp.Activities = append(resp.Activities, activityItem(row))
	}
	return resp, nil
}

func (s *AchievementService) ListActivitiesSince(ctx context.Context, userID uint64, since time.Time) (*types.ListActivitiesResp, error) {
	rows, err := s.ActivityDAO.ListByUserSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	resp := &types.ListActivitiesResp{Activities: make([]types.ActivityItem, 0, len(rows))}
	for _, row := range rows {
		resp.Activities = append(resp.Activities, activityItem(row))
	}
	return resp, nil
}

func activityItem(row models.Activity) types.ActivityItem {
	return types.ActivityItem{
		ID:          row.ID,
		Type:        row.Type,
		Title:       row.Title,
		Description: row.Description,
		Metadata:    row.Metadata,
		CreatedAt:   row.CreatedAt.Format(time.RFC3339),
	}
}
