package types

import "HikariCha/catalog"

// TrackActivityReq 行为上报请求体
type TrackActivityReq struct {
	UserID          uint64 `json:"user_id" binding:"required"`
	Action          string `json:"action" binding:"required"` // post_created / comment_added / ...
	DurationMinutes int    `json:"duration_minutes"`          // 仅 active_hours 使用
}

// EvaluateReq 直接评估请求体：业务方自己维护计数时使用
type EvaluateReq struct {
	UserID uint64 `json:"user_id" binding:"required"`
	Type   string `json:"type" binding:"required"`
	Value  int64  `json:"value"`
}

// RewardInfo 单个等级的奖励快照
type RewardInfo struct {
	Points     int64  `json:"points"`
	Title      string `json:"title"`
	BadgeColor string `json:"badge_color"`
	Icon       string `json:"icon"`
}

// UnlockedAchievement 本次评估新完成的等级
type UnlockedAchievement struct {
	ID          string     `json:"id"` // TYPE_LEVEL
	Type        string     `json:"type"`
	Level       int        `json:"level"`
	TargetValue int64      `json:"target_value"`
	Rewards     RewardInfo `json:"rewards"`
}

// EvaluationResult 评估+结算结果
type EvaluationResult struct {
	NewlyCompleted     []UnlockedAchievement `json:"newly_completed"`
	TotalPointsAwarded int64                 `json:"total_points_awarded"`
	UpdatedStats       catalog.Snapshot      `json:"updated_stats"`
}

// TrackActivityResp 触发类上报的响应：成就异常不会让触发动作失败，
// 失败时 AchievementError 带明确标记
type TrackActivityResp struct {
	Tracked          bool              `json:"tracked"`
	Evaluation       *EvaluationResult `json:"evaluation,omitempty"`
	AchievementError string            `json:"achievement_error,omitempty"`
}

// ClaimReq 领奖请求体
type ClaimReq struct {
	UserID        uint64 `json:"user_id" binding:"required"`
	AchievementID string `json:"achievement_id" binding:"required"` // TYPE_LEVEL
}

// ClaimableAchievement 可领取项：已完成且未领取的等级
type ClaimableAchievement struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Level       int        `json:"level"`
	Rewards     RewardInfo `json:"rewards"`
	CompletedAt string     `json:"completed_at"`
}

// ClaimResult 领奖结果
type ClaimResult struct {
	NewPointsBalance int64      `json:"new_points_balance"`
	Type             string     `json:"type"`
	Level            int        `json:"level"`
	Rewards          RewardInfo `json:"rewards"`
}

// ActivityItem 活动流水视图
type ActivityItem struct {
	ID          int64                  `json:"id"`
	Type        string                 `json:"type"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Metadata    map[string]interface{} `json:"metadata"`
	CreatedAt   string                 `json:"created_at"`
}

// ListActivitiesResp 活动流水列表，游标分页
type ListActivitiesResp struct {
	Activities []ActivityItem `json:"activities"`
	NextCursor int64          `json:"next_cursor"`
	HasMore    bool           `json:"has_more"`
}

// ClaimedRewardItem 领奖历史视图
type ClaimedRewardItem struct {
	ID            string `json:"id"` // TYPE_LEVEL
	Type          string `json:"type"`
	Level         int    `json:"level"`
	PointsAwarded int64  `json:"points_awarded"`
	Title         string `json:"title"`
	BadgeColor    string `json:"badge_color"`
	ClaimedAt     string `json:"claimed_at"`
}

// LevelProgress 单等级进度视图
type LevelProgress struct {
	Level              int     `json:"level"`
	TargetValue        int64   `json:"target_value"`
	PointsReward       int64   `json:"points_reward"`
	Title              string  `json:"title"`
	BadgeColor         string  `json:"badge_color"`
	Completed          bool    `json:"completed"`
	Claimed            bool    `json:"claimed"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

// TypeProgress 单类成就进度视图
type TypeProgress struct {
	Type           string          `json:"type"`
	Name           string          `json:"name"`
	Icon           string          `json:"icon"`
	Category       string          `json:"category"`
	CurrentLevel   int             `json:"current_level"`
	CurrentValue   int64           `json:"current_value"`
	TotalCompleted int             `json:"total_completed"`
	Levels         []LevelProgress `json:"levels"`
}

// ProgressSnapshot 用户全量进度快照（展示用，只读）
type ProgressSnapshot struct {
	UserID       uint64           `json:"user_id"`
	Achievements []TypeProgress   `json:"achievements"`
	Stats        catalog.Snapshot `json:"stats"`
}
