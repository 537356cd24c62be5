package models

import (
	"time"

	"gorm.io/datatypes"
)

// AchievementProgress 用户单类成就的进度记录，(user_id, achievement_type) 唯一
// 只增不删：completed_levels / claimed_levels 单调增长
type AchievementProgress struct {
	ID              uint64                   `gorm:"primaryKey;column:id"`
	UserID          uint64                   `gorm:"column:user_id;not null;uniqueIndex:uk_user_type"`
	AchievementType string                   `gorm:"column:achievement_type;size:64;not null;uniqueIndex:uk_user_type"`
	CurrentLevel    int                      `gorm:"column:current_level;not null;default:0"` // 已达到的最高等级
	CurrentValue    int64                    `gorm:"column:current_value;not null;default:0"` // 最近一次观测到的计数值
	CompletedLevels datatypes.JSONSlice[int] `gorm:"column:completed_levels"`
	ClaimedLevels   datatypes.JSONSlice[int] `gorm:"column:claimed_levels"`
	CreatedAt       time.Time                `gorm:"column:created_at"`
	UpdatedAt       time.Time                `gorm:"column:updated_at"`
}

func (AchievementProgress) TableName() string {
	return "user_achievement_progress"
}

// HasCompleted 等级是否已完成
func (p *AchievementProgress) HasCompleted(level int) bool {
	for _, l := range p.CompletedLevels {
		if l == level {
			return true
		}
	}
	return false
}

// HasClaimed 等级奖励是否已领取
func (p *AchievementProgress) HasClaimed(level int) bool {
	for _, l := range p.ClaimedLevels {
		if l == level {
			return true
		}
	}
	return false
}

// ClaimedReward 领奖审计记录，(user_id, achievement_type, achievement_level) 唯一，
// 重复领取靠该约束拒绝而不是覆盖
type ClaimedReward struct {
	ID               int64     `gorm:"primaryKey;column:id"` // snowflake ID
	UserID           uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_user_type_level"`
	AchievementType  string    `gorm:"column:achievement_type;size:64;not null;uniqueIndex:uk_user_type_level"`
	AchievementLevel int       `gorm:"column:achievement_level;not null;uniqueIndex:uk_user_type_level"`
	PointsAwarded    int64     `gorm:"column:points_awarded;not null;default:0"` // 完成时结算积分的快照
	TitleReward      string    `gorm:"column:title_reward;size:64"`
	BadgeColor       string    `gorm:"column:badge_color;size:16"`
	ClaimedAt        time.Time `gorm:"column:claimed_at;autoCreateTime"`
}

func (ClaimedReward) TableName() string {
	return "claimed_achievement_rewards"
}
