package models

import (
	"time"

	"gorm.io/datatypes"
)

// 活动流水类型
const (
	ActivityAchievementUnlocked = "ACHIEVEMENT_UNLOCKED"
	ActivityRewardClaimed       = "ACHIEVEMENT_REWARD_CLAIMED"
)

// Activity 只追加的活动审计流水，写入后不再修改
type Activity struct {
	ID          int64             `gorm:"primaryKey;column:id"` // snowflake ID
	UserID      uint64            `gorm:"column:user_id;not null;index:idx_user_created,priority:1"`
	Type        string            `gorm:"column:type;size:64;not null"`
	Title       string            `gorm:"column:title;size:255"`
	Description string            `gorm:"column:description;size:512"`
	Metadata    datatypes.JSONMap `gorm:"column:metadata"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime;index:idx_user_created,priority:2"`
}

func (Activity) TableName() string {
	return "activity"
}
