package models

import "time"

type UserPoint struct {
	ID          uint64    `gorm:"primaryKey;column:id"`
	UserID      uint64    `gorm:"column:user_id;uniqueIndex"`
	Balance     int64     `gorm:"column:balance;default:0"`
	TotalEarned uint64    `gorm:"column:total_earned;default:0"`
	TotalUsed   uint64    `gorm:"column:total_used;default:0"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (UserPoint) TableName() string {
	return "user_points"
}

// 积分变动类型常量定义
const (
	// 收入类
	TypeAchievementReward = 1 // 成就完成结算
	TypeSystemCompensate  = 2 // 系统/人工补偿

	// 支出类
	TypeRewardRedeem = 10 // 奖励兑换扣减
)

type PointsLog struct {
	ID         uint64    `gorm:"primaryKey;column:id"`
	UserID     uint64    `gorm:"column:user_id;uniqueIndex:uk_user_source"`
	Amount     int64     `gorm:"column:amount"`  // 变动数额（正负）
	Balance    int64     `gorm:"column:balance"` // 变动后余额
	ChangeType int8      `gorm:"column:change_type;uniqueIndex:uk_user_source"`
	Status     int8      `gorm:"column:status"` // 0-待入账, 1-正式入账
	// 唯一业务单号：同一 (user, change_type, source_id) 只允许结算一次，
	// 并发重复结算会被唯一键拒绝
	SourceID  string    `gorm:"column:source_id;uniqueIndex:uk_user_source;size:64"`
	Remark    string    `gorm:"column:remark;size:255"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName 指定表名
func (PointsLog) TableName() string {
	return "point_logs"
}
