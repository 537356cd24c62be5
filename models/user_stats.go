package models

import (
	"time"
)

// UserStats 用户原始行为计数，由各业务方写入，成就引擎只读
type UserStats struct {
	ID                 uint64     `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserID             uint64     `gorm:"column:user_id;not null;uniqueIndex" json:"user_id"`
	PostCount          uint32     `gorm:"column:post_count;not null;default:0" json:"post_count"`
	CommentCount       uint32     `gorm:"column:comment_count;not null;default:0" json:"comment_count"`
	FollowerCount      uint32     `gorm:"column:follower_count;not null;default:0" json:"follower_count"`
	FriendCount        uint32     `gorm:"column:friend_count;not null;default:0" json:"friend_count"`
	ForumPostCount     uint32     `gorm:"column:forum_post_count;not null;default:0" json:"forum_post_count"`
	ForumCommentCount  uint32     `gorm:"column:forum_comment_count;not null;default:0" json:"forum_comment_count"`
	ForumLikeCount     uint32     `gorm:"column:forum_like_count;not null;default:0" json:"forum_like_count"`
	RecipeCount        uint32     `gorm:"column:recipe_count;not null;default:0" json:"recipe_count"`
	RecipeLikeCount    uint32     `gorm:"column:recipe_like_count;not null;default:0" json:"recipe_like_count"`
	MatchaRecipeCount  uint32     `gorm:"column:matcha_recipe_count;not null;default:0" json:"matcha_recipe_count"`
	ActiveDaysCount    uint32     `gorm:"column:active_days_count;not null;default:0" json:"active_days_count"`
	ActiveHoursCount   uint32     `gorm:"column:active_hours_count;not null;default:0" json:"active_hours_count"`
	HelpfulActionCount uint32     `gorm:"column:helpful_action_count;not null;default:0" json:"helpful_action_count"`
	TrendingPostCount  uint32     `gorm:"column:trending_post_count;not null;default:0" json:"trending_post_count"`
	BorderCount        uint32     `gorm:"column:border_count;not null;default:0" json:"border_count"`
	LastActiveDate     *time.Time `gorm:"column:last_active_date" json:"last_active_date"` // daily_visit 每日一次的判定依据
	CreatedAt          time.Time  `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (UserStats) TableName() string {
	return "user_stats"
}
