package service

import (
	"HikariCha/catalog"
	"HikariCha/dao"
	"context"
	"errors"

	"gorm.io/gorm"
)

// 行为动作到 (成就类型, 计数列) 的封闭映射
type actionDef struct {
	achievementType catalog.Type
	column          string // 为空表示该动作不直接自增普通计数列
}

var actionDefs = map[string]actionDef{
	"post_created":        {catalog.PostMaster, "post_count"},
	"comment_added":       {catalog.Commentator, "comment_count"},
	"follower_gained":     {catalog.Socialite, "follower_count"},
	"follow_added":        {catalog.FriendCollector, "friend_count"},
	"forum_post_created":  {catalog.ForumExplorer, "forum_post_count"},
	"forum_comment_added": {catalog.DiscussionMaster, "forum_comment_count"},
	"forum_like_received": {catalog.ForumLegend, "forum_like_count"},
	"recipe_created":      {catalog.RecipeNovice, "recipe_count"},
	"recipe_liked":        {catalog.CulinaryArtist, "recipe_like_count"},
	"matcha_recipe_added": {catalog.MatchaMaster, "matcha_recipe_count"},
	"helpful_action":      {catalog.CommunityHelper, "helpful_action_count"},
	"post_trending":       {catalog.TrendSetter, "trending_post_count"},
	"border_collected":    {catalog.BorderCollector, "border_count"},
	"daily_visit":         {catalog.DailyVisitor, ""},
	"active_hours":        {catalog.ActiveUser, ""},
}

var _ IStatsService = (*StatsService)(nil)

type IStatsService interface {
	// Track 按动作更新原始计数，返回其对应的成就类型
	Track(ctx context.Context, userID uint64, action string, durationMinutes int) (catalog.Type, error)
	// Snapshot 组装评估所需的全量计数快照
	Snapshot(ctx context.Context, userID uint64) (catalog.Snapshot, error)
}

type StatsService struct {
	DB          *gorm.DB
	StatsDAO    *dao.UserStatsDAO
	PointDAO    *dao.Point
	ProgressDAO *dao.AchievementProgressDAO
}

func (s *StatsService) Track(ctx context.Context, userID uint64, action string, durationMinutes int) (catalog.Type, error) {
	def, ok := actionDefs[action]
	if !ok {
		return "", errors.New("不支持的行为类型: " + action)
	}

	switch action {
	case "daily_visit":
		// 每个自然日只计一次
		if _, err := s.StatsDAO.TouchDailyVisit(ctx, userID); err != nil {
			return "", err
		}
	case "active_hours":
		hours := int64(durationMinutes / 60)
		if hours > 0 {
			if err := s.StatsDAO.Incr(ctx, userID, "active_hours_count", hours); err != nil {
				return "", err
			}
		}
	default:
		if err := s.StatsDAO.Incr(ctx, userID, def.column, 1); err != nil {
			return "", err
		}
	}

	return def.achievementType, nil
}

func (s *StatsService) Snapshot(ctx context.Context, userID uint64) (catalog.Snapshot, error) {
	var snap catalog.Snapshot

	stats, err := s.StatsDAO.GetByUserID(ctx, userID)
	if err != nil {
		return snap, err
	}
	if stats != nil {
		snap.PostCount = int64(stats.PostCount)
		snap.CommentCount = int64(stats.CommentCount)
		snap.FollowerCount = int64(stats.FollowerCount)
		snap.FriendCount = int64(stats.FriendCount)
		snap.ForumPostCount = int64(stats.ForumPostCount)
		snap.ForumCommentCount = int64(stats.ForumCommentCount)
		snap.ForumLikeCount = int64(stats.ForumLikeCount)
		snap.RecipeCount = int64(stats.RecipeCount)
		snap.RecipeLikeCount = int64(stats.RecipeLikeCount)
		snap.MatchaRecipeCount = int64(stats.MatchaRecipeCount)
		snap.ActiveDaysCount = int64(stats.ActiveDaysCount)
		snap.ActiveHoursCount = int64(stats.ActiveHoursCount)
		snap.HelpfulActionCount = int64(stats.HelpfulActionCount)
		snap.TrendingPostCount = int64(stats.TrendingPostCount)
		snap.BorderCount = int64(stats.BorderCount)
	}

	// 派生计数：积分余额、已有进度记录数
	account, err := s.PointDAO.GetAccount(ctx, userID)
	if err == nil {
		snap.Points = account.Balance
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return snap, err
	}

	count, err := s.ProgressDAO.CountByUser(ctx, userID)
	if err != nil {
		return snap, err
	}
	snap.AchievementCount = count

	return snap, nil
}
