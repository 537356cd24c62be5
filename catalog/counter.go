package catalog

// Snapshot 触发评估时刻的原始计数快照，由统计聚合方组装
type Snapshot struct {
	PostCount          int64 `json:"post_count"`
	CommentCount       int64 `json:"comment_count"`
	FollowerCount      int64 `json:"follower_count"`
	FriendCount        int64 `json:"friend_count"`
	ForumPostCount     int64 `json:"forum_post_count"`
	ForumCommentCount  int64 `json:"forum_comment_count"`
	ForumLikeCount     int64 `json:"forum_like_count"`
	RecipeCount        int64 `json:"recipe_count"`
	RecipeLikeCount    int64 `json:"recipe_like_count"`
	MatchaRecipeCount  int64 `json:"matcha_recipe_count"`
	ActiveDaysCount    int64 `json:"active_days_count"`
	ActiveHoursCount   int64 `json:"active_hours_count"`
	HelpfulActionCount int64 `json:"helpful_action_count"`
	TrendingPostCount  int64 `json:"trending_post_count"`
	BorderCount        int64 `json:"border_count"`
	Points             int64 `json:"points"`
	AchievementCount   int64 `json:"achievement_count"`
}

// CounterValue 成就类型到计数字段的封闭映射，未知类型返回 false
func CounterValue(t Type, s Snapshot) (int64, bool) {
	switch t {
	case PostMaster:
		return s.PostCount, true
	case Commentator:
		return s.CommentCount, true
	case Socialite:
		return s.FollowerCount, true
	case FriendCollector:
		return s.FriendCount, true
	case ForumExplorer:
		return s.ForumPostCount, true
	case DiscussionMaster:
		return s.ForumCommentCount, true
	case ForumLegend:
		return s.ForumLikeCount, true
	case RecipeNovice:
		return s.RecipeCount, true
	case CulinaryArtist:
		return s.RecipeLikeCount, true
	case MatchaMaster:
		return s.MatchaRecipeCount, true
	case DailyVisitor:
		return s.ActiveDaysCount, true
	case ActiveUser:
		return s.ActiveHoursCount, true
	case CommunityHelper:
		return s.HelpfulActionCount, true
	case TrendSetter:
		return s.TrendingPostCount, true
	case BorderCollector:
		return s.BorderCount, true
	case PointsHunter:
		// 积分猎人按每 100 积分折算一个计数
		return s.Points / 100, true
	case AchievementHunter:
		return s.AchievementCount, true
	default:
		return 0, false
	}
}
