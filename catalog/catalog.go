package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Type 成就类型，编译期固定的封闭集合
type Type string

const (
	// 社交类
	PostMaster      Type = "POST_MASTER"
	Commentator     Type = "COMMENTATOR"
	Socialite       Type = "SOCIALITE"
	FriendCollector Type = "FRIEND_COLLECTOR"

	// 论坛类
	ForumExplorer    Type = "FORUM_EXPLORER"
	DiscussionMaster Type = "DISCUSSION_MASTER"
	ForumLegend      Type = "FORUM_LEGEND"

	// 食谱类
	RecipeNovice   Type = "RECIPE_NOVICE"
	CulinaryArtist Type = "CULINARY_ARTIST"
	MatchaMaster   Type = "MATCHA_MASTER"

	// 活跃类
	DailyVisitor    Type = "DAILY_VISITOR"
	ActiveUser      Type = "ACTIVE_USER"
	CommunityHelper Type = "COMMUNITY_HELPER"
	TrendSetter     Type = "TREND_SETTER"

	// 收集类
	BorderCollector   Type = "BORDER_COLLECTOR"
	PointsHunter      Type = "POINTS_HUNTER"
	AchievementHunter Type = "ACHIEVEMENT_HUNTER"
)

// BadgeColor 徽章档位，由等级区间决定
type BadgeColor string

const (
	BadgeBronze  BadgeColor = "bronze"
	BadgeSilver  BadgeColor = "silver"
	BadgeGold    BadgeColor = "gold"
	BadgeDiamond BadgeColor = "diamond"
)

// MaxLevel 每种成就固定 10 级
const MaxLevel = 10

// growth 阈值增长系数，所有类型统一
const growth = 1.1

// Level 单个等级的定义：阈值与奖励
type Level struct {
	Level        int        `json:"level"`
	TargetValue  int64      `json:"target_value"`
	PointsReward int64      `json:"points_reward"`
	Title        string     `json:"title"`
	BadgeColor   BadgeColor `json:"badge_color"`
}

// Spec 单种成就的完整定义
type Spec struct {
	Type        Type   `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	Levels      []Level `json:"levels"`
}

// spec 生成参数：阈值基数、每级积分、各档位称号（10级 / >=8 / >=5 / >=3 / 其余）
type specDef struct {
	name        string
	description string
	icon        string
	category    string
	base        int64
	perPoints   int64
	titles      [5]string
}

// 唯一数据源：已发放的历史完成记录在读取时会按同一公式复核，
// 基数与每级积分一旦上线不可变更
var defs = map[Type]specDef{
	PostMaster: {
		name:        "Post Master",
		description: "Create social posts and engage with the community",
		icon:        "📝",
		category:    "social",
		base:        5,
		perPoints:   25,
		titles:      [5]string{"Social Media Legend", "Content Master", "Active Creator", "Rising Star", "Novice Poster"},
	},
	Commentator: {
		name:        "Commentator",
		description: "Leave thoughtful comments on social posts",
		icon:        "💬",
		category:    "social",
		base:        10,
		perPoints:   20,
		titles:      [5]string{"Comment Master", "Discussion Expert", "Active Commenter", "Rising Voice", "Novice Commentator"},
	},
	Socialite: {
		name:        "Socialite",
		description: "Build your follower network and expand your influence",
		icon:        "👥",
		category:    "social",
		base:        3,
		perPoints:   30,
		titles:      [5]string{"Network Master", "Community Leader", "Popular User", "Rising Star", "Friendly Face"},
	},
	FriendCollector: {
		name:        "Friend Collector",
		description: "Build meaningful friendships in the community",
		icon:        "🤝",
		category:    "social",
		base:        2,
		perPoints:   35,
		titles:      [5]string{"Friend Master", "Social Butterfly", "Friend Seeker", "Friendly User", "New Friend"},
	},
	ForumExplorer: {
		name:        "Forum Explorer",
		description: "Explore and participate in forum discussions",
		icon:        "🗺️",
		category:    "forum",
		base:        2,
		perPoints:   15,
		titles:      [5]string{"Forum Master", "Forum Legend", "Forum Expert", "Active Explorer", "Novice Explorer"},
	},
	DiscussionMaster: {
		name:        "Discussion Master",
		description: "Create engaging forum discussions",
		icon:        "💭",
		category:    "forum",
		base:        5,
		perPoints:   18,
		titles:      [5]string{"Discussion Guru", "Discussion Champion", "Discussion Expert", "Active Discussant", "Novice Speaker"},
	},
	ForumLegend: {
		name:        "Forum Legend",
		description: "Become a respected member of the forum community",
		icon:        "👑",
		category:    "forum",
		base:        5,
		perPoints:   25,
		titles:      [5]string{"Forum Deity", "Forum Legend", "Forum Star", "Forum Favorite", "Rising Star"},
	},
	RecipeNovice: {
		name:        "Recipe Novice",
		description: "Start your culinary journey by sharing recipes",
		icon:        "👨‍🍳",
		category:    "recipe",
		base:        1,
		perPoints:   15,
		titles:      [5]string{"Recipe Master", "Recipe Expert", "Recipe Enthusiast", "Rising Chef", "Novice Chef"},
	},
	CulinaryArtist: {
		name:        "Culinary Artist",
		description: "Create popular and loved recipes",
		icon:        "🎨",
		category:    "recipe",
		base:        2,
		perPoints:   20,
		titles:      [5]string{"Culinary Genius", "Culinary Master", "Culinary Expert", "Rising Artist", "Novice Artist"},
	},
	MatchaMaster: {
		name:        "Matcha Master",
		description: "Master the art of matcha preparation",
		icon:        "🍵",
		category:    "recipe",
		base:        1,
		perPoints:   25,
		titles:      [5]string{"Matcha Grandmaster", "Matcha Expert", "Matcha Enthusiast", "Matcha Novice", "Matcha Beginner"},
	},
	DailyVisitor: {
		name:        "Daily Visitor",
		description: "Visit the platform regularly",
		icon:        "📅",
		category:    "engagement",
		base:        1,
		perPoints:   10,
		titles:      [5]string{"Daily Legend", "Consistent User", "Regular Visitor", "Frequent User", "Casual Visitor"},
	},
	ActiveUser: {
		name:        "Active User",
		description: "Spend time actively on the platform",
		icon:        "⏰",
		category:    "engagement",
		base:        1,
		perPoints:   12,
		titles:      [5]string{"Time Master", "Active Veteran", "Active User", "Engaged User", "New User"},
	},
	CommunityHelper: {
		name:        "Community Helper",
		description: "Help other community members",
		icon:        "🤝",
		category:    "engagement",
		base:        5,
		perPoints:   22,
		titles:      [5]string{"Community Saint", "Community Hero", "Community Helper", "Helpful User", "Helpful Newcomer"},
	},
	TrendSetter: {
		name:        "Trend Setter",
		description: "Start popular trends and discussions",
		icon:        "🔥",
		category:    "engagement",
		base:        3,
		perPoints:   30,
		titles:      [5]string{"Trend Legend", "Trend Master", "Trend Setter", "Rising Trend", "Trend Starter"},
	},
	BorderCollector: {
		name:        "Border Collector",
		description: "Collect unique profile borders",
		icon:        "🖼️",
		category:    "collection",
		base:        1,
		perPoints:   35,
		titles:      [5]string{"Border Master", "Border Expert", "Border Collector", "Border Enthusiast", "Border Starter"},
	},
	PointsHunter: {
		name:        "Points Hunter",
		description: "Accumulate points through activities",
		icon:        "💰",
		category:    "collection",
		base:        50,
		perPoints:   40,
		titles:      [5]string{"Points Legend", "Points Master", "Points Expert", "Points Collector", "Points Starter"},
	},
	AchievementHunter: {
		name:        "Achievement Hunter",
		description: "Complete various achievements",
		icon:        "🏆",
		category:    "collection",
		base:        1,
		perPoints:   50,
		titles:      [5]string{"Achievement Legend", "Achievement Master", "Achievement Expert", "Achievement Collector", "Achievement Starter"},
	},
}

// order 固定遍历顺序，保证 All/快照输出稳定
var order = []Type{
	PostMaster, Commentator, Socialite, FriendCollector,
	ForumExplorer, DiscussionMaster, ForumLegend,
	RecipeNovice, CulinaryArtist, MatchaMaster,
	DailyVisitor, ActiveUser, CommunityHelper, TrendSetter,
	BorderCollector, PointsHunter, AchievementHunter,
}

var specs map[Type]*Spec

func init() {
	specs = make(map[Type]*Spec, len(defs))
	for t, d := range defs {
		s := &Spec{
			Type:        t,
			Name:        d.name,
			Description: d.description,
			Icon:        d.icon,
			Category:    d.category,
			Levels:      make([]Level, 0, MaxLevel),
		}
		for level := 1; level <= MaxLevel; level++ {
			s.Levels = append(s.Levels, Level{
				Level:        level,
				TargetValue:  targetValue(d.base, level),
				PointsReward: int64(level) * d.perPoints,
				Title:        tierTitle(d.titles, level),
				BadgeColor:   badgeFor(level),
			})
		}
		specs[t] = s
	}
}

// targetValue 阈值生成公式：floor(base * 1.1^(level-1))
// 历史解锁记录依赖该公式复核，不可改动
func targetValue(base int64, level int) int64 {
	return int64(math.Floor(float64(base) * math.Pow(growth, float64(level-1))))
}

func tierTitle(titles [5]string, level int) string {
	switch {
	case level == MaxLevel:
		return titles[0]
	case level >= 8:
		return titles[1]
	case level >= 5:
		return titles[2]
	case level >= 3:
		return titles[3]
	default:
		return titles[4]
	}
}

func badgeFor(level int) BadgeColor {
	switch {
	case level < 3:
		return BadgeBronze
	case level < 6:
		return BadgeSilver
	case level < 9:
		return BadgeGold
	default:
		return BadgeDiamond
	}
}

// All 按固定顺序返回全部成就类型
func All() []Type {
	out := make([]Type, len(order))
	copy(out, order)
	return out
}

// Lookup 查找成就定义，类型不存在返回 false
func Lookup(t Type) (*Spec, bool) {
	s, ok := specs[t]
	return s, ok
}

// LevelsFor 返回某类型的全部等级定义（升序）
func LevelsFor(t Type) ([]Level, bool) {
	s, ok := specs[t]
	if !ok {
		return nil, false
	}
	out := make([]Level, len(s.Levels))
	copy(out, s.Levels)
	return out, true
}

// RewardFor 解析 (type, level) 对应的奖励定义
func RewardFor(t Type, level int) (*Level, bool) {
	s, ok := specs[t]
	if !ok || level < 1 || level > MaxLevel {
		return nil, false
	}
	l := s.Levels[level-1]
	return &l, true
}

// FormatAchievementID 组合键格式：TYPE_LEVEL，如 POST_MASTER_5
func FormatAchievementID(t Type, level int) string {
	return fmt.Sprintf("%s_%d", t, level)
}

// ParseAchievementID 从右侧拆出等级，类型本身含下划线
func ParseAchievementID(id string) (Type, int, error) {
	idx := strings.LastIndex(id, "_")
	if idx <= 0 || idx == len(id)-1 {
		return "", 0, fmt.Errorf("invalid achievement id: %s", id)
	}
	level, err := strconv.Atoi(id[idx+1:])
	if err != nil {
		return "", 0, fmt.Errorf("invalid achievement id: %s", id)
	}
	t := Type(id[:idx])
	if _, ok := specs[t]; !ok {
		return "", 0, fmt.Errorf("invalid achievement id: %s", id)
	}
	if level < 1 || level > MaxLevel {
		return "", 0, fmt.Errorf("invalid achievement level: %d", level)
	}
	return t, level, nil
}
