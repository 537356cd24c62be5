package catalog

import "testing"

// 每种成就类型都必须能映射到一个计数字段
func TestCounterValue_Exhaustive(t *testing.T) {
	var s Snapshot
	for _, typ := range All() {
		if _, ok := CounterValue(typ, s); !ok {
			t.Fatalf("CounterValue(%s) not mapped", typ)
		}
	}
	if _, ok := CounterValue(Type("NOT_A_TYPE"), s); ok {
		t.Fatal("CounterValue should reject unknown type")
	}
}

// 各字段互不串线
func TestCounterValue_FieldMapping(t *testing.T) {
	s := Snapshot{
		PostCount:          1,
		CommentCount:       2,
		FollowerCount:      3,
		FriendCount:        4,
		ForumPostCount:     5,
		ForumCommentCount:  6,
		ForumLikeCount:     7,
		RecipeCount:        8,
		RecipeLikeCount:    9,
		MatchaRecipeCount:  10,
		ActiveDaysCount:    11,
		ActiveHoursCount:   12,
		HelpfulActionCount: 13,
		TrendingPostCount:  14,
		BorderCount:        15,
		Points:             1600,
		AchievementCount:   17,
	}
	want := map[Type]int64{
		PostMaster:        1,
		Commentator:       2,
		Socialite:         3,
		FriendCollector:   4,
		ForumExplorer:     5,
		DiscussionMaster:  6,
		ForumLegend:       7,
		RecipeNovice:      8,
		CulinaryArtist:    9,
		MatchaMaster:      10,
		DailyVisitor:      11,
		ActiveUser:        12,
		CommunityHelper:   13,
		TrendSetter:       14,
		BorderCollector:   15,
		PointsHunter:      16, // 1600 积分折算 16
		AchievementHunter: 17,
	}
	for typ, expect := range want {
		got, ok := CounterValue(typ, s)
		if !ok || got != expect {
			t.Fatalf("CounterValue(%s) = %d, want %d", typ, got, expect)
		}
	}
}
