package service

import (
	"HikariCha/catalog"
	"HikariCha/models"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrack_UnknownAction(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	_, err := s.stats.Track(ctx, 1, "made_up_action", 0)
	assert.Error(t, err)
}

func TestTrack_IncrementsColumn(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	typ, err := s.stats.Track(ctx, 1, "post_created", 0)
	require.NoError(t, err)
	assert.Equal(t, catalog.PostMaster, typ)

	_, err = s.stats.Track(ctx, 1, "post_created", 0)
	require.NoError(t, err)
	_, err = s.stats.Track(ctx, 1, "comment_added", 0)
	require.NoError(t, err)

	snap, err := s.stats.Snapshot(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, snap.PostCount)
	assert.EqualValues(t, 1, snap.CommentCount)
	assert.Zero(t, snap.RecipeCount)
}

// 同一自然日的重复访问只计一次
func TestTrack_DailyVisitOncePerDay(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	for i := 0; i < 3; i++ {
		typ, err := s.stats.Track(ctx, 1, "daily_visit", 0)
		require.NoError(t, err)
		assert.Equal(t, catalog.DailyVisitor, typ)
	}

	snap, err := s.stats.Snapshot(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, snap.ActiveDaysCount)

	// 把最近活跃日回拨到昨天之前，再次访问应当生效
	require.NoError(t, s.db.Model(&models.UserStats{}).
		Where("user_id = ?", 1).
		Update("last_active_date", time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local)).Error)

	_, err = s.stats.Track(ctx, 1, "daily_visit", 0)
	require.NoError(t, err)

	snap, err = s.stats.Snapshot(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, snap.ActiveDaysCount)
}

// 在线时长按整小时折算，不足一小时不计
func TestTrack_ActiveHours(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	_, err := s.stats.Track(ctx, 1, "active_hours", 150)
	require.NoError(t, err)
	_, err = s.stats.Track(ctx, 1, "active_hours", 30)
	require.NoError(t, err)

	snap, err := s.stats.Snapshot(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, snap.ActiveHoursCount)
}

// 派生计数：积分余额折算与进度行数
func TestSnapshot_DerivedCounters(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	require.NoError(t, s.claim.PointDAO.CreateAccount(ctx, 1, 250))
	require.NoError(t, s.claim.ProgressDAO.Upsert(ctx, &models.AchievementProgress{
		UserID:          1,
		AchievementType: string(catalog.PostMaster),
		CurrentLevel:    1,
	}))

	snap, err := s.stats.Snapshot(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 250, snap.Points)
	assert.EqualValues(t, 1, snap.AchievementCount)

	value, ok := catalog.CounterValue(catalog.PointsHunter, snap)
	require.True(t, ok)
	assert.EqualValues(t, 2, value) // 250 / 100

	// 没有任何记录的新用户：全零快照
	empty, err := s.stats.Snapshot(ctx, 7)
	require.NoError(t, err)
	assert.Zero(t, empty.Points)
	assert.Zero(t, empty.AchievementCount)
	assert.Zero(t, empty.PostCount)
}
