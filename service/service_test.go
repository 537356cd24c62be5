package service

import (
	"HikariCha/dao"
	"HikariCha/models"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 每个测试独立的内存库，库名取测试名避免串库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		// 与生产配置一致，幂等判断依赖 gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.UserStats{},
		&models.AchievementProgress{},
		&models.ClaimedReward{},
		&models.Activity{},
		&models.UserPoint{},
		&models.PointsLog{},
	))
	return db
}

type testServices struct {
	db          *gorm.DB
	stats       *StatsService
	achievement *AchievementService
	claim       *ClaimService
	point       *PointService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	db := newTestDB(t)

	statsDAO := dao.NewUserStatsDAO(db)
	progressDAO := dao.NewAchievementProgressDAO(db)
	activityDAO := dao.NewActivityDAO(db)
	claimedDAO := dao.NewClaimedRewardDAO(db)
	pointDAO := dao.NewPoint(db)

	stats := &StatsService{
		DB:          db,
		StatsDAO:    statsDAO,
		PointDAO:    pointDAO,
		ProgressDAO: progressDAO,
	}
	achievement := &AchievementService{
		DB:           db,
		ProgressDAO:  progressDAO,
		ActivityDAO:  activityDAO,
		StatsService: stats,
	}
	claim := &ClaimService{
		DB:          db,
		ProgressDAO: progressDAO,
		ClaimedDAO:  claimedDAO,
		PointDAO:    pointDAO,
	}
	point := &PointService{
		DB:       db,
		PointDAO: pointDAO,
	}
	return &testServices{db: db, stats: stats, achievement: achievement, claim: claim, point: point}
}
