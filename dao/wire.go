//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewAchievementProgressDAO,
	NewClaimedRewardDAO,
	NewActivityDAO,
	NewUserStatsDAO,
	NewPoint,
)
