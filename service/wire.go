package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(StatsService), "*"),
	wire.Bind(new(IStatsService), new(*StatsService)),

	wire.Struct(new(AchievementService), "*"),
	wire.Bind(new(IAchievementService), new(*AchievementService)),

	wire.Struct(new(ClaimService), "*"),
	wire.Bind(new(IClaimService), new(*ClaimService)),

	wire.Struct(new(PointService), "*"),
	wire.Bind(new(IPointService), new(*PointService)),
)
