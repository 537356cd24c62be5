//go:build wireinject
// +build wireinject

package main

import (
	"HikariCha/config"
	"HikariCha/dao"
	"HikariCha/dao/cache"
	"HikariCha/handler"
	"HikariCha/pkg/client"
	"HikariCha/pkg/database"
	"HikariCha/pkg/server"
	"HikariCha/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		server.NewGinEngine,
		cache.ProviderSet,

		wire.Struct(new(handler.Achievement), "*"),
		wire.Struct(new(handler.Point), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil
}
