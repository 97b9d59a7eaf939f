//go:build wireinject
// +build wireinject

package main

import (
	"campuswall/config"
	"campuswall/dao"
	"campuswall/dao/cache"
	"campuswall/handler"
	"campuswall/pkg/client"
	"campuswall/pkg/database"
	"campuswall/pkg/server"
	"campuswall/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		server.NewGinEngine,
		cache.ProviderSet,
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Post), "*"),
		wire.Struct(new(handler.Resource), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
