//go:build wireinject
// +build wireinject

package main

import (
	"Foodgram/config"
	"Foodgram/dao"
	"Foodgram/dao/cache"
	"Foodgram/handler"
	"Foodgram/pkg/client"
	"Foodgram/pkg/database"
	"Foodgram/pkg/server"
	"Foodgram/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		server.NewGinEngine,
		cache.ProviderSet,
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Recipe), "*"),
		wire.Struct(new(handler.Tag), "*"),
		wire.Struct(new(handler.Ingredient), "*"),
		wire.Struct(new(handler.List), "*"),
		wire.Struct(new(handler.Follow), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
