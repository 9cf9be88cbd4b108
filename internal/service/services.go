package service

import (
	"github.com/vpetrenko/reelsync/internal/config"
	"github.com/vpetrenko/reelsync/internal/logger"
	"github.com/vpetrenko/reelsync/internal/store"
)

type Services struct {
	AuthService       AuthService
	FavouritesService FavouritesService
	FriendsService    FriendsService
}

func NewServices(storages store.Storages, cfg config.ServerConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, cfg.App, logger),
		FavouritesService: NewFavouritesService(storages.FavouritesRepository, logger),
		FriendsService:    NewFriendsService(storages.UserRepository, storages.FriendsRepository, storages.FavouritesRepository, logger),
	}
}
