package service

import (
	"github.com/vpetrenko/reelsync/internal/adapter"
	"github.com/vpetrenko/reelsync/internal/logger"
	"github.com/vpetrenko/reelsync/internal/store"
)

type ClientServices struct {
	AuthService       ClientAuthService
	FavouritesService ClientFavouritesService
	FriendsService    ClientFriendsService
	SyncService       ClientSyncService
	SyncJob           ClientSyncJob
}

func NewClientServices(localStore *store.ClientStorages, cloudAdapter adapter.CloudAdapter, logger *logger.Logger) *ClientServices {
	syncSvc := NewClientSyncService(localStore, cloudAdapter, logger)

	return &ClientServices{
		AuthService:       NewClientAuthService(cloudAdapter, localStore.Settings, syncSvc, logger),
		FavouritesService: NewClientFavouritesService(localStore, cloudAdapter, logger),
		FriendsService:    NewClientFriendsService(cloudAdapter, logger),
		SyncService:       syncSvc,
		SyncJob:           NewClientSyncJob(syncSvc, logger),
	}
}
