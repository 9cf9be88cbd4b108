package store

import (
	"context"
	"fmt"

	"github.com/vpetrenko/reelsync/internal/config"
	"github.com/vpetrenko/reelsync/internal/logger"
)

// Storages groups all server-side repositories into a single value passed to
// the service layer.
type Storages struct {
	UserRepository       UserRepository
	FavouritesRepository FavouritesRepository
	FriendsRepository    FriendsRepository
}

// NewStorages initialises the server storage layer: opens the PostgreSQL
// connection, applies pending migrations, and wires the repositories.
func NewStorages(ctx context.Context, cfg config.ServerStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.MigrateServer(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:       NewUserRepository(db, logger),
		FavouritesRepository: NewFavouritesRepository(db, logger),
		FriendsRepository:    NewFriendsRepository(db, logger),
	}, nil
}
