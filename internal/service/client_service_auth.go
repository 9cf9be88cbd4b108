package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vpetrenko/reelsync/internal/adapter"
	"github.com/vpetrenko/reelsync/internal/logger"
	"github.com/vpetrenko/reelsync/internal/store"
	"github.com/vpetrenko/reelsync/models"
)

// sessionTokenKey is the settings key holding the bearer token of the current
// session. Each CLI invocation is a fresh process, so the token must survive
// on disk between commands.
const sessionTokenKey = "session-token"

type clientAuthService struct {
	adapter     adapter.CloudAdapter
	settings    store.SettingsRepository
	syncService ClientSyncService
	logger      *logger.Logger

	mu                sync.Mutex
	syncedThisSession bool
}

// NewClientAuthService constructs a [ClientAuthService] that authenticates
// through the cloud adapter, persists the session token in the settings
// table, and triggers the once-per-session auto-sync.
func NewClientAuthService(cloudAdapter adapter.CloudAdapter, settings store.SettingsRepository, syncService ClientSyncService, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:     cloudAdapter,
		settings:    settings,
		syncService: syncService,
		logger:      logger,
	}
}

// Register implements [ClientAuthService].
func (a *clientAuthService) Register(ctx context.Context, user models.User) error {
	if user.Login == "" || user.Password == "" {
		return ErrInvalidDataProvided
	}

	if _, err := a.adapter.Register(ctx, user); err != nil {
		return fmt.Errorf("register on server: %w", err)
	}

	a.persistSession(ctx)
	return nil
}

// Login implements [ClientAuthService]. The auto-sync runs at most once per
// session; if it fails the flag stays unset so the next login retries it.
func (a *clientAuthService) Login(ctx context.Context, user models.User) (int64, error) {
	if user.Login == "" || user.Password == "" {
		return 0, ErrInvalidDataProvided
	}

	token, err := a.adapter.Login(ctx, user)
	if err != nil {
		return 0, fmt.Errorf("login on server: %w", err)
	}

	a.persistSession(ctx)

	a.mu.Lock()
	alreadySynced := a.syncedThisSession
	a.mu.Unlock()

	if !alreadySynced {
		if _, err = a.syncService.BidirectionalSync(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("auto-sync after login failed")
		} else {
			a.mu.Lock()
			a.syncedThisSession = true
			a.mu.Unlock()
		}
	}

	return token.UserID, nil
}

// Logout implements [ClientAuthService].
func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")

	a.mu.Lock()
	a.syncedThisSession = false
	a.mu.Unlock()

	if err := a.settings.Delete(ctx, sessionTokenKey); err != nil {
		return fmt.Errorf("drop session token: %w", err)
	}

	if err := a.syncService.Wipe(ctx); err != nil {
		return fmt.Errorf("wipe local data on logout: %w", err)
	}

	a.logger.Info().Msg("logged out, local favourites wiped")
	return nil
}

// RestoreSession implements [ClientAuthService].
func (a *clientAuthService) RestoreSession(ctx context.Context) error {
	token, err := a.settings.Get(ctx, sessionTokenKey)
	if errors.Is(err, store.ErrSettingNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read session token: %w", err)
	}

	a.adapter.SetToken(token)
	return nil
}

// persistSession saves the adapter's current bearer token so later CLI
// invocations stay authenticated. A write failure only degrades the session
// to in-memory, so it is logged and swallowed.
func (a *clientAuthService) persistSession(ctx context.Context) {
	if err := a.settings.Put(ctx, sessionTokenKey, a.adapter.Token()); err != nil {
		a.logger.Warn().Err(err).Msg("persist session token failed")
	}
}
