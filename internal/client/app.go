package client

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/vpetrenko/reelsync/internal/config"
	"github.com/vpetrenko/reelsync/internal/logger"
	"github.com/vpetrenko/reelsync/internal/service"
	"github.com/vpetrenko/reelsync/internal/workers"
)

// App is the long-running client agent. It keeps the local favourites store
// reconciled with the cloud by running the periodic sync job until the
// process receives a stop signal.
type App struct {
	services     *service.ClientServices
	syncInterval time.Duration
	logger       *logger.Logger
}

func NewApp(services *service.ClientServices, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	return &App{
		services:     services,
		syncInterval: cfg.SyncInterval,
		logger:       logger,
	}, nil
}

// Run implements [Client]. It starts the background workers and blocks until
// SIGINT or SIGTERM, then stops the sync job and returns.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ws := workers.New(&syncWorker{job: a.services.SyncJob, interval: a.syncInterval})
	ws.Run()
	defer a.services.SyncJob.Stop()

	a.logger.Info().Dur("sync_interval", a.syncInterval).Msg("client agent started")

	<-ctx.Done()
	a.logger.Info().Msg("client agent shutting down")

	return nil
}

// syncWorker adapts the periodic sync job to the [workers.Worker] contract.
type syncWorker struct {
	job      service.ClientSyncJob
	interval time.Duration
}

func (w *syncWorker) Run() {
	w.job.Start(context.Background(), w.interval)
}
