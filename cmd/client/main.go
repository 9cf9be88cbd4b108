package main

import (
	"context"
	"fmt"
	"os"

	"github.com/vpetrenko/reelsync/internal/adapter"
	"github.com/vpetrenko/reelsync/internal/command"
	"github.com/vpetrenko/reelsync/internal/config"
	"github.com/vpetrenko/reelsync/internal/logger"
	"github.com/vpetrenko/reelsync/internal/service"
	"github.com/vpetrenko/reelsync/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("reelsync-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	cloudAdapter, err := adapter.NewHTTPCloudAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create cloud adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, cloudAdapter, log)

	// Each CLI invocation is a new process; pick up the token saved by the
	// last login so authenticated commands keep working.
	if err = services.AuthService.RestoreSession(context.Background()); err != nil {
		log.Warn().Err(err).Msg("restore session")
	}

	rootCmd := command.NewRootCmd(services, cfg.Workers, log, buildInfo())
	if err = rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildInfo() string {
	version := buildVersion
	if version == "" {
		version = "N/A"
	}
	if buildDate != "" || buildCommit != "" {
		version = fmt.Sprintf("%s (built %s, commit %s)", version, buildDate, buildCommit)
	}
	return version
}
