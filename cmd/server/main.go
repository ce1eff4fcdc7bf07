package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/skybi/symbolist/internal/api"
	"github.com/skybi/symbolist/internal/browse"
	"github.com/skybi/symbolist/internal/config"
	"github.com/skybi/symbolist/internal/storage"
	"github.com/skybi/symbolist/internal/storage/cache"
	"github.com/skybi/symbolist/internal/storage/inmem"
	"github.com/skybi/symbolist/internal/storage/postgres"
	"github.com/skybi/symbolist/internal/symbol"
)

func main() {
	// Set up zerolog to use pretty printing
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out: os.Stderr,
	})
	log.Info().Msg("starting up...")

	// Load the application configuration
	log.Info().Msg("loading configuration...")
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load the configuration")
	}
	if cfg.IsEnvProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Debug().Stringer("config", cfg).Msg("")

	// Initialize the configured storage driver
	log.Info().Str("driver", cfg.StorageDriver).Msg("initializing storage driver...")
	var driver storage.Driver
	switch cfg.StorageDriver {
	case config.StorageDriverPostgres:
		driver = postgres.New(cfg.PostgresDSN)
	default:
		driver = inmem.New()
	}
	if err := driver.Initialize(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("could not initialize the storage driver")
	}
	defer driver.Close()

	// Seed the symbol table shipped with the binary if the storage is empty
	seeded, err := storage.Seed(context.Background(), driver, symbol.Default())
	if err != nil {
		log.Fatal().Err(err).Msg("could not seed the symbol table")
	}
	if seeded {
		log.Info().Int("amount", len(symbol.Default())).Msg("seeded the symbol table")
	}

	// Wrap the storage driver into a caching layer
	if cfg.CacheLifetime > 0 {
		cached := cache.New(driver, cfg.CacheLifetime)
		if err := cached.Initialize(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("could not initialize the caching layer")
		}
		defer cached.Close()
		driver = cached
	}

	// Create the browsing session manager and schedule the task removing expired sessions
	sessions := browse.NewManager(driver.Symbols(), browse.Options{
		DefaultPageSize: cfg.DefaultPageSize,
		MaxPageSize:     cfg.MaxPageSize,
		Lifetime:        cfg.SessionLifetime,
	})
	sessions.OnExpire(func(session *browse.Session) {
		log.Debug().Str("session", session.ID.String()).Msg("browsing session expired")
	})
	sessions.Start(time.Minute)
	defer sessions.Stop()

	// Start up the symbol API
	log.Info().Str("address", cfg.ListenAddress).Msg("starting up symbol API...")
	apis := &api.Service{
		Config:  cfg,
		Storage: driver,
		Browse:  sessions,
	}
	apiErrs := make(chan error, 1)
	apis.Startup(apiErrs)
	go func() {
		err := <-apiErrs
		log.Fatal().Err(err).Msg("the API service raised an unexpected error")
	}()
	defer func() {
		log.Info().Msg("shutting down the symbol API...")
		apis.Shutdown()
	}()

	log.Info().Msg("done!")
	defer log.Info().Msg("shutting down...")

	// Wait for the application to be terminated
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)
	<-shutdown
}
