package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/danilovkiri/dk_go_story_feed/internal/config"
	"github.com/danilovkiri/dk_go_story_feed/internal/devapi"
	"github.com/danilovkiri/dk_go_story_feed/internal/devapi/storage"
	"github.com/danilovkiri/dk_go_story_feed/internal/devapi/storage/inmemory"
	"github.com/danilovkiri/dk_go_story_feed/internal/devapi/storage/inpsql"
	"github.com/danilovkiri/dk_go_story_feed/internal/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// add a waiting group for the storage closer
	wg := &sync.WaitGroup{}
	// get configuration
	cfg := config.NewDefaultConfiguration()
	err := cfg.Parse()
	log := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("Configuration parsing failed")
	}
	// initialize storage, switch between "inmemory" and "inpsql" modules
	var st storage.Storage
	switch cfg.DatabaseDSN {
	case "":
		st = inmemory.InitStorage()
	default:
		psql, err := inpsql.InitStorage(ctx, wg, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("PSQL storage initialization failed")
		}
		st = psql
	}
	// initialize server
	server, err := devapi.InitServer(cfg, st, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Server initialization failed")
	}
	// set a listener for os.Signal
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-done
		log.Info().Msg("Server shutdown attempted")
		ctxTO, cancelTO := context.WithTimeout(ctx, 5*time.Second)
		defer cancelTO()
		if err := server.Shutdown(ctxTO); err != nil {
			log.Error().Err(err).Msg("Server shutdown failed")
		}
		cancel()
	}()
	// start up the server
	log.Info().Str("address", cfg.DevAPIAddress).Msg("Server start attempted")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("Server failed")
	}
	// wait for the storage closer to finish before exiting
	<-ctx.Done()
	wg.Wait()
	log.Info().Msg("Server shutdown succeeded")
}
