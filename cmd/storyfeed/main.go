package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danilovkiri/dk_go_story_feed/internal/api/rest"
	"github.com/danilovkiri/dk_go_story_feed/internal/app"
	"github.com/danilovkiri/dk_go_story_feed/internal/config"
	"github.com/danilovkiri/dk_go_story_feed/internal/logger"
	"github.com/danilovkiri/dk_go_story_feed/internal/service/secretary/v1"
	"github.com/danilovkiri/dk_go_story_feed/internal/session"
	"github.com/danilovkiri/dk_go_story_feed/internal/session/infile"
	"github.com/danilovkiri/dk_go_story_feed/internal/storyapi/httpclient"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func printBuildMetadata() {
	fmt.Printf("Build version: %s\n", orNA(buildVersion))
	fmt.Printf("Build date: %s\n", orNA(buildDate))
	fmt.Printf("Build commit: %s\n", orNA(buildCommit))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func main() {
	// print out build parameters
	printBuildMetadata()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// get configuration
	cfg := config.NewDefaultConfiguration()
	err := cfg.Parse()
	log := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("Configuration parsing failed")
	}
	// initialize the remote story API client and the session file
	client, err := httpclient.InitClient(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Story API client initialization failed")
	}
	var persister session.Persister
	if cfg.SessionFilePath != "" {
		persister, err = infile.InitStorage(cfg, secretary.NewSecretaryService(cfg.UserKey), log)
		if err != nil {
			log.Fatal().Err(err).Msg("Session storage initialization failed")
		}
	}
	a, err := app.InitApp(cfg, client, client, persister, log)
	if err != nil {
		log.Fatal().Err(err).Msg("App initialization failed")
	}
	if err := a.Bootstrap(ctx); err != nil {
		// the dispatcher still serves, /api/refresh retries the load
		log.Error().Err(err).Msg("Initial story load failed")
	}
	// initialize server
	server, err := rest.InitServer(a, log)
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
	log.Info().Str("address", cfg.ServerAddress).Msg("Server start attempted")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("Server failed")
	}
	<-ctx.Done()
	log.Info().Msg("Server shutdown succeeded")
}
