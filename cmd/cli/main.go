package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/closet/internal/buildinfo"
	"github.com/dmitrijs2005/closet/internal/client/cli"
	"github.com/dmitrijs2005/closet/internal/client/client"
	"github.com/dmitrijs2005/closet/internal/client/config"
	"github.com/dmitrijs2005/closet/internal/logging"
	"github.com/dmitrijs2005/closet/internal/netx"
)

func main() {

	buildinfo.PrintBuildData(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if s, ok := logger.(interface{ Sync() error }); ok {
		defer func() { _ = s.Sync() }()
	}

	api, err := client.NewHTTPClient(cfg.BaseURL, netx.NewHTTPClient(cfg.RequestTimeout), logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger.Debug(ctx, "starting closet client", "base_url", cfg.BaseURL)

	app := cli.NewApp(cfg, api, logger, os.Stdin, os.Stdout)
	app.Run(ctx)

}
