package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/cyberdetect/cdetect/internal/buildinfo"
	"github.com/cyberdetect/cdetect/internal/client/cli"
	"github.com/cyberdetect/cdetect/internal/client/config"
	"github.com/cyberdetect/cdetect/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
