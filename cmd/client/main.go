package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Nigam11/skillhub-front/internal/client/cli"
	"github.com/Nigam11/skillhub-front/internal/client/config"
	"github.com/Nigam11/skillhub-front/internal/logging"
)

func main() {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(
		logging.WithFormat(logging.ParseFormat(cfg.LogFormat)),
		logging.WithLevel(logging.ParseLevel(cfg.LogLevel)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// The REPL blocks on stdin; a second interrupt falls back to the default handler.
	go func() {
		<-ctx.Done()
		stop()
	}()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "client stopped", "error", err)
		os.Exit(1)
	}
}
