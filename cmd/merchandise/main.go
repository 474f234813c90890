package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := &cli.App{
		Name:  appID,
		Usage: "merchandise catalog service",
		Commands: []*cli.Command{
			serviceCommand(),
			migrateCommand(),
			addProductCommand(),
			suspendCommand(),
			resumeCommand(),
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.WithError(err).Fatal("merchandise failed")
	}
}
