// Package main is the entry point of the acronym-finder admin tool.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"acronym-finder/internal"
	"acronym-finder/internal/admin"
	"acronym-finder/internal/config"
	"acronym-finder/internal/managers"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	internal.SetLogLevel(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	databaseMgr, err := managers.ConnectDatabase(ctx, cfg.DatabaseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer databaseMgr.Close(context.Background())

	app := admin.NewApp(databaseMgr.Users(), managers.NewPasswordManager(cfg.BcryptCost))
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
