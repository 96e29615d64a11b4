package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/railtrace/railtrace/pkg/api"
	"github.com/railtrace/railtrace/pkg/lookup"
	"github.com/railtrace/railtrace/pkg/refresh"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("RAILTRACE_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("RAILTRACE_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "railtrace",
		Description: "Single binary of truth for railtrace - runs all the services",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			refresh.RegisterCLI(),
			lookup.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
