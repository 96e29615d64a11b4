package api

import (
	"github.com/urfave/cli/v2"

	"github.com/railtrace/railtrace/pkg/dataaggregator"
	"github.com/railtrace/railtrace/pkg/dataaggregator/source/cachedresults"
	"github.com/railtrace/railtrace/pkg/dataaggregator/source/railapi"
	"github.com/railtrace/railtrace/pkg/redis_client"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the core web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					if err := redis_client.Connect(); err != nil {
						return err
					}

					cacheSource := &cachedresults.Source{
						UpstreamSource: railapi.NewSource(),
					}
					cacheSource.Setup()

					dataaggregator.GlobalSetup(cacheSource)

					return SetupServer(c.String("listen"))
				},
			},
		},
	}
}
