package refresh

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/railtrace/railtrace/pkg/dataaggregator/source/cachedresults"
	"github.com/railtrace/railtrace/pkg/dataaggregator/source/railapi"
	"github.com/railtrace/railtrace/pkg/redis_client"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "refresh",
		Usage: "Background refresh of cached PNR statuses",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run the refresh queue consumers",
				Action: func(c *cli.Context) error {
					if err := redis_client.Connect(); err != nil {
						return err
					}

					cacheSource := &cachedresults.Source{
						UpstreamSource: railapi.NewSource(),
					}
					cacheSource.Setup()

					StartConsumers(cacheSource)

					signals := make(chan os.Signal, 1)
					signal.Notify(signals, syscall.SIGINT)
					defer signal.Stop(signals)

					<-signals // wait for signal
					go func() {
						<-signals // hard exit on second signal (in case shutdown gets stuck)
						os.Exit(1)
					}()

					<-redis_client.QueueConnection.StopAllConsuming() // wait for all Consume() calls to finish

					return nil
				},
			},
			{
				Name:  "cleaner",
				Usage: "run the queue cleaner for the refresh queue",
				Action: func(c *cli.Context) error {
					if err := redis_client.Connect(); err != nil {
						return err
					}

					StartCleaner()

					return nil
				},
			},
		},
	}
}
