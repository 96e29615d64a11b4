// Package lookup provides one-shot terminal lookups, the single-user
// counterpart to the web API.
package lookup

import (
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/railtrace/railtrace/pkg/dataaggregator"
	"github.com/railtrace/railtrace/pkg/dataaggregator/query"
	"github.com/railtrace/railtrace/pkg/dataaggregator/source/cachedresults"
	"github.com/railtrace/railtrace/pkg/dataaggregator/source/railapi"
	"github.com/railtrace/railtrace/pkg/raildata"
	"github.com/railtrace/railtrace/pkg/redis_client"
	"github.com/railtrace/railtrace/pkg/share"
	"github.com/railtrace/railtrace/pkg/tracker"
)

func setupSources() error {
	if err := redis_client.Connect(); err != nil {
		return err
	}

	cacheSource := &cachedresults.Source{
		UpstreamSource: railapi.NewSource(),
	}
	cacheSource.Setup()

	dataaggregator.GlobalSetup(cacheSource)

	return nil
}

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "lookup",
		Usage: "One-shot PNR and train lookups from the terminal",
		Subcommands: []*cli.Command{
			{
				Name:      "pnr",
				Usage:     "print the status summary for a PNR number",
				ArgsUsage: "<pnr-number>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return errors.New("expected a single PNR number argument")
					}

					if err := setupSources(); err != nil {
						return err
					}

					status, err := dataaggregator.Lookup[*raildata.PNRStatus](query.PNRStatus{
						PNRNumber: c.Args().First(),
					})
					if err != nil {
						return err
					}

					fmt.Println(share.SummaryText(status))

					return nil
				},
			},
			{
				Name:      "train",
				Usage:     "print a train's schedule with its estimated position",
				ArgsUsage: "<train-number>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "date",
						Usage: "journey date as YYYY-MM-DD (defaults to today)",
					},
					&cli.BoolFlag{
						Name:  "all",
						Usage: "show every stop instead of the condensed view",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return errors.New("expected a single train number argument")
					}

					if err := setupSources(); err != nil {
						return err
					}

					details, err := dataaggregator.Lookup[*raildata.TrainDetails](query.TrainSchedule{
						TrainNumber: c.Args().First(),
					})
					if err != nil {
						return err
					}

					now := time.Now()

					journeyDate := raildata.DateOf(now)
					if c.String("date") != "" {
						journeyDate, err = raildata.ParseCalendarDate(c.String("date"))
						if err != nil {
							return err
						}
					}

					position, err := tracker.Estimate(details.Schedule, journeyDate, now)
					if err != nil {
						return err
					}

					fmt.Printf("%s - %s (%s to %s) on %s\n\n",
						details.TrainNumber, details.TrainName,
						details.Origin, details.Destination,
						journeyDate)

					for _, stop := range tracker.DisplayStops(details.Schedule, position, c.Bool("all")) {
						printStop(stop, position)
					}

					return nil
				},
			},
		},
	}
}

func printStop(stop raildata.StationStop, position tracker.Position) {
	timing := ""
	if stop.Arrival != nil {
		timing += fmt.Sprintf(" arr %s", stop.Arrival)
	}
	if stop.Departure != nil {
		timing += fmt.Sprintf(" dep %s", stop.Departure)
	}

	fmt.Printf("%-10s %s (%s)%s, day %d, %.0f km\n",
		position.StationStatus(stop.Sequence-1),
		stop.Name, stop.Code,
		timing,
		stop.DayOffset,
		stop.DistanceFromOrigin,
	)
}
