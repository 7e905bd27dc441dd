package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"bored/activity/internal/config"
	model "bored/activity/internal/model/db"
	"bored/activity/internal/pkg/app"
	"bored/activity/internal/pkg/logger"
	"bored/activity/internal/service/bored"
	"bored/activity/internal/service/filter"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "activity",
		Usage: "Random Activity Generator",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "db",
				Usage: "SQLite file or postgres:// URL (overrides ACTIVITY_DB)",
			},
			&cli.StringFlag{
				Name:  "endpoint",
				Usage: "Bored API endpoint (overrides ACTIVITY_API_URL)",
			},
		},
		Commands: []*cli.Command{
			newCommand(),
			listCommand(),
		},
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "new",
		Usage: "fetch a random activity and save it if it matches the filters",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "type", Usage: "Filter by activity type"},
			&cli.IntFlag{Name: "participants", Usage: "Filter by number of participants"},
			&cli.Float64Flag{Name: "price_min", Usage: "Minimum price"},
			&cli.Float64Flag{Name: "price_max", Usage: "Maximum price"},
			&cli.Float64Flag{Name: "accessibility_min", Usage: "Minimum accessibility"},
			&cli.Float64Flag{Name: "accessibility_max", Usage: "Maximum accessibility"},
		},
		Action: func(c *cli.Context) error {
			a, log, err := setup(c)
			if err != nil {
				return err
			}
			criteria := criteriaFromFlags(c)
			if criteria.Type != "" && !model.KnownType(criteria.Type) {
				log.Warn().Str("type", criteria.Type).Msg("type is not in the known vocabulary")
			}

			outcome, err := a.NewActivity(c.Context, criteria)
			if err != nil {
				return err
			}
			log.Debug().Stringer("outcome", outcome).Msg("new finished")
			return nil
		},
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "print the most recently saved activities",
		Action: func(c *cli.Context) error {
			a, _, err := setup(c)
			if err != nil {
				return err
			}
			_, err = a.List(c.Context)
			return err
		},
	}
}

func setup(c *cli.Context) (*app.App, zerolog.Logger, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, zerolog.Nop(), fmt.Errorf("ошибка загрузки .env: %w", err)
	}

	cfg, err := config.New()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if c.IsSet("db") {
		cfg = cfg.WithDBLocation(c.String("db"))
	}
	if c.IsSet("endpoint") {
		cfg = cfg.WithEndpoint(c.String("endpoint"))
	}

	log, err := logger.New(os.Stderr, cfg.LogLevel(), cfg.LogFormat())
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	source := bored.New(cfg.Endpoint(), &http.Client{Timeout: cfg.HTTPTimeout()}, log)
	return app.New(cfg, source, c.App.Writer, log), log, nil
}

func criteriaFromFlags(c *cli.Context) filter.Criteria {
	criteria := filter.Criteria{Type: c.String("type")}
	if c.IsSet("participants") {
		n := c.Int("participants")
		criteria.Participants = &n
	}
	criteria.PriceMin = floatFlag(c, "price_min")
	criteria.PriceMax = floatFlag(c, "price_max")
	criteria.AccessibilityMin = floatFlag(c, "accessibility_min")
	criteria.AccessibilityMax = floatFlag(c, "accessibility_max")
	return criteria
}

func floatFlag(c *cli.Context, name string) *float64 {
	if !c.IsSet(name) {
		return nil
	}
	v := c.Float64(name)
	return &v
}
