package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"bored/activity/internal/config"
	model "bored/activity/internal/model/db"
	"bored/activity/internal/service/bored"
	"bored/activity/internal/service/db"
	"bored/activity/internal/service/filter"

	"github.com/rs/zerolog"
)

type Outcome int

const (
	OutcomeUnavailable Outcome = iota
	OutcomeRejected
	OutcomeSaved
	// OutcomeFailed сопровождает фатальную ошибку: разбор ответа, хранилище, отмена.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUnavailable:
		return "unavailable"
	case OutcomeRejected:
		return "rejected"
	case OutcomeSaved:
		return "saved"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

type Source interface {
	Fetch(ctx context.Context) (*model.Activity, error)
}

type App struct {
	config *config.Config
	source Source
	out    io.Writer
	log    zerolog.Logger
}

func New(cfg *config.Config, source Source, out io.Writer, log zerolog.Logger) *App {
	return &App{
		config: cfg,
		source: source,
		out:    out,
		log:    log,
	}
}

// NewActivity получает активность и сохраняет её, если она проходит фильтры.
// База открывается только для подходящей активности.
func (a *App) NewActivity(ctx context.Context, criteria filter.Criteria) (Outcome, error) {
	if err := criteria.Validate(); err != nil {
		return OutcomeFailed, err
	}

	activity, err := a.source.Fetch(ctx)
	if errors.Is(err, bored.ErrNotAvailable) {
		fmt.Fprintln(a.out, "Failed to retrieve an activity.")
		return OutcomeUnavailable, nil
	}
	if err != nil {
		return OutcomeFailed, err
	}

	if criteria.IsEmpty() {
		a.log.Debug().Msg("no filters set, activity accepted")
	} else if !criteria.Match(activity) {
		a.log.Debug().Str("type", activity.Type).Msg("activity rejected by filters")
		fmt.Fprintln(a.out, "Activity does not match the filters.")
		return OutcomeRejected, nil
	}

	store, err := db.Open(ctx, a.config.DBLocation())
	if err != nil {
		return OutcomeFailed, err
	}

	id, err := store.Save(ctx, activity)
	closeErr := store.Close()
	if err != nil {
		return OutcomeFailed, err
	}
	if closeErr != nil {
		return OutcomeFailed, fmt.Errorf("ошибка закрытия базы: %w", closeErr)
	}

	a.log.Info().Int64("id", id).Str("type", activity.Type).Msg("activity saved")
	fmt.Fprintln(a.out, "Activity saved to the database.")
	return OutcomeSaved, nil
}

// List печатает последние DefaultLimit активностей.
func (a *App) List(ctx context.Context) ([]model.StoredActivity, error) {
	store, err := db.Open(ctx, a.config.DBLocation())
	if err != nil {
		return nil, err
	}

	activities, err := store.Latest(ctx, db.DefaultLimit)
	closeErr := store.Close()
	if err != nil {
		return nil, err
	}
	if closeErr != nil {
		return nil, fmt.Errorf("ошибка закрытия базы: %w", closeErr)
	}

	fmt.Fprintln(a.out, "Latest Activities:")
	for _, activity := range activities {
		fmt.Fprintln(a.out, activity)
	}
	return activities, nil
}
