package bored

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	model "bored/activity/internal/model/db"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

var (
	// ErrNotAvailable возвращается, когда API не отдал активность.
	ErrNotAvailable = errors.New("активность недоступна")
	// ErrIncomplete - ответ 200 без обязательных полей активности.
	ErrIncomplete = errors.New("неполный ответ API")
)

type Client struct {
	endpoint string
	http     *http.Client
	log      zerolog.Logger
}

// Ответ API: отсутствующий ключ остаётся nil.
type response struct {
	Activity      *string  `json:"activity"`
	Type          *string  `json:"type"`
	Participants  *int     `json:"participants"`
	Price         *float64 `json:"price"`
	Accessibility *float64 `json:"accessibility"`
	Error         string   `json:"error"`
}

func New(endpoint string, httpClient *http.Client, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		endpoint: endpoint,
		http:     httpClient,
		log:      log,
	}
}

// Fetch делает один GET без параметров запроса: фильтрация выполняется на стороне клиента.
func (c *Client) Fetch(ctx context.Context) (*model.Activity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		c.log.Debug().Err(err).Str("endpoint", c.endpoint).Msg("request failed")
		return nil, ErrNotAvailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Debug().Int("status", resp.StatusCode).Str("endpoint", c.endpoint).Msg("unexpected status")
		return nil, ErrNotAvailable
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("ошибка разбора активности: %w", err)
	}
	activity, err := body.toActivity()
	if err != nil {
		return nil, err
	}
	c.log.Debug().Str("type", activity.Type).Int("participants", activity.Participants).Msg("activity fetched")

	return activity, nil
}

func (r response) toActivity() (*model.Activity, error) {
	if r.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrIncomplete, r.Error)
	}
	if r.Activity == nil || r.Type == nil || r.Participants == nil || r.Price == nil || r.Accessibility == nil {
		return nil, fmt.Errorf("%w: нет обязательных полей", ErrIncomplete)
	}
	if *r.Participants < 1 {
		return nil, fmt.Errorf("%w: participants = %d", ErrIncomplete, *r.Participants)
	}
	return &model.Activity{
		Activity:      *r.Activity,
		Type:          *r.Type,
		Participants:  *r.Participants,
		Price:         *r.Price,
		Accessibility: *r.Accessibility,
	}, nil
}
