package itempool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"wordbingo/internal/models"
)

const defaultTimeout = 5 * time.Second

// ErrNoCredential is returned when the source is constructed without an API
// key; the caller falls back to the static dataset.
var ErrNoCredential = errors.New("item API credential is not configured")

// Config holds configuration for the HTTP item source
type Config struct {
	// BaseURL is the item API endpoint, e.g. https://api.example.com/items
	BaseURL string

	// APIKey is the bearer credential; empty means the source is unusable
	APIKey string

	// HTTPClient is optional; a client with a default timeout is used otherwise
	HTTPClient *http.Client

	// Logger is optional
	Logger zerolog.Logger
}

// httpSource implements Source against a JSON item API
type httpSource struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     zerolog.Logger
}

// NewHTTP creates a new HTTP-backed item source
func NewHTTP(cfg *Config) (*httpSource, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("base URL cannot be empty")
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	return &httpSource{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  client,
		log:     cfg.Logger,
	}, nil
}

// itemPayload is the wire form of one item
type itemPayload struct {
	ID            string `json:"id"`
	DisplayForm   string `json:"display_form"`
	Meaning       string `json:"meaning"`
	Pronunciation string `json:"pronunciation"`
}

// FetchItemPool fetches items for the tier from the API. A single attempt;
// the engine substitutes the fallback dataset on any error.
func (s *httpSource) FetchItemPool(ctx context.Context, tier models.Tier, count int) ([]models.Item, error) {
	if s.apiKey == "" {
		return nil, ErrNoCredential
	}

	endpoint := fmt.Sprintf("%s?tier=%s&count=%s",
		s.baseURL, url.QueryEscape(string(tier)), strconv.Itoa(count))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build item request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("item API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("item API returned status %d", resp.StatusCode)
	}

	var payload []itemPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode item response: %w", err)
	}

	if len(payload) == 0 {
		return nil, errors.New("item API returned no items")
	}

	items := make([]models.Item, 0, len(payload))
	for i, p := range payload {
		id := p.ID
		if id == "" {
			id = fmt.Sprintf("%s-%d", tier, i)
		}
		items = append(items, models.NewItem(id, p.DisplayForm, p.Meaning, p.Pronunciation))
	}

	s.log.Debug().
		Str("tier", string(tier)).
		Int("count", len(items)).
		Msg("fetched item pool")

	return items, nil
}
