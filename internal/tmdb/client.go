package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// maxBodyBytes caps how much of a TMDb response is read.
const maxBodyBytes = 4 << 20

// StatusError is a non-2xx reply from TMDb.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb returned status %d: %s", e.StatusCode, e.Body)
}

// ErrCircuitOpen is returned while the breaker rejects calls.
var ErrCircuitOpen = gobreaker.ErrOpenState

type BreakerConfig struct {
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	FailureRatio float64
	MinRequests  uint32
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:  1,
		Interval:     60 * time.Second,
		Timeout:      30 * time.Second,
		FailureRatio: 0.5,
		MinRequests:  5,
	}
}

type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	Breaker BreakerConfig
}

// Client talks to the TMDb v3 API. It never retries and never caches.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]byte]
	log        *zap.Logger
}

func NewClient(cfg Config, log *zap.Logger) *Client {
	log = log.With(zap.String("client", "tmdb"))

	settings := gobreaker.Settings{
		Name:        "tmdb",
		MaxRequests: cfg.Breaker.MaxRequests,
		Interval:    cfg.Breaker.Interval,
		Timeout:     cfg.Breaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.Breaker.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.Breaker.FailureRatio
		},
		// 4xx is the caller's problem (e.g. unknown movie id), not an outage.
		IsSuccessful: func(err error) bool {
			var statusErr *StatusError
			if errors.As(err, &statusErr) {
				return statusErr.StatusCode < 500
			}
			return err == nil
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
			breakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	}
	breakerState.WithLabelValues(settings.Name).Set(0)

	return &Client{
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    gobreaker.NewCircuitBreaker[[]byte](settings),
		log:        log,
	}
}

func (c *Client) GetMovie(ctx context.Context, movieID string) (*MovieDetails, error) {
	var movie MovieDetails
	if err := c.get(ctx, "movie", "/movie/"+url.PathEscape(movieID), nil, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

func (c *Client) GetPopularMovies(ctx context.Context) (*MoviePage, error) {
	var page MoviePage
	if err := c.get(ctx, "popular", "/movie/popular", nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) SearchMovies(ctx context.Context, query string) (*MoviePage, error) {
	var page MoviePage
	params := url.Values{"query": []string{query}}
	if err := c.get(ctx, "search", "/search/movie", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// State exposes the breaker state for health reporting.
func (c *Client) State() gobreaker.State {
	return c.breaker.State()
}

func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values, dst any) error {
	start := time.Now()
	outcome := "error"
	defer func() {
		requestsTotal.WithLabelValues(endpoint, outcome).Inc()
		requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.do(ctx, target)
	})
	if err != nil {
		if errors.Is(err, ErrCircuitOpen) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			outcome = "rejected"
		}
		c.log.Warn("TMDb request failed",
			zap.String("endpoint", endpoint),
			zap.String("path", path),
			zap.Error(err),
		)
		return fmt.Errorf("tmdb %s: %w", endpoint, err)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		c.log.Warn("TMDb returned malformed payload", zap.String("endpoint", endpoint), zap.Error(err))
		return fmt.Errorf("decode tmdb %s response: %w", endpoint, err)
	}

	outcome = "success"
	return nil
}

func (c *Client) do(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet := string(body)
		if len(snippet) > 256 {
			snippet = snippet[:256]
		}
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: snippet}
	}

	return body, nil
}
