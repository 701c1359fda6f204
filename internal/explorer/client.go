package explorer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tokenservice/internal/constant"

	"github.com/google/go-querystring/query"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

const maxBodySize = 32 << 20

// Options configures a Client.
type Options struct {
	ApiUrl  string
	ApiKey  string
	Timeout time.Duration
	// RateLimit is the sustained request rate per second; <= 0 disables throttling.
	RateLimit float64
	Burst     int
	// BreakerFailures is the number of consecutive failures that opens the breaker.
	BreakerFailures uint32
	BreakerTimeout  time.Duration
	HTTPClient      *http.Client
}

// Client talks to an Etherscan-compatible REST API (Polygonscan).
type Client struct {
	apiUrl     string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
}

func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	limit := rate.Inf
	if opts.RateLimit > 0 {
		limit = rate.Limit(opts.RateLimit)
	}
	burst := opts.Burst
	if burst <= 0 {
		burst = 1
	}

	failures := opts.BreakerFailures
	if failures == 0 {
		failures = 5
	}

	return &Client{
		apiUrl:     strings.TrimRight(opts.ApiUrl, "?"),
		apiKey:     opts.ApiKey,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(limit, burst),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "explorer",
			Timeout: opts.BreakerTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= failures
			},
		}),
	}
}

// TxList returns the normal transactions of q.Address.
func (c *Client) TxList(ctx context.Context, q TxListQuery) ([]Transaction, error) {
	values, err := query.Values(txListParams{
		Module:      "account",
		Action:      "txlist",
		TxListQuery: q,
		ApiKey:      c.apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode txlist params: %w", err)
	}

	body, err := c.get(ctx, c.apiUrl+"?"+values.Encode())
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to parse txlist response: %w", err)
	}

	if env.Status != statusOK {
		if env.Message == NoTransactionsMessage {
			return []Transaction{}, nil
		}
		return nil, fmt.Errorf("txlist failed: %s: %s", env.Message, resultText(env.Result))
	}

	var txs []Transaction
	if err := json.Unmarshal(env.Result, &txs); err != nil {
		return nil, fmt.Errorf("failed to parse txlist result: %w", err)
	}
	return txs, nil
}

// LastTransactionTime returns the timeStamp of the newest transaction of
// address, or nil when it has none.
func (c *Client) LastTransactionTime(ctx context.Context, address string) (*string, error) {
	txs, err := c.TxList(ctx, TxListQuery{
		Address: address,
		Sort:    constant.SortDesc,
		Page:    1,
		Offset:  1,
	})
	if err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		return nil, nil
	}
	ts := txs[0].TimeStamp
	return &ts, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			return nil, &HTTPError{StatusCode: resp.StatusCode, Body: data}
		}
		return data, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("explorer unavailable: %w", err)
		}
		return nil, fmt.Errorf("explorer GET failed: %w", err)
	}
	return body.([]byte), nil
}

// HTTPError is a non-200 answer from the explorer.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("http error (%d)", e.StatusCode)
	}
	return fmt.Sprintf("http error (%d): %s", e.StatusCode, string(e.Body))
}

func resultText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
