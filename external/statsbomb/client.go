package statsbomb

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-ai/internal/platform/logging"
	"github.com/riskibarqy/football-ai/internal/platform/resilience"
	"github.com/riskibarqy/football-ai/internal/usecase"
	"github.com/valyala/fasthttp"
)

const (
	defaultBaseURL     = "https://raw.githubusercontent.com/statsbomb/open-data/master/data"
	defaultTimeout     = 20 * time.Second
	maxResponseBodyLen = 32 << 20
)

var errStatsBombTransient = crerr.New("statsbomb transient failure")

// RequestObserver receives the outcome of every provider request; the metrics
// service implements it.
type RequestObserver interface {
	ProviderRequest(resource string, err error)
}

type ClientConfig struct {
	HTTPClient     *fasthttp.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	Observer       RequestObserver
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *fasthttp.Client
	baseURL        string
	timeout        time.Duration
	maxRetries     int
	logger         *logging.Logger
	observer       RequestObserver
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
	retryBackoff   time.Duration
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:                "football-ai",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: maxResponseBodyLen,
		}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breaker := resilience.NewCircuitBreaker(cfg.CircuitBreaker)
	breaker.OnStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("statsbomb circuit breaker state changed", "from", from, "to", to)
	})

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		timeout:        timeout,
		maxRetries:     max(cfg.MaxRetries, 0),
		logger:         logger,
		observer:       cfg.Observer,
		breaker:        breaker,
		circuitEnabled: cfg.CircuitBreaker.Enabled,
		retryBackoff:   time.Second,
	}
}

// getJSON fetches path relative to the base URL and decodes it into target.
// Identical concurrent requests share one round trip.
func (c *Client) getJSON(ctx context.Context, resource, path string, target any) (err error) {
	defer func() {
		if c.observer != nil {
			c.observer.ProviderRequest(resource, err)
		}
	}()

	if c.circuitEnabled {
		if allowErr := c.breaker.Allow(); allowErr != nil {
			c.logger.WarnContext(ctx, "statsbomb circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: match data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.baseURL + path
	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errStatsBombTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		if crerr.Is(err, errStatsBombTransient) {
			return fmt.Errorf("%w: %v", usecase.ErrDependencyUnavailable, err)
		}
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrapf(err, "decode %s payload", resource)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, status, err := c.do(ctx, fullURL)
		switch {
		case err != nil:
			lastErr = crerr.Mark(crerr.Wrap(err, "send request"), errStatsBombTransient)
		case status >= 200 && status < 300:
			return raw, nil
		case status == http.StatusNotFound:
			return nil, crerr.Wrapf(usecase.ErrNotFound, "provider has no resource at %s", fullURL)
		case isRetryableStatus(status):
			lastErr = crerr.Mark(crerr.Newf("provider status=%d body=%s", status, abbreviateBody(raw)), errStatsBombTransient)
		default:
			return nil, crerr.Newf("provider status=%d body=%s", status, abbreviateBody(raw))
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * c.retryBackoff
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = crerr.Mark(crerr.New("provider request failed"), errStatsBombTransient)
	}
	c.logger.WarnContext(ctx, "statsbomb request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func (c *Client) do(ctx context.Context, fullURL string) ([]byte, int, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		return nil, 0, context.DeadlineExceeded
	}

	if err := c.httpClient.DoTimeout(req, resp, timeout); err != nil {
		return nil, 0, err
	}
	// resp is returned to the pool, so the body must be copied out.
	body := append([]byte(nil), resp.Body()...)
	return body, resp.StatusCode(), nil
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
