package riot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/big21ray/soloqtracker-discord/internal/config"
	"github.com/big21ray/soloqtracker-discord/internal/constants"
	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"
	"github.com/valyala/fasthttp"
)

// Transport is the subset of *fasthttp.Client the fetcher needs. Tests
// substitute a scripted fake.
type Transport interface {
	DoDeadline(req *fasthttp.Request, resp *fasthttp.Response, deadline time.Time) error
}

// Client issues authenticated GETs against the Riot API with bounded
// retry and backoff. All callers in a run share one Client so the
// backoff-on-429 behavior is the single defense against provider
// throttling.
type Client struct {
	apiKey    string
	transport Transport
	retries   int
	timeout   time.Duration
	backoff   float64
	logger    zerolog.Logger
}

func NewClient(cfg *config.Config, logger zerolog.Logger) *Client {
	retries := cfg.FetchRetries
	if retries < 1 {
		retries = 1
	}
	return &Client{
		apiKey: cfg.RiotAPIKey,
		transport: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         cfg.FetchTimeout,
			WriteTimeout:        cfg.FetchTimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		retries: retries,
		timeout: cfg.FetchTimeout,
		backoff: cfg.FetchBackoff,
		logger:  logger,
	}
}

// getJSON fetches rawURL and decodes the 200 body into out.
//
// Per attempt: 200 returns immediately; 429 sleeps for the server's
// Retry-After hint when present, else min(2^attempt, 60)s, and retries;
// 500/502/503/504 and transport failures sleep min(backoff^attempt,
// 30)s and retry; every other status fails at once with an
// UpstreamError. Exhausting the attempt budget yields a RateLimitError
// when the final response was a 429, otherwise a TransientFetchError
// wrapping the last transport failure. Sleeps honor ctx cancellation.
func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	var (
		attempt   int
		nextDelay time.Duration
		lastNet   error
		last429   bool
		retryable bool
	)

	// The delay after each attempt depends on the response itself
	// (Retry-After on 429), so the attempt body computes it and the
	// backoff just replays it.
	backoff := retry.WithMaxRetries(uint64(c.retries-1), retry.BackoffFunc(func() (time.Duration, bool) {
		return nextDelay, false
	}))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		last429, retryable = false, false

		status, body, retryAfter, err := c.do(ctx, rawURL)
		if err != nil {
			lastNet = err
			retryable = true
			nextDelay = backoffDelay(c.backoff, attempt, constants.TransientSleepCap)
			c.logger.Warn().Err(err).Int("attempt", attempt).Str("url", rawURL).Msg("transport failure")
			return retry.RetryableError(err)
		}

		switch status {
		case fasthttp.StatusOK:
			if err := json.Unmarshal(body, out); err != nil {
				return fmt.Errorf("decoding response from %s: %w", rawURL, err)
			}
			return nil
		case fasthttp.StatusTooManyRequests:
			last429, retryable = true, true
			nextDelay = backoffDelay(2, attempt, constants.RateLimitSleepCap)
			if retryAfter > 0 {
				nextDelay = retryAfter
			}
			c.logger.Warn().Int("attempt", attempt).Dur("sleep", nextDelay).Msg("rate limited by riot api")
			return retry.RetryableError(fmt.Errorf("status 429"))
		case fasthttp.StatusInternalServerError, fasthttp.StatusBadGateway,
			fasthttp.StatusServiceUnavailable, fasthttp.StatusGatewayTimeout:
			retryable = true
			nextDelay = backoffDelay(c.backoff, attempt, constants.TransientSleepCap)
			c.logger.Warn().Int("attempt", attempt).Int("status", status).Msg("transient riot api failure")
			return retry.RetryableError(fmt.Errorf("status %d", status))
		default:
			return &UpstreamError{Status: status, Body: string(body)}
		}
	})
	if err == nil {
		return nil
	}

	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if !retryable {
		return err
	}
	if last429 {
		return &RateLimitError{Attempts: attempt}
	}
	return &TransientFetchError{Attempts: attempt, Last: lastNet}
}

func (c *Client) do(ctx context.Context, rawURL string) (status int, body []byte, retryAfter time.Duration, err error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(rawURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("X-Riot-Token", c.apiKey)

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := c.transport.DoDeadline(req, resp, deadline); err != nil {
		return 0, nil, 0, err
	}

	status = resp.StatusCode()
	body = append([]byte(nil), resp.Body()...)
	if s := string(resp.Header.Peek(fasthttp.HeaderRetryAfter)); s != "" {
		if secs, perr := strconv.ParseFloat(s, 64); perr == nil && secs > 0 {
			retryAfter = time.Duration(secs * float64(time.Second))
		}
	}
	return status, body, retryAfter, nil
}

// backoffDelay is min(base^attempt, limit) in seconds.
func backoffDelay(base float64, attempt int, limit time.Duration) time.Duration {
	d := time.Duration(math.Pow(base, float64(attempt)) * float64(time.Second))
	if d <= 0 || d > limit {
		return limit
	}
	return d
}
