package riot

import "fmt"

// UpstreamError is a non-retryable API response: any status other than
// 200, 429 and the transient 5xx family. It carries the response body
// for diagnostics.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("riot api error %d: %s", e.Status, e.Body)
}

// TransientFetchError reports the retry budget spent on timeouts or
// transient server failures. Last holds the most recent transport
// failure, if any.
type TransientFetchError struct {
	Attempts int
	Last     error
}

func (e *TransientFetchError) Error() string {
	if e.Last != nil {
		return fmt.Sprintf("giving up after %d attempts: %v", e.Attempts, e.Last)
	}
	return fmt.Sprintf("giving up after %d attempts", e.Attempts)
}

func (e *TransientFetchError) Unwrap() error { return e.Last }

// RateLimitError reports a 429 still in effect after the backoff
// budget was spent.
type RateLimitError struct {
	Attempts int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited after %d attempts", e.Attempts)
}

// ResolutionError reports an account label that cannot be split into a
// riot id.
type ResolutionError struct {
	Label string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve %q: tag line is required (use \"Name#TAG\")", e.Label)
}
