package direct

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// maxBackoff caps the exponential component of the computed delay.
const maxBackoff = 20 * time.Second

// exponentialDelay computes the wait before retry number attempt
// (0-based): min(2^attempt, 20s) plus a uniformly random jitter in
// [0, jitterMax). The result is never negative.
func exponentialDelay(attempt int, jitterMax time.Duration) time.Duration {
	if attempt < 0 {
		attempt = 0
	}

	delay := maxBackoff
	if attempt < 5 {
		delay = time.Duration(1<<uint(attempt)) * time.Second
	}

	if jitterMax > 0 {
		delay += time.Duration(rand.Float64() * float64(jitterMax))
	}

	return delay
}

// parseRetryAfter interprets a Retry-After header value as a plain number
// of seconds. It reports false for a missing or malformed value; the
// HTTP-date form of the header is not supported and falls back to the
// exponential formula. Negative values clamp to zero.
func parseRetryAfter(value string) (time.Duration, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	seconds, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}

	if seconds < 0 {
		return 0, true
	}

	return time.Duration(seconds * float64(time.Second)), true
}
