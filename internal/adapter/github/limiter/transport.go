package limiter

import (
	"fmt"
	"net/http"

	"github.com/pixel-phantoms/phantomboard/internal/app"
	"golang.org/x/time/rate"
)

// limitedTransport wraps http.RoundTripper and allows round trips with maximum rate limit.
type limitedTransport struct {
	next    http.RoundTripper
	limiter *rate.Limiter
}

// NewTransport creates rate limited http.RoundTripper.
// maxRate - maximum number of requests per second. Non positive rate disables limiting.
func NewTransport(next http.RoundTripper, maxRate float64) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	if maxRate <= 0 {
		return next
	}

	return &limitedTransport{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(maxRate), 1),
	}
}

// RoundTrip executes http request. If limit is exceeded, blocks until request rate is within limit.
func (t *limitedTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(r.Context()); err != nil {
		return nil, app.TooManyRequestsError(fmt.Sprintf("waiting for transport limiter: %v", err))
	}

	return t.next.RoundTrip(r)
}
