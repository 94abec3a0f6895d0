package github

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"
	"github.com/pixel-phantoms/phantomboard/internal/adapter/github/limiter"
	"golang.org/x/oauth2"
)

// NewHTTPClient creates http client for github rest api.
//
// Requests are limited to maxRate per second and wait out github secondary rate limits,
// up to maxSleep for a single wait. Token is optional, rate limits are lower without it.
func NewHTTPClient(token string, maxRate float64, maxSleep time.Duration, timeout time.Duration) (*http.Client, error) {
	base := limiter.NewTransport(http.DefaultTransport, maxRate)

	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(base, github_ratelimit.WithSingleSleepLimit(maxSleep, nil))
	if err != nil {
		return nil, fmt.Errorf("creating rate limit waiter: %w", err)
	}

	var transport http.RoundTripper = rateLimitWaiter
	if token != "" {
		transport = &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
		}
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}, nil
}
