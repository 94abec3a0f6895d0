package limiter

import (
	"context"
	"io"
	"math"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pixel-phantoms/phantomboard/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func okTransport(calls *int64) http.RoundTripper {
	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		atomic.AddInt64(calls, 1)
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("")),
			Request:    r,
		}, nil
	})
}

func TestLimitedTransportRate(t *testing.T) {
	maxRate := 500.0
	testTime := 200 * time.Millisecond

	var calls int64
	transport := NewTransport(okTransport(&calls), maxRate)

	req, _ := http.NewRequest(http.MethodGet, "http://fakeurl", nil)
	startTime := time.Now()
	var trips int
	for startTime.Add(testTime).After(time.Now()) {
		resp, err := transport.RoundTrip(req)
		require.NoError(t, err)
		resp.Body.Close()
		trips++
	}

	expectedTrips := maxRate * float64(testTime) / float64(time.Second)
	diff := math.Abs(float64(trips)-expectedTrips) / expectedTrips
	if diff > 0.1 {
		t.Errorf("unexpected number of round trips: %d, want %d", trips, int(expectedTrips))
	}
	assert.Equal(t, int64(trips), atomic.LoadInt64(&calls))
}

func TestLimitedTransportTimeout(t *testing.T) {
	var calls int64
	transport := NewTransport(okTransport(&calls), 1)

	req, _ := http.NewRequest(http.MethodGet, "http://fakeurl", nil)
	ctx, cancel := context.WithTimeout(req.Context(), 10*time.Millisecond)
	defer cancel()
	req = req.WithContext(ctx)

	resp, err := transport.RoundTrip(req)
	require.NoError(t, err, "first round trip")
	resp.Body.Close()

	// Error is expected because of short ctx timeout and low rate limit.
	_, err = transport.RoundTrip(req)
	require.Error(t, err)
	var tooMany app.TooManyRequestsError
	assert.ErrorAs(t, err, &tooMany)
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
}

func TestNewTransportWithoutLimit(t *testing.T) {
	var calls int64
	next := okTransport(&calls)

	transport := NewTransport(next, 0)
	_, ok := transport.(*limitedTransport)
	assert.False(t, ok, "zero rate should not wrap transport")
}
