package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pixel-phantoms/phantomboard/internal/app"
	"github.com/pixel-phantoms/phantomboard/internal/cache/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRepo = app.Repo{Owner: "pixel-phantoms", Name: "site"}

func TestNewLeaderboardCacheInvalidSize(t *testing.T) {
	_, err := NewLeaderboardCache(nil, 0, time.Minute)
	assert.Error(t, err)
}

func TestLeaderboardCacheLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		calls         int
		callsInterval time.Duration
		ttl           time.Duration
		wantCalls     int
	}{
		{
			name:          "calls within ttl",
			calls:         4,
			callsInterval: time.Second,
			ttl:           time.Minute,
			wantCalls:     1,
		},
		{
			name:          "calls with expiring ttl",
			calls:         4,
			callsInterval: 2 * time.Minute,
			ttl:           time.Minute,
			wantCalls:     4,
		},
		{
			name:          "every other call expires",
			calls:         4,
			callsInterval: 40 * time.Second,
			ttl:           time.Minute,
			wantCalls:     2,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			lb := &app.Leaderboard{Repo: testRepo}
			loader := mock.NewMockLoader(ctrl)
			loader.EXPECT().
				Load(gomock.Any(), testRepo).
				Return(lb, nil).
				Times(tt.wantCalls)

			c, err := NewLeaderboardCache(loader, 1, tt.ttl)
			require.NoError(t, err)

			now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			c.now = func() time.Time { return now }

			for i := 0; i < tt.calls; i++ {
				got, err := c.Load(context.Background(), testRepo)
				require.NoError(t, err)
				assert.Same(t, lb, got)
				now = now.Add(tt.callsInterval)
			}
		})
	}
}

func TestLeaderboardCacheKeyIgnoresCase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mock.NewMockLoader(ctrl)
	loader.EXPECT().Load(gomock.Any(), gomock.Any()).Return(&app.Leaderboard{}, nil).Times(1)

	c, err := NewLeaderboardCache(loader, 2, time.Minute)
	require.NoError(t, err)

	_, err = c.Load(context.Background(), testRepo)
	require.NoError(t, err)
	_, err = c.Load(context.Background(), app.Repo{Owner: "Pixel-Phantoms", Name: "SITE"})
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestLeaderboardCacheDoesNotStoreFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loadErr := &app.LoadError{Repo: testRepo, Stage: "repository", Err: errors.New("boom")}
	lb := &app.Leaderboard{Repo: testRepo}

	loader := mock.NewMockLoader(ctrl)
	gomock.InOrder(
		loader.EXPECT().Load(gomock.Any(), testRepo).Return(nil, loadErr),
		loader.EXPECT().Load(gomock.Any(), testRepo).Return(lb, nil),
	)

	c, err := NewLeaderboardCache(loader, 1, time.Minute)
	require.NoError(t, err)

	_, err = c.Load(context.Background(), testRepo)
	assert.True(t, errors.Is(err, app.ErrFetchFailure))
	assert.Equal(t, 0, c.Len())

	got, err := c.Load(context.Background(), testRepo)
	require.NoError(t, err)
	assert.Same(t, lb, got)
	assert.Equal(t, 1, c.Len())
}

func TestLeaderboardCacheRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := &app.Leaderboard{Repo: testRepo}
	second := &app.Leaderboard{Repo: testRepo}

	loader := mock.NewMockLoader(ctrl)
	gomock.InOrder(
		loader.EXPECT().Load(gomock.Any(), testRepo).Return(first, nil),
		loader.EXPECT().Load(gomock.Any(), testRepo).Return(second, nil),
		loader.EXPECT().Load(gomock.Any(), testRepo).Return(nil, errors.New("boom")),
	)

	c, err := NewLeaderboardCache(loader, 1, time.Hour)
	require.NoError(t, err)

	got, err := c.Load(context.Background(), testRepo)
	require.NoError(t, err)
	assert.Same(t, first, got)

	got, err = c.Refresh(context.Background(), testRepo)
	require.NoError(t, err)
	assert.Same(t, second, got)

	// Failed refresh keeps previous entry.
	_, err = c.Refresh(context.Background(), testRepo)
	assert.Error(t, err)

	got, err = c.Load(context.Background(), testRepo)
	require.NoError(t, err)
	assert.Same(t, second, got)
}
