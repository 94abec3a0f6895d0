package board

import (
	"context"
	"errors"
	"testing"

	"github.com/pixel-phantoms/phantomboard/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testRepo = app.Repo{Owner: "pixel-phantoms", Name: "site"}

type leaderboardsMock struct {
	mock.Mock
}

func (m *leaderboardsMock) Load(ctx context.Context, repo app.Repo) (*app.Leaderboard, error) {
	args := m.Called(ctx, repo)
	lb, _ := args.Get(0).(*app.Leaderboard)
	return lb, args.Error(1)
}

func (m *leaderboardsMock) Refresh(ctx context.Context, repo app.Repo) (*app.Leaderboard, error) {
	args := m.Called(ctx, repo)
	lb, _ := args.Get(0).(*app.Leaderboard)
	return lb, args.Error(1)
}

type activityMock struct {
	mock.Mock
}

func (m *activityMock) RecentActivity(ctx context.Context, repo app.Repo) ([]app.Commit, error) {
	args := m.Called(ctx, repo)
	cs, _ := args.Get(0).([]app.Commit)
	return cs, args.Error(1)
}

type historyMock struct {
	mock.Mock
}

func (m *historyMock) History(repo app.Repo, limit int) ([]app.SnapshotInfo, error) {
	args := m.Called(repo, limit)
	infos, _ := args.Get(0).([]app.SnapshotInfo)
	return infos, args.Error(1)
}

func testLeaderboard(n int) *app.Leaderboard {
	lb := &app.Leaderboard{Repo: testRepo}
	for i := 0; i < n; i++ {
		lb.Ranked = append(lb.Ranked, app.RankedContributor{
			Contributor: app.Contributor{Login: string(rune('a' + i))},
			PRs:         1,
			Points:      100 - i,
		})
	}
	return lb
}

func TestBoardPage(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		refresh   bool
		loadErr   error
		wantCount int
		wantErr   error
	}{
		{
			name:      "cached first page",
			page:      1,
			wantCount: 8,
		},
		{
			name:      "refreshed last page",
			page:      2,
			refresh:   true,
			wantCount: 2,
		},
		{
			name:    "page out of range",
			page:    3,
			wantErr: app.ErrOutOfRange,
		},
		{
			name:    "load failure",
			page:    1,
			loadErr: &app.LoadError{Repo: testRepo, Stage: "repository", Err: errors.New("boom")},
			wantErr: app.ErrFetchFailure,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lbs := &leaderboardsMock{}
			method := "Load"
			if tt.refresh {
				method = "Refresh"
			}
			var lb *app.Leaderboard
			if tt.loadErr == nil {
				lb = testLeaderboard(10)
			}
			lbs.On(method, mock.Anything, testRepo).Return(lb, tt.loadErr).Once()

			b := New(lbs, &activityMock{}, &historyMock{}, 10)
			gotLb, page, err := b.Page(context.Background(), testRepo, tt.page, tt.refresh)
			lbs.AssertExpectations(t)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got error %v", err)
				assert.Nil(t, gotLb)
				return
			}
			require.NoError(t, err)
			assert.Same(t, lb, gotLb)
			assert.Len(t, page.Entries, tt.wantCount)
			assert.Equal(t, tt.page, page.Number)
			assert.Equal(t, 2, page.TotalPages)
		})
	}
}

func TestBoardContributor(t *testing.T) {
	lbs := &leaderboardsMock{}
	lbs.On("Load", mock.Anything, testRepo).Return(testLeaderboard(10), nil)

	b := New(lbs, &activityMock{}, &historyMock{}, 10)

	d, err := b.Contributor(context.Background(), testRepo, "C")
	require.NoError(t, err)
	assert.Equal(t, 3, d.Rank)
	assert.Equal(t, "c", d.Login)

	_, err = b.Contributor(context.Background(), testRepo, "zz")
	assert.True(t, app.IsNotFoundError(err))
}

func TestBoardRecentActivity(t *testing.T) {
	commits := []app.Commit{{SHA: "a", AuthorName: "Alice"}}
	activity := &activityMock{}
	activity.On("RecentActivity", mock.Anything, testRepo).Return(commits, nil)

	b := New(&leaderboardsMock{}, activity, &historyMock{}, 10)

	got, err := b.RecentActivity(context.Background(), testRepo)
	require.NoError(t, err)
	assert.Equal(t, commits, got)
}

func TestBoardHistory(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "default limit", limit: 0, wantLimit: 20},
		{name: "within limit", limit: 5, wantLimit: 5},
		{name: "above limit", limit: 500, wantLimit: 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := &historyMock{}
			history.On("History", testRepo, tt.wantLimit).Return([]app.SnapshotInfo{{ID: "x"}}, nil).Once()

			b := New(&leaderboardsMock{}, &activityMock{}, history, 20)

			got, err := b.History(context.Background(), testRepo, tt.limit)
			require.NoError(t, err)
			assert.Len(t, got, 1)
			history.AssertExpectations(t)
		})
	}

	b := New(&leaderboardsMock{}, &activityMock{}, &historyMock{}, 20)
	_, err := b.History(context.Background(), app.Repo{}, 1)
	assert.True(t, app.IsInvalidRequestError(err))
}
