// Package board combines cached leaderboards, recent activity and snapshot history
// into a single read API for transports.
package board

import (
	"context"

	"github.com/pixel-phantoms/phantomboard/internal/app"
)

// Leaderboards returns loaded leaderboards, possibly from cache.
type Leaderboards interface {
	Load(ctx context.Context, repo app.Repo) (*app.Leaderboard, error)
	Refresh(ctx context.Context, repo app.Repo) (*app.Leaderboard, error)
}

// Activity returns latest commits.
type Activity interface {
	RecentActivity(ctx context.Context, repo app.Repo) ([]app.Commit, error)
}

// History returns recorded snapshots.
type History interface {
	History(repo app.Repo, limit int) ([]app.SnapshotInfo, error)
}

// Board serves leaderboard views.
type Board struct {
	leaderboards Leaderboards
	activity     Activity
	history      History
	historyLimit int
}

// New creates new Board instance. historyLimit caps number of returned snapshots.
func New(leaderboards Leaderboards, activity Activity, history History, historyLimit int) *Board {
	return &Board{
		leaderboards: leaderboards,
		activity:     activity,
		history:      history,
		historyLimit: historyLimit,
	}
}

// Page returns leaderboard and its given page. With refresh set, leaderboard is loaded from scratch.
func (b *Board) Page(ctx context.Context, repo app.Repo, page int, refresh bool) (*app.Leaderboard, app.Page, error) {
	lb, err := b.leaderboard(ctx, repo, refresh)
	if err != nil {
		return nil, app.Page{}, err
	}

	p, err := lb.Page(page)
	if err != nil {
		return nil, app.Page{}, err
	}

	return lb, p, nil
}

// Contributor returns ranked contributor details.
func (b *Board) Contributor(ctx context.Context, repo app.Repo, login string) (app.ContributorDetail, error) {
	lb, err := b.leaderboard(ctx, repo, false)
	if err != nil {
		return app.ContributorDetail{}, err
	}

	return lb.Detail(login)
}

// RecentActivity returns latest commits in repository.
func (b *Board) RecentActivity(ctx context.Context, repo app.Repo) ([]app.Commit, error) {
	return b.activity.RecentActivity(ctx, repo)
}

// History returns recorded snapshots, newest first.
// Non positive limit or limit above configured maximum is replaced with the maximum.
func (b *Board) History(ctx context.Context, repo app.Repo, limit int) ([]app.SnapshotInfo, error) {
	if err := repo.Validate(); err != nil {
		return nil, err
	}
	if limit <= 0 || (b.historyLimit > 0 && limit > b.historyLimit) {
		limit = b.historyLimit
	}

	return b.history.History(repo, limit)
}

func (b *Board) leaderboard(ctx context.Context, repo app.Repo, refresh bool) (*app.Leaderboard, error) {
	if refresh {
		return b.leaderboards.Refresh(ctx, repo)
	}
	return b.leaderboards.Load(ctx, repo)
}
