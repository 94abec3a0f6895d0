package refresh

import (
	"context"
	"fmt"
	"time"

	"github.com/pixel-phantoms/phantomboard/internal/app"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Refresher reloads leaderboard bypassing any cached data.
type Refresher interface {
	Refresh(ctx context.Context, repo app.Repo) (*app.Leaderboard, error)
}

// Scheduler periodically refreshes leaderboards of configured repositories.
type Scheduler struct {
	refresher Refresher
	repos     []app.Repo
	timeout   time.Duration
	cron      *cron.Cron
	l         logrus.FieldLogger
}

// NewScheduler creates new Scheduler instance.
// spec is standard 5 field cron expression or descriptor like "@every 10m".
func NewScheduler(refresher Refresher, repos []app.Repo, spec string, timeout time.Duration, l logrus.FieldLogger) (*Scheduler, error) {
	s := &Scheduler{
		refresher: refresher,
		repos:     repos,
		timeout:   timeout,
		cron:      cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		l:         l,
	}

	if _, err := s.cron.AddFunc(spec, s.RefreshAll); err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
	}

	return s, nil
}

// Start runs scheduler in its own goroutine.
// Doesn't block.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops scheduler and waits for running refresh to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// RefreshAll refreshes every configured repository one by one.
// Failures are logged, previously loaded data stays in place.
func (s *Scheduler) RefreshAll() {
	for _, repo := range s.repos {
		ctx := context.Background()
		var cancel context.CancelFunc
		if s.timeout > 0 {
			ctx, cancel = context.WithTimeout(ctx, s.timeout)
		}

		lb, err := s.refresher.Refresh(ctx, repo)
		if cancel != nil {
			cancel()
		}
		if err != nil {
			s.l.Errorf("refreshing %s: %v", repo, err)
			continue
		}

		s.l.Infof("refreshed %s: %d ranked contributors", repo, len(lb.Ranked))
	}
}
