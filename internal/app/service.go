package app

import (
	"context"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// MaxPullRequestPages bounds pull request history walk.
const MaxPullRequestPages = 3

// RecentActivityCount is the number of commits returned by RecentActivity.
const RecentActivityCount = 10

//go:generate mockgen -destination mock/githubclient.go -package mock github.com/pixel-phantoms/phantomboard/internal/app GithubClient

// GithubClient returns github repository data.
type GithubClient interface {
	Repository(ctx context.Context, repo Repo) (RepoMeta, error)
	Contributors(ctx context.Context, repo Repo) ([]Contributor, error)
	PullRequests(ctx context.Context, repo Repo, page int) ([]PullRequest, error)
	CommitCount(ctx context.Context, repo Repo) (int, error)
	RecentCommits(ctx context.Context, repo Repo, count int) ([]Commit, error)
}

// SnapshotRecorder stores successfully loaded leaderboards.
type SnapshotRecorder interface {
	Save(repo Repo, lb *Leaderboard) (string, error)
}

// ServiceOption configures Service.
type ServiceOption func(*Service)

// WithSnapshots makes service record every successful load.
func WithSnapshots(r SnapshotRecorder) ServiceOption {
	return func(s *Service) {
		s.snapshots = r
	}
}

// Service is main apps entry point. Provides all app functionality
type Service struct {
	githubClient GithubClient
	timeout      time.Duration
	l            logrus.FieldLogger
	snapshots    SnapshotRecorder
	now          func() time.Time
}

// NewService creates new Service instance.
// Timeout bounds single Load call, zero disables it.
func NewService(githubClient GithubClient, timeout time.Duration, l logrus.FieldLogger, opts ...ServiceOption) *Service {
	s := &Service{
		githubClient: githubClient,
		timeout:      timeout,
		l:            l,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Load fetches repository data and computes leaderboard from scratch.
//
// Repository metadata, contributors, commit count and pull request history are fetched concurrently.
// Failure of metadata or contributors request fails the whole load. Commit count falls back to
// CommitCountFallback, pull request history keeps pages fetched before the first failure.
func (s *Service) Load(ctx context.Context, repo Repo) (*Leaderboard, error) {
	if err := repo.Validate(); err != nil {
		return nil, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := s.now()
	s.l.Infof("loading leaderboard for %s...", repo)

	var (
		meta         RepoMeta
		contributors []Contributor
		commits      string
		pulls        []PullRequest
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		m, err := s.githubClient.Repository(egCtx, repo)
		if err != nil {
			return &LoadError{Repo: repo, Stage: "repository", Err: err}
		}
		meta = m
		return nil
	})
	eg.Go(func() error {
		cs, err := s.githubClient.Contributors(egCtx, repo)
		if err != nil {
			return &LoadError{Repo: repo, Stage: "contributors", Err: err}
		}
		contributors = cs
		return nil
	})
	eg.Go(func() error {
		commits = s.commitCount(egCtx, repo)
		return nil
	})
	eg.Go(func() error {
		pulls = s.pullRequests(egCtx, repo)
		return nil
	})
	if err := eg.Wait(); err != nil {
		s.l.Errorf("loading leaderboard for %s: %v", repo, err)
		return nil, err
	}

	lb := Aggregate(repo, meta, contributors, pulls, commits)
	lb.LoadedAt = s.now()

	if s.snapshots != nil {
		if _, err := s.snapshots.Save(repo, &lb); err != nil {
			s.l.Warnf("recording snapshot for %s: %v", repo, err)
		}
	}

	s.l.Infof(
		"loading leaderboard for %s done in %v: %d ranked, %d merged prs",
		repo,
		lb.LoadedAt.Sub(start),
		lb.Summary.Contributors,
		lb.Summary.MergedPRs,
	)

	return &lb, nil
}

// RecentActivity returns latest commits of the repository.
func (s *Service) RecentActivity(ctx context.Context, repo Repo) ([]Commit, error) {
	if err := repo.Validate(); err != nil {
		return nil, err
	}

	commits, err := s.githubClient.RecentCommits(ctx, repo, RecentActivityCount)
	if err != nil {
		return nil, &LoadError{Repo: repo, Stage: "recent commits", Err: err}
	}

	return commits, nil
}

func (s *Service) commitCount(ctx context.Context, repo Repo) string {
	count, err := s.githubClient.CommitCount(ctx, repo)
	if err != nil {
		s.l.Warnf("commit count for %s unavailable, using %q: %v", repo, CommitCountFallback, err)
		return CommitCountFallback
	}

	return strconv.Itoa(count)
}

// pullRequests walks pull request pages until MaxPullRequestPages, first empty page or first failure.
func (s *Service) pullRequests(ctx context.Context, repo Repo) []PullRequest {
	var pulls []PullRequest
	for page := 1; page <= MaxPullRequestPages; page++ {
		items, err := s.githubClient.PullRequests(ctx, repo, page)
		if err != nil {
			s.l.Warnf("pull requests page %d for %s failed, keeping %d collected: %v", page, repo, len(pulls), err)
			break
		}
		if len(items) == 0 {
			break
		}
		pulls = append(pulls, items...)
	}

	return pulls
}
