package app

import (
	"strings"
	"time"
)

// Repo identifies a github repository.
type Repo struct {
	Owner string
	Name  string
}

// ParseRepo parses "owner/name" form.
func ParseRepo(s string) (Repo, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return Repo{}, InvalidRequestError("repository must be in owner/name form")
	}
	r := Repo{Owner: parts[0], Name: parts[1]}
	if err := r.Validate(); err != nil {
		return Repo{}, err
	}

	return r, nil
}

// Validate checks that both parts of repository identifier are present.
func (r Repo) Validate() error {
	if r.Owner == "" {
		return InvalidRequestError("repository owner cannot be empty")
	}
	if r.Name == "" {
		return InvalidRequestError("repository name cannot be empty")
	}
	return nil
}

func (r Repo) String() string {
	return r.Owner + "/" + r.Name
}

// IsOwner tells if login belongs to repository owner. Comparison ignores case.
func (r Repo) IsOwner(login string) bool {
	return strings.EqualFold(r.Owner, login)
}

// RepoMeta entity
type RepoMeta struct {
	Stars int
	Forks int
}

// Contributor entity
type Contributor struct {
	ID            int64
	Login         string
	AvatarURL     string
	HTMLURL       string
	Contributions int
}

// PullRequest entity. Only requests with MergedAt set are scored.
type PullRequest struct {
	AuthorLogin string
	MergedAt    *time.Time
	Labels      []string
}

// Merged tells if pull request was merged.
func (p PullRequest) Merged() bool {
	return p.MergedAt != nil
}

// ScoreEntry holds per-login merged pull requests count and points.
type ScoreEntry struct {
	PRCount int
	Points  int
}

// RankedContributor is a contributor joined with its score.
type RankedContributor struct {
	Contributor
	PRs    int
	Points int
}

// Commit entity, used for recent activity feed.
type Commit struct {
	SHA        string
	AuthorName string
	Message    string
	Date       time.Time
}

// Distribution describes points spread over ranked contributors.
type Distribution struct {
	Mean         float64
	Median       float64
	Percentile90 float64
}

// Summary holds project wide counters.
type Summary struct {
	Contributors int
	MergedPRs    int
	Points       int
	Stars        int
	Forks        int

	// Commits is a number or a fallback literal when total count couldn't be determined.
	Commits string

	Distribution Distribution
}

// Leaderboard is the result of a single full load.
type Leaderboard struct {
	Repo Repo

	// Lead is the repository owner's contributor entry, if present on contributors list.
	Lead *Contributor

	Ranked   []RankedContributor
	Summary  Summary
	LoadedAt time.Time
}

// Page returns given page of ranked contributors using default page size.
func (lb *Leaderboard) Page(number int) (Page, error) {
	return Paginate(lb.Ranked, number, PageSize)
}

// SnapshotInfo describes single recorded leaderboard.
type SnapshotInfo struct {
	ID           string
	Repo         string
	LoadedAt     time.Time
	Contributors int
	MergedPRs    int
	Points       int
}
