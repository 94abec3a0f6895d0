package http

import (
	"time"

	"github.com/pixel-phantoms/phantomboard/internal/app"
)

type contributor struct {
	ID            int64  `json:"id"`
	Login         string `json:"login"`
	AvatarURL     string `json:"avatarUrl"`
	HTMLURL       string `json:"htmlUrl"`
	Contributions int    `json:"contributions"`
}

type league struct {
	Name       string `json:"name"`
	Label      string `json:"label"`
	Badge      string `json:"badge"`
	BadgeClass string `json:"badgeClass"`
	TierClass  string `json:"tierClass"`
}

type entry struct {
	Rank          int    `json:"rank"`
	ID            int64  `json:"id"`
	Login         string `json:"login"`
	AvatarURL     string `json:"avatarUrl"`
	HTMLURL       string `json:"htmlUrl"`
	Contributions int    `json:"contributions"`
	PRs           int    `json:"prs"`
	Points        int    `json:"points"`
	League        league `json:"league"`
}

type distribution struct {
	Mean         float64 `json:"mean"`
	Median       float64 `json:"median"`
	Percentile90 float64 `json:"p90"`
}

type summary struct {
	Contributors int          `json:"contributors"`
	MergedPRs    int          `json:"mergedPRs"`
	Points       int          `json:"points"`
	Stars        int          `json:"stars"`
	Forks        int          `json:"forks"`
	Commits      string       `json:"commits"`
	Distribution distribution `json:"distribution"`
}

type page struct {
	Number     int     `json:"number"`
	TotalPages int     `json:"totalPages"`
	HasPrev    bool    `json:"hasPrev"`
	HasNext    bool    `json:"hasNext"`
	Entries    []entry `json:"entries"`
}

type leaderboardResponse struct {
	Repo     string       `json:"repo"`
	Lead     *contributor `json:"lead"`
	Summary  summary      `json:"summary"`
	Page     page         `json:"page"`
	LoadedAt time.Time    `json:"loadedAt"`
}

type contributorResponse struct {
	Repo        string `json:"repo"`
	Contributor entry  `json:"contributor"`
	PRSearchURL string `json:"prSearchUrl"`
	ProfileURL  string `json:"profileUrl"`
}

type commit struct {
	SHA        string    `json:"sha"`
	AuthorName string    `json:"author"`
	Message    string    `json:"message"`
	Date       time.Time `json:"date"`
}

type activityResponse struct {
	Repo    string   `json:"repo"`
	Commits []commit `json:"commits"`
}

type snapshot struct {
	ID           string    `json:"id"`
	LoadedAt     time.Time `json:"loadedAt"`
	Contributors int       `json:"contributors"`
	MergedPRs    int       `json:"mergedPRs"`
	Points       int       `json:"points"`
}

type snapshotsResponse struct {
	Repo      string     `json:"repo"`
	Snapshots []snapshot `json:"snapshots"`
}

func newContributor(c app.Contributor) contributor {
	return contributor{
		ID:            c.ID,
		Login:         c.Login,
		AvatarURL:     c.AvatarURL,
		HTMLURL:       c.HTMLURL,
		Contributions: c.Contributions,
	}
}

func newLeague(l app.League) league {
	return league{
		Name:       l.String(),
		Label:      l.Label(),
		Badge:      l.Badge(),
		BadgeClass: l.BadgeClass(),
		TierClass:  l.TierClass(),
	}
}

func newEntry(e app.PageEntry) entry {
	return entry{
		Rank:          e.Rank,
		ID:            e.ID,
		Login:         e.Login,
		AvatarURL:     e.AvatarURL,
		HTMLURL:       e.HTMLURL,
		Contributions: e.Contributions,
		PRs:           e.PRs,
		Points:        e.Points,
		League:        newLeague(e.League),
	}
}

func newLeaderboardResponse(lb *app.Leaderboard, p app.Page) leaderboardResponse {
	entries := make([]entry, 0, len(p.Entries))
	for _, e := range p.Entries {
		entries = append(entries, newEntry(e))
	}

	var lead *contributor
	if lb.Lead != nil {
		c := newContributor(*lb.Lead)
		lead = &c
	}

	s := lb.Summary
	return leaderboardResponse{
		Repo: lb.Repo.String(),
		Lead: lead,
		Summary: summary{
			Contributors: s.Contributors,
			MergedPRs:    s.MergedPRs,
			Points:       s.Points,
			Stars:        s.Stars,
			Forks:        s.Forks,
			Commits:      s.Commits,
			Distribution: distribution{
				Mean:         s.Distribution.Mean,
				Median:       s.Distribution.Median,
				Percentile90: s.Distribution.Percentile90,
			},
		},
		Page: page{
			Number:     p.Number,
			TotalPages: p.TotalPages,
			HasPrev:    p.HasPrev,
			HasNext:    p.HasNext,
			Entries:    entries,
		},
		LoadedAt: lb.LoadedAt,
	}
}

func newContributorResponse(repo app.Repo, d app.ContributorDetail) contributorResponse {
	return contributorResponse{
		Repo:        repo.String(),
		Contributor: newEntry(d.PageEntry),
		PRSearchURL: d.PRSearchURL,
		ProfileURL:  d.ProfileURL,
	}
}

func newActivityResponse(repo app.Repo, commits []app.Commit) activityResponse {
	cs := make([]commit, 0, len(commits))
	for _, c := range commits {
		cs = append(cs, commit{
			SHA:        c.SHA,
			AuthorName: c.AuthorName,
			Message:    c.Message,
			Date:       c.Date,
		})
	}

	return activityResponse{
		Repo:    repo.String(),
		Commits: cs,
	}
}

func newSnapshotsResponse(repo app.Repo, infos []app.SnapshotInfo) snapshotsResponse {
	ss := make([]snapshot, 0, len(infos))
	for _, i := range infos {
		ss = append(ss, snapshot{
			ID:           i.ID,
			LoadedAt:     i.LoadedAt,
			Contributors: i.Contributors,
			MergedPRs:    i.MergedPRs,
			Points:       i.Points,
		})
	}

	return snapshotsResponse{
		Repo:      repo.String(),
		Snapshots: ss,
	}
}
