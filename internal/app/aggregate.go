package app

import (
	"sort"
	"strings"

	"github.com/montanaflynn/stats"
)

// CommitCountFallback is reported when total commit count is unknown.
const CommitCountFallback = "50+"

// Aggregate builds leaderboard from fetched repository data.
//
// Contributors are joined with scores of their merged pull requests. Repository owner and
// contributors without merged pull requests are left out, the rest is sorted by points.
// Equal points are ordered by login.
func Aggregate(
	repo Repo,
	meta RepoMeta,
	contributors []Contributor,
	pulls []PullRequest,
	commits string,
) Leaderboard {
	scores, totals := ScorePullRequests(pulls)

	var lead *Contributor
	seen := make(map[string]bool, len(contributors))
	ranked := make([]RankedContributor, 0, len(contributors))
	for _, c := range contributors {
		if seen[c.Login] {
			continue
		}
		seen[c.Login] = true

		if repo.IsOwner(c.Login) {
			if lead == nil {
				c := c
				lead = &c
			}
			continue
		}

		score := scores[c.Login]
		if score.PRCount == 0 {
			continue
		}
		ranked = append(ranked, RankedContributor{
			Contributor: c,
			PRs:         score.PRCount,
			Points:      score.Points,
		})
	}

	SortRanked(ranked)

	if commits == "" {
		commits = CommitCountFallback
	}

	return Leaderboard{
		Repo:   repo,
		Lead:   lead,
		Ranked: ranked,
		Summary: Summary{
			Contributors: len(ranked),
			MergedPRs:    totals.MergedPRs,
			Points:       totals.Points,
			Stars:        meta.Stars,
			Forks:        meta.Forks,
			Commits:      commits,
			Distribution: pointsDistribution(ranked),
		},
	}
}

// SortRanked sorts contributors by points, descending.
// Ties are ordered by case insensitive login, then by raw login.
func SortRanked(ranked []RankedContributor) {
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		la, lb := strings.ToLower(a.Login), strings.ToLower(b.Login)
		if la != lb {
			return la < lb
		}
		return a.Login < b.Login
	})
}

func pointsDistribution(ranked []RankedContributor) Distribution {
	if len(ranked) == 0 {
		return Distribution{}
	}

	data := make(stats.Float64Data, 0, len(ranked))
	for _, rc := range ranked {
		data = append(data, float64(rc.Points))
	}

	var d Distribution
	d.Mean, _ = data.Mean()
	d.Median, _ = data.Median()
	d.Percentile90, _ = data.Percentile(90)

	return d
}
