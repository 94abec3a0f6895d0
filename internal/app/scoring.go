package app

import "strings"

// LabelLevel is a difficulty level read from pull request label.
type LabelLevel int

// Label levels.
const (
	LevelOne   LabelLevel = 1
	LevelTwo   LabelLevel = 2
	LevelThree LabelLevel = 3
)

// DefaultPoints are awarded for merged pull request without any level label.
const DefaultPoints = 1

// Points returns points awarded for single label of this level.
func (l LabelLevel) Points() int {
	switch l {
	case LevelThree:
		return 11
	case LevelTwo:
		return 5
	case LevelOne:
		return 2
	}
	return 0
}

// Checked from the highest level, single label counts once.
var levelMarkers = []struct {
	level   LabelLevel
	markers []string
}{
	{LevelThree, []string{"level 3", "level-3"}},
	{LevelTwo, []string{"level 2", "level-2"}},
	{LevelOne, []string{"level 1", "level-1"}},
}

// ClassifyLabels returns levels matched by given labels, one entry per matching label.
// Matching is case insensitive and searches for substrings, so "Level 2: medium" is level 2.
func ClassifyLabels(labels []string) []LabelLevel {
	var levels []LabelLevel
	for _, label := range labels {
		name := strings.ToLower(label)
	markers:
		for _, lm := range levelMarkers {
			for _, m := range lm.markers {
				if strings.Contains(name, m) {
					levels = append(levels, lm.level)
					break markers
				}
			}
		}
	}

	return levels
}

// PullRequestPoints returns points for merged pull request with given labels.
func PullRequestPoints(labels []string) int {
	levels := ClassifyLabels(labels)
	if len(levels) == 0 {
		return DefaultPoints
	}

	var points int
	for _, l := range levels {
		points += l.Points()
	}

	return points
}

// ScoreTotals are project wide scoring counters.
type ScoreTotals struct {
	MergedPRs int
	Points    int
}

// ScorePullRequests folds merged pull requests into per-login score entries.
// Unmerged requests are ignored.
func ScorePullRequests(pulls []PullRequest) (map[string]ScoreEntry, ScoreTotals) {
	scores := make(map[string]ScoreEntry)
	var totals ScoreTotals
	for _, pr := range pulls {
		if !pr.Merged() {
			continue
		}

		points := PullRequestPoints(pr.Labels)

		entry := scores[pr.AuthorLogin]
		entry.PRCount++
		entry.Points += points
		scores[pr.AuthorLogin] = entry

		totals.MergedPRs++
		totals.Points += points
	}

	return scores, totals
}
