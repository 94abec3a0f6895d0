package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLabels(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   []LabelLevel
	}{
		{
			name:   "no labels",
			labels: nil,
			want:   nil,
		},
		{
			name:   "unrelated labels",
			labels: []string{"bug", "good first issue"},
			want:   nil,
		},
		{
			name:   "space and dash forms, any case",
			labels: []string{"Level 3", "LEVEL-2", "gssoc:level-1"},
			want:   []LabelLevel{LevelThree, LevelTwo, LevelOne},
		},
		{
			name:   "repeated level counts every label",
			labels: []string{"level 1", "Level-1"},
			want:   []LabelLevel{LevelOne, LevelOne},
		},
		{
			name:   "single label counts once, highest level first",
			labels: []string{"level 1 / level 3"},
			want:   []LabelLevel{LevelThree},
		},
		{
			name:   "level without separator is not matched",
			labels: []string{"level3"},
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyLabels(tt.labels))
		})
	}
}

func TestPullRequestPoints(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   int
	}{
		{"no level label", []string{"documentation"}, 1},
		{"no labels at all", nil, 1},
		{"level 1", []string{"level 1"}, 2},
		{"level 2", []string{"level-2"}, 5},
		{"level 3", []string{"Level 3"}, 11},
		{"level 3 and level 1", []string{"Level 3", "level-1"}, 13},
		{"all levels with other labels", []string{"bug", "level 1", "level 2", "level 3"}, 18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PullRequestPoints(tt.labels))
		})
	}
}

func TestScorePullRequests(t *testing.T) {
	merged := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	pulls := []PullRequest{
		{AuthorLogin: "alice", MergedAt: &merged, Labels: []string{"level 3"}},
		{AuthorLogin: "alice", MergedAt: &merged},
		{AuthorLogin: "alice", MergedAt: nil, Labels: []string{"level 3"}},
		{AuthorLogin: "bob", MergedAt: &merged, Labels: []string{"level-2", "level-1"}},
		{AuthorLogin: "carol", MergedAt: nil, Labels: []string{"level 2"}},
	}

	scores, totals := ScorePullRequests(pulls)

	assert.Equal(t, map[string]ScoreEntry{
		"alice": {PRCount: 2, Points: 12},
		"bob":   {PRCount: 1, Points: 7},
	}, scores)
	assert.Equal(t, ScoreTotals{MergedPRs: 3, Points: 19}, totals)
}

func TestScorePullRequestsEmpty(t *testing.T) {
	scores, totals := ScorePullRequests(nil)

	assert.Empty(t, scores)
	assert.Equal(t, ScoreTotals{}, totals)
}
