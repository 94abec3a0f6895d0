package github

import (
	"testing"

	"github.com/google/go-github/v62/github"
	"github.com/pixel-phantoms/phantomboard/internal/app"
	"github.com/stretchr/testify/assert"
)

func Test_contributorsResponse_ToContributors(t *testing.T) {
	tests := []struct {
		name     string
		response contributorsResponse
		want     []app.Contributor
	}{
		{
			name:     "empty",
			response: contributorsResponse{},
			want:     []app.Contributor{},
		},
		{
			name: "anonymous entries skipped",
			response: contributorsResponse{
				{Login: github.String("x"), ID: github.Int64(1), Contributions: github.Int(5)},
				{Contributions: github.Int(2)},
				{Login: github.String("y"), ID: github.Int64(2)},
			},
			want: []app.Contributor{
				{ID: 1, Login: "x", Contributions: 5},
				{ID: 2, Login: "y"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.response.ToContributors())
		})
	}
}

func Test_pullsResponse_ToPullRequests(t *testing.T) {
	ts := github.Timestamp{}
	tests := []struct {
		name     string
		response pullsResponse
		want     []app.PullRequest
	}{
		{
			name:     "empty",
			response: pullsResponse{},
			want:     []app.PullRequest{},
		},
		{
			name: "missing user",
			response: pullsResponse{
				{MergedAt: &ts},
			},
			want: []app.PullRequest{
				{AuthorLogin: "", MergedAt: &ts.Time},
			},
		},
		{
			name: "labels",
			response: pullsResponse{
				{
					User:   &github.User{Login: github.String("a")},
					Labels: []*github.Label{{Name: github.String("level 1")}, {Name: github.String("docs")}},
				},
			},
			want: []app.PullRequest{
				{AuthorLogin: "a", Labels: []string{"level 1", "docs"}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.response.ToPullRequests())
		})
	}
}

func Test_repositoryResponse_ToRepoMeta(t *testing.T) {
	r := repositoryResponse{
		StargazersCount: github.Int(3),
		ForksCount:      github.Int(4),
	}
	assert.Equal(t, app.RepoMeta{Stars: 3, Forks: 4}, r.ToRepoMeta())
	assert.Equal(t, app.RepoMeta{}, (&repositoryResponse{}).ToRepoMeta())
}
