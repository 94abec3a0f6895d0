package github

import (
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/pixel-phantoms/phantomboard/internal/app"
)

type repositoryResponse github.Repository

func (r *repositoryResponse) ToRepoMeta() app.RepoMeta {
	repo := (*github.Repository)(r)
	return app.RepoMeta{
		Stars: repo.GetStargazersCount(),
		Forks: repo.GetForksCount(),
	}
}

type contributorsResponse []*github.Contributor

func (s contributorsResponse) ToContributors() []app.Contributor {
	cs := make([]app.Contributor, 0, len(s))
	for _, c := range s {
		if c.GetLogin() == "" {
			continue
		}
		cs = append(cs, app.Contributor{
			ID:            c.GetID(),
			Login:         c.GetLogin(),
			AvatarURL:     c.GetAvatarURL(),
			HTMLURL:       c.GetHTMLURL(),
			Contributions: c.GetContributions(),
		})
	}

	return cs
}

type pullsResponse []*github.PullRequest

func (s pullsResponse) ToPullRequests() []app.PullRequest {
	ps := make([]app.PullRequest, 0, len(s))
	for _, pr := range s {
		var mergedAt *time.Time
		if pr.MergedAt != nil {
			t := pr.MergedAt.Time
			mergedAt = &t
		}

		var labels []string
		for _, l := range pr.Labels {
			labels = append(labels, l.GetName())
		}

		ps = append(ps, app.PullRequest{
			AuthorLogin: pr.GetUser().GetLogin(),
			MergedAt:    mergedAt,
			Labels:      labels,
		})
	}

	return ps
}

type commitsResponse []*github.RepositoryCommit

func (s commitsResponse) ToCommits() []app.Commit {
	cs := make([]app.Commit, 0, len(s))
	for _, c := range s {
		author := c.GetCommit().GetAuthor()
		cs = append(cs, app.Commit{
			SHA:        c.GetSHA(),
			AuthorName: author.GetName(),
			Message:    c.GetCommit().GetMessage(),
			Date:       author.GetDate().Time,
		})
	}

	return cs
}
