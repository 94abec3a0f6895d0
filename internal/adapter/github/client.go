package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"
	"github.com/pixel-phantoms/phantomboard/internal/app"
)

const (
	contributorsPerPage = 100
	pullsPerPage        = 100
)

// Client returns details about github repository.
// This struct is an adapter for app.GithubClient.
type Client struct {
	gh *github.Client
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
// address is rest api root, eg. "https://api.github.com". Empty address means default api.
func NewClient(httpClient *http.Client, address string) (*Client, error) {
	gh := github.NewClient(httpClient)
	if address != "" {
		u, err := url.Parse(strings.TrimSuffix(address, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid api address: %w", err)
		}
		gh.BaseURL = u
	}

	return &Client{gh: gh}, nil
}

// Repository returns repository stars and forks count.
func (c *Client) Repository(ctx context.Context, repo app.Repo) (app.RepoMeta, error) {
	if err := repo.Validate(); err != nil {
		return app.RepoMeta{}, err
	}

	r, _, err := c.gh.Repositories.Get(ctx, repo.Owner, repo.Name)
	if err != nil {
		return app.RepoMeta{}, fmt.Errorf("getting repository: %w", err)
	}

	return (*repositoryResponse)(r).ToRepoMeta(), nil
}

// Contributors returns first page of repository contributors, up to 100 entries.
func (c *Client) Contributors(ctx context.Context, repo app.Repo) ([]app.Contributor, error) {
	if err := repo.Validate(); err != nil {
		return nil, err
	}

	opts := &github.ListContributorsOptions{
		ListOptions: github.ListOptions{PerPage: contributorsPerPage},
	}
	cs, _, err := c.gh.Repositories.ListContributors(ctx, repo.Owner, repo.Name, opts)
	if err != nil {
		return nil, fmt.Errorf("listing contributors: %w", err)
	}

	return contributorsResponse(cs).ToContributors(), nil
}

// PullRequests returns single page of pull requests in any state.
func (c *Client) PullRequests(ctx context.Context, repo app.Repo, page int) ([]app.PullRequest, error) {
	if err := repo.Validate(); err != nil {
		return nil, err
	}
	if page < 1 {
		return nil, app.InvalidRequestError("page must be greater than zero")
	}

	opts := &github.PullRequestListOptions{
		State: "all",
		ListOptions: github.ListOptions{
			Page:    page,
			PerPage: pullsPerPage,
		},
	}
	prs, _, err := c.gh.PullRequests.List(ctx, repo.Owner, repo.Name, opts)
	if err != nil {
		return nil, fmt.Errorf("listing pull requests page %d: %w", page, err)
	}

	return pullsResponse(prs).ToPullRequests(), nil
}

// CommitCount returns total number of commits on default branch.
//
// Single commit page is requested; its "last" link relation tells the number of pages, which is
// the number of commits. Returns app.ErrCommitCountUnavailable when the link is missing.
func (c *Client) CommitCount(ctx context.Context, repo app.Repo) (int, error) {
	if err := repo.Validate(); err != nil {
		return 0, err
	}

	opts := &github.CommitsListOptions{
		ListOptions: github.ListOptions{PerPage: 1},
	}
	_, resp, err := c.gh.Repositories.ListCommits(ctx, repo.Owner, repo.Name, opts)
	if err != nil {
		return 0, fmt.Errorf("listing commits: %w", err)
	}
	if resp == nil || resp.LastPage <= 0 {
		return 0, app.ErrCommitCountUnavailable
	}

	return resp.LastPage, nil
}

// RecentCommits returns latest commits on default branch.
func (c *Client) RecentCommits(ctx context.Context, repo app.Repo, count int) ([]app.Commit, error) {
	if err := repo.Validate(); err != nil {
		return nil, err
	}
	if count < 1 || count > 100 {
		return nil, app.InvalidRequestError("count must be in range <1..100>")
	}

	opts := &github.CommitsListOptions{
		ListOptions: github.ListOptions{PerPage: count},
	}
	cs, _, err := c.gh.Repositories.ListCommits(ctx, repo.Owner, repo.Name, opts)
	if err != nil {
		return nil, fmt.Errorf("listing commits: %w", err)
	}

	return commitsResponse(cs).ToCommits(), nil
}
