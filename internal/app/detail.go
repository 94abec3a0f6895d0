package app

import (
	"fmt"
	"net/url"
	"strings"
)

// ContributorDetail is a single contributor view.
type ContributorDetail struct {
	PageEntry

	PRSearchURL string
	ProfileURL  string
}

// Detail returns ranked contributor by login. Login comparison ignores case.
func (lb *Leaderboard) Detail(login string) (ContributorDetail, error) {
	if login == "" {
		return ContributorDetail{}, InvalidRequestError("login cannot be empty")
	}

	for i, rc := range lb.Ranked {
		if !strings.EqualFold(rc.Login, login) {
			continue
		}

		return ContributorDetail{
			PageEntry:   newPageEntry(rc, i+1),
			PRSearchURL: PRSearchURL(lb.Repo, rc.Login),
			ProfileURL:  rc.HTMLURL,
		}, nil
	}

	return ContributorDetail{}, &NotFoundError{Login: login}
}

// PRSearchURL returns github web search for pull requests authored by login.
func PRSearchURL(repo Repo, login string) string {
	return fmt.Sprintf(
		"https://github.com/%s/%s/pulls?q=is%%3Apr+author%%3A%s",
		repo.Owner,
		repo.Name,
		url.QueryEscape(login),
	)
}
