package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pixel-phantoms/phantomboard/internal/app"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -destination=mock/service.go -package=mock github.com/pixel-phantoms/phantomboard/internal/api/http Service

// Service serves leaderboard views.
type Service interface {
	Page(ctx context.Context, repo app.Repo, page int, refresh bool) (*app.Leaderboard, app.Page, error)
	Contributor(ctx context.Context, repo app.Repo, login string) (app.ContributorDetail, error)
	RecentActivity(ctx context.Context, repo app.Repo) ([]app.Commit, error)
	History(ctx context.Context, repo app.Repo, limit int) ([]app.SnapshotInfo, error)
}

// NewMux creates router for app's http server
func NewMux(service Service, timeout time.Duration, l logrus.FieldLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(NewTimeoutMiddleware(timeout))

	r.Route("/repos/{owner}/{repo}", func(r chi.Router) {
		r.Get("/leaderboard", NewLeaderboardHandler(service, l))
		r.Get("/contributors/{login}", NewContributorHandler(service, l))
		r.Get("/activity", NewActivityHandler(service, l))
		r.Get("/snapshots", NewSnapshotsHandler(service, l))
	})

	return r
}
