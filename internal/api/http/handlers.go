package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/pixel-phantoms/phantomboard/internal/app"
	"github.com/sirupsen/logrus"
)

// NewLeaderboardHandler creates handlerfunc returning single leaderboard page.
func NewLeaderboardHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repo := getRepo(r)
		pageNumber, err := getIntParam(r, "page", 1)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		lb, p, err := service.Page(r.Context(), repo, pageNumber, getBoolParam(r, "refresh"))
		if err != nil {
			writeError(w, err, l)
			return
		}

		writeJSON(w, newLeaderboardResponse(lb, p))
	}
}

// NewContributorHandler creates handlerfunc returning single contributor details.
func NewContributorHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repo := getRepo(r)
		d, err := service.Contributor(r.Context(), repo, chi.URLParam(r, "login"))
		if err != nil {
			writeError(w, err, l)
			return
		}

		writeJSON(w, newContributorResponse(repo, d))
	}
}

// NewActivityHandler creates handlerfunc returning latest repository commits.
func NewActivityHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repo := getRepo(r)
		commits, err := service.RecentActivity(r.Context(), repo)
		if err != nil {
			writeError(w, err, l)
			return
		}

		writeJSON(w, newActivityResponse(repo, commits))
	}
}

// NewSnapshotsHandler creates handlerfunc returning recorded leaderboard history.
func NewSnapshotsHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repo := getRepo(r)
		limit, err := getIntParam(r, "limit", 0)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		infos, err := service.History(r.Context(), repo, limit)
		if err != nil {
			writeError(w, err, l)
			return
		}

		writeJSON(w, newSnapshotsResponse(repo, infos))
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-type", "application/json; charset=utf-8")
	_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error, l logrus.FieldLogger) {
	switch {
	case app.IsInvalidRequestError(err), errors.Is(err, app.ErrOutOfRange):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case app.IsNotFoundError(err), errors.Is(err, app.ErrNoSnapshot):
		http.Error(w, err.Error(), http.StatusNotFound)
	case app.IsTooManyRequestsError(err):
		http.Error(w, "rate limit exceeded, try again later", http.StatusTooManyRequests)
	case errors.Is(err, app.ErrFetchFailure):
		http.Error(w, app.ErrFetchFailure.Error(), http.StatusBadGateway)
	default:
		l.Errorf("handler error: %v", err)
		http.Error(w, "", http.StatusInternalServerError)
	}
}

func getRepo(r *http.Request) app.Repo {
	return app.Repo{
		Owner: chi.URLParam(r, "owner"),
		Name:  chi.URLParam(r, "repo"),
	}
}

func getIntParam(r *http.Request, name string, defaultValue int) (int, error) {
	vs := r.URL.Query().Get(name)
	if vs == "" {
		return defaultValue, nil
	}

	v, err := strconv.Atoi(vs)
	if err != nil {
		return 0, app.InvalidRequestError("invalid " + name + " param")
	}

	return v, nil
}

func getBoolParam(r *http.Request, name string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && v
}
