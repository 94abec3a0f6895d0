package main

import "time"

// Config is the container for app configuration
type Config struct {
	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `default:"0.0.0.0:8080"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `default:""`

	// GRPCServerAddress - listen address for grpc server
	GRPCServerAddress string `default:"0.0.0.0:9090"`

	// ServiceResponseTimeout - timeout for single leaderboard load
	ServiceResponseTimeout time.Duration `default:"30s"`

	// GithubAPIAddress - address for rest api with protocol
	GithubAPIAddress string `default:"https://api.github.com"`

	// GithubAPIToken - auth token for rest github api (optional, rate limit is lower without this token)
	GithubAPIToken string `default:""`

	// GithubAPIRateLimit - max frequency for github rest api calls
	GithubAPIRateLimit float64 `default:"5"`

	// GithubRateLimitMaxSleep - longest single wait for github secondary rate limit reset
	GithubRateLimitMaxSleep time.Duration `default:"1m"`

	// GithubTimeout - timeout for github api calls
	GithubTimeout time.Duration `default:"15s"`

	// LeaderboardCacheSize - maximum number of cached leaderboards
	LeaderboardCacheSize int `default:"100"`

	// LeaderboardCacheTTL - maximum lifetime for cached leaderboards
	LeaderboardCacheTTL time.Duration `default:"10m"`

	// SnapshotDBPath - filepath for bolt db data
	SnapshotDBPath string `default:"./phantomboard.data"`

	// SnapshotDBBucketName - bolt db bucket name
	SnapshotDBBucketName string `default:"snapshots"`

	// SnapshotHistoryLimit - maximum number of snapshots returned by history queries
	SnapshotHistoryLimit int `default:"50"`

	// SnapshotKeep - number of newest snapshots kept per repository, older ones are removed on save. 0 keeps everything
	SnapshotKeep int `default:"200"`

	// RefreshSchedule - cron spec for background leaderboard refresh
	RefreshSchedule string `default:"@every 15m"`

	// RefreshRepos - comma separated owner/name list refreshed in background. Defaults to RepoOwner/RepoName
	RefreshRepos []string `default:""`

	// RepoOwner - default repository owner
	RepoOwner string `default:"sayeeg-11"`

	// RepoName - default repository name
	RepoName string `default:"Pixel_Phantoms"`
}
