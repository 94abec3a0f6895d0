package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/pixel-phantoms/phantomboard/internal/api/grpc"
	"github.com/pixel-phantoms/phantomboard/internal/api/http"
	"github.com/pixel-phantoms/phantomboard/internal/app"
	"github.com/pixel-phantoms/phantomboard/internal/board"
	"github.com/pixel-phantoms/phantomboard/internal/cache"
	"github.com/pixel-phantoms/phantomboard/internal/refresh"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newServeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serves leaderboard over http and grpc",
		Long:  `Starts http and grpc servers and background leaderboard refresh. Runs until SIGINT is received.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.serve(cmd.Context())
		},
	}
}

func (c *cli) serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	l := c.l
	conf := c.conf

	store, err := c.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	githubClient, err := c.newGithubClient()
	if err != nil {
		return err
	}

	service := app.NewService(
		githubClient,
		conf.ServiceResponseTimeout,
		l.WithField("component", "service"),
		app.WithSnapshots(store),
	)
	leaderboardCache, err := cache.NewLeaderboardCache(
		service,
		conf.LeaderboardCacheSize,
		conf.LeaderboardCacheTTL,
	)
	if err != nil {
		return fmt.Errorf("couldn't create leaderboard cache: %w", err)
	}

	repos, err := c.refreshRepos()
	if err != nil {
		return err
	}
	scheduler, err := refresh.NewScheduler(
		leaderboardCache,
		repos,
		conf.RefreshSchedule,
		conf.ServiceResponseTimeout,
		l.WithField("component", "refreshScheduler"),
	)
	if err != nil {
		return err
	}
	scheduler.Start()
	defer scheduler.Stop()

	b := board.New(leaderboardCache, service, store, conf.SnapshotHistoryLimit)

	mux := http.NewMux(b, 60*time.Second, l.WithField("component", "mux"))
	server := http.NewServer(
		conf.HTTPServerAddress,
		conf.HTTPProfileServerAddress,
		mux,
		l.WithField("component", "httpServer"),
	)

	grpcServer := grpc.NewServer(
		grpc.NewService(b),
		conf.GRPCServerAddress,
		l.WithField("component", "grpcServer"),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		server.Run(gctx)
		return nil
	})
	g.Go(func() error {
		if err := grpcServer.Run(gctx); err != nil {
			return fmt.Errorf("couldn't run grpc server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
