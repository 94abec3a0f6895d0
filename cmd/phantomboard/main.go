// Package main implements phantomboard command: contributors leaderboard server and cli.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	githubAdapter "github.com/pixel-phantoms/phantomboard/internal/adapter/github"
	"github.com/pixel-phantoms/phantomboard/internal/app"
	"github.com/pixel-phantoms/phantomboard/internal/database"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// cli holds state shared by all commands.
type cli struct {
	conf Config
	l    *logrus.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{l: logrus.New()}

	var envFile string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "phantomboard",
		Short:         "Pixel Phantoms contributors leaderboard.",
		Long:          `phantomboard ranks github repository contributors by merged pull request points and serves the leaderboard over http and grpc.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.l.Level = logrus.InfoLevel
			if verbose {
				c.l.Level = logrus.DebugLevel
			}

			if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("loading env file %s: %w", envFile, err)
			}
			if err := envconfig.Process("", &c.conf); err != nil {
				return fmt.Errorf("couldn't parse config: %w", err)
			}

			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional file with environment variables")

	rootCmd.AddCommand(
		newServeCmd(c),
		newLoadCmd(c),
		newPageCmd(c),
		newHistoryCmd(c),
		newPruneCmd(c),
	)

	return rootCmd
}

func (c *cli) newGithubClient() (*githubAdapter.Client, error) {
	httpClient, err := githubAdapter.NewHTTPClient(
		c.conf.GithubAPIToken,
		c.conf.GithubAPIRateLimit,
		c.conf.GithubRateLimitMaxSleep,
		c.conf.GithubTimeout,
	)
	if err != nil {
		return nil, fmt.Errorf("creating github http client: %w", err)
	}

	return githubAdapter.NewClient(httpClient, c.conf.GithubAPIAddress)
}

func (c *cli) openStore() (*database.BoltSnapshotStore, error) {
	store, err := database.NewBoltSnapshotStore(
		c.conf.SnapshotDBPath,
		c.conf.SnapshotDBBucketName,
		database.WithRetention(c.conf.SnapshotKeep),
	)
	if err != nil {
		return nil, fmt.Errorf("couldn't create bolt snapshot store: %w", err)
	}
	return store, nil
}

// repo returns repository from flags, falling back to configured defaults.
func (c *cli) repo(cmd *cobra.Command) (app.Repo, error) {
	owner, _ := cmd.Flags().GetString("owner")
	name, _ := cmd.Flags().GetString("repo")
	if owner == "" {
		owner = c.conf.RepoOwner
	}
	if name == "" {
		name = c.conf.RepoName
	}

	repo := app.Repo{Owner: owner, Name: name}
	return repo, repo.Validate()
}

// refreshRepos returns repositories refreshed by scheduler.
func (c *cli) refreshRepos() ([]app.Repo, error) {
	if len(c.conf.RefreshRepos) == 0 {
		return []app.Repo{{Owner: c.conf.RepoOwner, Name: c.conf.RepoName}}, nil
	}

	repos := make([]app.Repo, 0, len(c.conf.RefreshRepos))
	for _, s := range c.conf.RefreshRepos {
		repo, err := app.ParseRepo(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("invalid refresh repo %q: %w", s, err)
		}
		repos = append(repos, repo)
	}

	return repos, nil
}

func addRepoFlags(cmd *cobra.Command) {
	cmd.Flags().String("owner", "", "Repository owner, defaults to RepoOwner config")
	cmd.Flags().String("repo", "", "Repository name, defaults to RepoName config")
}
