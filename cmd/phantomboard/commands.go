package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pixel-phantoms/phantomboard/internal/app"
	"github.com/spf13/cobra"
)

type pageOutput struct {
	Repo     string
	Lead     *app.Contributor
	Summary  app.Summary
	Page     app.Page
	LoadedAt string
}

func newPageOutput(lb *app.Leaderboard, p app.Page) pageOutput {
	return pageOutput{
		Repo:     lb.Repo.String(),
		Lead:     lb.Lead,
		Summary:  lb.Summary,
		Page:     p,
		LoadedAt: lb.LoadedAt.Format("2006-01-02 15:04:05 MST"),
	}
}

func printJSON(v interface{}) error {
	b, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output to json: %w", err)
	}

	fmt.Fprintln(os.Stdout, string(b))
	return nil
}

func newLoadCmd(c *cli) *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Loads fresh leaderboard from github and prints single page as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := c.repo(cmd)
			if err != nil {
				return err
			}

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
				c.conf.ServiceResponseTimeout,
				c.l.WithField("component", "service"),
				app.WithSnapshots(store),
			)

			lb, err := service.Load(context.Background(), repo)
			if err != nil {
				return err
			}
			p, err := lb.Page(page)
			if err != nil {
				return err
			}

			return printJSON(newPageOutput(lb, p))
		},
	}
	addRepoFlags(cmd)
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number")

	return cmd
}

func newPageCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "page N",
		Short: "Prints page of the latest recorded leaderboard without calling github",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid page number %q", args[0])
			}
			repo, err := c.repo(cmd)
			if err != nil {
				return err
			}

			store, err := c.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			lb, err := store.Latest(repo)
			if err != nil {
				return err
			}
			p, err := lb.Page(number)
			if err != nil {
				return err
			}

			return printJSON(newPageOutput(lb, p))
		},
	}
	addRepoFlags(cmd)

	return cmd
}

func newHistoryCmd(c *cli) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Lists recorded leaderboard snapshots, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := c.repo(cmd)
			if err != nil {
				return err
			}

			store, err := c.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if limit <= 0 {
				limit = c.conf.SnapshotHistoryLimit
			}
			infos, err := store.History(repo, limit)
			if err != nil {
				return err
			}

			return printJSON(infos)
		},
	}
	addRepoFlags(cmd)
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of snapshots, defaults to SnapshotHistoryLimit config")

	return cmd
}

func newPruneCmd(c *cli) *cobra.Command {
	var keep int
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Removes oldest recorded snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := c.repo(cmd)
			if err != nil {
				return err
			}

			store, err := c.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := store.Prune(repo, keep)
			if err != nil {
				return err
			}

			c.l.Infof("removed %d snapshots of %s", removed, repo)
			return nil
		},
	}
	addRepoFlags(cmd)
	cmd.Flags().IntVar(&keep, "keep", 20, "Number of newest snapshots to keep")

	return cmd
}
