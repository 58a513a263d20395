package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/researchaccelerator-hub/ytdata"
)

// commentsCmd fetches comment threads for one or more videos concurrently.
var commentsCmd = &cobra.Command{
	Use:   "comments VIDEO_ID [VIDEO_ID...]",
	Short: "Fetch comments on one or more videos",
	Long:  `Fetch top-level comments and replies for each video ID and print them as JSON keyed by video ID.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		limit, _ := cmd.Flags().GetInt("limit")
		search, _ := cmd.Flags().GetString("search")
		workers, _ := cmd.Flags().GetInt("workers")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		var mu sync.Mutex
		byVideo := make(map[string][]*ytdata.Comment, len(args))

		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for _, id := range args {
			id := id
			g.Go(func() error {
				comments, err := client.Comments(id, &ytdata.CommentOptions{
					SearchTerms: search,
					Limit:       limit,
				}).Collect(ctx)
				if err != nil {
					return fmt.Errorf("comments for %s: %w", id, err)
				}
				mu.Lock()
				byVideo[id] = comments
				mu.Unlock()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		return printJSON(byVideo)
	},
}

func init() {
	commentsCmd.Flags().Int("limit", 100, "maximum comments per video (0 for no cap)")
	commentsCmd.Flags().String("search", "", "only return comments containing this text")
	commentsCmd.Flags().Int("workers", 4, "number of videos fetched in parallel")
	rootCmd.AddCommand(commentsCmd)
}
