package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/researchaccelerator-hub/ytdata"
)

// searchCmd searches for videos.
var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search for videos",
	Long:  `Search for videos matching a free-text query and print them as JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
		defer cancel()

		opts := &ytdata.SearchOptions{Query: args[0]}
		opts.ChannelID, _ = cmd.Flags().GetString("channel")
		opts.Limit, _ = cmd.Flags().GetInt("limit")

		if order, _ := cmd.Flags().GetString("order"); order != "" {
			opts.Order = ytdata.Order(order)
		}
		if opts.After, err = flagTime(cmd, "after"); err != nil {
			return err
		}
		if opts.Before, err = flagTime(cmd, "before"); err != nil {
			return err
		}

		videos, err := client.SearchVideos(opts).Collect(ctx)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		if len(videos) == 0 {
			fmt.Println("No results.")
			return nil
		}
		return printJSON(videos)
	},
}

// flagTime parses an optional RFC3339 or date-only flag value.
func flagTime(cmd *cobra.Command, name string) (time.Time, error) {
	s, _ := cmd.Flags().GetString(name)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid --%s value %q; want RFC3339 or YYYY-MM-DD", name, s)
}

func init() {
	searchCmd.Flags().String("channel", "", "restrict results to one channel ID")
	searchCmd.Flags().Int("limit", 25, "maximum number of results (0 for no cap)")
	searchCmd.Flags().String("order", "", "result ordering: date, rating, relevance, title or viewCount")
	searchCmd.Flags().String("after", "", "only videos published after this time")
	searchCmd.Flags().String("before", "", "only videos published before this time")
	rootCmd.AddCommand(searchCmd)
}
