package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// videoCmd looks up videos by explicit ID list.
var videoCmd = &cobra.Command{
	Use:   "video ID [ID...]",
	Short: "Look up videos by ID",
	Long:  `Look up one or more videos by ID and print them as JSON.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		partNames, _ := cmd.Flags().GetStringSlice("parts")
		videos, err := client.Videos(args, parseParts(partNames)...).Collect(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch videos: %w", err)
		}
		if len(videos) == 0 {
			fmt.Println("No videos found.")
			return nil
		}
		return printJSON(videos)
	},
}

func init() {
	videoCmd.Flags().StringSlice("parts", []string{"id", "snippet"}, "resource parts to request")
	rootCmd.AddCommand(videoCmd)
}
