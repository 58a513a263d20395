package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/researchaccelerator-hub/ytdata"
)

// channelCmd looks up channels by explicit ID list or the key owner's own.
var channelCmd = &cobra.Command{
	Use:   "channel [ID...]",
	Short: "Look up channels",
	Long: `Look up channels by ID, or with --mine the authenticated caller's own
channel, and print them as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		mine, _ := cmd.Flags().GetBool("mine")
		partNames, _ := cmd.Flags().GetStringSlice("parts")

		it, err := client.Channels(&ytdata.ChannelListOptions{
			IDs:   args,
			Mine:  mine,
			Parts: parseParts(partNames),
		})
		if err != nil {
			return err
		}

		channels, err := it.Collect(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch channels: %w", err)
		}
		if len(channels) == 0 {
			fmt.Println("No channels found.")
			return nil
		}
		return printJSON(channels)
	},
}

func init() {
	channelCmd.Flags().Bool("mine", false, "look up the authenticated caller's own channel")
	channelCmd.Flags().StringSlice("parts", []string{"snippet", "statistics"}, "resource parts to request")
	rootCmd.AddCommand(channelCmd)
}
