// ytdata is a small CLI over the YouTube Data API client library. It is
// mainly a worked example of the library surface: video and channel lookup,
// search, and comment listing.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/researchaccelerator-hub/ytdata"
)

var rootCmd = &cobra.Command{
	Use:   "ytdata",
	Short: "Query the YouTube Data API",
	Long: `Query the YouTube Data API for videos, channels, search results and
comments. An API key is required; supply it with --api-key, the
YTDATA_API_KEY environment variable, or an api_key entry in
$HOME/.ytdata.yaml.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		if viper.GetBool("verbose") {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	},
}

func init() {
	rootCmd.PersistentFlags().String("api-key", "", "YouTube Data API key")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	_ = viper.BindPFlag("api_key", rootCmd.PersistentFlags().Lookup("api-key"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	viper.SetEnvPrefix("YTDATA")
	viper.AutomaticEnv()

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".ytdata")
		viper.SetConfigType("yaml")
		_ = viper.ReadInConfig()
	}
}

// newClient builds a library client from the resolved configuration.
func newClient() (*ytdata.Client, error) {
	key := viper.GetString("api_key")
	if key == "" {
		return nil, fmt.Errorf("no API key configured; use --api-key, YTDATA_API_KEY or a config file")
	}
	return ytdata.New(ytdata.APIKey(key), ytdata.WithLogger(log.Logger)), nil
}

// printJSON renders a result to stdout.
func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// parseParts turns --parts flag values into part selectors.
func parseParts(names []string) []ytdata.Part {
	parts := make([]ytdata.Part, 0, len(names))
	for _, n := range names {
		parts = append(parts, ytdata.Part(n))
	}
	return parts
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
