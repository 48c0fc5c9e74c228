package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/conneroisu/socialxml/internal/config"
	"github.com/conneroisu/socialxml/internal/files"
	"github.com/conneroisu/socialxml/internal/social"
)

var statsFormat string

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Summarize the network described by a document",
	Long: `Compute aggregate statistics over a social-network XML document:
user, post, follower, and following totals, per-user averages, topic
frequencies, and the most-followed user.

Examples:
  socialxml stats network.xml
  socialxml stats --format json network.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runStatsCommand,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&statsFormat, "format", "f", "", "Output format (text, json)")
}

func runStatsCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	content, err := files.Read(args[0])
	if err != nil {
		return err
	}

	network, err := social.Parse(content)
	if err != nil {
		return err
	}
	stats := network.Stats()

	outputFormat := statsFormat
	if outputFormat == "" {
		outputFormat = cfg.Output.Format
	}

	switch outputFormat {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(stats)
	case "text":
		outputStatsText(stats)
		return nil
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", outputFormat)
	}
}

func outputStatsText(stats social.Stats) {
	fmt.Printf("Network Summary:\n")
	fmt.Printf("  Users: %d\n", stats.TotalUsers)
	fmt.Printf("  Posts: %d (%.2f per user)\n", stats.TotalPosts, stats.AvgPosts)
	fmt.Printf("  Followers: %d (%.2f per user)\n", stats.TotalFollowers, stats.AvgFollowers)
	fmt.Printf("  Followings: %d\n", stats.TotalFollowings)

	if stats.MostFollowed != "" {
		fmt.Printf("  Most followed user: %s\n", stats.MostFollowed)
	}

	if len(stats.TopicCounts) > 0 {
		topics := make([]string, 0, len(stats.TopicCounts))
		for topic := range stats.TopicCounts {
			topics = append(topics, topic)
		}
		sort.Strings(topics)

		fmt.Println("  Topics:")
		for _, topic := range topics {
			fmt.Printf("    %s: %d\n", topic, stats.TopicCounts[topic])
		}
	}
}
