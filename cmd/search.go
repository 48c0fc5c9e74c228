package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/socialxml/internal/files"
	"github.com/conneroisu/socialxml/internal/social"
)

var (
	searchWord  string
	searchTopic string
)

// searchCmd represents the search command.
var searchCmd = &cobra.Command{
	Use:   "search <file>",
	Short: "Search posts by word or topic",
	Long: `Find posts in a social-network XML document. Exactly one of --word or
--topic must be given: --word matches anywhere in a post body, --topic
matches the post's topic list.

Examples:
  socialxml search --word solar network.xml
  socialxml search --topic economy network.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runSearchCommand,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchWord, "word", "", "Word to look for in post bodies")
	searchCmd.Flags().StringVar(&searchTopic, "topic", "", "Topic to look for in post topic lists")
}

func runSearchCommand(cmd *cobra.Command, args []string) error {
	if (searchWord == "") == (searchTopic == "") {
		return fmt.Errorf("exactly one of --word or --topic is required")
	}

	content, err := files.Read(args[0])
	if err != nil {
		return err
	}

	network, err := social.Parse(content)
	if err != nil {
		return err
	}

	var matches []social.Match
	if searchWord != "" {
		matches = network.SearchWord(searchWord)
	} else {
		matches = network.SearchTopic(searchTopic)
	}

	if len(matches) == 0 {
		fmt.Println("No matching posts found")
		return nil
	}

	for _, match := range matches {
		fmt.Printf("%s (user %s): %s\n", match.UserName, match.UserID, match.Body)
	}
	return nil
}
