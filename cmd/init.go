package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/socialxml/internal/config"
)

var initOutput string

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Create a .socialxml.yml in the current directory with the default
settings for formatting, output, watching, and logging. Fails if the file
already exists.

Examples:
  socialxml init
  socialxml init -o custom.yml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := initOutput
		if path == "" {
			path = ".socialxml.yml"
		}

		if err := config.WriteDefault(path); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initOutput, "output", "o", "", "Config file path (default .socialxml.yml)")
}
