package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/conneroisu/socialxml/internal/files"
	"github.com/conneroisu/socialxml/internal/social"
)

var exportOutput string

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export a document as JSON",
	Long: `Convert a social-network XML document to JSON: users with their ids,
names, posts (content and topics), followers, and followings. Users without
an id are skipped.

Examples:
  socialxml export network.xml                 # Print to stdout
  socialxml export -o network.json network.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runExportCommand,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write JSON to a file instead of stdout")
}

func runExportCommand(cmd *cobra.Command, args []string) error {
	content, err := files.Read(args[0])
	if err != nil {
		return err
	}

	network, err := social.Parse(content)
	if err != nil {
		return err
	}

	if exportOutput == "" {
		return network.ExportJSON(os.Stdout)
	}

	out, err := os.Create(exportOutput)
	if err != nil {
		return fmt.Errorf("create %s: %w", exportOutput, err)
	}
	defer out.Close()

	if err := network.ExportJSON(out); err != nil {
		return err
	}
	fmt.Printf("Exported %d user(s) to %s\n", len(network.Users), exportOutput)
	return nil
}
