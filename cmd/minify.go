package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/socialxml/internal/files"
	"github.com/conneroisu/socialxml/internal/render"
)

var minifyOutput string

// minifyCmd represents the minify command.
var minifyCmd = &cobra.Command{
	Use:   "minify <file>",
	Short: "Reduce a document to its canonical compact form",
	Long: `Strip all insignificant whitespace from a social-network XML document:
nothing between tags, and single spaces between words of text content.
Minifying a formatted document and minifying the original produce the same
output.

Examples:
  socialxml minify network.xml                 # Print to stdout
  socialxml minify -o network.min.xml network.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runMinifyCommand,
}

func init() {
	rootCmd.AddCommand(minifyCmd)

	minifyCmd.Flags().StringVarP(&minifyOutput, "output", "o", "", "Write the result to a file instead of stdout")
}

func runMinifyCommand(cmd *cobra.Command, args []string) error {
	content, err := files.Read(args[0])
	if err != nil {
		return err
	}

	minified := render.Minify(content)

	if minifyOutput != "" {
		return files.Write(minifyOutput, minified)
	}

	fmt.Println(minified)
	return nil
}
