package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/socialxml/internal/config"
	"github.com/conneroisu/socialxml/internal/files"
	"github.com/conneroisu/socialxml/internal/render"
)

var formatWrite bool

// formatCmd represents the format command.
var formatCmd = &cobra.Command{
	Use:   "format <file>",
	Short: "Pretty-print a document with deterministic indentation",
	Long: `Pretty-print a social-network XML document. Each element goes on its
own line, indented by nesting depth. Leaf elements short enough to fit are
collapsed onto one line; longer text is word-wrapped one level deeper.
Formatting is idempotent: formatting already-formatted output reproduces it.

Examples:
  socialxml format network.xml            # Print to stdout
  socialxml format -w network.xml         # Rewrite the file in place
  socialxml format --indent 2 network.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runFormatCommand,
}

func init() {
	rootCmd.AddCommand(formatCmd)

	formatCmd.Flags().BoolVarP(&formatWrite, "write", "w", false, "Write the result back to the file instead of stdout")
	formatCmd.Flags().Int("indent", 0, "Spaces per indentation level")
	formatCmd.Flags().Int("wrap", 0, "Maximum leaf text width before wrapping")
	viper.BindPFlag("format.indent_width", formatCmd.Flags().Lookup("indent"))
	viper.BindPFlag("format.wrap_width", formatCmd.Flags().Lookup("wrap"))
}

func runFormatCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	content, err := files.Read(args[0])
	if err != nil {
		return err
	}

	formatter := render.Formatter{
		IndentWidth: cfg.Format.IndentWidth,
		WrapWidth:   cfg.Format.WrapWidth,
	}

	if formatWrite {
		return files.WriteFormatted(args[0], content, formatter)
	}

	fmt.Println(formatter.Format(content))
	return nil
}
