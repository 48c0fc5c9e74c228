package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/conneroisu/socialxml/internal/config"
	"github.com/conneroisu/socialxml/internal/files"
	"github.com/conneroisu/socialxml/internal/logging"
	"github.com/conneroisu/socialxml/internal/validate"
)

var validateFormat string

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a document for structural and semantic errors",
	Long: `Validate a social-network XML document for:

- Malformed tags (syntax errors)
- Mismatched, unmatched, or unclosed tags (structure errors)
- Duplicate user ids, empty required fields, and follower or following
  references to users that do not exist (semantic errors)

Every problem is reported with its line number; validation never stops at
the first error. The exit status is non-zero when the document is invalid.

Examples:
  socialxml validate network.xml
  socialxml validate --format json network.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runValidateCommand,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "", "Output format (text, json)")
}

func runValidateCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := logging.New(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})

	content, err := files.Read(args[0])
	if err != nil {
		return err
	}

	result := validate.Validate(content)
	logger.Debug("validation finished", "file", args[0], "errors", result.ErrorCount)

	outputFormat := validateFormat
	if outputFormat == "" {
		outputFormat = cfg.Output.Format
	}

	switch outputFormat {
	case "json":
		if err := outputValidationJSON(result); err != nil {
			return err
		}
	case "text":
		outputValidationText(args[0], result)
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", outputFormat)
	}

	if !result.IsValid {
		return fmt.Errorf("validation failed: %d error(s)", result.ErrorCount)
	}
	return nil
}

func outputValidationText(path string, result validate.Result) {
	if result.IsValid {
		fmt.Printf("%s is valid\n", path)
		return
	}

	fmt.Printf("%s: %d error(s)\n", path, result.ErrorCount)
	for _, e := range result.Errors {
		fmt.Printf("  Line %d [%s]: %s\n", e.Line, e.Kind, e.Description)
	}
}

func outputValidationJSON(result validate.Result) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
