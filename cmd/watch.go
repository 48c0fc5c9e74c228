package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/conneroisu/socialxml/internal/config"
	"github.com/conneroisu/socialxml/internal/files"
	"github.com/conneroisu/socialxml/internal/logging"
	"github.com/conneroisu/socialxml/internal/validate"
	"github.com/conneroisu/socialxml/internal/watcher"
)

var watchDebounce int

// watchCmd represents the watch command.
var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-validate a document whenever it changes",
	Long: `Watch a social-network XML document and re-run validation every time
it is saved. Rapid save bursts are debounced into a single run. Stop with
Ctrl+C.

Examples:
  socialxml watch network.xml
  socialxml watch --debounce 500 network.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runWatchCommand,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().IntVar(&watchDebounce, "debounce", 0, "Debounce window in milliseconds (default from config)")
}

func runWatchCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := logging.New(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})

	debounce := watchDebounce
	if debounce <= 0 {
		debounce = cfg.Watch.DebounceMillis
	}
	delay := time.Duration(debounce) * time.Millisecond

	path := args[0]
	w, err := watcher.New(path, delay)
	if err != nil {
		return err
	}
	defer w.Close()

	w.AddHandler(func(changed string) {
		content, err := files.Read(changed)
		if err != nil {
			logger.Error("read failed", "file", changed, "error", err)
			return
		}
		outputValidationText(changed, validate.Validate(content))
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Validate once up front so the first report does not wait for a save.
	content, err := files.Read(path)
	if err != nil {
		return err
	}
	outputValidationText(path, validate.Validate(content))

	logger.Info("watching", "file", path, "debounce_ms", debounce)
	if err := w.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
