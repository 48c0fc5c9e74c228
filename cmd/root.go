// Package cmd provides the command-line interface for socialxml.
//
// Configuration is loaded from multiple sources with clear precedence:
//  1. Command-line flags (--indent, --format, etc.) - highest priority
//  2. SOCIALXML_CONFIG_FILE environment variable - custom config file path
//  3. Individual environment variables (SOCIALXML_FORMAT_WRAP_WIDTH, etc.)
//  4. Configuration file (.socialxml.yml) - lowest priority
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "socialxml",
	Short: "Validate, format, and inspect social-network XML documents",
	Long: `socialxml is a toolchain for the social-network XML dialect: documents
describing users with posts, topics, followers, and followings.

Key Features:
  • Well-formedness checking with line-accurate error reports
  • Semantic validation: unique ids, resolvable references, required fields
  • Deterministic pretty-printing with leaf collapsing and line wrapping
  • Canonical minification
  • Statistics, JSON export, and post search over valid documents

Quick Start:
  socialxml init                  Write a default .socialxml.yml
  socialxml validate network.xml  Report every problem in the document
  socialxml format -w network.xml Pretty-print in place
  socialxml stats network.xml     Summarize the network`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .socialxml.yml, can also use SOCIALXML_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig initializes the configuration system. The --config flag wins,
// then the SOCIALXML_CONFIG_FILE environment variable, then .socialxml.yml
// in the current directory. Environment variables with the SOCIALXML_
// prefix override file values.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("SOCIALXML_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".socialxml")
	}

	viper.SetEnvPrefix("SOCIALXML")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing or unreadable config file is not fatal; defaults apply.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
