package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/dynstr/core/config"
	"github.com/msto63/dynstr/core/log"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "dynstr",
	Short: "dynstr - thread-safe dynamic string buffers",
	Long: `dynstr demonstrates and exercises the dynstr buffer library:
growable, mutex-guarded byte-string buffers with in-place manipulation,
search, and bounded stream reads.

Commands:
  demo     - walk through the operation set
  lines    - read a file line by line
  words    - read a file word by word
  version  - show version information`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig returns the effective configuration: the config file when one
// was given, defaults otherwise. The --verbose flag lowers the log level.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

// newLogger builds a logger from the configuration
func newLogger(cfg *config.Config) *log.Logger {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.DefaultLevel()
	}
	format, err := log.ParseFormat(cfg.Log.Format)
	if err != nil {
		format = log.FormatConsole
	}
	return log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
		Name:   "dynstr",
	})
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
