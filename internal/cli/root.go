package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/novalith-hq/httpbridge/internal/config"
	"github.com/novalith-hq/httpbridge/internal/history"
	"github.com/novalith-hq/httpbridge/internal/logger"
	"github.com/novalith-hq/httpbridge/pkg/httpcall"
)

var version = "dev"

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "httpbridge",
	Short: "HTTP requests for embedded scripts, described as plain values",
	Long: `httpbridge issues HTTP requests described by plain structured values:
a script, a flag set, or a YAML file supplies {method, url, headers, body,
output} and gets back decoded text or a JSON value tree.

Get started:
  httpbridge run script.js        Run a JavaScript file with the http module
  httpbridge request --url URL    Send a single request from flags
  httpbridge batch file.yaml      Send every request in a YAML file`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// SetVersion sets the version info.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// bootstrap loads config and initializes logging for a subcommand.
func bootstrap() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if _, err := logger.Init(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, nil
}

// newClient builds the pooled client a subcommand sends through.
func newClient(cfg *config.Config) (*httpcall.Client, error) {
	client, err := httpcall.NewClient(cfg.ClientOptions())
	if err != nil {
		return nil, fmt.Errorf("init http client: %w", err)
	}
	return client, nil
}

// newJournal builds the configured exchange journal.
func newJournal(cfg *config.Config) (history.Journal, error) {
	journal, err := history.NewJournal(cfg.HistoryType, cfg.HistoryPath, history.Options{
		RecordTTL:       cfg.HistoryTTL,
		CleanupInterval: cfg.HistoryCleanupInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("init history journal: %w", err)
	}
	return journal, nil
}
