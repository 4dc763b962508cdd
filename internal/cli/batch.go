package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/novalith-hq/httpbridge/internal/batch"
	"github.com/novalith-hq/httpbridge/internal/logger"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file.yaml>",
	Short: "Send every request in a YAML batch file",
	Long: `Send the requests listed in a YAML file, in order, over one shared
client. Each entry is a request descriptor:

  requests:
    - url: https://example.com
    - method: POST
      url: https://api.example.com/items
      headers:
        Content-Type: application/json
      body:
        name: widget
      output: json

A failing entry is reported and the run continues with the next one.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Close()

	file, err := batch.Load(args[0])
	if err != nil {
		return err
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	journal, err := newJournal(cfg)
	if err != nil {
		return err
	}
	defer journal.Close()

	results, err := batch.Run(cmd.Context(), client, file, journal)
	if err != nil {
		return fmt.Errorf("batch run: %w", err)
	}

	var failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
			logger.S.Warnw("batch entry failed",
				"index", res.Index,
				"method", res.Method,
				"url", res.URL,
				"error", res.Err,
			)
			continue
		}
		logger.S.Infow("batch entry complete",
			"index", res.Index,
			"method", res.Method,
			"url", res.URL,
		)
		if err := printValue(res.Value); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d batch entries failed", failed, len(results))
	}
	return nil
}
