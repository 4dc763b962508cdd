package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/novalith-hq/httpbridge/internal/logger"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent exchanges from the journal",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum records to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Close()

	journal, err := newJournal(cfg)
	if err != nil {
		return err
	}
	defer journal.Close()

	records, err := journal.Recent(historyLimit)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}
	if len(records) == 0 {
		fmt.Println("no recorded exchanges")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tMETHOD\tURL\tSTATUS\tDURATION\tBYTES")
	for _, rec := range records {
		status := "-"
		if rec.StatusCode != 0 {
			status = fmt.Sprintf("%d", rec.StatusCode)
		}
		if rec.Error != "" {
			status = "ERR"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
			rec.Time.Format("2006-01-02 15:04:05"),
			rec.Method,
			rec.URL,
			status,
			rec.Duration.Round(time.Millisecond),
			rec.BodyBytes,
		)
	}
	return w.Flush()
}
