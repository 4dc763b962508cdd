package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/novalith-hq/httpbridge/internal/history"
	"github.com/novalith-hq/httpbridge/internal/logger"
	"github.com/novalith-hq/httpbridge/pkg/httpcall"
)

var (
	reqMethod  string
	reqURL     string
	reqHeaders []string
	reqBody    string
	reqOutput  string
)

var requestCmd = &cobra.Command{
	Use:   "request",
	Short: "Send a single request described by flags",
	Long: `Send one request built from flags and print the decoded body.

Example:
  httpbridge request --url https://example.com
  httpbridge request --method POST --url https://api.example.com \
      --header "Content-Type: application/json" --body '{"a":1}' --output json`,
	RunE: runRequest,
}

func init() {
	requestCmd.Flags().StringVarP(&reqMethod, "method", "X", "GET", "HTTP method")
	requestCmd.Flags().StringVarP(&reqURL, "url", "u", "", "Request URL (required)")
	requestCmd.Flags().StringArrayVarP(&reqHeaders, "header", "H", nil, "Header as \"Name: Value\" (repeatable)")
	requestCmd.Flags().StringVarP(&reqBody, "body", "d", "", "Request body")
	requestCmd.Flags().StringVarP(&reqOutput, "output", "o", "text", "Output format: text or json")
	requestCmd.MarkFlagRequired("url")
	rootCmd.AddCommand(requestCmd)
}

func runRequest(cmd *cobra.Command, args []string) error {
	cfg, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Close()

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

	input := map[string]any{
		"method": reqMethod,
		"url":    reqURL,
		"output": reqOutput,
	}
	if len(reqHeaders) > 0 {
		headers := make([]any, len(reqHeaders))
		for i, h := range reqHeaders {
			headers[i] = h
		}
		input["headers"] = headers
	}
	if reqBody != "" {
		input["body"] = reqBody
	}

	d, err := httpcall.ParseDescriptor(input)
	if err != nil {
		return err
	}

	start := time.Now()
	raw, err := httpcall.Execute(cmd.Context(), client, d)
	rec := history.Record{
		Time:     start,
		Method:   d.Method,
		URL:      d.URL,
		Duration: time.Since(start),
	}
	if err != nil {
		rec.Error = err.Error()
		if jerr := journal.Append(rec); jerr != nil {
			logger.S.Warnw("journal append failed", "error", jerr)
		}
		return err
	}
	rec.StatusCode = raw.StatusCode
	rec.BodyBytes = len(raw.Body)
	if jerr := journal.Append(rec); jerr != nil {
		logger.S.Warnw("journal append failed", "error", jerr)
	}

	logger.S.Infow("exchange complete",
		"method", d.Method,
		"url", d.URL,
		"status", raw.StatusCode,
		"bytes", len(raw.Body),
		"duration", rec.Duration,
	)

	value, err := httpcall.Decode(raw, d.Output)
	if err != nil {
		return err
	}
	return printValue(value)
}
