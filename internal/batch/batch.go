package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/novalith-hq/httpbridge/internal/history"
	"github.com/novalith-hq/httpbridge/pkg/httpcall"
)

// Package batch runs a YAML file of request descriptors through the
// httpcall pipeline, one after another.

// File is the on-disk shape of a batch run.
type File struct {
	Requests []map[string]any `yaml:"requests"`
}

// Result is the outcome of one batch entry.
type Result struct {
	Index  int
	URL    string
	Method string
	Value  any
	Err    error
}

// Load reads and parses a batch file. A file with no requests is an error.
func Load(path string) (*File, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("batch file path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse batch file: %w", err)
	}
	if len(file.Requests) == 0 {
		return nil, fmt.Errorf("batch file %q contains no requests", path)
	}
	return &file, nil
}

// Run executes every entry through client in file order. A failed entry is
// recorded in its Result and the run continues; ctx cancellation stops the
// remainder.
func Run(ctx context.Context, client *httpcall.Client, file *File, journal history.Journal) ([]Result, error) {
	if client == nil {
		return nil, errors.New("client must not be nil")
	}
	if file == nil || len(file.Requests) == 0 {
		return nil, errors.New("batch file has no requests")
	}
	if journal == nil {
		journal = noJournal{}
	}

	results := make([]Result, 0, len(file.Requests))
	for i, input := range file.Requests {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res := Result{Index: i}
		res.Method, res.URL = describe(input)

		start := time.Now()
		rec := history.Record{Time: start, Method: res.Method, URL: res.URL}

		d, err := httpcall.ParseDescriptor(input)
		if err == nil {
			var raw *httpcall.RawResponse
			raw, err = httpcall.Execute(ctx, client, d)
			if err == nil {
				rec.StatusCode = raw.StatusCode
				rec.BodyBytes = len(raw.Body)
				res.Value, err = httpcall.Decode(raw, d.Output)
			}
		}
		res.Err = err

		rec.Duration = time.Since(start)
		if err != nil {
			rec.Error = err.Error()
		}
		if jerr := journal.Append(rec); jerr != nil {
			return results, fmt.Errorf("journal entry %d: %w", i, jerr)
		}

		results = append(results, res)
	}
	return results, nil
}

// describe pulls the method and url out of a raw entry for reporting,
// before validation has run.
func describe(input map[string]any) (method, url string) {
	method = "GET"
	if m, ok := input["method"].(string); ok && m != "" {
		method = m
	}
	url, _ = input["url"].(string)
	return method, url
}

type noJournal struct{}

func (noJournal) Close() error                         { return nil }
func (noJournal) Append(history.Record) error          { return nil }
func (noJournal) Recent(int) ([]history.Record, error) { return nil, nil }
