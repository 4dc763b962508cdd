package history

import (
	"fmt"
	"strings"
	"time"
)

// Package history journals completed HTTP exchanges for the CLI. The core
// pipeline never touches it.

// Record describes one completed exchange.
type Record struct {
	Time       time.Time     `json:"time"`
	Method     string        `json:"method"`
	URL        string        `json:"url"`
	StatusCode int           `json:"status_code,omitempty"`
	Duration   time.Duration `json:"duration"`
	BodyBytes  int           `json:"body_bytes"`
	Error      string        `json:"error,omitempty"`
}

// Journal persists exchange records.
type Journal interface {
	Close() error
	Append(rec Record) error
	Recent(limit int) ([]Record, error)
}

// Options controls retention characteristics for concrete journal backends.
type Options struct {
	RecordTTL       time.Duration
	CleanupInterval time.Duration
}

const (
	defaultRecordTTL       = 7 * 24 * time.Hour
	defaultCleanupInterval = 12 * time.Hour
)

// NewJournal creates the configured journal backend.
func NewJournal(typ, path string, opts Options) (Journal, error) {
	typ = strings.TrimSpace(strings.ToLower(typ))
	opts = normalizeOptions(opts)

	switch typ {
	case "", "none", "disabled":
		return noopJournal{}, nil
	case "bbolt":
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("bbolt history requires a path")
		}
		return openBolt(path, opts)
	default:
		return nil, fmt.Errorf("unsupported history type %q", typ)
	}
}

func normalizeOptions(opts Options) Options {
	if opts.RecordTTL <= 0 {
		opts.RecordTTL = defaultRecordTTL
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = defaultCleanupInterval
	}
	return opts
}

type noopJournal struct{}

func (noopJournal) Close() error                 { return nil }
func (noopJournal) Append(Record) error          { return nil }
func (noopJournal) Recent(int) ([]Record, error) { return nil, nil }
