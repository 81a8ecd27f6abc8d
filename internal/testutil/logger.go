// Package testutil provides log capture and panel fixtures shared by tests.
package testutil

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// LogRecord is one captured log record.
type LogRecord struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// LogCapture is an slog.Handler that records everything it handles.
type LogCapture struct {
	mu      sync.Mutex
	records []LogRecord
}

// NewTestLogger returns a logger whose records can be inspected after the
// code under test ran.
func NewTestLogger(t *testing.T) (*slog.Logger, *LogCapture) {
	t.Helper()
	capture := &LogCapture{}
	return slog.New(capture), capture
}

func (c *LogCapture) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]any)
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, LogRecord{
		Level:   r.Level,
		Message: r.Message,
		Attrs:   attrs,
	})
	return nil
}

func (c *LogCapture) Enabled(context.Context, slog.Level) bool { return true }

func (c *LogCapture) WithAttrs([]slog.Attr) slog.Handler { return c }

func (c *LogCapture) WithGroup(string) slog.Handler { return c }

// Records returns a copy of the captured records in order.
func (c *LogCapture) Records() []LogRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	records := make([]LogRecord, len(c.records))
	copy(records, c.records)
	return records
}

// ContainsMessage reports whether any record's message contains message.
func (c *LogCapture) ContainsMessage(message string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range c.records {
		if strings.Contains(r.Message, message) {
			return true
		}
	}
	return false
}

// Attr returns the first value logged under key, or nil.
func (c *LogCapture) Attr(key string) any {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range c.records {
		if v, ok := r.Attrs[key]; ok {
			return v
		}
	}
	return nil
}
