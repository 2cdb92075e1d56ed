// Package audit appends received hook events to an append-only JSONL
// file. The sink is best-effort by contract: a write failure is logged
// and swallowed so auditing can never block or fail delivery.
package audit

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
)

// Record is one audited event line.
type Record struct {
	ID         string          `json:"id"`
	ReceivedAt int64           `json:"received_at"`
	Event      json.RawMessage `json:"event"`
}

// Sink writes audit records to a JSONL file.
type Sink struct {
	path   string
	logger *slog.Logger
}

// NewSink creates a sink appending to path.
func NewSink(path string, logger *slog.Logger) *Sink {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sink{path: path, logger: logger}
}

// Append writes one event as a single JSONL line, stamped with a ULID
// and the receive time. Errors are logged and swallowed.
func (s *Sink) Append(raw json.RawMessage) {
	if err := s.append(raw); err != nil {
		s.logger.Warn("audit write failed", "path", s.path, "error", err)
	}
}

func (s *Sink) append(raw json.RawMessage) error {
	if s.path == "" {
		return fmt.Errorf("no audit path configured")
	}

	now := time.Now()
	id, err := ulid.New(ulid.Timestamp(now), rand.Reader)
	if err != nil {
		return err
	}

	line, err := json.Marshal(Record{
		ID:         id.String(),
		ReceivedAt: now.Unix(),
		Event:      raw,
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}
