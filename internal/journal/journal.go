// Package journal appends a JSONL record of solver runs: which day ran on
// which input, the answers it produced, how they compared with known
// answers, and any error that ended the run.
package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Event kinds identify the type of journal record.
const (
	KindRunStart     = "run_start"
	KindAnswer       = "answer"
	KindCheck        = "check"
	KindRunError     = "run_error"
	KindInputChanged = "input_changed"
)

// Event is a single journal record.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Kind      string    `json:"kind"`
	Day       string    `json:"day,omitempty"`
	Input     string    `json:"input,omitempty"`
	Part      int       `json:"part,omitempty"`
	Data      any       `json:"data,omitempty"`
}

// Journal writes events to a JSONL file. A nil *Journal is a valid no-op.
type Journal struct {
	file *os.File
	enc  *json.Encoder
	now  func() time.Time
}

// Open appends to the journal file at path, creating it if needed.
// An empty path disables journaling and returns a nil *Journal.
func Open(path string) (*Journal, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("journal: open %s: %w", path, err)
	}
	return &Journal{
		file: f,
		enc:  json.NewEncoder(f),
		now:  time.Now,
	}, nil
}

// Record writes evt, stamping it with the current time if it has none.
func (j *Journal) Record(evt Event) error {
	if j == nil {
		return nil
	}
	if evt.Timestamp.IsZero() {
		evt.Timestamp = j.now().UTC()
	}
	if err := j.enc.Encode(evt); err != nil {
		return fmt.Errorf("journal: encode event: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (j *Journal) Close() error {
	if j == nil {
		return nil
	}
	if err := j.file.Close(); err != nil {
		return fmt.Errorf("journal: close: %w", err)
	}
	return nil
}
