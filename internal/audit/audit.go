// Package audit keeps an append-only trail of kindness act lifecycle events:
// creations, moderation decisions, deletions and completions. Entries are
// written synchronously as JSON lines so the file is greppable and survives
// process restarts.
package audit

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/kindnet/kindness-api/pkg/logger"
	"go.uber.org/zap"
)

const (
	EventActCreated   = "act_created"
	EventActUpdated   = "act_updated"
	EventActDeleted   = "act_deleted"
	EventActCompleted = "act_completed"
)

// Entry is one lifecycle event in the trail.
type Entry struct {
	Event     string    `json:"event"`
	ActID     string    `json:"act_id"`
	ActorID   string    `json:"actor_id"`
	ActorRole string    `json:"actor_role"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Trail manages the append-only audit file.
type Trail struct {
	filePath string
	file     *os.File
	mu       sync.Mutex
}

// NewTrail opens (or creates) the audit file for appending.
func NewTrail(filePath string) (*Trail, error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	return &Trail{
		filePath: filePath,
		file:     file,
	}, nil
}

// Record appends an entry and syncs it to disk. Failures are logged and
// returned, but callers treat the trail as best-effort and do not fail the
// request over it.
func (t *Trail) Record(entry Entry) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		logger.Log.Error("Audit: failed to marshal entry",
			zap.String("event", entry.Event),
			zap.Error(err),
		)
		return err
	}

	if _, err := t.file.WriteString(string(data) + "\n"); err != nil {
		logger.Log.Error("Audit: failed to write entry",
			zap.String("event", entry.Event),
			zap.Error(err),
		)
		return err
	}

	if err := t.file.Sync(); err != nil {
		logger.Log.Error("Audit: failed to sync to disk",
			zap.String("event", entry.Event),
			zap.Error(err),
		)
		return err
	}

	return nil
}

// ReadAll returns every entry in the trail, oldest first.
func (t *Trail) ReadAll() ([]Entry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := t.file.Seek(0, 0); err != nil {
		return nil, err
	}

	var entries []Entry
	scanner := bufio.NewScanner(t.file)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			logger.Log.Warn("Audit: skipping corrupt entry",
				zap.Error(err),
			)
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// Restore append position.
	if _, err := t.file.Seek(0, 2); err != nil {
		return nil, err
	}

	return entries, nil
}

// Close closes the underlying file.
func (t *Trail) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.file.Close()
}
