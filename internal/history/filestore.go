package history

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/amrit/rehearse/internal/session"
)

// FileStore writes one JSON file per completed session into a directory.
// It implements session.Recorder.
type FileStore struct {
	dir string
	log *slog.Logger
}

// NewFileStore creates the directory if needed and returns a store over it.
func NewFileStore(dir string, logger *slog.Logger) (*FileStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create response directory: %w", err)
	}
	return &FileStore{dir: dir, log: logger}, nil
}

// Dir returns the directory the store writes to.
func (fs *FileStore) Dir() string {
	return fs.dir
}

// Save writes the session as a pretty-printed JSON file named after the
// session ID and returns the file path. An existing file with the same name
// is never overwritten; the new file gets a short unique suffix instead.
func (fs *FileStore) Save(_ context.Context, s *session.Session) (string, error) {
	rec := FromSession(s)

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode session %s: %w", s.ID, err)
	}

	path := filepath.Join(fs.dir, s.ID+".json")
	if _, err := os.Stat(path); err == nil {
		suffix := strings.Split(uuid.NewString(), "-")[0]
		path = filepath.Join(fs.dir, s.ID+"_"+suffix+".json")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write session %s: %w", s.ID, err)
	}

	fs.log.Info("session saved", "student", s.StudentName, "path", path)
	return path, nil
}

// LoadAll reads every session record in the directory, newest first. Files
// that cannot be parsed are skipped with a warning rather than failing the
// whole load.
func (fs *FileStore) LoadAll(_ context.Context) ([]SessionRecord, error) {
	paths, err := filepath.Glob(filepath.Join(fs.dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("list response directory: %w", err)
	}

	records := make([]SessionRecord, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			fs.log.Warn("skipping unreadable session file", "path", path, "error", err)
			continue
		}
		var rec SessionRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			fs.log.Warn("skipping corrupt session file", "path", path, "error", err)
			continue
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].SessionTimestamp.After(records[j].SessionTimestamp)
	})
	return records, nil
}
