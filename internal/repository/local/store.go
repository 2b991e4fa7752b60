package local

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Store is a durable string-keyed JSON blob store backed by one file per key.
// It is the storefront's stand-in for browser local storage: it must work
// with no server process reachable, never expire entries, and treat a corrupt
// blob as absent rather than failing the read.
//
// Writes go through a temp file and rename so a crash mid-write leaves the
// previous blob intact. Concurrent writers from separate processes are not
// coordinated: last write wins.
type Store struct {
	mu     sync.Mutex
	dir    string
	logger *slog.Logger
}

// NewStore creates the store rooted at dir, creating the directory if needed.
func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create local store dir: %w", err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// read decodes the blob stored under key into v. It returns false when the
// key is absent or the blob is corrupt; corruption is logged, never surfaced.
func (s *Store) read(key string, v any) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("local store read failed",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
		return false
	}

	if err := json.Unmarshal(data, v); err != nil {
		s.logger.Warn("local store blob corrupt, treating as absent",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return false
	}

	return true
}

// write serializes v and durably replaces the blob stored under key.
func (s *Store) write(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s blob: %w", key, err)
	}

	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp blob: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s blob: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s blob: %w", key, err)
	}

	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s blob: %w", key, err)
	}

	return nil
}
