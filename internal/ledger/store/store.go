// Package store persists ledger snapshots as a single JSON document. Every
// save is a whole-document rewrite through a temp file and rename, so a
// partially-written file is never observable to a subsequent load.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/contasmart/contasmart/internal/ledger"
)

// Store reads and writes one ledger document at a fixed path.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the document location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted ledger. When the file does not exist yet, a fresh
// ledger with the default chart is returned.
func (s *Store) Load() (*ledger.Ledger, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ledger.New(), nil
		}

		return nil, fmt.Errorf("reading ledger file: %w", err)
	}

	var snapshot ledger.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("decoding ledger file: %w", err)
	}

	return ledger.FromSnapshot(snapshot), nil
}

// Save atomically replaces the document with the ledger's current state.
func (s *Store) Save(l *ledger.Ledger) error {
	data, err := json.MarshalIndent(l.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	// Write to a temp file in the same directory so the rename stays on one
	// filesystem.
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return fmt.Errorf("syncing temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("replacing ledger file: %w", err)
	}

	return nil
}
