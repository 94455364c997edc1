// Package session persists the REPL's calculator memory and command history
// between runs, the way the calculator front-end keeps them in local
// storage. The payload lives under the user cache directory and is written
// atomically.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when Payload format changes
const schemaVersion uint16 = 1

const payloadFile = "session.mp"

// Store хранит сессионный payload на диске.
type Store struct {
	dir string
}

// Payload is the persisted session state.
type Payload struct {
	Schema  uint16
	Memory  map[string]StoredValue
	History []StoredValue
}

// Open initializes a store at the standard cache location.
func Open(app string) (*Store, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path() string {
	return filepath.Join(s.dir, payloadFile)
}

// Save serializes and atomically replaces the payload on disk.
func (s *Store) Save(payload *Payload) error {
	if s == nil {
		return nil
	}
	payload.Schema = schemaVersion

	f, err := os.CreateTemp(s.dir, "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err := os.Remove(f.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "failed to remove temp file: %v\n", err)
		}
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), s.path())
}

// Load reads the payload from disk. A missing file or a schema mismatch is
// (nil, false, nil) — the session simply starts empty.
func (s *Store) Load() (*Payload, bool, error) {
	if s == nil {
		return nil, false, nil
	}
	f, err := os.Open(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload Payload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&payload); err != nil {
		return nil, false, nil // повреждённый кэш — игнорируем
	}
	if payload.Schema != schemaVersion {
		return nil, false, nil
	}
	return &payload, true, nil
}

// Clear removes the persisted payload.
func (s *Store) Clear() error {
	if s == nil {
		return nil
	}
	err := os.Remove(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
