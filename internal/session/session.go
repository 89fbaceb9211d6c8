package session

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when Payload format changes
const sessionSchemaVersion uint16 = 1

// Store хранит состояние REPL между запусками на диске.
// Thread-safe for concurrent access.
type Store struct {
	mu  sync.RWMutex
	dir string
}

// Payload carries a saved REPL session. Values travel as decimal
// strings so the arithmetic library itself stays serialization-free.
type Payload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	// Variables (parallel slices, sorted by name)
	Names  []string
	Values []string

	// Last result, empty when no statement has run
	Last string

	// Entered lines, oldest first
	History []string
}

// Open initializes and returns a session store at the standard cache
// location for app.
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

// OpenAt returns a store rooted at an explicit directory, bypassing
// the cache-location lookup.
func OpenAt(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path() string {
	return filepath.Join(s.dir, "session.mp")
}

// Save serializes and writes a payload, replacing the file atomically.
func (s *Store) Save(payload *Payload) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.path()
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	// Атомарная замена
	return os.Rename(tmp, p)
}

// Load reads the saved session, reporting found=false when no usable
// session exists. A payload from another schema version is ignored
// rather than surfaced as an error.
func (s *Store) Load() (*Payload, bool, error) {
	if s == nil {
		return nil, false, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, err := os.Open(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer func() {
		_ = f.Close()
	}()

	var payload Payload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != sessionSchemaVersion {
		return nil, false, nil
	}
	return &payload, true, nil
}

// Drop discards the saved session. The store stays usable, so a later
// Save starts from a clean slate.
func (s *Store) Drop() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.path() + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(s.path(), old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.Remove(old)
}

// NewPayload returns an empty payload stamped with the current schema.
func NewPayload() *Payload {
	return &Payload{Schema: sessionSchemaVersion}
}
