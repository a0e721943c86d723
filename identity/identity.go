// Package identity persists the session identity across client restarts.
package identity

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mpasternak/parley"
)

// Interface compliance check.
var _ parley.Identity = (*File)(nil)

// envelope is the wire format of the persisted session identity.
type envelope struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// File is a file-backed parley.Identity: one JSON file holding the current
// session. The loaded session is cached in memory, so an unwritable file
// degrades to a single in-memory id for the process lifetime rather than a
// fresh id per resolve; the client stays usable, the server-side history
// just becomes unreachable after a restart.
type File struct {
	path string

	mu      sync.Mutex
	current *parley.Session
}

// NewFile creates a File identity backed by the given path.
func NewFile(path string) *File {
	return &File{path: path}
}

// DefaultPath returns the default state file location, ~/.parley/session.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".parley", "session")
}

// Resolve returns the persisted session id, generating and persisting a
// fresh one if none is stored.
func (f *File) Resolve() string {
	return f.Session().ID
}

// Reset discards the stored session and persists a newly generated one.
func (f *File) Reset() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rotate().ID
}

// Session returns the current session, loading it from the file and caching
// it on first use, creating one if needed.
func (f *File) Session() parley.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current != nil {
		return *f.current
	}
	data, err := os.ReadFile(f.path)
	if err == nil {
		var env envelope
		if err := json.Unmarshal(data, &env); err == nil && env.ID != "" {
			sess := parley.Session{ID: env.ID, CreatedAt: env.CreatedAt}
			f.current = &sess
			return sess
		}
	}
	return f.rotate()
}

// rotate generates, caches, and best-effort persists a fresh session.
// Callers hold f.mu.
func (f *File) rotate() parley.Session {
	sess := parley.Session{ID: uuid.NewString(), CreatedAt: time.Now()}
	f.current = &sess
	f.write(sess)
	return sess
}

// write persists the session with a temp-file rename so a crash mid-write
// never leaves a truncated file behind. Failures are swallowed: persistence
// is best effort.
func (f *File) write(sess parley.Session) {
	data, err := json.Marshal(envelope{ID: sess.ID, CreatedAt: sess.CreatedAt})
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return
	}
	if err := os.Rename(tmp, f.path); err != nil {
		os.Remove(tmp) // best-effort cleanup
	}
}
