package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	pkgerrors "github.com/pkg/errors"

	"github.com/barberiapp/admin-cli/internal/errors"
)

const sessionFile = "session.json"

var _ Backend = (*FileBackend)(nil)

// FileBackend persists session entries as a JSON map in the data
// directory. This is the durable default; the file is readable only by
// the owner since it holds the bearer token.
type FileBackend struct {
	dir string
	mu  sync.Mutex
}

func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, pkgerrors.Wrapf(err, "[NewFileBackend] create %s", dir)
	}
	return &FileBackend{dir: dir}, nil
}

func (f *FileBackend) Get(key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.read()
	if err != nil {
		return "", err
	}
	value, ok := entries[key]
	if !ok {
		return "", errors.ErrNotFound
	}
	return value, nil
}

func (f *FileBackend) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.read()
	if err != nil {
		return err
	}
	entries[key] = value
	return f.write(entries)
}

func (f *FileBackend) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.read()
	if err != nil {
		return err
	}
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)
	return f.write(entries)
}

func (f *FileBackend) path() string {
	return filepath.Join(f.dir, sessionFile)
}

func (f *FileBackend) read() (map[string]string, error) {
	entries := make(map[string]string)
	raw, err := os.ReadFile(f.path())
	if err != nil {
		if os.IsNotExist(err) {
			return entries, nil
		}
		return nil, pkgerrors.Wrap(err, "[FileBackend.read]")
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		// An unreadable session file is equivalent to no session; the
		// store clears and starts unauthenticated.
		return make(map[string]string), nil
	}
	return entries, nil
}

func (f *FileBackend) write(entries map[string]string) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return pkgerrors.Wrap(err, "[FileBackend.write] marshal")
	}
	if err := os.WriteFile(f.path(), raw, 0o600); err != nil {
		return pkgerrors.Wrap(err, "[FileBackend.write]")
	}
	return nil
}
