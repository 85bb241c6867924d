package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/disgoorg/gather-bot/gatherbot/account"
)

// FileBackend stores the whole key to account mapping as one JSON document.
// Every Save rewrites the document through a temp file and a rename, so a
// crash leaves either the old or the new document on disk.
type FileBackend struct {
	path string

	mu sync.Mutex
	// docs holds every entry as last written, including ones that failed to
	// decode, so a rewrite never drops them.
	docs map[string]json.RawMessage
}

func NewFileBackend(path string) *FileBackend {
	return &FileBackend{
		path: path,
		docs: make(map[string]json.RawMessage),
	}
}

func (f *FileBackend) LoadAll(_ context.Context) (map[account.Key]*account.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("No account file yet, starting empty",
			slog.String("type", "db"),
			slog.String("path", f.path))
		return make(map[account.Key]*account.Account), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.path, err)
	}

	docs := make(map[string]json.RawMessage)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &docs); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", f.path, err)
		}
	}
	f.docs = docs

	out := make(map[account.Key]*account.Account, len(docs))
	for raw, doc := range docs {
		key, a, err := decode(raw, doc)
		if err != nil {
			slog.Warn("Skipping unreadable account",
				slog.String("type", "db"),
				slog.String("key", raw),
				slog.Any("error", err))
			continue
		}
		out[key] = a
	}
	return out, nil
}

func (f *FileBackend) Save(_ context.Context, key account.Key, acct *account.Account) error {
	data, err := encode(acct)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	prev, had := f.docs[key.String()]
	f.docs[key.String()] = data
	if err := f.writeLocked(); err != nil {
		if had {
			f.docs[key.String()] = prev
		} else {
			delete(f.docs, key.String())
		}
		return err
	}
	return nil
}

func (f *FileBackend) writeLocked() error {
	data, err := json.MarshalIndent(f.docs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode account file: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", f.path, err)
	}
	return nil
}

func (f *FileBackend) Close(_ context.Context) error {
	return nil
}
