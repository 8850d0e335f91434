// Package cache keeps a manifest of generated packages, so unchanged
// packages can be skipped without loading and type-checking them.
//
// An entry is keyed by the package directory and records a hash of the
// package sources together with the fingerprint of the generator settings.
// The manifest is stored with msgpack.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// version is bumped whenever the manifest layout changes. Manifests
// with another version are discarded.
const version = 1

// Entry is the state of one package at its last successful generation.
type Entry struct {
	// Hash of the package sources, excluding the generated file.
	Hash string `msgpack:"hash"`
	// Fingerprint of the generator configuration.
	Fingerprint string `msgpack:"fingerprint"`
	// Records lists the records a builder was generated for.
	Records []string `msgpack:"records,omitempty"`
	// Updated is the time the entry was stored.
	Updated time.Time `msgpack:"updated"`
}

type manifest struct {
	Version int               `msgpack:"version"`
	Entries map[string]*Entry `msgpack:"entries"`
}

// Store is a manifest backed by a file. It is safe for concurrent use.
type Store struct {
	path    string
	mu      sync.Mutex
	entries map[string]*Entry
	dirty   bool
}

// Open reads the manifest at path. A missing, unreadable or outdated
// manifest yields an empty store.
func Open(path string) (*Store, error) {
	s := &Store{path: path, entries: make(map[string]*Entry)}
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("read cache %s: %w", path, err)
	}
	var m manifest
	if err := msgpack.Unmarshal(b, &m); err != nil || m.Version != version {
		// Rebuilt on the next Save.
		s.dirty = true
		return s, nil
	}
	if m.Entries != nil {
		s.entries = m.Entries
	}
	return s, nil
}

// Path returns the manifest location.
func (s *Store) Path() string {
	return s.path
}

// Get returns the entry of the package in dir.
func (s *Store) Get(dir string) (*Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[dir]
	return e, ok
}

// Fresh reports whether the package in dir was generated from the same
// sources and settings.
func (s *Store) Fresh(dir, hash, fingerprint string) bool {
	e, ok := s.Get(dir)
	return ok && e.Hash == hash && e.Fingerprint == fingerprint
}

// Put stores the entry of the package in dir.
func (s *Store) Put(dir string, e *Entry) {
	if e.Updated.IsZero() {
		e.Updated = time.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[dir] = e
	s.dirty = true
}

// Delete removes the entry of the package in dir.
func (s *Store) Delete(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[dir]; ok {
		delete(s.entries, dir)
		s.dirty = true
	}
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Save writes the manifest if it changed since it was opened.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty {
		return nil
	}
	b, err := msgpack.Marshal(&manifest{Version: version, Entries: s.entries})
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	s.dirty = false
	return nil
}

// HashFiles hashes the names and contents of files, skipping the base
// names listed in exclude. The order of files does not matter.
func HashFiles(files []string, exclude ...string) (string, error) {
	files = slices.Clone(files)
	slices.Sort(files)
	h := sha256.New()
	for _, name := range files {
		if slices.Contains(exclude, filepath.Base(name)) {
			continue
		}
		if err := hashFile(h, name); err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func hashFile(w io.Writer, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("hash %s: %w", name, err)
	}
	defer f.Close()
	fmt.Fprintf(w, "%s\x00", filepath.Base(name))
	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("hash %s: %w", name, err)
	}
	_, err = w.Write([]byte{0})
	return err
}

// DefaultPath returns the manifest location under the user cache
// directory, specific to the module root.
func DefaultPath(root string) (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(dir, "autobuilder", hex.EncodeToString(sum[:8])+".msgpack"), nil
}
