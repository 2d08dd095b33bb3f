package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

const fileStoreVersion = "1.0"

// StoreFile represents the top-level structure of the storage file.
type StoreFile struct {
	Version string            `yaml:"version"`
	Values  map[string]string `yaml:"values"`
}

// FileStore is a KeyValueStore persisted as a YAML document. Several
// processes may share one file; each Set changes only its own key.
type FileStore interface {
	KeyValueStore
	// Load reads the file into memory. A missing file loads as empty.
	Load() error
	// Path returns the file backing the store.
	Path() string
}

type fileStore struct {
	mu   sync.Mutex
	path string
	data StoreFile
}

// NewFileStore creates a FileStore backed by the YAML file at path. Call
// Load before the first Get to pick up existing values.
func NewFileStore(path string) FileStore {
	return &fileStore{
		path: path,
		data: StoreFile{
			Version: fileStoreVersion,
			Values:  make(map[string]string),
		},
	}
}

func (s *fileStore) Path() string {
	return s.path
}

func (s *fileStore) lockPath() string {
	return s.path + ".lock"
}

func (s *fileStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data.Values[key]
	return v, ok, nil
}

// Set writes one key. The file is re-read under the lock and only key is
// changed, so keys written by other processes since Load are kept. The
// in-memory view is refreshed to the merged document on success and left
// untouched on failure.
func (s *fileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("saving store: creating directory: %w", err)
	}

	unlock, err := lockFile(s.lockPath())
	if err != nil {
		return fmt.Errorf("saving store: %w", err)
	}
	defer func() { _ = unlock() }()

	current, err := s.readFile()
	if err != nil {
		// An unreadable file is replaced by what this process knows.
		current = s.data
	}

	next := StoreFile{
		Version: current.Version,
		Values:  make(map[string]string, len(current.Values)+1),
	}
	for k, v := range current.Values {
		next.Values[k] = v
	}
	next.Values[key] = value

	if err := s.write(next); err != nil {
		return err
	}
	s.data = next
	return nil
}

func (s *fileStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sf, err := s.readFile()
	if err != nil {
		return err
	}
	s.data = sf
	return nil
}

// readFile parses the file on disk. A missing file is an empty document.
func (s *fileStore) readFile() (StoreFile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return StoreFile{
				Version: fileStoreVersion,
				Values:  make(map[string]string),
			}, nil
		}
		return StoreFile{}, fmt.Errorf("loading store: %w", err)
	}

	var sf StoreFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return StoreFile{}, fmt.Errorf("loading store: parsing YAML: %w", err)
	}
	if sf.Version == "" {
		sf.Version = fileStoreVersion
	}
	if sf.Values == nil {
		sf.Values = make(map[string]string)
	}
	return sf, nil
}

// write replaces the file with doc through a temp file and rename. Caller
// holds s.mu and the file lock.
func (s *fileStore) write(doc StoreFile) error {
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("saving store: marshaling YAML: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("saving store: creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("saving store: writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("saving store: closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("saving store: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("saving store: replacing file: %w", err)
	}
	return nil
}
