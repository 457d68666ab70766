// Package store persists contact submissions that could not be delivered by
// email. The backing format is a single JSON array so the file stays
// readable by hand and by the retrieval endpoint.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Submission is one persisted contact-form entry. Timestamp is assigned when
// persistence is attempted, not at HTTP receipt time.
type Submission struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// FileStore is an append-only record of submissions backed by one JSON file.
// Appends serialize through a single mutex and replace the file atomically,
// so concurrent submissions cannot lose each other's records.
type FileStore struct {
	path string

	mu  sync.Mutex
	now func() time.Time
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: time.Now}
}

// Append stamps the submission and writes it after all prior records. A
// missing or unparsable file counts as an empty sequence; only an I/O
// failure on the write path is an error.
func (s *FileStore) Append(sub Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.readLenient()

	sub.Timestamp = s.now().UTC()
	existing = append(existing, sub)

	data, err := json.MarshalIndent(existing, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding messages: %w", err)
	}

	return s.replaceFile(data)
}

// ReadAll returns every persisted submission in arrival order. A store that
// does not exist yet is empty, not an error; an unreadable or corrupt store
// is an error.
func (s *FileStore) ReadAll() ([]Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Submission{}, nil
		}
		return nil, fmt.Errorf("reading messages file: %w", err)
	}

	var subs []Submission
	if err := json.Unmarshal(data, &subs); err != nil {
		return nil, fmt.Errorf("decoding messages file: %w", err)
	}
	return subs, nil
}

func (s *FileStore) readLenient() []Submission {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var subs []Submission
	if err := json.Unmarshal(data, &subs); err != nil {
		return nil
	}
	return subs
}

// replaceFile writes to a temp file in the same directory and renames it
// over the store, so a crash mid-write never truncates existing records.
func (s *FileStore) replaceFile(data []byte) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".messages-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing messages: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing messages file: %w", err)
	}
	return nil
}
