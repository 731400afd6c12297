// Package snapshot keeps a JSON document per profile in a directory.
//
// The documents mirror the database so that the data stays readable and
// portable. Reading never fails: a missing or broken document is replaced
// by the default one and the problem is logged.
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/meu-painel/backend/internal/ledger"
	"github.com/rs/zerolog/log"
)

const extension = ".json"

var ErrInvalidID = errors.New("snapshot ids must not be empty or contain path separators")

// Entry is a document together with the id it is stored under.
type Entry struct {
	ID   string
	Data ledger.PersonData
}

// Store reads and writes documents in Dir.
type Store struct {
	Dir string
}

// New creates the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating snapshot directory: %w", err)
	}

	return &Store{Dir: dir}, nil
}

func (s *Store) path(id string) (string, error) {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return "", ErrInvalidID
	}

	return filepath.Join(s.Dir, id+extension), nil
}

// Load returns the document stored under id. When it is absent or cannot be
// parsed, the default document is returned.
func (s *Store) Load(id string) ledger.PersonData {
	path, err := s.path(id)
	if err != nil {
		log.Warn().Str("id", id).Err(err).Msg("Snapshot")
		return ledger.Default()
	}

	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Str("path", path).Err(err).Msg("Snapshot")
		}
		return ledger.Default()
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		log.Warn().Str("path", path).Err(err).Msg("Snapshot is not readable, using the default document")
		return ledger.Default()
	}

	return doc
}

// LoadAll returns all valid documents, sorted by id. If there are none, a
// single entry with an empty id and the default document is returned.
func (s *Store) LoadAll() []Entry {
	fallback := []Entry{{Data: ledger.Default()}}

	files, err := os.ReadDir(s.Dir)
	if err != nil {
		log.Warn().Str("dir", s.Dir).Err(err).Msg("Snapshot")
		return fallback
	}

	var entries []Entry
	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != extension {
			continue
		}

		path := filepath.Join(s.Dir, file.Name())
		b, err := os.ReadFile(path)
		if err != nil {
			log.Warn().Str("path", path).Err(err).Msg("Snapshot")
			continue
		}

		doc, err := ParseBytes(b)
		if err != nil {
			log.Warn().Str("path", path).Err(err).Msg("Snapshot is not readable, skipping it")
			continue
		}

		entries = append(entries, Entry{ID: strings.TrimSuffix(file.Name(), extension), Data: doc})
	}

	if len(entries) == 0 {
		return fallback
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})

	return entries
}

// Save writes the document atomically.
func (s *Store) Save(id string, doc ledger.PersonData) error {
	path, err := s.path(id)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.Dir, "."+id+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary snapshot: %w", err)
	}

	// Removing fails harmlessly once the file has been renamed
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, doc); err != nil {
		tmp.Close()
		return fmt.Errorf("writing snapshot: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("writing snapshot: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing snapshot: %w", err)
	}

	return nil
}

// Delete removes the document. Deleting a missing document is not an error.
func (s *Store) Delete(id string) error {
	path, err := s.path(id)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("deleting snapshot: %w", err)
	}

	return nil
}
