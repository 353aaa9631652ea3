package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sync"

	"go.uber.org/zap"

	"lawmap/domain/userdata"
	"lawmap/pkg/observability"
)

// Store keeps the whole user document in memory and mirrors every mutation
// to a single JSON file. The in-memory state is authoritative: a failed save
// is logged and counted but never rolls back the mutation, the next
// successful save catches up.
type Store struct {
	path    string
	logger  *zap.Logger
	metrics *observability.Collector

	mu  sync.RWMutex
	doc userdata.Document
}

// NewStore opens the store at path, creating the parent directory when
// needed. A missing file yields an empty document. A corrupt file also
// yields an empty document rather than an error: user data lives in one
// file and refusing to start over a bad byte would brick the tool.
func NewStore(path string, logger *zap.Logger, metrics *observability.Collector) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Store{
		path:    path,
		logger:  logger,
		metrics: metrics,
	}
	s.doc = s.load()
	return s, nil
}

// View returns a deep copy of the current document
func (s *Store) View() userdata.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// Update applies fn to a working copy of the document. If fn returns an
// error the stored document is untouched. On success the copy becomes the
// new state and is written to disk.
func (s *Store) Update(fn func(doc *userdata.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.doc.Clone()
	if err := fn(&working); err != nil {
		return err
	}

	s.doc = working
	s.save()
	return nil
}

// Reload re-reads the file and replaces the in-memory state. Used by the
// file watcher when the document was edited externally. The store's own
// saves also wake the watcher, so an unchanged document is a no-op.
func (s *Store) Reload() {
	loaded := s.load()

	s.mu.Lock()
	changed := !reflect.DeepEqual(s.doc, loaded)
	if changed {
		s.doc = loaded
	}
	s.mu.Unlock()

	if !changed {
		return
	}
	s.metrics.StoreReloads.Inc()
	s.logger.Info("document reloaded from disk", zap.String("path", s.path))
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

func (s *Store) load() userdata.Document {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read document file, starting empty",
				zap.String("path", s.path), zap.Error(err))
		}
		return userdata.NewDocument()
	}

	var doc userdata.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("document file is not valid JSON, starting empty",
			zap.String("path", s.path), zap.Error(err))
		return userdata.NewDocument()
	}

	return userdata.Migrate(doc)
}

// save writes the document atomically via a temp file rename. Errors are
// swallowed: the caller's mutation already succeeded in memory.
func (s *Store) save() {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		s.saveFailed("failed to serialize document", err)
		return
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		s.saveFailed("failed to write document file", err)
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		s.saveFailed("failed to replace document file", err)
		return
	}

	s.metrics.StoreSaves.Inc()
}

func (s *Store) saveFailed(msg string, err error) {
	s.metrics.StoreSaveFailures.Inc()
	s.logger.Error(msg, zap.String("path", s.path), zap.Error(err))
}
