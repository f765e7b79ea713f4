// =============================================================================
// Inventory Voucher Manager - Record Store
// =============================================================================
//
// The store owns the record collection and is its sole source of truth. It
// exposes a narrow mutation API (List/Get/Create/Update/Delete); each mutation
// rewrites the whole collection to a single JSON file.
//
// Persistence is best-effort by design: a missing or unparsable file loads as
// an empty collection, and a failed write is logged while the in-memory state
// stays authoritative for the rest of the session. No persistence failure is
// ever surfaced to the user as an error.
//
// =============================================================================

package store

import (
	"encoding/json"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/namphatvn/inventory-voucher/internal/voucher"
	"github.com/namphatvn/inventory-voucher/pkg/utils"
)

// Store holds the record collection, newest-insertion-first.
type Store struct {
	path string
	log  *zap.Logger

	mu      sync.RWMutex
	records []voucher.Record
}

// Open loads the collection from the JSON file at path. Read failures and
// corrupt content degrade to an empty collection.
func Open(path string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}

	s := &Store{path: path, log: log}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("failed to read record store, starting empty",
				zap.String("path", path), zap.Error(err))
		}
		return s
	}

	if err := json.Unmarshal(data, &s.records); err != nil {
		log.Warn("record store is corrupt, starting empty",
			zap.String("path", path), zap.Error(err))
		s.records = nil
	}

	return s
}

// List returns a copy of the full collection in insertion order (newest first).
func (s *Store) List() []voucher.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]voucher.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Get returns the record with the given identifier.
func (s *Store) Get(id string) (voucher.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return voucher.Record{}, false
}

// Create prepends a new record and persists the collection.
func (s *Store) Create(r voucher.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append([]voucher.Record{r}, s.records...)
	s.persist()
}

// Update replaces the record with the same identifier in place and persists.
// It reports whether a record with that identifier existed.
func (s *Store) Update(r voucher.Record) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == r.ID {
			s.records[i] = r
			s.persist()
			return true
		}
	}
	return false
}

// Delete removes the record with the given identifier and persists. It
// reports whether a record was removed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

// persist serializes the whole collection and overwrites the store file.
// Failures are logged, never returned: the in-memory collection remains the
// authoritative state for the session. Callers must hold the write lock.
func (s *Store) persist() {
	records := s.records
	if records == nil {
		records = []voucher.Record{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		s.log.Error("failed to serialize records", zap.Error(err))
		return
	}

	if err := utils.EnsureParentDir(s.path); err != nil {
		s.log.Error("failed to prepare store directory",
			zap.String("path", s.path), zap.Error(err))
		return
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		s.log.Error("failed to write record store",
			zap.String("path", s.path), zap.Error(err))
	}
}
