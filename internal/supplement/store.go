package supplement

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/google/uuid"
)

// intakeRecord is one recorded intake. The id ties the file entry to the
// log line that recorded it.
type intakeRecord struct {
	At string `json:"at"` // HH:MM
	ID string `json:"id"`
}

// dayRecord is the on-disk shape: one day of intakes. A record for a past
// date is simply ignored, which resets the tracker at midnight without
// any scheduled cleanup.
type dayRecord struct {
	Date  string                  `json:"date"`
	Taken map[string]intakeRecord `json:"taken"` // keyed by normalized name
}

// Store persists the day's intakes to a single JSON file.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store backed by the JSON file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the intakes recorded for date, as normalized name to HH:MM.
// A missing file or a record for another date yields an empty map.
func (s *Store) Load(date string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.loadLocked(date)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]string, len(rec))
	for name, in := range rec {
		taken[name] = in.At
	}
	return taken, nil
}

// MarkTaken records one intake for date, replacing any record held for a
// previous date.
func (s *Store) MarkTaken(date, name, clock string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.loadLocked(date)
	if err != nil {
		return err
	}
	rec[name] = intakeRecord{At: clock, ID: uuid.NewString()}

	raw, err := json.MarshalIndent(dayRecord{Date: date, Taken: rec}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode supplement record: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write supplement record: %w", err)
	}
	return nil
}

func (s *Store) loadLocked(date string) (map[string]intakeRecord, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]intakeRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read supplement record: %w", err)
	}

	var rec dayRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode supplement record: %w", err)
	}
	if rec.Date != date || rec.Taken == nil {
		return map[string]intakeRecord{}, nil
	}
	return rec.Taken, nil
}
