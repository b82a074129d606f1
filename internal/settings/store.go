package settings

import (
	"errors"
	"sync"

	"go.uber.org/zap"
)

// LastLocationKey is the key the last viewed location is stored under
const LastLocationKey = "lastLocation"

// LocationStore persists the last successfully viewed location
type LocationStore interface {
	GetPersistedLocation() (string, bool)
	// SetPersistedLocation never reports failure; a lost write only costs the
	// next session its default location.
	SetPersistedLocation(location string)
}

// keyValue is the subset of Repository the Store needs
type keyValue interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Store adapts a key/value repository to LocationStore
type Store struct {
	kv     keyValue
	logger *zap.Logger
}

// NewStore creates a Store; a nil logger discards log output
func NewStore(kv keyValue, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{kv: kv, logger: logger}
}

func (s *Store) GetPersistedLocation() (string, bool) {
	value, err := s.kv.Get(LastLocationKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Warn("reading persisted location", zap.Error(err))
		}
		return "", false
	}
	if value == "" {
		return "", false
	}
	return value, true
}

func (s *Store) SetPersistedLocation(location string) {
	if err := s.kv.Set(LastLocationKey, location); err != nil {
		s.logger.Warn("persisting location",
			zap.String("location", location),
			zap.Error(err),
		)
	}
}

// MemoryStore is a LocationStore that lives for the process only
type MemoryStore struct {
	mu       sync.Mutex
	location string
}

// NewMemoryStore creates a MemoryStore seeded with location ("" for none)
func NewMemoryStore(location string) *MemoryStore {
	return &MemoryStore{location: location}
}

func (m *MemoryStore) GetPersistedLocation() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.location, m.location != ""
}

func (m *MemoryStore) SetPersistedLocation(location string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.location = location
}
