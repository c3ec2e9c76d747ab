package reservation

import (
	"context"
	"encoding/json"
	"sync"

	"andeanscapes/models"
)

// MemoryStore is an in-process Store used in tests and store-less
// deployments. Snapshots round-trip through JSON so its behavior matches
// the Redis store, including shape-mismatch handling.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Save(_ context.Context, experienceID, deviceID string, snap models.ReservationSnapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[StorageKey(experienceID, deviceID)] = b
	return nil
}

func (s *MemoryStore) Load(_ context.Context, experienceID, deviceID string) (*models.ReservationSnapshot, error) {
	s.mu.RLock()
	b, ok := s.data[StorageKey(experienceID, deviceID)]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	var snap models.ReservationSnapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, nil
	}
	return &snap, nil
}

func (s *MemoryStore) Clear(_ context.Context, experienceID, deviceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, StorageKey(experienceID, deviceID))
	return nil
}

// Put stores raw bytes under the reservation key, bypassing the snapshot
// shape. Tests use it to simulate corrupt persisted data.
func (s *MemoryStore) Put(experienceID, deviceID string, raw []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[StorageKey(experienceID, deviceID)] = raw
}
