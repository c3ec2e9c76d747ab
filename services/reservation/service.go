package reservation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"andeanscapes/models"
)

// DefaultReservationService implements ReservationService. Engines live in
// memory for the lifetime of the process; the store is the only channel
// across restarts. Two devices presenting the same id overwrite each
// other's persisted state, last save wins.
type DefaultReservationService struct {
	Experiences ExperienceSource
	Store       Store
	Logger      *zap.Logger

	mu       sync.Mutex
	sessions map[string]*session
}

// session pairs an engine with its saver goroutine. Snapshots flow through
// a small buffered channel so writes reach the store in transition order
// without ever blocking a transition; on backlog the oldest pending
// snapshot is dropped, which is safe because every write is a full-state
// snapshot.
type session struct {
	engine *Engine
	saves  chan models.ReservationSnapshot
	done   chan struct{}
}

func NewDefaultReservationService(experiences ExperienceSource, store Store, logger *zap.Logger) *DefaultReservationService {
	return &DefaultReservationService{
		Experiences: experiences,
		Store:       store,
		Logger:      logger,
		sessions:    make(map[string]*session),
	}
}

func (s *DefaultReservationService) session(ctx context.Context, experienceID, deviceID string) (*session, error) {
	key := experienceID + "/" + deviceID

	s.mu.Lock()
	if sess, ok := s.sessions[key]; ok {
		s.mu.Unlock()
		return sess, nil
	}
	s.mu.Unlock()

	data, err := s.Experiences.GetExperienceData(ctx, experienceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load experience configuration: %w", err)
	}

	engine := NewEngine(data.Config, data.RoomModes)

	// A failed load is "no persisted state", never fatal.
	snap, err := s.Store.Load(ctx, experienceID, deviceID)
	if err != nil {
		s.Logger.Warn("failed to load persisted reservation, using defaults",
			zap.String("experienceId", experienceID),
			zap.String("deviceId", deviceID),
			zap.Error(err))
		snap = nil
	}
	engine.Hydrate(snap)

	sess := &session{
		engine: engine,
		saves:  make(chan models.ReservationSnapshot, 16),
		done:   make(chan struct{}),
	}

	s.mu.Lock()
	if existing, ok := s.sessions[key]; ok {
		// Lost the race to another request for the same device.
		s.mu.Unlock()
		close(sess.done)
		return existing, nil
	}
	s.sessions[key] = sess
	s.mu.Unlock()

	go s.runSaver(sess, experienceID, deviceID)
	return sess, nil
}

func (s *DefaultReservationService) runSaver(sess *session, experienceID, deviceID string) {
	for {
		select {
		case snap := <-sess.saves:
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			if err := s.Store.Save(ctx, experienceID, deviceID, snap); err != nil {
				s.Logger.Warn("failed to persist reservation snapshot",
					zap.String("experienceId", experienceID),
					zap.String("deviceId", deviceID),
					zap.Error(err))
			}
			cancel()
		case <-sess.done:
			return
		}
	}
}

// scheduleSave queues a snapshot write without blocking the transition.
// Writes are gated on hydration so the initial load can never be clobbered
// by a default state.
func (s *DefaultReservationService) scheduleSave(sess *session) {
	st := sess.engine.State()
	if !st.IsHydrated {
		return
	}
	snap := st.Snapshot()
	for {
		select {
		case sess.saves <- snap:
			return
		default:
		}
		// Channel full: drop the oldest pending snapshot.
		select {
		case <-sess.saves:
		default:
		}
	}
}

func (s *DefaultReservationService) GetState(ctx context.Context, experienceID, deviceID string) (models.ReservationState, error) {
	sess, err := s.session(ctx, experienceID, deviceID)
	if err != nil {
		return models.ReservationState{}, err
	}
	return sess.engine.State(), nil
}

func (s *DefaultReservationService) SetDate(ctx context.Context, experienceID, deviceID, dateID, label string, spots int) (models.ReservationState, error) {
	sess, err := s.session(ctx, experienceID, deviceID)
	if err != nil {
		return models.ReservationState{}, err
	}
	sess.engine.SetDate(dateID, label, spots)
	s.scheduleSave(sess)
	return sess.engine.State(), nil
}

func (s *DefaultReservationService) SetPeopleCount(ctx context.Context, experienceID, deviceID string, count int) (models.ReservationState, error) {
	sess, err := s.session(ctx, experienceID, deviceID)
	if err != nil {
		return models.ReservationState{}, err
	}
	sess.engine.SetPeopleCount(count)
	s.scheduleSave(sess)
	return sess.engine.State(), nil
}

func (s *DefaultReservationService) SetRoomMode(ctx context.Context, experienceID, deviceID string, mode models.RoomMode) (models.ReservationState, error) {
	sess, err := s.session(ctx, experienceID, deviceID)
	if err != nil {
		return models.ReservationState{}, err
	}
	sess.engine.SetRoomMode(mode)
	s.scheduleSave(sess)
	return sess.engine.State(), nil
}

func (s *DefaultReservationService) SetTransportMode(ctx context.Context, experienceID, deviceID string, mode models.TransportMode) (models.ReservationState, error) {
	sess, err := s.session(ctx, experienceID, deviceID)
	if err != nil {
		return models.ReservationState{}, err
	}
	sess.engine.SetTransportMode(mode)
	s.scheduleSave(sess)
	return sess.engine.State(), nil
}

func (s *DefaultReservationService) SetContactField(ctx context.Context, experienceID, deviceID, field, value string) (models.ReservationState, error) {
	sess, err := s.session(ctx, experienceID, deviceID)
	if err != nil {
		return models.ReservationState{}, err
	}
	sess.engine.SetContactField(field, value)
	s.scheduleSave(sess)
	return sess.engine.State(), nil
}

func (s *DefaultReservationService) SetTermsAccepted(ctx context.Context, experienceID, deviceID string, accepted bool) (models.ReservationState, error) {
	sess, err := s.session(ctx, experienceID, deviceID)
	if err != nil {
		return models.ReservationState{}, err
	}
	sess.engine.SetTermsAccepted(accepted)
	s.scheduleSave(sess)
	return sess.engine.State(), nil
}

// Reset discards the engine state and clears the persisted snapshot. The
// clear is best-effort: a failure leaves stale data that the next save
// overwrites.
func (s *DefaultReservationService) Reset(ctx context.Context, experienceID, deviceID string) (models.ReservationState, error) {
	sess, err := s.session(ctx, experienceID, deviceID)
	if err != nil {
		return models.ReservationState{}, err
	}
	sess.engine.Reset()
	if err := s.Store.Clear(ctx, experienceID, deviceID); err != nil {
		s.Logger.Warn("failed to clear persisted reservation",
			zap.String("experienceId", experienceID),
			zap.String("deviceId", deviceID),
			zap.Error(err))
	}
	return sess.engine.State(), nil
}

func (s *DefaultReservationService) IsComplete(ctx context.Context, experienceID, deviceID string) (bool, error) {
	sess, err := s.session(ctx, experienceID, deviceID)
	if err != nil {
		return false, err
	}
	return sess.engine.IsComplete(), nil
}

// Close stops all saver goroutines. Pending writes may be dropped; no
// correctness depends on them finishing.
func (s *DefaultReservationService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, sess := range s.sessions {
		close(sess.done)
		delete(s.sessions, key)
	}
}
