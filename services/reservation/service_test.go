package reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"andeanscapes/models"
)

type fakeExperienceSource struct{}

func (fakeExperienceSource) GetExperienceData(_ context.Context, experienceID string) (*models.ExperienceData, error) {
	if experienceID != "emeraldMining" {
		return nil, errors.New("experience not found: " + experienceID)
	}
	cfg, roomModes := testConfig()
	return &models.ExperienceData{Config: cfg, RoomModes: roomModes}, nil
}

type failingStore struct{}

func (failingStore) Save(context.Context, string, string, models.ReservationSnapshot) error {
	return errors.New("redis gone")
}

func (failingStore) Load(context.Context, string, string) (*models.ReservationSnapshot, error) {
	return nil, errors.New("redis gone")
}

func (failingStore) Clear(context.Context, string, string) error {
	return errors.New("redis gone")
}

func newTestService(store Store) *DefaultReservationService {
	return NewDefaultReservationService(fakeExperienceSource{}, store, zap.NewNop())
}

func TestServicePersistsAndRestores(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	svc := newTestService(store)
	_, err := svc.SetDate(ctx, "emeraldMining", "dev-1", "apr-06-2026", "6–7 de abril, 2026", 4)
	require.NoError(t, err)
	_, err = svc.SetPeopleCount(ctx, "emeraldMining", "dev-1", 3)
	require.NoError(t, err)
	_, err = svc.SetRoomMode(ctx, "emeraldMining", "dev-1", models.RoomModeCouple)
	require.NoError(t, err)
	_, err = svc.SetTransportMode(ctx, "emeraldMining", "dev-1", models.TransportHave4x4)
	require.NoError(t, err)
	_, err = svc.SetContactField(ctx, "emeraldMining", "dev-1", "name", "Camila")
	require.NoError(t, err)
	_, err = svc.SetContactField(ctx, "emeraldMining", "dev-1", "phone", "+57 300 123 4567")
	require.NoError(t, err)
	_, err = svc.SetTermsAccepted(ctx, "emeraldMining", "dev-1", true)
	require.NoError(t, err)

	// Saves are fire-and-forget; wait for the last snapshot to land.
	require.Eventually(t, func() bool {
		snap, err := store.Load(ctx, "emeraldMining", "dev-1")
		return err == nil && snap != nil && snap.TermsAccepted != nil && *snap.TermsAccepted
	}, 2*time.Second, 10*time.Millisecond)
	svc.Close()

	// A fresh service (as after a process restart) restores the inputs and
	// recomputes pricing for them.
	svc2 := newTestService(store)
	defer svc2.Close()
	st, err := svc2.GetState(ctx, "emeraldMining", "dev-1")
	require.NoError(t, err)

	require.Equal(t, "apr-06-2026", st.SelectedDateID)
	require.Equal(t, 3, st.PeopleCount)
	require.Equal(t, models.RoomModeCouple, st.RoomMode)
	require.Equal(t, models.TransportHave4x4, st.TransportMode)
	require.Equal(t, "Camila", st.Contact.Name)
	require.True(t, st.TermsAccepted)
	require.True(t, st.IsHydrated)
	// Couple mode: 430000 * 2 * 1.2.
	require.Equal(t, float64(1032000), st.Pricing.Total)
	require.Equal(t, int64(154800), st.Pricing.DepositAmount)
}

func TestServiceNeverTrustsPersistedPricing(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	people := 2
	require.NoError(t, store.Save(ctx, "emeraldMining", "dev-1", models.ReservationSnapshot{
		PeopleCount: &people,
		RoomMode:    models.RoomModePrivate,
		Pricing:     &models.ReservationPricing{Total: 1, DepositAmount: 1},
	}))

	svc := newTestService(store)
	defer svc.Close()
	st, err := svc.GetState(ctx, "emeraldMining", "dev-1")
	require.NoError(t, err)
	require.Equal(t, float64(860000), st.Pricing.Total)
	require.Equal(t, int64(129000), st.Pricing.DepositAmount)
}

func TestServiceResetClearsStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	svc := newTestService(store)
	defer svc.Close()
	_, err := svc.SetPeopleCount(ctx, "emeraldMining", "dev-1", 9)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		snap, err := store.Load(ctx, "emeraldMining", "dev-1")
		return err == nil && snap != nil
	}, 2*time.Second, 10*time.Millisecond)

	st, err := svc.Reset(ctx, "emeraldMining", "dev-1")
	require.NoError(t, err)
	require.Equal(t, 2, st.PeopleCount)

	snap, err := store.Load(ctx, "emeraldMining", "dev-1")
	require.NoError(t, err)
	require.Nil(t, snap)
}

func TestServiceLoadFailureFallsBackToDefaults(t *testing.T) {
	svc := newTestService(failingStore{})
	defer svc.Close()

	st, err := svc.GetState(context.Background(), "emeraldMining", "dev-1")
	require.NoError(t, err)
	require.True(t, st.IsHydrated)
	require.Equal(t, 2, st.PeopleCount)
}

func TestServiceUnknownExperience(t *testing.T) {
	svc := newTestService(NewMemoryStore())
	defer svc.Close()

	_, err := svc.GetState(context.Background(), "pottery", "dev-1")
	require.Error(t, err)
}
