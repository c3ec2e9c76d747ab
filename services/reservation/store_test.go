package reservation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"andeanscapes/models"
)

func TestStorageKeyIsNamespacedAndVersioned(t *testing.T) {
	key := StorageKey("emeraldMining", "device-1")
	require.Equal(t, "andeanscapes:emeraldMining:device-1:reservation:v1", key)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	people := 4
	terms := true
	snap := models.ReservationSnapshot{
		SelectedDateID:    "apr-20-2026",
		SelectedDateLabel: "20–21 de abril, 2026",
		PeopleCount:       &people,
		RoomMode:          models.RoomModeCouple,
		TransportMode:     models.TransportBus,
		Contact:           &models.ReservationContact{Name: "Ana", Phone: "3001234567", Email: "ana@example.com"},
		TermsAccepted:     &terms,
	}
	require.NoError(t, store.Save(ctx, "emeraldMining", "dev", snap))

	loaded, err := store.Load(ctx, "emeraldMining", "dev")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Equal(t, snap.SelectedDateID, loaded.SelectedDateID)
	require.Equal(t, *snap.PeopleCount, *loaded.PeopleCount)
	require.Equal(t, snap.RoomMode, loaded.RoomMode)
	require.Equal(t, snap.TransportMode, loaded.TransportMode)
	require.Equal(t, *snap.Contact, *loaded.Contact)
	require.True(t, *loaded.TermsAccepted)
}

func TestLoadMissingReturnsNoData(t *testing.T) {
	store := NewMemoryStore()
	loaded, err := store.Load(context.Background(), "emeraldMining", "nobody")
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestLoadCorruptDataIsNoData(t *testing.T) {
	store := NewMemoryStore()
	store.Put("emeraldMining", "dev", []byte("{not json"))

	loaded, err := store.Load(context.Background(), "emeraldMining", "dev")
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestStoresAreKeyedPerExperienceAndDevice(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	people := 3
	require.NoError(t, store.Save(ctx, "emeraldMining", "dev-a", models.ReservationSnapshot{PeopleCount: &people}))

	loaded, err := store.Load(ctx, "pottery", "dev-a")
	require.NoError(t, err)
	require.Nil(t, loaded)

	loaded, err = store.Load(ctx, "emeraldMining", "dev-b")
	require.NoError(t, err)
	require.Nil(t, loaded)

	require.NoError(t, store.Clear(ctx, "emeraldMining", "dev-a"))
	loaded, err = store.Load(ctx, "emeraldMining", "dev-a")
	require.NoError(t, err)
	require.Nil(t, loaded)
}
