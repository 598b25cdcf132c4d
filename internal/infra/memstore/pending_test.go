//go:build unit

package memstore_test

import (
	"testing"
	"time"

	"payconnect/internal/domain/order"
	"payconnect/internal/infra/memstore"
	"payconnect/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*memstore.PendingStore, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return memstore.NewPendingStore(15*time.Minute, clk), clk
}

func TestPendingStorePutGetDelete(t *testing.T) {
	store, _ := newStore(t)

	tx := order.PendingTransaction{
		Payer:     "233531300654",
		Amount:    "10.00",
		DataPlan:  "5GB (Express)",
		Recipient: "0241234567",
		Email:     "buyer@example.com",
		State:     order.StateOTPPending,
	}
	store.Put("T100000000000001", tx)

	got, ok := store.Get("T100000000000001")
	require.True(t, ok)
	assert.Equal(t, "T100000000000001", got.Ref)
	assert.Equal(t, "5GB (Express)", got.DataPlan)
	assert.False(t, got.CreatedAt.IsZero())

	store.Delete("T100000000000001")
	_, ok = store.Get("T100000000000001")
	assert.False(t, ok)
}

func TestPendingStoreMergeSessionID(t *testing.T) {
	store, _ := newStore(t)

	store.Put("T1", order.PendingTransaction{Payer: "233531300654"})
	store.MergeSessionID("T1", "sess-42")

	got, ok := store.Get("T1")
	require.True(t, ok)
	assert.Equal(t, "sess-42", got.SessionID)

	// merging into an absent ref must not create an entry
	store.MergeSessionID("T2", "sess-43")
	_, ok = store.Get("T2")
	assert.False(t, ok)
}

func TestPendingStoreTTL(t *testing.T) {
	store, clk := newStore(t)

	store.Put("T1", order.PendingTransaction{Payer: "233531300654"})

	clk.Add(14 * time.Minute)
	_, ok := store.Get("T1")
	assert.True(t, ok, "entry must survive inside the TTL")

	clk.Add(2 * time.Minute)
	_, ok = store.Get("T1")
	assert.False(t, ok, "entry must expire after the TTL")
}

func TestPendingStoreSweepExpired(t *testing.T) {
	store, clk := newStore(t)

	store.Put("T1", order.PendingTransaction{})
	store.Put("T2", order.PendingTransaction{})
	clk.Add(16 * time.Minute)
	store.Put("T3", order.PendingTransaction{})

	dropped := store.SweepExpired()
	assert.Equal(t, 2, dropped)
	assert.Equal(t, 1, store.Len())
}

// A fresh store stands in for a restarted process: metadata recorded
// before the restart is simply gone and lookups come back empty.
func TestPendingStoreLostOnRestart(t *testing.T) {
	store, clk := newStore(t)
	store.Put("T1", order.PendingTransaction{DataPlan: "5GB"})

	restarted := memstore.NewPendingStore(15*time.Minute, clk)
	_, ok := restarted.Get("T1")
	assert.False(t, ok)
}
