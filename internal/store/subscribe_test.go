package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribersSeeEveryMutation(t *testing.T) {
	var got []Snapshot
	s := New(WithSubscriber(func(snap Snapshot) { got = append(got, snap) }))

	s.OpenAddDialog()
	s.UpdateDraftName("Eggs")
	s.UpdateDraftQuantity("12")
	s.ConfirmAdd()
	s.BeginEdit(1)
	s.CompleteEdit(1, "Milk", "3")
	s.DeleteItem(1)
	s.CloseAddDialog()

	require.Len(t, got, 8)
	assert.True(t, got[0].AddDialogOpen)
	assert.Equal(t, "Eggs", got[1].DraftName)
	require.Len(t, got[3].Items, 1)
	assert.False(t, got[3].AddDialogOpen)
	assert.True(t, got[4].Items[0].Editing)
	assert.Equal(t, "Milk", got[5].Items[0].Name)
	assert.Empty(t, got[6].Items)
}

func TestNoOpCallsStillNotify(t *testing.T) {
	calls := 0
	s := New()
	s.Subscribe(func(Snapshot) { calls++ })

	s.ConfirmAdd()
	s.BeginEdit(3)
	s.CompleteEdit(3, "x", "1")
	s.DeleteItem(3)
	assert.Equal(t, 4, calls)
}

func TestUnsubscribe(t *testing.T) {
	var a, b int
	s := New()
	unsubA := s.Subscribe(func(Snapshot) { a++ })
	s.Subscribe(func(Snapshot) { b++ })

	s.OpenAddDialog()
	unsubA()
	unsubA()
	s.CloseAddDialog()

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}

func TestUnsubscribeDuringNotify(t *testing.T) {
	var unsub func()
	calls, other := 0, 0
	s := New()
	unsub = s.Subscribe(func(Snapshot) {
		calls++
		unsub()
	})
	s.Subscribe(func(Snapshot) { other++ })

	s.OpenAddDialog()
	s.OpenAddDialog()
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, other)
}

func TestSnapshotIsDetached(t *testing.T) {
	var snap Snapshot
	s := New(WithSubscriber(func(got Snapshot) { snap = got }))
	require.True(t, add(t, s, "Eggs", "2"))
	held := snap

	s.BeginEdit(1)
	s.CompleteEdit(1, "Milk", "9")
	assert.Equal(t, "Eggs", held.Items[0].Name)
}

func TestSnapshotKeysAlignWithItems(t *testing.T) {
	s := New()
	require.True(t, add(t, s, "a", ""))
	require.True(t, add(t, s, "b", ""))
	require.True(t, s.DeleteItem(1))

	snap := s.Snapshot()
	require.Len(t, snap.Keys, len(snap.Items))
	it, ok := s.ItemByKey(snap.Keys[0])
	require.True(t, ok)
	assert.Equal(t, snap.Items[0], it)
}
