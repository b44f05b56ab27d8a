package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/shoplist/internal/store"
)

type snapshotMsg store.Snapshot

// changeFeed carries store snapshots into the Bubble Tea loop. It holds at
// most one pending snapshot; a newer one replaces it.
type changeFeed struct {
	ch chan store.Snapshot
}

func newChangeFeed() *changeFeed {
	return &changeFeed{ch: make(chan store.Snapshot, 1)}
}

// push must only be called from one goroutine (the store owner).
func (f *changeFeed) push(snap store.Snapshot) {
	select {
	case <-f.ch:
	default:
	}
	f.ch <- snap
}

func (f *changeFeed) wait() tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(<-f.ch)
	}
}
