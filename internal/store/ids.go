package store

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/shoplist/internal/model"
)

// IDScheme selects how new item ids are assigned.
type IDScheme string

const (
	// SequenceScheme hands out 1, 2, 3, ... and never reuses an id.
	SequenceScheme IDScheme = "sequence"
	// CountScheme assigns len(items)+1. After a delete this can repeat an id
	// that is still in the list.
	CountScheme IDScheme = "count"
)

// ParseIDScheme maps a config or flag value to an IDScheme.
func ParseIDScheme(v string) (IDScheme, error) {
	switch IDScheme(strings.ToLower(strings.TrimSpace(v))) {
	case "", SequenceScheme:
		return SequenceScheme, nil
	case CountScheme:
		return CountScheme, nil
	}
	return "", fmt.Errorf("unknown id scheme %q (want %s or %s)", v, SequenceScheme, CountScheme)
}

type idAllocator interface {
	next(count int) model.ItemID
}

type sequenceIDs struct{ last model.ItemID }

func (a *sequenceIDs) next(int) model.ItemID {
	a.last++
	return a.last
}

type countIDs struct{}

func (countIDs) next(count int) model.ItemID { return model.ItemID(count + 1) }

// Option configures a Store at construction.
type Option func(*Store)

// WithIDScheme picks the id allocation scheme.
func WithIDScheme(scheme IDScheme) Option {
	return func(s *Store) {
		if scheme == CountScheme {
			s.ids = countIDs{}
			return
		}
		s.ids = &sequenceIDs{}
	}
}

// WithSubscriber registers fn before the store is handed out.
func WithSubscriber(fn func(Snapshot)) Option {
	return func(s *Store) { s.Subscribe(fn) }
}
