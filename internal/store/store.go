// Package store holds the in-memory state of one shopping list session.
//
// A Store is owned by a single presentation context and is not safe for
// concurrent use. Its exported operations are the only way to change the
// list or the add-dialog drafts; every call notifies subscribers with the
// resulting Snapshot.
package store

import (
	"github.com/idilsaglam/shoplist/internal/model"
)

// Key identifies one entry for the life of the store. Unlike model.ItemID it
// is never shared between entries, whatever id scheme is in use.
type Key uint64

// Snapshot is a copy of the store state, safe to keep after further mutations.
// Keys[i] belongs to Items[i].
type Snapshot struct {
	Items         []model.Item `json:"items"`
	Keys          []Key        `json:"-"`
	AddDialogOpen bool         `json:"add_dialog_open"`
	DraftName     string       `json:"draft_name"`
	DraftQuantity string       `json:"draft_quantity"`
}

// Store holds the ordered item list and the add-dialog drafts.
type Store struct {
	items         []model.Item
	keys          []Key
	lastKey       Key
	addDialogOpen bool
	draftName     string
	draftQuantity string

	ids  idAllocator
	subs []*subscription
}

// New returns an empty store. Ids come from a monotonic sequence unless an
// Option says otherwise.
func New(opts ...Option) *Store {
	s := &Store{ids: &sequenceIDs{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Items returns the current list in display order.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Keys returns the entry keys in display order.
func (s *Store) Keys() []Key {
	out := make([]Key, len(s.keys))
	copy(out, s.keys)
	return out
}

func (s *Store) Len() int { return len(s.items) }

func (s *Store) AddDialogOpen() bool   { return s.addDialogOpen }
func (s *Store) DraftName() string     { return s.draftName }
func (s *Store) DraftQuantity() string { return s.draftQuantity }

// Editing returns the item currently in edit mode, if any.
func (s *Store) Editing() (model.Item, bool) {
	_, it, ok := s.EditingEntry()
	return it, ok
}

// EditingEntry is Editing plus the entry key.
func (s *Store) EditingEntry() (Key, model.Item, bool) {
	for i, it := range s.items {
		if it.Editing {
			return s.keys[i], it, true
		}
	}
	return 0, model.Item{}, false
}

// Item looks up the first item with the given id.
func (s *Store) Item(id model.ItemID) (model.Item, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	return model.Item{}, false
}

// ItemByKey looks up an entry by key.
func (s *Store) ItemByKey(k Key) (model.Item, bool) {
	if i := s.indexOfKey(k); i >= 0 {
		return s.items[i], true
	}
	return model.Item{}, false
}

func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Items:         s.Items(),
		Keys:          s.Keys(),
		AddDialogOpen: s.addDialogOpen,
		DraftName:     s.draftName,
		DraftQuantity: s.draftQuantity,
	}
}

// OpenAddDialog opens the add dialog with empty drafts.
func (s *Store) OpenAddDialog() {
	s.addDialogOpen = true
	s.draftName = ""
	s.draftQuantity = ""
	s.notify()
}

// CloseAddDialog closes the add dialog. Drafts are left as they are.
func (s *Store) CloseAddDialog() {
	s.addDialogOpen = false
	s.notify()
}

func (s *Store) UpdateDraftName(text string) {
	s.draftName = text
	s.notify()
}

func (s *Store) UpdateDraftQuantity(text string) {
	s.draftQuantity = text
	s.notify()
}

// ConfirmAdd appends a new item built from the drafts and closes the dialog.
// A blank draft name rejects the add: nothing changes and false is returned.
func (s *Store) ConfirmAdd() bool {
	defer s.notify()

	if model.IsBlank(s.draftName) {
		return false
	}
	s.lastKey++
	s.keys = append(s.keys, s.lastKey)
	s.items = append(s.items, model.Item{
		ID:       s.ids.next(len(s.items)),
		Name:     s.draftName,
		Quantity: model.ParseQuantity(s.draftQuantity),
	})
	s.addDialogOpen = false
	return true
}

// BeginEdit puts the first item with the given id in edit mode and takes
// every other item out of it. Unknown ids leave the list untouched.
func (s *Store) BeginEdit(id model.ItemID) bool {
	defer s.notify()
	return s.beginEditAt(s.indexOf(id))
}

// BeginEditKey is BeginEdit for one specific entry.
func (s *Store) BeginEditKey(k Key) bool {
	defer s.notify()
	return s.beginEditAt(s.indexOfKey(k))
}

// CompleteEdit leaves edit mode on every item, then stores the new name and
// quantity on the first item with the given id. It returns false when the id
// is gone, in which case only the edit mode is cleared.
func (s *Store) CompleteEdit(id model.ItemID, name, quantityText string) bool {
	defer s.notify()
	s.clearEditing()
	return s.updateAt(s.indexOf(id), name, quantityText)
}

// CompleteEditKey is CompleteEdit for one specific entry.
func (s *Store) CompleteEditKey(k Key, name, quantityText string) bool {
	defer s.notify()
	s.clearEditing()
	return s.updateAt(s.indexOfKey(k), name, quantityText)
}

// DeleteItem removes the first item with the given id.
func (s *Store) DeleteItem(id model.ItemID) bool {
	defer s.notify()
	return s.deleteAt(s.indexOf(id))
}

// DeleteKey removes one specific entry.
func (s *Store) DeleteKey(k Key) bool {
	defer s.notify()
	return s.deleteAt(s.indexOfKey(k))
}

func (s *Store) beginEditAt(idx int) bool {
	if idx < 0 {
		return false
	}
	for i := range s.items {
		s.items[i].Editing = i == idx
	}
	return true
}

func (s *Store) clearEditing() {
	for i := range s.items {
		s.items[i].Editing = false
	}
}

func (s *Store) updateAt(i int, name, quantityText string) bool {
	if i < 0 {
		return false
	}
	s.items[i].Name = name
	s.items[i].Quantity = model.ParseQuantity(quantityText)
	return true
}

func (s *Store) deleteAt(i int) bool {
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	s.keys = append(s.keys[:i:i], s.keys[i+1:]...)
	return true
}

func (s *Store) indexOf(id model.ItemID) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) indexOfKey(k Key) int {
	for i, cur := range s.keys {
		if cur == k {
			return i
		}
	}
	return -1
}
