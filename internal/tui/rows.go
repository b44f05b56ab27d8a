package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/store"
	"github.com/idilsaglam/shoplist/internal/ui"
)

// row adapts model.Item to bubbles/list.Item
type row struct {
	key  store.Key
	item model.Item
}

func (r row) FilterValue() string { return r.item.Name }

func rows(snap store.Snapshot) []list.Item {
	out := make([]list.Item, 0, len(snap.Items))
	for i, it := range snap.Items {
		out = append(out, row{key: snap.Keys[i], item: it})
	}
	return out
}

// single-line rows
type rowDelegate struct{}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(row)
	if !ok {
		return
	}
	t := ui.Current()
	line := ui.ItemLine(r.item)
	if r.item.Editing {
		line = t.Editing.Render(line + "  (editing)")
	}
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprint(w, prefix+line)
}
