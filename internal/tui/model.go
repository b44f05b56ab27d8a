package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/shoplist/internal/store"
	"github.com/idilsaglam/shoplist/internal/ui"
)

const (
	fieldName = iota
	fieldQuantity
)

// Model is the shopping list screen. All list and dialog state lives in the
// store; Model only keeps what the widgets need to draw it.
type Model struct {
	store *store.Store
	feed  *changeFeed
	unsub func()
	keys  keyMap

	list list.Model

	// Shared by the add dialog and the edit form.
	name, qty textinput.Model
	focus     int
	editKey   store.Key
	hint      string

	width, height int
}

// New builds the screen for s and subscribes it to store changes.
func New(s *store.Store) Model {
	keys := defaultKeyMap()

	l := list.New(rows(s.Snapshot()), rowDelegate{}, 0, 0)
	l.Title = ui.Summary(s.Items())
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Help
	l.Styles.PaginationStyle = ui.Current().Help
	l.SetStatusBarItemName("item", "items")
	l.AdditionalShortHelpKeys = keys.listKeys
	l.AdditionalFullHelpKeys = keys.listKeys

	name := textinput.New()
	name.Prompt = "Name     > "
	name.Placeholder = "Eggs"
	name.CharLimit = 200

	qty := textinput.New()
	qty.Prompt = "Quantity > "
	qty.Placeholder = "1"
	qty.CharLimit = 9

	feed := newChangeFeed()
	m := Model{
		store:  s,
		feed:   feed,
		unsub:  s.Subscribe(feed.push),
		keys:   keys,
		list:   l,
		name:   name,
		qty:    qty,
		width:  80,
		height: 24,
	}
	m.resize()
	return m
}

// Close drops the store subscription.
func (m Model) Close() {
	if m.unsub != nil {
		m.unsub()
	}
}

func (m Model) Init() tea.Cmd { return m.feed.wait() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case snapshotMsg:
		cmd := m.sync(store.Snapshot(msg))
		return m, tea.Batch(cmd, m.feed.wait())
	case tea.KeyMsg:
		switch {
		case m.store.AddDialogOpen():
			return m.updateDialog(msg)
		case m.editing():
			return m.updateEditForm(msg)
		}
		return m.updateBrowse(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Add):
		m.store.OpenAddDialog()
		return m, m.startForm("", "")
	case key.Matches(msg, m.keys.Edit):
		r, ok := m.selected()
		if !ok {
			return m, nil
		}
		if !m.store.BeginEditKey(r.key) {
			return m, nil
		}
		m.editKey = r.key
		return m, m.startForm(r.item.Name, strconv.Itoa(r.item.Quantity))
	case key.Matches(msg, m.keys.Delete):
		if r, ok := m.selected(); ok {
			m.store.DeleteKey(r.key)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		if !m.store.ConfirmAdd() {
			m.hint = "Name cannot be empty"
			return m, nil
		}
		m.stopForm()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.store.CloseAddDialog()
		m.stopForm()
		return m, nil
	case key.Matches(msg, m.keys.Next):
		return m, m.toggleFocus()
	}

	m.hint = ""
	cmd := m.updateInputs(msg)
	if v := m.name.Value(); v != m.store.DraftName() {
		m.store.UpdateDraftName(v)
	}
	if v := m.qty.Value(); v != m.store.DraftQuantity() {
		m.store.UpdateDraftQuantity(v)
	}
	return m, cmd
}

func (m Model) updateEditForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.store.CompleteEditKey(m.editKey, m.name.Value(), m.qty.Value())
		m.stopForm()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		// saving the current values leaves the item as it was
		if it, ok := m.store.ItemByKey(m.editKey); ok {
			m.store.CompleteEditKey(m.editKey, it.Name, strconv.Itoa(it.Quantity))
		} else {
			m.store.CompleteEditKey(m.editKey, "", "")
		}
		m.stopForm()
		return m, nil
	case key.Matches(msg, m.keys.Next):
		return m, m.toggleFocus()
	}
	return m, m.updateInputs(msg)
}

// editing also covers an edit started outside this model.
func (m *Model) editing() bool {
	k, it, ok := m.store.EditingEntry()
	if ok && k != m.editKey {
		m.editKey = k
		m.name.SetValue(it.Name)
		m.qty.SetValue(strconv.Itoa(it.Quantity))
		m.focusField(fieldName)
	}
	return ok
}

func (m *Model) selected() (row, bool) {
	r, ok := m.list.SelectedItem().(row)
	return r, ok
}

func (m *Model) startForm(name, qty string) tea.Cmd {
	m.hint = ""
	m.name.SetValue(name)
	m.name.CursorEnd()
	m.qty.SetValue(qty)
	m.qty.CursorEnd()
	m.resize()
	return m.focusField(fieldName)
}

func (m *Model) stopForm() {
	m.hint = ""
	m.editKey = 0
	m.name.Blur()
	m.qty.Blur()
	m.name.SetValue("")
	m.qty.SetValue("")
	m.resize()
}

func (m *Model) focusField(f int) tea.Cmd {
	m.focus = f
	if f == fieldQuantity {
		m.name.Blur()
		return m.qty.Focus()
	}
	m.qty.Blur()
	return m.name.Focus()
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == fieldName {
		return m.focusField(fieldQuantity)
	}
	return m.focusField(fieldName)
}

func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.focus == fieldQuantity {
		m.qty, cmd = m.qty.Update(msg)
	} else {
		m.name, cmd = m.name.Update(msg)
	}
	return cmd
}

func (m *Model) sync(snap store.Snapshot) tea.Cmd {
	m.list.Title = ui.Summary(snap.Items)
	cmd := m.list.SetItems(rows(snap))
	m.resize()
	return cmd
}

func (m *Model) formOpen() bool {
	if m.store.AddDialogOpen() {
		return true
	}
	_, ok := m.store.Editing()
	return ok
}

func (m *Model) resize() {
	h := m.height - 2
	if m.formOpen() {
		h -= 6
	}
	if h < 3 {
		h = 3
	}
	m.list.SetSize(m.width-4, h)
}

func (m Model) View() string {
	content := m.list.View()
	if m.formOpen() {
		t := ui.Current()
		title := "Add an item to the list"
		if !m.store.AddDialogOpen() {
			title = "Edit item"
		}
		if m.hint != "" {
			title += "  " + t.Error.Render(m.hint)
		}
		help := make([]string, 0, 3)
		for _, b := range m.keys.formHelp() {
			help = append(help, b.Help().Key+" "+b.Help().Desc)
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			t.Title.Render(title),
			m.name.View(),
			m.qty.View(),
			t.Help.Render(strings.Join(help, " • ")),
		)
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
		content += "\n" + bar.Render(body)
	}
	return ui.PanelString([]string{content})
}
