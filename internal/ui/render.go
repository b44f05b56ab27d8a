package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/shoplist/internal/model"
)

func Status(w io.Writer, msg string) {
	t := Current()
	fmt.Fprintln(w, t.Success.Render(t.SymOK+" "+msg))
}

func Failure(w io.Writer, msg string) {
	t := Current()
	fmt.Fprintln(w, t.Error.Render(t.SymErr+" "+msg))
}

// ItemLine renders one row: "• Eggs ×12".
func ItemLine(it model.Item) string {
	t := Current()
	return fmt.Sprintf("%s %s %s", t.Muted.Render(t.Bullet), it.Name, t.Accent.Render(fmt.Sprintf("%s%d", t.Times, it.Quantity)))
}

// Summary is the header line: item count and total units.
func Summary(items []model.Item) string {
	t := Current()
	units := 0
	for _, it := range items {
		units += it.Quantity
	}
	return fmt.Sprintf("%s   %s %d  %s %d",
		t.Title.Render("Shopping list"),
		t.Accent.Render("Items"), len(items),
		t.Accent.Render("Units"), units,
	)
}

// ListLines renders header and rows, ready for Panel.
func ListLines(items []model.Item) []string {
	lines := []string{Summary(items), ""}
	if len(items) == 0 {
		return append(lines, Current().Muted.Render("no items"))
	}
	for _, it := range items {
		lines = append(lines, ItemLine(it))
	}
	return lines
}

// PanelString draws a framed box using the current theme.
func PanelString(lines []string) string {
	return lipgloss.NewStyle().
		Border(Current().Border).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

func Panel(w io.Writer, lines []string) {
	fmt.Fprintln(w, PanelString(lines))
}
