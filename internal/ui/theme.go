package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box border.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error lipgloss.Style
	Selected, Editing, Help              lipgloss.Style

	Border lipgloss.Border
	Bullet string
	Times  string
	SymOK  string
	SymErr string
}

var current = classic()

func classic() Theme {
	return Theme{
		Name:     "classic",
		Title:    lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Faint(true),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		Editing:  lipgloss.NewStyle().Background(lipgloss.Color("250")).Foreground(lipgloss.Color("0")),
		Help:     lipgloss.NewStyle().Faint(true),
		Border:   lipgloss.NormalBorder(),
		Bullet:   "•",
		Times:    "×",
		SymOK:    "✔",
		SymErr:   "✖",
	}
}

// SetTheme switches the current theme. Unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		t := classic()
		t.Name = "neon"
		t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
		t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		t.Editing = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		t.Border = lipgloss.RoundedBorder()
		t.Bullet = "◆"
		current = t
	case "mono":
		plain := lipgloss.NewStyle()
		current = Theme{
			Name: "mono",
			Title: plain, Muted: plain, Accent: plain, Success: plain, Error: plain,
			Selected: plain, Editing: plain, Help: plain,
			Border: lipgloss.ASCIIBorder(),
			Bullet: "-", Times: "x", SymOK: "ok", SymErr: "error:",
		}
	default:
		current = classic()
	}
}

// Expose what renderers need
func Current() Theme { return current }
