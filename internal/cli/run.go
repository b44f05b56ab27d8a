package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/shoplist/internal/tui"
)

func runTUI(cmd *cobra.Command, opt Options) error {
	sess, err := newSession(cmd.Context(), opt)
	if err != nil {
		return err
	}
	defer sess.Close()

	m := tui.New(sess.store)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(sess.ctx))
	final, err := p.Run()
	if fm, ok := final.(tui.Model); ok {
		fm.Close()
	}
	if err != nil {
		sess.log.Error(sess.ctx, "tui exited", err)
		return fmt.Errorf("tui: %w", err)
	}
	sess.log.Info(sess.ctx, fmt.Sprintf("tui closed with %d items", sess.store.Len()))
	return nil
}
