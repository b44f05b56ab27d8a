package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/shoplist/internal/export"
	"github.com/idilsaglam/shoplist/internal/script"
	"github.com/idilsaglam/shoplist/internal/store"
	"github.com/idilsaglam/shoplist/internal/ui"
)

type scriptFlags struct {
	json  bool
	out   string
	trace bool
}

func newScriptCmd(opt *Options) *cobra.Command {
	var f scriptFlags
	cmd := &cobra.Command{
		Use:   "script FILE",
		Short: "Apply a YAML list of steps to a fresh list and print it",
		Long: `Runs the steps in FILE (or stdin when FILE is "-") against an empty list.

Each step names one operation: open, close, name, quantity, confirm, edit,
save or delete. Example:

  steps:
    - {op: open}
    - {op: name, text: Eggs}
    - {op: quantity, text: "12"}
    - {op: confirm}
    - {op: edit, id: 1}
    - {op: save, id: 1, name: Milk, quantity: "3"}
    - {op: delete, id: 1}`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd, *opt, f, args[0])
		},
	}
	cmd.Flags().BoolVar(&f.json, "json", false, "print the final state as JSON")
	cmd.Flags().StringVar(&f.out, "out", "", "also write the final state as JSON to this file")
	cmd.Flags().BoolVar(&f.trace, "trace", false, "print a line to stderr after every step")
	return cmd
}

func runScript(cmd *cobra.Command, opt Options, f scriptFlags, path string) error {
	sc, err := readScript(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	var extra []store.Option
	if f.trace {
		n := 0
		extra = append(extra, store.WithSubscriber(func(snap store.Snapshot) {
			n++
			dialog := "closed"
			if snap.AddDialogOpen {
				dialog = "open"
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "#%d items=%d dialog=%s draft=%q/%q\n",
				n, len(snap.Items), dialog, snap.DraftName, snap.DraftQuantity)
		}))
	}

	sess, err := newSession(cmd.Context(), opt, extra...)
	if err != nil {
		return err
	}
	defer sess.Close()

	res, err := script.Run(sess.ctx, sess.store, sc)
	if err != nil {
		sess.log.Error(sess.ctx, "script aborted", err)
		return err
	}
	sess.log.Info(sess.ctx, fmt.Sprintf("script applied %d of %d steps", res.Applied(), len(res.Outcomes)))
	if skipped := len(res.Outcomes) - res.Applied(); skipped > 0 {
		sess.log.Warn(sess.ctx, fmt.Sprintf("%d script steps had no effect", skipped))
	}

	snap := sess.store.Snapshot()
	if f.out != "" {
		if err := export.WriteFile(f.out, snap); err != nil {
			return err
		}
		ui.Status(cmd.ErrOrStderr(), "wrote "+f.out)
	}
	if f.json {
		return export.Write(cmd.OutOrStdout(), snap)
	}
	ui.Panel(cmd.OutOrStdout(), ui.ListLines(snap.Items))
	return nil
}

func readScript(stdin io.Reader, path string) (*script.Script, error) {
	r := stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open script: %w", err)
		}
		defer file.Close()
		r = file
	}
	sc, err := script.Parse(r)
	if err != nil {
		if errors.Is(err, script.ErrEmptyScript) {
			return nil, usage(err)
		}
		return nil, usage(fmt.Errorf("invalid script: %w", err))
	}
	return sc, nil
}
