package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/shoplist/internal/ui"
)

// Options mirror the persistent flags. Empty values fall back to config.
type Options struct {
	Theme    string
	IDScheme string
	LogLevel string
	LogFile  string
}

// usageError marks bad input; it maps to exit code 2.
type usageError struct{ error }

func usage(err error) error {
	if err == nil {
		return nil
	}
	return usageError{err}
}

func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return usage(check(cmd, args))
	}
}

// Execute runs the command line and returns an exit code (0 ok, 1 error, 2 usage).
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

func Run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return 0
	}
	ui.Failure(stderr, err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, root.UsageString())
		return 2
	}
	return 1
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opt Options

	root := &cobra.Command{
		Use:   "shoplist",
		Short: "shoplist - a one-screen shopping list",
		Long: `shoplist keeps a shopping list for the length of one session.

Keys in the list: a add, e edit, d delete, q quit.
In the add dialog and the edit form: tab switches field, enter saves, esc cancels.`,
		Example: `  shoplist
  shoplist script groceries.yaml
  shoplist script --json - < groceries.yaml`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opt)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error { return usage(err) })

	pf := root.PersistentFlags()
	pf.StringVar(&opt.Theme, "theme", "", "color theme: classic, neon or mono (env SHOPLIST_THEME)")
	pf.StringVar(&opt.IDScheme, "id-scheme", "", "item id scheme: sequence or count (env SHOPLIST_ID_SCHEME)")
	pf.StringVar(&opt.LogLevel, "log-level", "", "log level (env SHOPLIST_LOG_LEVEL)")
	pf.StringVar(&opt.LogFile, "log-file", "", "append logs to this file (env SHOPLIST_LOG_FILE)")

	root.AddCommand(
		&cobra.Command{
			Use:   "run",
			Short: "Open the interactive list (default)",
			Args:  usageArgs(cobra.NoArgs),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runTUI(cmd, opt)
			},
		},
		newScriptCmd(&opt),
	)
	return root
}
