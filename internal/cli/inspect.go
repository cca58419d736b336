package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hexspeak/wetsand/internal/machine"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [digits]",
		Short: "Report the observable binding after a digit sequence",
		Long: `Report which handler the Indirection Point ends up bound to after the
given presses. With no argument it reports the armed but untouched
binding. Output is one line per fact, machine readable.

Watching how the binding moves under candidate digits is the designed
weakness of the gate:

  wetsand inspect      -> binding: idle
  wetsand inspect 1    -> binding: s2
  wetsand inspect 2    -> binding: idle`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			digits := ""
			if len(args) == 1 {
				digits = args[0]
			}
			return runInspect(digits, cmd)
		},
	}
}

func runInspect(digits string, cmd *cobra.Command) error {
	for _, r := range digits {
		if r < '0' || r > '9' {
			return fmt.Errorf("inspect expects only digits 0-9, got %q", r)
		}
	}

	// Presses are fed silently; notifications and sink output are the
	// concern of play and feed, not of a binding report.
	ch := newChallenge(io.Discard, machine.NotifierFunc(func(string) {}))

	ctx := cmd.Context()
	for _, r := range digits {
		ch.console.Log(ctx, int(r-'0'))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "binding: %s\n", ch.m.Current())
	fmt.Fprintf(out, "hook: %s\n", ch.hooks.Source())
	return nil
}
