package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hexspeak/wetsand/internal/hook"
)

// NewHookdumpCommand creates the hookdump command.
//
// The debugger-trap hook's source text is deliberately inspectable - the
// intactness check only makes sense against an artifact the analyst can
// see. This prints the live registration of a fresh process.
func NewHookdumpCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "hookdump",
		Short: "Print the live debugger-trap hook source",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), hook.NewRegistry().Source())
		},
	}
}
