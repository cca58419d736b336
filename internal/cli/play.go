package cli

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hexspeak/wetsand/internal/journal"
	"github.com/hexspeak/wetsand/internal/machine"
)

// PlayOptions holds flags for the play command.
type PlayOptions struct {
	*RootOptions
	Config  string
	Journal string
	Quiet   bool
}

// NewPlayCommand creates the play command.
func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Drive the gate interactively",
		Long: `Drive the gate from stdin, one digit per line.

There is no feedback on failure - the machine silently resets, exactly as
designed. Type q to quit.

Example:
  wetsand play
  wetsand play --journal ./presses.db --verbose`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Config, "config", "", "path to YAML play profile")
	cmd.Flags().StringVar(&opts.Journal, "journal", "", "path to SQLite press journal")
	cmd.Flags().BoolVar(&opts.Quiet, "quiet", false, "suppress prompts")

	return cmd
}

func runPlay(opts *PlayOptions, cmd *cobra.Command) error {
	if opts.Config != "" {
		profile, err := LoadProfile(opts.Config)
		if err != nil {
			return err
		}
		// Explicit flags beat profile values.
		if !cmd.Flags().Changed("journal") && profile.Journal != "" {
			opts.Journal = profile.Journal
		}
		if !cmd.Flags().Changed("quiet") {
			opts.Quiet = profile.Quiet
		}
	}

	out := cmd.OutOrStdout()
	ch := newChallenge(out, machine.NotifierFunc(func(message string) {
		fmt.Fprintln(out, message)
	}))

	var j *journal.Journal
	if opts.Journal != "" {
		var err error
		j, err = journal.Open(opts.Journal)
		if err != nil {
			return err
		}
		defer j.Close()
	}

	session := uuid.NewString()
	var seq int64

	if !opts.Quiet {
		fmt.Fprintln(out, "Digits 0-9, one per line. q quits.")
	}

	ctx := cmd.Context()
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "q" || line == "quit" {
			break
		}

		d, err := parseDigit(line)
		if err != nil {
			if !opts.Quiet {
				fmt.Fprintln(out, err)
			}
			continue
		}

		ch.console.Log(ctx, d)
		slog.Debug("binding after press", "binding", ch.m.Current())

		if j != nil {
			seq++
			if err := j.Record(ctx, journal.Press{
				Session: session,
				Seq:     seq,
				Digit:   d,
				Binding: ch.m.Current().String(),
				At:      time.Now().Unix(),
			}); err != nil {
				slog.Warn("journal write failed", "error", err)
			}
		}
	}
	return scanner.Err()
}
