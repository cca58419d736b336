package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hexspeak/wetsand/internal/journal"
	"github.com/hexspeak/wetsand/internal/machine"
)

// FeedOptions holds flags for the feed command.
type FeedOptions struct {
	*RootOptions
	Delay   time.Duration
	Journal string
}

// NewFeedCommand creates the feed command.
func NewFeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FeedOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "feed <digits>",
		Short: "Feed a digit string through the gate",
		Long: `Feed a digit string through the gate, one press per character.

Presses are delivered back to back unless --delay is given. Note that the
fifth digit is gated on elapsed time since the first press, so a zero-delay
feed of the correct sequence is designed to fail: scripted pressing is
exactly what the gate exists to stop.

Example:
  wetsand feed 19474
  wetsand feed 1947482 --delay 1s --journal ./presses.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFeed(opts, args[0], cmd)
		},
	}

	cmd.Flags().DurationVar(&opts.Delay, "delay", 0, "pause between presses")
	cmd.Flags().StringVar(&opts.Journal, "journal", "", "path to SQLite press journal")

	return cmd
}

func runFeed(opts *FeedOptions, digits string, cmd *cobra.Command) error {
	for _, r := range digits {
		if r < '0' || r > '9' {
			return fmt.Errorf("feed expects only digits 0-9, got %q", r)
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
	ctx := cmd.Context()

	for i, r := range digits {
		if i > 0 && opts.Delay > 0 {
			time.Sleep(opts.Delay)
		}

		d := int(r - '0')
		ch.console.Log(ctx, d)
		slog.Debug("binding after press", "press", i+1, "binding", ch.m.Current())

		if j != nil {
			if err := j.Record(ctx, journal.Press{
				Session: session,
				Seq:     int64(i + 1),
				Digit:   d,
				Binding: ch.m.Current().String(),
				At:      time.Now().Unix(),
			}); err != nil {
				slog.Warn("journal write failed", "error", err)
			}
		}
	}

	fmt.Fprintf(out, "final binding: %s\n", ch.m.Current())
	return nil
}
