// Package cli implements the numbered-menu interactive session
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/thenoetrevino/genovar/internal/app"
	"github.com/thenoetrevino/genovar/internal/cli/styles"
)

const ruleWidth = 60

// Session is one interactive run of the menu over a single database handle
type Session struct {
	app     *app.App
	prompt  *prompter
	out     io.Writer
	output  *OutputFormatter
	metrics *Metrics
	plain   bool
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithPlainHelp renders the help page without terminal styling
func WithPlainHelp() SessionOption {
	return func(s *Session) {
		s.plain = true
	}
}

// WithMetrics records outcomes into m instead of a fresh Metrics
func WithMetrics(m *Metrics) SessionOption {
	return func(s *Session) {
		s.metrics = m
	}
}

// NewSession creates a session reading choices from in and writing to out
func NewSession(a *app.App, in io.Reader, out io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		app:     a,
		prompt:  newPrompter(in, out),
		out:     out,
		output:  &OutputFormatter{Out: out},
		metrics: NewMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run shows the menu until the user picks 0 or input ends. Operation
// failures are printed and the loop continues; Run only returns an error
// when reading input fails.
func (s *Session) Run(ctx context.Context) error {
	s.banner()

	for {
		s.menu()
		fmt.Fprintln(s.out)
		choice, err := s.prompt.text("Enter your choice")
		if errors.Is(err, errEndOfInput) {
			fmt.Fprintln(s.out)
			break
		}
		if err != nil {
			return fmt.Errorf("read menu choice: %w", err)
		}

		if choice == "0" {
			break
		}

		if strings.EqualFold(choice, "h") {
			s.showHelp()
			continue
		}

		act, ok := lookupAction(choice)
		if !ok {
			s.output.Info("Invalid choice. Please try again.")
			continue
		}

		if err := s.dispatch(ctx, act); err != nil {
			if errors.Is(err, errEndOfInput) {
				fmt.Fprintln(s.out)
				break
			}
			return err
		}
	}

	s.goodbye()
	return nil
}

// dispatch runs one menu action and records its outcome.
// Only input failures are returned.
func (s *Session) dispatch(ctx context.Context, act action) error {
	logger := s.app.Logger.With("op", act.op)

	err := act.run(ctx, s)
	switch {
	case err == nil:
		s.metrics.IncSucceeded()
		logger.Debug("operation succeeded")
		return nil
	case errors.Is(err, errEndOfInput):
		return err
	case isReadFailure(err):
		return fmt.Errorf("read input: %w", err)
	}

	s.metrics.IncFailed()
	logger.Warn("operation failed", "error", err)
	s.output.Error(act.op, err)
	return nil
}

// isReadFailure reports errors raised by the input stream itself
func isReadFailure(err error) bool {
	var readErr *readError
	return errors.As(err, &readErr)
}

type readError struct{ err error }

func (e *readError) Error() string { return e.err.Error() }
func (e *readError) Unwrap() error { return e.err }

func (s *Session) banner() {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintln(s.out, styles.TitleStyle.Render(rule))
	fmt.Fprintln(s.out, styles.TitleStyle.Render("  GENOMIC VARIANT DATABASE"))
	fmt.Fprintln(s.out, styles.TitleStyle.Render(rule))
}

func (s *Session) menu() {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, styles.TitleStyle.Render(rule))
	for _, act := range actions {
		key := act.key + "."
		fmt.Fprintf(s.out, "%s %s\n", styles.MenuKeyStyle.Render(fmt.Sprintf("%-3s", key)), act.label)
	}
	fmt.Fprintf(s.out, "%s %s\n", styles.MenuKeyStyle.Render(fmt.Sprintf("%-3s", "h.")), "Help")
	fmt.Fprintf(s.out, "%s %s\n", styles.MenuKeyStyle.Render(fmt.Sprintf("%-3s", "0.")), "Exit")
	fmt.Fprintln(s.out, styles.TitleStyle.Render(rule))
}

func (s *Session) goodbye() {
	snap := s.metrics.GetSnapshot()
	fmt.Fprintln(s.out)
	s.output.Info("Session summary: %d operations, %d succeeded, %d failed",
		snap.Total(), snap.Succeeded, snap.Failed)
	s.output.Info("Closing database connection...")
	s.output.Info("Goodbye!")

	s.app.Logger.Info("session ended",
		"succeeded", snap.Succeeded,
		"failed", snap.Failed,
		"uptime", snap.Uptime.String(),
	)
}
