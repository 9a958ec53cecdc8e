package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/thenoetrevino/genovar/internal/cli/styles"
	"github.com/thenoetrevino/genovar/internal/database"
)

// OutputFormatter writes one-line confirmations and errors for the session
type OutputFormatter struct {
	Out io.Writer
}

// Success prints a confirmation line
func (f *OutputFormatter) Success(format string, args ...any) {
	fmt.Fprintln(f.Out, styles.SuccessStyle.Render("✅ "+fmt.Sprintf(format, args...)))
}

// Warning prints a line for an operation that succeeded but changed nothing
func (f *OutputFormatter) Warning(format string, args ...any) {
	fmt.Fprintln(f.Out, styles.WarningStyle.Render("⚠️  "+fmt.Sprintf(format, args...)))
}

// Info prints a plain line
func (f *OutputFormatter) Info(format string, args ...any) {
	fmt.Fprintln(f.Out, styles.ValueStyle.Render(fmt.Sprintf(format, args...)))
}

// Empty prints the note shown when a query has no rows
func (f *OutputFormatter) Empty(format string, args ...any) {
	fmt.Fprintln(f.Out, styles.SubtitleStyle.Render(fmt.Sprintf(format, args...)))
}

// Header prints a section title
func (f *OutputFormatter) Header(format string, args ...any) {
	fmt.Fprintln(f.Out)
	fmt.Fprintln(f.Out, styles.TitleStyle.Render("=== "+fmt.Sprintf(format, args...)+" ==="))
}

// Error prints "❌ Error: <op>: <cause>" on a single line
func (f *OutputFormatter) Error(op string, err error) {
	fmt.Fprintln(f.Out, styles.ErrorStyle.Render(fmt.Sprintf("❌ Error: %s: %s", op, cause(err))))
}

// cause picks the most specific message in the error chain.
// Typed storage errors already describe the problem without service prefixes.
func cause(err error) string {
	var dup *database.DuplicateKeyError
	if errors.As(err, &dup) {
		return dup.Error()
	}
	var ref *database.ReferentialError
	if errors.As(err, &ref) {
		return ref.Error()
	}
	return err.Error()
}
