package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"charm.land/huh/v2"
)

// errEndOfInput ends the session when stdin is exhausted mid-operation
var errEndOfInput = errors.New("end of input")

// InputError reports a value typed at a prompt that could not be parsed.
// The prompt shows it and asks again.
type InputError struct {
	Field string
	Value string
	Want  string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %q: must be %s", e.Field, e.Value, e.Want)
}

// lineReader hands out at most one line per Read. Each accessible huh prompt
// scans with a fresh buffer, so this keeps a prompt from swallowing the
// answers queued behind its own.
type lineReader struct {
	src     *bufio.Reader
	pending []byte
	served  int // bytes handed out since the current prompt began
	eof     bool
	err     error
}

func (r *lineReader) Read(p []byte) (int, error) {
	if len(r.pending) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		if r.eof {
			return 0, io.EOF
		}

		line, err := r.src.ReadBytes('\n')
		switch {
		case errors.Is(err, io.EOF):
			r.eof = true
		case err != nil:
			r.err = err
		}
		if len(line) == 0 {
			return r.Read(p)
		}
		r.pending = line
	}

	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	r.served += n
	return n, nil
}

// prompter asks one question per line through accessible huh inputs
type prompter struct {
	in  *lineReader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: &lineReader{src: bufio.NewReader(in)}, out: out}
}

func anyText(string) error { return nil }

// ask shows label and returns the trimmed answer once validate accepts it.
// Input that ends before a valid answer arrives yields errEndOfInput.
func (p *prompter) ask(label string, validate func(string) error) (string, error) {
	var answer string
	p.in.served = 0

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(label + ":").
			Value(&answer).
			Validate(validate),
	)).
		WithAccessible(true).
		WithShowHelp(false).
		WithInput(p.in).
		WithOutput(p.out)

	err := form.Run()
	switch {
	case p.in.err != nil:
		return "", &readError{err: p.in.err}
	case p.in.eof && (err != nil || p.in.served == 0 || validate(answer) != nil):
		return "", errEndOfInput
	case err != nil:
		return "", &readError{err: err}
	}
	return strings.TrimSpace(answer), nil
}

// text returns the trimmed answer to label
func (p *prompter) text(label string) (string, error) {
	return p.ask(label, anyText)
}

func (p *prompter) integer(label, field string) (int, error) {
	raw, err := p.ask(label, wholeNumber(field))
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(raw)
}

func (p *prompter) integer64(label, field string) (int64, error) {
	raw, err := p.ask(label, wholeNumber(field))
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(raw, 10, 64)
}

func (p *prompter) decimal(label, field string) (float64, error) {
	raw, err := p.ask(label, number(field))
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(raw, 64)
}

// wholeNumber accepts anything strconv.ParseInt reads as a 64-bit integer
func wholeNumber(field string) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if _, err := strconv.ParseInt(s, 10, 64); err != nil {
			return &InputError{Field: field, Value: s, Want: "a whole number"}
		}
		return nil
	}
}

func number(field string) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return &InputError{Field: field, Value: s, Want: "a number"}
		}
		return nil
	}
}
