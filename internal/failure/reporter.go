package failure

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// StackMarker separates the error line from the stack trace line.
const StackMarker = "--- Stack trace: ---"

// Exit codes returned by Reporter.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// Reporter renders a failed run as an error line, StackMarker and a
// one-line stack trace.
type Reporter struct {
	out io.Writer
}

// NewReporter creates a Reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Report writes the diagnostic for err and returns the process exit code.
// A nil error writes nothing and returns ExitOK.
//
//nolint:errcheck // diagnostic output; nothing left to report a write error to
func (r *Reporter) Report(err error) int {
	if err == nil {
		return ExitOK
	}

	var st stackTracer
	if !errors.As(err, &st) {
		st = errors.WithStack(err).(stackTracer)
	}

	fmt.Fprintln(r.out, singleLine(err.Error()))
	fmt.Fprintln(r.out, StackMarker)
	fmt.Fprintln(r.out, FormatStack(st.StackTrace()))

	return ExitFailure
}

// ReportPanic reports a recovered panic value.
func (r *Reporter) ReportPanic(v any) int {
	err, ok := v.(error)
	if !ok {
		err = errors.Errorf("panic: %v", v)
	}
	return r.Report(err)
}

// FormatStack renders a stack trace on a single line, innermost frame first:
//
//	[regen.(*Regenerator).Run (run.go:42), main.run (main.go:30)]
func FormatStack(st errors.StackTrace) string {
	frames := make([]string, 0, len(st))
	for _, f := range st {
		frames = append(frames, fmt.Sprintf("%n (%v)", f, f))
	}
	return "[" + strings.Join(frames, ", ") + "]"
}

func singleLine(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
