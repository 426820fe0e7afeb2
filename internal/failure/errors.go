// Package failure classifies run errors and renders them for the operator.
//
// Every step of a run (configuration, open, regenerate, save) returns its
// error wrapped in an *Error carrying the step's Kind and a stack trace
// captured at classification time. The Reporter renders the error once, at
// the process boundary.
package failure

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies the step of a run that failed.
type Kind string

const (
	// KindConfiguration is an empty or invalid configuration, detected before any project I/O.
	KindConfiguration Kind = "configuration"

	// KindOpen is a missing path or a path that is not a recognized project or workspace.
	KindOpen Kind = "open"

	// KindRegeneration is an inconsistent project object graph.
	KindRegeneration Kind = "regeneration"

	// KindSave is an I/O failure while persisting scheme files.
	KindSave Kind = "save"
)

// Error is a classified run error.
type Error struct {
	Kind Kind
	Path string // project or workspace path, empty for configuration errors
	Err  error
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// New classifies err. A stack trace is recorded unless err already carries one.
func New(kind Kind, path string, err error) *Error {
	if err == nil {
		err = errors.Errorf("%s failed", kind)
	}

	var st stackTracer
	if !errors.As(err, &st) {
		err = errors.WithStack(err)
	}

	return &Error{
		Kind: kind,
		Path: path,
		Err:  err,
	}
}

// Configuration returns a KindConfiguration error.
func Configuration(err error) *Error {
	return New(KindConfiguration, "", err)
}

// Open returns a KindOpen error for path.
func Open(path string, err error) *Error {
	return New(KindOpen, path, err)
}

// Regeneration returns a KindRegeneration error for path.
func Regeneration(path string, err error) *Error {
	return New(KindRegeneration, path, err)
}

// Save returns a KindSave error for path.
func Save(path string, err error) *Error {
	return New(KindSave, path, err)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s error (%s): %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

// Unwrap allows errors.Is and errors.As to reach the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// StackTrace returns the stack recorded for the underlying error.
func (e *Error) StackTrace() errors.StackTrace {
	var st stackTracer
	if errors.As(e.Err, &st) {
		return st.StackTrace()
	}
	return nil
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return "", false
}

// IsKind reports whether err is classified as kind.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
