package parse

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Test with errors.Is.
var (
	ErrTokenID    = errors.New("malformed token id")
	ErrFieldCount = errors.New("wrong number of fields")
	ErrUPOS       = errors.New("unknown UPOS tag")
	ErrFeature    = errors.New("malformed feature")
	ErrDeps       = errors.New("malformed dependency")
)

// FieldError reports a column or line that could not be parsed.
type FieldError struct {
	// Kind is one of the Err* kinds of this package.
	Kind error

	// Column name, "ID", "FEATS", ... Empty for line level errors.
	Field string

	// The offending text
	Value string

	// 1-based line number, zero when unknown
	Line int

	// Err is the underlying cause, if any.
	Err error
}

func (e *FieldError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	if e.Field != "" {
		b.WriteString(e.Field)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.Error())
	if e.Value != "" {
		fmt.Fprintf(&b, " %q", e.Value)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *FieldError) Is(target error) bool {
	return e.Kind == target
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// SentenceError is the error of a sentence that was dropped by Doc.
type SentenceError struct {
	// Start is the line the sentence begins at.
	Start int
	Err   error
}

func (e *SentenceError) Error() string {
	return fmt.Sprintf("sentence at line %d: %v", e.Start, e.Err)
}

func (e *SentenceError) Unwrap() error {
	return e.Err
}

// atLine sets the line number of a field error, returning a copy.
func atLine(err error, line int) error {
	var fe *FieldError
	if !errors.As(err, &fe) {
		return fmt.Errorf("line %d: %w", line, err)
	}
	located := *fe
	located.Line = line
	return &located
}
