package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	sent "github.com/revelaction/conllu/sentence"
)

const (
	rangeSeparator = "-"
	subSeparator   = "."
)

// ParseTokenID parses the ID column: "8", "8-9" or "8.1". All numbers must
// be positive and a range start must be lower than its end.
func ParseTokenID(s string) (sent.TokenID, error) {
	return parseID("ID", s)
}

// ParseHead parses a head reference of the HEAD and DEPS columns. It accepts
// the synthetic root "0", word ids and empty node ids. Multi-word tokens can
// not be heads.
func ParseHead(s string) (sent.TokenID, error) {
	if s == "0" {
		return sent.SingleID(0), nil
	}

	id, err := parseID("HEAD", s)
	if err != nil {
		return id, err
	}

	if id.Kind == sent.Range {
		return sent.TokenID{}, idError("HEAD", s, errors.New("a multi-word token can not be a head"))
	}
	return id, nil
}

func parseID(field, s string) (sent.TokenID, error) {
	if left, right, ok := strings.Cut(s, rangeSeparator); ok {
		start, err := positive(left)
		if err != nil {
			return sent.TokenID{}, idError(field, s, err)
		}
		end, err := positive(right)
		if err != nil {
			return sent.TokenID{}, idError(field, s, err)
		}
		if start >= end {
			return sent.TokenID{}, idError(field, s, fmt.Errorf("range start %d is not lower than end %d", start, end))
		}
		return sent.RangeID(start, end), nil
	}

	if left, right, ok := strings.Cut(s, subSeparator); ok {
		n, err := positive(left)
		if err != nil {
			return sent.TokenID{}, idError(field, s, err)
		}
		part, err := positive(right)
		if err != nil {
			return sent.TokenID{}, idError(field, s, err)
		}
		return sent.SubID(n, part), nil
	}

	n, err := positive(s)
	if err != nil {
		return sent.TokenID{}, idError(field, s, err)
	}
	return sent.SingleID(n), nil
}

// positive parses a run of ASCII digits with a value of at least 1.
func positive(s string) (int, error) {
	if s == "" {
		return 0, errors.New("missing number")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%q is not a number", s)
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("%d is not positive", n)
	}
	return n, nil
}

func idError(field, value string, err error) error {
	return &FieldError{Kind: ErrTokenID, Field: field, Value: value, Err: err}
}
