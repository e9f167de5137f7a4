package sentence

import (
	"slices"
	"strconv"
)

// IDKind tells the three shapes of a TokenID apart.
type IDKind uint8

const (
	// Single is an ordinary word, "8".
	Single IDKind = iota

	// Range is a multi-word token spanning several words, "8-9".
	Range

	// Sub is an empty node inserted after a word, "8.1".
	Sub
)

func (k IDKind) String() string {
	switch k {
	case Single:
		return "single"
	case Range:
		return "range"
	case Sub:
		return "sub"
	}
	return "unknown"
}

// TokenID identifies a token inside its sentence. It is comparable and is
// used as the key of the sentence index.
//
// For a Single id Start is the word index and End is zero. For a Range Start
// and End are the first and last covered words. For a Sub id Start is the
// word the empty node follows and End is the decimal part.
type TokenID struct {
	Kind  IDKind
	Start int
	End   int
}

// SingleID returns the id of an ordinary word. SingleID(0) is the synthetic
// root used in HEAD and DEPS.
func SingleID(n int) TokenID {
	return TokenID{Kind: Single, Start: n}
}

// RangeID returns the id of a multi-word token.
func RangeID(start, end int) TokenID {
	return TokenID{Kind: Range, Start: start, End: end}
}

// SubID returns the id of an empty node.
func SubID(n, part int) TokenID {
	return TokenID{Kind: Sub, Start: n, End: part}
}

// IsRoot reports whether id is the synthetic root 0.
func (id TokenID) IsRoot() bool {
	return id.Kind == Single && id.Start == 0
}

// Part returns the decimal part of a Sub id, zero otherwise.
func (id TokenID) Part() int {
	if id.Kind != Sub {
		return 0
	}
	return id.End
}

// Covers reports whether the Range id spans the word n.
func (id TokenID) Covers(n int) bool {
	return id.Kind == Range && n >= id.Start && n <= id.End
}

// String formats the id the way it is written in the ID column.
func (id TokenID) String() string {
	switch id.Kind {
	case Range:
		return strconv.Itoa(id.Start) + "-" + strconv.Itoa(id.End)
	case Sub:
		return strconv.Itoa(id.Start) + "." + strconv.Itoa(id.End)
	default:
		return strconv.Itoa(id.Start)
	}
}

func (id TokenID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// Dep is an enhanced dependency edge of the DEPS column.
type Dep struct {
	Head TokenID `json:"head"`
	Rel  string  `json:"rel"`
}

// Token represents one line of a sentence: a word, a multi-word token or an
// empty node.
//
// A nil field was written as the "_" placeholder. Form is always present,
// even when it is the literal "_".
type Token struct {
	Id TokenID `json:"id"`

	// The unmodified word
	Form string `json:"form"`

	Lemma *string `json:"lemma,omitempty"`

	// Universal part of speech
	UPOS *UPOS `json:"upos,omitempty"`

	// Language specific part of speech
	XPOS *string `json:"xpos,omitempty"`

	Features *Features `json:"feats,omitempty"`

	Head   *TokenID `json:"head,omitempty"`
	Deprel *string  `json:"deprel,omitempty"`

	// Deps is nil when the column was "_". Edge order is the written order.
	Deps []Dep `json:"deps,omitempty"`

	Misc *string `json:"misc,omitempty"`
}

// Str returns a pointer to s. Useful for building tokens in code.
func Str(s string) *string {
	return &s
}

// LemmaOr returns the lemma, or def when the lemma is absent.
func (t Token) LemmaOr(def string) string {
	if t.Lemma == nil {
		return def
	}
	return *t.Lemma
}

// IsWord reports whether the token is an ordinary word, as opposed to a
// multi-word token or an empty node.
func (t Token) IsWord() bool {
	return t.Id.Kind == Single
}

// Clone returns a copy of t that shares no memory with it.
func (t Token) Clone() Token {
	c := t
	c.Lemma = clonePtr(t.Lemma)
	c.UPOS = clonePtr(t.UPOS)
	c.XPOS = clonePtr(t.XPOS)
	c.Head = clonePtr(t.Head)
	c.Deprel = clonePtr(t.Deprel)
	c.Misc = clonePtr(t.Misc)
	c.Deps = slices.Clone(t.Deps)
	if t.Features != nil {
		c.Features = NewFeatures(t.Features.Pairs()...)
	}
	return c
}

// SetFeature sets key=value in FEATS, creating the column if it was absent.
func (t *Token) SetFeature(key, value string) {
	if t.Features == nil {
		t.Features = &Features{}
	}
	t.Features.Set(key, value)
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
