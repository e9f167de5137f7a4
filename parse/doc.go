// Package parse reads the CoNLL-U format: ten tab separated columns per
// token line, comment lines starting with "#" and blank lines between
// sentences.
//
// See https://universaldependencies.org/format.html
package parse

import (
	"bufio"
	"fmt"
	"io"
	"iter"

	sent "github.com/revelaction/conllu/sentence"
)

// DefaultMaxLineSize is the longest line a Doc accepts unless
// WithMaxLineSize says otherwise.
const DefaultMaxLineSize = 1024 * 1024

type state int

const (
	betweenSentences state = iota
	inSentence

	// skipping drops the lines of a failed sentence up to the next blank
	// line.
	skipping
)

// Result is one item of a Doc: a sentence, or the error that made Doc drop
// it.
type Result struct {
	Sentence sent.Sentence
	Err      error

	// Line is the 1-based line the sentence starts at.
	Line int
}

type options struct {
	maxLineSize int
}

type Option func(*options)

// WithMaxLineSize sets the longest accepted line, in bytes.
func WithMaxLineSize(n int) Option {
	return func(o *options) {
		o.maxLineSize = n
	}
}

// Doc reads sentences from a line stream one at a time. A sentence that
// fails to parse is reported as an error Result and the next sentence is
// read normally.
//
// A Doc is single pass: once Next returns false it stays exhausted.
type Doc struct {
	scanner *bufio.Scanner
	builder *sent.Builder
	state   state

	// current line number and the line the pending sentence started at
	line  int
	start int

	done bool
}

// NewDoc returns a Doc reading from r. Doc does not close r.
func NewDoc(r io.Reader, opts ...Option) *Doc {
	o := options{maxLineSize: DefaultMaxLineSize}
	for _, opt := range opts {
		opt(&o)
	}

	// the scanner limit is the larger of max and the initial capacity
	initial := min(64*1024, o.maxLineSize)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initial), o.maxLineSize)

	return &Doc{
		scanner: scanner,
		builder: sent.NewBuilder(),
	}
}

// Next reads up to the end of the next sentence. It returns false when the
// stream is exhausted.
func (d *Doc) Next() (Result, bool) {
	if d.done {
		return Result{}, false
	}

	for d.scanner.Scan() {
		d.line++
		line := d.scanner.Text()

		if isBlank(line) {
			switch d.state {
			case inSentence:
				d.state = betweenSentences
				return d.emit(), true
			case skipping:
				d.state = betweenSentences
			}
			continue
		}

		if d.state == skipping {
			continue
		}

		if d.state == betweenSentences {
			d.state = inSentence
			d.start = d.line
		}

		if isComment(line) {
			d.builder.PushMeta(line)
			continue
		}

		token, err := ParseToken(line)
		if err != nil {
			d.builder.Reset()
			d.state = skipping
			return Result{
				Err:  &SentenceError{Start: d.start, Err: atLine(err, d.line)},
				Line: d.start,
			}, true
		}
		d.builder.PushToken(token)
	}

	d.done = true

	if err := d.scanner.Err(); err != nil {
		d.builder.Reset()
		return Result{
			Err:  fmt.Errorf("reading line %d: %w", d.line+1, err),
			Line: d.line + 1,
		}, true
	}

	if d.state == inSentence {
		d.state = betweenSentences
		return d.emit(), true
	}

	return Result{}, false
}

func (d *Doc) emit() Result {
	return Result{Sentence: d.builder.Build(), Line: d.start}
}

// All returns the remaining items as a sequence of sentence, error pairs.
// Exactly one of the pair is meaningful: a nil error means the sentence is
// valid.
func (d *Doc) All() iter.Seq2[sent.Sentence, error] {
	return func(yield func(sent.Sentence, error) bool) {
		for {
			r, ok := d.Next()
			if !ok {
				return
			}
			if !yield(r.Sentence, r.Err) {
				return
			}
		}
	}
}

// ParseAll reads r to the end and returns every item.
func ParseAll(r io.Reader, opts ...Option) []Result {
	var results []Result
	d := NewDoc(r, opts...)
	for {
		res, ok := d.Next()
		if !ok {
			return results
		}
		results = append(results, res)
	}
}
