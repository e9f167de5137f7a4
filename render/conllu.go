package render

import (
	"bufio"
	"io"
	"strings"

	sent "github.com/revelaction/conllu/sentence"
)

const absent = "_"

// Token returns the CoNLL-U line of t, without line break.
func Token(t sent.Token) string {
	fields := []string{
		t.Id.String(),
		t.Form,
		optional(t.Lemma),
		upos(t.UPOS),
		optional(t.XPOS),
		t.Features.String(),
		head(t.Head),
		optional(t.Deprel),
		deps(t.Deps),
		optional(t.Misc),
	}
	return strings.Join(fields, "\t")
}

// Sentence writes the meta lines and tokens of s followed by a blank line.
func Sentence(w io.Writer, s sent.Sentence) error {
	bw := bufio.NewWriter(w)
	writeSentence(bw, s)
	return bw.Flush()
}

// Doc writes all sentences in CoNLL-U format.
func Doc(w io.Writer, sentences []sent.Sentence) error {
	bw := bufio.NewWriter(w)
	for _, s := range sentences {
		writeSentence(bw, s)
	}
	return bw.Flush()
}

// SentenceString returns s in CoNLL-U format, with its terminating blank
// line.
func SentenceString(s sent.Sentence) string {
	var b strings.Builder
	bw := bufio.NewWriter(&b)
	writeSentence(bw, s)
	bw.Flush()
	return b.String()
}

// bufio.Writer keeps the first error and returns it from Flush
func writeSentence(bw *bufio.Writer, s sent.Sentence) {
	for _, line := range s.Meta() {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	for _, t := range s.Tokens() {
		bw.WriteString(Token(t))
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
}

func optional(s *string) string {
	if s == nil {
		return absent
	}
	return *s
}

func upos(u *sent.UPOS) string {
	if u == nil {
		return absent
	}
	return u.String()
}

func head(id *sent.TokenID) string {
	if id == nil {
		return absent
	}
	return id.String()
}

func deps(deps []sent.Dep) string {
	if len(deps) == 0 {
		return absent
	}
	edges := make([]string, len(deps))
	for i, d := range deps {
		edges[i] = d.Head.String() + ":" + d.Rel
	}
	return strings.Join(edges, "|")
}
