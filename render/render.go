package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/revelaction/conllu/match"
	sent "github.com/revelaction/conllu/sentence"
)

const (
	partialOffset = 6
	DefaultFormat = "all"
)

var (
	Black     = "\033[1;30m"
	Red       = "\033[1;31m"
	Green     = "\033[1;32m"
	Yellow    = "\033[0;33m"
	Purple    = "\033[1;34m"
	Magenta   = "\033[1;35m"
	Teal      = "\033[1;36m"
	Gray      = "\033[0;37m"
	White     = "\033[1;37m"
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
	ClearLine = "\033[K"
)

func SupportedFormats() []string {
	return []string{"all", "part", "lemma", "aggr"}
}

type Renderer struct {
	Out io.Writer

	HasColor bool

	HasPrefix bool

	// PrefixFunc builds the prefix of a matched sentence when HasPrefix is
	// set. The default shows doc title, doc id and sentence id.
	PrefixFunc func(*match.SentenceMatch) string

	// Format determines the format of the sentence
	//
	// all: print all sentence
	// part: print the surrounding of the matches in the sentence, cut the rest.
	// lemma: print only the lemmas of the matched words
	// aggr: count the sentences per matched lemma string
	Format string
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{Out: out, Format: DefaultFormat}
}

// Match writes one line per matched sentence in the current Format.
func (r *Renderer) Match(matches []*match.SentenceMatch) {

	// if aggr format, we collect the aggr lemmas here
	aggregatedLemmas := map[string]int{}

	for _, sm := range matches {
		var text string
		switch r.Format {
		case "part":
			text = r.syntagma(sm)
		case "lemma":
			text = lemmas(sm.MatchedTokens())
		case "aggr":
			aggregatedLemmas[lemmas(sm.MatchedTokens())]++
			continue
		default:
			text = r.MatchString(sm)
		}

		fmt.Fprintf(r.Out, "%s%s\n", r.prefix(sm), text)
	}

	if r.Format == "aggr" {
		r.aggrLemmas(aggregatedLemmas)
	}
}

// Sentence writes the surface text of s after prefix.
func (r *Renderer) Sentence(s sent.Sentence, prefix string) {
	fmt.Fprintf(r.Out, "%s%s\n", prefix, Text(s))
}

// MatchString returns the surface text of the matched sentence with the
// matched words highlighted.
func (r *Renderer) MatchString(sm *match.SentenceMatch) string {
	return surface(sm.Sentence.Tokens(), r.highlighter(sm))
}

func (r *Renderer) highlighter(sm *match.SentenceMatch) func(sent.Token, string) string {
	if !r.HasColor {
		return nil
	}

	return func(t sent.Token, form string) string {
		if isHighlighted(sm, t) {
			return Green256 + form + Off
		}
		return form
	}
}

// a multi-word token is highlighted when one of its words is
func isHighlighted(sm *match.SentenceMatch, t sent.Token) bool {
	if sm.IsMatched(t.Id) {
		return true
	}
	if t.Id.Kind != sent.Range {
		return false
	}
	for _, id := range sm.Tokens {
		if id.Kind == sent.Single && t.Id.Covers(id.Start) {
			return true
		}
	}
	return false
}

// syntagma renders the surrounding of the matches, partialOffset tokens on
// each side.
func (r *Renderer) syntagma(sm *match.SentenceMatch) string {
	tokens := sm.Sentence.Tokens()

	first, last := -1, -1
	for i, t := range tokens {
		if !sm.IsMatched(t.Id) {
			continue
		}
		if first == -1 {
			first = i
		}
		last = i
	}

	// if not matches, we print the whole sentence
	if first == -1 {
		return r.MatchString(sm)
	}

	start := max(0, first-partialOffset)
	end := min(len(tokens)-1, last+partialOffset)

	return surface(tokens[start:end+1], r.highlighter(sm))
}

// lemmas renders only the lemma field of the tokens
func lemmas(tokens []sent.Token) string {
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.LemmaOr(t.Form)
	}
	return strings.Join(words, " ")
}

func (r *Renderer) prefix(sm *match.SentenceMatch) string {
	if !r.HasPrefix {
		return ""
	}

	if r.PrefixFunc != nil {
		return r.PrefixFunc(sm)
	}

	return fmt.Sprintf("[%s %2d %5d] ✍  ", r.title(sm.DocTitle), sm.DocID, sm.SentenceID)
}

func PrefixFuncIconHand(sm *match.SentenceMatch) string {
	return fmt.Sprintf("%2d ✍  ", sm.SentenceID)
}

func (r *Renderer) title(title string) string {
	part := runewidth.FillRight(runewidth.Truncate(title, 20, ""), 20)
	if !r.HasColor {
		return part
	}
	return Grey256 + part + Off
}

// NextFormat sets the Renderer Format option to a different one, following
// the SupportedFormats() order.
func (r *Renderer) NextFormat() {
	supported := SupportedFormats()
	for i, format := range supported {
		if format == r.Format {
			r.Format = supported[(i+1)%len(supported)]
			return
		}
	}
	r.Format = supported[0]
}

func (r *Renderer) NextPrefix() {
	// toggle
	r.HasPrefix = !r.HasPrefix
}

func (r *Renderer) aggrLemmas(agls map[string]int) {
	// flatten map to use sortSlice
	type aggr struct {
		NumSent  int
		LemmaStr string
	}

	sl := make([]aggr, 0, len(agls))
	for lemmaStr, n := range agls {
		sl = append(sl, aggr{n, lemmaStr})
	}

	sort.Slice(sl, func(i, j int) bool {
		// first by num sentences
		if sl[i].NumSent != sl[j].NumSent {
			return sl[i].NumSent > sl[j].NumSent
		}

		// len of lemmas string
		if len(sl[i].LemmaStr) != len(sl[j].LemmaStr) {
			return len(sl[i].LemmaStr) < len(sl[j].LemmaStr)
		}

		return sl[i].LemmaStr < sl[j].LemmaStr
	})

	var prefix string
	for _, s := range sl {
		if r.HasPrefix {
			prefix = fmt.Sprintf("[%5d] ✍  ", s.NumSent)
		}

		fmt.Fprintf(r.Out, "%s%s\n", prefix, s.LemmaStr)
	}
}
