package match

import (
	"slices"

	sent "github.com/revelaction/conllu/sentence"
)

// Matcher matches a Doc (or a set of Docs) against an Expr. A set of Docs
// can be matched by repeated Match calls, the matches accumulate.
type Matcher struct {
	Expr Expr

	matches []*SentenceMatch
}

// SentenceMatch is a sentence that satisfies every item of the Expr, with
// the tokens responsible for it.
type SentenceMatch struct {
	DocID    int    `json:"doc_id"`
	DocTitle string `json:"doc_title,omitempty"`

	// SentenceID is the 0-based position of the sentence inside its doc.
	SentenceID int `json:"sentence_id"`

	Sentence sent.Sentence `json:"sentence"`

	// Tokens are the ids of the matched tokens, in sentence order.
	Tokens []sent.TokenID `json:"tokens"`
}

// IsMatched reports whether the token id was matched by some item.
func (sm *SentenceMatch) IsMatched(id sent.TokenID) bool {
	return slices.Contains(sm.Tokens, id)
}

// MatchedTokens returns the matched tokens in sentence order.
func (sm *SentenceMatch) MatchedTokens() []sent.Token {
	tokens := make([]sent.Token, 0, len(sm.Tokens))
	for _, id := range sm.Tokens {
		if t, ok := sm.Sentence.Token(id); ok {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

func NewMatcher(expr Expr) *Matcher {
	return &Matcher{Expr: expr}
}

// Match appends a SentenceMatch for each matching sentence of doc.
func (m *Matcher) Match(doc sent.Doc) {
	for i, s := range doc.Sentences {
		sm := m.MatchSentence(s)
		if sm == nil {
			continue
		}
		sm.DocID = doc.Id
		sm.DocTitle = doc.Title
		sm.SentenceID = i
		m.matches = append(m.matches, sm)
	}
}

// MatchSentence matches a single sentence. It returns nil when some item is
// not satisfied. The returned match carries no doc information.
func (m *Matcher) MatchSentence(s sent.Sentence) *SentenceMatch {
	if len(m.Expr) == 0 {
		return nil
	}

	// token positions matched by positive items
	matched := map[int]bool{}

	for _, item := range m.Expr {
		found := false
		for i, t := range s.Tokens() {
			if !item.Match(t) {
				continue
			}
			found = true
			if item.Negated {
				break
			}
			matched[i] = true
		}

		if found == item.Negated {
			return nil
		}
	}

	sm := &SentenceMatch{Sentence: s}
	for i, t := range s.Tokens() {
		if matched[i] {
			sm.Tokens = append(sm.Tokens, t.Id)
		}
	}
	return sm
}

// Sentences returns the accumulated matches in match order.
func (m *Matcher) Sentences() []*SentenceMatch {
	return m.matches
}

// Reset drops the accumulated matches.
func (m *Matcher) Reset() {
	m.matches = nil
}
