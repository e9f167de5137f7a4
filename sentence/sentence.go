package sentence

import (
	"encoding/json"
	"iter"
	"strings"
)

// Doc is a stored document: a titled, labeled list of sentences.
type Doc struct {
	Id int `json:"id"`

	Title string `json:"title"`

	Labels    []string   `json:"labels,omitempty"`
	Sentences []Sentence `json:"sentences"`
}

// Sentence is a block of comment lines and tokens, with an index from
// TokenID to the token position.
//
// The index is built once by Builder.Build. Changing the Id of a token
// obtained with TokenMut leaves the index stale.
type Sentence struct {
	meta      []string
	tokens    []Token
	idToIndex map[TokenID]int
}

// Token returns a deep copy of the token with the given id. Changes to the
// copy do not reach the sentence; use TokenMut for editing.
func (s Sentence) Token(id TokenID) (Token, bool) {
	idx, ok := s.idToIndex[id]
	if !ok {
		return Token{}, false
	}
	return s.tokens[idx].Clone(), true
}

// TokenMut returns the token with the given id for in place editing, or nil.
func (s *Sentence) TokenMut(id TokenID) *Token {
	idx, ok := s.idToIndex[id]
	if !ok {
		return nil
	}
	return &s.tokens[idx]
}

// Meta returns the comment lines, "#" included, in the order they were
// found.
func (s Sentence) Meta() []string {
	return s.meta
}

// MetaValue returns the value of a "# key = value" comment line.
func (s Sentence) MetaValue(key string) (string, bool) {
	for _, line := range s.meta {
		k, v, ok := strings.Cut(strings.TrimPrefix(line, "#"), "=")
		if !ok {
			continue
		}
		if strings.TrimSpace(k) == key {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}

// Tokens returns the tokens in document order. The slice must not be
// modified; use TokenMut for editing.
func (s Sentence) Tokens() []Token {
	return s.tokens[:len(s.tokens):len(s.tokens)]
}

// Len returns the number of tokens, words, multi-word tokens and empty nodes
// alike.
func (s Sentence) Len() int {
	return len(s.tokens)
}

// All iterates over the tokens in document order.
func (s Sentence) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for _, t := range s.tokens {
			if !yield(t) {
				return
			}
		}
	}
}

// Words returns only the Single id tokens.
func (s Sentence) Words() []Token {
	words := make([]Token, 0, len(s.tokens))
	for _, t := range s.tokens {
		if t.IsWord() {
			words = append(words, t)
		}
	}
	return words
}

func (s Sentence) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Meta   []string `json:"meta,omitempty"`
		Tokens []Token  `json:"tokens"`
	}{
		Meta:   s.meta,
		Tokens: s.tokens,
	})
}

// Builder accumulates comment lines and tokens and produces a Sentence.
type Builder struct {
	tokens []Token
	meta   []string
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) WithTokens(tokens []Token) *Builder {
	b.tokens = tokens
	return b
}

func (b *Builder) WithMeta(meta []string) *Builder {
	b.meta = meta
	return b
}

func (b *Builder) PushToken(t Token) *Builder {
	b.tokens = append(b.tokens, t)
	return b
}

func (b *Builder) PushMeta(line string) *Builder {
	b.meta = append(b.meta, line)
	return b
}

// Empty reports whether nothing was pushed since the last Build or Reset.
func (b *Builder) Empty() bool {
	return len(b.tokens) == 0 && len(b.meta) == 0
}

// Reset discards the accumulated content.
func (b *Builder) Reset() {
	b.tokens = nil
	b.meta = nil
}

// Build indexes the tokens and returns the Sentence. The builder hands its
// content over to the Sentence and is empty afterwards.
//
// Duplicated ids are kept in the token list but the index points to the
// last one.
func (b *Builder) Build() Sentence {
	idToIndex := make(map[TokenID]int, len(b.tokens))
	for i, t := range b.tokens {
		idToIndex[t.Id] = i
	}

	s := Sentence{
		meta:      b.meta,
		tokens:    b.tokens,
		idToIndex: idToIndex,
	}
	b.Reset()
	return s
}
