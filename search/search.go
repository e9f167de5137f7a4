package search

import (
	"github.com/revelaction/conllu/match"
	"github.com/revelaction/conllu/storage"
)

// Search runs an expression against a repository, reading one doc whole
// or narrowing candidates through FindCandidates.
type Search struct {
	repo   storage.DocReader
	docID  *int
	labels []string
}

// New returns a Search over all docs of dr.
func New(dr storage.DocReader) *Search {
	return &Search{
		repo: dr,
	}
}

// WithDocID restricts the search to one doc, which is read and matched
// whole. Labels, cursor and limit do not apply then.
func (s *Search) WithDocID(id int) *Search {
	s.docID = &id
	return s
}

// WithLabels restricts the search to documents carrying all labels.
func (s *Search) WithLabels(labels []string) *Search {
	s.labels = labels
	return s
}

// Sentences calls onMatch for the sentences matching expr, starting after
// cursor. At most limit candidates are examined when limit is positive. It
// returns the cursor to resume from.
func (s *Search) Sentences(expr match.Expr, cursor storage.Cursor, limit int, onMatch func(*match.SentenceMatch) error) (storage.Cursor, error) {
	matcher := match.NewMatcher(expr)

	if s.docID != nil {
		doc, err := s.repo.Read(*s.docID)
		if err != nil {
			return cursor, err
		}
		doc.Id = *s.docID

		matcher.Match(doc)

		for _, m := range matcher.Sentences() {
			if err := onMatch(m); err != nil {
				return cursor, err
			}
		}
		return cursor, nil
	}

	// without lemmas every sentence of the labeled docs is a candidate
	return s.repo.FindCandidates(expr.Lemmas(), s.labels, cursor, limit, func(res storage.SentenceResult) error {
		m := matcher.MatchSentence(res.Sentence)
		if m == nil {
			return nil
		}

		m.DocID = res.DocID
		m.DocTitle = res.DocTitle
		m.SentenceID = res.SentenceID
		return onMatch(m)
	})
}
