package search

import (
	"errors"
	"testing"

	"github.com/revelaction/conllu/match"
	sent "github.com/revelaction/conllu/sentence"
	"github.com/revelaction/conllu/storage"
)

// memRepo is a DocReader over docs held in memory.
type memRepo struct {
	docs []sent.Doc

	// lemmas received by the last FindCandidates call
	lemmas []string
}

func (m *memRepo) List(string) ([]sent.Doc, error) { return m.docs, nil }

func (m *memRepo) Read(id int) (sent.Doc, error) {
	if id < 0 || id >= len(m.docs) {
		return sent.Doc{}, storage.ErrNotFound
	}
	return m.docs[id], nil
}

func (m *memRepo) Labels(string) ([]string, error) { return nil, nil }

func (m *memRepo) FindCandidates(lemmas []string, labels []string, after storage.Cursor, limit int, onCandidate func(storage.SentenceResult) error) (storage.Cursor, error) {
	m.lemmas = lemmas
	var pos storage.Cursor
	for _, doc := range m.docs {
		for i, s := range doc.Sentences {
			pos++
			if pos <= after {
				continue
			}
			if err := onCandidate(storage.SentenceResult{RowID: pos, DocID: doc.Id, DocTitle: doc.Title, SentenceID: i, Sentence: s}); err != nil {
				return pos, err
			}
		}
	}
	return pos, nil
}

func word(id int, lemma string) sent.Token {
	return sent.Token{Id: sent.SingleID(id), Form: lemma, Lemma: sent.Str(lemma)}
}

func testRepo() *memRepo {
	a := sent.NewBuilder().PushToken(word(1, "gato")).PushToken(word(2, "come")).Build()
	b := sent.NewBuilder().PushToken(word(1, "perro")).Build()
	return &memRepo{docs: []sent.Doc{
		{Id: 0, Title: "uno", Sentences: []sent.Sentence{a, b}},
		{Id: 1, Title: "dos", Sentences: []sent.Sentence{b, a}},
	}}
}

func collect(t *testing.T, s *Search, args ...string) []*match.SentenceMatch {
	t.Helper()
	expr, err := match.Parse(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var matches []*match.SentenceMatch
	_, err = s.Sentences(expr, 0, 0, func(m *match.SentenceMatch) error {
		matches = append(matches, m)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return matches
}

func TestSentencesIndexed(t *testing.T) {
	repo := testRepo()
	matches := collect(t, New(repo), "gato")

	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[1].DocTitle != "dos" || matches[1].SentenceID != 1 {
		t.Errorf("unexpected match %+v", matches[1])
	}
	if len(repo.lemmas) != 1 || repo.lemmas[0] != "gato" {
		t.Errorf("expected the lemma to reach the storage, got %q", repo.lemmas)
	}
}

func TestSentencesWithoutLemmas(t *testing.T) {
	repo := testRepo()
	matches := collect(t, New(repo), "form:perro")
	if len(matches) != 2 || repo.lemmas != nil {
		t.Errorf("expected a full scan with 2 matches, got %d and lemmas %q", len(matches), repo.lemmas)
	}
}

func TestSentencesSingleDoc(t *testing.T) {
	matches := collect(t, New(testRepo()).WithDocID(1), "gato")
	if len(matches) != 1 || matches[0].DocID != 1 || matches[0].SentenceID != 1 {
		t.Errorf("unexpected matches %+v", matches)
	}

	expr, _ := match.Parse([]string{"gato"})
	_, err := New(testRepo()).WithDocID(9).Sentences(expr, 0, 0, func(*match.SentenceMatch) error { return nil })
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
