package storage

import (
	"errors"

	sent "github.com/revelaction/conllu/sentence"
)

var (
	ErrNotFound = errors.New("doc not found")
	ErrReadOnly = errors.New("read-only storage")
)

// Cursor marks the position of a FindCandidates scan. Its meaning is
// private to each store.
type Cursor int64

// SentenceResult is a candidate sentence returned by FindCandidates.
type SentenceResult struct {
	RowID Cursor

	DocID    int
	DocTitle string

	// SentenceID is the 0-based position of the sentence inside its doc.
	SentenceID int

	Sentence sent.Sentence
}

// DocReader reads docs and candidate sentences.
type DocReader interface {
	// List returns Id, Title and Labels of the docs, without sentences.
	// A non empty labelMatch keeps the docs with a label containing it.
	List(labelMatch string) ([]sent.Doc, error)

	// Read returns the doc with its sentences, or ErrNotFound.
	Read(id int) (sent.Doc, error)

	// FindCandidates returns sentence candidates containing ALL given lemmas
	// of documents carrying ALL labels, resuming after the given cursor. It
	// calls onCandidate for each result.
	// Returns the new cursor and any error. A zero limit means no limit.
	FindCandidates(lemmas []string, labels []string, after Cursor, limit int, onCandidate func(SentenceResult) error) (Cursor, error)

	// Labels returns the distinct labels containing pattern, sorted.
	Labels(pattern string) ([]string, error)
}

// DocWriter stores docs.
type DocWriter interface {
	// Write stores doc as a new doc.
	Write(doc sent.Doc) error
}

// DocRepository is a readable and writable store.
type DocRepository interface {
	DocReader
	DocWriter
}

// Preloader is implemented by stores that parse docs into memory. cb is
// called before each doc is loaded.
type Preloader interface {
	Preload(labels []string, cb func(current, total int, name string)) error
}
