package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/revelaction/conllu/parse"
	sent "github.com/revelaction/conllu/sentence"
	"github.com/revelaction/conllu/storage"
)

// Ext is the extension of the files a DocStore reads.
const Ext = ".conllu"

// LabelsKey is the comment key of the first sentence that holds the
// comma separated labels of a doc:
//
//	# labels = fiction, es
const LabelsKey = "labels"

// DocStore is a read-only repository over a directory of CoNLL-U files. The
// doc id is the position of the file in the sorted directory listing.
type DocStore struct {
	docDir string

	// In-memory cache
	docs   []sent.Doc
	loaded []bool

	// OnError, if set, is called for every sentence that fails to parse.
	// The sentence is skipped.
	OnError func(name string, err error)
}

var _ storage.DocRepository = (*DocStore)(nil)
var _ storage.Preloader = (*DocStore)(nil)

// NewDocStore lists the CoNLL-U files of docDir and reads their labels.
// Sentences are parsed on demand.
func NewDocStore(docDir string) (*DocStore, error) {
	files, err := os.ReadDir(docDir)
	if err != nil {
		return nil, err
	}

	docs := make([]sent.Doc, 0, len(files))

	idx := 0
	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != Ext {
			continue
		}

		labels, err := ReadLabels(filepath.Join(docDir, file.Name()))
		if err != nil {
			return nil, err
		}

		docs = append(docs, sent.Doc{
			Id:     idx,
			Title:  file.Name(),
			Labels: labels,
		})
		idx++
	}

	return &DocStore{
		docDir: docDir,
		docs:   docs,
		loaded: make([]bool, len(docs)),
	}, nil
}

// LoadAll parses all docs into memory.
func (h *DocStore) LoadAll(cb func(current, total int, name string)) error {
	return h.Preload(nil, cb)
}

// Preload parses into memory the docs carrying all labels.
func (h *DocStore) Preload(labels []string, cb func(current, total int, name string)) error {
	var ids []int
	for _, doc := range h.docs {
		if hasLabels(doc, labels) {
			ids = append(ids, doc.Id)
		}
	}

	total := len(ids)
	for i, id := range ids {
		if cb != nil {
			cb(i+1, total, h.docs[id].Title)
		}

		if err := h.load(id); err != nil {
			return err
		}
	}

	return nil
}

func (h *DocStore) load(id int) error {
	if h.loaded[id] {
		return nil
	}

	doc := &h.docs[id] // pointer to modify in place

	var onError func(error)
	if h.OnError != nil {
		onError = func(err error) { h.OnError(doc.Title, err) }
	}

	full, err := ReadDoc(filepath.Join(h.docDir, doc.Title), onError)
	if err != nil {
		return err
	}

	// Title, Id and Labels are already set
	doc.Sentences = full.Sentences
	h.loaded[id] = true
	return nil
}

func (h *DocStore) List(labelMatch string) ([]sent.Doc, error) {
	docs := make([]sent.Doc, 0, len(h.docs))
	for _, doc := range h.docs {
		if labelMatch != "" && !slices.ContainsFunc(doc.Labels, func(l string) bool {
			return strings.Contains(l, labelMatch)
		}) {
			continue
		}

		// Content is not part of the listing
		doc.Sentences = nil
		docs = append(docs, doc)
	}
	return docs, nil
}

func (h *DocStore) Read(id int) (sent.Doc, error) {
	if id < 0 || id >= len(h.docs) {
		return sent.Doc{}, fmt.Errorf("doc id %d: %w", id, storage.ErrNotFound)
	}
	if err := h.load(id); err != nil {
		return sent.Doc{}, err
	}
	return h.docs[id], nil
}

// FindCandidates scans the sentences of the docs in id order. The cursor is
// the 1-based position of the sentence in that scan.
func (h *DocStore) FindCandidates(lemmas []string, labels []string, after storage.Cursor, limit int, onCandidate func(storage.SentenceResult) error) (storage.Cursor, error) {
	var pos storage.Cursor
	found := 0

	for id := range h.docs {
		if !hasLabels(h.docs[id], labels) {
			continue
		}
		if err := h.load(id); err != nil {
			return after, err
		}

		doc := h.docs[id]
		for i, s := range doc.Sentences {
			pos++
			if pos <= after || !hasLemmas(s, lemmas) {
				continue
			}

			err := onCandidate(storage.SentenceResult{
				RowID:      pos,
				DocID:      doc.Id,
				DocTitle:   doc.Title,
				SentenceID: i,
				Sentence:   s,
			})
			if err != nil {
				return pos, err
			}

			found++
			if limit > 0 && found == limit {
				return pos, nil
			}
		}
	}

	return pos, nil
}

func (h *DocStore) Labels(pattern string) ([]string, error) {
	seen := map[string]bool{}
	for _, doc := range h.docs {
		for _, l := range doc.Labels {
			if strings.Contains(l, pattern) {
				seen[l] = true
			}
		}
	}

	labels := make([]string, 0, len(seen))
	for l := range seen {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels, nil
}

func (h *DocStore) Write(doc sent.Doc) error {
	return storage.ErrReadOnly
}

// ReadDoc parses the CoNLL-U file at path. Sentences that fail to parse are
// passed to onError, if not nil, and skipped. Errors reading the file are
// returned.
func ReadDoc(path string, onError func(error)) (sent.Doc, error) {
	f, err := os.Open(path)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	doc := sent.Doc{Title: filepath.Base(path)}

	for s, err := range parse.NewDoc(f).All() {
		if err != nil {
			var se *parse.SentenceError
			if !errors.As(err, &se) {
				return sent.Doc{}, fmt.Errorf("%s: %w", path, err)
			}
			if onError != nil {
				onError(err)
			}
			continue
		}
		doc.Sentences = append(doc.Sentences, s)
	}

	// same rule as ReadLabels
	if len(doc.Sentences) > 0 {
		doc.Labels = Labels(doc.Sentences[0])
	}

	return doc, nil
}

// ReadLabels returns the labels of the CoNLL-U file at path, read from the
// first sentence that parses, as ReadDoc does. The rest of the file is not
// read.
func ReadLabels(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	for s, err := range parse.NewDoc(f).All() {
		if err != nil {
			var se *parse.SentenceError
			if !errors.As(err, &se) {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			continue
		}
		return Labels(s), nil
	}

	return nil, nil
}

// Labels returns the labels written in the comments of s.
func Labels(s sent.Sentence) []string {
	value, ok := s.MetaValue(LabelsKey)
	if !ok {
		return nil
	}

	var labels []string
	for _, l := range strings.Split(value, ",") {
		if l = strings.TrimSpace(l); l != "" {
			labels = append(labels, l)
		}
	}
	return labels
}

func hasLabels(doc sent.Doc, labels []string) bool {
	for _, l := range labels {
		if !slices.Contains(doc.Labels, l) {
			return false
		}
	}
	return true
}

func hasLemmas(s sent.Sentence, lemmas []string) bool {
	for _, lemma := range lemmas {
		if !slices.ContainsFunc(s.Tokens(), func(t sent.Token) bool {
			return t.Lemma != nil && *t.Lemma == lemma
		}) {
			return false
		}
	}
	return true
}
