package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	sent "github.com/revelaction/conllu/sentence"
	"github.com/revelaction/conllu/storage"
)

const fiction = "# labels = fiction, es\n" +
	"# sent_id = 1\n" +
	"1\tVamos\tir\tVERB\t_\t_\t0\troot\t_\t_\n" +
	"\n" +
	"1\tbad\tbad\tNOPE\t_\t_\t0\troot\t_\t_\n" +
	"\n" +
	"1\tmar\tmar\tNOUN\t_\t_\t0\troot\t_\t_\n" +
	"2\ty\ty\tCCONJ\t_\t_\t3\tcc\t_\t_\n" +
	"3\tcielo\tcielo\tNOUN\t_\t_\t1\tconj\t_\t_\n"

const news = "# labels = news\n" +
	"1\tmar\tmar\tNOUN\t_\t_\t0\troot\t_\t_\n"

func writeDocs(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range map[string]string{
		"a.conllu":  fiction,
		"b.conllu":  news,
		"notes.txt": "not a doc",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestDocStoreList(t *testing.T) {
	store, err := NewDocStore(writeDocs(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	docs, _ := store.List("")
	if len(docs) != 2 {
		t.Fatalf("expected 2 docs, got %d", len(docs))
	}
	if docs[0].Title != "a.conllu" || docs[0].Id != 0 || docs[1].Id != 1 {
		t.Errorf("unexpected listing %+v", docs)
	}
	if len(docs[0].Labels) != 2 || docs[0].Labels[1] != "es" {
		t.Errorf("unexpected labels %q", docs[0].Labels)
	}

	docs, _ = store.List("new")
	if len(docs) != 1 || docs[0].Title != "b.conllu" {
		t.Errorf("expected only b.conllu, got %+v", docs)
	}

	labels, _ := store.Labels("")
	if len(labels) != 3 || labels[0] != "es" || labels[2] != "news" {
		t.Errorf("unexpected labels %q", labels)
	}
}

func TestDocStoreReadSkipsBadSentences(t *testing.T) {
	store, err := NewDocStore(writeDocs(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var failed []string
	store.OnError = func(name string, err error) {
		failed = append(failed, name)
	}

	doc, err := store.Read(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Sentences) != 2 {
		t.Fatalf("expected 2 valid sentences, got %d", len(doc.Sentences))
	}
	if len(failed) != 1 || failed[0] != "a.conllu" {
		t.Errorf("expected one failure in a.conllu, got %q", failed)
	}

	// cached after the first read
	if _, err := store.Read(0); err != nil || len(failed) != 1 {
		t.Errorf("expected cached doc, got %v and %d failures", err, len(failed))
	}

	if _, err := store.Read(5); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDocStoreFindCandidates(t *testing.T) {
	store, err := NewDocStore(writeDocs(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var results []storage.SentenceResult
	collect := func(r storage.SentenceResult) error {
		results = append(results, r)
		return nil
	}

	if _, err := store.FindCandidates([]string{"mar"}, nil, 0, 0, collect); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(results))
	}
	if results[0].DocID != 0 || results[0].SentenceID != 1 || results[1].DocTitle != "b.conllu" {
		t.Errorf("unexpected candidates %+v", results)
	}

	// pagination
	results = nil
	cursor, _ := store.FindCandidates([]string{"mar"}, nil, 0, 1, collect)
	if len(results) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(results))
	}
	results = nil
	store.FindCandidates([]string{"mar"}, nil, cursor, 1, collect)
	if len(results) != 1 || results[0].DocTitle != "b.conllu" {
		t.Errorf("expected the second page to hold b.conllu, got %+v", results)
	}

	// labels
	results = nil
	store.FindCandidates([]string{"mar", "cielo"}, []string{"fiction"}, 0, 0, collect)
	if len(results) != 1 || results[0].DocID != 0 {
		t.Errorf("expected one fiction candidate, got %+v", results)
	}
}

func TestDocStoreWriteIsReadOnly(t *testing.T) {
	store, _ := NewDocStore(t.TempDir())
	if err := store.Write(sent.Doc{Title: "new"}); !errors.Is(err, storage.ErrReadOnly) {
		t.Errorf("expected ErrReadOnly, got %v", err)
	}
}

func TestReadDoc(t *testing.T) {
	dir := writeDocs(t)

	n := 0
	doc, err := ReadDoc(filepath.Join(dir, "a.conllu"), func(error) { n++ })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "a.conllu" || len(doc.Sentences) != 2 || n != 1 {
		t.Errorf("unexpected doc %q with %d sentences and %d errors", doc.Title, len(doc.Sentences), n)
	}

	if _, err := ReadDoc(filepath.Join(dir, "missing.conllu"), nil); err == nil {
		t.Errorf("expected error for a missing file")
	}
}

func TestLabelsFromFirstParsedSentence(t *testing.T) {
	dir := t.TempDir()
	content := "# labels = early\n" +
		"1\tbad\tbad\tNOPE\t_\t_\t0\troot\t_\t_\n" +
		"\n" +
		"# labels = late\n" +
		"1\tmar\tmar\tNOUN\t_\t_\t0\troot\t_\t_\n"
	path := filepath.Join(dir, "a.conllu")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	store, err := NewDocStore(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	docs, _ := store.List("")
	if len(docs) != 1 || len(docs[0].Labels) != 1 || docs[0].Labels[0] != "late" {
		t.Errorf("unexpected listing labels %+v", docs)
	}

	doc, err := ReadDoc(path, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Labels) != 1 || doc.Labels[0] != "late" {
		t.Errorf("unexpected doc labels %q", doc.Labels)
	}
}
