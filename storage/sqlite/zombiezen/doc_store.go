package zombiezen

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/revelaction/conllu/parse"
	"github.com/revelaction/conllu/render"
	sent "github.com/revelaction/conllu/sentence"
	"github.com/revelaction/conllu/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// DocStore keeps docs in SQLite. Sentences are stored as CoNLL-U text and
// their lemmas in an index table used by FindCandidates.
type DocStore struct {
	pool *sqlitex.Pool
}

var _ storage.DocRepository = (*DocStore)(nil)

func NewDocStore(pool *sqlitex.Pool) *DocStore {
	return &DocStore{pool: pool}
}

func (h *DocStore) List(labelMatch string) ([]sent.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var docs []sent.Doc
	err = sqlitex.Execute(conn, "SELECT id, title, labels FROM docs ORDER BY id", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			doc := sent.Doc{
				Id:     stmt.ColumnInt(0),
				Title:  stmt.ColumnText(1),
				Labels: splitLabels(stmt.ColumnText(2)),
			}

			if labelMatch != "" && !slices.ContainsFunc(doc.Labels, func(l string) bool {
				return strings.Contains(l, labelMatch)
			}) {
				return nil
			}

			docs = append(docs, doc)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (h *DocStore) Read(id int) (sent.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return sent.Doc{}, err
	}
	defer h.pool.Put(conn)

	doc := sent.Doc{Id: id}
	found := false

	err = sqlitex.Execute(conn, "SELECT title, labels FROM docs WHERE id = ?", &sqlitex.ExecOptions{
		Args: []any{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			doc.Title = stmt.ColumnText(0)
			doc.Labels = splitLabels(stmt.ColumnText(1))
			return nil
		},
	})
	if err != nil {
		return sent.Doc{}, err
	}
	if !found {
		return sent.Doc{}, fmt.Errorf("doc id %d: %w", id, storage.ErrNotFound)
	}

	err = sqlitex.Execute(conn, "SELECT data FROM sentences WHERE doc_id = ? ORDER BY position", &sqlitex.ExecOptions{
		Args: []any{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			s, err := parse.ParseSentence(stmt.ColumnText(0))
			if err != nil {
				return fmt.Errorf("doc %d: stored sentence %d: %w", id, len(doc.Sentences), err)
			}
			doc.Sentences = append(doc.Sentences, s)
			return nil
		},
	})
	if err != nil {
		return sent.Doc{}, err
	}

	return doc, nil
}

// FindCandidates selects in one query the sentences containing every lemma
// of docs carrying every label. The cursor is the sentence row id.
func (h *DocStore) FindCandidates(lemmas []string, labels []string, after storage.Cursor, limit int, onCandidate func(storage.SentenceResult) error) (storage.Cursor, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return after, err
	}
	defer h.pool.Put(conn)

	var query strings.Builder
	args := []any{after}

	query.WriteString("SELECT s.id, s.doc_id, d.title, s.position, s.data FROM sentences s JOIN docs d ON d.id = s.doc_id WHERE s.id > ?")
	for _, lemma := range lemmas {
		query.WriteString(" AND s.id IN (SELECT sentence_rowid FROM sentence_lemmas WHERE lemma = ?)")
		args = append(args, lemma)
	}
	// exact, case sensitive label match
	for _, label := range labels {
		query.WriteString(" AND instr(',' || d.labels || ',', ?) > 0")
		args = append(args, ","+label+",")
	}

	// a negative LIMIT is no limit in SQLite
	if limit <= 0 {
		limit = -1
	}
	query.WriteString(" ORDER BY s.id LIMIT ?")
	args = append(args, limit)

	cursor := after
	err = sqlitex.Execute(conn, query.String(), &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			res := storage.SentenceResult{
				RowID:      storage.Cursor(stmt.ColumnInt64(0)),
				DocID:      stmt.ColumnInt(1),
				DocTitle:   stmt.ColumnText(2),
				SentenceID: stmt.ColumnInt(3),
			}

			s, err := parse.ParseSentence(stmt.ColumnText(4))
			if err != nil {
				return fmt.Errorf("stored sentence %d: %w", res.RowID, err)
			}
			res.Sentence = s

			cursor = res.RowID
			return onCandidate(res)
		},
	})
	if err != nil {
		return cursor, err
	}

	return cursor, nil
}

func (h *DocStore) Labels(pattern string) ([]string, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	seen := map[string]bool{}
	err = sqlitex.Execute(conn, "SELECT labels FROM docs", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			for _, l := range splitLabels(stmt.ColumnText(0)) {
				if strings.Contains(l, pattern) {
					seen[l] = true
				}
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	labels := make([]string, 0, len(seen))
	for l := range seen {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels, nil
}

// Write inserts doc as a new doc with its sentences and lemma index, all in
// one savepoint. The Id of doc is ignored.
func (h *DocStore) Write(doc sent.Doc) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn, "INSERT INTO docs (title, labels) VALUES (?, ?)", &sqlitex.ExecOptions{
		Args: []any{doc.Title, strings.Join(doc.Labels, ",")},
	})
	if err != nil {
		return fmt.Errorf("failed to insert doc: %w", err)
	}
	docID := conn.LastInsertRowID()

	for i, s := range doc.Sentences {
		err = sqlitex.Execute(conn, "INSERT INTO sentences (doc_id, position, data) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
			Args: []any{docID, i, render.SentenceString(s)},
		})
		if err != nil {
			return fmt.Errorf("failed to insert sentence: %w", err)
		}
		sentRowID := conn.LastInsertRowID()

		for _, lemma := range uniqueLemmas(s) {
			err = sqlitex.Execute(conn, "INSERT INTO sentence_lemmas (lemma, sentence_rowid) VALUES (?, ?)", &sqlitex.ExecOptions{
				Args: []any{lemma, sentRowID},
			})
			if err != nil {
				return fmt.Errorf("failed to insert lemma: %w", err)
			}
		}
	}

	return nil
}

func uniqueLemmas(s sent.Sentence) []string {
	seen := map[string]bool{}
	var lemmas []string
	for _, t := range s.Tokens() {
		if t.Lemma == nil || seen[*t.Lemma] {
			continue
		}
		seen[*t.Lemma] = true
		lemmas = append(lemmas, *t.Lemma)
	}
	return lemmas
}

func splitLabels(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
