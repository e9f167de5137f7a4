package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/revelaction/conllu/parse"
	"github.com/revelaction/conllu/storage"
	"github.com/revelaction/conllu/storage/filesystem"
	"github.com/revelaction/conllu/storage/sqlite/zombiezen"
	"zombiezen.com/go/sqlite/sqlitex"
)

// Pool opens the SQLite pool once per run.
type Pool struct {
	p *sqlitex.Pool
}

func (p *Pool) Open(path string) (*sqlitex.Pool, error) {
	if p.p != nil {
		return p.p, nil
	}
	pool, err := zombiezen.NewPool(path)
	if err != nil {
		return nil, err
	}
	p.p = pool
	return p.p, nil
}

func (p *Pool) Close() error {
	if p.p != nil {
		err := p.p.Close()
		p.p = nil
		return err
	}
	return nil
}

// NewDocRepository returns a filesystem store when path is a directory and
// a SQLite store otherwise.
func (e *env) NewDocRepository(path string) (storage.DocRepository, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("repository not found: %s", path)
	}

	if info.IsDir() {
		store, err := filesystem.NewDocStore(path)
		if err != nil {
			return nil, err
		}
		store.OnError = e.logSkipped
		return store, nil
	}

	pool, err := e.pool.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewDocStore(pool), nil
}

// logSkipped reports a sentence dropped because it failed to parse.
func (e *env) logSkipped(name string, err error) {
	ev := e.log.Warn().Str("file", name)

	var se *parse.SentenceError
	if errors.As(err, &se) {
		ev = ev.Int("sentence_line", se.Start)
	}
	var fe *parse.FieldError
	if errors.As(err, &fe) {
		ev = ev.Int("line", fe.Line).Str("field", fe.Field)
	}

	ev.Err(err).Msg("skipped sentence")
}
