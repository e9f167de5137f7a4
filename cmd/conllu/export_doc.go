package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/conllu/render"
	sent "github.com/revelaction/conllu/sentence"
	"github.com/revelaction/conllu/storage/filesystem"
	"github.com/revelaction/conllu/storage/sqlite/zombiezen"
)

func (e *env) exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "write the docs of a SQLite database as .conllu files",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Usage: "source database file", Required: true},
			&cli.StringFlag{Name: "to", Usage: "target directory", Required: true},
		},
		Action: func(c *cli.Context) error {
			from, to := c.String("from"), c.String("to")

			if _, err := os.Stat(from); err != nil {
				return fmt.Errorf("repository not found: %s", from)
			}

			pool, err := e.pool.Open(from)
			if err != nil {
				return err
			}
			src := zombiezen.NewDocStore(pool)

			// Ensure target directory exists
			if err := os.MkdirAll(to, 0o755); err != nil {
				return fmt.Errorf("failed to create target directory: %w", err)
			}

			docs, err := src.List("")
			if err != nil {
				return err
			}

			bar := e.startProgress(len(docs))
			defer bar.stop()

			count := 0
			for _, docMeta := range docs {
				bar.incr(docMeta.Title)

				doc, err := src.Read(docMeta.Id)
				if err != nil {
					return fmt.Errorf("failed to read doc %s (id %d): %w", docMeta.Title, docMeta.Id, err)
				}

				targetPath := filepath.Join(to, exportName(doc.Title))
				if err := writeDoc(targetPath, doc.Sentences); err != nil {
					return fmt.Errorf("failed to write file %s: %w", targetPath, err)
				}
				count++
			}
			bar.stop()

			fmt.Fprintf(e.ui.Out, "Successfully exported %d docs from %s to %s\n", count, from, to)
			return nil
		},
	}
}

// exportName keeps the base name of title and ensures the .conllu
// extension.
func exportName(title string) string {
	name := filepath.Base(title)
	if !strings.HasSuffix(name, filesystem.Ext) {
		name += filesystem.Ext
	}
	return name
}

func writeDoc(path string, sentences []sent.Sentence) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return render.Doc(f, sentences)
}
