package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/conllu/storage/filesystem"
	"github.com/revelaction/conllu/storage/sqlite/zombiezen"
)

func (e *env) importCommand() *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "copy a directory of .conllu files into a SQLite database",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Usage: "source directory", Required: true},
			&cli.StringFlag{Name: "to", Usage: "target database file", Required: true},
			&cli.StringSliceFlag{Name: "label", Usage: "import only docs carrying this label (repeatable)"},
		},
		Action: func(c *cli.Context) error {
			from, to := c.String("from"), c.String("to")

			src, err := filesystem.NewDocStore(from)
			if err != nil {
				return err
			}
			src.OnError = e.logSkipped

			pool, err := e.pool.Open(to)
			if err != nil {
				return err
			}

			if err := zombiezen.CreateDocTables(c.Context, pool); err != nil {
				return fmt.Errorf("failed to create docs table: %w", err)
			}
			dst := zombiezen.NewDocStore(pool)

			fmt.Fprintf(e.ui.Out, "Reading docs from %s...\n", from)
			docs, err := src.List("")
			if err != nil {
				return err
			}

			labels := c.StringSlice("label")
			bar := e.startProgress(len(docs))
			defer bar.stop()

			count := 0
			for _, docMeta := range docs {
				bar.incr(docMeta.Title)
				if !hasAllLabels(docMeta.Labels, labels) {
					continue
				}

				doc, err := src.Read(docMeta.Id)
				if err != nil {
					return fmt.Errorf("failed to read doc %s: %w", docMeta.Title, err)
				}

				if err := dst.Write(doc); err != nil {
					return fmt.Errorf("failed to write doc %s: %w", docMeta.Title, err)
				}
				e.log.Debug().Str("doc", doc.Title).Int("sentences", len(doc.Sentences)).Msg("imported")
				count++
			}
			bar.stop()

			if count == 0 && len(docs) > 0 {
				return errors.New("no doc carries the given labels")
			}

			fmt.Fprintf(e.ui.Out, "Successfully imported %d docs from %s to %s\n", count, from, to)
			return nil
		},
	}
}

func hasAllLabels(docLabels, want []string) bool {
	for _, l := range want {
		if !slices.Contains(docLabels, l) {
			return false
		}
	}
	return true
}

// progress is a uiprogress bar shown only when stderr is a terminal.
type progress struct {
	p   *uiprogress.Progress
	bar *uiprogress.Bar

	name string
}

func (e *env) startProgress(total int) *progress {
	pr := &progress{}
	if !isTerminal(e.ui.Err) || total == 0 {
		return pr
	}

	pr.p = uiprogress.New()
	pr.p.SetOut(e.ui.Err)
	pr.bar = pr.p.AddBar(total)
	pr.bar.AppendCompleted()
	pr.bar.PrependElapsed()
	// Append Doc name to the progress bar
	pr.bar.AppendFunc(func(b *uiprogress.Bar) string {
		return pr.name
	})
	pr.p.Start()
	return pr
}

func (pr *progress) incr(name string) {
	if pr.bar == nil {
		return
	}
	pr.name = name
	pr.bar.Incr()
}

func (pr *progress) stop() {
	if pr.p == nil {
		return
	}
	pr.p.Stop()
	pr.p = nil
	pr.bar = nil
}
