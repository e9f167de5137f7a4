package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/conllu/render"
)

func (e *env) docCommand() *cli.Command {
	return &cli.Command{
		Name:      "doc",
		Usage:     "list the docs, or print the text of the sentences of one doc",
		ArgsUsage: "[docId]",
		Flags: []cli.Flag{
			docPathFlag(),
			&cli.StringFlag{
				Name:  "label",
				Usage: "list only docs with a label containing this string",
			},
			&cli.IntFlag{
				Name:  "start",
				Usage: "first sentence to print",
			},
			&cli.IntFlag{
				Name:    "num",
				Aliases: []string{"n"},
				Usage:   "number of sentences to print, 0 for all",
			},
		},
		Action: func(c *cli.Context) error {
			repo, err := e.NewDocRepository(c.String("doc-path"))
			if err != nil {
				return err
			}

			if c.Args().Len() == 0 {
				docs, err := repo.List(c.String("label"))
				if err != nil {
					return err
				}
				for _, doc := range docs {
					fmt.Fprintf(e.ui.Out, "📖 %d %s %s\n", doc.Id, doc.Title, strings.Join(doc.Labels, ","))
				}
				return nil
			}

			docId, err := strconv.Atoi(c.Args().First())
			if err != nil {
				return fmt.Errorf("invalid doc id %q", c.Args().First())
			}

			doc, err := repo.Read(docId)
			if err != nil {
				return err
			}

			start, num := c.Int("start"), c.Int("num")
			r := render.NewRenderer(e.ui.Out)
			for i, s := range doc.Sentences {
				if i < start {
					continue
				}
				if num > 0 && i >= start+num {
					break
				}

				r.Sentence(s, fmt.Sprintf("✍  %d-%d ", docId, i))
			}

			return nil
		},
	}
}
