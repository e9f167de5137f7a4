package main

import (
	"fmt"
	"slices"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/conllu/match"
	"github.com/revelaction/conllu/render"
	"github.com/revelaction/conllu/search"
)

func (e *env) exprCommand() *cli.Command {
	return &cli.Command{
		Name:      "expr",
		Usage:     "print the sentences matching an expression",
		ArgsUsage: "<item>... (lemma:X form:X upos:X deprel:X feat:K=V, bare words are lemmas)",
		Flags: []cli.Flag{
			docPathFlag(),
			&cli.IntFlag{
				Name:  "doc",
				Usage: "search only this doc id",
				Value: -1,
			},
			&cli.StringSliceFlag{
				Name:  "label",
				Usage: "search only docs carrying this label (repeatable)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   render.DefaultFormat,
				Usage:   fmt.Sprintf("one of %v", render.SupportedFormats()),
			},
			&cli.BoolFlag{
				Name:  "no-prefix",
				Usage: "do not prefix the sentences with doc and sentence ids",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the matches as JSON",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "examine at most this many candidate sentences, 0 for all",
			},
		},
		Action: func(c *cli.Context) error {
			expr, err := match.Parse(c.Args().Slice())
			if err != nil {
				return err
			}

			if !slices.Contains(render.SupportedFormats(), c.String("format")) {
				return fmt.Errorf("unknown format %q", c.String("format"))
			}

			repo, err := e.NewDocRepository(c.String("doc-path"))
			if err != nil {
				return err
			}

			s := search.New(repo).WithLabels(c.StringSlice("label"))
			if id := c.Int("doc"); id >= 0 {
				s = s.WithDocID(id)
			}

			var matches []*match.SentenceMatch
			cursor, err := s.Sentences(expr, 0, c.Int("limit"), func(m *match.SentenceMatch) error {
				matches = append(matches, m)
				return nil
			})
			if err != nil {
				return err
			}

			e.log.Debug().Str("expr", expr.String()).Int("matches", len(matches)).Int64("cursor", int64(cursor)).Msg("search done")

			if c.Bool("json") {
				return render.NewJSONRenderer(e.ui.Out).Render(matches)
			}

			r := render.NewRenderer(e.ui.Out)
			r.HasColor = e.hasColor(c)
			r.HasPrefix = !c.Bool("no-prefix")
			r.Format = c.String("format")
			r.Match(matches)

			return nil
		},
	}
}
