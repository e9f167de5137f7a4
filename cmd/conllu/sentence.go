package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/conllu/render"
	sent "github.com/revelaction/conllu/sentence"
	"github.com/revelaction/conllu/storage"
)

func (e *env) sentenceCommand() *cli.Command {
	return &cli.Command{
		Name:      "sentence",
		Usage:     "print the tokens of one sentence as a table",
		ArgsUsage: "<docId> <sentId>",
		Flags:     []cli.Flag{docPathFlag()},
		Action: func(c *cli.Context) error {
			repo, err := e.NewDocRepository(c.String("doc-path"))
			if err != nil {
				return err
			}

			docId, sentId, s, err := readSentence(repo, c.Args().Slice())
			if err != nil {
				return err
			}

			r := render.NewRenderer(e.ui.Out)
			r.HasColor = e.hasColor(c)
			r.Sentence(s, fmt.Sprintf("✍  %d-%d ", docId, sentId))
			fmt.Fprintln(e.ui.Out)
			r.Table(s)

			return nil
		},
	}
}

// readSentence reads the sentence addressed by the "<docId> <sentId>"
// arguments.
func readSentence(repo storage.DocReader, args []string) (int, int, sent.Sentence, error) {
	if len(args) != 2 {
		return 0, 0, sent.Sentence{}, errors.New("usage: <docId> <sentId>")
	}

	docId, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, sent.Sentence{}, fmt.Errorf("invalid doc id %q", args[0])
	}
	sentId, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, sent.Sentence{}, fmt.Errorf("invalid sentence id %q", args[1])
	}

	doc, err := repo.Read(docId)
	if err != nil {
		return 0, 0, sent.Sentence{}, err
	}

	if sentId < 0 || sentId >= len(doc.Sentences) {
		return 0, 0, sent.Sentence{}, fmt.Errorf("sentence index %d out of bounds (doc has %d sentences)", sentId, len(doc.Sentences))
	}

	return docId, sentId, doc.Sentences[sentId], nil
}
