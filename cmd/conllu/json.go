package main

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/conllu/parse"
	"github.com/revelaction/conllu/render"
)

func (e *env) jsonCommand() *cli.Command {
	return &cli.Command{
		Name:      "json",
		Usage:     "print a CoNLL-U file as JSON, one sentence per line",
		ArgsUsage: "<file.conllu>",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return errors.New("usage: json <file.conllu>")
			}

			path := c.Args().First()
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			jr := render.NewJSONRenderer(e.ui.Out)
			for s, err := range parse.NewDoc(f).All() {
				if err != nil {
					var se *parse.SentenceError
					if !errors.As(err, &se) {
						return err
					}
					e.logSkipped(path, err)
					continue
				}

				if err := jr.Sentence(s); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// encodeJSON writes v indented, for the commands with a single result.
func encodeJSON(e *env, v any) error {
	enc := json.NewEncoder(e.ui.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
