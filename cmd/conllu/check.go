package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/conllu/parse"
)

func (e *env) checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "parse files and report the sentences that fail",
		ArgsUsage: "<file.conllu>...",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "max-line-size",
				Usage: "longest accepted line in bytes",
				Value: parse.DefaultMaxLineSize,
			},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() == 0 {
				return errors.New("no file given")
			}

			failed := 0
			for _, path := range c.Args().Slice() {
				n, err := e.checkFile(path, c.Int("max-line-size"))
				if err != nil {
					return err
				}
				failed += n
			}

			if failed > 0 {
				return fmt.Errorf("%d sentences failed to parse", failed)
			}
			return nil
		},
	}
}

// checkFile prints one line per failed sentence and a summary. It returns
// the number of failed sentences.
func (e *env) checkFile(path string, maxLineSize int) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var valid, failed, tokens int
	for s, err := range parse.NewDoc(f, parse.WithMaxLineSize(maxLineSize)).All() {
		if err != nil {
			var se *parse.SentenceError
			if !errors.As(err, &se) {
				return failed, fmt.Errorf("%s: %w", path, err)
			}
			failed++
			fmt.Fprintf(e.ui.Out, "❌ %s: %v\n", path, err)
			continue
		}
		valid++
		tokens += s.Len()
	}

	e.log.Debug().Str("file", path).Int("sentences", valid).Int("tokens", tokens).Msg("checked")

	mark := "✅"
	if failed > 0 {
		mark = "❌"
	}
	fmt.Fprintf(e.ui.Out, "%s %s: %d sentences, %d tokens, %d failed\n", mark, path, valid, tokens, failed)
	return failed, nil
}
