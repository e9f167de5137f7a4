package main

import (
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/conllu/edit"
	"github.com/revelaction/conllu/storage/filesystem"
)

func (e *env) editCommand() *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "edit the tokens of a .conllu file interactively",
		ArgsUsage: "<file.conllu>",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return errors.New("usage: edit <file.conllu>")
			}
			path := c.Args().First()

			skipped := 0
			doc, err := filesystem.ReadDoc(path, func(err error) {
				e.logSkipped(path, err)
				skipped++
			})
			if err != nil {
				return err
			}

			// writing back would lose the skipped sentences
			if skipped > 0 {
				return errors.New("the file has sentences that fail to parse, fix them first (see conllu check)")
			}

			return edit.NewHandler(&doc, path, e.ui.Out).Run()
		},
	}
}
