package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

func (e *env) labelsCommand() *cli.Command {
	return &cli.Command{
		Name:      "labels",
		Usage:     "list the labels of the docs",
		ArgsUsage: "[pattern]",
		Flags:     []cli.Flag{docPathFlag()},
		Action: func(c *cli.Context) error {
			repo, err := e.NewDocRepository(c.String("doc-path"))
			if err != nil {
				return err
			}

			labels, err := repo.Labels(c.Args().First())
			if err != nil {
				return err
			}

			if len(labels) > 0 {
				fmt.Fprintln(e.ui.Out, strings.Join(labels, ", "))
			}

			return nil
		},
	}
}
