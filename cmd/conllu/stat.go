package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/urfave/cli/v2"

	sent "github.com/revelaction/conllu/sentence"
	"github.com/revelaction/conllu/stat"
	"github.com/revelaction/conllu/storage"
	"github.com/revelaction/conllu/storage/filesystem"
)

func (e *env) statCommand() *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "count sentences, words and tags of one doc or all docs",
		ArgsUsage: "[docId]",
		Flags: []cli.Flag{
			docPathFlag(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the statistics as JSON",
			},
		},
		Action: func(c *cli.Context) error {
			repo, err := e.NewDocRepository(c.String("doc-path"))
			if err != nil {
				return err
			}

			hdl := stat.NewHandler()

			// count the sentences the filesystem store drops
			if fs, ok := repo.(*filesystem.DocStore); ok {
				fs.OnError = func(name string, err error) {
					e.logSkipped(name, err)
					hdl.AddError()
				}
			}

			var ids []int
			if c.Args().Len() > 0 {
				docId, err := strconv.Atoi(c.Args().First())
				if err != nil {
					return fmt.Errorf("invalid doc id %q", c.Args().First())
				}
				ids = append(ids, docId)
			} else {
				docs, err := repo.List("")
				if err != nil {
					return err
				}
				for _, d := range docs {
					ids = append(ids, d.Id)
				}

				if p, ok := repo.(storage.Preloader); ok {
					var bar *progress
					err := p.Preload(nil, func(current, total int, name string) {
						if bar == nil {
							bar = e.startProgress(total)
						}
						bar.incr(name)
					})
					if bar != nil {
						bar.stop()
					}
					if err != nil {
						return err
					}
				}
			}

			for _, id := range ids {
				doc, err := repo.Read(id)
				if err != nil {
					return err
				}
				hdl.Aggregate(doc)
			}

			stats := hdl.Get()
			if c.Bool("json") {
				return encodeJSON(e, stats)
			}

			printStats(e.ui, stats)
			return nil
		},
	}
}

func printStats(ui UI, stats stat.Stats) {
	fmt.Fprintf(ui.Out, "Num sentences %d, num words %d, words per sentence %.2f\n", stats.NumSentences, stats.NumWords, stats.WordsPerSentenceMean)
	fmt.Fprintf(ui.Out, "Multi-word tokens %d, empty nodes %d, failed sentences %d\n", stats.NumRanges, stats.NumEmptyNodes, stats.NumFailed)

	for _, u := range sent.AllUPOS() {
		if n := stats.UPOS[u]; n > 0 {
			fmt.Fprintf(ui.Out, "%8s %d\n", u, n)
		}
	}

	lengths := make([]int, 0, len(stats.WordsPerSentenceDis))
	for l := range stats.WordsPerSentenceDis {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)
	for _, l := range lengths {
		fmt.Fprintf(ui.Out, "%4d words: %d\n", l, stats.WordsPerSentenceDis[l])
	}
}
