package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "conllu: %v\n", err)
}

// env is the state shared by the commands of one run.
type env struct {
	ui   UI
	log  zerolog.Logger
	pool *Pool
}

func newApp(ui UI) *cli.App {
	e := &env{ui: ui, log: zerolog.Nop(), pool: &Pool{}}

	return &cli.App{
		Name:                 "conllu",
		Usage:                "read, check, query and edit CoNLL-U treebanks",
		HideVersion:          true,
		EnableBashCompletion: true,
		Writer:               ui.Out,
		ErrWriter:            ui.Err,

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "one of trace, debug, info, warn, error",
				EnvVars: []string{"CONLLU_LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "do not color the output",
			},
		},

		Before: func(c *cli.Context) error {
			log, err := newLogger(ui.Err, c.String("log-level"))
			if err != nil {
				return err
			}
			e.log = log
			return nil
		},

		After: func(c *cli.Context) error {
			return e.pool.Close()
		},

		// main reports the error, the commands never exit by themselves
		ExitErrHandler: func(*cli.Context, error) {},

		Commands: []*cli.Command{
			e.checkCommand(),
			e.docCommand(),
			e.sentenceCommand(),
			e.jsonCommand(),
			e.statCommand(),
			e.exprCommand(),
			e.importCommand(),
			e.exportCommand(),
			e.labelsCommand(),
			e.editCommand(),
			e.versionCommand(),
		},
	}
}

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	out := zerolog.ConsoleWriter{Out: w, NoColor: !isTerminal(w), TimeFormat: "15:04:05"}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// hasColor reports whether the output of the run should be colored.
func (e *env) hasColor(c *cli.Context) bool {
	return !c.Bool("no-color") && isTerminal(e.ui.Out)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// docPathFlag returns a new flag on each call, cli flags keep parse state.
func docPathFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "doc-path",
		Aliases: []string{"p"},
		Usage:   "directory of .conllu files or SQLite database",
		EnvVars: []string{"CONLLU_DOC_PATH"},
		Value:   ".",
	}
}
