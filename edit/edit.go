package edit

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	prompt "github.com/c-bata/go-prompt"

	"github.com/revelaction/conllu/parse"
	"github.com/revelaction/conllu/render"
	sent "github.com/revelaction/conllu/sentence"
)

var commands = []prompt.Suggest{
	{Text: "show", Description: "show <sent>: print the sentence as a table"},
	{Text: "get", Description: "get <sent> <id>: print a token line"},
	{Text: "set", Description: "set <sent> <id> <field> <value>: change a token field"},
	{Text: "write", Description: "write the doc back to its file"},
	{Text: "quit", Description: "leave the editor"},
}

var fields = []prompt.Suggest{
	{Text: "form"},
	{Text: "lemma"},
	{Text: "upos"},
	{Text: "xpos"},
	{Text: "feats"},
	{Text: "head"},
	{Text: "deprel"},
	{Text: "deps"},
	{Text: "misc"},
}

// Handler edits the tokens of one doc. Sentences are addressed by their
// 0-based position in the doc, tokens by their id.
type Handler struct {
	Doc *sent.Doc

	// Path is the file written by the write command
	Path string

	Out io.Writer

	renderer *render.Renderer
	dirty    bool
}

func NewHandler(doc *sent.Doc, path string, out io.Writer) *Handler {
	return &Handler{
		Doc:      doc,
		Path:     path,
		Out:      out,
		renderer: render.NewRenderer(out),
	}
}

func (h *Handler) Run() error {

	fmt.Fprintf(h.Out, "🔑 %s: %d sentences. Ctrl+L: clear, 🔧 quit\n", h.Doc.Title, len(h.Doc.Sentences))

	// initialize prompt history
	history := []string{}

	for {
		in := prompt.Input("      ✍  ", h.completer(),
			prompt.OptionTitle("conllu edit"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionHistory(history),
		)

		history = append(history, in)

		quit, err := h.Exec(in)
		if err != nil {
			fmt.Fprintf(h.Out, "❌ %s\n", err)
			continue
		}
		if quit {
			return nil
		}
	}
}

// Exec runs one command line. quit is true after the quit command.
func (h *Handler) Exec(in string) (quit bool, err error) {
	args := strings.Fields(in)
	if len(args) == 0 {
		return false, nil
	}

	switch args[0] {
	case "quit":
		if h.dirty {
			fmt.Fprintln(h.Out, "⚠️  unsaved changes dropped")
		}
		return true, nil

	case "show":
		s, err := h.sentence(args, 2)
		if err != nil {
			return false, err
		}
		h.renderer.Sentence(*s, "")
		h.renderer.Table(*s)

	case "get":
		t, err := h.token(args, 3)
		if err != nil {
			return false, err
		}
		fmt.Fprintln(h.Out, render.Token(*t))

	case "set":
		if len(args) < 5 {
			return false, errors.New("usage: set <sent> <id> <field> <value>")
		}
		t, err := h.token(args[:3], 3)
		if err != nil {
			return false, err
		}

		value := strings.Join(args[4:], " ")
		if err := setField(t, args[3], value); err != nil {
			return false, err
		}
		h.dirty = true
		fmt.Fprintln(h.Out, render.Token(*t))

	case "write":
		if err := h.write(); err != nil {
			return false, err
		}
		h.dirty = false
		fmt.Fprintf(h.Out, "💾 %s\n", h.Path)

	default:
		return false, fmt.Errorf("unknown command %q", args[0])
	}

	return false, nil
}

func (h *Handler) sentence(args []string, want int) (*sent.Sentence, error) {
	if len(args) != want {
		return nil, fmt.Errorf("usage: %s", usage(args[0]))
	}

	n, err := strconv.Atoi(args[1])
	if err != nil || n < 0 || n >= len(h.Doc.Sentences) {
		return nil, fmt.Errorf("no sentence %q, the doc has %d", args[1], len(h.Doc.Sentences))
	}

	return &h.Doc.Sentences[n], nil
}

func (h *Handler) token(args []string, want int) (*sent.Token, error) {
	s, err := h.sentence(args, want)
	if err != nil {
		return nil, err
	}

	id, err := parse.ParseTokenID(args[2])
	if err != nil {
		return nil, err
	}

	t := s.TokenMut(id)
	if t == nil {
		return nil, fmt.Errorf("no token %s in sentence %s", id, args[1])
	}
	return t, nil
}

func usage(command string) string {
	for _, c := range commands {
		if c.Text == command {
			return c.Description
		}
	}
	return command
}

// setField validates value with the column parser of field. "_" clears the
// optional fields.
func setField(t *sent.Token, field, value string) error {
	switch field {
	case "form":
		if strings.ContainsAny(value, "\t\n") {
			return errors.New("form can not hold tabs or line breaks")
		}
		t.Form = value
	case "lemma":
		t.Lemma = optional(value)
	case "xpos":
		t.XPOS = optional(value)
	case "deprel":
		t.Deprel = optional(value)
	case "misc":
		t.Misc = optional(value)
	case "upos":
		u, err := parse.ParseUPOS(value)
		if err != nil {
			return err
		}
		t.UPOS = u
	case "feats":
		f, err := parse.ParseFeatures(value)
		if err != nil {
			return err
		}
		t.Features = f
	case "head":
		if value == parse.Absent {
			t.Head = nil
			return nil
		}
		head, err := parse.ParseHead(value)
		if err != nil {
			return err
		}
		t.Head = &head
	case "deps":
		deps, err := parse.ParseDeps(value)
		if err != nil {
			return err
		}
		t.Deps = deps
	case "id":
		return errors.New("the id of a token can not be changed")
	default:
		return fmt.Errorf("unknown field %q", field)
	}

	return nil
}

func optional(value string) *string {
	if value == parse.Absent {
		return nil
	}
	return &value
}

func (h *Handler) write() error {
	if h.Path == "" {
		return errors.New("the doc has no file")
	}

	return replaceFile(h.Path, func(w io.Writer) error {
		return render.Doc(w, h.Doc.Sentences)
	})
}

// replaceFile writes a temporary file next to path and renames it over
// path, so a failed write leaves the original untouched. The mode of an
// existing file is kept.
func replaceFile(path string, write func(io.Writer) error) (err error) {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

func (h *Handler) completer() func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {
		befCursor := in.TextBeforeCursor()

		// Only one character in line
		if befCursor == "" {
			return []prompt.Suggest{}
		}

		args := strings.Split(befCursor, " ")

		switch {
		case len(args) == 1:
			return prompt.FilterHasPrefix(commands, args[0], true)
		case len(args) == 4 && args[0] == "set":
			return prompt.FilterHasPrefix(fields, args[3], true)
		}

		return []prompt.Suggest{}
	}
}
