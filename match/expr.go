package match

import (
	"errors"
	"fmt"
	"strings"

	sent "github.com/revelaction/conllu/sentence"
)

// Field is the token column an Item looks at.
type Field int

const (
	Lemma Field = iota
	Form
	UPOS
	Deprel
	Feat
)

var fieldNames = map[string]Field{
	"lemma":  Lemma,
	"form":   Form,
	"upos":   UPOS,
	"deprel": Deprel,
	"feat":   Feat,
}

func (f Field) String() string {
	for name, field := range fieldNames {
		if field == f {
			return name
		}
	}
	return "unknown"
}

var ErrEmptyExpr = errors.New("empty expression")

// Item is one condition of an Expr.
//
// Values holds the alternatives written with "|": the item is satisfied by
// a token whose column equals any of them. A Negated item is satisfied when
// no token of the sentence matches.
type Item struct {
	Field   Field
	Key     string
	Values  []string
	Negated bool
}

// Expr is a conjunction of items
type Expr []Item

// Parse builds an Expr from command line arguments:
//
//	lemma:comer form:Casa upos:VERB|AUX deprel:nsubj feat:Number=Plur
//
// A bare word is a lemma. A value prefixed with "!" negates the item.
func Parse(args []string) (Expr, error) {
	if len(args) == 0 {
		return nil, ErrEmptyExpr
	}

	expr := make(Expr, 0, len(args))
	for _, arg := range args {
		item, err := parseItem(arg)
		if err != nil {
			return nil, err
		}
		expr = append(expr, item)
	}

	return expr, nil
}

func parseItem(arg string) (Item, error) {
	item := Item{Field: Lemma}

	value := arg
	if name, v, ok := strings.Cut(arg, ":"); ok {
		field, known := fieldNames[name]
		if !known {
			return Item{}, fmt.Errorf("item %q: unknown field %q", arg, name)
		}
		item.Field = field
		value = v
	}

	if strings.HasPrefix(value, "!") {
		item.Negated = true
		value = value[1:]
	}

	if item.Field == Feat {
		key, v, ok := strings.Cut(value, "=")
		if !ok || key == "" {
			return Item{}, fmt.Errorf("item %q: feature must be Key=Value", arg)
		}
		item.Key = key
		value = v
	}

	if value == "" {
		return Item{}, fmt.Errorf("item %q: empty value", arg)
	}

	item.Values = strings.Split(value, "|")

	if item.Field == UPOS {
		for _, v := range item.Values {
			if _, ok := sent.LookupUPOS(v); !ok {
				return Item{}, fmt.Errorf("item %q: unknown UPOS %q", arg, v)
			}
		}
	}

	return item, nil
}

// Lemmas returns the lemmas a matching sentence must contain: the values of
// positive lemma items with a single alternative.
func (e Expr) Lemmas() []string {
	var lemmas []string
	for _, item := range e {
		if item.Field != Lemma || item.Negated || len(item.Values) != 1 {
			continue
		}
		lemmas = append(lemmas, item.Values[0])
	}
	return lemmas
}

func (e Expr) String() string {
	items := make([]string, len(e))
	for i, item := range e {
		items[i] = item.String()
	}
	return strings.Join(items, " ")
}

func (i Item) String() string {
	var b strings.Builder
	b.WriteString(i.Field.String())
	b.WriteByte(':')
	if i.Negated {
		b.WriteByte('!')
	}
	if i.Field == Feat {
		b.WriteString(i.Key)
		b.WriteByte('=')
	}
	b.WriteString(strings.Join(i.Values, "|"))
	return b.String()
}

// Match reports whether the token t satisfies the item, ignoring Negated.
func (i Item) Match(t sent.Token) bool {
	var value string
	switch i.Field {
	case Lemma:
		if t.Lemma == nil {
			return false
		}
		value = *t.Lemma
	case Form:
		value = t.Form
	case UPOS:
		if t.UPOS == nil {
			return false
		}
		value = t.UPOS.String()
	case Deprel:
		if t.Deprel == nil {
			return false
		}
		value = *t.Deprel
	case Feat:
		v, ok := t.Features.Get(i.Key)
		if !ok {
			return false
		}
		value = v
	}

	for _, v := range i.Values {
		if v == value {
			return true
		}
	}
	return false
}
