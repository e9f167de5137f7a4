package parse

import (
	"errors"
	"strings"
	"testing"

	sent "github.com/revelaction/conllu/sentence"
)

const (
	lineThey = "1\tThey\tthey\tPRON\tPRP\tCase=Nom|Number=Plur\t2\tnsubj\t2:nsubj|4:nsubj\t_"
	lineBuy  = "2\tbuy\tbuy\tVERB\tVBP\t_\t0\troot\t0:root\t_"
)

func TestParseTokenSample(t *testing.T) {
	tok, err := ParseToken(lineThey + "\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tok.Id != sent.SingleID(1) {
		t.Errorf("expected id 1, got %v", tok.Id)
	}
	if tok.Form != "They" {
		t.Errorf("expected form They, got %q", tok.Form)
	}
	if tok.Lemma == nil || *tok.Lemma != "they" {
		t.Errorf("expected lemma they, got %v", tok.Lemma)
	}
	if tok.UPOS == nil || *tok.UPOS != sent.PRON {
		t.Errorf("expected upos PRON, got %v", tok.UPOS)
	}
	if tok.XPOS == nil || *tok.XPOS != "PRP" {
		t.Errorf("expected xpos PRP, got %v", tok.XPOS)
	}
	if got := tok.Features.String(); got != "Case=Nom|Number=Plur" {
		t.Errorf("unexpected features %q", got)
	}
	if tok.Head == nil || *tok.Head != sent.SingleID(2) {
		t.Errorf("expected head 2, got %v", tok.Head)
	}
	if tok.Deprel == nil || *tok.Deprel != "nsubj" {
		t.Errorf("expected deprel nsubj, got %v", tok.Deprel)
	}
	if len(tok.Deps) != 2 {
		t.Fatalf("expected 2 deps, got %d", len(tok.Deps))
	}
	if tok.Misc != nil {
		t.Errorf("expected no misc, got %q", *tok.Misc)
	}
}

func TestParseTokenRootHead(t *testing.T) {
	tok, err := ParseToken(lineBuy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Head == nil || !tok.Head.IsRoot() {
		t.Errorf("expected root head, got %v", tok.Head)
	}
	if tok.Features != nil {
		t.Errorf("expected absent features")
	}
	if len(tok.Deps) != 1 || tok.Deps[0] != (sent.Dep{Head: sent.SingleID(0), Rel: "root"}) {
		t.Errorf("unexpected deps %v", tok.Deps)
	}
}

func TestParseTokenAllAbsent(t *testing.T) {
	tok, err := ParseToken("3.1\t_\t_\t_\t_\t_\t_\t_\t_\t_")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tok.Id != sent.SubID(3, 1) {
		t.Errorf("expected id 3.1, got %v", tok.Id)
	}
	// FORM is never absent, the placeholder is kept as the word
	if tok.Form != "_" {
		t.Errorf("expected form _, got %q", tok.Form)
	}
	if tok.Lemma != nil || tok.UPOS != nil || tok.XPOS != nil || tok.Features != nil ||
		tok.Head != nil || tok.Deprel != nil || tok.Deps != nil || tok.Misc != nil {
		t.Errorf("expected every optional field absent, got %+v", tok)
	}
}

func TestParseTokenMultiword(t *testing.T) {
	tok, err := ParseToken("1-2\tdel\t_\t_\t_\t_\t_\t_\t_\tSpaceAfter=No")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Id != sent.RangeID(1, 2) {
		t.Errorf("expected id 1-2, got %v", tok.Id)
	}
	if tok.Misc == nil || *tok.Misc != "SpaceAfter=No" {
		t.Errorf("expected raw misc, got %v", tok.Misc)
	}
}

func TestParseTokenErrors(t *testing.T) {
	nine := strings.Join(strings.Split(lineBuy, "\t")[:9], "\t")

	tests := []struct {
		name string
		line string
		kind error
	}{
		{"nine fields", nine, ErrFieldCount},
		{"eleven fields", lineBuy + "\t_", ErrFieldCount},
		{"spaces instead of tabs", strings.ReplaceAll(lineBuy, "\t", " "), ErrFieldCount},
		{"bad id", strings.Replace(lineBuy, "2", "x", 1), ErrTokenID},
		{"bad range", "5-4" + lineBuy[1:], ErrTokenID},
		{"unknown upos", strings.Replace(lineBuy, "VERB", "VVERB", 1), ErrUPOS},
		{"feature without =", strings.Replace(lineThey, "Case=Nom", "CaseNom", 1), ErrFeature},
		{"dep without :", strings.Replace(lineThey, "4:nsubj", "4nsubj", 1), ErrDeps},
		{"bad dep head", strings.Replace(lineThey, "4:nsubj", "x:nsubj", 1), ErrDeps},
		{"bad head", strings.Replace(lineBuy, "\t0\t", "\tx\t", 1), ErrTokenID},
		{"range head", strings.Replace(lineBuy, "\t0\t", "\t1-2\t", 1), ErrTokenID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.line)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, tt.kind) {
				t.Errorf("expected %v, got %v", tt.kind, err)
			}
		})
	}
}

func TestParseTokenUPOSErrorIsNotFieldCount(t *testing.T) {
	_, err := ParseToken(strings.Replace(lineBuy, "VERB", "VVERB", 1))

	if !errors.Is(err, ErrUPOS) {
		t.Fatalf("expected ErrUPOS, got %v", err)
	}
	if errors.Is(err, ErrFieldCount) {
		t.Errorf("unknown tag must not be reported as a field count error")
	}

	var fe *FieldError
	if !errors.As(err, &fe) || fe.Field != "UPOS" || fe.Value != "VVERB" {
		t.Errorf("unexpected field error %#v", fe)
	}
}
