package sentence

import (
	"encoding/json"
	"testing"
)

func testTokens() []Token {
	return []Token{
		{Id: RangeID(1, 2), Form: "del"},
		{Id: SingleID(1), Form: "de", Lemma: Str("de"), UPOS: ADP.Ptr()},
		{Id: SingleID(2), Form: "el", Lemma: Str("el"), UPOS: DET.Ptr()},
		{Id: SubID(2, 1), Form: "_"},
		{Id: SingleID(3), Form: "mar", Lemma: Str("mar"), UPOS: NOUN.Ptr()},
	}
}

func TestBuilderLookupById(t *testing.T) {
	s := NewBuilder().WithTokens(testTokens()).Build()

	if s.Len() != 5 {
		t.Fatalf("expected 5 tokens, got %d", s.Len())
	}

	for i, tok := range s.Tokens() {
		got, ok := s.Token(tok.Id)
		if !ok {
			t.Fatalf("token %d (%s) not found by id", i, tok.Id)
		}
		if got.Form != tok.Form {
			t.Errorf("id %s: expected form %q, got %q", tok.Id, tok.Form, got.Form)
		}
	}

	if _, ok := s.Token(SingleID(4)); ok {
		t.Errorf("expected no token for id 4")
	}
}

func TestBuilderKindsAreDistinctKeys(t *testing.T) {
	s := NewBuilder().
		PushToken(Token{Id: SingleID(1), Form: "a"}).
		PushToken(Token{Id: SubID(1, 1), Form: "b"}).
		PushToken(Token{Id: RangeID(1, 2), Form: "c"}).
		Build()

	cases := map[TokenID]string{
		SingleID(1):   "a",
		SubID(1, 1):   "b",
		RangeID(1, 2): "c",
	}
	for id, form := range cases {
		tok, ok := s.Token(id)
		if !ok || tok.Form != form {
			t.Errorf("id %v: expected %q, got %q (found %v)", id, form, tok.Form, ok)
		}
	}
}

func TestBuilderDuplicateIdLastWins(t *testing.T) {
	s := NewBuilder().
		PushToken(Token{Id: SingleID(1), Form: "first"}).
		PushToken(Token{Id: SingleID(1), Form: "second"}).
		Build()

	if s.Len() != 2 {
		t.Fatalf("expected both tokens kept, got %d", s.Len())
	}
	tok, _ := s.Token(SingleID(1))
	if tok.Form != "second" {
		t.Errorf("expected index to point to the last token, got %q", tok.Form)
	}
}

func TestBuilderIsEmptyAfterBuild(t *testing.T) {
	b := NewBuilder().PushMeta("# sent_id = 1").PushToken(Token{Id: SingleID(1), Form: "x"})
	if b.Empty() {
		t.Fatalf("expected builder with content")
	}
	first := b.Build()
	if !b.Empty() {
		t.Fatalf("expected empty builder after Build")
	}

	second := b.PushToken(Token{Id: SingleID(1), Form: "y"}).Build()
	if len(second.Meta()) != 0 {
		t.Errorf("expected no meta leaking into the next sentence, got %v", second.Meta())
	}
	if tok, _ := first.Token(SingleID(1)); tok.Form != "x" {
		t.Errorf("expected first sentence untouched, got %q", tok.Form)
	}
}

func TestTokenMut(t *testing.T) {
	s := NewBuilder().WithTokens(testTokens()).Build()

	tok := s.TokenMut(SingleID(3))
	if tok == nil {
		t.Fatalf("expected mutable token")
	}
	tok.Form = "mares"
	tok.Lemma = nil

	got, _ := s.Token(SingleID(3))
	if got.Form != "mares" || got.Lemma != nil {
		t.Errorf("expected edit visible through Token, got %+v", got)
	}

	if s.TokenMut(SingleID(9)) != nil {
		t.Errorf("expected nil for unknown id")
	}
}

func TestTokenIsACopy(t *testing.T) {
	head := SingleID(0)
	s := NewBuilder().PushToken(Token{
		Id:       SingleID(1),
		Form:     "Vamos",
		Lemma:    Str("ir"),
		UPOS:     VERB.Ptr(),
		Features: NewFeatures(Feature{Key: "Case", Value: "Nom"}),
		Head:     &head,
		Deps:     []Dep{{Head: SingleID(0), Rel: "root"}},
		Misc:     Str("SpaceAfter=No"),
	}).Build()

	c, ok := s.Token(SingleID(1))
	if !ok {
		t.Fatalf("expected token 1")
	}
	c.Features.Set("Case", "Acc")
	c.Deps[0].Rel = "changed"
	*c.Lemma = "changed"
	*c.UPOS = NOUN
	c.Head.Start = 7
	*c.Misc = "changed"

	got, _ := s.Token(SingleID(1))
	if v, _ := got.Features.Get("Case"); v != "Nom" {
		t.Errorf("expected Case=Nom in the sentence, got %s", got.Features)
	}
	if got.Deps[0].Rel != "root" {
		t.Errorf("expected deps rel root, got %q", got.Deps[0].Rel)
	}
	if *got.Lemma != "ir" || *got.UPOS != VERB || got.Head.Start != 0 || *got.Misc != "SpaceAfter=No" {
		t.Errorf("the copy changed the sentence: %+v", got)
	}
}

func TestSetFeatureOnAbsentColumn(t *testing.T) {
	tok := Token{Id: SingleID(1), Form: "mar"}
	tok.SetFeature("Number", "Sing")
	tok.SetFeature("Gender", "Masc")

	if got := tok.Features.String(); got != "Number=Sing|Gender=Masc" {
		t.Errorf("unexpected features %q", got)
	}
}

func TestMetaValue(t *testing.T) {
	s := NewBuilder().
		WithMeta([]string{"# sent_id = s1", "# text = del mar", "# no value here"}).
		Build()

	if v, ok := s.MetaValue("text"); !ok || v != "del mar" {
		t.Errorf("expected text 'del mar', got %q (%v)", v, ok)
	}
	if v, ok := s.MetaValue("sent_id"); !ok || v != "s1" {
		t.Errorf("expected sent_id 's1', got %q (%v)", v, ok)
	}
	if _, ok := s.MetaValue("newdoc"); ok {
		t.Errorf("expected no newdoc value")
	}
}

func TestWordsAndAll(t *testing.T) {
	s := NewBuilder().WithTokens(testTokens()).Build()

	if n := len(s.Words()); n != 3 {
		t.Errorf("expected 3 words, got %d", n)
	}

	n := 0
	for tok := range s.All() {
		n++
		if tok.Form == "el" {
			break
		}
	}
	if n != 3 {
		t.Errorf("expected iteration to stop at the third token, got %d", n)
	}
}

func TestTokenIDString(t *testing.T) {
	tests := []struct {
		id   TokenID
		want string
	}{
		{SingleID(8), "8"},
		{SingleID(0), "0"},
		{RangeID(8, 9), "8-9"},
		{SubID(8, 1), "8.1"},
	}
	for _, tt := range tests {
		if got := tt.id.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}

	if !SingleID(0).IsRoot() || SubID(0, 1).IsRoot() {
		t.Errorf("IsRoot mismatch")
	}
	if !RangeID(3, 5).Covers(4) || RangeID(3, 5).Covers(6) || SingleID(4).Covers(4) {
		t.Errorf("Covers mismatch")
	}
}

func TestFeaturesOrderAndDuplicates(t *testing.T) {
	f := NewFeatures(
		Feature{"Case", "Nom"},
		Feature{"Number", "Sing"},
		Feature{"Number", "Plur"},
	)

	if f.Len() != 2 {
		t.Fatalf("expected 2 features, got %d", f.Len())
	}
	if v, _ := f.Get("Number"); v != "Plur" {
		t.Errorf("expected last Number to win, got %q", v)
	}
	if got := f.String(); got != "Case=Nom|Number=Plur" {
		t.Errorf("unexpected String: %q", got)
	}

	var nilFeats *Features
	if nilFeats.String() != "_" || nilFeats.Len() != 0 {
		t.Errorf("expected nil features to be absent")
	}
}

func TestTokenJSON(t *testing.T) {
	tok := Token{
		Id:       SingleID(1),
		Form:     "They",
		UPOS:     PRON.Ptr(),
		Features: NewFeatures(Feature{"Number", "Plur"}, Feature{"Case", "Nom"}),
		Head:     &TokenID{Kind: Single, Start: 2},
		Deps:     []Dep{{Head: SingleID(2), Rel: "nsubj"}},
	}

	data, err := json.Marshal(tok)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"id":"1","form":"They","upos":"PRON","feats":{"Number":"Plur","Case":"Nom"},"head":"2","deps":[{"head":"2","rel":"nsubj"}]}`
	if string(data) != want {
		t.Errorf("unexpected json:\n got %s\nwant %s", data, want)
	}
}

func TestLookupUPOS(t *testing.T) {
	for _, u := range AllUPOS() {
		got, ok := LookupUPOS(u.String())
		if !ok || got != u {
			t.Errorf("round trip failed for %s", u)
		}
	}

	if len(AllUPOS()) != 17 {
		t.Errorf("expected 17 tags, got %d", len(AllUPOS()))
	}

	for _, bad := range []string{"VVERB", "verb", "", "_"} {
		if _, ok := LookupUPOS(bad); ok {
			t.Errorf("expected %q to be unknown", bad)
		}
	}
}
