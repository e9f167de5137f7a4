package render

import (
	"strings"

	sent "github.com/revelaction/conllu/sentence"
)

// Text rebuilds the surface text of s. A multi-word token is written once
// in place of the words it covers, empty nodes are left out and
// SpaceAfter=No in MISC glues a token to the next one.
func Text(s sent.Sentence) string {
	return surface(s.Tokens(), nil)
}

// surface joins the forms of tokens. decorate, if not nil, may wrap the
// form of each written token.
func surface(tokens []sent.Token, decorate func(t sent.Token, form string) string) string {
	var b strings.Builder

	// last word covered by the current multi-word token
	covered := 0
	for _, t := range tokens {
		switch t.Id.Kind {
		case sent.Sub:
			continue
		case sent.Single:
			if t.Id.Start <= covered {
				continue
			}
		case sent.Range:
			covered = t.Id.End
		}

		form := t.Form
		if decorate != nil {
			form = decorate(t, form)
		}
		b.WriteString(form)
		if !NoSpaceAfter(t) {
			b.WriteByte(' ')
		}
	}

	return strings.TrimRight(b.String(), " ")
}

// NoSpaceAfter reports whether the MISC column of t holds SpaceAfter=No.
func NoSpaceAfter(t sent.Token) bool {
	if t.Misc == nil {
		return false
	}
	for _, item := range strings.Split(*t.Misc, "|") {
		if item == "SpaceAfter=No" {
			return true
		}
	}
	return false
}
