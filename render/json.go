package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/conllu/match"
	sent "github.com/revelaction/conllu/sentence"
)

// JSONRenderer writes sentences and SentenceMatch results as JSON to a
// writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes sentence match results as a JSON array.
func (r *JSONRenderer) Render(results []*match.SentenceMatch) error {
	if results == nil {
		results = []*match.SentenceMatch{}
	}
	return json.NewEncoder(r.W).Encode(results)
}

// Sentence writes s as one JSON object followed by a newline.
func (r *JSONRenderer) Sentence(s sent.Sentence) error {
	return json.NewEncoder(r.W).Encode(s)
}
