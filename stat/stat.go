package stat

import (
	sent "github.com/revelaction/conllu/sentence"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences int
	NumWords     int

	// multi-word tokens such as "1-2"
	NumRanges int

	// empty nodes such as "1.1"
	NumEmptyNodes int

	// sentences dropped because they failed to parse
	NumFailed int

	WordsPerSentenceMean float64
	WordsPerSentenceDis  map[int]int

	UPOS map[sent.UPOS]int
}

func (h *Handler) Get() Stats {
	if h.stats.NumSentences > 0 {
		h.stats.WordsPerSentenceMean = float64(h.stats.NumWords) / float64(h.stats.NumSentences)
	}
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{
		WordsPerSentenceDis: map[int]int{},
		UPOS:                map[sent.UPOS]int{},
	}
	return &Handler{
		stats: stats,
	}
}

// Aggregate adds the sentences of doc. It can be called once per doc to
// accumulate several docs.
func (h *Handler) Aggregate(doc sent.Doc) {
	for _, s := range doc.Sentences {
		h.AddSentence(s)
	}
}

func (h *Handler) AddSentence(s sent.Sentence) {
	h.stats.NumSentences++

	words := 0
	for _, t := range s.Tokens() {
		switch t.Id.Kind {
		case sent.Range:
			h.stats.NumRanges++
			continue
		case sent.Sub:
			h.stats.NumEmptyNodes++
		default:
			words++
		}

		if t.UPOS != nil {
			h.stats.UPOS[*t.UPOS]++
		}
	}

	h.stats.NumWords += words
	h.stats.WordsPerSentenceDis[words]++
}

// AddError counts a sentence that could not be parsed.
func (h *Handler) AddError() {
	h.stats.NumFailed++
}
