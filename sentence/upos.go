package sentence

// UPOS is one of the universal part of speech tags of Universal
// Dependencies v2.
type UPOS uint8

const (
	ADJ UPOS = iota
	ADP
	ADV
	AUX
	CCONJ
	DET
	INTJ
	NOUN
	NUM
	PART
	PRON
	PROPN
	PUNCT
	SCONJ
	SYM
	VERB
	X
)

var uposNames = [...]string{
	ADJ:   "ADJ",
	ADP:   "ADP",
	ADV:   "ADV",
	AUX:   "AUX",
	CCONJ: "CCONJ",
	DET:   "DET",
	INTJ:  "INTJ",
	NOUN:  "NOUN",
	NUM:   "NUM",
	PART:  "PART",
	PRON:  "PRON",
	PROPN: "PROPN",
	PUNCT: "PUNCT",
	SCONJ: "SCONJ",
	SYM:   "SYM",
	VERB:  "VERB",
	X:     "X",
}

var uposByName = func() map[string]UPOS {
	m := make(map[string]UPOS, len(uposNames))
	for i, name := range uposNames {
		m[name] = UPOS(i)
	}
	return m
}()

// LookupUPOS returns the tag named s. The match is case sensitive.
func LookupUPOS(s string) (UPOS, bool) {
	u, ok := uposByName[s]
	return u, ok
}

// AllUPOS returns the 17 tags in declaration order.
func AllUPOS() []UPOS {
	all := make([]UPOS, len(uposNames))
	for i := range uposNames {
		all[i] = UPOS(i)
	}
	return all
}

func (u UPOS) String() string {
	if int(u) < len(uposNames) {
		return uposNames[u]
	}
	return "UPOS(?)"
}

func (u UPOS) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// Ptr returns a pointer to a copy of u.
func (u UPOS) Ptr() *UPOS {
	return &u
}
