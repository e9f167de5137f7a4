package parse

import (
	"strings"

	sent "github.com/revelaction/conllu/sentence"
)

const (
	// Absent is the placeholder of an empty column.
	Absent = "_"

	featuresSeparator = "|"
	featureSeparator  = "="
	depsSeparator     = "|"
	depSeparator      = ":"
)

// parseOptional maps the placeholder to nil.
func parseOptional(s string) *string {
	if s == Absent {
		return nil
	}
	return &s
}

// ParseUPOS parses the UPOS column against the closed tag set.
func ParseUPOS(s string) (*sent.UPOS, error) {
	if s == Absent {
		return nil, nil
	}

	u, ok := sent.LookupUPOS(s)
	if !ok {
		return nil, &FieldError{Kind: ErrUPOS, Field: "UPOS", Value: s}
	}
	return &u, nil
}

// ParseFeatures parses the FEATS column, "Case=Nom|Number=Plur". Each pair
// splits on its first "="; a later duplicate key replaces the earlier one.
func ParseFeatures(s string) (*sent.Features, error) {
	if s == Absent {
		return nil, nil
	}

	feats := &sent.Features{}
	for _, pair := range strings.Split(s, featuresSeparator) {
		key, value, ok := strings.Cut(pair, featureSeparator)
		if !ok {
			return nil, &FieldError{Kind: ErrFeature, Field: "FEATS", Value: pair}
		}
		feats.Set(key, value)
	}
	return feats, nil
}

// ParseDeps parses the DEPS column, "2:nsubj|4:nsubj". Each edge splits on
// its first ":", the rest is the relation and may hold more colons.
func ParseDeps(s string) ([]sent.Dep, error) {
	if s == Absent {
		return nil, nil
	}

	descriptors := strings.Split(s, depsSeparator)
	deps := make([]sent.Dep, 0, len(descriptors))
	for _, desc := range descriptors {
		head, rel, ok := strings.Cut(desc, depSeparator)
		if !ok {
			return nil, &FieldError{Kind: ErrDeps, Field: "DEPS", Value: desc}
		}

		id, err := ParseHead(head)
		if err != nil {
			return nil, &FieldError{Kind: ErrDeps, Field: "DEPS", Value: desc, Err: err}
		}
		deps = append(deps, sent.Dep{Head: id, Rel: rel})
	}
	return deps, nil
}
