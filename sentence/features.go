package sentence

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Feature is a single Key=Value pair of the FEATS column.
type Feature struct {
	Key   string
	Value string
}

// Features is an ordered set of morphological features. Keys are unique and
// case sensitive; iteration follows declaration order so that a parsed
// column is written back unchanged.
type Features struct {
	pairs []Feature
}

// NewFeatures builds a Features from pairs, applying Set to each in order.
func NewFeatures(pairs ...Feature) *Features {
	f := &Features{}
	for _, p := range pairs {
		f.Set(p.Key, p.Value)
	}
	return f
}

// Set adds key=value. An existing key is dropped first, so the last
// occurrence wins and takes the last position.
//
// Set needs a non nil receiver; Token.SetFeature allocates the column when
// it is absent.
func (f *Features) Set(key, value string) {
	f.Delete(key)
	f.pairs = append(f.pairs, Feature{Key: key, Value: value})
}

// Delete removes key if present.
func (f *Features) Delete(key string) {
	if f == nil {
		return
	}
	for i, p := range f.pairs {
		if p.Key == key {
			f.pairs = append(f.pairs[:i], f.pairs[i+1:]...)
			return
		}
	}
}

func (f *Features) Get(key string) (string, bool) {
	if f == nil {
		return "", false
	}
	for _, p := range f.pairs {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

func (f *Features) Len() int {
	if f == nil {
		return 0
	}
	return len(f.pairs)
}

// Pairs returns a copy of the features in declaration order.
func (f *Features) Pairs() []Feature {
	if f == nil {
		return nil
	}
	return append([]Feature(nil), f.pairs...)
}

func (f *Features) Keys() []string {
	if f == nil {
		return nil
	}
	keys := make([]string, len(f.pairs))
	for i, p := range f.pairs {
		keys[i] = p.Key
	}
	return keys
}

// String returns the FEATS column value, "Case=Nom|Number=Plur".
func (f *Features) String() string {
	if f.Len() == 0 {
		return "_"
	}
	var b strings.Builder
	for i, p := range f.pairs {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(p.Value)
	}
	return b.String()
}

// MarshalJSON writes the features as a JSON object keeping declaration
// order.
func (f *Features) MarshalJSON() ([]byte, error) {
	if f == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range f.pairs {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(p.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(p.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
