package parse

import (
	"fmt"
	"strings"

	sent "github.com/revelaction/conllu/sentence"
)

const (
	fieldSeparator = "\t"
	NumFields      = 10
)

// Column positions of a data line.
const (
	colID = iota
	colForm
	colLemma
	colUPOS
	colXPOS
	colFeats
	colHead
	colDeprel
	colDeps
	colMisc
)

// ParseToken parses one data line into a Token. The line must hold exactly
// ten tab separated columns; a trailing line break is ignored.
func ParseToken(line string) (sent.Token, error) {
	line = strings.TrimRight(line, "\r\n")

	record := strings.Split(line, fieldSeparator)
	if len(record) != NumFields {
		return sent.Token{}, &FieldError{
			Kind: ErrFieldCount,
			Err:  fmt.Errorf("got %d, want %d", len(record), NumFields),
		}
	}

	var (
		token sent.Token
		err   error
	)

	token.Id, err = ParseTokenID(record[colID])
	if err != nil {
		return sent.Token{}, err
	}

	token.Form = record[colForm]
	token.Lemma = parseOptional(record[colLemma])

	token.UPOS, err = ParseUPOS(record[colUPOS])
	if err != nil {
		return sent.Token{}, err
	}

	token.XPOS = parseOptional(record[colXPOS])

	token.Features, err = ParseFeatures(record[colFeats])
	if err != nil {
		return sent.Token{}, err
	}

	if record[colHead] != Absent {
		head, err := ParseHead(record[colHead])
		if err != nil {
			return sent.Token{}, err
		}
		token.Head = &head
	}

	token.Deprel = parseOptional(record[colDeprel])

	token.Deps, err = ParseDeps(record[colDeps])
	if err != nil {
		return sent.Token{}, err
	}

	token.Misc = parseOptional(record[colMisc])

	return token, nil
}
