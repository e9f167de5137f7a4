package parse

import (
	"strings"

	sent "github.com/revelaction/conllu/sentence"
)

// ParseSentence parses the text of a single sentence. Comment lines go to
// the sentence meta, blank lines are skipped. The first malformed line
// aborts the parse and no partial sentence is returned.
func ParseSentence(text string) (sent.Sentence, error) {
	b := sent.NewBuilder()

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")

		switch {
		case isBlank(line):
			continue
		case isComment(line):
			b.PushMeta(line)
		default:
			token, err := ParseToken(line)
			if err != nil {
				return sent.Sentence{}, atLine(err, i+1)
			}
			b.PushToken(token)
		}
	}

	return b.Build(), nil
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func isComment(line string) bool {
	return strings.HasPrefix(line, "#")
}
