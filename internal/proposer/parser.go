package proposer

import (
	"strings"

	"GO-janken/internal/janken"
)

// The decoration the model is asked to wrap its answer in.
const (
	choicePrefix = "[choice: "
	choiceSuffix = "]"
)

// ParseChoice extracts a move from a reply of the form "[choice: <move>]".
// Surrounding whitespace is ignored; anything else that is not exactly one
// decorated legal move name reports false.
func ParseChoice(text string) (janken.Move, bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, choicePrefix) || !strings.HasSuffix(text, choiceSuffix) {
		return 0, false
	}
	token := strings.TrimSuffix(strings.TrimPrefix(text, choicePrefix), choiceSuffix)
	return janken.ParseMove(token)
}
