package janken

import (
	"fmt"
	"strings"
)

// Record is the log entry for one completed round.
type Record struct {
	Round    int
	Human    Move
	Opponent Move
	Outcome  Outcome
}

// String renders the record the way it is shown to the player and the model.
func (r Record) String() string {
	return fmt.Sprintf("ラウンド %d: あなた: %s vs アシスタント: %s - %s", r.Round, r.Human, r.Opponent, r.Outcome)
}

// History is the ordered, append-only log of a single match.
// Records can only be added through Resolve.
type History struct {
	records []Record
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Len returns the number of completed rounds.
func (h *History) Len() int {
	if h == nil {
		return 0
	}
	return len(h.records)
}

// Records returns a copy of the records in chronological order.
func (h *History) Records() []Record {
	if h == nil {
		return nil
	}
	out := make([]Record, len(h.records))
	copy(out, h.records)
	return out
}

// Last returns the most recent record.
func (h *History) Last() (Record, bool) {
	if h.Len() == 0 {
		return Record{}, false
	}
	return h.records[len(h.records)-1], true
}

// Render returns one line per record, oldest first.
func (h *History) Render() string {
	var b strings.Builder
	for i, r := range h.Records() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(r.String())
	}
	return b.String()
}

func (h *History) append(r Record) {
	h.records = append(h.records, r)
}

// Resolve judges the round and appends its record to history.
// Illegal moves leave history untouched.
func Resolve(human, opponent Move, history *History) (Outcome, error) {
	if history == nil {
		return 0, fmt.Errorf("resolve: nil history")
	}

	outcome, err := Judge(human, opponent)
	if err != nil {
		return 0, fmt.Errorf("resolve round %d: %w", history.Len()+1, err)
	}

	history.append(Record{
		Round:    history.Len() + 1,
		Human:    human,
		Opponent: opponent,
		Outcome:  outcome,
	})
	return outcome, nil
}
