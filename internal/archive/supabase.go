// Package archive writes finished rounds to a Supabase table. Rows are only
// ever inserted; a new process starts a new match and never reads them back.
package archive

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	supa "github.com/supabase-community/supabase-go"

	"GO-janken/internal/janken"
)

// RoundRow matches the archive table in Supabase.
type RoundRow struct {
	ID       int64     `json:"id,omitempty"`
	MatchID  string    `json:"match_id"`
	Round    int       `json:"round"`
	Human    string    `json:"human"`
	Opponent string    `json:"opponent"`
	Outcome  string    `json:"outcome"`
	PlayedAt time.Time `json:"played_at"`
}

// inserter is the slice of the Supabase client the archive needs.
type inserter interface {
	Insert(table string, row RoundRow) error
}

type supabaseInserter struct {
	client *supa.Client
}

func (s supabaseInserter) Insert(table string, row RoundRow) error {
	var inserted []RoundRow
	_, err := s.client.From(table).Insert(row, false, "", "", "").ExecuteTo(&inserted)
	return err
}

// Supabase implements janken.Recorder on top of a Supabase table.
type Supabase struct {
	db    inserter
	table string
	now   func() time.Time
}

// NewSupabase connects to the Supabase project at url.
func NewSupabase(url, key, table string) (*Supabase, error) {
	client, err := supa.NewClient(url, key, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Supabase: %w", err)
	}
	return newSupabase(supabaseInserter{client: client}, table), nil
}

func newSupabase(db inserter, table string) *Supabase {
	return &Supabase{db: db, table: table, now: time.Now}
}

// Record inserts one row for r.
func (s *Supabase) Record(ctx context.Context, matchID uuid.UUID, r janken.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	row := RoundRow{
		MatchID:  matchID.String(),
		Round:    r.Round,
		Human:    r.Human.String(),
		Opponent: r.Opponent.String(),
		Outcome:  r.Outcome.String(),
		PlayedAt: s.now().UTC(),
	}
	if err := s.db.Insert(s.table, row); err != nil {
		return fmt.Errorf("archive round %d: %w", r.Round, err)
	}
	return nil
}

var _ janken.Recorder = (*Supabase)(nil)
