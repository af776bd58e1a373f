// Package handrecord defines the canonical recorded-hand schema, a replay
// decision source that feeds a record back through the engine, and a
// verifier that compares the engine's outcome against the record's declared
// results. All hand-history dialects are expected to be converted into this
// one schema by external tooling; the engine never parses anything else.
package handrecord

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lox/holdem-engine/internal/engine"
	"github.com/lox/holdem-engine/poker"
)

// SchemaVersion is the current canonical record schema version.
const SchemaVersion = 1

var (
	// ErrMalformed wraps all structural problems found while loading a
	// record.
	ErrMalformed = errors.New("malformed hand record")

	// ErrUnmappedActor is returned when an action references an actor
	// that matches no seat number and no player id.
	ErrUnmappedActor = errors.New("actor not mapped to a seat")
)

// Record is the canonical recorded hand.
type Record struct {
	Version  int                     `json:"version,omitempty"`
	Metadata Metadata                `json:"metadata"`
	Seats    []Seat                  `json:"seats"`
	Streets  map[string]StreetRecord `json:"streets"`

	// Declared results, used only for verification, never as input.
	Pots        []int `json:"pots,omitempty"`
	FinalStacks []int `json:"final_stacks,omitempty"`
}

// Metadata identifies the hand and its stakes. Button is optional; when
// absent the verifier infers the dealer from preflop action order.
type Metadata struct {
	HandID     string `json:"hand_id"`
	Variant    string `json:"variant"`
	SmallBlind int    `json:"small_blind"`
	BigBlind   int    `json:"big_blind"`
	Ante       int    `json:"ante,omitempty"`
	MaxPlayers int    `json:"max_players"`
	Button     *int   `json:"button,omitempty"`
}

// Seat is one player's starting state. HoleCards may be omitted for seats
// that folded without showing.
type Seat struct {
	SeatNo        int      `json:"seat_no"`
	PlayerID      string   `json:"player_id"`
	StartingStack int      `json:"starting_stack"`
	HoleCards     []string `json:"hole_cards,omitempty"`
}

// StreetRecord holds one street's community cards and ordered actions.
// Board may be either incremental (the cards dealt on that street) or
// cumulative (the full board so far); the loader normalizes to incremental.
type StreetRecord struct {
	Board   []string       `json:"board,omitempty"`
	Actions []ActionRecord `json:"actions"`
}

// ActionRecord is one recorded action. ActorID may be the seat number (as
// a string) or the player id. Amount is the chips moved; ToAmount is the
// resulting total-for-street for bets and raises.
type ActionRecord struct {
	Order    int    `json:"order"`
	ActorID  string `json:"actor_id"`
	Action   string `json:"action"`
	Amount   int    `json:"amount,omitempty"`
	ToAmount int    `json:"to_amount,omitempty"`
}

// streetOrder lists the street keys in play order.
var streetOrder = []struct {
	key    string
	street engine.Street
}{
	{"preflop", engine.Preflop},
	{"flop", engine.Flop},
	{"turn", engine.Turn},
	{"river", engine.River},
}

// boardSizes maps each street to its incremental and cumulative card counts.
var boardSizes = map[string][2]int{
	"flop":  {3, 3},
	"turn":  {1, 4},
	"river": {1, 5},
}

// Load decodes and validates a canonical record.
func Load(r io.Reader) (*Record, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var rec Record
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := rec.validate(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// LoadFile loads a canonical record from a JSON file.
func LoadFile(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening hand record: %w", err)
	}
	defer f.Close()

	rec, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

func (r *Record) validate() error {
	if r.Version > SchemaVersion {
		return fmt.Errorf("%w: schema version %d not supported", ErrMalformed, r.Version)
	}
	if r.Metadata.SmallBlind <= 0 || r.Metadata.BigBlind <= 0 {
		return fmt.Errorf("%w: blinds %d/%d", ErrMalformed, r.Metadata.SmallBlind, r.Metadata.BigBlind)
	}

	n := len(r.Seats)
	if n < 2 {
		return fmt.Errorf("%w: %d seats", ErrMalformed, n)
	}
	seen := make(map[int]bool, n)
	for _, s := range r.Seats {
		if seen[s.SeatNo] {
			return fmt.Errorf("%w: duplicate seat_no %d", ErrMalformed, s.SeatNo)
		}
		seen[s.SeatNo] = true
		if s.StartingStack <= 0 {
			return fmt.Errorf("%w: seat %d starting_stack %d", ErrMalformed, s.SeatNo, s.StartingStack)
		}
		if s.HoleCards != nil && len(s.HoleCards) != 2 {
			return fmt.Errorf("%w: seat %d has %d hole cards", ErrMalformed, s.SeatNo, len(s.HoleCards))
		}
		if _, err := poker.ParseCards(s.HoleCards); err != nil {
			return fmt.Errorf("%w: seat %d hole cards: %v", ErrMalformed, s.SeatNo, err)
		}
	}
	if r.Metadata.Button != nil && (*r.Metadata.Button < 0 || *r.Metadata.Button >= n) {
		return fmt.Errorf("%w: button %d out of range", ErrMalformed, *r.Metadata.Button)
	}

	if len(r.Streets) == 0 {
		return fmt.Errorf("%w: no streets", ErrMalformed)
	}
	for key, street := range r.Streets {
		if _, ok := boardSizes[key]; !ok && key != "preflop" {
			return fmt.Errorf("%w: unknown street %q", ErrMalformed, key)
		}
		if _, err := street.board(key); err != nil {
			return err
		}
	}

	pre, ok := r.Streets["preflop"]
	if !ok || len(pre.Actions) == 0 {
		return fmt.Errorf("%w: empty preflop action list", ErrMalformed)
	}

	if r.FinalStacks != nil && len(r.FinalStacks) != n {
		return fmt.Errorf("%w: %d final stacks for %d seats", ErrMalformed, len(r.FinalStacks), n)
	}
	return nil
}

// board returns the street's incremental board cards, accepting either the
// incremental or cumulative form in the record.
func (s StreetRecord) board(key string) ([]poker.Card, error) {
	sizes, ok := boardSizes[key]
	if !ok {
		return nil, nil
	}
	cards, err := poker.ParseCards(s.Board)
	if err != nil {
		return nil, fmt.Errorf("%w: %s board: %v", ErrMalformed, key, err)
	}
	switch len(cards) {
	case 0:
		return nil, nil
	case sizes[0]:
		return cards, nil
	case sizes[1]:
		return cards[sizes[1]-sizes[0]:], nil
	default:
		return nil, fmt.Errorf("%w: %s board has %d cards", ErrMalformed, key, len(cards))
	}
}
