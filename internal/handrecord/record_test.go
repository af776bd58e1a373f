package handrecord

import (
	"errors"
	"strings"
	"testing"
)

const validRecordJSON = `{
	"version": 1,
	"metadata": {
		"hand_id": "rec-1",
		"variant": "NT",
		"small_blind": 5,
		"big_blind": 10,
		"max_players": 2
	},
	"seats": [
		{"seat_no": 0, "player_id": "hero", "starting_stack": 1000, "hole_cards": ["Ac", "Ad"]},
		{"seat_no": 1, "player_id": "villain", "starting_stack": 1000, "hole_cards": ["Kc", "Kh"]}
	],
	"streets": {
		"preflop": {"actions": [
			{"order": 1, "actor_id": "0", "action": "call", "amount": 5},
			{"order": 2, "actor_id": "1", "action": "check"}
		]},
		"flop": {"board": ["Ah", "Kd", "7c"], "actions": [
			{"order": 3, "actor_id": "1", "action": "check"},
			{"order": 4, "actor_id": "0", "action": "check"}
		]}
	},
	"pots": [20],
	"final_stacks": [1010, 990]
}`

func TestLoadValidRecord(t *testing.T) {
	t.Parallel()

	rec, err := Load(strings.NewReader(validRecordJSON))
	if err != nil {
		t.Fatal(err)
	}
	if rec.Metadata.HandID != "rec-1" {
		t.Errorf("hand id = %q", rec.Metadata.HandID)
	}
	if len(rec.Seats) != 2 || rec.Seats[1].PlayerID != "villain" {
		t.Errorf("seats = %+v", rec.Seats)
	}
	if len(rec.Streets["preflop"].Actions) != 2 {
		t.Errorf("preflop actions = %+v", rec.Streets["preflop"].Actions)
	}
}

func TestLoadRejectsMalformedRecords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		json string
	}{
		{"unknown field", `{"metadata": {"small_blind": 5, "big_blind": 10}, "bogus": 1}`},
		{"future schema version", `{"version": 99, "metadata": {"small_blind": 5, "big_blind": 10},
			"seats": [{"seat_no": 0, "starting_stack": 100}, {"seat_no": 1, "starting_stack": 100}],
			"streets": {"preflop": {"actions": [{"order": 1, "actor_id": "0", "action": "fold"}]}}}`},
		{"missing blinds", `{"metadata": {},
			"seats": [{"seat_no": 0, "starting_stack": 100}, {"seat_no": 1, "starting_stack": 100}],
			"streets": {"preflop": {"actions": [{"order": 1, "actor_id": "0", "action": "fold"}]}}}`},
		{"one seat", `{"metadata": {"small_blind": 5, "big_blind": 10},
			"seats": [{"seat_no": 0, "starting_stack": 100}],
			"streets": {"preflop": {"actions": [{"order": 1, "actor_id": "0", "action": "fold"}]}}}`},
		{"duplicate seat_no", `{"metadata": {"small_blind": 5, "big_blind": 10},
			"seats": [{"seat_no": 0, "starting_stack": 100}, {"seat_no": 0, "starting_stack": 100}],
			"streets": {"preflop": {"actions": [{"order": 1, "actor_id": "0", "action": "fold"}]}}}`},
		{"zero stack", `{"metadata": {"small_blind": 5, "big_blind": 10},
			"seats": [{"seat_no": 0, "starting_stack": 0}, {"seat_no": 1, "starting_stack": 100}],
			"streets": {"preflop": {"actions": [{"order": 1, "actor_id": "0", "action": "fold"}]}}}`},
		{"one hole card", `{"metadata": {"small_blind": 5, "big_blind": 10},
			"seats": [{"seat_no": 0, "starting_stack": 100, "hole_cards": ["Ac"]}, {"seat_no": 1, "starting_stack": 100}],
			"streets": {"preflop": {"actions": [{"order": 1, "actor_id": "0", "action": "fold"}]}}}`},
		{"unknown street", `{"metadata": {"small_blind": 5, "big_blind": 10},
			"seats": [{"seat_no": 0, "starting_stack": 100}, {"seat_no": 1, "starting_stack": 100}],
			"streets": {"preflop": {"actions": [{"order": 1, "actor_id": "0", "action": "fold"}]},
				"fourth": {"actions": []}}}`},
		{"empty preflop", `{"metadata": {"small_blind": 5, "big_blind": 10},
			"seats": [{"seat_no": 0, "starting_stack": 100}, {"seat_no": 1, "starting_stack": 100}],
			"streets": {"flop": {"board": ["Ah", "Kd", "7c"], "actions": []}}}`},
		{"bad board size", `{"metadata": {"small_blind": 5, "big_blind": 10},
			"seats": [{"seat_no": 0, "starting_stack": 100}, {"seat_no": 1, "starting_stack": 100}],
			"streets": {"preflop": {"actions": [{"order": 1, "actor_id": "0", "action": "fold"}]},
				"flop": {"board": ["Ah", "Kd"], "actions": []}}}`},
		{"final stack count mismatch", `{"metadata": {"small_blind": 5, "big_blind": 10},
			"seats": [{"seat_no": 0, "starting_stack": 100}, {"seat_no": 1, "starting_stack": 100}],
			"streets": {"preflop": {"actions": [{"order": 1, "actor_id": "0", "action": "fold"}]}},
			"final_stacks": [100]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(strings.NewReader(tt.json))
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("got %v, want malformed", err)
			}
		})
	}
}

func TestBoardAcceptsCumulativeForm(t *testing.T) {
	t.Parallel()

	// A turn street may carry just the turn card or the whole four-card
	// board; both normalize to the single dealt card.
	incremental := StreetRecord{Board: []string{"7h"}}
	cumulative := StreetRecord{Board: []string{"Ah", "Kd", "7c", "7h"}}

	for _, street := range []StreetRecord{incremental, cumulative} {
		cards, err := street.board("turn")
		if err != nil {
			t.Fatal(err)
		}
		if len(cards) != 1 || cards[0].String() != "7h" {
			t.Errorf("board = %v, want [7h]", cards)
		}
	}
}
