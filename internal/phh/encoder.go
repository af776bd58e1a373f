package phh

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lox/holdem-engine/internal/engine"
	"github.com/lox/holdem-engine/poker"
)

// Encode writes the hand history to the provided writer in PHH TOML format.
func Encode(w io.Writer, hand *HandHistory) error {
	if hand == nil {
		return fmt.Errorf("phh: hand history is nil")
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(hand)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(hand *HandHistory) ([]byte, error) {
	var buf strings.Builder
	if err := Encode(&buf, hand); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}

// FromResult converts a completed hand into PHH form. The final snapshot
// supplies names and stakes; the result supplies the action log, cards and
// stacks. Blind posts are not emitted as actions, PHH captures them in the
// blinds_or_straddles array.
func FromResult(res *engine.Result, final engine.Snapshot, at time.Time) *HandHistory {
	n := len(res.FinalStacks)

	antes := make([]int, n)
	blinds := make([]int, n)
	players := make([]string, n)
	for i, seat := range final.Seats {
		players[i] = seat.Name
	}
	blinds[engine.SmallBlindSeat(n, res.Button)] = final.SmallBlind
	blinds[engine.BigBlindSeat(n, res.Button)] = final.BigBlind

	hand := &HandHistory{
		Variant:           "NT",
		SeatCount:         n,
		Antes:             antes,
		BlindsOrStraddles: blinds,
		MinBet:            final.BigBlind,
		StartingStacks:    res.StartingStacks,
		FinishingStacks:   res.FinalStacks,
		Players:           players,
		HandID:            res.HandID,
		Day:               at.Day(),
		Month:             int(at.Month()),
		Year:              at.Year(),
		Timestamp:         at,
	}

	for _, act := range res.Log {
		antesFromLog(hand, act)
		if entry, ok := formatAction(res, act); ok {
			hand.Actions = append(hand.Actions, entry)
		}
	}
	return hand
}

// antesFromLog fills the per-seat ante array from recorded zero-to posts.
func antesFromLog(hand *HandHistory, act engine.Action) {
	if act.Kind == engine.PostBlind && act.To == 0 {
		hand.Antes[act.Seat] += act.Amount
	}
}

// formatAction converts one engine action to its PHH line, or reports that
// the action has no PHH representation.
func formatAction(res *engine.Result, act engine.Action) (string, bool) {
	player := fmt.Sprintf("p%d", act.Seat+1)

	switch act.Kind {
	case engine.Fold:
		return fmt.Sprintf("%s f", player), true
	case engine.Check, engine.Call:
		return fmt.Sprintf("%s cc", player), true
	case engine.Bet, engine.Raise:
		return fmt.Sprintf("%s cbr %d", player, act.To), true
	case engine.DealHole:
		if act.Seat < 0 || act.Seat >= len(res.HoleCards) || len(res.HoleCards[act.Seat]) != 2 {
			return "", false
		}
		return fmt.Sprintf("d dh %s %s", player, concatCards(res.HoleCards[act.Seat])), true
	case engine.DealBoard:
		cards := boardSlice(res.Board, act.Street)
		if cards == nil {
			return "", false
		}
		return fmt.Sprintf("d db %s", concatCards(cards)), true
	default:
		return "", false
	}
}

// boardSlice returns the cards revealed on the given street.
func boardSlice(board []poker.Card, street engine.Street) []poker.Card {
	switch {
	case street == engine.Flop && len(board) >= 3:
		return board[0:3]
	case street == engine.Turn && len(board) >= 4:
		return board[3:4]
	case street == engine.River && len(board) >= 5:
		return board[4:5]
	default:
		return nil
	}
}

func concatCards(cards []poker.Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(c.String())
	}
	return b.String()
}
