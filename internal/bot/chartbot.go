package bot

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/engine"
	"github.com/lox/holdem-engine/poker"
)

// ChartBot plays a simple pre-flop chart keyed on hole card category and
// check/calls all post-flop streets. Premium hands push when short-stacked,
// otherwise raise the minimum; weak hands are folded to any bet.
type ChartBot struct {
	logger *log.Logger
}

// NewChartBot creates a new ChartBot instance.
func NewChartBot(logger *log.Logger) *ChartBot {
	return &ChartBot{logger: logger.WithPrefix("chartbot")}
}

func (c *ChartBot) NextAction(ctx context.Context, state engine.Snapshot, seat int) (engine.Action, error) {
	if state.Street != engine.Preflop {
		return checkOrCall(state, seat), nil
	}

	hole := state.Seats[seat].HoleCards
	if len(hole) != 2 {
		return checkOrCall(state, seat), nil
	}
	category := poker.Categorize(hole[0], hole[1])
	c.logger.Debug("Chart lookup", "seat", seat, "hole", poker.FormatCards(hole), "category", category)

	switch category {
	case poker.CategoryPremium:
		if state.CanRaise(seat) {
			to := state.MinRaiseTo()
			// Push rather than min-raise when short.
			if state.Seats[seat].Stack <= 20*state.BigBlind {
				to = state.MaxRaiseTo(seat)
			}
			return c.raiseTo(state, seat, to), nil
		}
		return checkOrCall(state, seat), nil

	case poker.CategoryStrong:
		if state.CanRaise(seat) && state.CurrentBet <= state.BigBlind {
			return c.raiseTo(state, seat, state.MinRaiseTo()), nil
		}
		return checkOrCall(state, seat), nil

	case poker.CategoryMedium:
		return checkOrCall(state, seat), nil

	default:
		if state.CanCheck(seat) {
			return engine.Action{Seat: seat, Street: state.Street, Kind: engine.Check}, nil
		}
		return fold(state, seat), nil
	}
}

func (c *ChartBot) raiseTo(state engine.Snapshot, seat, to int) engine.Action {
	kind := engine.Raise
	if state.CurrentBet == 0 {
		kind = engine.Bet
	}
	if max := state.MaxRaiseTo(seat); to > max {
		to = max
	}
	return engine.Action{Seat: seat, Street: state.Street, Kind: kind, To: to}
}
