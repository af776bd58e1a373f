package engine

// Validate decides whether a proposed action is legal in the current state
// and, for wagering actions, computes the exact number of chips it moves.
// It never mutates state: a rejected action leaves the hand untouched so
// the same request can be retried with a fresh proposal.
func Validate(g *GameState, act Action) (int, error) {
	if g.Acting < 0 || act.Seat != g.Acting {
		return 0, reject(RejectNotPlayersTurn, act.Seat, "seat %d is not on act", act.Seat)
	}
	p := g.Players[act.Seat]
	if !p.CanAct() {
		return 0, reject(RejectNotPlayersTurn, act.Seat, "seat %d is folded or all-in", act.Seat)
	}
	if act.Street != g.Street {
		return 0, reject(RejectNotLegalForStreet, act.Seat, "action for %s during %s", act.Street, g.Street)
	}

	switch act.Kind {
	case Fold:
		return 0, nil

	case Check:
		if p.Bet != g.CurrentBet {
			return 0, reject(RejectNotLegalForStreet, act.Seat, "cannot check facing a bet of %d", g.CurrentBet-p.Bet)
		}
		return 0, nil

	case Call:
		if p.Bet >= g.CurrentBet {
			return 0, reject(RejectNotLegalForStreet, act.Seat, "nothing to call")
		}
		// A call short of the bet level is an implicit all-in.
		move := g.CurrentBet - p.Bet
		if move > p.Stack {
			move = p.Stack
		}
		return move, nil

	case Bet:
		if g.CurrentBet != 0 {
			return 0, reject(RejectNotLegalForStreet, act.Seat, "cannot bet over an existing bet of %d, raise instead", g.CurrentBet)
		}
		move := act.To - p.Bet
		if move <= 0 {
			return 0, reject(RejectNotLegalForStreet, act.Seat, "bet of %d is not a wager", act.To)
		}
		if move > p.Stack {
			return 0, reject(RejectInsufficientStack, act.Seat, "bet %d exceeds stack %d", act.To, p.Stack)
		}
		if act.To < g.Config.BigBlind && move < p.Stack {
			return 0, reject(RejectBelowMinimumRaise, act.Seat, "bet %d below minimum %d", act.To, g.Config.BigBlind)
		}
		return move, nil

	case Raise:
		if g.CurrentBet == 0 {
			return 0, reject(RejectNotLegalForStreet, act.Seat, "no bet to raise, bet instead")
		}
		// A seat that already acted this round is only unlocked by a
		// full raise, which clears the acted flags. If the flag is
		// still set the only level changes since were under-raise
		// all-ins, and those never reopen the action.
		if p.Acted {
			return 0, reject(RejectCannotReraise, act.Seat, "action not reopened since seat %d last acted", act.Seat)
		}
		if act.To <= g.CurrentBet {
			return 0, reject(RejectBelowMinimumRaise, act.Seat, "raise to %d does not exceed current bet %d", act.To, g.CurrentBet)
		}
		move := act.To - p.Bet
		if move > p.Stack {
			return 0, reject(RejectInsufficientStack, act.Seat, "raise to %d exceeds stack", act.To)
		}
		if act.To < g.CurrentBet+g.MinRaise && move < p.Stack {
			// Going all-in below a full raise is the one legal
			// under-raise.
			return 0, reject(RejectBelowMinimumRaise, act.Seat, "raise to %d below minimum %d", act.To, g.CurrentBet+g.MinRaise)
		}
		return move, nil

	default:
		return 0, reject(RejectNotLegalForStreet, act.Seat, "%s is engine-generated, not a player action", act.Kind)
	}
}
