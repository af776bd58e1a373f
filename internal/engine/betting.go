package engine

// apply mutates state with an already-validated action and the chip
// movement the validator computed, records it in the action log, and
// advances the acting seat. Callers must have obtained move from Validate
// for this exact action.
func (g *GameState) apply(act Action, move int) Action {
	p := g.Players[act.Seat]

	switch act.Kind {
	case Fold:
		p.Folded = true
		p.Acted = true

	case Check:
		p.Acted = true

	case Call:
		g.commit(p, move)
		p.Acted = true

	case Bet, Raise:
		to := p.Bet + move
		fullRaise := to >= g.CurrentBet+g.MinRaise
		g.commit(p, move)
		if fullRaise {
			// A full raise reopens the action: everyone else gets
			// to act again at the new level. An under-raise
			// all-in deliberately does not.
			g.MinRaise = to - g.CurrentBet
			for _, other := range g.Players {
				if other.Seat != p.Seat && other.CanAct() {
					other.Acted = false
				}
			}
		}
		if to > g.CurrentBet {
			g.CurrentBet = to
			g.LastAggressor = p.Seat
		}
		p.Acted = true
	}

	recorded := g.record(Action{
		Seat:   act.Seat,
		Street: g.Street,
		Kind:   act.Kind,
		Amount: move,
		To:     p.Bet,
	})

	g.Acting = g.nextToAct(act.Seat + 1)
	return recorded
}

// commit moves chips from a player's stack into their street wager.
func (g *GameState) commit(p *Player, move int) {
	p.Stack -= move
	p.Bet += move
	p.TotalBet += move
	if p.Stack == 0 {
		p.AllIn = true
	}
}

// RoundComplete reports whether the street's betting is finished: every
// player who can still act has acted at the current bet level, or at most
// one live player remains, or nobody can act because the rest are all-in.
func (g *GameState) RoundComplete() bool {
	if g.LiveCount() <= 1 {
		return true
	}

	var active []*Player
	for _, p := range g.Players {
		if p.CanAct() {
			active = append(active, p)
		}
	}

	switch len(active) {
	case 0:
		return true
	case 1:
		// A lone non-all-in player has nobody left to bet against;
		// once they have matched the top wager the round is over.
		return active[0].Bet == g.CurrentBet
	}

	for _, p := range active {
		if !p.Acted || p.Bet != g.CurrentBet {
			return false
		}
	}
	return true
}

// HandLocked reports whether no further betting is possible this hand:
// either one live player remains, or all but at most one are all-in with
// wagers settled. Remaining board cards are dealt without action requests.
func (g *GameState) HandLocked() bool {
	if g.LiveCount() <= 1 {
		return true
	}
	return g.activeCount() <= 1 && g.RoundComplete()
}

// beginStreet resets the per-round betting substate for a new street.
func (g *GameState) beginStreet(street Street) {
	g.Street = street
	g.CurrentBet = 0
	g.MinRaise = g.Config.BigBlind
	g.LastAggressor = -1
	for _, p := range g.Players {
		p.Acted = false
	}
	g.Acting = g.nextToAct(FirstToActPostflop(len(g.Players), g.Button))
}
