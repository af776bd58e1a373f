package engine

// Street represents a betting round tied to community card reveals.
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Showdown:
		return "showdown"
	default:
		return "unknown"
	}
}

// ActionKind is the closed set of things that can happen during a hand.
// PostBlind, DealHole and DealBoard are synthetic: the state machine
// generates them itself and rejects them from decision sources.
type ActionKind int

const (
	PostBlind ActionKind = iota
	DealHole
	DealBoard
	Fold
	Check
	Call
	Bet
	Raise
)

func (k ActionKind) String() string {
	switch k {
	case PostBlind:
		return "post_blind"
	case DealHole:
		return "deal_hole"
	case DealBoard:
		return "deal_board"
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Bet:
		return "bet"
	case Raise:
		return "raise"
	default:
		return "unknown"
	}
}

// Action is one entry in a hand's total-ordered action log.
//
// For wagering actions, Amount is the number of chips the action moved from
// the actor's stack and To the actor's resulting total wager for the street.
// Decision sources proposing a Bet or Raise set To (the target
// total-for-street); the validator computes Amount.
type Action struct {
	Seq    int
	Seat   int
	Street Street
	Kind   ActionKind
	Amount int
	To     int
}
