package engine

import (
	"errors"
	"fmt"
)

// RejectKind classifies why a proposed action was refused. Rejections are
// recoverable: state is untouched and the decision source is asked again.
type RejectKind int

const (
	RejectNotPlayersTurn RejectKind = iota
	RejectNotLegalForStreet
	RejectBelowMinimumRaise
	RejectInsufficientStack
	RejectCannotReraise
)

func (k RejectKind) String() string {
	switch k {
	case RejectNotPlayersTurn:
		return "not_players_turn"
	case RejectNotLegalForStreet:
		return "action_not_legal_for_street"
	case RejectBelowMinimumRaise:
		return "below_minimum_raise"
	case RejectInsufficientStack:
		return "insufficient_stack"
	case RejectCannotReraise:
		return "cannot_reraise_after_under_raise"
	default:
		return "unknown"
	}
}

// Rejection is the typed error returned when a proposed action is illegal.
type Rejection struct {
	Kind   RejectKind
	Seat   int
	Reason string
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("action rejected (%s) for seat %d: %s", r.Kind, r.Seat, r.Reason)
}

func reject(kind RejectKind, seat int, format string, args ...any) error {
	return &Rejection{Kind: kind, Seat: seat, Reason: fmt.Sprintf(format, args...)}
}

// IsRejection reports whether err is an action rejection, returning it.
func IsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

// Fatal errors indicate an engine defect or a misbehaving decision source.
// They abort the hand.
var (
	// ErrChipConservation means chips were created or destroyed. Always a
	// bug in the engine itself.
	ErrChipConservation = errors.New("chip conservation violated")

	// ErrRetryBudgetExceeded means a decision source kept proposing
	// illegal actions until the retry bound ran out.
	ErrRetryBudgetExceeded = errors.New("action retry budget exceeded")

	// ErrBadPhaseTransition means the state machine reached an undefined
	// transition.
	ErrBadPhaseTransition = errors.New("undefined hand phase transition")
)
