package engine

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// DecisionSource supplies the next action for a seat whenever the state
// machine needs one. The engine never cares which variant is behind the
// interface: an interactive prompt, a strategy bot, or a hand replay all
// satisfy the same contract.
//
// NextAction may block (interactive play); it must honour ctx cancellation.
// The snapshot is redacted to the acting seat's own hole cards.
type DecisionSource interface {
	NextAction(ctx context.Context, state Snapshot, seat int) (Action, error)
}

// Request tells an interactive caller that a seat is on act.
type Request struct {
	State Snapshot
	Seat  int
}

// InteractiveSource is a DecisionSource fed by an external caller, used for
// human players. NextAction blocks until Submit delivers an action, the
// context is cancelled, or the optional decision timeout fires, in which
// case the source checks when legal and otherwise folds.
type InteractiveSource struct {
	requests chan Request
	actions  chan Action
	timeout  time.Duration
	clock    quartz.Clock
	logger   *log.Logger
}

// NewInteractiveSource creates an interactive source. A zero timeout waits
// forever. The clock is injectable so tests can drive timeouts without
// sleeping.
func NewInteractiveSource(logger *log.Logger, timeout time.Duration, clock quartz.Clock) *InteractiveSource {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &InteractiveSource{
		requests: make(chan Request, 1),
		actions:  make(chan Action, 1),
		timeout:  timeout,
		clock:    clock,
		logger:   logger.WithPrefix("interactive"),
	}
}

// Requests exposes the stream of pending action requests so a UI can
// prompt the player.
func (s *InteractiveSource) Requests() <-chan Request {
	return s.requests
}

// Submit delivers the player's chosen action. It never blocks; a second
// submission before the engine consumed the first is dropped.
func (s *InteractiveSource) Submit(act Action) {
	select {
	case s.actions <- act:
	default:
		s.logger.Warn("Dropping action, previous submission still pending", "kind", act.Kind)
	}
}

// NextAction implements DecisionSource.
func (s *InteractiveSource) NextAction(ctx context.Context, state Snapshot, seat int) (Action, error) {
	select {
	case s.requests <- Request{State: state, Seat: seat}:
	default:
	}

	var timedOut chan struct{}
	if s.timeout > 0 {
		timedOut = make(chan struct{})
		timer := s.clock.AfterFunc(s.timeout, func() {
			close(timedOut)
		})
		defer timer.Stop()
	}

	select {
	case act := <-s.actions:
		act.Seat = seat
		act.Street = state.Street
		return act, nil

	case <-timedOut:
		s.logger.Warn("Decision timeout", "seat", seat, "timeout", s.timeout)
		kind := Fold
		if state.CanCheck(seat) {
			kind = Check
		}
		return Action{Seat: seat, Street: state.Street, Kind: kind}, nil

	case <-ctx.Done():
		return Action{}, ctx.Err()
	}
}
