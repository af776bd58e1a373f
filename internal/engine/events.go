package engine

import (
	"time"

	"github.com/lox/holdem-engine/poker"
)

// EventKind identifies a game event type.
type EventKind string

const (
	EventHandStart   EventKind = "hand_start"
	EventAction      EventKind = "action"
	EventStreetDealt EventKind = "street_dealt"
	EventPhaseChange EventKind = "phase_change"
	EventHandEnd     EventKind = "hand_end"
)

// Event is anything the engine announces to observers. Every event carries
// the post-transition snapshot; consumers must treat it as read-only and
// never feed data back into the engine.
type Event interface {
	Kind() EventKind
	Timestamp() time.Time
}

type baseEvent struct {
	at time.Time
}

func (e baseEvent) Timestamp() time.Time { return e.at }

// HandStartEvent fires once blinds and hole cards are in.
type HandStartEvent struct {
	baseEvent
	State Snapshot
}

func (HandStartEvent) Kind() EventKind { return EventHandStart }

// ActionEvent fires after every applied action, synthetic posts included.
type ActionEvent struct {
	baseEvent
	Action Action
	State  Snapshot
}

func (ActionEvent) Kind() EventKind { return EventAction }

// StreetDealtEvent fires when community cards hit the board.
type StreetDealtEvent struct {
	baseEvent
	Street Street
	Cards  []poker.Card
	State  Snapshot
}

func (StreetDealtEvent) Kind() EventKind { return EventStreetDealt }

// PhaseChangeEvent fires on every state-machine transition.
type PhaseChangeEvent struct {
	baseEvent
	From, To HandPhase
	State    Snapshot
}

func (PhaseChangeEvent) Kind() EventKind { return EventPhaseChange }

// HandEndEvent fires once, with the final results.
type HandEndEvent struct {
	baseEvent
	Result *Result
	State  Snapshot
}

func (HandEndEvent) Kind() EventKind { return EventHandEnd }

// Sink receives engine events.
type Sink interface {
	OnEvent(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

func (f SinkFunc) OnEvent(e Event) { f(e) }

// Bus fans events out to any number of sinks, in subscription order.
type Bus struct {
	sinks []Sink
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe adds a sink. Not safe for concurrent use with Publish; the
// engine is single-threaded by design.
func (b *Bus) Subscribe(s Sink) {
	b.sinks = append(b.sinks, s)
}

// Publish delivers an event to every sink.
func (b *Bus) Publish(e Event) {
	for _, s := range b.sinks {
		s.OnEvent(e)
	}
}

func now() baseEvent {
	return baseEvent{at: time.Now()}
}
