// Package event defines the closed set of values the parser emits. Each
// variant is a plain struct with an Apply(*gamestate.State) method;
// nothing here touches bytes or version flags, so events can be unit
// tested by construction alone, independent of the parser that produced
// them.
package event

import "github.com/tibiacast/tibiarc-sub000/internal/gamestate"

// Event is implemented by every emitted variant. Apply must not fail:
// the parser is responsible for only ever emitting events it has already
// validated against the current game state's shape.
type Event interface {
	Apply(*gamestate.State)
}

// List is an ordered run of events produced by one parsed frame. Order
// matters: GameState applies them in emission order, which the parser
// guarantees matches the spec's documented per-packet sequence (e.g.
// CreatureUpdated emits health before heading before outfit, and so on).
type List []Event
