// Package parser turns one demuxed payload into an ordered list of
// events. It is the only component that understands opcode bytes; the
// catalogue and version profile tell it which fields a given opcode
// carries, but never which opcode means what.
package parser

import (
	"github.com/tibiacast/tibiarc-sub000/internal/catalogue"
	"github.com/tibiacast/tibiarc-sub000/internal/event"
	"github.com/tibiacast/tibiarc-sub000/internal/ioreader"
	"github.com/tibiacast/tibiarc-sub000/internal/model"
	"github.com/tibiacast/tibiarc-sub000/internal/rerr"
	"github.com/tibiacast/tibiarc-sub000/internal/version"
)

// Decision records one version-gated branch point the parser took,
// keyed by the reader offset it fired at. Nothing reads this log today;
// it is the extension point a future repair loop would replay against
// (see DESIGN.md "Repair loop").
type Decision struct {
	Offset int
	Site   string
}

// Parser holds everything opcode handlers need beyond the current
// frame's bytes: the profile/catalogue pair that was resolved once for
// the whole recording, and the two pieces of state that must survive
// across packets within a frame and across frames within a recording —
// the current view position and the set of creature ids this parser has
// already introduced. Per §4.8 these live here rather than on GameState
// because a full-map packet must move the view before the tiles in that
// same packet can be interpreted.
type Parser struct {
	Profile   *version.Profile
	Catalogue *catalogue.Catalogue

	Position       model.Position
	knownCreatures map[uint32]bool

	DecisionLog []Decision
	events      event.List
}

// New constructs a parser bound to profile/cat, with an empty view and
// creature set.
func New(profile *version.Profile, cat *catalogue.Catalogue) *Parser {
	return &Parser{
		Profile:        profile,
		Catalogue:      cat,
		knownCreatures: make(map[uint32]bool),
	}
}

func (p *Parser) emit(e event.Event) { p.events = append(p.events, e) }

func (p *Parser) decide(r *ioreader.Reader, site string) {
	p.DecisionLog = append(p.DecisionLog, Decision{Offset: r.Tell(), Site: site})
}

// Parse decodes one payload (the opcode byte onward, with no framing)
// into the events it produces. Every byte must be consumed; residual
// bytes fail the frame per §6. A frame that fails mid-parse returns
// whatever partial events had already been emitted discarded — callers
// must treat a non-nil error as "this frame contributed nothing."
func (p *Parser) Parse(payload []byte) (event.List, error) {
	p.events = nil
	r := ioreader.New(payload)

	for r.Remaining() > 0 {
		opcode, err := ioreader.ReadUint[uint8](r)
		if err != nil {
			return nil, rerr.Invalid("parser.Parser.Parse", "opcode: %v", err)
		}
		if err := p.dispatch(r, opcode); err != nil {
			return nil, err
		}
	}

	out := p.events
	p.events = nil
	return out, nil
}

// dispatch handles one opcode. Implemented opcodes are a representative
// slice of the roughly one hundred the wire protocol defines, chosen for
// breadth across the packet families named in §4.6 (creature lifecycle,
// tile/map mutation, chat, containers, player data) rather than
// exhaustive per-version field coverage.
func (p *Parser) dispatch(r *ioreader.Reader, opcode uint8) error {
	switch opcode {
	case opWorldInit:
		if p.Profile.AtLeast(9, 72) {
			// Post-9.72 this opcode is a keepalive ping with no payload.
			return nil
		}
		return p.parseWorldInit(r)
	case opFullMap:
		return p.parseFullMap(r)
	case opTileObjectAdded:
		return p.parseTileObjectAdded(r)
	case opTileObjectTransformed:
		return p.parseTileObjectTransformed(r)
	case opTileObjectRemoved:
		return p.parseTileObjectRemoved(r)
	case opCreatureMoved:
		return p.parseCreatureMoved(r)
	case opContainerOpen:
		return p.parseContainerOpen(r)
	case opContainerClose:
		return p.parseContainerClose(r)
	case opContainerAddItem:
		return p.parseContainerAddItem(r)
	case opContainerTransformItem:
		return p.parseContainerTransformItem(r)
	case opContainerRemoveItem:
		return p.parseContainerRemoveItem(r)
	case opPlayerDataBasic:
		return p.parsePlayerDataBasic(r)
	case opPlayerDataCurrent:
		return p.parsePlayerDataCurrent(r)
	case opPlayerTactics:
		return p.parsePlayerTactics(r)
	case opCreatureSpeak:
		return p.parseCreatureSpeak(r)
	case opTextMessage:
		return p.parseTextMessage(r)
	case opFloorChangeUp:
		return p.parseFloorChange(r, -1)
	case opFloorChangeDown:
		return p.parseFloorChange(r, 1)
	default:
		return rerr.Invalid("parser.Parser.dispatch", "unknown opcode 0x%02X", opcode)
	}
}
