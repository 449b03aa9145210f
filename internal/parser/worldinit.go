package parser

import (
	"github.com/tibiacast/tibiarc-sub000/internal/event"
	"github.com/tibiacast/tibiarc-sub000/internal/ioreader"
	"github.com/tibiacast/tibiarc-sub000/internal/rerr"
)

// parseWorldInit reads the pre-9.72 initialisation packet: the local
// player's id, the beat duration, and — when SpeedAdjustment is set —
// the (A, B, C) walk-speed formula triple every later move computation
// depends on.
func (p *Parser) parseWorldInit(r *ioreader.Reader) error {
	playerID, err := ioreader.ReadUint[uint32](r)
	if err != nil {
		return rerr.Invalid("parser.Parser.parseWorldInit", "player id: %v", err)
	}
	beatDuration, err := ioreader.ReadUint[uint16](r)
	if err != nil {
		return rerr.Invalid("parser.Parser.parseWorldInit", "beat duration: %v", err)
	}

	var adjustment [3]float64
	if p.Profile.Protocol.SpeedAdjustment {
		a, err := r.ReadFloat()
		if err != nil {
			return rerr.Invalid("parser.Parser.parseWorldInit", "speed adjustment a: %v", err)
		}
		b, err := r.ReadFloat()
		if err != nil {
			return rerr.Invalid("parser.Parser.parseWorldInit", "speed adjustment b: %v", err)
		}
		c, err := r.ReadFloat()
		if err != nil {
			return rerr.Invalid("parser.Parser.parseWorldInit", "speed adjustment c: %v", err)
		}
		adjustment = [3]float64{a, b, c}
	}

	p.emit(event.WorldInitialized{
		PlayerID:        playerID,
		BeatDuration:    beatDuration,
		SpeedAdjustment: adjustment,
	})
	return nil
}
