package parser

import (
	"github.com/tibiacast/tibiarc-sub000/internal/event"
	"github.com/tibiacast/tibiarc-sub000/internal/ioreader"
	"github.com/tibiacast/tibiarc-sub000/internal/model"
	"github.com/tibiacast/tibiarc-sub000/internal/rerr"
)

// readTileDescription reads one tile's object stack. A leading u16
// below the terminator is ambiguous on EnvironmentalEffects versions —
// it can be either a tile skip or an environmental effect id — and
// since the latter isn't rendered, it's simply skipped. The Object loop
// then runs until a freshly peeked u16 reaches the terminator range,
// followed by the trailing skip field. Objects past TileObjectCapacity
// are still parsed, for their creature-sighting side effect, but not
// kept on the tile.
func (p *Parser) readTileDescription(r *ioreader.Reader) ([]model.Object, int, error) {
	peek, err := ioreader.PeekUint[uint16](r)
	if err != nil {
		return nil, 0, rerr.Invalid("parser.Parser.readTileDescription", "peek: %v", err)
	}
	if p.Profile.Protocol.EnvironmentalEffects && peek < tileDescriptionTerminator {
		if _, err := ioreader.ReadUint[uint16](r); err != nil {
			return nil, 0, rerr.Invalid("parser.Parser.readTileDescription", "environmental effect: %v", err)
		}
		peek, err = ioreader.PeekUint[uint16](r)
		if err != nil {
			return nil, 0, rerr.Invalid("parser.Parser.readTileDescription", "peek: %v", err)
		}
	}

	var objects []model.Object
	for peek < tileDescriptionTerminator {
		obj, err := p.readObject(r)
		if err != nil {
			return nil, 0, err
		}
		if len(objects) < model.TileObjectCapacity {
			objects = append(objects, obj)
		}

		peek, err = ioreader.PeekUint[uint16](r)
		if err != nil {
			return nil, 0, rerr.Invalid("parser.Parser.readTileDescription", "peek: %v", err)
		}
	}

	tileSkip, err := ioreader.ReadUint[uint16](r)
	if err != nil {
		return nil, 0, rerr.Invalid("parser.Parser.readTileDescription", "tile skip: %v", err)
	}
	return objects, int(tileSkip & 0xFF), nil
}

// readFloorDescription walks a width x height window of one floor in
// wire order — x outer, y inner, both starting at origin+offset — and
// either emits TileUpdated for a cell with its own description, or
// consumes one unit of the running skip count for a cell that reuses
// the previous tile's (empty) contents.
func (p *Parser) readFloorDescription(r *ioreader.Reader, originX, originY int, width, height int, z uint8, offset int, skip *int) error {
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			pos := model.Position{
				X: uint16(originX + offset + x),
				Y: uint16(originY + offset + y),
				Z: z,
			}
			if *skip > 0 {
				*skip--
				continue
			}
			objects, nextSkip, err := p.readTileDescription(r)
			if err != nil {
				return err
			}
			p.emit(event.TileUpdated{Position: pos, Objects: objects})
			*skip = nextSkip
		}
	}
	return nil
}

// readMapDescription reads the full set of floors visible from center,
// offset from it by the fixed (-8, -6) window origin: z-2..z+2
// underground (each floor additionally offset by center.z - floor.z so
// deeper floors shift diagonally), else the fixed 7..0 surface stack.
func (p *Parser) readMapDescription(r *ioreader.Reader, center model.Position) error {
	const width, height = model.TileBufferWidth, model.TileBufferHeight

	var lo, hi, step int
	if center.Z > 7 {
		lo, hi, step = int(center.Z)-2, int(center.Z)+2, 1
		if hi > 15 {
			hi = 15
		}
	} else {
		lo, hi, step = 7, 0, -1
	}

	baseX, baseY := int(center.X)-8, int(center.Y)-6
	skip := 0
	for z := lo; z != hi+step; z += step {
		offset := int(center.Z) - z
		if err := p.readFloorDescription(r, baseX, baseY, width, height, uint8(z), offset, &skip); err != nil {
			return err
		}
	}
	if skip != 0 {
		return rerr.Invalid("parser.Parser.readMapDescription", "trailing skip count %d after last floor", skip)
	}
	return nil
}

func (p *Parser) parseFullMap(r *ioreader.Reader) error {
	pos, err := readPosition(r)
	if err != nil {
		return err
	}
	p.Position = pos
	p.emit(event.PlayerMoved{Position: pos})
	return p.readMapDescription(r, pos)
}

// parseFloorChange handles 0xBE (up, dz=-1) / 0xBF (down, dz=+1). The
// underground boundary (z==7 going up, z==8 going down) exposes a run
// of floors at once rather than just the one crossed into; elsewhere
// only the single newly-visible floor is read. The view then shifts by
// +-1 on x/y — computed from the position as it stood before that
// shift, matching how the window was read.
func (p *Parser) parseFloorChange(r *ioreader.Reader, dz int) error {
	newZ := int(p.Position.Z) + dz
	if newZ < 0 || newZ > 15 {
		return rerr.Invalid("parser.Parser.parseFloorChange", "z %d out of range", newZ)
	}
	p.Position.Z = uint8(newZ)

	const width, height = model.TileBufferWidth, model.TileBufferHeight
	baseX, baseY := int(p.Position.X)-8, int(p.Position.Y)-6
	skip := 0

	switch {
	case dz < 0 && newZ == 7:
		for z := 5; z >= 0; z-- {
			if err := p.readFloorDescription(r, baseX, baseY, width, height, uint8(z), model.TileBufferDepth-z, &skip); err != nil {
				return err
			}
		}
	case dz < 0 && newZ > 7:
		if err := p.readFloorDescription(r, baseX, baseY, width, height, uint8(newZ-2), 3, &skip); err != nil {
			return err
		}
	case dz > 0 && newZ == 8:
		offset := -1
		for z := newZ; z <= newZ+2; z++ {
			if err := p.readFloorDescription(r, baseX, baseY, width, height, uint8(z), offset, &skip); err != nil {
				return err
			}
			offset--
		}
	case dz > 0 && newZ > 7 && newZ < 14:
		if err := p.readFloorDescription(r, baseX, baseY, width, height, uint8(newZ+2), -3, &skip); err != nil {
			return err
		}
	}

	if dz < 0 {
		p.Position.X++
		p.Position.Y++
	} else {
		p.Position.X--
		p.Position.Y--
	}
	p.emit(event.PlayerMoved{Position: p.Position})
	return nil
}

func (p *Parser) parseTileObjectAdded(r *ioreader.Reader) error {
	pos, err := readPosition(r)
	if err != nil {
		return err
	}
	obj, err := p.readObject(r)
	if err != nil {
		return err
	}
	p.emit(event.TileObjectAdded{Position: pos, Object: obj, Priority: obj.StackPriority})
	return nil
}

func (p *Parser) parseTileObjectTransformed(r *ioreader.Reader) error {
	pos, err := readPosition(r)
	if err != nil {
		return err
	}
	index, err := ioreader.ReadUint[uint8](r)
	if err != nil {
		return rerr.Invalid("parser.Parser.parseTileObjectTransformed", "index: %v", err)
	}
	obj, err := p.readObject(r)
	if err != nil {
		return err
	}
	p.emit(event.TileObjectTransformed{Position: pos, Index: int(index), Object: obj})
	return nil
}

func (p *Parser) parseTileObjectRemoved(r *ioreader.Reader) error {
	pos, err := readPosition(r)
	if err != nil {
		return err
	}
	index, err := ioreader.ReadUint[uint8](r)
	if err != nil {
		return rerr.Invalid("parser.Parser.parseTileObjectRemoved", "index: %v", err)
	}
	p.emit(event.TileObjectRemoved{Position: pos, Index: int(index)})
	return nil
}

// parseCreatureMoved reads either the legacy (origin position + stack
// index) or, from 8.53 on, the sentinel-0xFFFF + creature-id move form,
// then emits CreatureMoved with the target read immediately after.
//
// The legacy form identifies the creature only by its origin tile
// position and stack index, not by id; resolving that to an id
// requires reading live tile contents, and computing walk timing
// requires the target tile's ground speed, the creature's own speed,
// and SpeedAdjustment — none of which the parser holds (§4.8 scopes its
// cross-frame state to view position and known creatures only). Both
// are therefore CreatureMoved.Apply's job on the GameState side; this
// function only carries the wire fields needed to do so.
func (p *Parser) parseCreatureMoved(r *ioreader.Reader) error {
	var id uint32
	var legacy bool
	var stackIndex int
	var origin model.Position
	useSentinel := p.Profile.AtLeast(8, 53)

	if useSentinel {
		sentinel, err := ioreader.PeekUint[uint16](r)
		if err == nil && sentinel == 0xFFFF {
			if _, err := ioreader.ReadUint[uint16](r); err != nil {
				return rerr.Invalid("parser.Parser.parseCreatureMoved", "sentinel: %v", err)
			}
			id, err = ioreader.ReadUint[uint32](r)
			if err != nil {
				return rerr.Invalid("parser.Parser.parseCreatureMoved", "creature id: %v", err)
			}
			useSentinel = true
		} else {
			useSentinel = false
		}
	}

	if !useSentinel {
		pos, err := readPosition(r)
		if err != nil {
			return err
		}
		origin = pos
		index, err := ioreader.ReadUint[uint8](r)
		if err != nil {
			return rerr.Invalid("parser.Parser.parseCreatureMoved", "stack index: %v", err)
		}
		legacy = true
		stackIndex = int(index)
	}

	target, err := readPosition(r)
	if err != nil {
		return err
	}

	p.emit(event.CreatureMoved{ID: id, Legacy: legacy, StackIndex: stackIndex, Origin: origin, Target: target})
	return nil
}
