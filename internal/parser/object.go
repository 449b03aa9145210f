package parser

import (
	"github.com/tibiacast/tibiarc-sub000/internal/event"
	"github.com/tibiacast/tibiarc-sub000/internal/ioreader"
	"github.com/tibiacast/tibiarc-sub000/internal/model"
	"github.com/tibiacast/tibiarc-sub000/internal/rerr"
)

// readObject reads one tile/container slot. The leading u16 is
// overloaded: three sentinel values introduce or update a creature (and
// emit the corresponding events directly), everything else is an item
// id. The returned Object is always the value to place in the slot —
// a creature reference for the first three branches, an item otherwise.
func (p *Parser) readObject(r *ioreader.Reader) (model.Object, error) {
	id, err := ioreader.ReadUint[uint16](r)
	if err != nil {
		return model.Object{}, rerr.Invalid("parser.Parser.readObject", "id: %v", err)
	}

	switch id {
	case objectNull:
		if !p.Profile.Protocol.NullObjects {
			return model.Object{}, rerr.Invalid("parser.Parser.readObject", "null object not valid for this version")
		}
		return model.Object{}, nil
	case objectCreatureSeen:
		return p.readCreatureSeenObject(r)
	case objectCreatureUpdated:
		return p.readCreatureUpdatedObject(r)
	case objectCreatureCompact:
		return p.readCreatureCompactObject(r)
	default:
		return p.readItemObject(r, id)
	}
}

func (p *Parser) readItemObject(r *ioreader.Reader, id uint16) (model.Object, error) {
	var mark uint8
	if p.Profile.Protocol.ItemMarks {
		v, err := ioreader.ReadUint[uint8](r)
		if err != nil {
			return model.Object{}, rerr.Invalid("parser.Parser.readItemObject", "mark: %v", err)
		}
		mark = v
	}

	itemType, err := p.Catalogue.GetItem(id)
	if err != nil {
		return model.Object{}, err
	}

	extra := uint8(1)
	if itemType.Properties.Stackable || itemType.Properties.LiquidContainer ||
		itemType.Properties.LiquidPool ||
		(itemType.Properties.Rune && p.Profile.Protocol.RuneChargeCount) {
		v, err := ioreader.ReadUint[uint8](r)
		if err != nil {
			return model.Object{}, rerr.Invalid("parser.Parser.readItemObject", "extra: %v", err)
		}
		extra = v
	}

	var animation uint8
	if itemType.Properties.Animated && p.Profile.Features.AnimationPhases {
		v, err := ioreader.ReadUint[uint8](r)
		if err != nil {
			return model.Object{}, rerr.Invalid("parser.Parser.readItemObject", "animation: %v", err)
		}
		animation = v
	}

	return model.Object{
		ID:            id,
		Mark:          mark,
		Extra:         extra,
		Animation:     animation,
		StackPriority: itemType.Properties.StackPriority,
		GroundSpeed:   itemType.Properties.Speed,
	}, nil
}

// readCreatureSeenObject reads a full 0x61 creature introduction,
// emitting CreatureSeen (and CreatureRemoved if the slot it's replacing
// held a different, known creature) and returning a creature-reference
// Object for the caller's tile/stack slot.
func (p *Parser) readCreatureSeenObject(r *ioreader.Reader) (model.Object, error) {
	removeID, err := ioreader.ReadUint[uint32](r)
	if err != nil {
		return model.Object{}, rerr.Invalid("parser.Parser.readCreatureSeenObject", "remove id: %v", err)
	}
	addID, err := ioreader.ReadUint[uint32](r)
	if err != nil {
		return model.Object{}, rerr.Invalid("parser.Parser.readCreatureSeenObject", "add id: %v", err)
	}
	if removeID != addID && p.knownCreatures[removeID] {
		delete(p.knownCreatures, removeID)
		p.emit(event.CreatureRemoved{ID: removeID})
	}
	p.knownCreatures[addID] = true

	c := model.Creature{ID: addID}

	if p.Profile.Protocol.CreatureTypes {
		v, err := ioreader.ReadUint[uint8](r)
		if err != nil {
			return model.Object{}, rerr.Invalid("parser.Parser.readCreatureSeenObject", "type: %v", err)
		}
		c.Kind = model.CreatureKind(v)
	} else if addID < 0x10000000 {
		c.Kind = model.CreaturePlayer
	} else {
		c.Kind = model.CreatureMonster
	}

	name, err := r.ReadString()
	if err != nil {
		return model.Object{}, rerr.Invalid("parser.Parser.readCreatureSeenObject", "name: %v", err)
	}
	c.Name = name

	health, err := ioreader.ReadUint[uint8](r, 0, 100)
	if err != nil {
		return model.Object{}, rerr.Invalid("parser.Parser.readCreatureSeenObject", "health: %v", err)
	}
	c.HealthPercent = health

	heading, err := ioreader.ReadUint[uint8](r, 0, 3)
	if err != nil {
		return model.Object{}, rerr.Invalid("parser.Parser.readCreatureSeenObject", "heading: %v", err)
	}
	c.Heading = model.Heading(heading)

	outfit, err := p.readAppearance(r)
	if err != nil {
		return model.Object{}, err
	}
	c.Outfit = outfit

	intensity, err := ioreader.ReadUint[uint8](r)
	if err != nil {
		return model.Object{}, rerr.Invalid("parser.Parser.readCreatureSeenObject", "light intensity: %v", err)
	}
	color, err := ioreader.ReadUint[uint8](r)
	if err != nil {
		return model.Object{}, rerr.Invalid("parser.Parser.readCreatureSeenObject", "light colour: %v", err)
	}
	c.Light = model.Light{Intensity: intensity, Color: color}

	speed, err := ioreader.ReadUint[uint16](r)
	if err != nil {
		return model.Object{}, rerr.Invalid("parser.Parser.readCreatureSeenObject", "speed: %v", err)
	}
	c.Speed = speed

	if p.Profile.Protocol.SkullIcon {
		v, err := ioreader.ReadUint[uint8](r)
		if err != nil {
			return model.Object{}, rerr.Invalid("parser.Parser.readCreatureSeenObject", "skull: %v", err)
		}
		c.Skull = v
	}
	if p.Profile.Protocol.ShieldIcon {
		v, err := ioreader.ReadUint[uint8](r)
		if err != nil {
			return model.Object{}, rerr.Invalid("parser.Parser.readCreatureSeenObject", "shield: %v", err)
		}
		c.Shield = v
	}
	if p.Profile.Protocol.WarIcon {
		v, err := ioreader.ReadUint[uint8](r)
		if err != nil {
			return model.Object{}, rerr.Invalid("parser.Parser.readCreatureSeenObject", "war icon: %v", err)
		}
		c.WarIcon = v
	}
	if p.Profile.Protocol.NPCCategory {
		v, err := ioreader.ReadUint[uint8](r)
		if err != nil {
			return model.Object{}, rerr.Invalid("parser.Parser.readCreatureSeenObject", "npc category: %v", err)
		}
		c.NPCCategory = v
	}
	if p.Profile.Protocol.CreatureMarks {
		mark, err := ioreader.ReadUint[uint8](r)
		if err != nil {
			return model.Object{}, rerr.Invalid("parser.Parser.readCreatureSeenObject", "mark: %v", err)
		}
		online, err := ioreader.ReadUint[uint16](r)
		if err != nil {
			return model.Object{}, rerr.Invalid("parser.Parser.readCreatureSeenObject", "guild members: %v", err)
		}
		c.Mark = mark
		c.GuildMembersOnline = online
	}
	if p.Profile.Protocol.PassableCreatures {
		v, err := ioreader.ReadUint[uint8](r)
		if err != nil {
			return model.Object{}, rerr.Invalid("parser.Parser.readCreatureSeenObject", "impassable: %v", err)
		}
		c.Impassable = v != 0
	}

	p.emit(event.CreatureSeen{Creature: c})
	return model.CreatureRef(addID, c.Mark), nil
}

// readCreatureUpdatedObject reads a 0x62 update: a fixed field sequence
// mirroring CreatureSeen's always-present fields, each one emitted as
// its own event. Apply silently no-ops for an id GameState doesn't
// know about, which is exactly the "unknown creature id" non-fatal
// behaviour §4.6 calls for — the parser need not track that itself.
func (p *Parser) readCreatureUpdatedObject(r *ioreader.Reader) (model.Object, error) {
	id, err := ioreader.ReadUint[uint32](r)
	if err != nil {
		return model.Object{}, rerr.Invalid("parser.Parser.readCreatureUpdatedObject", "id: %v", err)
	}

	health, err := ioreader.ReadUint[uint8](r, 0, 100)
	if err != nil {
		return model.Object{}, rerr.Invalid("parser.Parser.readCreatureUpdatedObject", "health: %v", err)
	}
	p.emit(event.CreatureHealthUpdated{ID: id, Percent: health})

	heading, err := ioreader.ReadUint[uint8](r, 0, 3)
	if err != nil {
		return model.Object{}, rerr.Invalid("parser.Parser.readCreatureUpdatedObject", "heading: %v", err)
	}
	p.emit(event.CreatureHeadingUpdated{ID: id, Heading: model.Heading(heading)})

	outfit, err := p.readAppearance(r)
	if err != nil {
		return model.Object{}, err
	}
	p.emit(event.CreatureOutfitUpdated{ID: id, Outfit: outfit})

	intensity, err := ioreader.ReadUint[uint8](r)
	if err != nil {
		return model.Object{}, rerr.Invalid("parser.Parser.readCreatureUpdatedObject", "light intensity: %v", err)
	}
	color, err := ioreader.ReadUint[uint8](r)
	if err != nil {
		return model.Object{}, rerr.Invalid("parser.Parser.readCreatureUpdatedObject", "light colour: %v", err)
	}
	p.emit(event.CreatureLightUpdated{ID: id, Light: model.Light{Intensity: intensity, Color: color}})

	speed, err := ioreader.ReadUint[uint16](r)
	if err != nil {
		return model.Object{}, rerr.Invalid("parser.Parser.readCreatureUpdatedObject", "speed: %v", err)
	}
	p.emit(event.CreatureSpeedUpdated{ID: id, Speed: speed})

	if p.Profile.Protocol.SkullIcon {
		v, err := ioreader.ReadUint[uint8](r)
		if err != nil {
			return model.Object{}, rerr.Invalid("parser.Parser.readCreatureUpdatedObject", "skull: %v", err)
		}
		p.emit(event.CreatureSkullUpdated{ID: id, Skull: v})
	}
	if p.Profile.Protocol.ShieldIcon {
		v, err := ioreader.ReadUint[uint8](r)
		if err != nil {
			return model.Object{}, rerr.Invalid("parser.Parser.readCreatureUpdatedObject", "shield: %v", err)
		}
		p.emit(event.CreatureShieldUpdated{ID: id, Shield: v})
	}
	if p.Profile.Protocol.CreatureTypes {
		v, err := ioreader.ReadUint[uint8](r)
		if err != nil {
			return model.Object{}, rerr.Invalid("parser.Parser.readCreatureUpdatedObject", "type: %v", err)
		}
		p.emit(event.CreatureTypeUpdated{ID: id, Kind: model.CreatureKind(v)})
	}
	if p.Profile.Protocol.NPCCategory {
		v, err := ioreader.ReadUint[uint8](r)
		if err != nil {
			return model.Object{}, rerr.Invalid("parser.Parser.readCreatureUpdatedObject", "npc category: %v", err)
		}
		p.emit(event.CreatureNPCCategoryUpdated{ID: id, Category: v})
	}
	if p.Profile.Protocol.WarIcon {
		v, err := ioreader.ReadUint[uint8](r)
		if err != nil {
			return model.Object{}, rerr.Invalid("parser.Parser.readCreatureUpdatedObject", "pvp helpers: %v", err)
		}
		p.emit(event.CreaturePvPHelpersUpdated{ID: id, WarIcon: v})
	}
	if p.Profile.Protocol.CreatureMarks {
		mark, err := ioreader.ReadUint[uint8](r)
		if err != nil {
			return model.Object{}, rerr.Invalid("parser.Parser.readCreatureUpdatedObject", "mark: %v", err)
		}
		online, err := ioreader.ReadUint[uint16](r)
		if err != nil {
			return model.Object{}, rerr.Invalid("parser.Parser.readCreatureUpdatedObject", "guild members: %v", err)
		}
		p.emit(event.CreatureGuildMembersUpdated{ID: id, Mark: mark, Online: online})
	}
	if p.Profile.Protocol.PassableCreatures {
		v, err := ioreader.ReadUint[uint8](r)
		if err != nil {
			return model.Object{}, rerr.Invalid("parser.Parser.readCreatureUpdatedObject", "impassable: %v", err)
		}
		p.emit(event.CreatureImpassableUpdated{ID: id, Impassable: v != 0})
	}

	return model.CreatureRef(id, 0), nil
}

// readCreatureCompactObject reads a 0x63 lightweight update: heading and
// an optional passability flag only.
func (p *Parser) readCreatureCompactObject(r *ioreader.Reader) (model.Object, error) {
	id, err := ioreader.ReadUint[uint32](r)
	if err != nil {
		return model.Object{}, rerr.Invalid("parser.Parser.readCreatureCompactObject", "id: %v", err)
	}
	heading, err := ioreader.ReadUint[uint8](r, 0, 3)
	if err != nil {
		return model.Object{}, rerr.Invalid("parser.Parser.readCreatureCompactObject", "heading: %v", err)
	}
	p.emit(event.CreatureHeadingUpdated{ID: id, Heading: model.Heading(heading)})

	if p.Profile.Protocol.PassableCreatureUpdate {
		v, err := ioreader.ReadUint[uint8](r)
		if err != nil {
			return model.Object{}, rerr.Invalid("parser.Parser.readCreatureCompactObject", "impassable: %v", err)
		}
		p.emit(event.CreatureImpassableUpdated{ID: id, Impassable: v != 0})
	}

	return model.CreatureRef(id, 0), nil
}
