package parser

import (
	"github.com/tibiacast/tibiarc-sub000/internal/event"
	"github.com/tibiacast/tibiarc-sub000/internal/ioreader"
	"github.com/tibiacast/tibiarc-sub000/internal/model"
	"github.com/tibiacast/tibiarc-sub000/internal/rerr"
)

func (p *Parser) parsePlayerDataBasic(r *ioreader.Reader) error {
	premiumByte, err := ioreader.ReadUint[uint8](r)
	if err != nil {
		return rerr.Invalid("parser.Parser.parsePlayerDataBasic", "premium: %v", err)
	}

	var premiumUntil uint32
	if p.Profile.Protocol.PremiumUntil {
		premiumUntil, err = ioreader.ReadUint[uint32](r)
		if err != nil {
			return rerr.Invalid("parser.Parser.parsePlayerDataBasic", "premium until: %v", err)
		}
	}

	vocation, err := ioreader.ReadUint[uint8](r)
	if err != nil {
		return rerr.Invalid("parser.Parser.parsePlayerDataBasic", "vocation: %v", err)
	}

	count, err := ioreader.ReadUint[uint8](r)
	if err != nil {
		return rerr.Invalid("parser.Parser.parsePlayerDataBasic", "known spell count: %v", err)
	}
	spells := make([]uint16, count)
	for i := range spells {
		v, err := ioreader.ReadUint[uint8](r)
		if err != nil {
			return rerr.Invalid("parser.Parser.parsePlayerDataBasic", "known spell %d: %v", i, err)
		}
		spells[i] = uint16(v)
	}

	p.emit(event.PlayerDataBasicUpdated{
		Premium:      premiumByte != 0,
		PremiumUntil: premiumUntil,
		Vocation:     vocation,
		KnownSpells:  spells,
	})
	return nil
}

func (p *Parser) parsePlayerDataCurrent(r *ioreader.Reader) error {
	const site = "parser.Parser.parsePlayerDataCurrent"
	proto := p.Profile.Protocol

	health, err := ioreader.ReadUint[uint16](r)
	if err != nil {
		return rerr.Invalid(site, "health: %v", err)
	}
	maxHealth, err := ioreader.ReadUint[uint16](r)
	if err != nil {
		return rerr.Invalid(site, "max health: %v", err)
	}

	var capacity, maxCapacity uint32
	if proto.CapacityU32 {
		capacity, err = ioreader.ReadUint[uint32](r)
	} else {
		var v uint16
		v, err = ioreader.ReadUint[uint16](r)
		capacity = uint32(v)
	}
	if err != nil {
		return rerr.Invalid(site, "capacity: %v", err)
	}
	maxCapacity = capacity
	if proto.MaxCapacity {
		if proto.CapacityU32 {
			maxCapacity, err = ioreader.ReadUint[uint32](r)
		} else {
			var v uint16
			v, err = ioreader.ReadUint[uint16](r)
			maxCapacity = uint32(v)
		}
		if err != nil {
			return rerr.Invalid(site, "max capacity: %v", err)
		}
	}

	var experience uint64
	if proto.ExperienceU64 {
		experience, err = ioreader.ReadUint[uint64](r)
	} else {
		var v uint32
		v, err = ioreader.ReadUint[uint32](r)
		experience = uint64(v)
	}
	if err != nil {
		return rerr.Invalid(site, "experience: %v", err)
	}

	var level uint16
	if proto.LevelU16 {
		level, err = ioreader.ReadUint[uint16](r)
	} else {
		var v uint8
		v, err = ioreader.ReadUint[uint8](r)
		level = uint16(v)
	}
	if err != nil {
		return rerr.Invalid(site, "level: %v", err)
	}
	levelPercent, err := ioreader.ReadUint[uint8](r)
	if err != nil {
		return rerr.Invalid(site, "level percent: %v", err)
	}

	mana, err := ioreader.ReadUint[uint16](r)
	if err != nil {
		return rerr.Invalid(site, "mana: %v", err)
	}
	maxMana, err := ioreader.ReadUint[uint16](r)
	if err != nil {
		return rerr.Invalid(site, "max mana: %v", err)
	}

	magicLevel, err := ioreader.ReadUint[uint8](r)
	if err != nil {
		return rerr.Invalid(site, "magic level: %v", err)
	}
	var magicLevelBase uint8
	if proto.SkillBonuses {
		magicLevelBase, err = ioreader.ReadUint[uint8](r)
		if err != nil {
			return rerr.Invalid(site, "magic level base: %v", err)
		}
	}
	var magicLevelPercent uint8
	if proto.SkillPercentages {
		magicLevelPercent, err = ioreader.ReadUint[uint8](r)
		if err != nil {
			return rerr.Invalid(site, "magic level percent: %v", err)
		}
	}

	soulPoints, err := ioreader.ReadUint[uint8](r)
	if err != nil {
		return rerr.Invalid(site, "soul points: %v", err)
	}

	var stamina uint16
	if proto.Stamina {
		stamina, err = ioreader.ReadUint[uint16](r)
		if err != nil {
			return rerr.Invalid(site, "stamina: %v", err)
		}
	}
	var offlineStamina uint16
	if proto.OfflineStamina {
		offlineStamina, err = ioreader.ReadUint[uint16](r)
		if err != nil {
			return rerr.Invalid(site, "offline stamina: %v", err)
		}
	}
	var speed uint16
	if proto.PlayerSpeed {
		speed, err = ioreader.ReadUint[uint16](r)
		if err != nil {
			return rerr.Invalid(site, "speed: %v", err)
		}
	}
	var fed uint16
	if proto.PlayerHunger {
		fed, err = ioreader.ReadUint[uint16](r)
		if err != nil {
			return rerr.Invalid(site, "fed: %v", err)
		}
	}
	var experienceBonus float64
	if proto.ExperienceBonus {
		experienceBonus, err = r.ReadFloat()
		if err != nil {
			return rerr.Invalid(site, "experience bonus: %v", err)
		}
	}

	p.emit(event.PlayerDataUpdated{
		Health: int32(health), MaxHealth: int32(maxHealth),
		Capacity: capacity, MaxCapacity: maxCapacity,
		Experience: experience,
		Level:      level, LevelPercent: levelPercent,
		Mana: int32(mana), MaxMana: int32(maxMana),
		MagicLevel: magicLevel, MagicLevelBase: magicLevelBase, MagicLevelPercent: magicLevelPercent,
		SoulPoints:      soulPoints,
		Stamina:         stamina,
		OfflineStamina:  offlineStamina,
		Speed:           speed,
		Fed:             fed,
		ExperienceBonus: experienceBonus,
	})
	return nil
}

func (p *Parser) parsePlayerTactics(r *ioreader.Reader) error {
	attack, err := ioreader.ReadUint[uint8](r)
	if err != nil {
		return rerr.Invalid("parser.Parser.parsePlayerTactics", "attack: %v", err)
	}
	chase, err := ioreader.ReadUint[uint8](r)
	if err != nil {
		return rerr.Invalid("parser.Parser.parsePlayerTactics", "chase: %v", err)
	}
	secure, err := ioreader.ReadUint[uint8](r)
	if err != nil {
		return rerr.Invalid("parser.Parser.parsePlayerTactics", "secure: %v", err)
	}
	pvp, err := ioreader.ReadUint[uint8](r)
	if err != nil {
		return rerr.Invalid("parser.Parser.parsePlayerTactics", "pvp: %v", err)
	}
	p.emit(event.PlayerTacticsUpdated{Tactics: model.Tactics{
		Attack: attack != 0, Chase: chase != 0, Secure: secure != 0, PvP: pvp != 0,
	}})
	return nil
}
