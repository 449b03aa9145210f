package catalogue

import (
	"github.com/tibiacast/tibiarc-sub000/internal/ioreader"
	"github.com/tibiacast/tibiarc-sub000/internal/model"
	"github.com/tibiacast/tibiarc-sub000/internal/rerr"
	"github.com/tibiacast/tibiarc-sub000/internal/version"
)

// Frame group slots. FrameGroupDefault is used for entity categories
// that never carry more than one group (items, effects, missiles).
const (
	FrameGroupIdle = iota
	FrameGroupWalking

	FrameGroupDefault = FrameGroupIdle
)

// AnimationPhase bounds one frame's random dwell time in milliseconds.
type AnimationPhase struct {
	Minimum, Maximum uint32
}

// FrameGroup is one idle/walking animation cycle: a grid of render
// variants (size/layer/direction/mount divisors) times a frame count,
// each frame naming a run of sprite ids.
type FrameGroup struct {
	Active bool

	SizeX, SizeY, RenderSize uint8
	LayerCount               uint8
	XDiv, YDiv, ZDiv         uint8
	FrameCount               uint8

	StartPhase    uint8
	LoopCount     uint32
	AnimationType uint8
	Phases        []AnimationPhase

	SpriteIDs []uint32
}

// TypeProperties is the curated subset of the entity-type property loop
// that the core actually consults; every other declared property is
// parsed (to stay in sync with the wire format) and discarded.
type TypeProperties struct {
	StackPriority model.StackPriority

	Stackable       bool
	Rune            bool
	LiquidContainer bool
	LiquidPool      bool
	Animated        bool
	Hangable        bool
	Vertical        bool
	Horizontal      bool
	DontHide        bool
	Unlookable      bool
	AnimateIdle     bool
	RedrawNearbyTop bool

	Speed                      uint16
	DisplacementX, DisplacementY uint16
	Height                     uint16
}

// EntityType is one item/outfit/effect/missile definition: a curated
// property set plus up to two frame groups (idle, walking).
type EntityType struct {
	Properties  TypeProperties
	FrameGroups [2]FrameGroup
}

// TypeCategory is one id-addressed slice of entity types (items start at
// id 100; outfits, effects and missiles start at 1).
type TypeCategory struct {
	MinID, MaxID int
	Types        []EntityType
}

func (c *TypeCategory) get(site string, id int) (*EntityType, error) {
	if id < c.MinID || id > c.MaxID {
		return nil, rerr.Invalid(site, "id %d out of range [%d,%d]", id, c.MinID, c.MaxID)
	}
	return &c.Types[id-c.MinID], nil
}

// TypeFile is the full entity-type catalogue for one client version.
type TypeFile struct {
	Signature uint32

	Items    TypeCategory
	Outfits  TypeCategory
	Effects  TypeCategory
	Missiles TypeCategory
}

// readTypeProperties walks the property loop until the 0xFF terminator,
// storing the curated subset of fields and discarding every other
// declared property's inline arguments.
func readTypeProperties(r *ioreader.Reader, profile *version.Profile) (TypeProperties, error) {
	props := TypeProperties{StackPriority: model.PriorityDefault}

	for {
		wireByte, err := ioreader.ReadUint[uint8](r)
		if err != nil {
			return TypeProperties{}, rerr.Invalid("catalogue.readTypeProperties", "property marker: %v", err)
		}
		prop, err := profile.TranslateTypeProperty(wireByte)
		if err != nil {
			return TypeProperties{}, rerr.Invalid("catalogue.readTypeProperties", "translate %#x: %v", wireByte, err)
		}

		switch prop {
		case version.TypeGround:
			props.StackPriority = model.PriorityGround
			if props.Speed, err = ioreader.ReadUint[uint16](r); err != nil {
				return TypeProperties{}, rerr.Invalid("catalogue.readTypeProperties", "speed: %v", err)
			}
		case version.TypeClip:
			props.StackPriority = model.PriorityClip
		case version.TypeBottom:
			props.StackPriority = model.PriorityBottom
		case version.TypeTop:
			props.StackPriority = model.PriorityTop
		case version.TypeStackable:
			props.Stackable = true
		case version.TypeRune:
			props.Rune = true
		case version.TypeLiquidContainer:
			props.LiquidContainer = true
		case version.TypeLiquidPool:
			props.LiquidPool = true
		case version.TypeUnlookable:
			props.Unlookable = true
		case version.TypeHangable:
			props.Hangable = true
		case version.TypeVertical:
			props.Vertical = true
		case version.TypeHorizontal:
			props.Horizontal = true
		case version.TypeDontHide:
			props.DontHide = true
		case version.TypeAnimateIdle:
			props.AnimateIdle = true
		case version.TypeRedrawNearbyTop:
			props.RedrawNearbyTop = true
		case version.TypeDisplacement:
			if props.DisplacementX, err = ioreader.ReadUint[uint16](r); err != nil {
				return TypeProperties{}, rerr.Invalid("catalogue.readTypeProperties", "displacement x: %v", err)
			}
			if props.DisplacementY, err = ioreader.ReadUint[uint16](r); err != nil {
				return TypeProperties{}, rerr.Invalid("catalogue.readTypeProperties", "displacement y: %v", err)
			}
		case version.TypeDisplacementLegacy:
			props.DisplacementX, props.DisplacementY = 8, 8
		case version.TypeHeight:
			if props.Height, err = ioreader.ReadUint[uint16](r); err != nil {
				return TypeProperties{}, rerr.Invalid("catalogue.readTypeProperties", "height: %v", err)
			}

		// Optional properties below are parsed to stay in sync with the
		// wire format but have no field the core consults.
		case version.TypeContainer, version.TypeWrappable, version.TypeUnwrappable,
			version.TypeTopEffect, version.TypeNoMoveAnimation, version.TypeUsable,
			version.TypeCorpse, version.TypeBlocking, version.TypeUnmovable,
			version.TypeUnpathable, version.TypeTakeable, version.TypeForceUse,
			version.TypeMultiUse, version.TypeTranslucent, version.TypeWalkable,
			version.TypeLookThrough, version.TypeRotate:
			// Flag-only; no inline payload.
		case version.TypeAutomap, version.TypeLenshelp, version.TypeDefaultAction,
			version.TypeUnknownU16, version.TypeWrite, version.TypeWriteOnce,
			version.TypeEquipmentSlot:
			if _, err := ioreader.ReadUint[uint16](r); err != nil {
				return TypeProperties{}, rerr.Invalid("catalogue.readTypeProperties", "%s argument: %v", prop, err)
			}
		case version.TypeLight:
			if _, err := ioreader.ReadUint[uint16](r); err != nil {
				return TypeProperties{}, rerr.Invalid("catalogue.readTypeProperties", "light intensity: %v", err)
			}
			if _, err := ioreader.ReadUint[uint16](r); err != nil {
				return TypeProperties{}, rerr.Invalid("catalogue.readTypeProperties", "light color: %v", err)
			}
		case version.TypeMarketItem:
			for _, field := range []string{"category", "trade as", "show as"} {
				if _, err := ioreader.ReadUint[uint16](r); err != nil {
					return TypeProperties{}, rerr.Invalid("catalogue.readTypeProperties", "market %s: %v", field, err)
				}
			}
			if _, err := r.ReadString(); err != nil {
				return TypeProperties{}, rerr.Invalid("catalogue.readTypeProperties", "market name: %v", err)
			}
			for _, field := range []string{"vocation restriction", "level restriction"} {
				if _, err := ioreader.ReadUint[uint16](r); err != nil {
					return TypeProperties{}, rerr.Invalid("catalogue.readTypeProperties", "market %s: %v", field, err)
				}
			}

		case version.TypeEntryEndMarker:
			return props, nil
		}
	}
}

// readFrameGroup decodes one frame group's geometry, optional animation
// phases, and sprite id list in place.
func readFrameGroup(r *ioreader.Reader, profile *version.Profile, spriteCount int, fg *FrameGroup) (bool, error) {
	fg.Active = true

	total := 1
	var err error

	if fg.SizeX, err = ioreader.ReadUint[uint8](r); err != nil || fg.SizeX == 0 {
		return false, rerr.Invalid("catalogue.readFrameGroup", "size x: %v", err)
	}
	total *= int(fg.SizeX)

	if fg.SizeY, err = ioreader.ReadUint[uint8](r); err != nil || fg.SizeY == 0 {
		return false, rerr.Invalid("catalogue.readFrameGroup", "size y: %v", err)
	}
	total *= int(fg.SizeY)

	if total > 1 {
		if fg.RenderSize, err = ioreader.ReadUint[uint8](r); err != nil {
			return false, rerr.Invalid("catalogue.readFrameGroup", "render size: %v", err)
		}
	} else {
		fg.RenderSize = 32
	}

	if fg.LayerCount, err = ioreader.ReadUint[uint8](r); err != nil || fg.LayerCount == 0 {
		return false, rerr.Invalid("catalogue.readFrameGroup", "layer count: %v", err)
	}
	total *= int(fg.LayerCount)

	if fg.XDiv, err = ioreader.ReadUint[uint8](r); err != nil || fg.XDiv == 0 {
		return false, rerr.Invalid("catalogue.readFrameGroup", "x div: %v", err)
	}
	total *= int(fg.XDiv)

	if fg.YDiv, err = ioreader.ReadUint[uint8](r); err != nil || fg.YDiv == 0 {
		return false, rerr.Invalid("catalogue.readFrameGroup", "y div: %v", err)
	}
	total *= int(fg.YDiv)

	if profile.Features.TypeZDiv {
		if fg.ZDiv, err = ioreader.ReadUint[uint8](r); err != nil || fg.ZDiv == 0 {
			return false, rerr.Invalid("catalogue.readFrameGroup", "z div: %v", err)
		}
	} else {
		fg.ZDiv = 1
	}
	total *= int(fg.ZDiv)

	if fg.FrameCount, err = ioreader.ReadUint[uint8](r); err != nil || fg.FrameCount == 0 {
		return false, rerr.Invalid("catalogue.readFrameGroup", "frame count: %v", err)
	}
	total *= int(fg.FrameCount)

	animated := fg.FrameCount > 1

	if total > 0xFFFF {
		return false, rerr.Invalid("catalogue.readFrameGroup", "sprite count %d is unreasonably large", total)
	}

	if animated && profile.Features.AnimationPhases {
		if fg.StartPhase, err = ioreader.ReadUint[uint8](r); err != nil {
			return false, rerr.Invalid("catalogue.readFrameGroup", "start phase: %v", err)
		}
		if fg.LoopCount, err = ioreader.ReadUint[uint32](r); err != nil {
			return false, rerr.Invalid("catalogue.readFrameGroup", "loop count: %v", err)
		}
		if fg.AnimationType, err = ioreader.ReadUint[uint8](r); err != nil {
			return false, rerr.Invalid("catalogue.readFrameGroup", "animation type: %v", err)
		}

		fg.Phases = make([]AnimationPhase, fg.FrameCount)
		for i := range fg.Phases {
			if fg.Phases[i].Minimum, err = ioreader.ReadUint[uint32](r); err != nil {
				return false, rerr.Invalid("catalogue.readFrameGroup", "phase %d minimum: %v", i, err)
			}
			if fg.Phases[i].Maximum, err = ioreader.ReadUint[uint32](r); err != nil {
				return false, rerr.Invalid("catalogue.readFrameGroup", "phase %d maximum: %v", i, err)
			}
		}
	}

	fg.SpriteIDs = make([]uint32, total)
	for i := range fg.SpriteIDs {
		var id uint32
		if profile.Features.SpriteIndexU32 {
			id, err = ioreader.ReadUint[uint32](r)
		} else {
			var v uint16
			v, err = ioreader.ReadUint[uint16](r)
			id = uint32(v)
		}
		if err != nil {
			return false, rerr.Invalid("catalogue.readFrameGroup", "sprite id %d: %v", i, err)
		}
		if int(id) >= spriteCount {
			return false, rerr.Invalid("catalogue.readFrameGroup", "sprite id %d out of range [0,%d)", id, spriteCount)
		}
		fg.SpriteIDs[i] = id
	}

	return animated, nil
}

// readType decodes one entity's property loop plus its frame group(s).
// hasFrameGroups gates whether a group count/index precede each group;
// only outfits ever pass true, and only when the profile's FrameGroups
// feature is on.
func readType(r *ioreader.Reader, profile *version.Profile, hasFrameGroups bool, spriteCount int) (EntityType, error) {
	props, err := readTypeProperties(r, profile)
	if err != nil {
		return EntityType{}, err
	}
	entity := EntityType{Properties: props}

	groupCount := uint8(1)
	if hasFrameGroups {
		if groupCount, err = ioreader.ReadUint[uint8](r); err != nil {
			return EntityType{}, rerr.Invalid("catalogue.readType", "frame group count: %v", err)
		}
	}

	for i := uint8(0); i < groupCount; i++ {
		currentGroup := uint8(FrameGroupDefault)
		if hasFrameGroups {
			if currentGroup, err = ioreader.ReadUint[uint8](r, FrameGroupIdle, FrameGroupWalking); err != nil {
				return EntityType{}, rerr.Invalid("catalogue.readType", "frame group index: %v", err)
			}
		}

		animated, err := readFrameGroup(r, profile, spriteCount, &entity.FrameGroups[currentGroup])
		if err != nil {
			return EntityType{}, rerr.Invalid("catalogue.readType", "frame group %d: %v", i, err)
		}
		entity.Properties.Animated = animated

		// For types that have the same idle and walking frames, the
		// client simply omits idle and reuses walking; we do the same
		// for versions before frame groups existed at all.
		if profile.Features.FrameGroups {
			idle := entity.FrameGroups[FrameGroupIdle]
			if currentGroup == FrameGroupWalking && (!idle.Active || idle.FrameCount == 0) {
				entity.FrameGroups[FrameGroupIdle] = entity.FrameGroups[FrameGroupWalking]
			}
		} else {
			entity.FrameGroups[FrameGroupWalking] = entity.FrameGroups[currentGroup]
		}
	}

	return entity, nil
}

func readTypeArray(r *ioreader.Reader, profile *version.Profile, hasFrameGroups bool, minID, maxID, spriteCount int) ([]EntityType, error) {
	if maxID < minID {
		return nil, nil
	}
	types := make([]EntityType, maxID-minID+1)
	for i := range types {
		t, err := readType(r, profile, hasFrameGroups, spriteCount)
		if err != nil {
			return nil, rerr.Invalid("catalogue.readTypeArray", "type %d: %v", minID+i, err)
		}
		types[i] = t
	}
	return types, nil
}

// LoadTypeFile decodes the entity-type file: four category headers
// (items, outfits, effects, missiles) each followed by its flat type
// array. spriteCount bounds every sprite id the file references.
func LoadTypeFile(r *ioreader.Reader, profile *version.Profile, spriteCount int) (*TypeFile, error) {
	signature, err := ioreader.ReadUint[uint32](r)
	if err != nil {
		return nil, rerr.Invalid("catalogue.LoadTypeFile", "signature: %v", err)
	}
	maxItemID, err := ioreader.ReadUint[uint16](r)
	if err != nil {
		return nil, rerr.Invalid("catalogue.LoadTypeFile", "max item id: %v", err)
	}
	maxOutfitID, err := ioreader.ReadUint[uint16](r)
	if err != nil {
		return nil, rerr.Invalid("catalogue.LoadTypeFile", "max outfit id: %v", err)
	}
	maxEffectID, err := ioreader.ReadUint[uint16](r)
	if err != nil {
		return nil, rerr.Invalid("catalogue.LoadTypeFile", "max effect id: %v", err)
	}
	maxMissileID, err := ioreader.ReadUint[uint16](r)
	if err != nil {
		return nil, rerr.Invalid("catalogue.LoadTypeFile", "max missile id: %v", err)
	}

	items, err := readTypeArray(r, profile, false, 100, int(maxItemID), spriteCount)
	if err != nil {
		return nil, rerr.Invalid("catalogue.LoadTypeFile", "items: %v", err)
	}
	outfits, err := readTypeArray(r, profile, profile.Features.FrameGroups, 1, int(maxOutfitID), spriteCount)
	if err != nil {
		return nil, rerr.Invalid("catalogue.LoadTypeFile", "outfits: %v", err)
	}
	effects, err := readTypeArray(r, profile, false, 1, int(maxEffectID), spriteCount)
	if err != nil {
		return nil, rerr.Invalid("catalogue.LoadTypeFile", "effects: %v", err)
	}
	missiles, err := readTypeArray(r, profile, false, 1, int(maxMissileID), spriteCount)
	if err != nil {
		return nil, rerr.Invalid("catalogue.LoadTypeFile", "missiles: %v", err)
	}

	return &TypeFile{
		Signature: signature,
		Items:     TypeCategory{MinID: 100, MaxID: int(maxItemID), Types: items},
		Outfits:   TypeCategory{MinID: 1, MaxID: int(maxOutfitID), Types: outfits},
		Effects:   TypeCategory{MinID: 1, MaxID: int(maxEffectID), Types: effects},
		Missiles:  TypeCategory{MinID: 1, MaxID: int(maxMissileID), Types: missiles},
	}, nil
}
