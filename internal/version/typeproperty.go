package version

// TypeProperty names one attribute kind found in the entity-type file's
// property loop. Wire byte values are version-dependent and resolved
// through Profile.TranslateTypeProperty, never used directly.
type TypeProperty int

const (
	TypeAnimateIdle TypeProperty = iota
	TypeAutomap
	TypeBlocking
	TypeBottom
	TypeClip
	TypeContainer
	TypeCorpse
	TypeDefaultAction
	TypeDisplacementLegacy
	TypeDisplacement
	TypeDontHide
	TypeEquipmentSlot
	TypeForceUse
	TypeGround
	TypeHangable
	TypeHeight
	TypeHorizontal
	TypeLenshelp
	TypeLight
	TypeLiquidContainer
	TypeLiquidPool
	TypeLookThrough
	TypeMarketItem
	TypeMultiUse
	TypeNoMoveAnimation
	TypeRedrawNearbyTop
	TypeRotate
	TypeRune
	TypeStackable
	TypeTakeable
	TypeTopEffect
	TypeTop
	TypeTranslucent
	TypeUnknownU16
	TypeUnlookable
	TypeUnmovable
	TypeUnpathable
	TypeUnwrappable
	TypeUsable
	TypeVertical
	TypeWalkable
	TypeWrappable
	TypeWriteOnce
	TypeWrite

	// TypeEntryEndMarker is never stored in the table; wire byte 0xFF is
	// special-cased by TranslateTypeProperty to return it directly.
	TypeEntryEndMarker
)

func (p TypeProperty) String() string {
	switch p {
	case TypeAnimateIdle:
		return "AnimateIdle"
	case TypeAutomap:
		return "Automap"
	case TypeBlocking:
		return "Blocking"
	case TypeBottom:
		return "Bottom"
	case TypeClip:
		return "Clip"
	case TypeContainer:
		return "Container"
	case TypeCorpse:
		return "Corpse"
	case TypeDefaultAction:
		return "DefaultAction"
	case TypeDisplacementLegacy:
		return "DisplacementLegacy"
	case TypeDisplacement:
		return "Displacement"
	case TypeDontHide:
		return "DontHide"
	case TypeEquipmentSlot:
		return "EquipmentSlot"
	case TypeForceUse:
		return "ForceUse"
	case TypeGround:
		return "Ground"
	case TypeHangable:
		return "Hangable"
	case TypeHeight:
		return "Height"
	case TypeHorizontal:
		return "Horizontal"
	case TypeLenshelp:
		return "Lenshelp"
	case TypeLight:
		return "Light"
	case TypeLiquidContainer:
		return "LiquidContainer"
	case TypeLiquidPool:
		return "LiquidPool"
	case TypeLookThrough:
		return "LookThrough"
	case TypeMarketItem:
		return "MarketItem"
	case TypeMultiUse:
		return "MultiUse"
	case TypeNoMoveAnimation:
		return "NoMoveAnimation"
	case TypeRedrawNearbyTop:
		return "RedrawNearbyTop"
	case TypeRotate:
		return "Rotate"
	case TypeRune:
		return "Rune"
	case TypeStackable:
		return "Stackable"
	case TypeTakeable:
		return "Takeable"
	case TypeTopEffect:
		return "TopEffect"
	case TypeTop:
		return "Top"
	case TypeTranslucent:
		return "Translucent"
	case TypeUnknownU16:
		return "UnknownU16"
	case TypeUnlookable:
		return "Unlookable"
	case TypeUnmovable:
		return "Unmovable"
	case TypeUnpathable:
		return "Unpathable"
	case TypeUnwrappable:
		return "Unwrappable"
	case TypeUsable:
		return "Usable"
	case TypeVertical:
		return "Vertical"
	case TypeWalkable:
		return "Walkable"
	case TypeWrappable:
		return "Wrappable"
	case TypeWriteOnce:
		return "WriteOnce"
	case TypeWrite:
		return "Write"
	case TypeEntryEndMarker:
		return "EntryEndMarker"
	default:
		return "TypeProperty(?)"
	}
}
