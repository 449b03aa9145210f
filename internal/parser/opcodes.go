package parser

// Opcode values implemented by dispatch. Pre-9.72, 0x0A is the
// initialisation packet; post-9.72 the same byte is repurposed as a
// keepalive ping (handled inline in dispatch rather than as a separate
// constant, since it carries no fields either way).
const (
	opWorldInit       uint8 = 0x0A
	opFullMap         uint8 = 0x64
	opFloorChangeUp   uint8 = 0xBE
	opFloorChangeDown uint8 = 0xBF

	opTileObjectAdded       uint8 = 0x6A
	opTileObjectTransformed uint8 = 0x6B
	opTileObjectRemoved     uint8 = 0x6C
	opCreatureMoved         uint8 = 0x6D

	opContainerOpen          uint8 = 0x6E
	opContainerClose         uint8 = 0x6F
	opContainerAddItem       uint8 = 0x70
	opContainerTransformItem uint8 = 0x71
	opContainerRemoveItem    uint8 = 0x72

	opPlayerDataBasic   uint8 = 0x9F
	opPlayerDataCurrent uint8 = 0xA0
	opPlayerTactics     uint8 = 0xA7

	opCreatureSpeak uint8 = 0xAA
	opTextMessage   uint8 = 0xB4
)

// Object sub-parser sentinels (§4.6 "Object").
const (
	objectNull            uint16 = 0x00
	objectCreatureSeen    uint16 = 0x61
	objectCreatureUpdated uint16 = 0x62
	objectCreatureCompact uint16 = 0x63
)

// tileDescriptionTerminator is the threshold a peeked u16 must reach for
// a tile description's object loop to stop (§4.6 TileDescription).
const tileDescriptionTerminator uint16 = 0xFF00
