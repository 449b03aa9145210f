// Package catalogue decodes the three immutable per-version asset files:
// sprites, composed pictures, and entity-type definitions.
package catalogue

import (
	"github.com/tibiacast/tibiarc-sub000/internal/ioreader"
	"github.com/tibiacast/tibiarc-sub000/internal/rerr"
	"github.com/tibiacast/tibiarc-sub000/internal/version"
)

// maxSpriteCount bounds the sprite count field so a version mismatch (the
// field is 16 or 32 bits depending on the profile) fails cleanly instead
// of driving an enormous allocation.
const maxSpriteCount = 1 << 20

const (
	spriteWidth  = 32
	spriteHeight = 32
)

// Sprite is a decoded 32x32 RGBA pixel block. Transparent pixels are the
// zero value; corrupt sprites decode as fully transparent rather than
// failing the whole load.
type Sprite struct {
	Pixels [spriteWidth * spriteHeight * 4]byte
}

// SpriteFile is the flat, index-addressed table of every sprite for one
// client version. Id 0 is always the empty sprite.
type SpriteFile struct {
	Signature uint32
	IndexSize int
	Sprites   []Sprite
}

// GetSprite returns the sprite at id, per sprites_GetObjectSprite's
// inclusive-of-count range check.
func (f *SpriteFile) GetSprite(id uint32) (*Sprite, error) {
	if id >= uint32(len(f.Sprites)) {
		return nil, rerr.Invalid("catalogue.SpriteFile.GetSprite", "id %d out of range [0,%d]", id, len(f.Sprites)-1)
	}
	return &f.Sprites[id], nil
}

// decodeSprite fills a 32x32 RGBA sprite from its run-length-encoded
// payload: alternating transparent/opaque pixel-count pairs, each opaque
// pixel stored as 3 bytes RGB and expanded here to RGBA with alpha 0xFF.
func decodeSprite(r *ioreader.Reader) (Sprite, error) {
	var sprite Sprite
	total := spriteWidth * spriteHeight
	pos := 0

	for r.Remaining() > 0 {
		transparent, err := ioreader.ReadUint[uint16](r)
		if err != nil {
			return Sprite{}, rerr.Invalid("catalogue.decodeSprite", "transparent run: %v", err)
		}
		if pos+int(transparent) > total {
			return Sprite{}, rerr.Invalid("catalogue.decodeSprite", "transparent run overruns sprite")
		}
		pos += int(transparent)

		opaque, err := ioreader.ReadUint[uint16](r)
		if err != nil {
			return Sprite{}, rerr.Invalid("catalogue.decodeSprite", "opaque run: %v", err)
		}
		if pos+int(opaque) > total {
			return Sprite{}, rerr.Invalid("catalogue.decodeSprite", "opaque run overruns sprite")
		}

		for i := 0; i < int(opaque); i++ {
			rgb, err := r.Bytes(3)
			if err != nil {
				return Sprite{}, rerr.Invalid("catalogue.decodeSprite", "pixel %d: %v", pos, err)
			}
			off := pos * 4
			sprite.Pixels[off+0] = rgb[0]
			sprite.Pixels[off+1] = rgb[1]
			sprite.Pixels[off+2] = rgb[2]
			sprite.Pixels[off+3] = 0xFF
			pos++
		}
	}

	return sprite, nil
}

// loadObjectSprite decodes the sprite record at the reader's current
// position: a 3-byte colour key (ignored), a u16 payload length, then the
// RLE block itself. It's common for sprite files in the wild to be
// subtly corrupt; a failure here is tolerated by leaving the sprite
// empty rather than aborting the whole file.
func loadObjectSprite(r *ioreader.Reader) Sprite {
	if err := r.Skip(3); err != nil {
		return Sprite{}
	}
	length, err := ioreader.ReadUint[uint16](r)
	if err != nil {
		return Sprite{}
	}
	body, err := r.Slice(int(length))
	if err != nil {
		return Sprite{}
	}
	sprite, err := decodeSprite(body)
	if err != nil {
		return Sprite{}
	}
	return sprite
}

// LoadSpriteFile reads the sprite file's header and offset table, then
// decodes every sprite record they point at.
func LoadSpriteFile(r *ioreader.Reader, profile *version.Profile) (*SpriteFile, error) {
	indexSize := 2
	if profile.Features.SpriteIndexU32 {
		indexSize = 4
	}

	signature, err := ioreader.ReadUint[uint32](r)
	if err != nil {
		return nil, rerr.Invalid("catalogue.LoadSpriteFile", "signature: %v", err)
	}

	var spriteCount uint32
	if indexSize == 4 {
		spriteCount, err = ioreader.ReadUint[uint32](r)
	} else {
		var v uint16
		v, err = ioreader.ReadUint[uint16](r)
		spriteCount = uint32(v)
	}
	if err != nil {
		return nil, rerr.Invalid("catalogue.LoadSpriteFile", "sprite count: %v", err)
	}
	if spriteCount > maxSpriteCount {
		return nil, rerr.Invalid("catalogue.LoadSpriteFile", "sprite count %d out of range", spriteCount)
	}

	basePosition := r.Tell()
	indexEnd := basePosition + int(spriteCount)*4

	// Id 0, the empty sprite, is implicit and not stored in the file.
	count := spriteCount + 1
	sprites := make([]Sprite, count)

	for id := uint32(1); id < count; id++ {
		indexOffset := basePosition + int(id-1)*4

		indexReader, err := r.Seek(indexOffset)
		if err != nil {
			continue
		}
		spriteOffset, err := ioreader.ReadUint[uint32](indexReader)
		if err != nil {
			continue
		}
		if int(spriteOffset) < indexEnd {
			continue
		}

		dataReader, err := r.Seek(int(spriteOffset))
		if err != nil {
			continue
		}
		sprites[id] = loadObjectSprite(dataReader)
	}

	return &SpriteFile{Signature: signature, IndexSize: indexSize, Sprites: sprites}, nil
}
