package catalogue

import (
	"github.com/tibiacast/tibiarc-sub000/internal/ioreader"
	"github.com/tibiacast/tibiarc-sub000/internal/rerr"
	"github.com/tibiacast/tibiarc-sub000/internal/version"
)

// PictureKind names one of the fixed slots a picture file carries.
type PictureKind int

const (
	PictureSplashBackground PictureKind = iota
	PictureSplashLogo
	PictureTutorial
	PictureFontUnbordered
	PictureIcons
	PictureFontGame
	PictureFontInterfaceSmall
	PictureLightFallbacks
	PictureFontInterfaceLarge
)

// Picture is an RGBA canvas composed from a grid of 32x32 sub-sprites.
type Picture struct {
	Width, Height int
	Pixels        []byte
}

// PictureFile holds every picture decoded for one client version. Not
// every kind is present in every version; absent kinds are simply
// missing from the map.
type PictureFile struct {
	Signature uint32
	Pictures  map[PictureKind]Picture
}

// Get returns the picture for kind, or ok=false if this version's file
// never carried it.
func (f *PictureFile) Get(kind PictureKind) (Picture, bool) {
	p, ok := f.Pictures[kind]
	return p, ok
}

// blit copies a decoded 32x32 sprite into canvas at the tile position
// (tileX, tileY), each tile being 32x32 pixels wide.
func blit(canvas []byte, canvasWidth, tileX, tileY int, sprite Sprite) {
	for row := 0; row < spriteHeight; row++ {
		srcOff := row * spriteWidth * 4
		dstOff := ((tileY*spriteHeight+row)*canvasWidth + tileX*spriteWidth) * 4
		copy(canvas[dstOff:dstOff+spriteWidth*4], sprite.Pixels[srcOff:srcOff+spriteWidth*4])
	}
}

// readPicture decodes one picture: a tiles-wide/tiles-tall header
// followed by that many sprite offsets, each pointing at a sprite record
// laid out exactly like the sprite file's own.
func readPicture(r *ioreader.Reader) (Picture, error) {
	tilesWide, err := ioreader.ReadUint[uint8](r, 1, 127)
	if err != nil {
		return Picture{}, rerr.Invalid("catalogue.readPicture", "tiles wide: %v", err)
	}
	tilesTall, err := ioreader.ReadUint[uint8](r, 1, 127)
	if err != nil {
		return Picture{}, rerr.Invalid("catalogue.readPicture", "tiles tall: %v", err)
	}
	if err := r.Skip(3); err != nil {
		return Picture{}, rerr.Invalid("catalogue.readPicture", "colour key: %v", err)
	}

	width := int(tilesWide) * spriteWidth
	height := int(tilesTall) * spriteHeight
	canvas := make([]byte, width*height*4)

	for y := 0; y < int(tilesTall); y++ {
		for x := 0; x < int(tilesWide); x++ {
			spriteOffset, err := ioreader.ReadUint[uint32](r)
			if err != nil {
				return Picture{}, rerr.Invalid("catalogue.readPicture", "sprite offset: %v", err)
			}

			tileReader, err := r.Seek(int(spriteOffset))
			if err != nil {
				// A bad offset leaves this tile transparent; the rest
				// of the picture is still worth keeping.
				continue
			}
			length, err := ioreader.ReadUint[uint16](tileReader)
			if err != nil || length == 0 {
				continue
			}
			body, err := tileReader.Slice(int(length))
			if err != nil {
				continue
			}
			sprite, err := decodeSprite(body)
			if err != nil {
				continue
			}
			blit(canvas, width, x, y, sprite)
		}
	}

	return Picture{Width: width, Height: height, Pixels: canvas}, nil
}

// LoadPictureFile decodes the splash/tutorial/font/icon pictures for
// profile. Some kinds are absent in older versions; the fixed read
// sequence below mirrors exactly which ones a given profile carries.
func LoadPictureFile(r *ioreader.Reader, profile *version.Profile) (*PictureFile, error) {
	signature, err := ioreader.ReadUint[uint32](r)
	if err != nil {
		return nil, rerr.Invalid("catalogue.LoadPictureFile", "signature: %v", err)
	}
	// Picture count must stay in sync with the read sequence below; it's
	// otherwise unused here.
	if _, err := ioreader.ReadUint[uint16](r, 8, 9); err != nil {
		return nil, rerr.Invalid("catalogue.LoadPictureFile", "picture count: %v", err)
	}

	pictures := map[PictureKind]Picture{}
	readInto := func(kind PictureKind) error {
		p, err := readPicture(r)
		if err != nil {
			return err
		}
		pictures[kind] = p
		return nil
	}

	if err := readInto(PictureSplashBackground); err != nil {
		return nil, err
	}
	if profile.AtLeast(9, 0) {
		if err := readInto(PictureSplashLogo); err != nil {
			return nil, err
		}
	}
	for _, kind := range []PictureKind{
		PictureTutorial,
		PictureFontUnbordered,
		PictureIcons,
		PictureFontGame,
		PictureFontInterfaceSmall,
		PictureLightFallbacks,
		PictureFontInterfaceLarge,
	} {
		if err := readInto(kind); err != nil {
			return nil, err
		}
	}

	return &PictureFile{Signature: signature, Pictures: pictures}, nil
}
