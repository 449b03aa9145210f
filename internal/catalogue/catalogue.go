package catalogue

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tibiacast/tibiarc-sub000/internal/ioreader"
	"github.com/tibiacast/tibiarc-sub000/internal/version"
)

// Catalogue bundles the three immutable per-version asset files: the
// sprite table, the composed pictures, and the entity-type definitions
// for items, outfits, effects and missiles.
type Catalogue struct {
	Sprites  *SpriteFile
	Pictures *PictureFile
	Types    *TypeFile
}

// Load decodes all three asset files for profile. Pictures embed their
// own sprite records and don't need the sprite file; the entity-type
// file validates every sprite id it references against the sprite
// file's count, so sprites decode first and pictures/types then proceed
// concurrently.
func Load(ctx context.Context, profile *version.Profile, spriteData, pictureData, typeData []byte) (*Catalogue, error) {
	sprites, err := LoadSpriteFile(ioreader.New(spriteData), profile)
	if err != nil {
		return nil, err
	}

	var pictures *PictureFile
	var types *TypeFile

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := LoadPictureFile(ioreader.New(pictureData), profile)
		if err != nil {
			return err
		}
		pictures = p
		return nil
	})
	g.Go(func() error {
		t, err := LoadTypeFile(ioreader.New(typeData), profile, len(sprites.Sprites))
		if err != nil {
			return err
		}
		types = t
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Catalogue{Sprites: sprites, Pictures: pictures, Types: types}, nil
}

// GetItem resolves an item's entity type by id, failing InvalidData when
// id falls outside this version's item id space.
func (c *Catalogue) GetItem(id uint16) (*EntityType, error) {
	return c.Types.Items.get("catalogue.Catalogue.GetItem", int(id))
}

// GetOutfit resolves an outfit's entity type by id.
func (c *Catalogue) GetOutfit(id uint16) (*EntityType, error) {
	return c.Types.Outfits.get("catalogue.Catalogue.GetOutfit", int(id))
}

// GetEffect resolves an effect's entity type by id.
func (c *Catalogue) GetEffect(id uint16) (*EntityType, error) {
	return c.Types.Effects.get("catalogue.Catalogue.GetEffect", int(id))
}

// GetMissile resolves a missile's entity type by id.
func (c *Catalogue) GetMissile(id uint16) (*EntityType, error) {
	return c.Types.Missiles.get("catalogue.Catalogue.GetMissile", int(id))
}
