package render

import (
	"github.com/tibiacast/tibiarc-sub000/internal/catalogue"
	"github.com/tibiacast/tibiarc-sub000/internal/gamestate"
	"github.com/tibiacast/tibiarc-sub000/internal/model"
)

const spriteSize = 32

// Compositor flattens a GameState's visible tile window into a single
// RGBA buffer, one 32x32 sprite cell per tile, by looking up each tile's
// topmost object in the shared catalogue. It holds no state of its own
// beyond the catalogue reference, so one instance serves every tick.
type Compositor struct {
	Catalogue *catalogue.Catalogue
}

// Compose renders the TileBufferWidth x TileBufferHeight window centred
// on state.Center's floor into a freshly allocated RGBA buffer. Creature
// tiles are left transparent: compositing a creature's outfit requires
// per-direction/mount sprite selection the catalogue's FrameGroup
// encodes but which this pass, scoped to items only, does not resolve.
func (c *Compositor) Compose(state *gamestate.State) (pixels []byte, stride, w, h int) {
	w = model.TileBufferWidth * spriteSize
	h = model.TileBufferHeight * spriteSize
	stride = w * 4
	pixels = make([]byte, stride*h)

	baseX := int(state.Center.X) - model.TileBufferWidth/2
	baseY := int(state.Center.Y) - model.TileBufferHeight/2

	for ty := 0; ty < model.TileBufferHeight; ty++ {
		for tx := 0; tx < model.TileBufferWidth; tx++ {
			pos := model.Position{
				X: uint16(baseX + tx),
				Y: uint16(baseY + ty),
				Z: state.Center.Z,
			}
			tile, ok := state.Map.Tiles[pos]
			if !ok || len(tile.Objects) == 0 {
				continue
			}
			obj := tile.Objects[len(tile.Objects)-1]
			if obj.IsCreature {
				continue
			}
			sprite := c.itemSprite(obj.ID)
			if sprite == nil {
				continue
			}
			blit(pixels, stride, tx*spriteSize, ty*spriteSize, sprite)
		}
	}
	return pixels, stride, w, h
}

// itemSprite resolves an item id's first idle-frame sprite, or nil if
// the catalogue has nothing to show for it.
func (c *Compositor) itemSprite(itemID uint16) *catalogue.Sprite {
	if c.Catalogue == nil || c.Catalogue.Types == nil {
		return nil
	}
	entity, err := c.Catalogue.GetItem(itemID)
	if err != nil {
		return nil
	}
	group := entity.FrameGroups[catalogue.FrameGroupDefault]
	if !group.Active || len(group.SpriteIDs) == 0 {
		return nil
	}
	sprite, err := c.Catalogue.Sprites.GetSprite(group.SpriteIDs[0])
	if err != nil {
		return nil
	}
	return sprite
}

// blit copies a 32x32 sprite into pixels at (x0, y0), skipping
// transparent source pixels so lower stack entries would show through
// were this called bottom-up instead of top-only.
func blit(pixels []byte, stride, x0, y0 int, sprite *catalogue.Sprite) {
	for sy := 0; sy < spriteSize; sy++ {
		srcRow := sy * spriteSize * 4
		dstRow := (y0+sy)*stride + x0*4
		for sx := 0; sx < spriteSize; sx++ {
			si := srcRow + sx*4
			di := dstRow + sx*4
			if sprite.Pixels[si+3] == 0 {
				continue
			}
			copy(pixels[di:di+4], sprite.Pixels[si:si+4])
		}
	}
}
