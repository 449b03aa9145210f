package parser

import (
	"github.com/tibiacast/tibiarc-sub000/internal/ioreader"
	"github.com/tibiacast/tibiarc-sub000/internal/model"
	"github.com/tibiacast/tibiarc-sub000/internal/rerr"
)

// readPosition reads a three-field absolute map position. X/Y carry no
// range check of their own — only Z, which indexes a fixed 16-floor
// world, is bounded. The tile-buffer window bounds apply to the
// separate floor/map-description window offsets (readFloorDescription,
// readMapDescription), not to a general position read.
func readPosition(r *ioreader.Reader) (model.Position, error) {
	x, err := ioreader.ReadUint[uint16](r)
	if err != nil {
		return model.Position{}, rerr.Invalid("parser.readPosition", "x: %v", err)
	}
	y, err := ioreader.ReadUint[uint16](r)
	if err != nil {
		return model.Position{}, rerr.Invalid("parser.readPosition", "y: %v", err)
	}
	z, err := ioreader.ReadUint[uint8](r, 0, 15)
	if err != nil {
		return model.Position{}, rerr.Invalid("parser.readPosition", "z: %v", err)
	}
	return model.Position{X: x, Y: y, Z: z}, nil
}

// readAppearance reads an outfit descriptor: either a plain item worn as
// a disguise (outfit id zero) or a full type id with colour channels and
// optional addons/mount, validated against the catalogue.
func (p *Parser) readAppearance(r *ioreader.Reader) (model.Outfit, error) {
	var outfitID uint16
	var err error
	if p.Profile.Protocol.OutfitsU16 {
		outfitID, err = ioreader.ReadUint[uint16](r)
	} else {
		var v uint8
		v, err = ioreader.ReadUint[uint8](r)
		outfitID = uint16(v)
	}
	if err != nil {
		return model.Outfit{}, rerr.Invalid("parser.Parser.readAppearance", "outfit id: %v", err)
	}

	if outfitID == 0 {
		itemID, err := ioreader.ReadUint[uint16](r)
		if err != nil {
			return model.Outfit{}, rerr.Invalid("parser.Parser.readAppearance", "item id: %v", err)
		}
		if itemID != 0 && itemID < 100 {
			return model.Outfit{}, rerr.Invalid("parser.Parser.readAppearance", "item id %d below the reserved item range", itemID)
		}
		if itemID != 0 {
			if _, err := p.Catalogue.GetItem(itemID); err != nil {
				return model.Outfit{}, err
			}
		}
		return model.Outfit{ItemID: itemID}, nil
	}

	if _, err := p.Catalogue.GetOutfit(outfitID); err != nil {
		return model.Outfit{}, err
	}

	out := model.Outfit{TypeID: outfitID}
	fields := []*uint8{&out.Head, &out.Primary, &out.Secondary, &out.Detail}
	for _, f := range fields {
		v, err := ioreader.ReadUint[uint8](r)
		if err != nil {
			return model.Outfit{}, rerr.Invalid("parser.Parser.readAppearance", "colour: %v", err)
		}
		*f = v
	}

	if p.Profile.Protocol.OutfitAddons {
		v, err := ioreader.ReadUint[uint8](r)
		if err != nil {
			return model.Outfit{}, rerr.Invalid("parser.Parser.readAppearance", "addons: %v", err)
		}
		out.Addons = v
	}
	if p.Profile.Protocol.Mounts {
		v, err := ioreader.ReadUint[uint16](r)
		if err != nil {
			return model.Outfit{}, rerr.Invalid("parser.Parser.readAppearance", "mount id: %v", err)
		}
		out.MountID = v
	}
	return out, nil
}
