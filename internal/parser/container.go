package parser

import (
	"github.com/tibiacast/tibiarc-sub000/internal/event"
	"github.com/tibiacast/tibiarc-sub000/internal/ioreader"
	"github.com/tibiacast/tibiarc-sub000/internal/model"
	"github.com/tibiacast/tibiarc-sub000/internal/rerr"
)

// readContainerIndex reads an item index, u16 when ContainerIndexU16
// is set, u8 otherwise.
func (p *Parser) readContainerIndex(r *ioreader.Reader) (int, error) {
	if p.Profile.Protocol.ContainerIndexU16 {
		v, err := ioreader.ReadUint[uint16](r)
		return int(v), err
	}
	v, err := ioreader.ReadUint[uint8](r)
	return int(v), err
}

func (p *Parser) parseContainerOpen(r *ioreader.Reader) error {
	slot, err := ioreader.ReadUint[uint8](r)
	if err != nil {
		return rerr.Invalid("parser.Parser.parseContainerOpen", "slot: %v", err)
	}
	itemID, err := ioreader.ReadUint[uint16](r)
	if err != nil {
		return rerr.Invalid("parser.Parser.parseContainerOpen", "item id: %v", err)
	}
	if _, err := p.Catalogue.GetItem(itemID); err != nil {
		return err
	}
	name, err := r.ReadString()
	if err != nil {
		return rerr.Invalid("parser.Parser.parseContainerOpen", "name: %v", err)
	}
	slotsPerPage, err := ioreader.ReadUint[uint8](r)
	if err != nil {
		return rerr.Invalid("parser.Parser.parseContainerOpen", "slots per page: %v", err)
	}
	hasParentByte, err := ioreader.ReadUint[uint8](r)
	if err != nil {
		return rerr.Invalid("parser.Parser.parseContainerOpen", "has parent: %v", err)
	}

	c := model.Container{
		Slot:         slot,
		ItemID:       itemID,
		Name:         name,
		SlotsPerPage: slotsPerPage,
		HasParent:    hasParentByte != 0,
	}

	var itemCount int
	if p.Profile.Protocol.ContainerPagination {
		dragByte, err := ioreader.ReadUint[uint8](r)
		if err != nil {
			return rerr.Invalid("parser.Parser.parseContainerOpen", "drag and drop: %v", err)
		}
		c.DragAndDrop = dragByte != 0
		c.Pagination = true

		total, err := ioreader.ReadUint[uint16](r)
		if err != nil {
			return rerr.Invalid("parser.Parser.parseContainerOpen", "total objects: %v", err)
		}
		start, err := ioreader.ReadUint[uint16](r)
		if err != nil {
			return rerr.Invalid("parser.Parser.parseContainerOpen", "start index: %v", err)
		}
		c.TotalObjects = total
		c.StartIndex = start

		itemCount = int(total) - int(start)
		if itemCount < 0 {
			itemCount = 0
		}
		if itemCount > int(slotsPerPage) {
			itemCount = int(slotsPerPage)
		}
	} else {
		count, err := ioreader.ReadUint[uint8](r)
		if err != nil {
			return rerr.Invalid("parser.Parser.parseContainerOpen", "item count: %v", err)
		}
		itemCount = int(count)
		c.TotalObjects = uint16(count)
	}

	items := make([]model.Object, 0, itemCount)
	for i := 0; i < itemCount; i++ {
		obj, err := p.readObject(r)
		if err != nil {
			return err
		}
		items = append(items, obj)
	}
	c.Items = items

	p.emit(event.ContainerOpened{Container: c})
	return nil
}

func (p *Parser) parseContainerClose(r *ioreader.Reader) error {
	slot, err := ioreader.ReadUint[uint8](r)
	if err != nil {
		return rerr.Invalid("parser.Parser.parseContainerClose", "slot: %v", err)
	}
	p.emit(event.ContainerClosed{Slot: slot})
	return nil
}

func (p *Parser) parseContainerAddItem(r *ioreader.Reader) error {
	slot, err := ioreader.ReadUint[uint8](r)
	if err != nil {
		return rerr.Invalid("parser.Parser.parseContainerAddItem", "slot: %v", err)
	}
	item, err := p.readObject(r)
	if err != nil {
		return err
	}
	p.emit(event.ContainerAddedItem{Slot: slot, Item: item})
	return nil
}

func (p *Parser) parseContainerTransformItem(r *ioreader.Reader) error {
	slot, err := ioreader.ReadUint[uint8](r)
	if err != nil {
		return rerr.Invalid("parser.Parser.parseContainerTransformItem", "slot: %v", err)
	}
	index, err := p.readContainerIndex(r)
	if err != nil {
		return rerr.Invalid("parser.Parser.parseContainerTransformItem", "index: %v", err)
	}
	item, err := p.readObject(r)
	if err != nil {
		return err
	}
	p.emit(event.ContainerTransformedItem{Slot: slot, Index: index, Item: item})
	return nil
}

func (p *Parser) parseContainerRemoveItem(r *ioreader.Reader) error {
	slot, err := ioreader.ReadUint[uint8](r)
	if err != nil {
		return rerr.Invalid("parser.Parser.parseContainerRemoveItem", "slot: %v", err)
	}
	index, err := p.readContainerIndex(r)
	if err != nil {
		return rerr.Invalid("parser.Parser.parseContainerRemoveItem", "index: %v", err)
	}

	var backfill *model.Object
	if p.Profile.Protocol.ContainerIndexU16 {
		obj, err := p.readObject(r)
		if err != nil {
			return err
		}
		backfill = &obj
	}

	p.emit(event.ContainerRemovedItem{Slot: slot, Index: index, Backfill: backfill})
	return nil
}
