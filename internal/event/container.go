package event

import (
	"github.com/tibiacast/tibiarc-sub000/internal/gamestate"
	"github.com/tibiacast/tibiarc-sub000/internal/model"
)

// ContainerOpened seeds (or replaces) a container at a slot.
type ContainerOpened struct {
	Container model.Container
}

func (e ContainerOpened) Apply(s *gamestate.State) {
	c := e.Container
	s.Containers[c.Slot] = &c
}

// ContainerClosed frees a container slot.
type ContainerClosed struct {
	Slot uint8
}

func (e ContainerClosed) Apply(s *gamestate.State) { delete(s.Containers, e.Slot) }

// ContainerAddedItem inserts an item at the front of a container's
// current page.
type ContainerAddedItem struct {
	Slot uint8
	Item model.Object
}

func (e ContainerAddedItem) Apply(s *gamestate.State) {
	c, ok := s.Containers[e.Slot]
	if !ok {
		return
	}
	c.Items = append([]model.Object{e.Item}, c.Items...)
	if len(c.Items) > int(c.SlotsPerPage) && c.SlotsPerPage > 0 {
		c.Items = c.Items[:c.SlotsPerPage]
	}
	c.TotalObjects++
}

// ContainerTransformedItem overwrites an item at a known page index.
type ContainerTransformedItem struct {
	Slot  uint8
	Index int
	Item  model.Object
}

func (e ContainerTransformedItem) Apply(s *gamestate.State) {
	c, ok := s.Containers[e.Slot]
	if !ok || e.Index < 0 || e.Index >= len(c.Items) {
		return
	}
	c.Items[e.Index] = e.Item
}

// ContainerRemovedItem removes an item at a known page index, optionally
// backfilling from the next page.
type ContainerRemovedItem struct {
	Slot     uint8
	Index    int
	Backfill *model.Object
}

func (e ContainerRemovedItem) Apply(s *gamestate.State) {
	c, ok := s.Containers[e.Slot]
	if !ok || e.Index < 0 || e.Index >= len(c.Items) {
		return
	}
	c.Items = append(c.Items[:e.Index], c.Items[e.Index+1:]...)
	if e.Backfill != nil {
		c.Items = append(c.Items, *e.Backfill)
	}
	if c.TotalObjects > 0 {
		c.TotalObjects--
	}
}

// PlayerInventoryUpdated sets or clears one of the player's ten
// equipment slots.
type PlayerInventoryUpdated struct {
	Slot  model.InventorySlot
	Item  model.Object
	Clear bool
}

func (e PlayerInventoryUpdated) Apply(s *gamestate.State) {
	if int(e.Slot) >= model.InventorySlotCount {
		return
	}
	if e.Clear {
		s.Player.Inventory[e.Slot] = model.Object{}
	} else {
		s.Player.Inventory[e.Slot] = e.Item
	}
}
