package model

import "testing"

// TestInsertAtCreatureAboveTopModernStacking reproduces the documented
// stacking scenario: a ground item and a top item already on the tile,
// inserting a creature under modern stacking rules must land strictly
// after the top item, not before it.
func TestInsertAtCreatureAboveTopModernStacking(t *testing.T) {
	tile := Tile{Objects: []Object{
		{ID: 1, StackPriority: PriorityGround},
		{ID: 2, StackPriority: PriorityTop},
	}}

	creature := CreatureRef(42, 0)
	if err := tile.InsertAt(creature, creature.StackPriority, true); err != nil {
		t.Fatalf("InsertAt: %v", err)
	}

	if len(tile.Objects) != 3 {
		t.Fatalf("len(Objects) = %d, want 3", len(tile.Objects))
	}
	if tile.Objects[0].ID != 1 || tile.Objects[1].ID != 2 {
		t.Fatalf("ground/top order disturbed: %+v", tile.Objects)
	}
	if !tile.Objects[2].IsCreature || tile.Objects[2].CreatureID != 42 {
		t.Fatalf("creature not placed last: %+v", tile.Objects)
	}
}

func TestInsertAtLegacyStackingInsertsAtOrAbove(t *testing.T) {
	tile := Tile{Objects: []Object{
		{ID: 1, StackPriority: PriorityGround},
		{ID: 2, StackPriority: PriorityCreature},
	}}

	other := CreatureRef(7, 0)
	if err := tile.InsertAt(other, other.StackPriority, false); err != nil {
		t.Fatalf("InsertAt: %v", err)
	}

	if len(tile.Objects) != 3 || tile.Objects[1].CreatureID != 7 {
		t.Fatalf("expected new creature inserted at index 1, got %+v", tile.Objects)
	}
}

func TestInsertAtRejectsFullTile(t *testing.T) {
	tile := Tile{}
	for i := 0; i < TileObjectCapacity; i++ {
		tile.Objects = append(tile.Objects, Object{ID: uint16(i), StackPriority: PriorityDefault})
	}
	if err := tile.InsertAt(Item(99), PriorityDefault, true); err == nil {
		t.Fatalf("expected capacity error")
	}
}
