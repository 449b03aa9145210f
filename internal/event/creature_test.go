package event

import (
	"testing"

	"github.com/tibiacast/tibiarc-sub000/internal/gamestate"
	"github.com/tibiacast/tibiarc-sub000/internal/model"
	"github.com/tibiacast/tibiarc-sub000/internal/version"
)

func newTestState() *gamestate.State {
	// Below 9.0 so Protocol.SpeedAdjustment is off and WalkSpeed uses the
	// plain max(1, speed) branch, matching the arithmetic these tests do
	// by hand.
	return gamestate.New(version.New(version.Triplet{Major: 8, Minor: 60}, nil))
}

func TestCreatureMovedSentinelFormComputesWalkDuration(t *testing.T) {
	s := newTestState()
	s.CurrentTick = 1000

	origin := model.Position{X: 10, Y: 10, Z: 7}
	target := model.Position{X: 11, Y: 10, Z: 7}
	s.Map.TileAt(target).Objects = []model.Object{
		{StackPriority: model.PriorityGround, GroundSpeed: 100},
	}
	c := &model.Creature{ID: 1, Speed: 200}
	s.UpsertCreature(c)

	CreatureMoved{ID: 1, Origin: origin, Target: target}.Apply(s)

	if c.Movement.StartTick != 1000 {
		t.Fatalf("StartTick = %d, want 1000", c.Movement.StartTick)
	}
	wantDuration := uint32(100 * 1000 / 200)
	if c.Movement.EndTick != 1000+wantDuration {
		t.Fatalf("EndTick = %d, want %d", c.Movement.EndTick, 1000+wantDuration)
	}
}

func TestCreatureMovedFloorChangeIsInstantaneous(t *testing.T) {
	s := newTestState()
	s.CurrentTick = 500

	origin := model.Position{X: 10, Y: 10, Z: 7}
	target := model.Position{X: 10, Y: 10, Z: 6}
	s.Map.TileAt(target).Objects = []model.Object{
		{StackPriority: model.PriorityGround, GroundSpeed: 100},
	}
	c := &model.Creature{ID: 1, Speed: 200}
	s.UpsertCreature(c)

	CreatureMoved{ID: 1, Origin: origin, Target: target}.Apply(s)

	if c.Movement.StartTick != 500 || c.Movement.EndTick != 500 {
		t.Fatalf("expected instantaneous move, got %+v", c.Movement)
	}
}

func TestCreatureMovedLegacyFormResolvesIDFromStack(t *testing.T) {
	s := newTestState()
	origin := model.Position{X: 10, Y: 10, Z: 7}
	target := model.Position{X: 11, Y: 10, Z: 7}
	s.Map.TileAt(origin).Objects = []model.Object{
		{ID: 1, StackPriority: model.PriorityGround},
		model.CreatureRef(99, 0),
	}
	s.Map.TileAt(target).Objects = []model.Object{
		{StackPriority: model.PriorityGround, GroundSpeed: 100},
	}
	c := &model.Creature{ID: 99, Speed: 100}
	s.UpsertCreature(c)

	CreatureMoved{Legacy: true, StackIndex: 1, Origin: origin, Target: target}.Apply(s)

	if c.Movement.Target != target {
		t.Fatalf("legacy-form creature never resolved: %+v", c.Movement)
	}
}

func TestCreatureMovedLegacyFormOutOfRangeIndexIsNoop(t *testing.T) {
	s := newTestState()
	origin := model.Position{X: 10, Y: 10, Z: 7}
	target := model.Position{X: 11, Y: 10, Z: 7}

	CreatureMoved{Legacy: true, StackIndex: 5, Origin: origin, Target: target}.Apply(s)
	// Nothing to assert beyond "doesn't panic" — there's no creature to
	// have mutated a Movement on.
}

func TestCreatureMovedUnknownTargetGroundIsInstantaneous(t *testing.T) {
	s := newTestState()
	s.CurrentTick = 42
	origin := model.Position{X: 10, Y: 10, Z: 7}
	target := model.Position{X: 11, Y: 10, Z: 7}
	c := &model.Creature{ID: 1, Speed: 100}
	s.UpsertCreature(c)

	CreatureMoved{ID: 1, Origin: origin, Target: target}.Apply(s)

	if c.Movement.StartTick != 42 || c.Movement.EndTick != 42 {
		t.Fatalf("expected instantaneous fallback without ground speed, got %+v", c.Movement)
	}
}
