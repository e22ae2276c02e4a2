package game

import (
	"math"
	"testing"
)

func TestAddStacks(t *testing.T) {
	c := testCourse("b1-c1", "Algorithms", "#ff0000")

	e, alive := AddStacks(&c, testGoalEffect, 5)
	if !alive || e.Value != 5 || e.ID != "b1-c1-e1" {
		t.Fatalf("AddStacks() = %+v, %v", e, alive)
	}
	if c.Goal != 45 {
		t.Errorf("goal = %v, want 45 after callback", c.Goal)
	}

	e, alive = AddStacks(&c, testGoalEffect, 3)
	if !alive || e.Value != 8 || e.ID != "b1-c1-e1" {
		t.Errorf("accumulated effect = %+v", e)
	}

	_, alive = AddStacks(&c, testGoalEffect, -8)
	if alive {
		t.Error("effect at zero should be removed")
	}
	if _, ok := c.Effects[testGoalEffect]; ok {
		t.Error("removed effect still present")
	}
	if c.Goal != 40 {
		t.Errorf("goal = %v, want 40 after removal", c.Goal)
	}

	e, _ = AddStacks(&c, testGoalEffect, 1)
	if e.ID != "b1-c1-e2" {
		t.Errorf("recreated effect id = %s, want b1-c1-e2", e.ID)
	}
}

func TestSetStacks(t *testing.T) {
	c := testCourse("b1-c2", "Compilers", "#00ff00")

	if _, alive := SetStacks(&c, "Plain", -3); alive {
		t.Error("a negative effect must not be created")
	}
	if len(c.Effects) != 0 {
		t.Errorf("effects = %+v, want none", c.Effects)
	}

	SetStacks(&c, "Plain", 4)
	SetStacks(&c, "Plain", 2)
	if got := GetStacks(&c, "Plain"); got != 2 {
		t.Errorf("GetStacks() = %v, want 2", got)
	}
	if _, alive := SetStacks(&c, "Plain", math.NaN()); alive {
		t.Error("NaN stacks should remove the effect")
	}
}

func TestGetStacksMissing(t *testing.T) {
	c := Course{}
	if got := GetStacks(&c, "Anything"); got != 0 {
		t.Errorf("GetStacks() = %v, want 0", got)
	}
}

func TestLookupPlaceholders(t *testing.T) {
	def := LookupItem("No Such Item")
	if def.Name != UnknownItemName {
		t.Errorf("item placeholder name = %q", def.Name)
	}
	for k := HookBeforeRound; k <= HookAfterSkipLecture; k++ {
		if def.Hook(k) != nil {
			t.Errorf("placeholder has a %s hook", k)
		}
	}
	if LookupEffect("No Such Effect").Name != UnknownEffectName {
		t.Error("effect placeholder missing")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate item should panic")
		}
	}()
	RegisterItem(ItemDefinition{Name: testRecorder, Rarity: 1, DropWeight: 1, Level: 1})
}

func TestUnknownItemIsInert(t *testing.T) {
	s := newTestState()
	place(s, 0, "No Such Item")
	s.SelectedItemSlots = []int{0}

	next := StartRound(s, ActionAttend, testRand(1))
	if len(next.Log) != 1 {
		t.Errorf("unknown item produced log entries: %+v", next.Log)
	}
}

func TestRemovedEffectKeepsSequence(t *testing.T) {
	c := testCourse("b1-c1", "Algorithms", "#ff0000")

	AddStacks(&c, "Plain", -1)
	SetStacks(&c, "Plain", 0)
	if c.EffectSeq != 0 {
		t.Errorf("EffectSeq = %d, want 0 when no effect survived", c.EffectSeq)
	}

	e, _ := AddStacks(&c, "Plain", 1)
	if e.ID != "b1-c1-e1" || c.EffectSeq != 1 {
		t.Errorf("first surviving effect id = %s seq = %d, want b1-c1-e1 / 1", e.ID, c.EffectSeq)
	}
}
