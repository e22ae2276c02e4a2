package effects

import (
	"math"
	"testing"

	"github.com/vovakirdan/semester/internal/game"
)

func newCourse(goal float64) game.Course {
	return game.Course{
		ID:           "b1-c1",
		Title:        "Algorithms",
		Goal:         goal,
		OriginalGoal: goal,
		Effects:      map[string]game.EffectData{},
	}
}

func TestExtensiveScalesGoal(t *testing.T) {
	c := newCourse(50)

	game.AddStacks(&c, Extensive, 20)
	if c.Goal != 60 {
		t.Errorf("goal = %v, want 60", c.Goal)
	}

	if _, alive := game.AddStacks(&c, Extensive, -20); alive {
		t.Error("Extensive at zero should be removed")
	}
	if c.Goal != 50 {
		t.Errorf("goal = %v, want 50 after removal", c.Goal)
	}
	if c.OriginalGoal != 50 {
		t.Error("original goal must never change")
	}
}

func TestExtensiveRoundsHalfUp(t *testing.T) {
	tests := []struct {
		goal, stacks, want float64
	}{
		{45, 10, 50},  // 49.5 rounds up
		{40, 10, 44},  // exact
		{33, 3, 34},   // 33.99
		{10, 250, 35}, // large stacks
	}
	for _, tc := range tests {
		c := newCourse(tc.goal)
		game.SetStacks(&c, Extensive, tc.stacks)
		if c.Goal != tc.want {
			t.Errorf("goal %v with %v stacks = %v, want %v", tc.goal, tc.stacks, c.Goal, tc.want)
		}
	}
}

func TestConsumeFocus(t *testing.T) {
	c := newCourse(40)
	l := &game.Lecture{UnderstandChance: 0.5}

	if got := ConsumeFocus(&c, l); got != 0 {
		t.Errorf("bonus without stacks = %v, want 0", got)
	}

	game.AddStacks(&c, Focused, 30)
	bonus := ConsumeFocus(&c, l)
	if math.Abs(bonus-0.3) > 1e-9 || math.Abs(l.UnderstandChance-0.8) > 1e-9 {
		t.Errorf("bonus = %v chance = %v, want 0.3 / 0.8", bonus, l.UnderstandChance)
	}
	if game.GetStacks(&c, Focused) != 0 {
		t.Error("focus should be consumed")
	}

	game.AddStacks(&c, Focused, 90)
	ConsumeFocus(&c, l)
	if l.UnderstandChance != 1 {
		t.Errorf("chance = %v, want capped at 1", l.UnderstandChance)
	}
}

func TestRegistered(t *testing.T) {
	for _, name := range []string{Extensive, Focused, Burnout} {
		if def := game.LookupEffect(name); def.Name != name {
			t.Errorf("effect %s not registered", name)
		}
	}
	if BurnoutCost(&game.Course{}) != 0 {
		t.Error("no burnout without stacks")
	}
}

func TestBurnoutBeforeLecture(t *testing.T) {
	def := game.LookupEffect(Burnout)
	c := newCourse(40)
	game.AddStacks(&c, Burnout, 5)

	tests := []struct {
		action   game.Action
		wantCost float64
	}{
		{game.ActionAttend, 25},
		{game.ActionSkip, 20},
	}
	for _, tc := range tests {
		l := &game.Lecture{EnergyCost: 20}
		msg := def.BeforeLecture(&c, l, tc.action)
		if l.EnergyCost != tc.wantCost {
			t.Errorf("%s: cost = %v, want %v", tc.action, l.EnergyCost, tc.wantCost)
		}
		if (msg != "") != (tc.action == game.ActionAttend) {
			t.Errorf("%s: message = %q", tc.action, msg)
		}
	}
}

func TestFocusedBeforeLecture(t *testing.T) {
	def := game.LookupEffect(Focused)
	c := newCourse(40)
	game.AddStacks(&c, Focused, 20)

	l := &game.Lecture{UnderstandChance: 0.5}
	if msg := def.BeforeLecture(&c, l, game.ActionSkip); msg != "" || game.GetStacks(&c, Focused) != 20 {
		t.Error("skipping must keep the focus")
	}
	if msg := def.BeforeLecture(&c, l, game.ActionAttend); msg == "" {
		t.Error("spent focus should be reported")
	}
	if game.GetStacks(&c, Focused) != 0 {
		t.Error("attending should spend the focus")
	}
}
