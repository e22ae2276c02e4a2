package game

import (
	"fmt"
	"math/rand/v2"
)

const (
	testRecorder     = "test:recorder"
	testSelfDestruct = "test:self-destruct"
	testEnergyDrink  = "test:energy-drink"
	testDisabled     = "test:disabled"
	testGoalEffect   = "test:goal"
	testShredder     = "test:shredder"
	testToll         = "test:toll"
	testFlare        = "test:flare"
)

// hookCalls records recorder and self-destruct invocations as "slot:hook".
var hookCalls []string

func recordHook(kind HookKind) Hook {
	return func(ctx *HookContext) {
		hookCalls = append(hookCalls, fmt.Sprintf("%d:%s", ctx.Slot, kind))
		ctx.Say(ColorInfo, "%s %d", kind, ctx.Slot)
	}
}

func init() {
	RegisterItem(ItemDefinition{
		Name: testRecorder, Rarity: 1, DropWeight: 1, Level: 1,
		BeforeRound:         recordHook(HookBeforeRound),
		BeforeUse:           recordHook(HookBeforeUse),
		BeforeAttendLecture: recordHook(HookBeforeAttendLecture),
		BeforeSkipLecture:   recordHook(HookBeforeSkipLecture),
		AfterRound:          recordHook(HookAfterRound),
		AfterUse:            recordHook(HookAfterUse),
		AfterAttendLecture:  recordHook(HookAfterAttendLecture),
		AfterSkipLecture:    recordHook(HookAfterSkipLecture),
	})
	RegisterItem(ItemDefinition{
		Name: testSelfDestruct, Rarity: 2, DropWeight: 1, Level: 1,
		BeforeRound: func(ctx *HookContext) {
			RemoveItem(ctx.State, ctx.Slot)
		},
		BeforeUse: recordHook(HookBeforeUse),
	})
	RegisterItem(ItemDefinition{
		Name: testEnergyDrink, Rarity: 1, DropWeight: 1, Level: 1,
		AfterRound: func(ctx *HookContext) {
			ctx.State.Energy += 1000
		},
	})
	RegisterItem(ItemDefinition{
		Name: testDisabled, Rarity: 3, DropWeight: 1, Level: 1,
		IsEnabled: func(*ItemData, *State) bool { return false },
	})
	RegisterItem(ItemDefinition{
		Name: testShredder, Rarity: 1, DropWeight: 1, Level: 1,
		BeforeRound: func(ctx *HookContext) {
			if next := ctx.Slot + 1; next < len(ctx.State.Items) {
				RemoveItem(ctx.State, next)
			}
		},
	})
	// testToll makes attended lectures cost its stacks in extra energy.
	RegisterEffect(EffectDefinition{
		Name: testToll,
		BeforeLecture: func(c *Course, l *Lecture, action Action) string {
			if action != ActionAttend {
				return ""
			}
			l.EnergyCost += GetStacks(c, testToll)
			return "toll"
		},
	})
	// testFlare burns out after one lecture.
	RegisterEffect(EffectDefinition{
		Name: testFlare,
		BeforeLecture: func(c *Course, _ *Lecture, _ Action) string {
			SetStacks(c, testFlare, 0)
			return "flare"
		},
	})
	RegisterEffect(EffectDefinition{
		Name: testGoalEffect,
		OnStacksChanged: func(c *Course) {
			c.Goal = c.OriginalGoal + GetStacks(c, testGoalEffect)
		},
	})
}

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func testCourse(id, title, color string) Course {
	return Course{
		ID:                            id,
		Title:                         title,
		Color:                         color,
		Goal:                          40,
		OriginalGoal:                  40,
		Effects:                       map[string]EffectData{},
		MaxUnderstandingsPerLecture:   10,
		MaxProcrastinationsPerLecture: 8,
		MaxEnergyCostPerLecture:       20,
	}
}

// newTestState returns a block-1 state with a fixed, certain-success lecture
// on the first course.
func newTestState() *State {
	return &State{
		Block:        1,
		LecturesLeft: 5,
		Courses: []Course{
			testCourse("b1-c1", "Algorithms", "#ff0000"),
			testCourse("b1-c2", "Compilers", "#00ff00"),
			testCourse("b1-c3", "Databases", "#0000ff"),
		},
		NextLecture: &Lecture{
			CourseIndex:             0,
			StartTime:               480,
			EndTime:                 570,
			PotentialUnderstandings: 7,
			UnderstandChance:        1,
			EnergyCost:              10,
			ProcrastinationValue:    4,
		},
		Energy:            100,
		MaxEnergy:         100,
		EnergyPerSkip:     10,
		Cash:              50,
		Items:             make([]*ItemData, InventorySize),
		SelectedItemSlots: []int{},
		MaxActivatedItems: 3,
		Quests:            []Quest{},
		ExamResults:       []bool{},
		Log:               []LogEntry{},
	}
}

func place(s *State, slot int, name string) *ItemData {
	item := NewItem(s, name)
	s.Items[slot] = item
	return item
}
