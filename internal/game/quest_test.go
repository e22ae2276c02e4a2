package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/semester/internal/config"
	"github.com/vovakirdan/semester/internal/core"
)

func TestGenerateQuest(t *testing.T) {
	rules := config.DefaultRules()
	rules.Quests.ExtraCostChance = 1
	s := newTestState()
	s.Block = 2

	q := generateQuest(s, 4, testRand(9), rules)
	if q.ID != "b2-q5" {
		t.Errorf("id = %q, want b2-q5", q.ID)
	}
	if len(q.Costs) != 2 {
		t.Fatalf("costs = %+v, want understanding and procrastination", q.Costs)
	}
	if q.Costs[0].Kind != CurrencyUnderstandings || q.Costs[0].Amount != 9 {
		t.Errorf("first cost = %+v", q.Costs[0])
	}
	if q.Costs[1].Kind != CurrencyProcrastinations || q.Costs[1].Amount != 9 {
		t.Errorf("second cost = %+v", q.Costs[1])
	}
	if len(q.Rewards) != 1 || q.Rewards[0] != Cash(16) {
		t.Errorf("rewards = %+v", q.Rewards)
	}
	if want := s.Courses[q.Costs[0].CourseIndex].Color; q.Color != core.AverageColor(want) {
		t.Errorf("color = %s, want the course color %s", q.Color, want)
	}
}

func TestFulfillQuest(t *testing.T) {
	quest := Quest{
		ID:      "b1-q1",
		Costs:   []Currency{Understandings(0, 5), Procrastinations(2)},
		Rewards: []Currency{Cash(10), MaxActivatedItems(1)},
		Color:   "#ff0000",
	}

	tests := []struct {
		name   string
		mutate func(*State)
		id     string
		ok     bool
	}{
		{"affordable", func(s *State) { s.Courses[0].Understandings = 5; s.Procrastinations = 3 }, "b1-q1", true},
		{"short on understanding", func(s *State) { s.Courses[0].Understandings = 4; s.Procrastinations = 3 }, "b1-q1", false},
		{"short on procrastination", func(s *State) { s.Courses[0].Understandings = 5 }, "b1-q1", false},
		{"unknown quest", func(s *State) { s.Courses[0].Understandings = 5; s.Procrastinations = 3 }, "b1-q9", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestState()
			s.Quests = []Quest{quest.Clone()}
			tc.mutate(s)

			next, ok := FulfillQuest(s, tc.id)
			if ok != tc.ok {
				t.Fatalf("FulfillQuest() ok = %v, want %v", ok, tc.ok)
			}
			if !ok {
				if next != s {
					t.Error("a refused quest must return the input state")
				}
				return
			}
			if next.Courses[0].Understandings != 0 || next.Procrastinations != 1 {
				t.Errorf("costs not paid: U=%v P=%v", next.Courses[0].Understandings, next.Procrastinations)
			}
			if next.Cash != 60 || next.MaxActivatedItems != 4 {
				t.Errorf("rewards not granted: cash=%v max=%d", next.Cash, next.MaxActivatedItems)
			}
			if next.Score != s.Score {
				t.Error("quest understanding must not change score")
			}
			if len(next.Quests) != 0 {
				t.Error("quest should be removed")
			}
			if len(s.Quests) != 1 {
				t.Error("input state quests changed")
			}
		})
	}
}

func TestInfiniteBalances(t *testing.T) {
	s := newTestState()
	s.Cash = math.Inf(1)
	s.Quests = []Quest{{ID: "q", Costs: []Currency{Cash(1e300)}, Rewards: []Currency{Cash(5)}}}

	next, ok := FulfillQuest(s, "q")
	if !ok {
		t.Fatal("infinite cash should afford any finite cost")
	}
	if !math.IsInf(next.Cash, 1) {
		t.Errorf("cash = %v, want +Inf", next.Cash)
	}

	s = newTestState()
	s.Cash = math.Inf(1)
	s.Quests = []Quest{{ID: "q", Costs: []Currency{Cash(math.Inf(1))}}}
	next, ok = FulfillQuest(s, "q")
	if !ok || next.Cash != 0 {
		t.Errorf("paying ∞ from ∞: ok=%v cash=%v, want true 0", ok, next.Cash)
	}
}
