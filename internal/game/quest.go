package game

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/vovakirdan/semester/internal/config"
	"github.com/vovakirdan/semester/internal/core"
)

func generateQuest(s *State, index int, rng *rand.Rand, rules config.Rules) Quest {
	q := Quest{
		ID:      fmt.Sprintf("b%d-q%d", s.Block, index+1),
		Costs:   []Currency{},
		Rewards: []Currency{},
	}
	if len(s.Courses) == 0 {
		q.Color = core.NeutralColor
		return q
	}

	amount := rules.QuestCost(s.Block)
	courseIndex := rng.IntN(len(s.Courses))
	q.Costs = append(q.Costs, Understandings(courseIndex, amount))
	if rng.Float64() < rules.Quests.ExtraCostChance {
		q.Costs = append(q.Costs, Procrastinations(amount))
	}
	q.Rewards = append(q.Rewards, Cash(rules.QuestReward(s.Block)))
	q.Color = questColor(s, q.Costs)
	return q
}

// questColor blends the colors of the courses a quest requires.
func questColor(s *State, costs []Currency) string {
	var colors []string
	for _, c := range costs {
		if c.Kind != CurrencyUnderstandings {
			continue
		}
		if course := s.Course(c.CourseIndex); course != nil {
			colors = append(colors, course.Color)
		}
	}
	return core.AverageColor(colors...)
}

// QuestIndex returns the index of the quest with id, or -1.
func QuestIndex(s *State, id string) int {
	return slices.IndexFunc(s.Quests, func(q Quest) bool { return q.ID == id })
}

// FulfillQuest pays the quest's costs, grants its rewards and removes it.
// Returns false and the input state when the quest is unknown or unaffordable.
func FulfillQuest(s *State, id string) (*State, bool) {
	idx := QuestIndex(s, id)
	if idx < 0 || !s.CanAfford(s.Quests[idx].Costs) {
		return s, false
	}

	next := s.Clone()
	q := next.Quests[idx]
	for _, c := range q.Costs {
		next.Pay(c)
	}
	for _, r := range q.Rewards {
		next.Gain(r)
	}
	next.Quests = slices.Delete(next.Quests, idx, idx+1)

	next.pushLog(q.Color, fmt.Sprintf("Quest complete: paid %s, got %s",
		labels(next, q.Costs), labels(next, q.Rewards)))
	return next, true
}

func labels(s *State, cs []Currency) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.Label(s)
	}
	return strings.Join(parts, " and ")
}
