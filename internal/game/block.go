package game

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/vovakirdan/semester/internal/config"
	"github.com/vovakirdan/semester/internal/core"
)

// Outcome is the standing of a run.
type Outcome string

const (
	OutcomeOngoing Outcome = "ongoing"
	OutcomeLost    Outcome = "lost"
	OutcomeWon     Outcome = "won"
)

// maxHueAttempts bounds the hue rejection loop before falling back to even spacing.
const maxHueAttempts = 10000

// NewGame builds the initial state from the rules and starts block 1.
func NewGame(rng *rand.Rand, rules config.Rules) *State {
	s := &State{
		Courses:           []Course{},
		Energy:            rules.Player.StartingEnergy,
		MaxEnergy:         rules.Player.MaxEnergy,
		EnergyPerSkip:     rules.Player.EnergyPerSkip,
		Cash:              rules.Player.StartingCash,
		Items:             make([]*ItemData, InventorySize),
		SelectedItemSlots: []int{},
		MaxActivatedItems: rules.Player.MaxActivatedItems,
		Quests:            []Quest{},
		ExamsAttended:     true, // lets StartNewBlock open block 1
		ExamResults:       []bool{},
		Log:               []LogEntry{},
	}
	for _, name := range rules.Player.StartingItems {
		GiveItem(s, name)
	}
	return StartNewBlock(s, rng, rules)
}

// StartNewBlock opens the next block: fresh courses, quests and the first
// lecture. No-op until the current block's exams have been attended.
func StartNewBlock(s *State, rng *rand.Rand, rules config.Rules) *State {
	if s == nil || !s.ExamsAttended {
		return s
	}

	next := s.Clone()
	next.Block++
	next.Courses = generateCourses(next.Block, rng, rules)

	next.Quests = make([]Quest, 0, rules.Quests.PerBlock)
	for i := range rules.Quests.PerBlock {
		next.Quests = append(next.Quests, generateQuest(next, i, rng, rules))
	}

	next.LecturesLeft = rules.Block.LecturesPerBlock
	next.ExamsAttended = false
	next.ExamResults = []bool{}
	next.SelectedItemSlots = []int{}
	next.NextLecture = nil
	if next.LecturesLeft > 0 {
		next.NextLecture = GenerateLecture(next, rng)
	}

	next.Log = []LogEntry{{
		Message: fmt.Sprintf("Welcome to **Block %d**", next.Block),
		Color:   ColorInfo,
	}}
	return next
}

func generateCourses(block int, rng *rand.Rand, rules config.Rules) []Course {
	n := min(rules.Block.CoursesPerBlock, len(rules.Courses.Titles))
	titles := rng.Perm(len(rules.Courses.Titles))[:n]
	hues := pickHues(n, rules.Block.MinHueDistance, rng)

	goal := rules.CourseGoal(block)
	courses := make([]Course, n)
	for i := range courses {
		courses[i] = Course{
			ID:                            fmt.Sprintf("b%d-c%d", block, i+1),
			Title:                         rules.Courses.Titles[titles[i]],
			Color:                         core.HueColor(hues[i]),
			Hue:                           hues[i],
			Goal:                          goal,
			OriginalGoal:                  goal,
			Effects:                       map[string]EffectData{},
			MaxUnderstandingsPerLecture:   rules.MaxUnderstandings(block),
			MaxProcrastinationsPerLecture: rules.MaxProcrastination(block),
			MaxEnergyCostPerLecture:       rules.MaxEnergyCost(block),
		}
	}
	return courses
}

// pickHues draws n hues in [0,360) whose pairwise circular distance is at
// least minDist, by rejection.
func pickHues(n int, minDist float64, rng *rand.Rand) []float64 {
	hues := make([]float64, 0, n)
	for attempt := 0; len(hues) < n && attempt < maxHueAttempts; attempt++ {
		candidate := rng.Float64() * 360
		ok := true
		for _, h := range hues {
			if core.HueDistance(candidate, h) < minDist {
				ok = false
				break
			}
		}
		if ok {
			hues = append(hues, candidate)
		}
	}
	if len(hues) == n {
		return hues
	}

	start := rng.Float64() * 360
	hues = hues[:0]
	for i := range n {
		hues = append(hues, core.NormalizeHue(start+float64(i)*360/float64(n)))
	}
	return hues
}

// PassChance is the probability of passing the course's exam:
// understandings/goal capped at 1. A non-positive goal always passes.
func PassChance(c Course) float64 {
	if c.Goal <= 0 {
		return 1
	}
	p := c.Understandings / c.Goal
	if math.IsNaN(p) {
		return 0
	}
	return core.ClampF(p, 0, 1)
}

// AttendExams takes every course's exam. Quests expire and any remaining
// lectures of the block are forfeited. No-op if already attended.
func AttendExams(s *State, rng *rand.Rand) *State {
	if s == nil || s.ExamsAttended {
		return s
	}

	next := s.Clone()
	next.Quests = []Quest{}
	next.NextLecture = nil
	next.LecturesLeft = 0
	next.SelectedItemSlots = []int{}
	next.ExamsAttended = true

	next.ExamResults = make([]bool, len(next.Courses))
	var passed, failed []string
	for i, c := range next.Courses {
		next.ExamResults[i] = rng.Float64() < PassChance(c)
		if next.ExamResults[i] {
			passed = append(passed, "**"+c.Title+"**")
		} else {
			failed = append(failed, "**"+c.Title+"**")
		}
	}

	entry := LogEntry{Color: ColorGood}
	switch {
	case len(failed) == 0:
		entry.Message = fmt.Sprintf("Passed every exam: %s", strings.Join(passed, ", "))
	case len(passed) == 0:
		entry.Message = fmt.Sprintf("Failed every exam: %s", strings.Join(failed, ", "))
		entry.Color = ColorBad
	default:
		entry.Message = fmt.Sprintf("Passed %s; failed %s",
			strings.Join(passed, ", "), strings.Join(failed, ", "))
		entry.Color = ColorBad
	}
	next.Log = []LogEntry{entry}
	return next
}

// FailedExams counts failed exams of the current block.
func FailedExams(s *State) int {
	n := 0
	for _, ok := range s.ExamResults {
		if !ok {
			n++
		}
	}
	return n
}

// RunOutcome reports whether the run is lost, won or still going.
func RunOutcome(s *State, rules config.Rules) Outcome {
	if !s.ExamsAttended || s.Block < 1 {
		return OutcomeOngoing
	}
	if FailedExams(s) >= rules.Block.FailuresToLose {
		return OutcomeLost
	}
	if rules.Block.FinalBlock > 0 && s.Block >= rules.Block.FinalBlock {
		return OutcomeWon
	}
	return OutcomeOngoing
}
