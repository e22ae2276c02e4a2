package game

import (
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"

	"github.com/vovakirdan/semester/internal/core"
)

// Log colors for engine-produced entries.
const (
	ColorGood    = "#5fd787"
	ColorBad     = "#ff5f5f"
	ColorNeutral = "#d0d0d0"
	ColorInfo    = "#87afff"
)

// Phase describes which action the state is waiting for.
type Phase string

const (
	PhaseAwaitingAction Phase = "awaiting_action" // a lecture is pending
	PhaseAwaitingExam   Phase = "awaiting_exam"   // lectures exhausted, exams not taken
	PhaseAwaitingBlock  Phase = "awaiting_block"  // exams taken, next block not started
)

// CurrentPhase reports the phase of s.
func CurrentPhase(s *State) Phase {
	switch {
	case s.ExamsAttended:
		return PhaseAwaitingBlock
	case s.NextLecture != nil:
		return PhaseAwaitingAction
	default:
		return PhaseAwaitingExam
	}
}

// phaseHooks is the hook sequence one phase runs per slot.
type phaseHooks struct {
	round, use, lecture HookKind
}

func beforeHooks(action Action) phaseHooks {
	if action == ActionSkip {
		return phaseHooks{HookBeforeRound, HookBeforeUse, HookBeforeSkipLecture}
	}
	return phaseHooks{HookBeforeRound, HookBeforeUse, HookBeforeAttendLecture}
}

func afterHooks(action Action) phaseHooks {
	if action == ActionSkip {
		return phaseHooks{HookAfterRound, HookAfterUse, HookAfterSkipLecture}
	}
	return phaseHooks{HookAfterRound, HookAfterUse, HookAfterAttendLecture}
}

// StartRound resolves the pending lecture with the given action and returns
// the next state. The input pointer is returned unchanged when no lecture is
// pending, the action is unknown, or the player lacks energy to attend.
// Energy is checked against the lecture's cost before any effect or hook
// runs; if they raise the cost past the remaining energy the round still
// resolves, energy bottoms out at zero and the shortfall is logged.
func StartRound(s *State, action Action, rng *rand.Rand) *State {
	if s == nil || s.NextLecture == nil {
		return s
	}
	if action != ActionAttend && action != ActionSkip {
		return s
	}
	if action == ActionAttend && s.Energy < s.NextLecture.EnergyCost {
		return s
	}

	next := s.Clone()
	next.Log = []LogEntry{}
	lecture := *next.NextLecture

	applyCourseEffects(next, action, &lecture)
	runPhase(next, beforeHooks(action), HookContext{Action: action, Lecture: &lecture, Rand: rng})
	if action == ActionAttend && next.Energy < lecture.EnergyCost {
		next.Log = append(next.Log, LogEntry{
			Message: fmt.Sprintf("Short of energy: the lecture took **%s**, only **%s** left",
				FormatAmount(lecture.EnergyCost), FormatAmount(next.Energy)),
			Color: ColorBad,
		})
	}

	result := resolveLecture(next, action, &lecture, rng)
	applyResult(next, &result)

	if next.LecturesLeft > 0 {
		next.NextLecture = GenerateLecture(next, rng)
	} else {
		next.NextLecture = nil
	}

	next.Log = append(next.Log, summarize(next, &result))

	runPhase(next, afterHooks(action), HookContext{
		Action:      action,
		Lecture:     &lecture,
		Result:      &result,
		NextLecture: next.NextLecture,
		Rand:        rng,
	})

	next.Energy = core.ClampF(next.Energy, 0, next.MaxEnergy)
	next.SelectedItemSlots = []int{}
	slices.Reverse(next.Log)
	return next
}

// applyCourseEffects runs the BeforeLecture hook of every effect on the
// lecture's course, in effect name order.
func applyCourseEffects(s *State, action Action, l *Lecture) {
	c := s.Course(l.CourseIndex)
	if c == nil || len(c.Effects) == 0 {
		return
	}
	for _, name := range slices.Sorted(maps.Keys(c.Effects)) {
		if _, ok := c.Effects[name]; !ok {
			continue
		}
		def := LookupEffect(name)
		if def.BeforeLecture == nil {
			continue
		}
		if msg := def.BeforeLecture(c, l, action); msg != "" {
			s.Log = append(s.Log, LogEntry{Message: msg, Color: def.Color})
		}
	}
}

// runPhase walks the inventory in slot order. Each slot is re-read before
// every hook so items destroyed or replaced mid-phase are not invoked.
func runPhase(s *State, hooks phaseHooks, base HookContext) {
	for slot := range s.Items {
		item := s.Items[slot]
		if item == nil {
			continue
		}

		invokeHook(s, slot, item, hooks.round, base)
		if s.Items[slot] != item || !s.IsSelected(slot) {
			continue
		}
		invokeHook(s, slot, item, hooks.use, base)
		if s.Items[slot] != item || !s.IsSelected(slot) {
			continue
		}
		invokeHook(s, slot, item, hooks.lecture, base)
	}
}

func invokeHook(s *State, slot int, item *ItemData, kind HookKind, base HookContext) {
	hook := LookupItem(item.Name).Hook(kind)
	if hook == nil {
		return
	}

	var entry LogEntry
	ctx := base
	ctx.State = s
	ctx.Item = item
	ctx.Slot = slot
	ctx.Entry = &entry
	hook(&ctx)

	if entry.Message != "" {
		s.Log = append(s.Log, entry)
	}
}

func resolveLecture(s *State, action Action, l *Lecture, rng *rand.Rand) LectureResult {
	r := LectureResult{
		Action:      action,
		Result:      ResultSuccess,
		CourseIndex: l.CourseIndex,
	}

	if action == ActionSkip {
		r.GainedProcrastinations = l.ProcrastinationValue
		if s.Energy/s.MaxEnergy >= 0.5 {
			r.EnergyChange = s.EnergyPerSkip
		} else {
			r.EnergyChange = core.Round(s.EnergyPerSkip / 2)
		}
		return r
	}

	r.EnergyChange = -l.EnergyCost
	if rng.Float64() < l.UnderstandChance {
		r.GainedUnderstandings = l.PotentialUnderstandings
	} else {
		r.Result = ResultFailure
	}
	return r
}

func applyResult(s *State, r *LectureResult) {
	if course := s.Course(r.CourseIndex); course != nil {
		course.Understandings += r.GainedUnderstandings
		s.Score += r.GainedUnderstandings
	}
	s.Energy = core.ClampF(s.Energy+r.EnergyChange, 0, s.MaxEnergy)
	s.Procrastinations += r.GainedProcrastinations
	s.LecturesLeft--
}

func summarize(s *State, r *LectureResult) LogEntry {
	title, color := "an unknown course", ColorNeutral
	if course := s.Course(r.CourseIndex); course != nil {
		title, color = course.Title, course.Color
	}

	switch {
	case r.Action == ActionSkip:
		return LogEntry{
			Message: fmt.Sprintf("Skipped **%s**: +%s procrastination, %s energy",
				title, FormatAmount(r.GainedProcrastinations), signed(r.EnergyChange)),
			Color: color,
		}
	case r.Result == ResultSuccess:
		return LogEntry{
			Message: fmt.Sprintf("Attended **%s** and understood **+%s**",
				title, FormatAmount(r.GainedUnderstandings)),
			Color: color,
		}
	default:
		return LogEntry{
			Message: fmt.Sprintf("Attended **%s** but understood nothing", title),
			Color:   ColorBad,
		}
	}
}

func signed(v float64) string {
	if v >= 0 {
		return "+" + FormatAmount(v)
	}
	return FormatAmount(v)
}
