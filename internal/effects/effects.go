// Package effects registers the course effects. Importing it for side
// effects makes the definitions available to the engine.
package effects

import (
	"fmt"

	"github.com/vovakirdan/semester/internal/core"
	"github.com/vovakirdan/semester/internal/game"
)

// Effect names.
const (
	Extensive = "Extensive"
	Focused   = "Focused"
	Burnout   = "Burnout"
)

func init() {
	game.RegisterEffect(game.EffectDefinition{
		Name:  Extensive,
		Color: "#d7875f",
		Describe: func(e game.EffectData) string {
			return fmt.Sprintf("Goal raised by %s%%.", game.FormatAmount(e.Value))
		},
		OnStacksChanged: scaleGoal,
	})

	game.RegisterEffect(game.EffectDefinition{
		Name:  Focused,
		Color: "#5fafd7",
		Describe: func(e game.EffectData) string {
			return fmt.Sprintf("Next attended lecture is %s%% more likely to stick.", game.FormatAmount(e.Value))
		},
		BeforeLecture: func(c *game.Course, l *game.Lecture, action game.Action) string {
			if action != game.ActionAttend {
				return ""
			}
			bonus := ConsumeFocus(c, l)
			if bonus <= 0 {
				return ""
			}
			return fmt.Sprintf("Your notes on **%s** help: **+%s** chance", c.Title, game.FormatChance(bonus))
		},
	})

	game.RegisterEffect(game.EffectDefinition{
		Name:  Burnout,
		Color: "#af5f5f",
		Describe: func(e game.EffectData) string {
			return fmt.Sprintf("Lectures cost %s more energy.", game.FormatAmount(e.Value))
		},
		BeforeLecture: func(c *game.Course, l *game.Lecture, action game.Action) string {
			extra := BurnoutCost(c)
			if action != game.ActionAttend || extra <= 0 {
				return ""
			}
			l.EnergyCost += extra
			return fmt.Sprintf("Burnout: **%s** costs **+%s** energy", c.Title, game.FormatAmount(extra))
		},
	})
}

// scaleGoal derives the course goal from its original goal and Extensive stacks.
func scaleGoal(c *game.Course) {
	c.Goal = core.Round(c.OriginalGoal * (1 + game.GetStacks(c, Extensive)/100))
}

// ConsumeFocus raises the lecture's understand chance by the course's Focused
// stacks (one stack is one percentage point) and removes them.
// Returns the bonus applied.
func ConsumeFocus(c *game.Course, l *game.Lecture) float64 {
	stacks := game.GetStacks(c, Focused)
	if stacks <= 0 {
		return 0
	}
	bonus := stacks / 100
	l.UnderstandChance = core.ClampF(l.UnderstandChance+bonus, 0, 1)
	game.SetStacks(c, Focused, 0)
	return bonus
}

// BurnoutCost returns the extra energy cost Burnout adds to a lecture of c.
func BurnoutCost(c *game.Course) float64 {
	return game.GetStacks(c, Burnout)
}
