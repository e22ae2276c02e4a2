package items

import (
	"fmt"

	"github.com/vovakirdan/semester/internal/effects"
	"github.com/vovakirdan/semester/internal/game"
)

func registerStudyItems() {
	game.RegisterItem(game.ItemDefinition{
		Name:       Coffee,
		Rarity:     1,
		DropWeight: 10,
		Level:      1,
		Color:      "#af875f",
		Describe: func(item *game.ItemData, _ *game.State) string {
			return fmt.Sprintf("Activated: attending costs %s less energy, but adds 1 Burnout to the course.",
				game.FormatChance(coffeeSaving(item)))
		},
		BeforeAttendLecture: func(ctx *game.HookContext) {
			before := ctx.Lecture.EnergyCost
			ctx.Lecture.EnergyCost = round(before * (1 - coffeeSaving(ctx.Item)))
			if c := ctx.Course(); c != nil {
				game.AddStacks(c, effects.Burnout, 1)
			}
			ctx.Say("#af875f", "**Coffee** saved **%s** energy",
				game.FormatAmount(before-ctx.Lecture.EnergyCost))
		},
	})

	game.RegisterItem(game.ItemDefinition{
		Name:       Notebook,
		Rarity:     1,
		DropWeight: 10,
		Level:      1,
		Color:      "#d7d7af",
		Describe: func(item *game.ItemData, _ *game.State) string {
			return fmt.Sprintf("Activated: a successful lecture leaves %d Focused on its course. Focus is spent on the next attended lecture of that course.",
				notebookFocus(item))
		},
		AfterAttendLecture: func(ctx *game.HookContext) {
			c := ctx.Course()
			if c == nil || ctx.Result.Result != game.ResultSuccess {
				return
			}
			game.AddStacks(c, effects.Focused, float64(notebookFocus(ctx.Item)))
		},
	})

	game.RegisterItem(game.ItemDefinition{
		Name:       Textbook,
		Rarity:     2,
		DropWeight: 5,
		Level:      1,
		Color:      "#875fd7",
		Describe: func(item *game.ItemData, _ *game.State) string {
			return fmt.Sprintf("Activated: lecture yields %s more understanding, but makes the course 10%% more Extensive.",
				game.FormatChance(textbookBoost(item)))
		},
		BeforeAttendLecture: func(ctx *game.HookContext) {
			ctx.Lecture.PotentialUnderstandings = round(ctx.Lecture.PotentialUnderstandings * (1 + textbookBoost(ctx.Item)))
			if c := ctx.Course(); c != nil {
				game.AddStacks(c, effects.Extensive, 10)
				ctx.Say("#875fd7", "**Textbook**: up to **%s** understanding, **%s** goal is now **%s**",
					game.FormatAmount(ctx.Lecture.PotentialUnderstandings), c.Title, game.FormatAmount(c.Goal))
			}
		},
	})

	game.RegisterItem(game.ItemDefinition{
		Name:       AlarmClock,
		Rarity:     2,
		DropWeight: 5,
		Level:      1,
		Color:      "#d75f5f",
		Describe: func(item *game.ItemData, _ *game.State) string {
			return fmt.Sprintf("Activated: skipping gains only %s of the usual procrastination.",
				game.FormatChance(alarmFactor(item)))
		},
		BeforeSkipLecture: func(ctx *game.HookContext) {
			before := ctx.Lecture.ProcrastinationValue
			ctx.Lecture.ProcrastinationValue = round(before * alarmFactor(ctx.Item))
			ctx.Say("#d75f5f", "**Alarm Clock** cut procrastination from **%s** to **%s**",
				game.FormatAmount(before), game.FormatAmount(ctx.Lecture.ProcrastinationValue))
		},
	})
}

// coffeeSaving is the fraction of energy cost Coffee removes: 50% at level 1,
// easing towards 90%.
func coffeeSaving(item *game.ItemData) float64 {
	return game.ExponentialPercentage(level(item), 0.5, 0.5, 0.9)
}

func notebookFocus(item *game.ItemData) int {
	return 10 * max(item.Level, 1)
}

func textbookBoost(item *game.ItemData) float64 {
	return 0.5 * level(item)
}

// alarmFactor halves the remaining procrastination per level past the first,
// starting at 50%.
func alarmFactor(item *game.ItemData) float64 {
	return game.GeometricSeries(level(item)-1, 0.5, 0.5, 0)
}
