package items

import (
	"fmt"

	"github.com/vovakirdan/semester/internal/game"
)

const piggySaved = "saved"

func registerFortuneItems() {
	game.RegisterItem(game.ItemDefinition{
		Name:       EnergyDrink,
		Rarity:     1,
		DropWeight: 8,
		Level:      1,
		Color:      "#5fd700",
		Describe: func(item *game.ItemData, _ *game.State) string {
			return fmt.Sprintf("Activated: restore %d energy after the lecture. Once per block.", drinkEnergy(item))
		},
		IsEnabled: oncePerBlock,
		AfterUse: func(ctx *game.HookContext) {
			ctx.State.Energy += float64(drinkEnergy(ctx.Item))
			game.MarkUsed(ctx.Item, ctx.State)
			ctx.Say("#5fd700", "**Energy Drink**: **+%d** energy", drinkEnergy(ctx.Item))
		},
	})

	game.RegisterItem(game.ItemDefinition{
		Name:       LuckyCharm,
		Rarity:     3,
		DropWeight: 2,
		Level:      1,
		Color:      "#ffd700",
		Describe: func(*game.ItemData, *game.State) string {
			return "Activated: the lecture is certain to stick. Breaks on use."
		},
		BeforeAttendLecture: func(ctx *game.HookContext) {
			ctx.Lecture.UnderstandChance = 1
			game.RemoveItem(ctx.State, ctx.Slot)
			ctx.Say("#ffd700", "**Lucky Charm** crumbles. This one will stick.")
		},
	})

	game.RegisterItem(game.ItemDefinition{
		Name:       PiggyBank,
		Rarity:     2,
		DropWeight: 4,
		Level:      1,
		Color:      "#ff87af",
		Describe: func(item *game.ItemData, _ *game.State) string {
			return fmt.Sprintf("Saves $%d every round (holds $%s). Activate to smash it for double.",
				item.Level, game.FormatAmount(item.Memory.Num(piggySaved)))
		},
		AfterRound: func(ctx *game.HookContext) {
			ctx.Item.Memory.SetNum(piggySaved, ctx.Item.Memory.Num(piggySaved)+level(ctx.Item))
		},
		AfterUse: func(ctx *game.HookContext) {
			payout := ctx.Item.Memory.Num(piggySaved) * 2
			ctx.State.Gain(game.Cash(payout))
			game.RemoveItem(ctx.State, ctx.Slot)
			ctx.Say("#ff87af", "Smashed the **Piggy Bank**: **+$%s**", game.FormatAmount(payout))
		},
	})

	game.RegisterItem(game.ItemDefinition{
		Name:       Shredder,
		Rarity:     3,
		DropWeight: 2,
		Level:      1,
		Color:      "#8a8a8a",
		Describe: func(item *game.ItemData, _ *game.State) string {
			return fmt.Sprintf("Activated: destroys the item in the next slot for $%d per rarity.", shredderRate(item))
		},
		AfterUse: func(ctx *game.HookContext) {
			target := ctx.Slot + 1
			if target >= len(ctx.State.Items) || ctx.State.Items[target] == nil {
				return
			}
			victim := ctx.State.Items[target]
			payout := float64(shredderRate(ctx.Item) * victim.Rarity)
			game.RemoveItem(ctx.State, target)
			ctx.State.Gain(game.Cash(payout))
			ctx.Say("#8a8a8a", "**Shredder** ate **%s** for **$%s**", victim.Name, game.FormatAmount(payout))
		},
	})
}

func drinkEnergy(item *game.ItemData) int {
	return 25 * max(item.Level, 1)
}

func shredderRate(item *game.ItemData) int {
	return 10 * max(item.Level, 1)
}
