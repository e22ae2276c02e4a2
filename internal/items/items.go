// Package items registers the item catalog. Importing it for side effects
// makes every item available to the engine, the shop and save loading.
package items

import (
	"github.com/vovakirdan/semester/internal/core"
	"github.com/vovakirdan/semester/internal/game"
)

// Item names. These are persisted in saves and must not change.
const (
	Coffee      = "Coffee"
	Notebook    = "Notebook"
	Textbook    = "Textbook"
	AlarmClock  = "Alarm Clock"
	EnergyDrink = "Energy Drink"
	LuckyCharm  = "Lucky Charm"
	PiggyBank   = "Piggy Bank"
	Shredder    = "Shredder"
)

func init() {
	registerStudyItems()
	registerFortuneItems()
}

// level returns the item level as a float for curve math.
func level(item *game.ItemData) float64 {
	return float64(max(item.Level, 1))
}

// oncePerBlock is the IsEnabled predicate of items usable once per block.
func oncePerBlock(item *game.ItemData, s *game.State) bool {
	return !game.UsedThisBlock(item, s)
}

func round(v float64) float64 { return core.Round(v) }
