package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/vovakirdan/semester/internal/registry"
)

// Placeholder names returned for unregistered content.
const (
	UnknownItemName   = "Unknown Item"
	UnknownEffectName = "Unknown Effect"
)

const unknownColor = "#808080"

// Hook is an item reaction to a round phase. Hooks mutate ctx.State in place
// and may write a message to ctx.Entry.
type Hook func(ctx *HookContext)

// HookContext is passed to every hook invocation.
type HookContext struct {
	State   *State
	Item    *ItemData
	Slot    int      // slot of Item at the time of the call
	Action  Action   // action being resolved
	Lecture *Lecture // working copy of the resolving lecture
	Entry   *LogEntry

	// After-phase only.
	Result      *LectureResult
	NextLecture *Lecture

	Rand *rand.Rand
}

// Course returns the course of the resolving lecture, or nil.
func (ctx *HookContext) Course() *Course {
	if ctx.Lecture == nil {
		return nil
	}
	return ctx.State.Course(ctx.Lecture.CourseIndex)
}

// Say sets the hook's log message.
func (ctx *HookContext) Say(color, format string, args ...any) {
	ctx.Entry.Color = color
	ctx.Entry.Message = fmt.Sprintf(format, args...)
}

// HookKind identifies one of the eight item hooks.
type HookKind int

const (
	HookBeforeRound HookKind = iota
	HookBeforeUse
	HookBeforeAttendLecture
	HookBeforeSkipLecture
	HookAfterRound
	HookAfterUse
	HookAfterAttendLecture
	HookAfterSkipLecture
)

var hookNames = [...]string{
	"beforeRound", "beforeUse", "beforeAttendLecture", "beforeSkipLecture",
	"afterRound", "afterUse", "afterAttendLecture", "afterSkipLecture",
}

func (k HookKind) String() string {
	if k < 0 || int(k) >= len(hookNames) {
		return fmt.Sprintf("HookKind(%d)", int(k))
	}
	return hookNames[k]
}

// ItemDefinition is the catalog template of an item.
type ItemDefinition struct {
	Name       string
	Rarity     int     // 1..3
	DropWeight float64 // relative shop draw weight, > 0
	Level      int     // starting level, >= 1
	Color      string

	Describe  func(item *ItemData, s *State) string
	IsEnabled func(item *ItemData, s *State) bool

	BeforeRound         Hook
	BeforeUse           Hook
	BeforeAttendLecture Hook
	BeforeSkipLecture   Hook
	AfterRound          Hook
	AfterUse            Hook
	AfterAttendLecture  Hook
	AfterSkipLecture    Hook
}

// Hook returns the hook of the given kind, or nil if the item has none.
func (d ItemDefinition) Hook(kind HookKind) Hook {
	switch kind {
	case HookBeforeRound:
		return d.BeforeRound
	case HookBeforeUse:
		return d.BeforeUse
	case HookBeforeAttendLecture:
		return d.BeforeAttendLecture
	case HookBeforeSkipLecture:
		return d.BeforeSkipLecture
	case HookAfterRound:
		return d.AfterRound
	case HookAfterUse:
		return d.AfterUse
	case HookAfterAttendLecture:
		return d.AfterAttendLecture
	case HookAfterSkipLecture:
		return d.AfterSkipLecture
	}
	return nil
}

// Description renders the item's description.
func (d ItemDefinition) Description(item *ItemData, s *State) string {
	if d.Describe == nil {
		return ""
	}
	return d.Describe(item, s)
}

// Enabled reports whether the item can currently be activated.
// Items without an IsEnabled predicate are always enabled.
func (d ItemDefinition) Enabled(item *ItemData, s *State) bool {
	if d.IsEnabled == nil {
		return true
	}
	return d.IsEnabled(item, s)
}

// EffectDefinition is the catalog entry of a course effect.
type EffectDefinition struct {
	Name     string
	Color    string
	Describe func(e EffectData) string

	// OnStacksChanged runs after every AddStacks/SetStacks on a course,
	// including the call that removes the effect.
	OnStacksChanged func(c *Course)

	// BeforeLecture runs once per round for each effect on the lecture's
	// course, before any item hook. A non-empty result is logged in the
	// effect's color.
	BeforeLecture func(c *Course, l *Lecture, action Action) string
}

// Description renders the effect's description.
func (d EffectDefinition) Description(e EffectData) string {
	if d.Describe == nil {
		return ""
	}
	return d.Describe(e)
}

var (
	itemCatalog   = registry.New[ItemDefinition]("item")
	effectCatalog = registry.New[EffectDefinition]("effect")
)

// RegisterItem adds an item to the catalog. Called from init() in content packages.
// Panics on duplicate names or out-of-range template values.
func RegisterItem(def ItemDefinition) {
	if def.Rarity < 1 || def.Rarity > 3 {
		panic(fmt.Sprintf("game: item %q rarity %d out of range", def.Name, def.Rarity))
	}
	if !(def.DropWeight > 0) {
		panic(fmt.Sprintf("game: item %q needs a positive drop weight", def.Name))
	}
	if def.Level < 1 {
		panic(fmt.Sprintf("game: item %q level must be at least 1", def.Name))
	}
	itemCatalog.Register(def.Name, def)
}

// RegisterEffect adds an effect to the catalog. Panics on duplicate names.
func RegisterEffect(def EffectDefinition) {
	effectCatalog.Register(def.Name, def)
}

// LookupItem returns the definition for name. Unknown names yield an inert
// placeholder with no hooks.
func LookupItem(name string) ItemDefinition {
	if def, ok := itemCatalog.Lookup(name); ok {
		return def
	}
	return ItemDefinition{
		Name:       UnknownItemName,
		Rarity:     1,
		DropWeight: 1,
		Level:      1,
		Color:      unknownColor,
		Describe: func(item *ItemData, _ *State) string {
			return fmt.Sprintf("No item named %q exists.", item.Name)
		},
	}
}

// LookupEffect returns the definition for name, or an inert placeholder.
func LookupEffect(name string) EffectDefinition {
	if def, ok := effectCatalog.Lookup(name); ok {
		return def
	}
	return EffectDefinition{
		Name:  UnknownEffectName,
		Color: unknownColor,
		Describe: func(e EffectData) string {
			return fmt.Sprintf("No effect named %q exists.", e.Name)
		},
	}
}

// ItemExists reports whether name is a registered item.
func ItemExists(name string) bool { return itemCatalog.Exists(name) }

// ItemNames returns all registered item names, sorted.
func ItemNames() []string { return itemCatalog.Names() }

// ItemDefinitions returns all registered items in registration order.
func ItemDefinitions() []ItemDefinition { return itemCatalog.InOrder() }

// EffectNames returns all registered effect names, sorted.
func EffectNames() []string { return effectCatalog.Names() }

// NewItem mints an instance of the named item with a fresh id and empty memory.
// The state's id counter is advanced.
func NewItem(s *State, name string) *ItemData {
	def := LookupItem(name)
	s.NextItemID++
	return &ItemData{
		ID:            fmt.Sprintf("item-%d", s.NextItemID),
		Name:          name,
		Rarity:        def.Rarity,
		DropWeight:    def.DropWeight,
		Level:         def.Level,
		StartingLevel: def.Level,
		Memory:        Memory{},
	}
}

// RollItemName draws a registered item name weighted by drop weight.
// Returns "" when the catalog is empty.
func RollItemName(rng *rand.Rand) string {
	defs := ItemDefinitions()
	total := 0.0
	for _, d := range defs {
		total += d.DropWeight
	}
	if len(defs) == 0 || total <= 0 {
		return ""
	}
	roll := rng.Float64() * total
	for _, d := range defs {
		roll -= d.DropWeight
		if roll < 0 {
			return d.Name
		}
	}
	return defs[len(defs)-1].Name
}
