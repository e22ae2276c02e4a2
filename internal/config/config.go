// Package config provides YAML-based rules loading and difficulty presets
// for the semester simulation.
package config

// Rules contains all tunable parameters of a run.
type Rules struct {
	Player  PlayerRules  `yaml:"player"`
	Block   BlockRules   `yaml:"block"`
	Courses CourseRules  `yaml:"courses"`
	Quests  QuestRules   `yaml:"quests"`
	Shop    ShopRules    `yaml:"shop"`
	Scaling ScalingRules `yaml:"scaling"`
}

// PlayerRules defines the starting resources of a new run.
type PlayerRules struct {
	StartingEnergy    float64  `yaml:"starting_energy"`
	MaxEnergy         float64  `yaml:"max_energy"`
	EnergyPerSkip     float64  `yaml:"energy_per_skip"`
	StartingCash      float64  `yaml:"starting_cash"`
	MaxActivatedItems int      `yaml:"max_activated_items"`
	StartingItems     []string `yaml:"starting_items"`
}

// BlockRules defines the shape of a block and the run-ending conditions.
type BlockRules struct {
	LecturesPerBlock int     `yaml:"lectures_per_block"`
	CoursesPerBlock  int     `yaml:"courses_per_block"`
	MinHueDistance   float64 `yaml:"min_hue_distance"` // Degrees on the 360° hue circle
	FailuresToLose   int     `yaml:"failures_to_lose"`
	FinalBlock       int     `yaml:"final_block"` // Passing this block's exams wins the run
}

// CourseRules defines how courses are generated at block start.
// Every "Base" value is scaled per block by ScalingRules.
type CourseRules struct {
	Titles                 []string `yaml:"titles"`
	BaseGoal               float64  `yaml:"base_goal"`
	BaseMaxUnderstandings  float64  `yaml:"base_max_understandings"`
	BaseMaxProcrastination float64  `yaml:"base_max_procrastination"`
	BaseMaxEnergyCost      float64  `yaml:"base_max_energy_cost"`
}

// QuestRules defines quest generation.
type QuestRules struct {
	PerBlock        int     `yaml:"per_block"`
	BaseCost        float64 `yaml:"base_cost"`
	CostPerBlock    float64 `yaml:"cost_per_block"`
	BaseReward      float64 `yaml:"base_reward"`
	RewardPerBlock  float64 `yaml:"reward_per_block"`
	ExtraCostChance float64 `yaml:"extra_cost_chance"` // Chance of an added procrastination cost
}

// ShopRules defines item prices.
type ShopRules struct {
	BasePrice     float64 `yaml:"base_price"`
	PricePerBlock float64 `yaml:"price_per_block"`
}

// ScalingRules defines how much course parameters grow per block.
type ScalingRules struct {
	GoalPerBlock            float64 `yaml:"goal_per_block"`
	UnderstandingsPerBlock  float64 `yaml:"understandings_per_block"`
	ProcrastinationPerBlock float64 `yaml:"procrastination_per_block"`
	EnergyCostPerBlock      float64 `yaml:"energy_cost_per_block"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset.
// Unknown and empty values map to normal.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy:
		return DifficultyEasy
	case DifficultyHard:
		return DifficultyHard
	default:
		return DifficultyNormal
	}
}
