package config

import (
	_ "embed"
)

//go:embed defaults/rules.yaml
var defaultRulesYAML []byte

// DefaultRules returns the default rules.
// Must stay in sync with defaults/rules.yaml.
func DefaultRules() Rules {
	return Rules{
		Player: PlayerRules{
			StartingEnergy:    100,
			MaxEnergy:         100,
			EnergyPerSkip:     10,
			StartingCash:      20,
			MaxActivatedItems: 3,
			StartingItems:     []string{"Coffee", "Notebook"},
		},
		Block: BlockRules{
			LecturesPerBlock: 12,
			CoursesPerBlock:  3,
			MinHueDistance:   25,
			FailuresToLose:   2,
			FinalBlock:       8,
		},
		Courses: CourseRules{
			Titles: []string{
				"Linear Algebra",
				"Analysis",
				"Algorithms",
				"Operating Systems",
				"Compilers",
				"Databases",
				"Statistics",
				"Computer Networks",
				"Theory of Computation",
				"Numerical Methods",
				"Cryptography",
				"Machine Learning",
			},
			BaseGoal:               40,
			BaseMaxUnderstandings:  10,
			BaseMaxProcrastination: 8,
			BaseMaxEnergyCost:      20,
		},
		Quests: QuestRules{
			PerBlock:        12,
			BaseCost:        5,
			CostPerBlock:    2,
			BaseReward:      10,
			RewardPerBlock:  3,
			ExtraCostChance: 0.25,
		},
		Shop: ShopRules{
			BasePrice:     25,
			PricePerBlock: 5,
		},
		Scaling: ScalingRules{
			GoalPerBlock:            15,
			UnderstandingsPerBlock:  3,
			ProcrastinationPerBlock: 2,
			EnergyCostPerBlock:      2,
		},
	}
}

// DefaultYAML returns the embedded default rules YAML.
func DefaultYAML() []byte {
	return defaultRulesYAML
}
