package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRules loads the run rules.
// Search order: customPath -> ~/.semester/rules.yaml -> ./configs/rules.yaml -> embedded default
func LoadRules(customPath string) (Rules, error) {
	var rules Rules

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return rules, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &rules); err != nil {
			return rules, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := rules.Validate(); err != nil {
			return rules, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return rules, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("rules.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &rules); err == nil && rules.Validate() == nil {
				return rules, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/rules.yaml"); err == nil {
		rules = Rules{}
		if err := yaml.Unmarshal(data, &rules); err == nil && rules.Validate() == nil {
			return rules, nil
		}
	}

	// Use embedded default YAML
	rules = Rules{}
	if err := yaml.Unmarshal(defaultRulesYAML, &rules); err != nil {
		return DefaultRules(), nil // Fallback to hardcoded if embed fails
	}
	return rules, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".semester", filename)
}

// Validate checks the structural limits the engine relies on.
func (r Rules) Validate() error {
	switch {
	case r.Player.MaxEnergy <= 0:
		return fmt.Errorf("player.max_energy must be positive")
	case r.Player.MaxActivatedItems < 0:
		return fmt.Errorf("player.max_activated_items must not be negative")
	case r.Block.LecturesPerBlock < 1:
		return fmt.Errorf("block.lectures_per_block must be at least 1")
	case r.Block.CoursesPerBlock < 1:
		return fmt.Errorf("block.courses_per_block must be at least 1")
	case len(r.Courses.Titles) < r.Block.CoursesPerBlock:
		return fmt.Errorf("courses.titles needs at least %d entries", r.Block.CoursesPerBlock)
	case r.Block.MinHueDistance < 0 || r.Block.MinHueDistance*float64(r.Block.CoursesPerBlock) > 360:
		return fmt.Errorf("block.min_hue_distance %.1f cannot fit %d courses", r.Block.MinHueDistance, r.Block.CoursesPerBlock)
	case r.Block.FailuresToLose < 1:
		return fmt.Errorf("block.failures_to_lose must be at least 1")
	case r.Quests.PerBlock < 0:
		return fmt.Errorf("quests.per_block must not be negative")
	case r.Quests.ExtraCostChance < 0|| r.Quests.ExtraCostChance > 1:
		return fmt.Errorf("quests.extra_cost_chance must be within [0, 1]")
	}
	return nil
}

// ApplyPreset modifies the rules based on a difficulty preset.
func ApplyPreset(rules *Rules, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		rules.Player.MaxEnergy = 120
		rules.Player.StartingEnergy = 120
		rules.Player.EnergyPerSkip = 15
		rules.Player.StartingCash += 20
		rules.Scaling.GoalPerBlock *= 0.75
	case DifficultyHard:
		rules.Player.MaxEnergy = 80
		rules.Player.StartingEnergy = 80
		rules.Player.EnergyPerSkip = 8
		rules.Player.MaxActivatedItems = max(1, rules.Player.MaxActivatedItems-1)
		rules.Scaling.GoalPerBlock *= 1.5
	}
}
