// Package persist encodes game states as YAML save files and validates
// loaded saves against the shape of a freshly generated state.
package persist

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/semester/internal/config"
	"github.com/vovakirdan/semester/internal/game"
)

// ValidationError lists the fields a save is missing, as dotted paths
// such as "courses[1].goal".
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("persist: save is missing %d field(s): %s", len(e.Missing), strings.Join(e.Missing, ", "))
}

// Marshal encodes the state. Infinite amounts are written as .inf / -.inf.
func Marshal(s *game.State) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("persist: cannot encode state: %w", err)
	}
	return data, nil
}

// Unmarshal validates and decodes a save. The save is never repaired:
// any missing field fails the load with a *ValidationError.
func Unmarshal(data []byte, rules config.Rules) (*game.State, error) {
	if err := Validate(data, rules); err != nil {
		return nil, err
	}

	var s game.State
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("persist: cannot decode save: %w", err)
	}
	if len(s.Items) != game.InventorySize {
		return nil, fmt.Errorf("persist: inventory has %d slots, want %d", len(s.Items), game.InventorySize)
	}
	// A null memory node skips Memory.UnmarshalYAML and would leave a nil map.
	for _, item := range s.Items {
		if item != nil && item.Memory == nil {
			item.Memory = game.Memory{}
		}
	}
	return &s, nil
}

// Validate compares the keys of a save against a template state generated
// from rules. Lists are checked element by element against the template's
// first element; empty template lists and null values are not descended into.
func Validate(data []byte, rules config.Rules) error {
	var got any
	if err := yaml.Unmarshal(data, &got); err != nil {
		return fmt.Errorf("persist: cannot parse save: %w", err)
	}
	if _, ok := got.(map[string]any); !ok {
		return fmt.Errorf("persist: save is not a mapping")
	}

	tmpl, err := templateTree(rules)
	if err != nil {
		return err
	}

	var missing []string
	compare(tmpl, got, "", &missing)
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// Template returns the reference state saves are validated against. It is a
// fresh game with at least one item so item fields are checked too.
func Template(rules config.Rules) *game.State {
	s := game.NewGame(rand.New(rand.NewPCG(0, 0)), rules)
	if s.Items[0] == nil {
		s.Items[0] = game.NewItem(s, game.UnknownItemName)
	}
	if len(s.Quests) == 0 {
		s.Quests = append(s.Quests, game.Quest{
			ID:      "template",
			Costs:   []game.Currency{game.Cash(0)},
			Rewards: []game.Currency{game.Cash(0)},
		})
	}
	return s
}

func templateTree(rules config.Rules) (any, error) {
	data, err := yaml.Marshal(Template(rules))
	if err != nil {
		return nil, fmt.Errorf("persist: cannot encode template: %w", err)
	}
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("persist: cannot decode template: %w", err)
	}
	return tree, nil
}

func compare(tmpl, got any, path string, missing *[]string) {
	if got == nil {
		return
	}
	switch t := tmpl.(type) {
	case map[string]any:
		g, ok := got.(map[string]any)
		if !ok {
			*missing = append(*missing, orRoot(path))
			return
		}
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			child := join(path, k)
			v, ok := g[k]
			if !ok {
				*missing = append(*missing, child)
				continue
			}
			compare(t[k], v, child, missing)
		}
	case []any:
		g, ok := got.([]any)
		if !ok {
			*missing = append(*missing, orRoot(path))
			return
		}
		shape := firstNonNil(t)
		if shape == nil {
			return
		}
		for i, v := range g {
			compare(shape, v, fmt.Sprintf("%s[%d]", path, i), missing)
		}
	}
}

func firstNonNil(list []any) any {
	for _, v := range list {
		if v != nil {
			return v
		}
	}
	return nil
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func orRoot(path string) string {
	if path == "" {
		return "(root)"
	}
	return path
}
