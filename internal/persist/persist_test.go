package persist

import (
	"bytes"
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/semester/internal/config"
	_ "github.com/vovakirdan/semester/internal/effects"
	"github.com/vovakirdan/semester/internal/game"
	"github.com/vovakirdan/semester/internal/items"
)

// playedState returns a mid-block state with effects, memory and selections.
func playedState(t *testing.T) *game.State {
	t.Helper()
	rules := config.DefaultRules()
	rng := rand.New(rand.NewPCG(5, 6))

	s := game.NewGame(rng, rules)
	var ok bool
	s, ok = game.ToggleItem(s, 0)
	if !ok {
		t.Fatal("cannot select the starting item")
	}
	s = game.StartRound(s, game.ActionSkip, rng)
	s = game.StartRound(s, game.ActionSkip, rng)
	s, _ = game.ToggleItem(s, 1)
	game.AddStacks(&s.Courses[2], "Extensive", 15)
	s.Items[0].Memory.SetNum(game.MemoryLastUsed, 1)
	return s
}

func TestRoundTrip(t *testing.T) {
	rules := config.DefaultRules()
	s := playedState(t)
	s.Cash = math.Inf(1)
	s.Procrastinations = math.Inf(-1)

	data, err := Marshal(s)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "cash: .inf") {
		t.Error("infinite cash not encoded as .inf")
	}

	loaded, err := Unmarshal(data, rules)
	if err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if !math.IsInf(loaded.Cash, 1) || !math.IsInf(loaded.Procrastinations, -1) {
		t.Errorf("infinities lost: cash=%v procrastinations=%v", loaded.Cash, loaded.Procrastinations)
	}
	if !slices.Equal(loaded.SelectedItemSlots, s.SelectedItemSlots) {
		t.Errorf("selection = %v, want %v", loaded.SelectedItemSlots, s.SelectedItemSlots)
	}
	if loaded.Courses[2].Goal != s.Courses[2].Goal {
		t.Errorf("goal = %v, want %v", loaded.Courses[2].Goal, s.Courses[2].Goal)
	}
	if loaded.Items[0].Memory.Num(game.MemoryLastUsed) != 1 {
		t.Error("item memory lost")
	}

	again, err := Marshal(loaded)
	if err != nil {
		t.Fatalf("second Marshal() failed: %v", err)
	}
	if !bytes.Equal(data, again) {
		t.Error("save changed across a load/save cycle")
	}
}

func TestLoadedStateKeepsPlaying(t *testing.T) {
	rules := config.DefaultRules()
	s := playedState(t)

	data, err := Marshal(s)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	loaded, err := Unmarshal(data, rules)
	if err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}

	a := game.StartRound(s, game.ActionSkip, rand.New(rand.NewPCG(9, 9)))
	b := game.StartRound(loaded, game.ActionSkip, rand.New(rand.NewPCG(9, 9)))
	ma, _ := Marshal(a)
	mb, _ := Marshal(b)
	if !bytes.Equal(ma, mb) {
		t.Error("loaded state diverged from the original")
	}
}

func TestValidateMissingFields(t *testing.T) {
	rules := config.DefaultRules()
	data, err := Marshal(playedState(t))
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	delete(tree, "energy")
	courses := tree["courses"].([]any)
	delete(courses[1].(map[string]any), "goal")
	items := tree["items"].([]any)
	delete(items[0].(map[string]any), "memory")

	broken, err := yaml.Marshal(tree)
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}

	_, err = Unmarshal(broken, rules)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Unmarshal() error = %v, want *ValidationError", err)
	}
	for _, want := range []string{"energy", "courses[1].goal", "items[0].memory"} {
		if !slices.Contains(verr.Missing, want) {
			t.Errorf("missing %v does not list %q", verr.Missing, want)
		}
	}
	if len(verr.Missing) != 3 {
		t.Errorf("missing = %v, want exactly 3 paths", verr.Missing)
	}
}

func TestNullMemoryLoadsEmpty(t *testing.T) {
	rules := config.DefaultRules()
	s := game.NewGame(rand.New(rand.NewPCG(5, 6)), rules)
	slot := game.FirstFreeSlot(s)
	s.Items[slot] = game.NewItem(s, items.PiggyBank)

	data, err := Marshal(s)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	nulled := strings.ReplaceAll(string(data), "memory: {}", "memory: null")
	if nulled == string(data) {
		t.Fatal("save has no empty memory to null out")
	}

	loaded, err := Unmarshal([]byte(nulled), rules)
	if err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	for i, item := range loaded.Items {
		if item != nil && item.Memory == nil {
			t.Errorf("items[%d].memory is nil", i)
		}
	}

	next := game.StartRound(loaded, game.ActionSkip, rand.New(rand.NewPCG(1, 1)))
	if got := next.Items[slot].Memory.Num("saved"); got != 1 {
		t.Errorf("piggy bank saved = %v, want 1", got)
	}
}

func TestValidateRejects(t *testing.T) {
	rules := config.DefaultRules()
	tests := []struct {
		name string
		data string
	}{
		{"not yaml", "{{{"},
		{"a list", "- 1\n- 2\n"},
		{"empty mapping", "{}\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Unmarshal([]byte(tc.data), rules); err == nil {
				t.Error("Unmarshal() should fail")
			}
		})
	}
}

func TestUnmarshalInventorySize(t *testing.T) {
	s := playedState(t)
	s.Items = s.Items[:10]
	data, err := Marshal(s)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if _, err := Unmarshal(data, config.DefaultRules()); err == nil {
		t.Error("a truncated inventory should be refused")
	}
}

func TestSchema(t *testing.T) {
	data, err := SchemaJSON()
	if err != nil {
		t.Fatalf("SchemaJSON() failed: %v", err)
	}
	for _, field := range []string{"selectedItemSlots", "nextLecture", "understandChance", "Semester Save"} {
		if !strings.Contains(string(data), field) {
			t.Errorf("schema does not mention %q", field)
		}
	}
}
