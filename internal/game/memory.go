package game

import (
	"maps"

	"gopkg.in/yaml.v3"
)

// Memory is per-item persistent storage. The engine never interprets it;
// item hooks use the typed accessors below.
type Memory map[string]any

// Conventional memory key: the block in which a once-per-block item was last used.
const MemoryLastUsed = "lastUsed"

// Num returns the numeric value stored under key, or 0.
func (m Memory) Num(key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

// SetNum stores a numeric value.
func (m Memory) SetNum(key string, v float64) {
	m[key] = v
}

// Str returns the string stored under key, or "".
func (m Memory) Str(key string) string {
	s, _ := m[key].(string)
	return s
}

// SetStr stores a string value.
func (m Memory) SetStr(key, v string) {
	m[key] = v
}

// Has reports whether key is present.
func (m Memory) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// Clone returns a deep copy. Nested maps and slices are copied too.
func (m Memory) Clone() Memory {
	if m == nil {
		return nil
	}
	out := make(Memory, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

// UnmarshalYAML decodes memory with every number widened to float64,
// so a value survives a save/load cycle with the type it was stored with.
func (m *Memory) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	out := make(Memory, len(raw))
	for k, v := range raw {
		out[k] = normalizeValue(v)
	}
	*m = out
	return nil
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := maps.Clone(t)
		for k, inner := range out {
			out[k] = cloneValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, inner := range t {
			out[i] = cloneValue(inner)
		}
		return out
	default:
		return v
	}
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case uint64:
		return float64(t)
	case map[string]any:
		for k, inner := range t {
			t[k] = normalizeValue(inner)
		}
		return t
	case []any:
		for i, inner := range t {
			t[i] = normalizeValue(inner)
		}
		return t
	default:
		return v
	}
}
