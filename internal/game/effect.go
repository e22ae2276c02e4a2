package game

import "fmt"

// GetStacks returns the value of the named effect on the course, or 0.
func GetStacks(c *Course, name string) float64 {
	if e, ok := c.Effects[name]; ok {
		return e.Value
	}
	return 0
}

// AddStacks adds amount to the named effect, creating it at 0 first if absent.
// The second result is false when the effect was removed because its value
// fell to zero or below.
func AddStacks(c *Course, name string, amount float64) (EffectData, bool) {
	e := c.effect(name)
	e.Value += amount
	return c.storeEffect(e)
}

// SetStacks assigns the named effect's value, with the same removal rule as AddStacks.
func SetStacks(c *Course, name string, amount float64) (EffectData, bool) {
	e := c.effect(name)
	e.Value = amount
	return c.storeEffect(e)
}

func (c *Course) effect(name string) EffectData {
	if e, ok := c.Effects[name]; ok {
		return e
	}
	return EffectData{Name: name}
}

func (c *Course) storeEffect(e EffectData) (EffectData, bool) {
	alive := e.Value > 0
	if alive {
		if e.ID == "" {
			c.EffectSeq++
			e.ID = fmt.Sprintf("%s-e%d", c.ID, c.EffectSeq)
		}
		if c.Effects == nil {
			c.Effects = make(map[string]EffectData)
		}
		c.Effects[e.Name] = e
	} else {
		delete(c.Effects, e.Name)
	}

	if def := LookupEffect(e.Name); def.OnStacksChanged != nil {
		def.OnStacksChanged(c)
	}
	return e, alive
}
