package game

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/vovakirdan/semester/internal/config"
)

func validSlot(s *State, slot int) bool {
	return slot >= 0 && slot < len(s.Items)
}

// SlotOfID returns the slot holding the item with id, or -1.
func SlotOfID(s *State, id string) int {
	for i, item := range s.Items {
		if item != nil && item.ID == id {
			return i
		}
	}
	return -1
}

// ItemByID returns the item with id, or nil.
func ItemByID(s *State, id string) *ItemData {
	if slot := SlotOfID(s, id); slot >= 0 {
		return s.Items[slot]
	}
	return nil
}

// SlotOfItem returns the current slot of item, or -1 if it is gone.
func SlotOfItem(s *State, item *ItemData) int {
	if item == nil {
		return -1
	}
	return SlotOfID(s, item.ID)
}

// FirstFreeSlot returns the lowest empty slot, or -1 when the inventory is full.
func FirstFreeSlot(s *State) int {
	return slices.Index(s.Items, nil)
}

// GiveItem places a new instance of name in the first free slot of s, in place.
// Intended for hooks and state construction; returns nil when full.
func GiveItem(s *State, name string) *ItemData {
	slot := FirstFreeSlot(s)
	if slot < 0 {
		return nil
	}
	item := NewItem(s, name)
	s.Items[slot] = item
	return item
}

// RemoveItem empties slot of s in place and drops it from the selection.
// Intended for hooks that destroy themselves or a neighbour.
func RemoveItem(s *State, slot int) {
	if !validSlot(s, slot) {
		return
	}
	s.Items[slot] = nil
	s.deselect(slot)
}

// AddItem returns a state with a new name item in the first free slot.
// Returns false when the inventory is full.
func AddItem(s *State, name string) (*State, bool) {
	if FirstFreeSlot(s) < 0 {
		return s, false
	}
	next := s.Clone()
	item := GiveItem(next, name)
	next.pushLog(LookupItem(name).Color, fmt.Sprintf("Got **%s**", item.Name))
	return next, true
}

// MoveItem moves the item in from to the empty slot to.
func MoveItem(s *State, from, to int) (*State, bool) {
	if !validSlot(s, from) || !validSlot(s, to) || from == to {
		return s, false
	}
	if s.Items[from] == nil || s.Items[to] != nil {
		return s, false
	}
	next := s.Clone()
	next.Items[to], next.Items[from] = next.Items[from], nil
	next.remapSelection(from, to)
	return next, true
}

// SwapItems exchanges the contents of two slots. At least one must be occupied.
func SwapItems(s *State, a, b int) (*State, bool) {
	if !validSlot(s, a) || !validSlot(s, b) || a == b {
		return s, false
	}
	if s.Items[a] == nil && s.Items[b] == nil {
		return s, false
	}
	next := s.Clone()
	next.Items[a], next.Items[b] = next.Items[b], next.Items[a]
	next.remapSelection(a, b)
	return next, true
}

// TrashItem destroys the item in slot.
func TrashItem(s *State, slot int) (*State, bool) {
	if !validSlot(s, slot) || s.Items[slot] == nil {
		return s, false
	}
	next := s.Clone()
	name := next.Items[slot].Name
	RemoveItem(next, slot)
	next.pushLog(ColorNeutral, fmt.Sprintf("Trashed **%s**", name))
	return next, true
}

// ToggleItem selects or deselects the item in slot for the next round.
// Selecting fails on an empty or disabled slot, or when MaxActivatedItems
// items are already selected.
func ToggleItem(s *State, slot int) (*State, bool) {
	if !validSlot(s, slot) || s.Items[slot] == nil {
		return s, false
	}
	if s.IsSelected(slot) {
		next := s.Clone()
		next.deselect(slot)
		return next, true
	}

	item := s.Items[slot]
	if len(s.SelectedItemSlots) >= s.MaxActivatedItems || !LookupItem(item.Name).Enabled(item, s) {
		return s, false
	}
	next := s.Clone()
	next.SelectedItemSlots = append(next.SelectedItemSlots, slot)
	slices.Sort(next.SelectedItemSlots)
	return next, true
}

func (s *State) deselect(slot int) {
	s.SelectedItemSlots = slices.DeleteFunc(s.SelectedItemSlots, func(v int) bool { return v == slot })
}

// remapSelection makes selection follow items swapped between a and b.
func (s *State) remapSelection(a, b int) {
	for i, v := range s.SelectedItemSlots {
		switch v {
		case a:
			s.SelectedItemSlots[i] = b
		case b:
			s.SelectedItemSlots[i] = a
		}
	}
	slices.Sort(s.SelectedItemSlots)
}

// UsedThisBlock reports whether a once-per-block item was used in the current block.
func UsedThisBlock(item *ItemData, s *State) bool {
	return item.Memory.Has(MemoryLastUsed) && int(item.Memory.Num(MemoryLastUsed)) == s.Block
}

// MarkUsed records that item was used in the current block.
func MarkUsed(item *ItemData, s *State) {
	if item.Memory == nil {
		item.Memory = Memory{}
	}
	item.Memory.SetNum(MemoryLastUsed, float64(s.Block))
}

// BuyItem pays the block's shop price for a random item, drawn by drop weight.
// Fails when cash is short, the inventory is full or the catalog is empty.
func BuyItem(s *State, rng *rand.Rand, rules config.Rules) (*State, bool) {
	price := rules.ItemPrice(s.Block)
	if s.Cash < price || FirstFreeSlot(s) < 0 {
		return s, false
	}
	name := RollItemName(rng)
	if name == "" {
		return s, false
	}

	next := s.Clone()
	next.Pay(Cash(price))
	GiveItem(next, name)
	next.pushLog(LookupItem(name).Color, fmt.Sprintf("Bought **%s** for **$%s**", name, FormatAmount(price)))
	return next, true
}

// ForgeItems merges the item in b into the item in a. Both must share name
// and level; the result keeps a's id and memory at level+1.
func ForgeItems(s *State, a, b int) (*State, bool) {
	if !validSlot(s, a) || !validSlot(s, b) || a == b {
		return s, false
	}
	ia, ib := s.Items[a], s.Items[b]
	if ia == nil || ib == nil || ia.Name != ib.Name || ia.Level != ib.Level {
		return s, false
	}

	next := s.Clone()
	next.Items[a].Level++
	RemoveItem(next, b)
	next.pushLog(LookupItem(ia.Name).Color,
		fmt.Sprintf("Forged **%s** to level **%d**", ia.Name, next.Items[a].Level))
	return next, true
}
