package game

import (
	"slices"
	"testing"

	"github.com/vovakirdan/semester/internal/config"
)

func TestSlotLookups(t *testing.T) {
	s := newTestState()
	a := place(s, 3, testRecorder)
	b := place(s, 7, testEnergyDrink)

	if got := SlotOfID(s, b.ID); got != 7 {
		t.Errorf("SlotOfID() = %d, want 7", got)
	}
	if got := ItemByID(s, a.ID); got != a {
		t.Error("ItemByID() returned the wrong item")
	}
	if got := SlotOfItem(s, &ItemData{ID: "item-999"}); got != -1 {
		t.Errorf("SlotOfItem(missing) = %d, want -1", got)
	}
	if got := FirstFreeSlot(s); got != 0 {
		t.Errorf("FirstFreeSlot() = %d, want 0", got)
	}
	if a.ID == b.ID {
		t.Error("item ids must be unique")
	}
}

func TestAddItemFull(t *testing.T) {
	s := newTestState()
	for i := range s.Items {
		place(s, i, testRecorder)
	}
	if got, ok := AddItem(s, testRecorder); ok || got != s {
		t.Error("AddItem() into a full inventory should fail")
	}
	if FirstFreeSlot(s) != -1 {
		t.Error("full inventory should report no free slot")
	}

	s.Items[20] = nil
	next, ok := AddItem(s, testEnergyDrink)
	if !ok || next.Items[20] == nil || next.Items[20].Name != testEnergyDrink {
		t.Error("AddItem() should fill the only free slot")
	}
	if s.Items[20] != nil {
		t.Error("input state changed")
	}
}

func TestMoveAndSwap(t *testing.T) {
	s := newTestState()
	a := place(s, 0, testRecorder)
	b := place(s, 1, testEnergyDrink)
	s.SelectedItemSlots = []int{0}

	if _, ok := MoveItem(s, 0, 1); ok {
		t.Error("moving onto an occupied slot should fail")
	}
	if _, ok := MoveItem(s, 5, 6); ok {
		t.Error("moving an empty slot should fail")
	}
	if _, ok := MoveItem(s, 0, InventorySize); ok {
		t.Error("moving out of range should fail")
	}

	moved, ok := MoveItem(s, 0, 10)
	if !ok || moved.Items[10].ID != a.ID || moved.Items[0] != nil {
		t.Fatal("MoveItem() did not move the item")
	}
	if !slices.Equal(moved.SelectedItemSlots, []int{10}) {
		t.Errorf("selection = %v, want [10]", moved.SelectedItemSlots)
	}

	swapped, ok := SwapItems(s, 0, 1)
	if !ok || swapped.Items[0].ID != b.ID || swapped.Items[1].ID != a.ID {
		t.Fatal("SwapItems() did not swap")
	}
	if !slices.Equal(swapped.SelectedItemSlots, []int{1}) {
		t.Errorf("selection = %v, want [1]", swapped.SelectedItemSlots)
	}
	if _, ok := SwapItems(s, 4, 5); ok {
		t.Error("swapping two empty slots should fail")
	}
}

func TestTrashItem(t *testing.T) {
	s := newTestState()
	place(s, 2, testRecorder)
	s.SelectedItemSlots = []int{2}

	next, ok := TrashItem(s, 2)
	if !ok || next.Items[2] != nil {
		t.Fatal("TrashItem() did not remove the item")
	}
	if len(next.SelectedItemSlots) != 0 {
		t.Error("trashed item should be deselected")
	}
	if _, ok := TrashItem(next, 2); ok {
		t.Error("trashing an empty slot should fail")
	}
}

func TestToggleItem(t *testing.T) {
	s := newTestState()
	s.MaxActivatedItems = 2
	for i := range 3 {
		place(s, i, testRecorder)
	}
	place(s, 4, testDisabled)

	var ok bool
	s, ok = ToggleItem(s, 1)
	if !ok {
		t.Fatal("first toggle failed")
	}
	s, ok = ToggleItem(s, 0)
	if !ok {
		t.Fatal("second toggle failed")
	}
	if !slices.Equal(s.SelectedItemSlots, []int{0, 1}) {
		t.Errorf("selection = %v, want sorted [0 1]", s.SelectedItemSlots)
	}
	if _, ok := ToggleItem(s, 2); ok {
		t.Error("selecting past MaxActivatedItems should fail")
	}
	if _, ok := ToggleItem(s, 3); ok {
		t.Error("selecting an empty slot should fail")
	}

	s, ok = ToggleItem(s, 1)
	if !ok || !slices.Equal(s.SelectedItemSlots, []int{0}) {
		t.Errorf("deselect failed: %v", s.SelectedItemSlots)
	}
	if _, ok := ToggleItem(s, 4); ok {
		t.Error("selecting a disabled item should fail")
	}
}

func TestUsedThisBlock(t *testing.T) {
	s := newTestState()
	item := place(s, 0, testRecorder)

	if UsedThisBlock(item, s) {
		t.Error("fresh item should be unused")
	}
	MarkUsed(item, s)
	if !UsedThisBlock(item, s) {
		t.Error("item should be marked used")
	}
	s.Block++
	if UsedThisBlock(item, s) {
		t.Error("use should reset with a new block")
	}
}

func TestBuyItem(t *testing.T) {
	rules := config.DefaultRules()
	price := rules.ItemPrice(1)

	s := newTestState()
	s.Cash = price - 1
	if _, ok := BuyItem(s, testRand(1), rules); ok {
		t.Error("buying without enough cash should fail")
	}

	s.Cash = price
	next, ok := BuyItem(s, testRand(1), rules)
	if !ok {
		t.Fatal("BuyItem() failed")
	}
	if next.Cash != 0 {
		t.Errorf("cash = %v, want 0", next.Cash)
	}
	if next.Items[0] == nil || !ItemExists(next.Items[0].Name) {
		t.Errorf("bought item = %+v, want a catalog item", next.Items[0])
	}
}

func TestForgeItems(t *testing.T) {
	s := newTestState()
	a := place(s, 0, testRecorder)
	place(s, 1, testRecorder)
	place(s, 2, testEnergyDrink)

	if _, ok := ForgeItems(s, 0, 2); ok {
		t.Error("forging different items should fail")
	}

	next, ok := ForgeItems(s, 0, 1)
	if !ok {
		t.Fatal("ForgeItems() failed")
	}
	if next.Items[0].ID != a.ID || next.Items[0].Level != 2 || next.Items[1] != nil {
		t.Errorf("forge result = %+v / %+v", next.Items[0], next.Items[1])
	}
	if s.Items[0].Level != 1 {
		t.Error("input item level changed")
	}

	place(next, 1, testRecorder)
	if _, ok := ForgeItems(next, 0, 1); ok {
		t.Error("forging different levels should fail")
	}
}

func TestRollItemNameWeighted(t *testing.T) {
	rng := testRand(11)
	counts := map[string]int{}
	for range 2000 {
		counts[RollItemName(rng)]++
	}
	for _, name := range []string{testRecorder, testSelfDestruct, testEnergyDrink, testDisabled} {
		if counts[name] == 0 {
			t.Errorf("%s never drawn", name)
		}
	}
	if counts[""] != 0 {
		t.Error("empty name drawn from a populated catalog")
	}
}
