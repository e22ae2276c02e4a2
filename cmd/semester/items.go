package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/semester/internal/game"
	"github.com/vovakirdan/semester/internal/platform/tui"
	"github.com/vovakirdan/semester/internal/session"
)

var flagItemsCatalog bool

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List the inventory",
	Long: `List the occupied inventory slots. With --catalog, list every item
that can be found instead.`,
	Args: cobra.NoArgs,
	Run:  runItems,
}

func init() {
	itemsCmd.Flags().BoolVar(&flagItemsCatalog, "catalog", false, "List all known items")
}

func runItems(_ *cobra.Command, _ []string) {
	if flagItemsCatalog {
		printCatalog()
		return
	}

	withSession(func(sess *session.Session) {
		s := sess.State()
		fmt.Println(tui.RenderInventory(s, -1, -1))
		fmt.Println()
		for slot, item := range s.Items {
			if item == nil {
				continue
			}
			active := " "
			if s.IsSelected(slot) {
				active = "*"
			}
			fmt.Printf("%s %2d  %s\n", active, slot, strings.ReplaceAll(tui.RenderItem(s, slot), "\n", "\n        "))
		}
	})
}

func printCatalog() {
	defs := game.ItemDefinitions()
	if len(defs) == 0 {
		fmt.Println("No items registered.")
		return
	}

	maxNameLen := 4 // "Name" header
	for _, d := range defs {
		maxNameLen = max(maxNameLen, len(d.Name))
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "Name", "Rarity", "Weight")
	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "----", "------", "------")
	for _, d := range defs {
		fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, d.Name, strings.Repeat("*", d.Rarity), game.FormatAmount(d.DropWeight))
	}
}

var moveCmd = &cobra.Command{
	Use:   "move <from> <to>",
	Short: "Move an item to an empty slot",
	Args:  cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		from, to := parseSlot(args[0]), parseSlot(args[1])
		withSession(func(sess *session.Session) {
			reason := fmt.Sprintf("cannot move slot %d to %d: source empty or target occupied", from, to)
			act(sess, reason, func() (bool, error) { return sess.Move(from, to) })
			fmt.Printf("Moved slot %d to %d.\n", from, to)
		})
	},
}

var swapCmd = &cobra.Command{
	Use:   "swap <a> <b>",
	Short: "Swap two inventory slots",
	Args:  cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		a, b := parseSlot(args[0]), parseSlot(args[1])
		withSession(func(sess *session.Session) {
			act(sess, fmt.Sprintf("cannot swap slots %d and %d", a, b), func() (bool, error) { return sess.Swap(a, b) })
			fmt.Printf("Swapped slots %d and %d.\n", a, b)
		})
	},
}

var trashCmd = &cobra.Command{
	Use:   "trash <slot>",
	Short: "Destroy the item in a slot",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		slot := parseSlot(args[0])
		withSession(func(sess *session.Session) {
			act(sess, fmt.Sprintf("slot %d is empty", slot), func() (bool, error) { return sess.Trash(slot) })
		})
	},
}

var forgeCmd = &cobra.Command{
	Use:   "forge <into> <from>",
	Short: "Merge two equal items into one of the next level",
	Long: `Merge the item in <from> into the item in <into>. Both must have the
same name and level; the result is one level higher.`,
	Args: cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		a, b := parseSlot(args[0]), parseSlot(args[1])
		withSession(func(sess *session.Session) {
			act(sess, "only two items of the same name and level can be forged", func() (bool, error) { return sess.Forge(a, b) })
		})
	},
}

var buyCmd = &cobra.Command{
	Use:   "buy",
	Short: "Buy a random item",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		withSession(func(sess *session.Session) {
			price := sess.Rules().ItemPrice(sess.State().Block)
			act(sess, fmt.Sprintf("an item costs $%s and needs a free slot", game.FormatAmount(price)), sess.Buy)
		})
	},
}
