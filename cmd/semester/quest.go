package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/semester/internal/game"
	"github.com/vovakirdan/semester/internal/platform/tui"
	"github.com/vovakirdan/semester/internal/session"
)

var questCmd = &cobra.Command{
	Use:   "quest [id]",
	Short: "List open quests or fulfil one",
	Long: `Without an id, list the open quests of the block. With an id, pay the
quest's costs and collect its rewards.

Examples:
  semester quest
  semester quest b1-q3`,
	Args: cobra.MaximumNArgs(1),
	Run:  runQuest,
}

func runQuest(_ *cobra.Command, args []string) {
	withSession(func(sess *session.Session) {
		if len(args) == 0 {
			listQuests(sess.State())
			return
		}

		s := sess.State()
		id := args[0]
		reason := fmt.Sprintf("no open quest %q", id)
		if i := game.QuestIndex(s, id); i >= 0 {
			reason = "cannot afford " + id
		}
		act(sess, reason, func() (bool, error) { return sess.Quest(id) })
	})
}

func listQuests(s *game.State) {
	if len(s.Quests) == 0 {
		fmt.Println("No open quests.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, q := range s.Quests {
		maxIDLen = max(maxIDLen, len(q.ID))
	}
	for _, q := range s.Quests {
		mark := " "
		if s.CanAfford(q.Costs) {
			mark = "+"
		}
		line := fmt.Sprintf("%s -> %s", labels(s, q.Costs), labels(s, q.Rewards))
		fmt.Printf("%s %-*s  %s\n", mark, maxIDLen, q.ID, tui.Markup(line, q.Color))
	}
	fmt.Println()
	fmt.Println("Run 'semester quest <id>' to fulfil a quest marked with +.")
}

func labels(s *game.State, cs []game.Currency) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.Label(s)
	}
	return strings.Join(parts, " + ")
}
