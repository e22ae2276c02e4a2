package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/semester/internal/platform/tui"
	"github.com/vovakirdan/semester/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively",
	Long: `Open the interactive play screen for the run in the slot. A new run
is started if the slot is empty. Progress is saved after every action.

Controls:
  a / s        - Attend / skip the lecture
  arrows/hjkl  - Move the cursor
  enter        - Activate item / fulfil quest
  tab          - Switch between items and quests
  m            - Mark an item, then m again to move or swap it
  f            - Forge the marked item into the one under the cursor
  x / b        - Trash item / buy item
  e / n        - Exams / next block
  r            - Run history
  ?            - All keys
  q / Ctrl+C   - Quit

Examples:
  semester play
  semester play --slot practice --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore()
	defer store.Close()

	sess, err := session.Open(sessionConfig(store))
	if err != nil {
		fail("%v", err)
	}

	if err := tui.Run(sess, store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
