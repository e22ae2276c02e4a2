package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/semester/internal/platform/tui"
	"github.com/vovakirdan/semester/internal/session"
	"github.com/vovakirdan/semester/internal/storage"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new run",
	Long: `Start a new run in the save slot. A run already in the slot is
recorded as abandoned in the run history.

Examples:
  semester new
  semester new --seed 42 --difficulty hard
  semester new --slot practice`,
	Args: cobra.NoArgs,
	Run:  runNew,
}

func runNew(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	cfg := sessionConfig(store)
	old, err := session.Load(cfg)
	switch {
	case err == nil:
		if err := old.Abandon(); err != nil {
			fail("cannot abandon the current run: %v", err)
		}
		fmt.Printf("Abandoned run %s in block %d.\n", old.RunID(), old.State().Block)
	case !errors.Is(err, storage.ErrNoSave):
		fail("%v", err)
	}

	sess, err := session.New(cfg)
	if err != nil {
		fail("%v", err)
	}
	fmt.Printf("Run %s started with seed %d.\n\n", sess.RunID(), sess.Seed())
	fmt.Println(tui.RenderStatus(sess.State(), sess.Outcome()))
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Abandon the current run and empty the slot",
	Args:  cobra.NoArgs,
	Run:   runReset,
}

func runReset(_ *cobra.Command, _ []string) {
	withSession(func(sess *session.Session) {
		if err := sess.Abandon(); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Slot %q is empty.\n", sess.Slot())
	})
}
