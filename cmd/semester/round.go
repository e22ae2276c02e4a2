package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/semester/internal/game"
	"github.com/vovakirdan/semester/internal/session"
)

var attendCmd = &cobra.Command{
	Use:   "attend",
	Short: "Attend the pending lecture",
	Long: `Attend the pending lecture. Costs its energy and succeeds with its
understand chance. Activated items run before and after the lecture.`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		withSession(func(sess *session.Session) {
			act(sess, roundRefusal(sess.State()), sess.Attend)
		})
	},
}

var skipCmd = &cobra.Command{
	Use:   "skip",
	Short: "Skip the pending lecture",
	Long: `Skip the pending lecture. Recovers energy (half as much below 50%)
and adds the lecture's procrastination.`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		withSession(func(sess *session.Session) {
			act(sess, roundRefusal(sess.State()), sess.Skip)
		})
	},
}

func roundRefusal(s *game.State) string {
	if s.NextLecture == nil {
		return "no lecture is pending; attend the exams with 'semester exams'"
	}
	return fmt.Sprintf("not enough energy: %s needed, %s left",
		game.FormatAmount(s.NextLecture.EnergyCost), game.FormatAmount(s.Energy))
}

var selectCmd = &cobra.Command{
	Use:   "select <slot>...",
	Short: "Activate or deactivate items for the next round",
	Long: `Toggle the activation of the items in the given inventory slots.
Activated items take part in the next round and are deactivated after it.

Examples:
  semester select 0
  semester select 0 4 7`,
	Args: cobra.MinimumNArgs(1),
	Run:  runSelect,
}

func runSelect(_ *cobra.Command, args []string) {
	withSession(func(sess *session.Session) {
		for _, arg := range args {
			slot := parseSlot(arg)
			ok, err := sess.Toggle(slot)
			if err != nil {
				fail("%v", err)
			}
			if !ok {
				fail("cannot toggle slot %d: empty, unavailable or %d items already active", slot, sess.State().MaxActivatedItems)
			}
		}
		s := sess.State()
		fmt.Printf("Active slots: %v (%d/%d)\n", s.SelectedItemSlots, len(s.SelectedItemSlots), s.MaxActivatedItems)
	})
}

var flagExamsForce bool

var examsCmd = &cobra.Command{
	Use:   "exams",
	Short: "Attend the exams of the block",
	Long: `Attend the exams. Each course passes with a chance of
understandings/goal. Open quests expire.

With --force the exams are taken even while lectures are left; the
remaining lectures are forfeited.`,
	Args: cobra.NoArgs,
	Run:  runExams,
}

func init() {
	examsCmd.Flags().BoolVar(&flagExamsForce, "force", false, "Take the exams before the lectures run out")
}

func runExams(_ *cobra.Command, _ []string) {
	withSession(func(sess *session.Session) {
		exams := sess.Exams
		if flagExamsForce {
			exams = sess.ForceExams
		}
		reason := "lectures are still pending (use --force to skip them)"
		if sess.State().ExamsAttended {
			reason = "the exams of this block are over; start the next block with 'semester next'"
		}
		act(sess, reason, exams)

		switch sess.Outcome() {
		case game.OutcomeLost:
			fmt.Printf("\nThe run is lost in block %d with a score of %s.\n", sess.State().Block, game.FormatAmount(sess.State().Score))
		case game.OutcomeWon:
			fmt.Printf("\nThe run is won with a score of %s!\n", game.FormatAmount(sess.State().Score))
		}
	})
}

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Start the next block",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		withSession(func(sess *session.Session) {
			if sess.Outcome() != game.OutcomeOngoing {
				fail("the run is over (%s); start a new one with 'semester new'", sess.Outcome())
			}
			act(sess, "attend the exams first", sess.NextBlock)
		})
	},
}
