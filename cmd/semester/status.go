package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/semester/internal/persist"
	"github.com/vovakirdan/semester/internal/platform/tui"
	"github.com/vovakirdan/semester/internal/session"
)

var flagStatusYAML bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current run",
	Long: `Show the courses, the pending lecture and the latest log of the run.

Examples:
  semester status
  semester status --yaml > save.yaml`,
	Args: cobra.NoArgs,
	Run:  runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&flagStatusYAML, "yaml", false, "Print the raw save instead")
}

func runStatus(_ *cobra.Command, _ []string) {
	withSession(func(sess *session.Session) {
		if flagStatusYAML {
			data, err := persist.Marshal(sess.State())
			if err != nil {
				fail("%v", err)
			}
			os.Stdout.Write(data)
			return
		}
		fmt.Println(tui.RenderStatus(sess.State(), sess.Outcome()))
	})
}
