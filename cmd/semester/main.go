// semester is a lecture roguelite: attend or skip lectures, juggle energy
// and procrastination, and pass the exams at the end of every block.
//
// Usage:
//
//	semester new             - Start a new run (abandons the current one)
//	semester status          - Show the current run
//	semester attend | skip   - Resolve the pending lecture
//	semester select <slot>   - Activate or deactivate items for the next round
//	semester exams           - Attend the block's exams
//	semester next            - Start the next block
//	semester play            - Play interactively in the terminal
//	semester serve           - Start SSH server for remote play
//	semester runs            - Show finished runs
//
// Global flags (also read from SEMESTER_* environment variables):
//
//	--db <path>          - Database path (default: ~/.semester/semester.db)
//	--slot <name>        - Save slot (default: default)
//	--seed <value>       - RNG seed for new runs (0 = random)
//	--config <path>      - Rules YAML
//	--difficulty <name>  - easy, normal or hard
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	// Import content to register items and effects
	_ "github.com/vovakirdan/semester/internal/effects"
	_ "github.com/vovakirdan/semester/internal/items"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "semester",
	Short: "Semester - a lecture roguelite for your terminal",
	Long: `Semester is a roguelite about surviving university blocks.

Every round a lecture is offered: attend it to gain understanding at the
cost of energy, or skip it to recover energy and pile up procrastination.
Items activated before a round change how it plays out. When the block's
lectures run out, the exams decide whether the run goes on.

Examples:
  semester new --seed 42
  semester status
  semester select 0 1
  semester attend
  semester play
  SEMESTER_SLOT=alt semester play
  semester serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initEnv)

	// Global persistent flags
	flags := rootCmd.PersistentFlags()
	flags.String("db", "~/.semester/semester.db", "Path to save database")
	flags.String("slot", "default", "Save slot")
	flags.Int64("seed", 0, "RNG seed for new runs (0 = random)")
	flags.String("config", "", "Path to custom rules YAML")
	flags.String("difficulty", "", "Difficulty preset: easy, normal, hard")
	flags.BoolP("verbose", "v", false, "Log engine activity to stderr")

	for _, name := range []string{"db", "slot", "seed", "config", "difficulty", "verbose"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	// Add subcommands
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(attendCmd)
	rootCmd.AddCommand(skipCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(examsCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(swapCmd)
	rootCmd.AddCommand(trashCmd)
	rootCmd.AddCommand(forgeCmd)
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(questCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(resetCmd)
}

// initEnv lets SEMESTER_DB, SEMESTER_SLOT, ... override flag defaults.
func initEnv() {
	viper.SetEnvPrefix("semester")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
