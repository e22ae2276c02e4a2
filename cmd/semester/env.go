package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/vovakirdan/semester/internal/config"
	"github.com/vovakirdan/semester/internal/game"
	"github.com/vovakirdan/semester/internal/platform/tui"
	"github.com/vovakirdan/semester/internal/session"
	"github.com/vovakirdan/semester/internal/storage"
)

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadRules loads the rules file and applies the difficulty preset.
func loadRules() config.Rules {
	rules, err := config.LoadRules(viper.GetString("config"))
	if err != nil {
		fail("%v", err)
	}
	config.ApplyPreset(&rules, config.ParsePreset(viper.GetString("difficulty")))
	return rules
}

// openStore opens the save database or exits.
func openStore() *storage.Store {
	store, err := storage.Open(viper.GetString("db"))
	if err != nil {
		fail("cannot open save database: %v", err)
	}
	return store
}

func newLogger() *log.Logger {
	logger := session.NewLogger("semester")
	if viper.GetBool("verbose") {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func sessionConfig(store *storage.Store) session.Config {
	return session.Config{
		Slot:   viper.GetString("slot"),
		Seed:   viper.GetInt64("seed"),
		Rules:  loadRules(),
		Store:  store,
		Logger: newLogger(),
	}
}

// loadSession resumes the run in the configured slot or exits.
func loadSession(store *storage.Store) *session.Session {
	cfg := sessionConfig(store)
	sess, err := session.Load(cfg)
	if errors.Is(err, storage.ErrNoSave) {
		fail("no run in slot %q; start one with 'semester new'", cfg.Slot)
	}
	if err != nil {
		fail("%v", err)
	}
	return sess
}

// withSession runs fn against the current run and closes the store after.
func withSession(fn func(*session.Session)) {
	store := openStore()
	defer store.Close()
	fn(loadSession(store))
}

// parseSlot parses an inventory slot argument.
func parseSlot(arg string) int {
	slot, err := strconv.Atoi(arg)
	if err != nil || slot < 0 || slot >= game.InventorySize {
		fail("invalid slot %q: want 0-%d", arg, game.InventorySize-1)
	}
	return slot
}

// act runs one session action and prints the log entries it produced.
// Refused actions exit with status 1 and reason on stderr.
func act(sess *session.Session, reason string, do func() (bool, error)) {
	before := sess.State()
	ok, err := do()
	if err != nil {
		fail("%v", err)
	}
	if !ok {
		fail("%s", reason)
	}
	printLog(newEntries(before, sess.State()))
}

// newEntries returns the log entries of after that before did not have.
// Rounds replace the log; other actions prepend to it.
func newEntries(before, after *game.State) []game.LogEntry {
	n := len(after.Log) - len(before.Log)
	if n >= 0 && slices.Equal(after.Log[n:], before.Log) {
		return after.Log[:n]
	}
	return after.Log
}

// printLog prints log entries oldest first.
func printLog(entries []game.LogEntry) {
	for i := len(entries) - 1; i >= 0; i-- {
		fmt.Println(tui.Markup(entries[i].Message, entries[i].Color))
	}
}
