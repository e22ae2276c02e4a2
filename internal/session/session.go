// Package session owns one running game: the current state, the PCG source
// that drives it and the save slot it is persisted to. Calls are serialised
// so a session shared by several goroutines never resolves two rounds at once.
package session

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/semester/internal/config"
	"github.com/vovakirdan/semester/internal/core"
	"github.com/vovakirdan/semester/internal/game"
	"github.com/vovakirdan/semester/internal/persist"
	"github.com/vovakirdan/semester/internal/storage"
)

// DefaultSlot is the save slot used when none is given.
const DefaultSlot = "default"

// Run outcome recorded for runs that are reset before they end.
const OutcomeAbandoned = "abandoned"

// ErrRunOver is returned by NextBlock once the run has been won or lost.
var ErrRunOver = errors.New("session: run is over")

// Config holds everything needed to start or resume a session.
type Config struct {
	Slot   string
	Seed   int64 // 0 picks a random seed
	Rules  config.Rules
	Store  *storage.Store // optional; without it nothing is saved
	Logger *log.Logger    // optional
}

// Session is a mutex-guarded game in progress.
type Session struct {
	mu       sync.Mutex
	state    *game.State
	rules    config.Rules
	src      *rand.PCG
	rng      *rand.Rand
	seed     int64
	runID    string
	slot     string
	store    *storage.Store
	logger   *log.Logger
	recorded bool
}

// NewLogger returns the logger sessions use when none is configured.
func NewLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.WarnLevel,
	})
}

// newSource seeds a PCG source from a single 64-bit seed.
func newSource(seed int64) *rand.PCG {
	u := uint64(seed)
	return rand.NewPCG(u, u^0x9e3779b97f4a7c15)
}

func (cfg Config) withDefaults() Config {
	if cfg.Slot == "" {
		cfg.Slot = DefaultSlot
	}
	if cfg.Logger == nil {
		cfg.Logger = NewLogger("semester")
	}
	return cfg
}

// New starts a fresh run in cfg.Slot, replacing whatever was saved there.
func New(cfg Config) (*Session, error) {
	cfg = cfg.withDefaults()
	seed, err := core.ResolveSeed(cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	src := newSource(seed)
	rng := rand.New(src)
	s := &Session{
		state:  game.NewGame(rng, cfg.Rules),
		rules:  cfg.Rules,
		src:    src,
		rng:    rng,
		seed:   seed,
		runID:  uuid.NewString(),
		slot:   cfg.Slot,
		store:  cfg.Store,
		logger: cfg.Logger,
	}
	s.logger.Info("run started", "slot", s.slot, "run", s.runID, "seed", seed)

	if err := s.Save(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load resumes the run saved in cfg.Slot. cfg.Seed is ignored; the saved
// seed and generator state are restored instead.
func Load(cfg Config) (*Session, error) {
	cfg = cfg.withDefaults()
	if cfg.Store == nil {
		return nil, storage.ErrNoSave
	}

	rec, err := cfg.Store.LoadGame(cfg.Slot)
	if err != nil {
		return nil, err
	}
	state, err := persist.Unmarshal(rec.State, cfg.Rules)
	if err != nil {
		return nil, fmt.Errorf("session: slot %s: %w", cfg.Slot, err)
	}

	src := newSource(rec.Seed)
	if err := src.UnmarshalBinary(rec.RNG); err != nil {
		return nil, fmt.Errorf("session: slot %s: cannot restore generator: %w", cfg.Slot, err)
	}

	s := &Session{
		state:  state,
		rules:  cfg.Rules,
		src:    src,
		rng:    rand.New(src),
		seed:   rec.Seed,
		runID:  rec.RunID,
		slot:   cfg.Slot,
		store:  cfg.Store,
		logger: cfg.Logger,
	}
	s.recorded = s.outcome() != game.OutcomeOngoing
	s.logger.Debug("run loaded", "slot", s.slot, "run", s.runID, "block", state.Block)
	return s, nil
}

// Open resumes the run in cfg.Slot, or starts a new one if the slot is empty.
func Open(cfg Config) (*Session, error) {
	s, err := Load(cfg)
	if errors.Is(err, storage.ErrNoSave) {
		return New(cfg)
	}
	return s, err
}

// State returns the current state. Transforms never modify a state in
// place, so the returned value stays valid but must not be modified.
func (s *Session) State() *game.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Rules returns the rules the session was started with.
func (s *Session) Rules() config.Rules { return s.rules }

// Slot returns the save slot name.
func (s *Session) Slot() string { return s.slot }

// RunID returns the unique id of the current run.
func (s *Session) RunID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runID
}

// Seed returns the seed the run was started from.
func (s *Session) Seed() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seed
}

// Phase reports which action the run is waiting for.
func (s *Session) Phase() game.Phase {
	return game.CurrentPhase(s.State())
}

// Outcome reports whether the run is lost, won or still going.
func (s *Session) Outcome() game.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome()
}

func (s *Session) outcome() game.Outcome {
	return game.RunOutcome(s.state, s.rules)
}

// Attend resolves the pending lecture by attending it.
func (s *Session) Attend() (bool, error) {
	return s.round(game.ActionAttend)
}

// Skip resolves the pending lecture by skipping it.
func (s *Session) Skip() (bool, error) {
	return s.round(game.ActionSkip)
}

func (s *Session) round(action game.Action) (bool, error) {
	return s.apply("round", func(st *game.State) (*game.State, bool) {
		next := game.StartRound(st, action, s.rng)
		return next, next != st
	}, "action", action)
}

// Toggle selects or deselects the item in slot for the next round.
func (s *Session) Toggle(slot int) (bool, error) {
	return s.apply("toggle", func(st *game.State) (*game.State, bool) {
		return game.ToggleItem(st, slot)
	}, "slot", slot)
}

// Exams attends the exams of the current block.
func (s *Session) Exams() (bool, error) {
	return s.apply("exams", func(st *game.State) (*game.State, bool) {
		if st.NextLecture != nil {
			return st, false
		}
		next := game.AttendExams(st, s.rng)
		return next, next != st
	})
}

// ForceExams attends the exams even if lectures are left; those lectures
// are forfeited.
func (s *Session) ForceExams() (bool, error) {
	return s.apply("exams", func(st *game.State) (*game.State, bool) {
		next := game.AttendExams(st, s.rng)
		return next, next != st
	}, "forced", true)
}

// NextBlock starts the next block. Returns ErrRunOver once the run ended.
func (s *Session) NextBlock() (bool, error) {
	if s.Outcome() != game.OutcomeOngoing {
		return false, ErrRunOver
	}
	return s.apply("next block", func(st *game.State) (*game.State, bool) {
		next := game.StartNewBlock(st, s.rng, s.rules)
		return next, next != st
	})
}

// Move moves the item in from to the empty slot to.
func (s *Session) Move(from, to int) (bool, error) {
	return s.apply("move", func(st *game.State) (*game.State, bool) {
		return game.MoveItem(st, from, to)
	}, "from", from, "to", to)
}

// Swap exchanges two inventory slots.
func (s *Session) Swap(a, b int) (bool, error) {
	return s.apply("swap", func(st *game.State) (*game.State, bool) {
		return game.SwapItems(st, a, b)
	}, "a", a, "b", b)
}

// Trash destroys the item in slot.
func (s *Session) Trash(slot int) (bool, error) {
	return s.apply("trash", func(st *game.State) (*game.State, bool) {
		return game.TrashItem(st, slot)
	}, "slot", slot)
}

// Quest fulfils the quest with the given id.
func (s *Session) Quest(id string) (bool, error) {
	return s.apply("quest", func(st *game.State) (*game.State, bool) {
		return game.FulfillQuest(st, id)
	}, "quest", id)
}

// Buy buys a random item from the shop.
func (s *Session) Buy() (bool, error) {
	return s.apply("buy", func(st *game.State) (*game.State, bool) {
		return game.BuyItem(st, s.rng, s.rules)
	})
}

// Forge merges the item in b into the item in a.
func (s *Session) Forge(a, b int) (bool, error) {
	return s.apply("forge", func(st *game.State) (*game.State, bool) {
		return game.ForgeItems(st, a, b)
	}, "a", a, "b", b)
}

// apply runs one transform under the lock. Accepted transforms are saved
// and, when they end the run, recorded in the run history.
func (s *Session) apply(op string, f func(*game.State) (*game.State, bool), keyvals ...any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := f(s.state)
	if !ok {
		s.logger.Debug(op+" refused", keyvals...)
		return false, nil
	}
	s.state = next
	s.logger.Debug(op, append(keyvals, "block", next.Block, "lecturesLeft", next.LecturesLeft)...)

	if err := s.save(); err != nil {
		return true, err
	}
	if err := s.recordEnd(); err != nil {
		return true, err
	}
	return true, nil
}

// Save writes the state and generator to the session's slot.
func (s *Session) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

func (s *Session) save() error {
	if s.store == nil {
		return nil
	}
	data, err := persist.Marshal(s.state)
	if err != nil {
		return err
	}
	rng, err := s.src.MarshalBinary()
	if err != nil {
		return fmt.Errorf("session: cannot encode generator: %w", err)
	}
	err = s.store.SaveGame(storage.SaveRecord{
		Slot:  s.slot,
		RunID: s.runID,
		Seed:  s.seed,
		Block: s.state.Block,
		Score: s.state.Score,
		State: data,
		RNG:   rng,
	})
	if err != nil {
		s.logger.Error("save failed", "slot", s.slot, "error", err)
	}
	return err
}

// recordEnd adds the run to the history once it has been won or lost.
func (s *Session) recordEnd() error {
	outcome := s.outcome()
	if outcome == game.OutcomeOngoing || s.recorded {
		return nil
	}
	s.recorded = true
	s.logger.Info("run ended", "run", s.runID, "outcome", outcome, "block", s.state.Block, "score", s.state.Score)
	return s.record(string(outcome))
}

func (s *Session) record(outcome string) error {
	if s.store == nil {
		return nil
	}
	_, err := s.store.RecordRun(storage.RunRecord{
		RunID:   s.runID,
		Slot:    s.slot,
		Seed:    s.seed,
		Block:   s.state.Block,
		Score:   s.state.Score,
		Outcome: outcome,
	})
	return err
}

// Abandon records an unfinished run as abandoned and empties the slot.
// Finished runs are already recorded and only have their save removed.
func (s *Session) Abandon() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.recorded {
		s.recorded = true
		if err := s.record(OutcomeAbandoned); err != nil {
			return err
		}
		s.logger.Info("run abandoned", "run", s.runID, "block", s.state.Block)
	}
	if s.store == nil {
		return nil
	}
	return s.store.DeleteGame(s.slot)
}
