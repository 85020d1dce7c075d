// Package session ties one playthrough together: the game state, the
// world, the player achievement record and the persistence collaborator,
// passed explicitly instead of living in globals. One session drives one
// player; there is no shared mutable state across sessions.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/modernzork/adventure-engine/pkg/achievements"
	"github.com/modernzork/adventure-engine/pkg/adventure"
	"github.com/modernzork/adventure-engine/pkg/conditions"
	"github.com/modernzork/adventure-engine/pkg/engine"
	"github.com/modernzork/adventure-engine/pkg/journal"
	"github.com/modernzork/adventure-engine/pkg/state"
	"github.com/modernzork/adventure-engine/pkg/storage"
)

// EndMode decides what happens after victory or game over fires.
type EndMode string

const (
	// EndModeHalt rejects further commands once the game has ended.
	EndModeHalt EndMode = "halt"
	// EndModeContinue keeps the session interactive after the end text.
	EndModeContinue EndMode = "continue"
)

// WorldFactory builds a pristine copy of an adventure. The session calls
// it on start and reset, because handlers mutate the world mid-game.
type WorldFactory func() *adventure.Adventure

// Config carries the session collaborators. Store may be nil (nothing is
// persisted); Logger defaults to slog.Default.
type Config struct {
	Store   storage.Storage
	Logger  *slog.Logger
	EndMode EndMode
	Notify  func(achievements.Unlocked)
}

// TurnResult is everything one command produced: the command outcome,
// achievement unlocks, journal entries written by plot events, and the
// end-of-game transition if it fired this turn.
type TurnResult struct {
	Result         state.CommandResult
	Unlocked       []achievements.Unlocked
	JournalEntries []journal.Entry
	GameEnded      bool   // The end condition fired this turn
	Victory        bool   // It was the victory condition
	EndText        string // Victory or game-over text
	QuitRequested  bool   // UI should confirm, then Reset or exit
}

// Session is a single playthrough of one adventure.
type Session struct {
	World   *adventure.Adventure
	State   *state.GameState
	Ach     *achievements.Engine
	Journal *journal.Journal

	factory WorldFactory
	store   storage.Storage
	logger  *slog.Logger
	endMode EndMode
}

// New creates a session, loading the player record and journal from
// storage (falling back to fresh defaults on missing or corrupt data),
// and starts the first playthrough.
func New(ctx context.Context, factory WorldFactory, cfg Config) (*Session, error) {
	if factory == nil {
		return nil, fmt.Errorf("session requires a world factory")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	endMode := cfg.EndMode
	if endMode == "" {
		endMode = EndModeHalt
	}

	world := factory()
	if world == nil {
		return nil, fmt.Errorf("world factory returned nil")
	}
	if err := world.Validate(); err != nil {
		return nil, fmt.Errorf("refusing to start invalid adventure: %w", err)
	}

	record := loadRecord(ctx, cfg.Store, logger)
	jnl := loadJournal(ctx, cfg.Store, logger)

	s := &Session{
		World:   world,
		Ach:     achievements.NewEngine(record, cfg.Store, logger, cfg.Notify),
		Journal: jnl,
		factory: factory,
		store:   cfg.Store,
		logger:  logger,
		endMode: endMode,
	}
	s.start(ctx)
	return s, nil
}

// start begins a fresh playthrough on the current world.
func (s *Session) start(ctx context.Context) {
	s.State = state.NewGameState(s.World.ID, s.World.InitialLocation)
	s.Ach.IncrementStat(ctx, achievements.StatAdventuresStarted, 1)
	s.Ach.IncrementStat(ctx, achievements.StatRoomsVisited, 1)
}

// Reset discards the playthrough and starts over on a pristine world.
// Callers gate this behind confirmation; the engine itself never resets.
func (s *Session) Reset(ctx context.Context) error {
	world := s.factory()
	if world == nil {
		return fmt.Errorf("world factory returned nil")
	}
	s.World = world
	s.start(ctx)
	return nil
}

// HandleCommand fully resolves one player command: parse, resolve,
// bookkeeping, plot events, end conditions, achievements. Synchronous
// and single-threaded; the state is mutated before this returns.
func (s *Session) HandleCommand(ctx context.Context, raw string) *TurnResult {
	tr := &TurnResult{}

	if strings.TrimSpace(raw) == "" {
		tr.Result = state.Fail("Say something.")
		return tr
	}

	if s.State.GameEnded && s.endMode == EndModeHalt {
		tr.Result = state.Fail("The adventure has ended. Start a new game to keep playing.")
		return tr
	}

	wasVisited := make(map[string]bool, len(s.State.VisitedLocations))
	for _, id := range s.State.VisitedLocations {
		wasVisited[id] = true
	}

	tr.Result = engine.Handle(raw, s.State, s.World)
	s.State.MoveCount++
	tr.Unlocked = append(tr.Unlocked, s.Ach.IncrementStat(ctx, achievements.StatCommandsEntered, 1)...)

	if tr.Result.Quit {
		tr.QuitRequested = true
		return tr
	}

	if tr.Result.Success && tr.Result.LocationChanged {
		loc := s.State.CurrentLocation
		s.State.Visit(loc)
		if !wasVisited[loc] {
			tr.Unlocked = append(tr.Unlocked, s.Ach.IncrementStat(ctx, achievements.StatRoomsVisited, 1)...)
		}
	}

	if tr.Result.ItemID != "" {
		tr.Unlocked = append(tr.Unlocked, s.Ach.IncrementStat(ctx, achievements.StatItemsTaken, 1)...)
	}

	tr.JournalEntries = s.firePlotEvents(ctx)
	s.checkEndConditions(ctx, tr)
	tr.Unlocked = append(tr.Unlocked, s.Ach.CheckAdventure(ctx, s.World, s.State)...)

	return tr
}

// firePlotEvents writes automatic journal entries for plot events whose
// condition first holds this turn. Events fire once per playthrough.
func (s *Session) firePlotEvents(ctx context.Context) []journal.Entry {
	var entries []journal.Entry
	for _, ev := range s.World.PlotEvents {
		if ev.ID == "" || s.State.TriggeredEvents[ev.ID] {
			continue
		}
		if !conditions.Evaluate(ev.Condition, s.State) {
			continue
		}
		s.State.TriggeredEvents[ev.ID] = true
		if ev.JournalEntry != "" {
			entries = append(entries, s.Journal.AddAutoEntry(s.World.ID, s.State.CurrentLocation, ev.JournalEntry))
		}
	}
	if len(entries) > 0 {
		s.persistJournal(ctx)
	}
	return entries
}

// checkEndConditions evaluates victory then game over, once. Whether the
// session keeps accepting commands afterwards is the EndMode choice.
func (s *Session) checkEndConditions(ctx context.Context, tr *TurnResult) {
	if s.State.GameEnded {
		return
	}

	if s.World.VictoryCondition != nil && conditions.Evaluate(s.World.VictoryCondition, s.State) {
		s.State.GameEnded = true
		tr.GameEnded = true
		tr.Victory = true
		tr.EndText = s.World.VictoryText
		tr.Unlocked = append(tr.Unlocked, s.Ach.IncrementStat(ctx, achievements.StatAdventuresCompleted, 1)...)
		return
	}

	if s.World.GameOverCondition != nil && conditions.Evaluate(s.World.GameOverCondition, s.State) {
		s.State.GameEnded = true
		tr.GameEnded = true
		tr.EndText = s.World.GameOverText
	}
}

// Suggest proposes autocomplete completions for a partial command.
func (s *Session) Suggest(partial string) []string {
	return engine.Suggest(partial, s.State, s.World)
}

// RecordAutoComplete counts an accepted autocomplete suggestion.
func (s *Session) RecordAutoComplete(ctx context.Context) []achievements.Unlocked {
	return s.Ach.IncrementStat(ctx, achievements.StatAutoCompleteUsed, 1)
}

// AddJournalEntry writes a player journal entry and persists it.
func (s *Session) AddJournalEntry(ctx context.Context, text string) journal.Entry {
	e := s.Journal.AddPlayerEntry(s.World.ID, s.State.CurrentLocation, text)
	s.persistJournal(ctx)
	return e
}

// DescribeLocation renders the current location: name, description,
// visible items and visible exits. Malformed state degrades to a stock
// line instead of failing.
func (s *Session) DescribeLocation() string {
	loc := s.World.GetLocation(s.State.CurrentLocation)
	if loc == nil {
		return "You are in an unknown location."
	}

	var b strings.Builder
	b.WriteString(loc.Name)
	b.WriteString("\n\n")
	b.WriteString(loc.Description)

	var itemNames []string
	for _, id := range loc.Items {
		item := s.World.GetItem(id)
		if item == nil || !s.World.ItemVisible(item, s.State) {
			continue
		}
		itemNames = append(itemNames, item.Name)
	}
	if len(itemNames) > 0 {
		b.WriteString("\n\nYou see: ")
		b.WriteString(strings.Join(itemNames, ", "))
	}

	var exits []string
	for _, dir := range []string{"north", "south", "east", "west", "up", "down"} {
		exit, ok := loc.Exits[dir]
		if !ok || exit == nil {
			continue
		}
		if exit.Hidden && !conditions.Evaluate(exit.Condition, s.State) {
			continue
		}
		exits = append(exits, dir)
	}
	if len(exits) > 0 {
		b.WriteString("\n\nExits: ")
		b.WriteString(strings.Join(exits, ", "))
	}

	return b.String()
}

// Save snapshots the playthrough under the given name.
func (s *Session) Save(ctx context.Context, name string) (*state.SaveGame, error) {
	if s.store == nil {
		return nil, fmt.Errorf("no storage configured")
	}
	locName := s.State.CurrentLocation
	if loc := s.World.GetLocation(s.State.CurrentLocation); loc != nil {
		locName = loc.Name
	}
	if name == "" {
		name = fmt.Sprintf("%s - %s", s.World.Title, locName)
	}
	save := &state.SaveGame{
		ID:           uuid.New(),
		AdventureID:  s.World.ID,
		Name:         name,
		LocationName: locName,
		CreatedAt:    time.Now(),
		State:        s.State,
	}
	if err := s.store.SaveGame(ctx, save); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}
	return save, nil
}

// Load restores a snapshot onto a pristine world. Items the player is
// carrying are removed from their original locations so they are not
// duplicated.
func (s *Session) Load(ctx context.Context, id uuid.UUID) error {
	if s.store == nil {
		return fmt.Errorf("no storage configured")
	}
	save, err := s.store.LoadGame(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load game: %w", err)
	}
	if save == nil || save.State == nil {
		return fmt.Errorf("save %s not found", id)
	}
	if save.AdventureID != s.World.ID {
		return fmt.Errorf("save %s belongs to adventure %q, not %q", id, save.AdventureID, s.World.ID)
	}

	world := s.factory()
	if world == nil {
		return fmt.Errorf("world factory returned nil")
	}
	for _, itemID := range save.State.Inventory {
		for _, loc := range world.Locations {
			loc.RemoveLocationItem(itemID)
		}
	}

	s.World = world
	s.State = save.State
	return nil
}

func loadRecord(ctx context.Context, store storage.Storage, logger *slog.Logger) *achievements.PlayerRecord {
	if store == nil {
		return achievements.NewPlayerRecord()
	}
	record, err := store.LoadPlayerRecord(ctx)
	if err != nil {
		logger.Warn("failed to load player record, starting fresh", "error", err)
		return achievements.NewPlayerRecord()
	}
	if record == nil {
		return achievements.NewPlayerRecord()
	}
	return record
}

func loadJournal(ctx context.Context, store storage.Storage, logger *slog.Logger) *journal.Journal {
	if store == nil {
		return journal.New()
	}
	jnl, err := store.LoadJournal(ctx)
	if err != nil {
		logger.Warn("failed to load journal, starting empty", "error", err)
		return journal.New()
	}
	if jnl == nil {
		return journal.New()
	}
	return jnl
}

func (s *Session) persistJournal(ctx context.Context) {
	if s.store == nil {
		return
	}
	if err := s.store.SaveJournal(ctx, s.Journal); err != nil {
		s.logger.Error("failed to persist journal", "error", err)
	}
}
