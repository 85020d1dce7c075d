package achievements

import (
	"context"
	"log/slog"

	"github.com/modernzork/adventure-engine/pkg/adventure"
	"github.com/modernzork/adventure-engine/pkg/conditions"
)

// RecordStore is the minimal persistence surface the achievement engine
// needs. pkg/storage.Storage satisfies it.
type RecordStore interface {
	SavePlayerRecord(ctx context.Context, record *PlayerRecord) error
}

// Unlocked describes one unlock event, for notifications.
type Unlocked struct {
	AdventureID string // Empty for engine-wide achievements
	ID          string
	Title       string
	Description string
	Icon        string
	Secret      bool
}

// Engine tracks stats and evaluates achievement triggers across the two
// achievement domains: engine-wide (stat counters) and per-adventure
// (conditions over live game state). Unlocks are monotonic; duplicate
// triggers are no-ops and fire no notification.
type Engine struct {
	record *PlayerRecord
	store  RecordStore
	logger *slog.Logger
	notify func(Unlocked)
}

// NewEngine creates an achievement engine around a player record. store
// and notify may be nil (no persistence, no notifications). A nil record
// starts fresh, which is also the corrupt-data fallback.
func NewEngine(record *PlayerRecord, store RecordStore, logger *slog.Logger, notify func(Unlocked)) *Engine {
	if record == nil {
		record = NewPlayerRecord()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{record: record, store: store, logger: logger, notify: notify}
}

// Record exposes the live player record, for display and persistence.
func (e *Engine) Record() *PlayerRecord {
	return e.record
}

// IncrementStat bumps a named counter, persists the record and
// re-evaluates every engine achievement that is not yet unlocked.
// Returns the achievements unlocked by this change.
func (e *Engine) IncrementStat(ctx context.Context, name string, amount int) []Unlocked {
	if !e.record.Stats.Add(name, amount) {
		e.logger.Warn("ignoring unknown or invalid stat increment", "stat", name, "amount", amount)
		return nil
	}
	unlocked := e.checkEngine()
	e.persist(ctx)
	return unlocked
}

func (e *Engine) checkEngine() []Unlocked {
	var out []Unlocked
	for _, ach := range EngineAchievements {
		if e.record.EngineUnlocked(ach.ID) {
			continue
		}
		if !ach.Trigger.Met(&e.record.Stats) {
			continue
		}
		if !e.record.unlockEngine(ach.ID) {
			continue
		}
		ev := Unlocked{
			ID:          ach.ID,
			Title:       ach.Title,
			Description: ach.Description,
			Icon:        ach.Icon,
			Secret:      ach.Secret,
		}
		out = append(out, ev)
		e.fire(ev)
	}
	return out
}

// CheckAdventure re-evaluates one adventure's achievement list against
// the live game state and unlocks any whose trigger now holds. Persists
// when something changed.
func (e *Engine) CheckAdventure(ctx context.Context, adv *adventure.Adventure, gv conditions.GameView) []Unlocked {
	if adv == nil {
		return nil
	}
	var out []Unlocked
	for _, ach := range adv.Achievements {
		if e.record.AdventureUnlocked(adv.ID, ach.ID) {
			continue
		}
		if ach.Trigger == nil || !conditions.Evaluate(ach.Trigger, gv) {
			continue
		}
		if !e.record.unlockAdventure(adv.ID, ach.ID) {
			continue
		}
		ev := Unlocked{
			AdventureID: adv.ID,
			ID:          ach.ID,
			Title:       ach.Title,
			Description: ach.Description,
			Icon:        ach.Icon,
			Secret:      ach.Secret,
		}
		out = append(out, ev)
		e.fire(ev)
	}
	if len(out) > 0 {
		e.persist(ctx)
	}
	return out
}

func (e *Engine) fire(ev Unlocked) {
	if e.notify != nil {
		e.notify(ev)
	}
}

// persist writes the record through the store. Persistence failures are
// logged and swallowed: they must never break gameplay.
func (e *Engine) persist(ctx context.Context) {
	if e.store == nil {
		return
	}
	if err := e.store.SavePlayerRecord(ctx, e.record); err != nil {
		e.logger.Error("failed to persist player record", "error", err)
	}
}

// Status is one row of an achievement listing. For secret achievements
// that are still locked, Title, Description and Icon are masked so the
// rendering layer cannot leak them.
type Status struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	Secret      bool   `json:"secret,omitempty"`
	Unlocked    bool   `json:"unlocked"`
}

const maskedField = "???"

// EngineStatuses lists all engine achievements with unlock state.
func (e *Engine) EngineStatuses() []Status {
	out := make([]Status, 0, len(EngineAchievements))
	for _, ach := range EngineAchievements {
		out = append(out, status(ach.ID, ach.Title, ach.Description, ach.Icon, ach.Secret, e.record.EngineUnlocked(ach.ID)))
	}
	return out
}

// AdventureStatuses lists one adventure's achievements with unlock state.
func (e *Engine) AdventureStatuses(adv *adventure.Adventure) []Status {
	if adv == nil {
		return nil
	}
	out := make([]Status, 0, len(adv.Achievements))
	for _, ach := range adv.Achievements {
		out = append(out, status(ach.ID, ach.Title, ach.Description, ach.Icon, ach.Secret, e.record.AdventureUnlocked(adv.ID, ach.ID)))
	}
	return out
}

func status(id, title, description, icon string, secret, unlocked bool) Status {
	st := Status{ID: id, Title: title, Description: description, Icon: icon, Secret: secret, Unlocked: unlocked}
	if secret && !unlocked {
		st.Title = maskedField
		st.Description = maskedField
		st.Icon = ""
	}
	return st
}
