package adventure

import (
	"github.com/modernzork/adventure-engine/pkg/conditions"
	"github.com/modernzork/adventure-engine/pkg/state"
)

// HandlerFunc is a command override scoped to a location or an item. It
// receives the command arguments, the live game state and the world, and
// has full control over the returned result. Overrides may mutate both
// game state and world content (the world model is mutable by design;
// all mutations flow through command resolution).
type HandlerFunc func(args []string, gs *state.GameState, adv *Adventure) state.CommandResult

// Adventure is the declarative world model for one game: locations,
// items, achievements and end conditions. Supplied by built-in Go
// packages or data files, validated at load time.
type Adventure struct {
	ID              string `json:"id" yaml:"id"`
	Title           string `json:"title" yaml:"title"`
	Author          string `json:"author" yaml:"author"`
	Version         string `json:"version,omitempty" yaml:"version,omitempty"`
	Description     string `json:"description,omitempty" yaml:"description,omitempty"`
	InitialLocation string `json:"initial_location" yaml:"initial_location"`
	IntroText       string `json:"intro_text" yaml:"intro_text"`

	Locations map[string]*Location `json:"locations" yaml:"locations"`
	Items     map[string]*Item     `json:"items,omitempty" yaml:"items,omitempty"`

	Achievements []Achievement `json:"achievements,omitempty" yaml:"achievements,omitempty"`
	PlotEvents   []PlotEvent   `json:"plot_events,omitempty" yaml:"plot_events,omitempty"`

	VictoryCondition  *conditions.When `json:"victory_condition,omitempty" yaml:"victory_condition,omitempty"`
	VictoryText       string           `json:"victory_text,omitempty" yaml:"victory_text,omitempty"`
	GameOverCondition *conditions.When `json:"game_over_condition,omitempty" yaml:"game_over_condition,omitempty"`
	GameOverText      string           `json:"game_over_text,omitempty" yaml:"game_over_text,omitempty"`
}

// Location is a place in the game world with exits, items and optional
// verb overrides.
type Location struct {
	Name        string                 `json:"name" yaml:"name"`
	Description string                 `json:"description" yaml:"description"`
	Exits       map[string]*Exit       `json:"exits,omitempty" yaml:"exits,omitempty"` // Direction → Exit
	Items       []string               `json:"items,omitempty" yaml:"items,omitempty"` // Item IDs present here
	Commands    map[string]HandlerFunc `json:"-" yaml:"-"`                             // Verb overrides, Go-authored only
}

// Exit is a directed, possibly conditional or blocked connection to
// another location.
type Exit struct {
	Destination    string           `json:"destination" yaml:"destination"`
	Description    string           `json:"description,omitempty" yaml:"description,omitempty"`
	Blocked        bool             `json:"blocked,omitempty" yaml:"blocked,omitempty"`
	BlockedMessage string           `json:"blocked_message,omitempty" yaml:"blocked_message,omitempty"`
	Hidden         bool             `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Condition      *conditions.When `json:"condition,omitempty" yaml:"condition,omitempty"`
	FailMessage    string           `json:"fail_message,omitempty" yaml:"fail_message,omitempty"`
}

// Item is an object the player can examine and possibly take, use, open
// or close. Item IDs are map keys in Adventure.Items; Name is the display
// name players type.
type Item struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`

	Takeable           bool   `json:"takeable,omitempty" yaml:"takeable,omitempty"`
	Points             int    `json:"points,omitempty" yaml:"points,omitempty"` // Added to score on pickup
	TakeFailMessage    string `json:"take_fail_message,omitempty" yaml:"take_fail_message,omitempty"`
	TakeSuccessMessage string `json:"take_success_message,omitempty" yaml:"take_success_message,omitempty"`

	Usable     bool        `json:"usable,omitempty" yaml:"usable,omitempty"`
	Use        HandlerFunc `json:"-" yaml:"-"` // Full control over the result; Go-authored only
	UseMessage string      `json:"use_message,omitempty" yaml:"use_message,omitempty"`

	Openable      bool     `json:"openable,omitempty" yaml:"openable,omitempty"`
	IsOpen        bool     `json:"is_open,omitempty" yaml:"is_open,omitempty"`
	Locked        bool     `json:"locked,omitempty" yaml:"locked,omitempty"`
	KeyID         string   `json:"key_id,omitempty" yaml:"key_id,omitempty"` // Item that unlocks this container
	LockedMessage string   `json:"locked_message,omitempty" yaml:"locked_message,omitempty"`
	Contains      []string `json:"contains,omitempty" yaml:"contains,omitempty"` // Revealed into the location on open
	OpenMessage   string   `json:"open_message,omitempty" yaml:"open_message,omitempty"`
	CloseMessage  string   `json:"close_message,omitempty" yaml:"close_message,omitempty"`

	Hidden    bool             `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Condition *conditions.When `json:"condition,omitempty" yaml:"condition,omitempty"` // Makes the item visible despite Hidden

	Commands map[string]HandlerFunc `json:"-" yaml:"-"` // Verb overrides, Go-authored only
}

// Achievement is a per-adventure milestone triggered by a condition over
// the live game state. Secret achievements are withheld from listings
// until unlocked.
type Achievement struct {
	ID          string           `json:"id" yaml:"id"`
	Title       string           `json:"title" yaml:"title"`
	Description string           `json:"description" yaml:"description"`
	Icon        string           `json:"icon,omitempty" yaml:"icon,omitempty"`
	Secret      bool             `json:"secret,omitempty" yaml:"secret,omitempty"`
	Trigger     *conditions.When `json:"trigger,omitempty" yaml:"trigger,omitempty"`
}

// PlotEvent is a one-shot narrative milestone that writes an automatic
// journal entry the first time its condition holds.
type PlotEvent struct {
	ID           string           `json:"id" yaml:"id"`
	Description  string           `json:"description,omitempty" yaml:"description,omitempty"`
	Condition    *conditions.When `json:"condition,omitempty" yaml:"condition,omitempty"`
	JournalEntry string           `json:"journal_entry,omitempty" yaml:"journal_entry,omitempty"`
}

// GetLocation returns the location for an ID, or nil if the ID is
// unknown. Missing references degrade to nil rather than panicking so a
// malformed world encountered mid-play fails the command, not the game.
func (a *Adventure) GetLocation(id string) *Location {
	if a.Locations == nil {
		return nil
	}
	return a.Locations[id]
}

// GetItem returns the item for an ID, or nil if the ID is unknown.
func (a *Adventure) GetItem(id string) *Item {
	if a.Items == nil {
		return nil
	}
	return a.Items[id]
}

// ItemVisible reports whether an item should be shown to the player.
// Hidden items stay hidden unless their condition evaluates true.
func (a *Adventure) ItemVisible(item *Item, gv conditions.GameView) bool {
	if item == nil {
		return false
	}
	if !item.Hidden {
		return true
	}
	return item.Condition != nil && conditions.Evaluate(item.Condition, gv)
}

// RemoveLocationItem removes an item ID from a location's item list.
// Returns false if the item was not there.
func (l *Location) RemoveLocationItem(id string) bool {
	for i, it := range l.Items {
		if it == id {
			l.Items = append(l.Items[:i], l.Items[i+1:]...)
			return true
		}
	}
	return false
}

// HasLocationItem reports whether the location's item list contains an ID.
func (l *Location) HasLocationItem(id string) bool {
	for _, it := range l.Items {
		if it == id {
			return true
		}
	}
	return false
}
