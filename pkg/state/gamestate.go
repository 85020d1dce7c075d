package state

import (
	"github.com/google/uuid"
)

// GameState is the mutable player-progress record for one playthrough.
// It is created fresh when an adventure starts, mutated exclusively by
// verb handlers and session bookkeeping, and discarded on reset.
type GameState struct {
	ID               uuid.UUID       `json:"id"` // Unique ID per session
	AdventureID      string          `json:"adventure_id,omitempty"`
	CurrentLocation  string          `json:"current_location,omitempty"`
	Inventory        []string        `json:"inventory,omitempty"`  // Item IDs, insertion order = pickup order
	GameFlags        map[string]any  `json:"game_flags,omitempty"` // Adventure-specific progress flags
	MoveCount        int             `json:"move_count"`
	Score            int             `json:"score"`
	VisitedLocations []string        `json:"visited_locations,omitempty"`
	CollectedItems   []string        `json:"collected_items,omitempty"`
	TriggeredEvents  map[string]bool `json:"triggered_events,omitempty"` // Plot event IDs already fired
	GameEnded        bool            `json:"game_ended,omitempty"`
}

// NewGameState creates a fresh game state positioned at the given location.
func NewGameState(adventureID, initialLocation string) *GameState {
	gs := &GameState{
		ID:              uuid.New(),
		AdventureID:     adventureID,
		CurrentLocation: initialLocation,
		Inventory:       make([]string, 0),
		GameFlags:       make(map[string]any),
		TriggeredEvents: make(map[string]bool),
	}
	if initialLocation != "" {
		gs.Visit(initialLocation)
	}
	return gs
}

// HasItem reports whether the item is in inventory.
func (gs *GameState) HasItem(id string) bool {
	for _, inv := range gs.Inventory {
		if inv == id {
			return true
		}
	}
	return false
}

// AddItem appends an item to inventory and records it as collected.
func (gs *GameState) AddItem(id string) {
	gs.Inventory = append(gs.Inventory, id)
	if !gs.HasCollected(id) {
		gs.CollectedItems = append(gs.CollectedItems, id)
	}
}

// RemoveItem removes the first occurrence of an item from inventory.
// Returns false if the item was not held.
func (gs *GameState) RemoveItem(id string) bool {
	for i, inv := range gs.Inventory {
		if inv == id {
			gs.Inventory = append(gs.Inventory[:i], gs.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// ReplaceItem swaps one inventory item ID for another in place, preserving
// its position. Used by item handlers that transform items (fill a bottle,
// drink from it). Returns false if the old item was not held.
func (gs *GameState) ReplaceItem(oldID, newID string) bool {
	for i, inv := range gs.Inventory {
		if inv == oldID {
			gs.Inventory[i] = newID
			if !gs.HasCollected(newID) {
				gs.CollectedItems = append(gs.CollectedItems, newID)
			}
			return true
		}
	}
	return false
}

// Visit records a location as visited. Idempotent.
func (gs *GameState) Visit(id string) {
	if gs.HasVisited(id) {
		return
	}
	gs.VisitedLocations = append(gs.VisitedLocations, id)
}

// GetFlag returns the truthiness of a game flag. Absent flags, false
// booleans, zero numbers and empty strings all read as false.
func (gs *GameState) GetFlag(name string) bool {
	v, ok := gs.GameFlags[name]
	if !ok {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case int:
		return t != 0
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return v != nil
	}
}

// SetFlag sets a game flag to an arbitrary value.
func (gs *GameState) SetFlag(name string, value any) {
	if gs.GameFlags == nil {
		gs.GameFlags = make(map[string]any)
	}
	gs.GameFlags[name] = value
}

// GetLocation implements conditions.GameView.
func (gs *GameState) GetLocation() string { return gs.CurrentLocation }

// GetScore implements conditions.GameView.
func (gs *GameState) GetScore() int { return gs.Score }

// GetMoves implements conditions.GameView.
func (gs *GameState) GetMoves() int { return gs.MoveCount }

// HasVisited implements conditions.GameView.
func (gs *GameState) HasVisited(id string) bool {
	for _, loc := range gs.VisitedLocations {
		if loc == id {
			return true
		}
	}
	return false
}

// HasCollected implements conditions.GameView.
func (gs *GameState) HasCollected(id string) bool {
	for _, item := range gs.CollectedItems {
		if item == id {
			return true
		}
	}
	return false
}
