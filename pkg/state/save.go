package state

import (
	"time"

	"github.com/google/uuid"
)

// SaveGame is a durable snapshot of a playthrough: the serialized game
// state plus display metadata for the saved-games list.
type SaveGame struct {
	ID           uuid.UUID  `json:"id"`
	AdventureID  string     `json:"adventure_id"`
	Name         string     `json:"name"`                    // Player-supplied or generated save name
	LocationName string     `json:"location_name,omitempty"` // Display name of the location at save time
	CreatedAt    time.Time  `json:"created_at"`
	State        *GameState `json:"state"`
}

// SaveSummary is the listing entry for a save, without the full state.
type SaveSummary struct {
	ID           uuid.UUID `json:"id"`
	AdventureID  string    `json:"adventure_id"`
	Name         string    `json:"name"`
	LocationName string    `json:"location_name,omitempty"`
	Score        int       `json:"score"`
	MoveCount    int       `json:"move_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// Summary derives the listing entry from a full save.
func (s *SaveGame) Summary() SaveSummary {
	sum := SaveSummary{
		ID:           s.ID,
		AdventureID:  s.AdventureID,
		Name:         s.Name,
		LocationName: s.LocationName,
		CreatedAt:    s.CreatedAt,
	}
	if s.State != nil {
		sum.Score = s.State.Score
		sum.MoveCount = s.State.MoveCount
	}
	return sum
}
