// Package journal keeps the player's story journal: automatic entries
// written by plot events and free-form entries written by the player.
package journal

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one journal record, scoped to an adventure.
type Entry struct {
	ID          uuid.UUID `json:"id"`
	AdventureID string    `json:"adventure_id"`
	LocationID  string    `json:"location_id,omitempty"`
	Text        string    `json:"text"`
	Auto        bool      `json:"auto"` // Written by a plot event rather than the player
	CreatedAt   time.Time `json:"created_at"`
}

// Journal is the in-memory entry list, ordered by insertion. It is
// persisted wholesale through the storage collaborator; corrupt or
// missing persisted data falls back to an empty journal.
type Journal struct {
	Entries []Entry `json:"entries"`
}

// New creates an empty journal.
func New() *Journal {
	return &Journal{Entries: make([]Entry, 0)}
}

// AddPlayerEntry appends a player-written entry.
func (j *Journal) AddPlayerEntry(adventureID, locationID, text string) Entry {
	return j.add(adventureID, locationID, text, false)
}

// AddAutoEntry appends an entry written by a plot event.
func (j *Journal) AddAutoEntry(adventureID, locationID, text string) Entry {
	return j.add(adventureID, locationID, text, true)
}

func (j *Journal) add(adventureID, locationID, text string, auto bool) Entry {
	e := Entry{
		ID:          uuid.New(),
		AdventureID: adventureID,
		LocationID:  locationID,
		Text:        text,
		Auto:        auto,
		CreatedAt:   time.Now(),
	}
	j.Entries = append(j.Entries, e)
	return e
}

// ForAdventure returns the entries for one adventure, in insertion order.
func (j *Journal) ForAdventure(adventureID string) []Entry {
	var out []Entry
	for _, e := range j.Entries {
		if e.AdventureID == adventureID {
			out = append(out, e)
		}
	}
	return out
}
