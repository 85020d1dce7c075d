package achievements

// Stat names for the engine-wide counters. The set is fixed; unknown
// names are ignored by Add.
const (
	StatAdventuresStarted   = "adventuresStarted"
	StatAdventuresCompleted = "adventuresCompleted"
	StatCommandsEntered     = "commandsEntered"
	StatAutoCompleteUsed    = "autoCompleteUsed"
	StatItemsTaken          = "itemsTaken"
	StatRoomsVisited        = "roomsVisited"
)

// Stats holds the cumulative engine-wide counters. Each counter only
// ever increases and persists across sessions and adventures.
type Stats struct {
	AdventuresStarted   int `json:"adventures_started"`
	AdventuresCompleted int `json:"adventures_completed"`
	CommandsEntered     int `json:"commands_entered"`
	AutoCompleteUsed    int `json:"auto_complete_used"`
	ItemsTaken          int `json:"items_taken"`
	RoomsVisited        int `json:"rooms_visited"`
}

// Get returns the value of a named counter, or 0 for unknown names.
func (s *Stats) Get(name string) int {
	switch name {
	case StatAdventuresStarted:
		return s.AdventuresStarted
	case StatAdventuresCompleted:
		return s.AdventuresCompleted
	case StatCommandsEntered:
		return s.CommandsEntered
	case StatAutoCompleteUsed:
		return s.AutoCompleteUsed
	case StatItemsTaken:
		return s.ItemsTaken
	case StatRoomsVisited:
		return s.RoomsVisited
	default:
		return 0
	}
}

// Add increments a named counter. Returns false for unknown names.
// Negative amounts are rejected to keep the counters monotonic.
func (s *Stats) Add(name string, amount int) bool {
	if amount < 0 {
		return false
	}
	switch name {
	case StatAdventuresStarted:
		s.AdventuresStarted += amount
	case StatAdventuresCompleted:
		s.AdventuresCompleted += amount
	case StatCommandsEntered:
		s.CommandsEntered += amount
	case StatAutoCompleteUsed:
		s.AutoCompleteUsed += amount
	case StatItemsTaken:
		s.ItemsTaken += amount
	case StatRoomsVisited:
		s.RoomsVisited += amount
	default:
		return false
	}
	return true
}

// StatTrigger unlocks an engine achievement once a counter reaches a
// threshold.
type StatTrigger struct {
	Stat    string `json:"stat"`
	AtLeast int    `json:"at_least"`
}

// Met reports whether the trigger threshold is reached.
func (t StatTrigger) Met(s *Stats) bool {
	return s.Get(t.Stat) >= t.AtLeast
}
