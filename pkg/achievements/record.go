package achievements

// PlayerRecord is the persistent achievement and stat record. Unlike
// GameState it survives adventure restarts and switches; it is persisted
// through the storage collaborator after every mutation.
type PlayerRecord struct {
	Stats Stats `json:"stats"`

	// Engine maps engine achievement ID → unlocked.
	Engine map[string]bool `json:"engine,omitempty"`

	// Adventure maps adventure ID → achievement ID → unlocked.
	Adventure map[string]map[string]bool `json:"adventure,omitempty"`
}

// NewPlayerRecord creates an empty record: zero counters, nothing
// unlocked. Also the fallback when persisted data is missing or corrupt.
func NewPlayerRecord() *PlayerRecord {
	return &PlayerRecord{
		Engine:    make(map[string]bool),
		Adventure: make(map[string]map[string]bool),
	}
}

// EngineUnlocked reports whether an engine achievement is unlocked.
func (r *PlayerRecord) EngineUnlocked(id string) bool {
	return r.Engine[id]
}

// AdventureUnlocked reports whether an adventure achievement is unlocked.
func (r *PlayerRecord) AdventureUnlocked(adventureID, id string) bool {
	return r.Adventure[adventureID][id]
}

// unlockEngine marks an engine achievement unlocked. Returns false if it
// already was: unlocks are monotonic and duplicates are no-ops.
func (r *PlayerRecord) unlockEngine(id string) bool {
	if r.Engine == nil {
		r.Engine = make(map[string]bool)
	}
	if r.Engine[id] {
		return false
	}
	r.Engine[id] = true
	return true
}

// unlockAdventure marks an adventure achievement unlocked. Returns false
// if it already was.
func (r *PlayerRecord) unlockAdventure(adventureID, id string) bool {
	if r.Adventure == nil {
		r.Adventure = make(map[string]map[string]bool)
	}
	if r.Adventure[adventureID] == nil {
		r.Adventure[adventureID] = make(map[string]bool)
	}
	if r.Adventure[adventureID][id] {
		return false
	}
	r.Adventure[adventureID][id] = true
	return true
}
