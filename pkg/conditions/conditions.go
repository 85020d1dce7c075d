package conditions

// GameView provides the minimal interface needed to evaluate conditions.
// This avoids import cycles with the state package.
type GameView interface {
	GetLocation() string
	GetScore() int
	GetMoves() int
	HasItem(id string) bool
	GetFlag(name string) bool
	HasVisited(id string) bool
	HasCollected(id string) bool
}

// When is the declarative predicate form used by exits, hidden items,
// adventure achievements, plot events and victory/game-over checks.
// All specified clauses must hold for the condition to pass.
type When struct {
	HasItems     []string        `json:"has_items,omitempty" yaml:"has_items,omitempty"`         // All must be in inventory
	Flags        map[string]bool `json:"flags,omitempty" yaml:"flags,omitempty"`                 // Flag truthiness must match
	Location     string          `json:"location,omitempty" yaml:"location,omitempty"`           // Player must be at this location
	MinScore     *int            `json:"min_score,omitempty" yaml:"min_score,omitempty"`         // Score >= this value
	MaxMoves     *int            `json:"max_moves,omitempty" yaml:"max_moves,omitempty"`         // Move count < this value
	VisitedAll   []string        `json:"visited_all,omitempty" yaml:"visited_all,omitempty"`     // All locations visited
	CollectedAll []string        `json:"collected_all,omitempty" yaml:"collected_all,omitempty"` // All items collected at some point

	// Func is an escape hatch for Go-authored adventures whose logic does
	// not fit the declarative clauses. Never populated from data files.
	Func func(GameView) bool `json:"-" yaml:"-"`
}

// Evaluate checks all clauses of a When against the game view.
// A nil condition always passes: exits are traversable and items visible
// by default. Evaluation is pure and never panics on well-formed input.
func Evaluate(when *When, gv GameView) bool {
	if when == nil {
		return true
	}

	for _, id := range when.HasItems {
		if !gv.HasItem(id) {
			return false
		}
	}

	for name, expected := range when.Flags {
		if gv.GetFlag(name) != expected {
			return false
		}
	}

	if when.Location != "" && gv.GetLocation() != when.Location {
		return false
	}

	if when.MinScore != nil && gv.GetScore() < *when.MinScore {
		return false
	}

	if when.MaxMoves != nil && gv.GetMoves() >= *when.MaxMoves {
		return false
	}

	for _, id := range when.VisitedAll {
		if !gv.HasVisited(id) {
			return false
		}
	}

	for _, id := range when.CollectedAll {
		if !gv.HasCollected(id) {
			return false
		}
	}

	if when.Func != nil && !when.Func(gv) {
		return false
	}

	return true
}
