package adventure

import (
	"fmt"
	"strings"
)

// ValidationError aggregates everything wrong with an adventure so
// authors see all problems in one pass.
type ValidationError struct {
	AdventureID string
	Problems    []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("adventure %q is invalid:\n  %s", e.AdventureID, strings.Join(e.Problems, "\n  "))
}

// ValidateMetadata checks only the identity fields. Used for directory
// listings where the full world is not loaded.
func (a *Adventure) ValidateMetadata() error {
	v := &validator{}
	v.checkMetadata(a)
	return v.result(a)
}

// Validate checks a full adventure against the world-model invariants:
// identity fields present, initial location exists and is reachable, and
// every location, item, exit destination, container content and key
// reference resolves. Invalid adventures are rejected wholesale, never
// partially loaded.
func (a *Adventure) Validate() error {
	v := &validator{}
	v.checkMetadata(a)

	if a.InitialLocation == "" {
		v.errorf("missing initial_location")
	}
	if a.IntroText == "" {
		v.errorf("missing intro_text")
	}
	if len(a.Locations) == 0 {
		v.errorf("adventure has no locations")
		return v.result(a)
	}

	if a.InitialLocation != "" {
		if _, ok := a.Locations[a.InitialLocation]; !ok {
			v.errorf("initial_location %q does not exist", a.InitialLocation)
		}
	}

	for locID, loc := range a.Locations {
		if loc == nil {
			v.errorf("location %q is nil", locID)
			continue
		}
		if loc.Name == "" {
			v.errorf("location %q has no name", locID)
		}
		for dir, exit := range loc.Exits {
			if exit == nil {
				v.errorf("location %q exit %q is nil", locID, dir)
				continue
			}
			if exit.Destination == "" {
				v.errorf("location %q exit %q has no destination", locID, dir)
			} else if _, ok := a.Locations[exit.Destination]; !ok {
				v.errorf("location %q exit %q leads to unknown location %q", locID, dir, exit.Destination)
			}
		}
		for _, itemID := range loc.Items {
			if a.GetItem(itemID) == nil {
				v.errorf("location %q references unknown item %q", locID, itemID)
			}
		}
	}

	for itemID, item := range a.Items {
		if item == nil {
			v.errorf("item %q is nil", itemID)
			continue
		}
		if item.Name == "" {
			v.errorf("item %q has no name", itemID)
		}
		for _, inner := range item.Contains {
			if a.GetItem(inner) == nil {
				v.errorf("item %q contains unknown item %q", itemID, inner)
			}
		}
		if item.KeyID != "" && a.GetItem(item.KeyID) == nil {
			v.errorf("item %q key_id references unknown item %q", itemID, item.KeyID)
		}
	}

	seen := make(map[string]bool)
	for i, ach := range a.Achievements {
		if ach.ID == "" {
			v.errorf("achievement #%d has no id", i)
			continue
		}
		if seen[ach.ID] {
			v.errorf("duplicate achievement id %q", ach.ID)
		}
		seen[ach.ID] = true
	}

	if a.InitialLocation != "" {
		v.checkReachability(a)
	}

	return v.result(a)
}

type validator struct {
	problems []string
}

func (v *validator) errorf(format string, args ...any) {
	v.problems = append(v.problems, fmt.Sprintf(format, args...))
}

func (v *validator) checkMetadata(a *Adventure) {
	if a.ID == "" {
		v.errorf("missing id")
	}
	if a.Title == "" {
		v.errorf("missing title")
	}
	if a.Author == "" {
		v.errorf("missing author")
	}
}

// checkReachability walks all exits from the initial location, ignoring
// blocked/hidden/conditional status: an exit that can ever open counts.
func (v *validator) checkReachability(a *Adventure) {
	if _, ok := a.Locations[a.InitialLocation]; !ok {
		return
	}
	reached := map[string]bool{a.InitialLocation: true}
	queue := []string{a.InitialLocation}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		loc := a.Locations[cur]
		if loc == nil {
			continue
		}
		for _, exit := range loc.Exits {
			if exit == nil || exit.Destination == "" || reached[exit.Destination] {
				continue
			}
			if _, ok := a.Locations[exit.Destination]; !ok {
				continue
			}
			reached[exit.Destination] = true
			queue = append(queue, exit.Destination)
		}
	}
	for locID := range a.Locations {
		if !reached[locID] {
			v.errorf("location %q is unreachable from initial_location %q", locID, a.InitialLocation)
		}
	}
}

func (v *validator) result(a *Adventure) error {
	if len(v.problems) == 0 {
		return nil
	}
	return &ValidationError{AdventureID: a.ID, Problems: v.problems}
}
