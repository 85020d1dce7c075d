package engine

import (
	"strings"

	"github.com/modernzork/adventure-engine/pkg/adventure"
	"github.com/modernzork/adventure-engine/pkg/state"
)

// MaxSuggestions caps autocomplete output.
const MaxSuggestions = 5

// suggestVocabulary is the verb vocabulary offered for first-word
// completion, in display order.
var suggestVocabulary = []string{
	"go", "look", "examine", "take", "get", "drop", "inventory",
	"use", "open", "close", "help", "score", "quit",
	"north", "south", "east", "west", "up", "down",
	"n", "s", "e", "w", "u", "d",
}

var suggestDirections = []string{"north", "south", "east", "west", "up", "down"}

// Suggest proposes up to MaxSuggestions completions for a partial
// command. A single token is matched against the verb vocabulary by
// prefix. With multiple tokens the first is the committed verb: movement
// verbs complete directions, other verbs complete visible item names in
// the current location (plus inventory for drop and use). The whole
// argument text is matched against candidate names, so multi-word item
// names complete from any point.
func Suggest(partial string, gs *state.GameState, adv *adventure.Adventure) []string {
	normalized := strings.ToLower(partial)
	words := strings.Fields(normalized)
	if len(words) == 0 {
		return nil
	}
	// Trailing space means the player committed the previous word and is
	// starting a fresh one.
	if strings.HasSuffix(normalized, " ") {
		words = append(words, "")
	}

	if len(words) == 1 {
		var out []string
		for _, cmd := range suggestVocabulary {
			if strings.HasPrefix(cmd, words[0]) {
				out = append(out, cmd)
				if len(out) == MaxSuggestions {
					break
				}
			}
		}
		return out
	}

	verb := words[0]
	argPrefix := strings.Join(words[1:], " ")

	var candidates []string
	switch verb {
	case "go", "move", "walk":
		candidates = suggestDirections
	default:
		candidates = visibleObjectNames(verb, gs, adv)
	}

	var out []string
	for _, name := range candidates {
		if strings.HasPrefix(name, argPrefix) {
			out = append(out, verb+" "+name)
			if len(out) == MaxSuggestions {
				break
			}
		}
	}
	return out
}

// visibleObjectNames collects lower-cased display names of non-hidden
// items in the current location, plus inventory items for verbs that act
// on carried things.
func visibleObjectNames(verb string, gs *state.GameState, adv *adventure.Adventure) []string {
	var names []string

	if loc := adv.GetLocation(gs.CurrentLocation); loc != nil {
		for _, id := range loc.Items {
			item := adv.GetItem(id)
			if item == nil || !adv.ItemVisible(item, gs) {
				continue
			}
			names = append(names, strings.ToLower(item.Name))
		}
	}

	if verb == "drop" || verb == "use" {
		for _, id := range gs.Inventory {
			if item := adv.GetItem(id); item != nil {
				names = append(names, strings.ToLower(item.Name))
			}
		}
	}

	return names
}

// Vocabulary returns the standard verb vocabulary. The UI uses it for
// help rendering and input hints.
func Vocabulary() []string {
	out := make([]string, len(suggestVocabulary))
	copy(out, suggestVocabulary)
	return out
}
