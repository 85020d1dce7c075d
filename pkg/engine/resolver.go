package engine

import (
	"fmt"
	"strings"

	"github.com/modernzork/adventure-engine/pkg/adventure"
	"github.com/modernzork/adventure-engine/pkg/state"
)

// Handle parses and resolves one raw command against the game state and
// world. The resolution order is load-bearing and preserved exactly:
//
//  1. location-level verb override
//  2. item-level verb override, for a visible item named by the args
//  3. standard verb handler
//  4. "I don't understand."
func Handle(raw string, gs *state.GameState, adv *adventure.Adventure) state.CommandResult {
	verb, args := Parse(raw)
	if verb == "" {
		return state.Fail("Say something.")
	}
	return execute(verb, args, strings.TrimSpace(raw), gs, adv)
}

// Execute resolves an already-parsed command. The unknown-command message
// is reconstructed from the tokens; prefer Handle when the raw text is
// available.
func Execute(verb string, args []string, gs *state.GameState, adv *adventure.Adventure) state.CommandResult {
	raw := verb
	if len(args) > 0 {
		raw += " " + strings.Join(args, " ")
	}
	return execute(verb, args, raw, gs, adv)
}

func execute(verb string, args []string, raw string, gs *state.GameState, adv *adventure.Adventure) state.CommandResult {
	if loc := adv.GetLocation(gs.CurrentLocation); loc != nil {
		if handler, ok := loc.Commands[verb]; ok && handler != nil {
			return handler(args, gs, adv)
		}
	}

	if _, item := findMatchingItem(strings.Join(args, " "), gs, adv); item != nil {
		if handler, ok := item.Commands[verb]; ok && handler != nil {
			return handler(args, gs, adv)
		}
	}

	if handler, ok := standardVerbs[verb]; ok {
		return handler(args, gs, adv)
	}

	return state.Fail(fmt.Sprintf("I don't understand '%s'.", raw))
}

// findMatchingItem resolves an item visible to the player by display name
// (case-insensitive exact match) or item ID. Inventory is scanned before
// the current location, so ties resolve to the carried item. Hidden items
// in the location are excluded unless their condition holds. Missing item
// references are skipped, never fatal.
func findMatchingItem(name string, gs *state.GameState, adv *adventure.Adventure) (string, *adventure.Item) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return "", nil
	}

	for _, itemID := range gs.Inventory {
		item := adv.GetItem(itemID)
		if item == nil {
			continue
		}
		if strings.ToLower(item.Name) == normalized || strings.ToLower(itemID) == normalized {
			return itemID, item
		}
	}

	loc := adv.GetLocation(gs.CurrentLocation)
	if loc == nil {
		return "", nil
	}
	for _, itemID := range loc.Items {
		item := adv.GetItem(itemID)
		if item == nil || !adv.ItemVisible(item, gs) {
			continue
		}
		if strings.ToLower(item.Name) == normalized || strings.ToLower(itemID) == normalized {
			return itemID, item
		}
	}

	return "", nil
}
