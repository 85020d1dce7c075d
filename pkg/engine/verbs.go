package engine

import (
	"fmt"
	"strings"

	"github.com/modernzork/adventure-engine/pkg/adventure"
	"github.com/modernzork/adventure-engine/pkg/conditions"
	"github.com/modernzork/adventure-engine/pkg/state"
)

type verbFunc func(args []string, gs *state.GameState, adv *adventure.Adventure) state.CommandResult

// longDirections maps every accepted direction token to its long form.
var longDirections = map[string]string{
	"north": "north", "south": "south", "east": "east", "west": "west",
	"up": "up", "down": "down",
	"n": "north", "s": "south", "e": "east", "w": "west", "u": "up", "d": "down",
}

var standardVerbs map[string]verbFunc

func init() {
	standardVerbs = map[string]verbFunc{
		"go":   handleGo,
		"move": handleGo,
		"walk": handleGo,

		"look":      handleLook,
		"examine":   handleExamine,
		"take":      handleTake,
		"get":       handleTake,
		"drop":      handleDrop,
		"inventory": handleInventory,
		"i":         handleInventory,
		"use":       handleUse,
		"open":      handleOpen,
		"close":     handleClose,

		"help":  handleHelp,
		"score": handleScore,
		"quit":  handleQuit,
	}

	// Bare directions and their single-letter forms move directly.
	for token, dir := range longDirections {
		direction := dir
		standardVerbs[token] = func(_ []string, gs *state.GameState, adv *adventure.Adventure) state.CommandResult {
			return handleGo([]string{direction}, gs, adv)
		}
	}
}

func handleGo(args []string, gs *state.GameState, adv *adventure.Adventure) state.CommandResult {
	if len(args) == 0 {
		return state.Fail("Go where?")
	}

	direction := strings.ToLower(args[0])
	if long, ok := longDirections[direction]; ok {
		direction = long
	}

	loc := adv.GetLocation(gs.CurrentLocation)
	if loc == nil || loc.Exits[direction] == nil {
		return state.Fail(fmt.Sprintf("You can't go %s from here.", direction))
	}

	exit := loc.Exits[direction]

	// A blocked exit never moves the player, whatever its condition says.
	if exit.Blocked {
		msg := exit.BlockedMessage
		if msg == "" {
			msg = fmt.Sprintf("You can't go %s from here.", direction)
		}
		return state.Fail(msg)
	}

	if !conditions.Evaluate(exit.Condition, gs) {
		msg := exit.FailMessage
		if msg == "" {
			msg = fmt.Sprintf("You can't go %s from here.", direction)
		}
		return state.Fail(msg)
	}

	gs.CurrentLocation = exit.Destination
	return state.CommandResult{Success: true, LocationChanged: true}
}

func handleLook(args []string, gs *state.GameState, adv *adventure.Adventure) state.CommandResult {
	// Bare look: the caller re-renders the full location description.
	if len(args) == 0 {
		return state.CommandResult{Success: true, LocationChanged: true}
	}

	// "look at lantern" reads the same as "look lantern".
	if args[0] == "at" && len(args) > 1 {
		args = args[1:]
	}

	target := strings.ToLower(strings.Join(args, " "))
	if direction, ok := longDirections[target]; ok {
		loc := adv.GetLocation(gs.CurrentLocation)
		if loc != nil && loc.Exits[direction] != nil && loc.Exits[direction].Description != "" {
			return state.Ok(loc.Exits[direction].Description)
		}
		return state.Fail(fmt.Sprintf("You see nothing special %s.", direction))
	}

	return handleExamine(args, gs, adv)
}

func handleExamine(args []string, gs *state.GameState, adv *adventure.Adventure) state.CommandResult {
	if len(args) == 0 {
		return state.Fail("Examine what?")
	}

	itemName := strings.Join(args, " ")
	_, item := findMatchingItem(itemName, gs, adv)
	if item == nil {
		return state.Fail(fmt.Sprintf("You don't see any %s here.", itemName))
	}
	return state.Ok(item.Description)
}

func handleTake(args []string, gs *state.GameState, adv *adventure.Adventure) state.CommandResult {
	if len(args) == 0 {
		return state.Fail("Take what?")
	}

	itemName := strings.Join(args, " ")
	loc := adv.GetLocation(gs.CurrentLocation)
	if loc == nil {
		return state.Fail(fmt.Sprintf("You don't see any %s here.", itemName))
	}

	normalized := strings.ToLower(itemName)
	var itemID string
	var item *adventure.Item
	for _, id := range loc.Items {
		candidate := adv.GetItem(id)
		if candidate == nil || !adv.ItemVisible(candidate, gs) {
			continue
		}
		if strings.ToLower(candidate.Name) == normalized || strings.ToLower(id) == normalized {
			itemID, item = id, candidate
			break
		}
	}

	if item == nil {
		return state.Fail(fmt.Sprintf("You don't see any %s here.", itemName))
	}

	if !item.Takeable {
		msg := item.TakeFailMessage
		if msg == "" {
			msg = fmt.Sprintf("You can't take the %s.", item.Name)
		}
		return state.Fail(msg)
	}

	loc.RemoveLocationItem(itemID)
	gs.AddItem(itemID)
	gs.Score += item.Points

	msg := item.TakeSuccessMessage
	if msg == "" {
		msg = fmt.Sprintf("You take the %s.", item.Name)
	}
	return state.CommandResult{Success: true, InventoryChanged: true, Message: msg, ItemID: itemID}
}

func handleDrop(args []string, gs *state.GameState, adv *adventure.Adventure) state.CommandResult {
	if len(args) == 0 {
		return state.Fail("Drop what?")
	}

	itemName := strings.Join(args, " ")
	normalized := strings.ToLower(itemName)
	var itemID string
	var item *adventure.Item
	for _, id := range gs.Inventory {
		candidate := adv.GetItem(id)
		if candidate == nil {
			continue
		}
		if strings.ToLower(candidate.Name) == normalized || strings.ToLower(id) == normalized {
			itemID, item = id, candidate
			break
		}
	}

	if item == nil {
		return state.Fail(fmt.Sprintf("You don't have a %s.", itemName))
	}

	gs.RemoveItem(itemID)
	loc := adv.GetLocation(gs.CurrentLocation)
	if loc != nil {
		loc.Items = append(loc.Items, itemID)
	}

	return state.CommandResult{
		Success:          true,
		InventoryChanged: true,
		Message:          fmt.Sprintf("You drop the %s.", item.Name),
	}
}

func handleInventory(_ []string, gs *state.GameState, adv *adventure.Adventure) state.CommandResult {
	if len(gs.Inventory) == 0 {
		return state.Ok("You are not carrying anything.")
	}

	names := make([]string, 0, len(gs.Inventory))
	for _, id := range gs.Inventory {
		if item := adv.GetItem(id); item != nil {
			names = append(names, item.Name)
		}
	}
	return state.Ok("You are carrying: " + strings.Join(names, ", "))
}

// handleUse resolves the target by the longest leading run of argument
// tokens that names a visible item; the leftover tokens are passed to the
// item's use handler.
func handleUse(args []string, gs *state.GameState, adv *adventure.Adventure) state.CommandResult {
	if len(args) == 0 {
		return state.Fail("Use what?")
	}

	var item *adventure.Item
	var rest []string
	for n := len(args); n > 0; n-- {
		if _, found := findMatchingItem(strings.Join(args[:n], " "), gs, adv); found != nil {
			item = found
			rest = args[n:]
			break
		}
	}

	if item == nil {
		return state.Fail(fmt.Sprintf("You don't have a %s.", strings.Join(args, " ")))
	}

	if !item.Usable {
		return state.Fail(fmt.Sprintf("You can't use the %s that way.", item.Name))
	}

	if item.Use != nil {
		return item.Use(rest, gs, adv)
	}

	msg := item.UseMessage
	if msg == "" {
		msg = fmt.Sprintf("You use the %s.", item.Name)
	}
	return state.Ok(msg)
}

func handleOpen(args []string, gs *state.GameState, adv *adventure.Adventure) state.CommandResult {
	if len(args) == 0 {
		return state.Fail("Open what?")
	}

	itemName := strings.Join(args, " ")
	_, item := findMatchingItem(itemName, gs, adv)
	if item == nil {
		return state.Fail(fmt.Sprintf("You don't see any %s here.", itemName))
	}

	if !item.Openable {
		return state.Fail(fmt.Sprintf("You can't open the %s.", item.Name))
	}

	if item.IsOpen {
		return state.Fail(fmt.Sprintf("The %s is already open.", item.Name))
	}

	if item.Locked {
		if item.KeyID != "" && gs.HasItem(item.KeyID) {
			item.Locked = false
			keyName := item.KeyID
			if key := adv.GetItem(item.KeyID); key != nil {
				keyName = key.Name
			}
			return state.Ok(fmt.Sprintf("You unlock the %s with the %s.", item.Name, keyName))
		}
		msg := item.LockedMessage
		if msg == "" {
			msg = fmt.Sprintf("The %s is locked.", item.Name)
		}
		return state.Fail(msg)
	}

	item.IsOpen = true

	// Reveal contained items into the current location.
	revealed := 0
	if len(item.Contains) > 0 {
		loc := adv.GetLocation(gs.CurrentLocation)
		for _, id := range item.Contains {
			inner := adv.GetItem(id)
			if inner == nil {
				continue
			}
			inner.Hidden = false
			if loc != nil && !loc.HasLocationItem(id) {
				loc.Items = append(loc.Items, id)
			}
			revealed++
		}
		item.Contains = nil
	}

	msg := item.OpenMessage
	if msg == "" {
		msg = fmt.Sprintf("You open the %s.", item.Name)
	}
	return state.CommandResult{Success: true, Message: msg, LocationChanged: revealed > 0}
}

func handleClose(args []string, gs *state.GameState, adv *adventure.Adventure) state.CommandResult {
	if len(args) == 0 {
		return state.Fail("Close what?")
	}

	itemName := strings.Join(args, " ")
	_, item := findMatchingItem(itemName, gs, adv)
	if item == nil {
		return state.Fail(fmt.Sprintf("You don't see any %s here.", itemName))
	}

	if !item.Openable {
		return state.Fail(fmt.Sprintf("You can't close the %s.", item.Name))
	}

	if !item.IsOpen {
		return state.Fail(fmt.Sprintf("The %s is already closed.", item.Name))
	}

	item.IsOpen = false

	msg := item.CloseMessage
	if msg == "" {
		msg = fmt.Sprintf("You close the %s.", item.Name)
	}
	return state.Ok(msg)
}

const helpText = `Available Commands:

Movement:          GO [direction], or just type a direction (NORTH, SOUTH, EAST, WEST, UP, DOWN)
Look around:       LOOK
Examine something: EXAMINE [object] or LOOK AT [object]
Get an item:       TAKE [item] or GET [item]
Drop an item:      DROP [item]
Use an item:       USE [item]
Check inventory:   INVENTORY or I
Open something:    OPEN [object]
Close something:   CLOSE [object]
Check score:       SCORE
Quit game:         QUIT

Tip: You can use the TAB key to autocomplete commands.`

func handleHelp(_ []string, _ *state.GameState, _ *adventure.Adventure) state.CommandResult {
	return state.Ok(helpText)
}

func handleScore(_ []string, gs *state.GameState, _ *adventure.Adventure) state.CommandResult {
	return state.Ok(fmt.Sprintf("Your score is %d in %d moves.", gs.Score, gs.MoveCount))
}

// handleQuit only signals intent. Resetting or exiting is a UI concern,
// gated behind confirmation there.
func handleQuit(_ []string, _ *state.GameState, _ *adventure.Adventure) state.CommandResult {
	return state.CommandResult{Success: true, Quit: true}
}
