// Package cave bundles "The Forgotten Cave", the built-in demo
// adventure. It doubles as the reference for authoring Go adventures:
// declarative world data plus handler functions for bespoke behavior.
package cave

import (
	"strings"

	"github.com/modernzork/adventure-engine/pkg/adventure"
	"github.com/modernzork/adventure-engine/pkg/conditions"
	"github.com/modernzork/adventure-engine/pkg/state"
)

const ID = "forgotten-cave"

const introText = `The Forgotten Cave

After hearing rumors of an ancient treasure hidden deep within a cave
system in the mountains, you've decided to explore it yourself. Armed
only with your wits and a small flashlight, you stand at the entrance
to the cave.

Will you find the legendary treasures within, or will you become
another victim of the cave's secrets?

Type 'help' for a list of commands.`

const victoryText = `Congratulations!

With the ancient amulet safely in your possession, you emerge from the
cave into the bright sunlight. You've successfully retrieved the
legendary treasure and lived to tell the tale!

THE END`

// New builds a pristine copy of the adventure. Handlers close over
// nothing, so every call yields an independent world.
func New() *adventure.Adventure {
	return &adventure.Adventure{
		ID:              ID,
		Title:           "The Forgotten Cave",
		Author:          "ModernZork Team",
		Version:         "1.0",
		InitialLocation: "cave_entrance",
		IntroText:       introText,

		VictoryCondition: &conditions.When{
			HasItems: []string{"ancient_amulet"},
			Location: "cave_entrance",
		},
		VictoryText: victoryText,

		Locations: map[string]*adventure.Location{
			"cave_entrance": {
				Name:        "Cave Entrance",
				Description: "You stand at the entrance to a dark cave. Sunlight filters in from the outside, but the interior quickly fades into darkness. There's a cool breeze coming from inside.",
				Exits: map[string]*adventure.Exit{
					"north": {Destination: "main_cavern", Description: "The cave extends into darkness."},
					"south": {Destination: "forest_path", Description: "A path leads back to the forest."},
				},
				Items: []string{"flashlight"},
			},
			"forest_path": {
				Name:        "Forest Path",
				Description: "A narrow path winds through the dense forest. Birds chirp in the trees, and sunlight dapples the ground. This is the way back to civilization.",
				Exits: map[string]*adventure.Exit{
					"north": {Destination: "cave_entrance", Description: "The cave entrance looms ahead."},
				},
			},
			"main_cavern": {
				Name:        "Main Cavern",
				Description: "You're in a large, echoing cavern. Stalactites hang from the ceiling, and the ground is uneven. Your light doesn't reach the highest parts of the ceiling. Water drips somewhere in the distance.",
				Exits: map[string]*adventure.Exit{
					"south": {Destination: "cave_entrance", Description: "The entrance to the cave is visible, letting in some natural light."},
					"east":  {Destination: "narrow_passage", Description: "A narrow passage leads deeper into the cave."},
					"west":  {Destination: "underground_pool", Description: "You can see a glimmer of water reflecting your light."},
				},
				Items: []string{"old_coin", "rock"},
			},
			"narrow_passage": {
				Name:        "Narrow Passage",
				Description: "The passage is so narrow you have to turn sideways to squeeze through. The walls are damp and slippery. It's much colder here than in the main cavern.",
				Exits: map[string]*adventure.Exit{
					"west":  {Destination: "main_cavern", Description: "The passage opens up to the main cavern."},
					"north": {Destination: "crystal_chamber", Description: "You can see a faint, colorful glow ahead."},
				},
			},
			"crystal_chamber": {
				Name:        "Crystal Chamber",
				Description: "This chamber is filled with glittering crystals of various colors. They catch your light and split it into rainbows that dance across the walls. It's a breathtaking sight.",
				Exits: map[string]*adventure.Exit{
					"south": {Destination: "narrow_passage", Description: "The narrow passage leads back to the main part of the cave."},
					"down": {
						Destination: "hidden_chamber",
						Description: "A small opening in the floor might be just big enough to fit through.",
						Hidden:      true,
						Condition:   &conditions.When{Flags: map[string]bool{"crystalAligned": true}},
					},
				},
				Items:    []string{"blue_crystal", "red_crystal"},
				Commands: map[string]adventure.HandlerFunc{"align": alignCrystals},
			},
			"hidden_chamber": {
				Name:        "Hidden Chamber",
				Description: "You squeeze through the opening and find yourself in a small, previously sealed chamber. The air is stale and undisturbed for what must have been centuries. There's a sense of reverence here, as if you're the first person to enter in a very long time.",
				Exits: map[string]*adventure.Exit{
					"up": {Destination: "crystal_chamber", Description: "The opening leads back to the crystal chamber."},
				},
				Items: []string{"ancient_amulet"},
			},
			"underground_pool": {
				Name:        "Underground Pool",
				Description: "A still, clear pool of water fills most of this chamber. The ceiling is reflected perfectly on its surface. The water looks deep and cold. There's a small ledge around the pool where you can walk.",
				Exits: map[string]*adventure.Exit{
					"east": {Destination: "main_cavern", Description: "The passage leads back to the main cavern."},
					"north": {
						Destination:    "waterfall_chamber",
						Description:    "You can hear the sound of rushing water from that direction.",
						Blocked:        true,
						BlockedMessage: "The passage is too dark to navigate safely without more light.",
					},
				},
				Items: []string{"empty_bottle"},
			},
			"waterfall_chamber": {
				Name:        "Waterfall Chamber",
				Description: "A beautiful underground waterfall cascades from a crack in the ceiling, feeding the pool in the adjoining chamber. The sound of rushing water fills the air, and a fine mist makes everything slightly damp. There's a small rainbow where your light hits the mist.",
				Exits: map[string]*adventure.Exit{
					"south": {Destination: "underground_pool", Description: "The passage leads back to the underground pool."},
				},
				Items: []string{"silver_key"},
			},
		},

		Items: map[string]*adventure.Item{
			"flashlight": {
				Name:        "flashlight",
				Description: "A small but powerful LED flashlight. It's currently turned off.",
				Takeable:    true,
				Usable:      true,
				Use:         useFlashlight,
			},
			"old_coin": {
				Name:        "old coin",
				Description: "A tarnished silver coin with unfamiliar markings. It looks very old and might be valuable to a collector.",
				Takeable:    true,
				Points:      5,
			},
			"rock": {
				Name:        "rock",
				Description: "Just an ordinary cave rock. It's somewhat damp and has a few sparkly mineral deposits.",
				Takeable:    true,
			},
			"blue_crystal": {
				Name:        "blue crystal",
				Description: "A beautiful blue crystal that seems to glow with an inner light. It feels warm to the touch.",
				Takeable:    true,
				Points:      10,
			},
			"red_crystal": {
				Name:        "red crystal",
				Description: "A deep red crystal that pulses gently, like a heartbeat. It feels warm to the touch.",
				Takeable:    true,
				Points:      10,
			},
			"ancient_amulet": {
				Name:        "ancient amulet",
				Description: "A spectacular golden amulet inlaid with gemstones. It depicts a strange symbol that seems to shift slightly when you're not looking directly at it. This must be the legendary treasure!",
				Takeable:    true,
				Points:      50,
			},
			"empty_bottle": {
				Name:        "empty bottle",
				Description: "A glass bottle that someone must have dropped. It's empty but could be used to hold liquids.",
				Takeable:    true,
				Usable:      true,
				Use:         fillBottle,
			},
			"water_bottle": {
				Name:        "water bottle",
				Description: "A glass bottle filled with clear cave water. It looks refreshingly cool.",
				Takeable:    true,
				Usable:      true,
				Use:         drinkWater,
			},
			"silver_key": {
				Name:        "silver key",
				Description: "A small silver key with intricate engravings. It must unlock something important.",
				Takeable:    true,
				Points:      15,
			},
		},

		Achievements: []adventure.Achievement{
			{
				ID:          "first_step",
				Title:       "First Steps",
				Description: "Leave the cave entrance for the first time",
				Icon:        "shoe-prints",
				Trigger: &conditions.When{Func: func(gv conditions.GameView) bool {
					return gv.HasVisited("main_cavern") || gv.HasVisited("forest_path")
				}},
			},
			{
				ID:          "treasure_hunter",
				Title:       "Treasure Hunter",
				Description: "Find the ancient amulet",
				Icon:        "gem",
				Trigger:     &conditions.When{HasItems: []string{"ancient_amulet"}},
			},
			{
				ID:          "crystal_master",
				Title:       "Crystal Master",
				Description: "Collect both crystals",
				Icon:        "cubes",
				Trigger:     &conditions.When{HasItems: []string{"blue_crystal", "red_crystal"}},
			},
			{
				ID:          "hydration",
				Title:       "Stay Hydrated",
				Description: "Fill a bottle with cave water",
				Icon:        "droplet",
				Trigger:     &conditions.When{HasItems: []string{"water_bottle"}},
			},
			{
				ID:          "align_crystals",
				Title:       "Crystal Alignment",
				Description: "Discover how to align the crystals",
				Icon:        "wand",
				Trigger:     &conditions.When{Flags: map[string]bool{"crystalAligned": true}},
			},
			{
				ID:          "lightbringer",
				Title:       "Lightbringer",
				Description: "Use the flashlight to reveal a hidden path",
				Icon:        "lightbulb",
				Trigger:     &conditions.When{Flags: map[string]bool{"flashlightOn": true}},
			},
			{
				ID:          "completionist",
				Title:       "Cave Completionist",
				Description: "Visit every location in the cave",
				Icon:        "map",
				Trigger: &conditions.When{VisitedAll: []string{
					"cave_entrance", "forest_path", "main_cavern", "narrow_passage",
					"crystal_chamber", "hidden_chamber", "underground_pool", "waterfall_chamber",
				}},
			},
			{
				ID:          "collector",
				Title:       "Cave Collector",
				Description: "Find every item in the cave",
				Icon:        "bag",
				Trigger: &conditions.When{CollectedAll: []string{
					"flashlight", "old_coin", "rock", "blue_crystal", "red_crystal",
					"ancient_amulet", "empty_bottle", "water_bottle", "silver_key",
				}},
			},
			{
				ID:          "speed_runner",
				Title:       "Speed Runner",
				Description: "Complete the adventure in under 30 moves",
				Icon:        "running",
				Secret:      true,
				Trigger: &conditions.When{
					HasItems: []string{"ancient_amulet"},
					Location: "cave_entrance",
					MaxMoves: intPtr(30),
				},
			},
		},

		PlotEvents: []adventure.PlotEvent{
			{
				ID:           "enter_cave",
				Description:  "Entered the cave for the first time",
				Condition:    &conditions.When{Location: "main_cavern"},
				JournalEntry: "I've entered the main cavern of the cave. The air is damp and cool, with strange echoes all around. There must be something valuable hidden in these depths.",
			},
			{
				ID:           "find_crystal_chamber",
				Description:  "Discovered the crystal chamber",
				Condition:    &conditions.When{Location: "crystal_chamber"},
				JournalEntry: "I've found an incredible chamber filled with glowing crystals of various colors. The light they emit seems almost magical. There's something important about this place.",
			},
			{
				ID:           "align_crystals",
				Description:  "Aligned the crystals",
				Condition:    &conditions.When{Flags: map[string]bool{"crystalAligned": true}},
				JournalEntry: "When I aligned the blue and red crystals together, they emitted a powerful beam of purple light that revealed a hidden opening in the floor. This could lead to the treasure I'm seeking!",
			},
			{
				ID:           "find_amulet",
				Description:  "Found the ancient amulet",
				Condition:    &conditions.When{HasItems: []string{"ancient_amulet"}},
				JournalEntry: "Success! I've found the legendary ancient amulet. It's a magnificent golden piece with strange symbols and inlaid gemstones. Now I need to get back to the entrance safely.",
			},
			{
				ID:           "adventure_complete",
				Description:  "Completed the adventure",
				Condition:    &conditions.When{HasItems: []string{"ancient_amulet"}, Location: "cave_entrance"},
				JournalEntry: "I've done it! I've escaped the cave with the ancient amulet in my possession. This remarkable artifact will be studied for years to come, and I'll be remembered as the explorer who found it.",
			},
		},
	}
}

// alignCrystals is the location-level override for "align" in the
// crystal chamber. Holding both crystals reveals the way down.
func alignCrystals(args []string, gs *state.GameState, adv *adventure.Adventure) state.CommandResult {
	if strings.Join(args, " ") != "crystals" {
		return state.Fail("Align what?")
	}
	if !gs.HasItem("blue_crystal") || !gs.HasItem("red_crystal") {
		return state.Fail("You need to have both crystals to align them properly.")
	}
	gs.SetFlag("crystalAligned", true)
	return state.CommandResult{
		Success:         true,
		LocationChanged: true,
		Message:         "You hold the blue and red crystals together. They begin to glow intensely, and a beam of purple light shoots to the floor, revealing a hidden opening!",
	}
}

// useFlashlight toggles the light and with it the dark passage between
// the pool and the waterfall chamber.
func useFlashlight(_ []string, gs *state.GameState, adv *adventure.Adventure) state.CommandResult {
	poolExit := func() *adventure.Exit {
		if loc := adv.GetLocation("underground_pool"); loc != nil {
			return loc.Exits["north"]
		}
		return nil
	}

	if gs.GetFlag("flashlightOn") {
		gs.SetFlag("flashlightOn", false)
		if gs.CurrentLocation == "waterfall_chamber" {
			if exit := poolExit(); exit != nil {
				exit.Blocked = true
			}
		}
		return state.Ok("You turn off the flashlight.")
	}

	gs.SetFlag("flashlightOn", true)
	if exit := poolExit(); exit != nil {
		exit.Blocked = false
	}
	return state.Ok("You turn on the flashlight, illuminating the cave around you.")
}

// fillBottle swaps the empty bottle for a water bottle in place when the
// player is near water.
func fillBottle(_ []string, gs *state.GameState, _ *adventure.Adventure) state.CommandResult {
	if gs.CurrentLocation != "underground_pool" && gs.CurrentLocation != "waterfall_chamber" {
		return state.Fail("There's nothing here to fill the bottle with.")
	}
	gs.ReplaceItem("empty_bottle", "water_bottle")
	return state.CommandResult{
		Success:          true,
		InventoryChanged: true,
		Message:          "You fill the bottle with clear cave water.",
	}
}

// drinkWater swaps the water bottle back for an empty one in place.
func drinkWater(_ []string, gs *state.GameState, _ *adventure.Adventure) state.CommandResult {
	gs.ReplaceItem("water_bottle", "empty_bottle")
	return state.CommandResult{
		Success:          true,
		InventoryChanged: true,
		Message:          "You drink the cool cave water. It's refreshing!",
	}
}

func intPtr(v int) *int { return &v }
