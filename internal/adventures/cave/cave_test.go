package cave

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/modernzork/adventure-engine/pkg/session"
)

func TestNewIsValid(t *testing.T) {
	if err := New().Validate(); err != nil {
		t.Fatalf("built-in adventure invalid: %v", err)
	}
}

func TestNewYieldsIndependentWorlds(t *testing.T) {
	a := New()
	b := New()

	a.Locations["cave_entrance"].RemoveLocationItem("flashlight")
	a.Items["flashlight"].Name = "mutated"

	if !b.Locations["cave_entrance"].HasLocationItem("flashlight") {
		t.Error("location mutation leaked between copies")
	}
	if b.Items["flashlight"].Name != "flashlight" {
		t.Error("item mutation leaked between copies")
	}
}

func newCaveSession(t *testing.T) *session.Session {
	t.Helper()
	s, err := session.New(context.Background(), New, session.Config{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	return s
}

func TestFlashlightUnblocksDarkPassage(t *testing.T) {
	ctx := context.Background()
	s := newCaveSession(t)

	s.HandleCommand(ctx, "take flashlight")
	s.HandleCommand(ctx, "north")
	s.HandleCommand(ctx, "west")

	// The dark passage is blocked until the flashlight is on.
	tr := s.HandleCommand(ctx, "north")
	if tr.Result.Success {
		t.Fatalf("entered dark passage without light: %+v", tr.Result)
	}
	if tr.Result.Message != "The passage is too dark to navigate safely without more light." {
		t.Errorf("blocked message = %q", tr.Result.Message)
	}

	tr = s.HandleCommand(ctx, "use flashlight")
	if !tr.Result.Success {
		t.Fatalf("use flashlight = %+v", tr.Result)
	}
	if !s.State.GetFlag("flashlightOn") {
		t.Error("flashlightOn flag not set")
	}

	tr = s.HandleCommand(ctx, "north")
	if !tr.Result.Success || s.State.CurrentLocation != "waterfall_chamber" {
		t.Errorf("after light, north = %+v at %q", tr.Result, s.State.CurrentLocation)
	}
}

func TestAlignCrystalsRevealsHiddenChamber(t *testing.T) {
	ctx := context.Background()
	s := newCaveSession(t)

	s.HandleCommand(ctx, "north")
	s.HandleCommand(ctx, "east")
	s.HandleCommand(ctx, "north")

	// The way down is hidden until the crystals are aligned.
	tr := s.HandleCommand(ctx, "down")
	if tr.Result.Success {
		t.Fatalf("descended without aligning: %+v", tr.Result)
	}

	// Alignment needs both crystals in hand.
	tr = s.HandleCommand(ctx, "align crystals")
	if tr.Result.Success {
		t.Fatalf("aligned without crystals: %+v", tr.Result)
	}

	s.HandleCommand(ctx, "take blue crystal")
	s.HandleCommand(ctx, "take red crystal")
	tr = s.HandleCommand(ctx, "align crystals")
	if !tr.Result.Success {
		t.Fatalf("align with crystals = %+v", tr.Result)
	}
	if !s.State.GetFlag("crystalAligned") {
		t.Error("crystalAligned flag not set")
	}

	tr = s.HandleCommand(ctx, "down")
	if !tr.Result.Success || s.State.CurrentLocation != "hidden_chamber" {
		t.Errorf("down after align = %+v at %q", tr.Result, s.State.CurrentLocation)
	}
}

func TestFillAndDrinkBottle(t *testing.T) {
	ctx := context.Background()
	s := newCaveSession(t)

	s.HandleCommand(ctx, "north")
	s.HandleCommand(ctx, "west")
	s.HandleCommand(ctx, "take empty bottle")

	// Filling works next to water, by display name or item ID.
	tr := s.HandleCommand(ctx, "use empty bottle")
	if tr.Result.Message != "You fill the bottle with clear cave water." {
		t.Fatalf("fill = %+v", tr.Result)
	}
	if !s.State.HasItem("water_bottle") || s.State.HasItem("empty_bottle") {
		t.Errorf("inventory after fill = %v", s.State.Inventory)
	}

	tr = s.HandleCommand(ctx, "use water_bottle")
	if tr.Result.Message != "You drink the cool cave water. It's refreshing!" {
		t.Fatalf("drink = %+v", tr.Result)
	}
	if !s.State.HasItem("empty_bottle") {
		t.Errorf("inventory after drink = %v", s.State.Inventory)
	}

	// Filling away from water fails.
	s.HandleCommand(ctx, "east")
	tr = s.HandleCommand(ctx, "use empty bottle")
	if tr.Result.Success {
		t.Errorf("filled bottle in dry cavern: %+v", tr.Result)
	}
}

func TestFullWalkthroughVictory(t *testing.T) {
	ctx := context.Background()
	s := newCaveSession(t)

	commands := []string{
		"take flashlight",
		"north",
		"east",
		"north",
		"take blue crystal",
		"take red crystal",
		"align crystals",
		"down",
		"take ancient amulet",
		"up",
		"south",
		"west",
		"south",
	}

	var victory bool
	for _, cmd := range commands {
		tr := s.HandleCommand(ctx, cmd)
		if !tr.Result.Success {
			t.Fatalf("command %q failed: %+v", cmd, tr.Result)
		}
		if tr.Victory {
			victory = tr.Victory
			if tr.EndText == "" {
				t.Error("victory without end text")
			}
		}
	}

	if !victory {
		t.Fatal("walkthrough did not win")
	}
	if !s.State.GameEnded {
		t.Error("GameEnded not set")
	}
	// 10 for the crystals, 50 for the amulet.
	if s.State.Score != 70 {
		t.Errorf("Score = %d, want 70", s.State.Score)
	}

	// 13 moves is well under the secret speed threshold.
	if !s.Ach.Record().AdventureUnlocked(ID, "speed_runner") {
		t.Error("speed_runner not unlocked")
	}
	if !s.Ach.Record().AdventureUnlocked(ID, "treasure_hunter") {
		t.Error("treasure_hunter not unlocked")
	}
}

func TestPlotEventsAlongTheWay(t *testing.T) {
	ctx := context.Background()
	s := newCaveSession(t)

	tr := s.HandleCommand(ctx, "north")
	if len(tr.JournalEntries) != 1 {
		t.Fatalf("entering the cavern wrote %d journal entries", len(tr.JournalEntries))
	}
	if !s.State.TriggeredEvents["enter_cave"] {
		t.Error("enter_cave not recorded as triggered")
	}
}
