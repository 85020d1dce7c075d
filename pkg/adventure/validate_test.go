package adventure

import (
	"strings"
	"testing"
)

// validAdventure is a minimal adventure that passes validation. Tests
// break one thing at a time.
func validAdventure() *Adventure {
	return &Adventure{
		ID:              "test",
		Title:           "Test",
		Author:          "tests",
		InitialLocation: "start",
		IntroText:       "Begin.",
		Locations: map[string]*Location{
			"start": {
				Name: "Start",
				Exits: map[string]*Exit{
					"north": {Destination: "end"},
				},
				Items: []string{"lamp"},
			},
			"end": {
				Name: "End",
				Exits: map[string]*Exit{
					"south": {Destination: "start"},
				},
			},
		},
		Items: map[string]*Item{
			"lamp": {Name: "lamp", Description: "A lamp."},
		},
	}
}

func TestValidateAccepts(t *testing.T) {
	if err := validAdventure().Validate(); err != nil {
		t.Fatalf("valid adventure rejected: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(a *Adventure)
		wantMsg string
	}{
		{
			name:    "missing id",
			mutate:  func(a *Adventure) { a.ID = "" },
			wantMsg: "missing id",
		},
		{
			name:    "missing title",
			mutate:  func(a *Adventure) { a.Title = "" },
			wantMsg: "missing title",
		},
		{
			name:    "missing author",
			mutate:  func(a *Adventure) { a.Author = "" },
			wantMsg: "missing author",
		},
		{
			name:    "missing initial location",
			mutate:  func(a *Adventure) { a.InitialLocation = "" },
			wantMsg: "missing initial_location",
		},
		{
			name:    "missing intro text",
			mutate:  func(a *Adventure) { a.IntroText = "" },
			wantMsg: "missing intro_text",
		},
		{
			name:    "no locations",
			mutate:  func(a *Adventure) { a.Locations = nil },
			wantMsg: "no locations",
		},
		{
			name:    "unknown initial location",
			mutate:  func(a *Adventure) { a.InitialLocation = "nowhere" },
			wantMsg: `initial_location "nowhere" does not exist`,
		},
		{
			name: "exit to unknown location",
			mutate: func(a *Adventure) {
				a.Locations["start"].Exits["east"] = &Exit{Destination: "void"}
			},
			wantMsg: `leads to unknown location "void"`,
		},
		{
			name: "exit without destination",
			mutate: func(a *Adventure) {
				a.Locations["start"].Exits["east"] = &Exit{}
			},
			wantMsg: "has no destination",
		},
		{
			name: "location references unknown item",
			mutate: func(a *Adventure) {
				a.Locations["start"].Items = append(a.Locations["start"].Items, "ghost")
			},
			wantMsg: `references unknown item "ghost"`,
		},
		{
			name: "location without name",
			mutate: func(a *Adventure) {
				a.Locations["start"].Name = ""
			},
			wantMsg: "has no name",
		},
		{
			name: "container holds unknown item",
			mutate: func(a *Adventure) {
				a.Items["lamp"].Contains = []string{"nothing"}
			},
			wantMsg: `contains unknown item "nothing"`,
		},
		{
			name: "key references unknown item",
			mutate: func(a *Adventure) {
				a.Items["lamp"].KeyID = "skeleton_key"
			},
			wantMsg: `key_id references unknown item "skeleton_key"`,
		},
		{
			name: "duplicate achievement ids",
			mutate: func(a *Adventure) {
				a.Achievements = []Achievement{
					{ID: "dup", Title: "One"},
					{ID: "dup", Title: "Two"},
				}
			},
			wantMsg: `duplicate achievement id "dup"`,
		},
		{
			name: "unreachable location",
			mutate: func(a *Adventure) {
				a.Locations["island"] = &Location{Name: "Island"}
			},
			wantMsg: `location "island" is unreachable`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validAdventure()
			tt.mutate(a)
			err := a.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestValidateReachabilityIgnoresBlockedAndHidden(t *testing.T) {
	// Blocked and conditional exits still count for reachability: they
	// can open during play.
	a := validAdventure()
	a.Locations["end"].Exits["north"] = &Exit{
		Destination: "vault",
		Blocked:     true,
	}
	a.Locations["vault"] = &Location{Name: "Vault"}

	if err := a.Validate(); err != nil {
		t.Errorf("blocked-only path rejected: %v", err)
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	a := validAdventure()
	a.ID = ""
	a.Title = ""
	a.Locations["start"].Items = append(a.Locations["start"].Items, "ghost")

	err := a.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("error type = %T", err)
	}
	if len(verr.Problems) != 3 {
		t.Errorf("Problems = %v, want 3 entries", verr.Problems)
	}
}

func TestValidateMetadata(t *testing.T) {
	a := &Adventure{ID: "x", Title: "X", Author: "y"}
	if err := a.ValidateMetadata(); err != nil {
		t.Errorf("metadata-only check rejected: %v", err)
	}

	a.Author = ""
	if err := a.ValidateMetadata(); err == nil {
		t.Error("missing author accepted")
	}
}

func TestItemVisible(t *testing.T) {
	a := validAdventure()

	visible := &Item{Name: "rock"}
	if !a.ItemVisible(visible, nil) {
		t.Error("plain item not visible")
	}

	hidden := &Item{Name: "pearl", Hidden: true}
	if a.ItemVisible(hidden, nil) {
		t.Error("hidden item without condition is visible")
	}

	if a.ItemVisible(nil, nil) {
		t.Error("nil item is visible")
	}
}
