package engine

import (
	"reflect"
	"testing"
)

func TestSuggestVerbPrefix(t *testing.T) {
	adv := testWorld()
	gs := newTestState(adv)

	tests := []struct {
		name    string
		partial string
		want    []string
	}{
		{
			name:    "empty input",
			partial: "",
			want:    nil,
		},
		{
			name:    "unique prefix",
			partial: "ta",
			want:    []string{"take"},
		},
		{
			name:    "shared prefix",
			partial: "e",
			want:    []string{"examine", "east", "e"},
		},
		{
			name:    "no match",
			partial: "zz",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(tt.partial, gs, adv)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Suggest(%q) = %v, want %v", tt.partial, got, tt.want)
			}
		})
	}
}

func TestSuggestCapped(t *testing.T) {
	adv := testWorld()
	gs := newTestState(adv)

	// Single-letter "s" matches many vocabulary entries.
	got := Suggest("s", gs, adv)
	if len(got) > MaxSuggestions {
		t.Errorf("got %d suggestions, cap is %d", len(got), MaxSuggestions)
	}
}

func TestSuggestDirections(t *testing.T) {
	adv := testWorld()
	gs := newTestState(adv)

	got := Suggest("go ", gs, adv)
	if len(got) != 5 {
		t.Fatalf("go suggestions = %v", got)
	}
	if got[0] != "go north" {
		t.Errorf("first = %q, want 'go north'", got[0])
	}

	got = Suggest("go s", gs, adv)
	want := []string{"go south"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggest('go s') = %v, want %v", got, want)
	}
}

func TestSuggestObjects(t *testing.T) {
	adv := testWorld()
	gs := newTestState(adv)

	got := Suggest("take br", gs, adv)
	want := []string{"take brass lamp"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggest('take br') = %v, want %v", got, want)
	}

	// Hidden items are never suggested.
	got = Suggest("take pe", gs, adv)
	if got != nil {
		t.Errorf("hidden pearl suggested: %v", got)
	}

	// Multi-word names complete from the last word.
	got = Suggest("examine brass l", gs, adv)
	want = []string{"examine brass lamp"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggest('examine brass l') = %v, want %v", got, want)
	}
}

func TestSuggestDropUsesInventory(t *testing.T) {
	adv := testWorld()
	gs := newTestState(adv)

	// Nothing carried, nothing named "pearl" visible.
	got := Suggest("drop pe", gs, adv)
	if got != nil {
		t.Errorf("drop with empty inventory = %v", got)
	}

	gs.AddItem("pearl")
	got = Suggest("drop pe", gs, adv)
	want := []string{"drop pearl"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggest('drop pe') = %v, want %v", got, want)
	}
}

func TestVocabularyIsACopy(t *testing.T) {
	v := Vocabulary()
	if len(v) == 0 {
		t.Fatal("empty vocabulary")
	}
	v[0] = "mutated"
	if Vocabulary()[0] == "mutated" {
		t.Error("Vocabulary exposes internal slice")
	}
}
