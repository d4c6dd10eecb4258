package catalog

import (
	"testing"

	"sobi/internal/core"
)

func TestArchetypes_Catalogue(t *testing.T) {
	list := Archetypes()
	if len(list) != 6 {
		t.Fatalf("catalogue has %d archetypes, want 6", len(list))
	}

	seen := make(map[string]bool)
	for _, a := range list {
		if a.ID == "" || a.Name == "" {
			t.Errorf("archetype missing id or name: %+v", a)
		}
		if seen[a.ID] {
			t.Errorf("duplicate archetype id %q", a.ID)
		}
		seen[a.ID] = true

		if a.Pattern.IsZero() {
			t.Errorf("%s: pattern must not be the zero vector", a.ID)
		}
		if len(a.Cards) > 3 {
			t.Errorf("%s: %d cards, at most 3 allowed", a.ID, len(a.Cards))
		}
		if len(a.Traits) == 0 || len(a.Tips) == 0 {
			t.Errorf("%s: traits and tips must be present", a.ID)
		}
	}
}

// Catalogue order is part of the matcher's tie-break contract.
func TestArchetypes_StableOrder(t *testing.T) {
	want := []string{"tiger", "horse", "panda", "bird", "dog", "cat"}
	for i, a := range Archetypes() {
		if a.ID != want[i] {
			t.Fatalf("archetype %d is %q, want %q", i, a.ID, want[i])
		}
	}
}

func TestArchetypeByID(t *testing.T) {
	a, ok := ArchetypeByID("panda")
	if !ok || a.Name != "푸드판다" {
		t.Errorf("ArchetypeByID(panda) = %+v, %v", a, ok)
	}

	if _, ok := ArchetypeByID("dragon"); ok {
		t.Error("unknown id should not resolve")
	}
}

func TestValidateSelections(t *testing.T) {
	if !ValidateSelections(DefaultSelections()) {
		t.Error("default selections must validate")
	}

	bad := DefaultSelections()
	bad.Region = "화성"
	if ValidateSelections(bad) {
		t.Error("unknown region should not validate")
	}
}

func TestPeerTablesLookup(t *testing.T) {
	tables := DefaultPeerTables()

	if v := tables.Lookup(core.GroupGender, "male", core.CategoryFood); v == 0 {
		t.Error("male 식비 average should be present")
	}
	if v := tables.Lookup(core.GroupAge, "25-29", core.CategoryFinance); v != 0 {
		t.Errorf("missing combination should read 0, got %d", v)
	}
	if v := tables.Lookup(core.GroupRegion, "없는지역", core.CategoryFood); v != 0 {
		t.Errorf("unknown region should read 0, got %d", v)
	}
	if v := tables.Lookup(core.PeerGroup("unknown"), "male", core.CategoryFood); v != 0 {
		t.Errorf("unknown group should read 0, got %d", v)
	}
}

func TestSelectionLabel(t *testing.T) {
	if got := SelectionLabel(core.GroupOccupation, "대학생·대학원생"); got != "대학생·대학원생(휴학생 포함)" {
		t.Errorf("occupation label = %q", got)
	}
	// Unknown values fall back to the raw value rather than erroring.
	if got := SelectionLabel(core.GroupGender, "unknown"); got != "unknown" {
		t.Errorf("fallback label = %q", got)
	}
}
