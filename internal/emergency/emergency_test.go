package emergency

import (
	"strings"
	"testing"
)

func TestNamesOrder(t *testing.T) {
	want := []string{"can't suction", "can't ventilate", "o2 sat drop", "decannulation", "hemoptysis"}
	got := Names()
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
}

func TestValid(t *testing.T) {
	for _, name := range append(Names(), "") {
		if !Valid(name) {
			t.Errorf("Valid(%q) = false", name)
		}
	}
	if Valid("choking") {
		t.Error("unknown scenario should be invalid")
	}
}

func TestInstructionsNumbered(t *testing.T) {
	got := Instructions(Hemoptysis, 8)
	lines := strings.Split(got, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %q", got)
	}
	if lines[0] != "1. Position patient to protect airway" || lines[4] != "5. Prepare for bronchoscopy" {
		t.Fatalf("unexpected instructions %q", got)
	}
}

func TestInstructionsSizeETT(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		want    string
		notWant string
	}{
		{CantVentilate, 8, "4. Consider 8.0 endotracheal tube insertion", "6.0"},
		{Decannulation, 10, "5. Consider 10.0 endotracheal tube if needed", "6.0"},
		{Decannulation, 0, "Consider 6.0 endotracheal tube if needed", ""},
	}
	for _, tt := range tests {
		got := Instructions(tt.name, tt.size)
		if !strings.Contains(got, tt.want) {
			t.Errorf("Instructions(%q, %d) missing %q: %q", tt.name, tt.size, tt.want, got)
		}
		if tt.notWant != "" && strings.Contains(got, tt.notWant) {
			t.Errorf("Instructions(%q, %d) still contains %q", tt.name, tt.size, tt.notWant)
		}
	}
}

func TestInstructionsOtherScenariosUnsized(t *testing.T) {
	got := Instructions(CantSuction, 8)
	if strings.Contains(got, "8.0") {
		t.Fatalf("unexpected sizing in %q", got)
	}
}

func TestInstructionsUnknown(t *testing.T) {
	if got := Instructions("unknown", 6); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	s, ok := Lookup(CantSuction)
	if !ok {
		t.Fatal("expected scenario")
	}
	s.Instructions[0] = "mutated"
	again, _ := Lookup(CantSuction)
	if again.Instructions[0] == "mutated" {
		t.Fatal("Lookup must return an independent copy")
	}
}
