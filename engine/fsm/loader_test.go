package fsm

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleTable = `
initial: Playing
states:
  Playing:
    transitions: [Paused, Inventory]
  Paused:
    transitions: [Playing, Inventory, Playing]
  Inventory:
    transitions: [Playing]
`

func TestParseTable(t *testing.T) {
	table, err := ParseTable([]byte(sampleTable))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if table.Initial() != "Playing" {
		t.Errorf("initial = %s", table.Initial())
	}
	if got := strings.Join(table.States(), ","); got != "Inventory,Paused,Playing" {
		t.Errorf("states = %s", got)
	}
	if got := strings.Join(table.Targets("Paused"), ","); got != "Inventory,Playing" {
		t.Errorf("paused targets = %s", got)
	}

	tests := []struct {
		from, to string
		want     bool
	}{
		{"Playing", "Paused", true},
		{"Playing", "Inventory", true},
		{"Inventory", "Playing", true},
		{"Inventory", "Paused", false},
		{"Playing", "Playing", false},
		{"Unknown", "Playing", false},
	}
	for _, tt := range tests {
		if got := table.Allows(tt.from, tt.to); got != tt.want {
			t.Errorf("Allows(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
		if got := table.Guard(tt.from)(tt.to); got != tt.want {
			t.Errorf("Guard(%s)(%s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestParseTable_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"malformed", "states: [", "unmarshal"},
		{"empty", "initial: A\n", "no states"},
		{"no initial", "states:\n  A: {}\n", "no initial"},
		{"unknown initial", "initial: B\nstates:\n  A: {}\n", "initial state 'B'"},
		{"unknown target", "initial: A\nstates:\n  A:\n    transitions: [Z]\n", "unknown target 'Z'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTable([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestLoadTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "modes.yaml")
	if err := os.WriteFile(path, []byte(sampleTable), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !table.Allows("Playing", "Paused") {
		t.Error("loaded table missing Playing -> Paused")
	}

	if _, err := LoadTable(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := LoadTable(dir); err == nil {
		t.Error("expected error for directory path")
	}
}

func TestLoadTableAuto(t *testing.T) {
	table, err := LoadTableAuto("", []byte(sampleTable))
	if err != nil {
		t.Fatalf("embedded: %v", err)
	}
	if table.Initial() != "Playing" {
		t.Errorf("initial = %s", table.Initial())
	}

	custom := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(custom, []byte("initial: Solo\nstates:\n  Solo: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	table, err = LoadTableAuto(custom, []byte(sampleTable))
	if err != nil {
		t.Fatalf("custom: %v", err)
	}
	if table.Initial() != "Solo" {
		t.Errorf("custom path ignored, initial = %s", table.Initial())
	}
}
