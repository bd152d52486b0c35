package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
)

func TestLoadKeyConfig(t *testing.T) {
	data := []byte(`
[runes]
x = "move_left"
space = "none"

[keys]
"Ctrl+P" = "toggle_pause"
`)
	override, err := LoadKeyConfig(data)
	if err != nil {
		t.Fatalf("LoadKeyConfig: %v", err)
	}

	if got := override.Runes['x']; got != move(core.DirLeft) {
		t.Errorf("x = %+v, want move left", got)
	}
	if got := override.Keys[tcell.KeyCtrlP]; got.Type != IntentTogglePause {
		t.Errorf("ctrl+p = %v, want toggle pause", got.Type)
	}

	merged := MergeKeyTable(DefaultKeyTable(), override)
	if _, ok := merged.Runes[' ']; ok {
		t.Error("space still bound after none override")
	}
	if got := merged.Runes['h']; got != move(core.DirLeft) {
		t.Error("default binding lost during merge")
	}
	if _, ok := DefaultKeyTable().Runes['x']; ok {
		t.Error("merge mutated the defaults")
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad toml", "[runes\n", "keymap parse"},
		{"unknown action", "[runes]\nx = \"jump\"\n", "unknown action"},
		{"unknown key", "[keys]\nf13 = \"quit\"\n", "unknown key name"},
		{"multi char rune", "[runes]\nxy = \"quit\"\n", "invalid rune key"},
		{"unknown section", "[mouse]\nleft = \"quit\"\n", "unknown entry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadKeyConfig([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestLoadKeyTable(t *testing.T) {
	table, err := LoadKeyTable("")
	if err != nil || len(table.Runes) != len(DefaultKeyTable().Runes) {
		t.Fatalf("empty path should give defaults, err=%v", err)
	}

	path := filepath.Join(t.TempDir(), "keys.toml")
	if err := os.WriteFile(path, []byte("[runes]\nz = \"quit\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	table, err = LoadKeyTable(path)
	if err != nil {
		t.Fatalf("LoadKeyTable: %v", err)
	}
	if table.Runes['z'].Type != IntentQuit {
		t.Error("file binding not applied")
	}

	if _, err := LoadKeyTable(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file should be an error")
	}
}

func TestActionNamesResolve(t *testing.T) {
	for _, name := range ActionNames() {
		if _, ok := ActionEntry(name); !ok {
			t.Errorf("listed action %q does not resolve", name)
		}
	}
}
