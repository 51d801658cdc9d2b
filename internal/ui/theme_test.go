package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 2 {
		t.Fatalf("ThemeNames() returned %d names, want 2", len(names))
	}
	if names[0] != "Fiesta" || names[1] != "Noche" {
		t.Fatalf("ThemeNames() = %v, want [Fiesta Noche]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Fiesta"); got != "Noche" {
		t.Fatalf("NextTheme(Fiesta) = %q, want Noche", got)
	}
	if got := NextTheme("Noche"); got != "Fiesta" {
		t.Fatalf("NextTheme(Noche) = %q, want Fiesta", got)
	}
	if got := NextTheme("Unknown"); got != "Fiesta" {
		t.Fatalf("NextTheme(Unknown) = %q, want Fiesta", got)
	}
}

func TestGetTheme(t *testing.T) {
	if got := GetTheme("Noche").Name; got != "Noche" {
		t.Fatalf("GetTheme(Noche).Name = %q, want Noche", got)
	}
	if got := GetTheme("Dracula").Name; got != "Fiesta" {
		t.Fatalf("GetTheme(Dracula).Name = %q, want Fiesta (fallback)", got)
	}
}

func TestThemesColorEveryState(t *testing.T) {
	states := []string{"available", "reserved", "purchased", "open", "funded"}
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, state := range states {
			if th.StateColors[state] == "" {
				t.Fatalf("theme %s has no color for %s", name, state)
			}
		}
	}
}
