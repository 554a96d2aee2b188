package ui

import "testing"

func TestGetTheme_KnownAndFallback(t *testing.T) {
	if got := GetTheme("Dracula"); got.Name != "Dracula" {
		t.Fatalf("GetTheme(Dracula).Name = %q", got.Name)
	}
	if got := GetTheme("nope"); got.Name != themes[0].Name {
		t.Fatalf("GetTheme(nope).Name = %q, want %q", got.Name, themes[0].Name)
	}
}

func TestNextTheme_CyclesThroughAll(t *testing.T) {
	seen := map[string]bool{}
	name := themes[0].Name
	for range themes {
		seen[name] = true
		name = NextTheme(name)
	}
	if len(seen) != len(themes) {
		t.Fatalf("cycle visited %d themes, want %d", len(seen), len(themes))
	}
	if name != themes[0].Name {
		t.Fatalf("cycle did not wrap: ended on %q", name)
	}
}

func TestThemes_HaveDistinctNames(t *testing.T) {
	names := map[string]bool{}
	for _, theme := range themes {
		if names[theme.Name] {
			t.Fatalf("duplicate theme name %q", theme.Name)
		}
		names[theme.Name] = true
	}
}
