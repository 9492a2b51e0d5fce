package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"ctrl+k"}, Action: "palette", Scopes: []string{scopeDashboard}},
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"*"}},
	})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", scopeDashboard) {
		t.Fatalf("expected ctrl+k in dashboard scope")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", scopeForm) {
		t.Fatalf("did not expect ctrl+k in form scope")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, "quit", scopeForm) {
		t.Fatalf("expected q to match wildcard scope")
	}
}

func TestDefaultBindingsCoverBuilderActions(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	checks := []struct {
		key    tea.KeyMsg
		action string
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, "add-widget"},
		{tea.KeyMsg{Type: tea.KeyEnter}, "edit-widget"},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, "remove-widget"},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}}, "move-widget"},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}}, "grid-left"},
		{tea.KeyMsg{Type: tea.KeyTab}, "next-dashboard"},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}, "new-dashboard"},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}, "open-settings"},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}}, "switch-tab-3"},
	}
	for _, c := range checks {
		if !reg.IsAction(c.key, c.action, scopeDashboard) {
			t.Errorf("key %q should trigger %s", c.key.String(), c.action)
		}
	}
}

func TestNumberedTabBindingsHaveNoDescription(t *testing.T) {
	for _, b := range DefaultKeyBindings() {
		if len(b.Keys) == 1 && b.Keys[0] >= "1" && b.Keys[0] <= "9" && b.Description != "" {
			t.Errorf("number key %s should carry no footer description", b.Keys[0])
		}
	}
}
