package tui

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Scopes name where a binding applies. The grid is the base scope;
// each modal screen declares its own.
const (
	scopeDashboard = "dashboard"
	scopePicker    = "screen:picker"
	scopeCommand   = "screen:command"
	scopeForm      = "screen:form"
	scopeConfirm   = "screen:confirm"
	scopeInput     = "screen:input"
)

// maxNumberedTabs is how many dashboards get a direct number key.
const maxNumberedTabs = 9

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

// BindingsForScope lists the bindings active in scope, in registration
// order. The footer renders these as hints.
func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}

// DefaultKeyBindings is the stock key map for the dashboard grid.
// Number keys switch tabs directly; they carry no description so the
// footer stays readable.
func DefaultKeyBindings() []KeyBinding {
	bindings := []KeyBinding{
		{Keys: []string{"a"}, Action: "add-widget", Description: "add", Scopes: []string{scopeDashboard}},
		{Keys: []string{"enter", "e"}, Action: "edit-widget", Description: "edit", Scopes: []string{scopeDashboard}},
		{Keys: []string{"x", "delete"}, Action: "remove-widget", Description: "remove", Scopes: []string{scopeDashboard}},
		{Keys: []string{"m"}, Action: "move-widget", Description: "move to", Scopes: []string{scopeDashboard}},
		{Keys: []string{"left", "h"}, Action: "grid-left", Description: "", Scopes: []string{scopeDashboard}},
		{Keys: []string{"right", "l"}, Action: "grid-right", Description: "", Scopes: []string{scopeDashboard}},
		{Keys: []string{"up", "k"}, Action: "grid-up", Description: "", Scopes: []string{scopeDashboard}},
		{Keys: []string{"down", "j"}, Action: "grid-down", Description: "", Scopes: []string{scopeDashboard}},
		{Keys: []string{"["}, Action: "swap-left", Description: "", Scopes: []string{scopeDashboard}},
		{Keys: []string{"]"}, Action: "swap-right", Description: "", Scopes: []string{scopeDashboard}},
		{Keys: []string{"tab"}, Action: "next-dashboard", Description: "next tab", Scopes: []string{scopeDashboard}},
		{Keys: []string{"shift+tab"}, Action: "prev-dashboard", Description: "", Scopes: []string{scopeDashboard}},
		{Keys: []string{"n"}, Action: "new-dashboard", Description: "new tab", Scopes: []string{scopeDashboard}},
		{Keys: []string{"r"}, Action: "rename-dashboard", Description: "rename", Scopes: []string{scopeDashboard}},
		{Keys: []string{"c"}, Action: "set-columns", Description: "columns", Scopes: []string{scopeDashboard}},
		{Keys: []string{"s"}, Action: "open-settings", Description: "settings", Scopes: []string{scopeDashboard}},
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Scopes: []string{scopeDashboard}},
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{scopeDashboard}},
	}
	for i := 1; i <= maxNumberedTabs; i++ {
		bindings = append(bindings, KeyBinding{
			Keys:   []string{fmt.Sprintf("%d", i)},
			Action: fmt.Sprintf("switch-tab-%d", i),
			Scopes: []string{scopeDashboard},
		})
	}
	return bindings
}
