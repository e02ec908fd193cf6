package core

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

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

// Key scopes: the strip owns navigation until focus enters a surface.
const (
	ScopeStrip   = "strip"
	ScopeSurface = "surface"
	ScopePicker  = "picker"
)

// Shell actions.
const (
	ActionQuit         = "quit"
	ActionNextTab      = "next-tab"
	ActionPrevTab      = "prev-tab"
	ActionNextButton   = "next-button"
	ActionPrevButton   = "prev-button"
	ActionActivate     = "activate"
	ActionCycleFocus   = "cycle-focus"
	ActionUnfocus      = "unfocus"
	ActionCloseSurface = "close-surface"
	ActionToggleFloat  = "toggle-float"
	ActionJumpPicker   = "jump-picker"
)

// DefaultBindings is the shell's stock keymap; the command layer can append
// to it before the model is built.
func DefaultBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q", "ctrl+c"}, Action: ActionQuit, Description: "quit", Scopes: []string{ScopeStrip}},
		{Keys: []string{"]"}, Action: ActionNextTab, Description: "next tab", Scopes: []string{ScopeStrip}},
		{Keys: []string{"["}, Action: ActionPrevTab, Description: "prev tab", Scopes: []string{ScopeStrip}},
		{Keys: []string{"right", "l"}, Action: ActionNextButton, Description: "next button", Scopes: []string{ScopeStrip}},
		{Keys: []string{"left", "h"}, Action: ActionPrevButton, Description: "prev button", Scopes: []string{ScopeStrip}},
		{Keys: []string{"enter"}, Action: ActionActivate, Description: "open", Scopes: []string{ScopeStrip}},
		{Keys: []string{"tab"}, Action: ActionCycleFocus, Description: "cycle surfaces", Scopes: []string{ScopeStrip, ScopeSurface}},
		{Keys: []string{"esc"}, Action: ActionUnfocus, Description: "back to strip", Scopes: []string{ScopeSurface}},
		{Keys: []string{"ctrl+w"}, Action: ActionCloseSurface, Description: "close", Scopes: []string{ScopeSurface}},
		{Keys: []string{"ctrl+f"}, Action: ActionToggleFloat, Description: "dock/float", Scopes: []string{ScopeSurface}},
		{Keys: []string{"ctrl+j"}, Action: ActionJumpPicker, Description: "jump", Scopes: []string{ScopeStrip, ScopeSurface}},
	}
}
