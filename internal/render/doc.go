// Package render contains dumb drawing primitives for the dashboard.
//
// Allowed here:
// - stateless composition helpers (pane chrome, stacks, popup overlay)
// - the rune canvas and glyph tables the clock faces draw with
//
// Not allowed here:
// - key handling, app state transitions, or widget configuration logic
package render
