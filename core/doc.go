// Package core contains the shell's contracts and state orchestration.
//
// Allowed here:
// - surface lifecycle (panels, auxiliary windows) and the window manager
// - tab strip policy, button dispatch, key registry, model routing
// - persistence contracts for window state (not their storage backends)
//
// Not allowed here:
// - pillar content implementations
// - low-level widget rendering primitives
package core
