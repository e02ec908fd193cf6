// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (frame chrome, stacks, overlay compositor, button bars)
//
// Not allowed here:
// - key handling, surface lifecycle, registry state, or tab policy
package widgets
