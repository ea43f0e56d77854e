// Package layout implements an immediate-mode UI layout engine.
//
// Each frame the caller declares a tree of elements between BeginFrame and
// EndFrame; the engine computes sizes, positions, text wrapping, and
// z-ordering, and returns an ordered list of render commands for an external
// backend to draw. No state survives a frame beyond what the caller
// re-declares; all per-frame data lives in a reusable arena so steady-state
// frames allocate nothing.
package layout
