// Package gooey provides an immediate-mode UI layout engine for Go.
//
// Users import this single package for the complete public API: the engine
// context, element declarations, sizing policies, and render commands. The
// implementation lives in pkg/layout; this package re-exports it.
package gooey
