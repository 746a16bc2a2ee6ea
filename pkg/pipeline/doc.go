// Package pipeline ties the index, the ruleset engine, storage and targets
// together.
//
// A Pipeline owns the one index document loaded from disk. Reload replaces
// it wholesale. Every mutation works on a copy, saves the copy and only then
// swaps it in, so a failed save leaves the loaded document as it was.
package pipeline
