// Package clip holds the read-only input inventory the planner and
// compiler consume: Clip, Group, and the Inventory lookup. The core never
// probes files — durations are authoritative and supplied by the caller.
package clip

import (
	"fmt"
	"os"
)

// Clip is one unit of input video. Immutable once registered for a job.
type Clip struct {
	ID           string
	Path         string
	Duration     float64 // seconds, positive finite
	OriginalName string
	GroupID      string
}

// Group is an ordered, disjoint bucket of clips. Order induces the strict
// total ordering used by "strict" group-mixing mode.
type Group struct {
	ID    string
	Name  string
	Order int
	Clips []Clip
}

// Inventory is the read-only id -> Clip lookup the planner and compiler
// consume. It must be pre-populated by the caller.
type Inventory struct {
	byID map[string]Clip
}

// NewInventory builds an Inventory from a flat clip list. Later entries
// with a duplicate id overwrite earlier ones, matching a plain map build.
func NewInventory(clips []Clip) *Inventory {
	inv := &Inventory{byID: make(map[string]Clip, len(clips))}
	for _, c := range clips {
		inv.byID[c.ID] = c
	}
	return inv
}

// Get resolves a clip id. The second return value is false when the id is
// not present in the inventory.
func (inv *Inventory) Get(id string) (Clip, bool) {
	c, ok := inv.byID[id]
	return c, ok
}

// Len reports how many clips are registered.
func (inv *Inventory) Len() int {
	return len(inv.byID)
}

// ValidationError enumerates every offending id found by Validate in one
// pass, rather than aborting on the first bad entry.
type ValidationError struct {
	Missing    []string // ids with no entry in the inventory
	Unreadable []string // ids whose resolved Clip.Path failed an os.Stat
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("inventory validation failed: %d missing, %d unreadable", len(e.Missing), len(e.Unreadable))
}

// Validate resolves every id in order, stats each resolved Clip's file, and
// returns a single ValidationError naming every offending id. Returns nil
// when every id resolves to a clip whose file exists.
func (inv *Inventory) Validate(ids []string) error {
	var verr ValidationError
	for _, id := range ids {
		c, ok := inv.byID[id]
		if !ok {
			verr.Missing = append(verr.Missing, id)
			continue
		}
		if _, err := os.Stat(c.Path); err != nil {
			verr.Unreadable = append(verr.Unreadable, id)
		}
	}
	if len(verr.Missing) == 0 && len(verr.Unreadable) == 0 {
		return nil
	}
	return &verr
}
