// Package outputname generates collision-free output filenames for
// variant outputs, one per compiled plan. It is adapted from a
// collision resolver that avoided clobbering same-named TV/movie
// renames: here the "owner" is a (jobID, planID) pair instead of an
// input file, and the generated name encodes the job and plan instead of
// parsed episode metadata.
package outputname

import (
	"fmt"
	"path/filepath"
	"sync"
)

// Generator tracks claimed output paths and resolves collisions by
// appending a numeric suffix, using an owner map plus a per-name
// counter. Safe for concurrent
// use across jobs running in parallel (see internal/job).
type Generator struct {
	mu       sync.Mutex
	owners   map[string]string // output path -> "jobID/planID" that claimed it
	counters map[string]int    // base output path -> next suffix counter
}

// New returns a ready-to-use Generator.
func New() *Generator {
	return &Generator{
		owners:   make(map[string]string),
		counters: make(map[string]int),
	}
}

// Base builds the canonical requested filename for one output of a job:
// "<jobSlug>_variant-<NN>_<planID8>.<ext>", zero-padded to two digits.
func Base(jobSlug string, outputIndex int, planID, ext string) string {
	short := planID
	if len(short) > 8 {
		short = short[:8]
	}
	if ext == "" {
		ext = "mp4"
	}
	return fmt.Sprintf("%s_variant-%02d_%s.%s", jobSlug, outputIndex, short, ext)
}

// Resolve returns the final output path for the given (jobID, planID)
// under dir. If the requested name is unclaimed (or already claimed by
// the same owner), it is returned as-is; otherwise a "-dupN" suffix is
// appended before the extension until a free name is found.
func (g *Generator) Resolve(jobID, planID, dir, requestedName string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	owner := jobID + "/" + planID
	requested := filepath.Join(dir, requestedName)

	if claimedBy, exists := g.owners[requested]; !exists || claimedBy == owner {
		g.owners[requested] = owner
		return requested
	}

	ext := filepath.Ext(requestedName)
	stem := requestedName[:len(requestedName)-len(ext)]

	counter := g.counters[requested]
	if counter == 0 {
		counter = 1
	}

	for {
		candidateName := fmt.Sprintf("%s-dup%d%s", stem, counter, ext)
		candidate := filepath.Join(dir, candidateName)
		claimedBy, exists := g.owners[candidate]
		if !exists || claimedBy == owner {
			g.counters[requested] = counter + 1
			g.owners[candidate] = owner
			return candidate
		}
		counter++
	}
}
