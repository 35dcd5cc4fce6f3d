// Package order implements the clip-ordering decision ladder. Given a set
// of clip ids (and, when group mixing is on, the groups they belong to),
// it produces the list of candidate orderings the VariantPlanner draws
// from, consuming randomness only through an injected internal/rng.Source.
package order

import (
	"sort"

	"github.com/variantforge/variantmix/internal/clip"
	"github.com/variantforge/variantmix/internal/rng"
)

// Params bundles the flags the decision ladder switches on.
type Params struct {
	OrderMixing            bool
	DifferentStartingVideo bool
	GroupMixing            bool
	GroupMixingStrict      bool // true = "strict", false = "random"
}

// Generate returns the list of candidate clip-id sequences described by
// four-rule ladder (first matching rule wins):
//
//  1. Groups present and GroupMixing: outputCount sequences, each built by
//     iterating groups (in Order if strict, in a fresh shuffle if random)
//     and picking one clip uniformly at random from each non-empty group.
//  2. OrderMixing on: the full set of permutations of ids. If additionally
//     DifferentStartingVideo is on and more than one permutation exists,
//     partition by first element, shuffle each partition, and take up to
//     ceil(outputCount/n) from each, stopping once outputCount sequences
//     have been collected (later partitions yield nothing once the cap is
//     already met).
//  3. DifferentStartingVideo on without OrderMixing: outputCount rotations
//     of the base sequence, i.e. sequence i is [ids[i%n], ids[(i+1)%n], …].
//  4. Default: a singleton list containing the base sequence.
func Generate(groups []clip.Group, ids []string, p Params, outputCount int, src rng.Source) [][]string {
	if p.GroupMixing && len(groups) > 0 {
		return generateGrouped(groups, p, outputCount, src)
	}

	if p.OrderMixing {
		perms := permutations(ids)
		if p.DifferentStartingVideo && len(perms) > 1 {
			return fairByFirstElement(perms, outputCount, src)
		}
		return perms
	}

	if p.DifferentStartingVideo {
		return rotations(ids, outputCount)
	}

	return [][]string{append([]string{}, ids...)}
}

func generateGrouped(groups []clip.Group, p Params, outputCount int, src rng.Source) [][]string {
	if outputCount < 1 {
		outputCount = 1
	}
	out := make([][]string, 0, outputCount)
	for i := 0; i < outputCount; i++ {
		ordered := make([]clip.Group, len(groups))
		copy(ordered, groups)
		if p.GroupMixingStrict {
			sort.Slice(ordered, func(a, b int) bool { return ordered[a].Order < ordered[b].Order })
		} else {
			rng.FisherYates(ordered, src)
		}

		var seq []string
		for _, g := range ordered {
			if len(g.Clips) == 0 {
				continue
			}
			pick := g.Clips[src.Intn(len(g.Clips))]
			seq = append(seq, pick.ID)
		}
		out = append(out, seq)
	}
	return out
}

// permutations returns every ordering of ids. The caller is responsible
// for keeping n small enough that n! is tractable; this is an inherent
// property of full-permutation order mixing, not something this function
// can bound on its own.
func permutations(ids []string) [][]string {
	if len(ids) == 0 {
		return nil
	}
	var result [][]string
	working := append([]string{}, ids...)
	var permute func(k int)
	permute = func(k int) {
		if k == len(working) {
			result = append(result, append([]string{}, working...))
			return
		}
		for i := k; i < len(working); i++ {
			working[k], working[i] = working[i], working[k]
			permute(k + 1)
			working[k], working[i] = working[i], working[k]
		}
	}
	permute(0)
	return result
}

// fairByFirstElement partitions perms by first element, shuffles each
// partition, and takes up to ceil(outputCount/n) from each in partition
// order until outputCount sequences are collected.
func fairByFirstElement(perms [][]string, outputCount int, src rng.Source) [][]string {
	buckets := make(map[string][][]string)
	var firstSeen []string
	for _, perm := range perms {
		if len(perm) == 0 {
			continue
		}
		key := perm[0]
		if _, ok := buckets[key]; !ok {
			firstSeen = append(firstSeen, key)
		}
		buckets[key] = append(buckets[key], perm)
	}

	n := len(firstSeen)
	if n == 0 {
		return nil
	}
	perBucket := (outputCount + n - 1) / n

	for _, key := range firstSeen {
		rng.FisherYates(buckets[key], src)
	}

	var out [][]string
	for _, key := range firstSeen {
		bucket := buckets[key]
		take := perBucket
		if take > len(bucket) {
			take = len(bucket)
		}
		for i := 0; i < take; i++ {
			if len(out) >= outputCount {
				return out
			}
			out = append(out, bucket[i])
		}
	}
	return out
}

// rotations returns outputCount rotations of ids: sequence i starts at
// ids[i%n]. Repeats of the same starting element are expected once
// outputCount exceeds n.
func rotations(ids []string, outputCount int) [][]string {
	n := len(ids)
	if n == 0 {
		return nil
	}
	if outputCount < 1 {
		outputCount = 1
	}
	out := make([][]string, outputCount)
	for i := 0; i < outputCount; i++ {
		offset := i % n
		seq := make([]string, n)
		for j := 0; j < n; j++ {
			seq[j] = ids[(offset+j)%n]
		}
		out[i] = seq
	}
	return out
}
