// Package variant composes internal/order and internal/speedgen into
// complete Plans. It is the only package that decides how many plans to
// emit and applies different-starting-video fairness / shuffle-and-truncate
// when the leaf generators oversupply candidates.
package variant

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/variantforge/variantmix/internal/clip"
	"github.com/variantforge/variantmix/internal/config"
	"github.com/variantforge/variantmix/internal/order"
	"github.com/variantforge/variantmix/internal/quantity"
	"github.com/variantforge/variantmix/internal/rng"
	"github.com/variantforge/variantmix/internal/speedgen"
)

// ErrInsufficientInputs is returned when fewer than two clips are
// available; video mixing is undefined on a single clip.
var ErrInsufficientInputs = errors.New("variant: at least 2 clips are required")

// EffectiveSettings is the settings snapshot attached to every Plan. It is
// a value copy of the caller's MixingSettings with transitions and color
// grading explicitly forced off, regardless of what the caller passed in.
// The planner never mutates the caller's own settings object.
type EffectiveSettings struct {
	config.MixingSettings
	TransitionsEnabled  bool
	ColorGradingEnabled bool
}

// Plan is one concrete choice of order, per-clip speed, and effective
// settings for a single output.
type Plan struct {
	ID       string
	Order    []string
	Speeds   map[string]float64
	Settings EffectiveSettings
}

// Planner draws all randomness for a job from a single injected Source so
// that plan generation is deterministic under a fixed (clips, settings,
// seed) triple.
type Planner struct {
	Source rng.Source
}

// New returns a Planner backed by src.
func New(src rng.Source) *Planner {
	return &Planner{Source: src}
}

// Plan produces exactly min(settings.OutputCount, maxDistinctPlans) plans
// from clips (flat mode) or groups (when settings.GroupMixing is set).
// Exactly one of clips/groups is consulted: groups when GroupMixing is on
// and non-empty, clips otherwise.
func (p *Planner) Plan(clips []clip.Clip, groups []clip.Group, settings config.MixingSettings) ([]Plan, error) {
	ids := flatten(clips, groups, settings.GroupMixing)
	n := len(ids)
	if n < 2 {
		return nil, ErrInsufficientInputs
	}

	s := len(settings.AllowedSpeeds)

	// Only the two genuinely enumerative axes can legitimately cap the
	// number of distinct plans below OutputCount: full-permutation order
	// mixing (bounded by n!) and Cartesian speed mixing (bounded by
	// s^n). The default/rotation/group-mixing order strategies and the
	// minimal-variation speed strategy are designed to keep producing
	// distinct-enough output for as many plans as requested, so they
	// never cap target.
	target := settings.OutputCount
	if settings.OrderMixing {
		if avail := quantity.Factorial(n); avail < int64(target) {
			target = int(avail)
		}
	}
	if settings.SpeedMixing {
		if avail := quantity.Power(int64(s), n); avail < int64(target) {
			target = int(avail)
		}
	}
	if target < 1 {
		target = 1
	}

	orderParams := order.Params{
		OrderMixing:            settings.OrderMixing,
		DifferentStartingVideo: settings.DifferentStartingVideo,
		GroupMixing:            settings.GroupMixing,
		GroupMixingStrict:      settings.GroupMixingMode == config.GroupMixingStrict,
	}

	orders := order.Generate(groups, ids, orderParams, target, p.Source)
	if len(orders) == 0 {
		return nil, fmt.Errorf("variant: order generator produced no sequences")
	}
	if len(orders) > target {
		if !settings.DifferentStartingVideo {
			rng.FisherYates(orders, p.Source)
		}
		orders = orders[:target]
	}

	speeds := speedgen.GenerateList(n, target, settings.SpeedMixing, settings.AllowedSpeeds)
	if len(speeds) == 0 {
		speeds = [][]float64{speedgen.Uniform(n)}
	}
	if len(speeds) > target {
		rng.FisherYates(speeds, p.Source)
		speeds = speeds[:target]
	}

	effective := EffectiveSettings{
		MixingSettings:      settings,
		TransitionsEnabled:  false,
		ColorGradingEnabled: false,
	}

	plans := make([]Plan, target)
	for k := 0; k < target; k++ {
		ord := orders[k%len(orders)]
		spd := speeds[k%len(speeds)]

		speedMap := make(map[string]float64, len(ord))
		for j, id := range ord {
			if j < len(spd) {
				speedMap[id] = spd[j]
			} else {
				speedMap[id] = 1.0
			}
		}

		plans[k] = Plan{
			ID:       uuid.New().String(),
			Order:    append([]string{}, ord...),
			Speeds:   speedMap,
			Settings: effective,
		}
	}

	return plans, nil
}

// flatten returns the flat id list the order/speed generators draw
// candidate positions from. When groupMixing is set and groups is
// non-empty, ids are taken from every clip across all groups (order.
// Generate itself handles per-group structure); otherwise the flat clips
// list supplies ids directly.
func flatten(clips []clip.Clip, groups []clip.Group, groupMixing bool) []string {
	if groupMixing && len(groups) > 0 {
		var ids []string
		for _, g := range groups {
			for _, c := range g.Clips {
				ids = append(ids, c.ID)
			}
		}
		return ids
	}
	ids := make([]string, len(clips))
	for i, c := range clips {
		ids[i] = c.ID
	}
	return ids
}
