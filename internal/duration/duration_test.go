package duration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_ProportionalCentersTrim(t *testing.T) {
	clips := []Clip{
		{ID: "A", Duration: 30, Speed: 1},
		{ID: "B", Duration: 30, Speed: 1},
	}
	windows, err := Solve(clips, 20, Proportional)
	require.NoError(t, err)
	require.Len(t, windows, 2)

	for _, w := range windows {
		assert.InDelta(t, 10, w.TrimStartSrc, 1e-9)
		assert.InDelta(t, 20, w.TrimEndSrc, 1e-9)
	}
}

func TestSolve_EqualDistributionGivesEqualTargets(t *testing.T) {
	clips := []Clip{
		{ID: "A", Duration: 15, Speed: 1},
		{ID: "B", Duration: 25, Speed: 1},
		{ID: "C", Duration: 40, Speed: 1},
	}
	windows, err := Solve(clips, 30, Equal)
	require.NoError(t, err)
	for _, w := range windows {
		assert.InDelta(t, 10, w.TargetDuration, 1e-9)
	}
}

func TestSolve_WeightedFavorsEnds(t *testing.T) {
	clips := []Clip{
		{ID: "A", Duration: 100, Speed: 1},
		{ID: "B", Duration: 100, Speed: 1},
		{ID: "C", Duration: 100, Speed: 1},
	}
	windows, err := Solve(clips, 40, Weighted)
	require.NoError(t, err)
	// weights 1.5, 1.0, 1.5 over total 4.0
	assert.InDelta(t, 15, windows[0].TargetDuration, 1e-9)
	assert.InDelta(t, 10, windows[1].TargetDuration, 1e-9)
	assert.InDelta(t, 15, windows[2].TargetDuration, 1e-9)
}

func TestSolve_ShortClipYieldsFullClipWindow(t *testing.T) {
	clips := []Clip{
		{ID: "A", Duration: 3, Speed: 1},
		{ID: "B", Duration: 30, Speed: 1},
	}
	windows, err := Solve(clips, 40, Proportional)
	require.NoError(t, err)

	var a TrimWindow
	for _, w := range windows {
		if w.ClipID == "A" {
			a = w
		}
	}
	assert.Equal(t, 0.0, a.TrimStartSrc)
	assert.Equal(t, 3.0, a.TrimEndSrc)
}

func TestSolve_SpeedDividesIntoOriginalTimeline(t *testing.T) {
	clips := []Clip{
		{ID: "A", Duration: 40, Speed: 2},
		{ID: "B", Duration: 40, Speed: 2},
	}
	// adjusted = 20, 20; total=40; target=fixedDuration*adjusted/total
	windows, err := Solve(clips, 20, Proportional)
	require.NoError(t, err)
	for _, w := range windows {
		// adjusted=20, target=20*20/40=10
		// excess = 20-10=10, trimStartAdj=5, trimEndAdj=15
		// divide by speed=2: trimStartSrc=2.5, trimEndSrc=7.5
		assert.InDelta(t, 2.5, w.TrimStartSrc, 1e-9)
		assert.InDelta(t, 7.5, w.TrimEndSrc, 1e-9)
	}
}

func TestSolve_EmptyClipsErrors(t *testing.T) {
	_, err := Solve(nil, 20, Proportional)
	assert.Error(t, err)
}
