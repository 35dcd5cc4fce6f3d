package outputname

import (
	"path/filepath"
	"testing"
)

func TestBase_FormatsNameWithZeroPaddedIndex(t *testing.T) {
	got := Base("promo-job", 3, "abcdefgh1234", "mp4")
	want := "promo-job_variant-03_abcdefgh.mp4"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolve_UnclaimedNamePassesThrough(t *testing.T) {
	g := New()
	got := g.Resolve("job1", "plan1", "/out", "job1_variant-00_plan1.mp4")
	want := filepath.Join("/out", "job1_variant-00_plan1.mp4")
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolve_SameOwnerReusesName(t *testing.T) {
	g := New()
	first := g.Resolve("job1", "plan1", "/out", "clash.mp4")
	second := g.Resolve("job1", "plan1", "/out", "clash.mp4")
	if first != second {
		t.Fatalf("expected same owner to reuse name, got %q then %q", first, second)
	}
}

func TestResolve_DifferentOwnerGetsDupSuffix(t *testing.T) {
	g := New()
	first := g.Resolve("job1", "plan1", "/out", "clash.mp4")
	second := g.Resolve("job1", "plan2", "/out", "clash.mp4")
	if first == second {
		t.Fatalf("expected distinct owners to get distinct names")
	}
	want := filepath.Join("/out", "clash-dup1.mp4")
	if second != want {
		t.Fatalf("got %q, want %q", second, want)
	}
}

func TestResolve_RepeatedCollisionsIncrementCounter(t *testing.T) {
	g := New()
	g.Resolve("job1", "plan1", "/out", "clash.mp4")
	g.Resolve("job1", "plan2", "/out", "clash.mp4")
	third := g.Resolve("job1", "plan3", "/out", "clash.mp4")
	want := filepath.Join("/out", "clash-dup2.mp4")
	if third != want {
		t.Fatalf("got %q, want %q", third, want)
	}
}
