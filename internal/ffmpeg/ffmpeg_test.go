package ffmpeg

import (
	"context"
	"testing"
)

func TestClassify_MissingInput(t *testing.T) {
	if got := Classify("a.mp4: No such file or directory"); got != FamilyMissingInput {
		t.Fatalf("expected FamilyMissingInput, got %v", got)
	}
}

func TestClassify_UnknownEncoder(t *testing.T) {
	if got := Classify("Unknown encoder 'libx264'"); got != FamilyUnknownEncoder {
		t.Fatalf("expected FamilyUnknownEncoder, got %v", got)
	}
}

func TestClassify_CorruptedMoov(t *testing.T) {
	if got := Classify("moov atom not found"); got != FamilyCorruptedMoov {
		t.Fatalf("expected FamilyCorruptedMoov, got %v", got)
	}
}

func TestClassify_UnrecognizedFallsBackToUnknown(t *testing.T) {
	if got := Classify("some unrelated message"); got != FamilyUnknown {
		t.Fatalf("expected FamilyUnknown, got %v", got)
	}
}

func TestFixedAttemptPolicy_RetriesUpToMax(t *testing.T) {
	p := FixedAttemptPolicy{MaxAttempts: 2}
	if !p.ShouldRetry(FamilyConversionFailed, 1) {
		t.Fatalf("expected retry on attempt 1")
	}
	if p.ShouldRetry(FamilyConversionFailed, 2) {
		t.Fatalf("expected no retry once max attempts reached")
	}
}

func TestFixedAttemptPolicy_NeverRetriesUnknown(t *testing.T) {
	p := FixedAttemptPolicy{MaxAttempts: 5}
	if p.ShouldRetry(FamilyUnknown, 1) {
		t.Fatalf("expected no retry for unknown family")
	}
}

func TestRecordingLauncher_RecordsCalls(t *testing.T) {
	rl := &RecordingLauncher{Results: []Result{{ExitCode: 1}}}
	res := rl.Launch(context.Background(), []string{"ffmpeg", "-i", "a.mp4"})
	if res.ExitCode != 1 {
		t.Fatalf("expected queued exit code 1, got %d", res.ExitCode)
	}
	if len(rl.Calls) != 1 {
		t.Fatalf("expected 1 recorded call, got %d", len(rl.Calls))
	}
}
