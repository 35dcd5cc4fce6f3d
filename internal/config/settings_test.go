package config

import "testing"

func TestValidate_UnrecognizedEnumFallsBackToDefault(t *testing.T) {
	s := Default()
	s.Resolution = Resolution("4k")
	warnings, err := s.Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if s.Resolution != ResolutionHD {
		t.Fatalf("expected fallback to hd, got %q", s.Resolution)
	}
	if len(warnings) != 1 || warnings[0].Field != "resolution" {
		t.Fatalf("expected one resolution warning, got %v", warnings)
	}
}

func TestValidate_OutputCountMustBePositive(t *testing.T) {
	s := Default()
	s.OutputCount = 0
	if _, err := s.Validate(); err == nil {
		t.Fatalf("expected error for output_count=0")
	}
}

func TestValidate_FixedDurationRequiredWhenFixed(t *testing.T) {
	s := Default()
	s.DurationType = DurationFixed
	s.FixedDuration = 0
	if _, err := s.Validate(); err == nil {
		t.Fatalf("expected error for fixed_duration=0 with duration_type=fixed")
	}
}

func TestValidate_AllowedSpeedsGainsUnityWhenMissing(t *testing.T) {
	s := Default()
	s.AllowedSpeeds = []float64{0.9, 1.1}
	if _, err := s.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	found := false
	for _, sp := range s.AllowedSpeeds {
		if sp == 1.0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected 1.0 to be appended to AllowedSpeeds, got %v", s.AllowedSpeeds)
	}
}

func TestValidate_EmptyAllowedSpeedsDefaultsToUnity(t *testing.T) {
	s := Default()
	s.AllowedSpeeds = nil
	if _, err := s.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(s.AllowedSpeeds) != 1 || s.AllowedSpeeds[0] != 1.0 {
		t.Fatalf("expected AllowedSpeeds=[1.0], got %v", s.AllowedSpeeds)
	}
}
