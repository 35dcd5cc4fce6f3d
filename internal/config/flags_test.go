package config

import "testing"

func TestParseSpeedList_ParsesCommaSeparatedFloats(t *testing.T) {
	speeds, err := parseSpeedList("0.95, 1.0,1.05")
	if err != nil {
		t.Fatalf("parseSpeedList: %v", err)
	}
	want := []float64{0.95, 1.0, 1.05}
	if len(speeds) != len(want) {
		t.Fatalf("expected %v, got %v", want, speeds)
	}
	for i, v := range want {
		if speeds[i] != v {
			t.Fatalf("expected %v, got %v", want, speeds)
		}
	}
}

func TestParseSpeedList_RejectsNonNumeric(t *testing.T) {
	if _, err := parseSpeedList("fast,1.0"); err == nil {
		t.Fatalf("expected error for non-numeric speed")
	}
}

func TestParseSpeedList_RejectsEmpty(t *testing.T) {
	if _, err := parseSpeedList(""); err == nil {
		t.Fatalf("expected error for empty speed list")
	}
}
