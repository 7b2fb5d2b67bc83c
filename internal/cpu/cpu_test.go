package cpu

import "testing"

func TestSupportsForceGeneric(t *testing.T) {
	f := Features{HasSSE2: true, HasNEON: true, ForceGeneric: true}

	if !Supports(f, SIMDNone) {
		t.Fatal("SIMDNone must always be supported")
	}

	for _, level := range []SIMDLevel{SIMDSSE2, SIMDNEON} {
		if Supports(f, level) {
			t.Errorf("ForceGeneric: Supports(%v) = true, want false", level)
		}
	}
}

func TestSupportsLevels(t *testing.T) {
	tests := []struct {
		features Features
		level    SIMDLevel
		want     bool
	}{
		{Features{}, SIMDNone, true},
		{Features{}, SIMDSSE2, false},
		{Features{HasSSE2: true}, SIMDSSE2, true},
		{Features{HasSSE2: true}, SIMDNEON, false},
		{Features{HasNEON: true}, SIMDNEON, true},
		{Features{HasNEON: true}, SIMDSSE2, false},
		{Features{HasSSE2: true}, SIMDLevel(99), false},
	}

	for _, tt := range tests {
		if got := Supports(tt.features, tt.level); got != tt.want {
			t.Errorf("Supports(%+v, %v) = %v, want %v", tt.features, tt.level, got, tt.want)
		}
	}
}

func TestForcedFeatures(t *testing.T) {
	SetForcedFeatures(Features{HasNEON: true, Architecture: "arm64"})
	defer ResetDetection()

	got := DetectFeatures()
	if !got.HasNEON || got.Architecture != "arm64" {
		t.Fatalf("DetectFeatures() = %+v, want forced NEON/arm64", got)
	}

	ResetDetection()

	if DetectFeatures().Architecture == "" {
		t.Fatal("detected Architecture should not be empty after reset")
	}
}

func TestSIMDLevelString(t *testing.T) {
	names := map[SIMDLevel]string{
		SIMDNone:      "None",
		SIMDSSE2:      "SSE2",
		SIMDNEON:      "NEON",
		SIMDLevel(-1): "Unknown",
	}
	for level, want := range names {
		if got := level.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(level), got, want)
		}
	}
}
