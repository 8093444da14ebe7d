package color

import "testing"

func TestSRGBToLinearFastMatchesExact(t *testing.T) {
	for i := range 256 {
		want := SRGBToLinear(float64(i) / 255)
		if got := SRGBToLinearFast(uint8(i)); got != want {
			t.Errorf("SRGBToLinearFast(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestLinearToSRGBFastRoundTrip(t *testing.T) {
	// 12-bit precision must reproduce every 8-bit sRGB value.
	for i := range 256 {
		got := LinearToSRGBFast(SRGBToLinearFast(uint8(i)))
		if diff := int(got) - i; diff < -1 || diff > 1 {
			t.Errorf("round trip %d = %d", i, got)
		}
	}
}

func TestLinearToSRGBFastClamps(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-0.5, 0},
		{0, 0},
		{1, 255},
		{1.5, 255},
	}
	for _, tt := range tests {
		if got := LinearToSRGBFast(tt.in); got != tt.want {
			t.Errorf("LinearToSRGBFast(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
