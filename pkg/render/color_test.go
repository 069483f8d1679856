package render

import "testing"

func TestFade(t *testing.T) {
	bright := RGB(0x00, 0x00, 0xFF)
	dark := RGB(0x00, 0x00, 0x5F)

	tests := []struct {
		name  string
		alpha float64
		want  Color
	}{
		{"alpha 1 is bright", 1, bright},
		{"alpha 0 is dark", 0, dark},
		{"alpha above 1 clamps", 3.5, bright},
		{"alpha below 0 clamps", -2, dark},
		{"halfway", 0.5, RGB(0x00, 0x00, 0xAF)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Fade(bright, dark, tc.alpha); got != tc.want {
				t.Errorf("Fade(alpha=%v) = %v, want %v", tc.alpha, got, tc.want)
			}
		})
	}
}

func TestFade_EqualColors(t *testing.T) {
	c := RGB(10, 20, 30)
	for _, alpha := range []float64{0, 0.25, 0.5, 1} {
		if got := Fade(c, c, alpha); got != c {
			t.Errorf("Fade(c, c, %v) = %v, want %v", alpha, got, c)
		}
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#0000ff", RGB(0, 0, 0xFF), false},
		{"0000FF", RGB(0, 0, 0xFF), false},
		{"#a1B2c3", RGB(0xA1, 0xB2, 0xC3), false},
		{"#fff", Color{}, true},
		{"", Color{}, true},
		{"#gggggg", Color{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseHex(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseHex(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestHex_RoundTrip(t *testing.T) {
	c := RGB(0x12, 0xAB, 0xEF)
	s := Hex(c)
	if s != "#12abef" {
		t.Errorf("Hex = %q, want %q", s, "#12abef")
	}
	back, err := ParseHex(s)
	if err != nil {
		t.Fatalf("ParseHex(%q): %v", s, err)
	}
	if back != c {
		t.Errorf("round trip = %v, want %v", back, c)
	}
}
