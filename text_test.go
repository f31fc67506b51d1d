package grid

import "testing"

func TestTruncateText(t *testing.T) {
	tests := []struct {
		text  string
		width float32
		want  string
	}{
		{"Papadopoulos", 96, "Papadopoulos"},
		{"Papadopoulos", 40, "Pa..."},
		{"Papadopoulos", 20, ".."},
		{"Papadopoulos", 0, ""},
		{"Ωμέγα", 40, "Ωμέγα"},
		{"Ωμέγαλφα", 40, "Ωμ..."},
		{"", 40, ""},
	}

	for _, tt := range tests {
		if got := TruncateText(tt.text, tt.width, 8); got != tt.want {
			t.Errorf("TruncateText(%q, %v) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestTruncateTextWithSuffix(t *testing.T) {
	if got := TruncateTextWithSuffix("abcdefgh", 32, 8, "~"); got != "abc~" {
		t.Errorf("got %q", got)
	}
}

func TestCenterText(t *testing.T) {
	x, y := centerText("abcd", Rect{X: 10, Y: 30, W: 100, H: 24}, 8, 8)
	if x != 44 || y != 38 {
		t.Errorf("expected (44, 38), got (%v, %v)", x, y)
	}
}
