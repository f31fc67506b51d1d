package opengl

import (
	"bytes"
	"testing"
)

func TestScissorBox(t *testing.T) {
	tests := []struct {
		name       string
		clip       [4]float32
		x, y, w, h int32
		ok         bool
	}{
		{"inside", [4]float32{10, 20, 110, 70}, 10, 230, 100, 50, true},
		{"unbounded", [4]float32{-1e9, -1e9, 1e9, 1e9}, 0, 0, 400, 300, true},
		{"outside", [4]float32{500, 0, 600, 10}, 0, 0, 0, 0, false},
		{"inverted", [4]float32{50, 50, 40, 60}, 0, 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h, ok := scissorBox(tt.clip, 400, 300)
			if ok != tt.ok || x != tt.x || y != tt.y || w != tt.w || h != tt.h {
				t.Errorf("got (%d, %d, %d, %d, %v), want (%d, %d, %d, %d, %v)",
					x, y, w, h, ok, tt.x, tt.y, tt.w, tt.h, tt.ok)
			}
		})
	}
}

func TestFlipRows(t *testing.T) {
	pix := []byte{1, 1, 2, 2, 3, 3}
	flipRows(pix, 2)
	if !bytes.Equal(pix, []byte{3, 3, 2, 2, 1, 1}) {
		t.Errorf("got %v", pix)
	}
}

func TestOrthoMatrixCorners(t *testing.T) {
	m := orthoMatrix(0, 400, 300, 0, -1, 1)
	// Top left maps to (-1, 1).
	x := m[0]*0 + m[12]
	y := m[5]*0 + m[13]
	if x != -1 || y != 1 {
		t.Errorf("top left maps to (%v, %v)", x, y)
	}
}
