package grid

import "testing"

func TestRegionDropsContainedRects(t *testing.T) {
	var rg Region
	rg.Add(Rect{X: 10, Y: 10, W: 10, H: 10})
	rg.Add(Rect{X: 12, Y: 12, W: 2, H: 2})
	if n := len(rg.Rects()); n != 1 {
		t.Fatalf("expected 1 rect, got %d", n)
	}

	rg.Add(Rect{X: 0, Y: 0, W: 100, H: 100})
	if got := rg.Rects(); len(got) != 1 || got[0].W != 100 {
		t.Errorf("expected the larger rect to swallow the smaller, got %v", got)
	}
}

func TestRegionIgnoresEmptyRects(t *testing.T) {
	var rg Region
	rg.Add(Rect{X: 5, Y: 5})
	if !rg.Empty() {
		t.Error("empty rect should not dirty the region")
	}
}

func TestRegionCollapsesToBounds(t *testing.T) {
	var rg Region
	for i := range maxRegionRects + 1 {
		rg.Add(Rect{X: float32(i * 10), Y: 0, W: 5, H: 5})
	}

	got := rg.Rects()
	if len(got) != 1 {
		t.Fatalf("expected a single bounding rect, got %d", len(got))
	}
	want := Rect{X: 0, Y: 0, W: float32(maxRegionRects*10 + 5), H: 5}
	if got[0] != want {
		t.Errorf("expected %v, got %v", want, got[0])
	}
}

func TestRegionSubtract(t *testing.T) {
	var rg Region
	rg.Add(Rect{X: 0, Y: 0, W: 100, H: 100})
	rg.Subtract(Rect{X: 0, Y: 0, W: 100, H: 50})

	if rg.Intersects(Rect{X: 10, Y: 10, W: 10, H: 10}) {
		t.Error("validated area is still dirty")
	}
	if !rg.Intersects(Rect{X: 10, Y: 60, W: 10, H: 10}) {
		t.Error("remaining area should stay dirty")
	}
	if b := rg.Bounds(); b != (Rect{X: 0, Y: 50, W: 100, H: 50}) {
		t.Errorf("unexpected bounds %v", b)
	}

	rg.Subtract(Rect{X: -10, Y: -10, W: 200, H: 200})
	if !rg.Empty() {
		t.Errorf("expected empty region, got %v", rg.Rects())
	}
}

func TestRegionClear(t *testing.T) {
	var rg Region
	rg.Add(Rect{W: 1, H: 1})
	rg.Clear()
	if !rg.Empty() {
		t.Error("Clear left rects behind")
	}
}
