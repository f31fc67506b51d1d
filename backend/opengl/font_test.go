package opengl

import "testing"

func TestFontAtlasGlyph(t *testing.T) {
	data := fontAtlas()
	if len(data) != atlasWidth*atlasHeight {
		t.Fatalf("atlas size %d", len(data))
	}

	// 'A' is glyph 33: column 1, row 2. Its top row is 0x18.
	ox, oy := 1*glyphSize, 2*glyphSize
	want := []byte{0, 0, 0, 255, 255, 0, 0, 0}
	for x, w := range want {
		if got := data[oy*atlasWidth+ox+x]; got != w {
			t.Errorf("pixel %d: got %d, want %d", x, got, w)
		}
	}
}

func TestFontAtlasSpaceIsBlank(t *testing.T) {
	data := fontAtlas()
	for y := range glyphSize {
		for x := range glyphSize {
			if data[y*atlasWidth+x] != 0 {
				t.Fatalf("space has ink at (%d, %d)", x, y)
			}
		}
	}
}

func TestGlyphTableIsWellFormed(t *testing.T) {
	for ch, rows := range glyphs {
		if len(rows) != 2*glyphSize {
			t.Errorf("glyph %q: %d hex digits", ch, len(rows))
		}
	}
}
