package grid

import "unicode/utf8"

// Ellipsis is appended to cell and label text that does not fit its box.
const Ellipsis = "..."

// MeasureText returns the width of single-line text drawn with the
// monospaced bitmap font at the given character width.
func MeasureText(text string, charWidth float32) float32 {
	return float32(utf8.RuneCountInString(text)) * charWidth
}

// TruncateText shortens text to fit within maxWidth, ending it with
// Ellipsis when anything was cut.
func TruncateText(text string, maxWidth, charWidth float32) string {
	return TruncateTextWithSuffix(text, maxWidth, charWidth, Ellipsis)
}

// TruncateTextWithSuffix truncates text and adds a custom suffix.
// When not even the suffix fits, the suffix itself is cut.
func TruncateTextWithSuffix(text string, maxWidth, charWidth float32, suffix string) string {
	if maxWidth <= 0 || charWidth <= 0 {
		return ""
	}
	if MeasureText(text, charWidth) <= maxWidth {
		return text
	}

	fit := floorInt(maxWidth / charWidth)
	suffixRunes := []rune(suffix)
	if fit <= len(suffixRunes) {
		return string(suffixRunes[:fit])
	}

	runes := []rune(text)
	return string(runes[:fit-len(suffixRunes)]) + suffix
}

// centerText returns the origin that centers a line of text in box.
func centerText(text string, box Rect, charWidth, charHeight float32) (x, y float32) {
	w := MeasureText(text, charWidth)
	return box.X + floorf((box.W-w)/2), box.Y + floorf((box.H-charHeight)/2)
}

func floorf(v float32) float32 {
	return float32(floorInt(v))
}
