package render

import "strings"

// GlyphRows is the height of every big glyph.
const GlyphRows = 5

// glyphs holds the oversized characters the digital and flip clocks
// draw with. Every row of a glyph has the same width.
var glyphs = map[rune][]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {" █ ", "██ ", " █ ", " █ ", "███"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {" ", "█", " ", "█", " "},
	' ': {" ", " ", " ", " ", " "},
}

// GlyphLines returns the rows for one rune. Unknown runes report false
// so callers can fall back to plain text.
func GlyphLines(r rune) ([]string, bool) {
	g, ok := glyphs[r]
	if !ok {
		return nil, false
	}
	return append([]string(nil), g...), true
}

// BigText renders s in big glyphs with a one-column gap between runes.
// Runes without a glyph are skipped.
func BigText(s string) string {
	return strings.Join(BigTextLines(s), "\n")
}

// BigTextLines is BigText row by row, every row equal width.
func BigTextLines(s string) []string {
	rows := make([]string, GlyphRows)
	first := true
	for _, r := range s {
		g, ok := glyphs[r]
		if !ok {
			continue
		}
		for i := 0; i < GlyphRows; i++ {
			if !first {
				rows[i] += " "
			}
			rows[i] += g[i]
		}
		first = false
	}
	return rows
}
