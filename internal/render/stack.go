package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Box is anything that can draw itself into a width x height cell area.
type Box interface {
	Render(width, height int) string
}

// VStack renders children top to bottom. Ratios, when present, must
// have one entry per child; otherwise space splits evenly.
type VStack struct {
	Children []Box
	Ratios   []float64
	Gap      int
}

func (v VStack) Render(width, height int) string {
	if len(v.Children) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gapTotal := max(0, v.Gap*(len(v.Children)-1))
	usable := max(1, height-gapTotal)
	heights := splitSpans(usable, len(v.Children), v.Ratios)
	lines := make([]string, 0, height)
	for i, child := range v.Children {
		lines = append(lines, child.Render(width, max(1, heights[i])))
		if i < len(v.Children)-1 {
			for g := 0; g < v.Gap; g++ {
				lines = append(lines, "")
			}
		}
	}
	return strings.Join(lines, "\n")
}

// HStack renders children left to right, padding every column to its
// allotted width so rows stay aligned.
type HStack struct {
	Children []Box
	Ratios   []float64
	Gap      int
}

func (h HStack) Render(width, height int) string {
	if len(h.Children) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gapTotal := max(0, h.Gap*(len(h.Children)-1))
	usable := max(1, width-gapTotal)
	widths := splitSpans(usable, len(h.Children), h.Ratios)

	columns := make([][]string, len(h.Children))
	rows := 0
	for i, child := range h.Children {
		columns[i] = strings.Split(child.Render(max(1, widths[i]), height), "\n")
		if len(columns[i]) > rows {
			rows = len(columns[i])
		}
	}

	gap := strings.Repeat(" ", h.Gap)
	out := make([]string, 0, rows)
	for row := 0; row < rows; row++ {
		cells := make([]string, len(columns))
		for i := range columns {
			if row < len(columns[i]) {
				cells[i] = PadRight(columns[i][row], widths[i])
			} else {
				cells[i] = strings.Repeat(" ", widths[i])
			}
		}
		out = append(out, strings.Join(cells, gap))
	}
	return strings.Join(out, "\n")
}

// splitSpans divides total cells among n children. Ratios are
// normalized; leftover cells from flooring go to the leading children
// so totals always add up.
func splitSpans(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	if len(ratios) != n {
		span := total / n
		out := make([]int, n)
		for i := range out {
			out[i] = span
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	sum := 0.0
	for _, r := range ratios {
		if r <= 0 {
			r = 1
		}
		sum += r
	}
	out := make([]int, n)
	used := 0
	for i := range out {
		r := ratios[i]
		if r <= 0 {
			r = 1
		}
		span := int(math.Floor((r / sum) * float64(total)))
		out[i] = span
		used += span
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}

// PadRight truncates or pads s to an exact display width, counting
// ANSI sequences as zero-width.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
