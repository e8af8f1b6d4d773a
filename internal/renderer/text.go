package renderer

import "github.com/rivo/uniseg"

// cellFunc receives one grapheme cluster of a line: its byte offset in the
// line, its display column, and its width in cells. Returning false stops
// the walk.
type cellFunc func(off, col, width int, cluster string) bool

// walkLine lays out line as terminal cells. Tabs advance to the next
// multiple of tabWidth; zero-width clusters such as a trailing "\r" are
// skipped.
func walkLine(line string, tabWidth int, fn cellFunc) int {
	if tabWidth < 1 {
		tabWidth = 1
	}

	col, off := 0, 0
	rest := line
	state := -1
	for len(rest) > 0 {
		var cluster string
		var width int
		cluster, rest, width, state = uniseg.FirstGraphemeClusterInString(rest, state)

		if cluster == "\t" {
			width = tabWidth - col%tabWidth
		}
		if width > 0 && fn != nil && !fn(off, col, width, cluster) {
			return col
		}
		col += width
		off += len(cluster)
	}
	return col
}

// displayWidth returns the number of cells line occupies.
func displayWidth(line string, tabWidth int) int {
	return walkLine(line, tabWidth, nil)
}
