package renderer

// Viewport is the visible window into a buffer, in lines and display cells.
type Viewport struct {
	Top  int
	Left int
}

// Follow scrolls the viewport the least amount that brings (line, col)
// into a width x height window.
func (v *Viewport) Follow(line, col, width, height int) {
	if height < 1 {
		height = 1
	}
	if width < 1 {
		width = 1
	}

	switch {
	case line < v.Top:
		v.Top = line
	case line >= v.Top+height:
		v.Top = line - height + 1
	}

	switch {
	case col < v.Left:
		v.Left = col
	case col >= v.Left+width:
		v.Left = col - width + 1
	}

	if v.Top < 0 {
		v.Top = 0
	}
	if v.Left < 0 {
		v.Left = 0
	}
}
