package renderer

import (
	"fmt"
	"strings"

	"github.com/Sadvi2004/CodeForge/internal/event/events"
	"github.com/Sadvi2004/CodeForge/internal/renderer/backend"
)

// Surface is what the renderer draws on. *backend.Terminal implements it.
type Surface interface {
	Size() (width, height int)
	Put(x, y int, cluster string, style backend.Style)
	Fill(y, x0, x1 int, style backend.Style)
	ShowCursor(x, y int)
	HideCursor()
	Show()
}

// View is a snapshot of everything one frame shows.
type View struct {
	Title  string
	Tabs   []string
	Active int

	Text             string
	SelStart, SelEnd int
	Caret            int

	Notice events.Notice
	Hints  []string
}

// DefaultTabWidth is the display width of a tab stop.
const DefaultTabWidth = 4

// Renderer draws Views: a tab bar on the first row, the focused buffer in
// the middle and a status line on the last row.
type Renderer struct {
	surface  Surface
	theme    Theme
	tabWidth int

	// One viewport per tab so each buffer keeps its scroll position.
	views []Viewport
}

// New creates a renderer that draws on surface.
func New(surface Surface, theme Theme) *Renderer {
	return &Renderer{
		surface:  surface,
		theme:    theme,
		tabWidth: DefaultTabWidth,
	}
}

// SetTheme replaces the theme used by later frames.
func (r *Renderer) SetTheme(theme Theme) {
	r.theme = theme
}

// Viewport returns the scroll state of tab i.
func (r *Renderer) Viewport(i int) Viewport {
	if i < 0 || i >= len(r.views) {
		return Viewport{}
	}
	return r.views[i]
}

func (r *Renderer) viewport(i int) *Viewport {
	if i < 0 {
		i = 0
	}
	for len(r.views) <= i {
		r.views = append(r.views, Viewport{})
	}
	return &r.views[i]
}

// Draw renders one frame.
func (r *Renderer) Draw(v View) {
	w, h := r.surface.Size()
	if w <= 0 || h <= 0 {
		return
	}

	r.drawTabs(v, w)
	if h < 3 {
		r.surface.HideCursor()
		r.surface.Show()
		return
	}

	bodyH := h - 2
	line, col := r.caretPosition(v.Text, v.Caret)
	vp := r.viewport(v.Active)
	vp.Follow(line, col, w, bodyH)

	r.drawBody(v, vp, w, bodyH)
	r.drawStatus(v, line, col, w, h-1)

	r.surface.ShowCursor(col-vp.Left, line-vp.Top+1)
	r.surface.Show()
}

// caretPosition returns the caret's line and display column.
func (r *Renderer) caretPosition(text string, caret int) (line, col int) {
	if caret < 0 {
		caret = 0
	}
	if caret > len(text) {
		caret = len(text)
	}
	before := text[:caret]
	line = strings.Count(before, "\n")
	start := strings.LastIndexByte(before, '\n') + 1
	return line, displayWidth(before[start:], r.tabWidth)
}

func (r *Renderer) drawTabs(v View, w int) {
	th := r.theme
	r.surface.Fill(0, 0, w, th.TabInactive)

	x := 0
	for i, title := range v.Tabs {
		style := th.TabInactive
		if i == v.Active {
			style = th.TabActive
		}
		x = r.text(x, 0, " "+title+" ", style, w)
		if x >= w {
			return
		}
	}

	if v.Title != "" {
		tw := displayWidth(v.Title, r.tabWidth) + 1
		if start := w - tw; start > x {
			r.text(start, 0, v.Title, th.TabInactive, w)
		}
	}
}

func (r *Renderer) drawBody(v View, vp *Viewport, w, bodyH int) {
	th := r.theme
	lines := strings.Split(v.Text, "\n")

	offsets := make([]int, len(lines))
	off := 0
	for i, l := range lines {
		offsets[i] = off
		off += len(l) + 1
	}

	for row := 0; row < bodyH; row++ {
		y := row + 1
		n := vp.Top + row
		r.surface.Fill(y, 0, w, th.Text)
		if n >= len(lines) {
			r.surface.Put(0, y, "~", th.Muted)
			continue
		}

		base := offsets[n]
		walkLine(lines[n], r.tabWidth, func(off, col, width int, cluster string) bool {
			x := col - vp.Left
			if x >= w {
				return false
			}
			if x < 0 {
				return true
			}

			abs := base + off
			style := th.Text
			if abs >= v.SelStart && abs < v.SelEnd {
				style = th.Selection
			}
			if cluster == "\t" {
				for i := 0; i < width && x+i < w; i++ {
					r.surface.Put(x+i, y, " ", style)
				}
				return true
			}
			r.surface.Put(x, y, cluster, style)
			return true
		})
	}
}

func (r *Renderer) drawStatus(v View, line, col, w, y int) {
	th := r.theme
	r.surface.Fill(y, 0, w, th.Status)

	pos := fmt.Sprintf("Ln %d, Col %d ", line+1, col+1)
	right := w - displayWidth(pos, r.tabWidth)
	if right > 0 {
		r.text(right, y, pos, th.Status, w)
	} else {
		right = w
	}

	msg, style := strings.Join(v.Hints, "  "), th.Status
	if v.Notice.Message != "" {
		msg = v.Notice.Message
		switch v.Notice.Severity {
		case events.SeverityWarn:
			style = th.StatusWarn
		case events.SeverityError:
			style = th.StatusError
		}
	}
	r.text(1, y, msg, style, right-1)
}

// text draws s from x on row y without passing maxX and returns the column
// after the last cell drawn.
func (r *Renderer) text(x, y int, s string, style backend.Style, maxX int) int {
	end := x
	walkLine(s, r.tabWidth, func(_, col, width int, cluster string) bool {
		if x+col+width > maxX {
			return false
		}
		if cluster == "\t" {
			cluster = " "
		}
		r.surface.Put(x+col, y, cluster, style)
		end = x + col + width
		return true
	})
	return end
}
