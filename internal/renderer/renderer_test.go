package renderer

import (
	"strings"
	"testing"

	"github.com/Sadvi2004/CodeForge/internal/config"
	"github.com/Sadvi2004/CodeForge/internal/event/events"
	"github.com/Sadvi2004/CodeForge/internal/renderer/backend"
)

type cell struct {
	text  string
	style backend.Style
}

// gridSurface records drawing in memory.
type gridSurface struct {
	w, h    int
	cells   map[[2]int]cell
	cursorX int
	cursorY int
	hidden  bool
	shows   int
}

func newGrid(w, h int) *gridSurface {
	return &gridSurface{w: w, h: h, cells: make(map[[2]int]cell)}
}

func (g *gridSurface) Size() (int, int) { return g.w, g.h }

func (g *gridSurface) Put(x, y int, cluster string, style backend.Style) {
	g.cells[[2]int{x, y}] = cell{text: cluster, style: style}
}

func (g *gridSurface) Fill(y, x0, x1 int, style backend.Style) {
	for x := x0; x < x1; x++ {
		g.Put(x, y, " ", style)
	}
}

func (g *gridSurface) ShowCursor(x, y int) { g.cursorX, g.cursorY, g.hidden = x, y, false }
func (g *gridSurface) HideCursor()         { g.hidden = true }
func (g *gridSurface) Show()               { g.shows++ }

// row returns row y as a string with trailing blanks trimmed.
func (g *gridSurface) row(y int) string {
	var sb strings.Builder
	for x := 0; x < g.w; x++ {
		c, ok := g.cells[[2]int{x, y}]
		if !ok || c.text == "" {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteString(c.text)
	}
	return strings.TrimRight(sb.String(), " ")
}

func baseView(text string, caret int) View {
	return View{
		Title:    "CodeForge",
		Tabs:     []string{"HTML", "CSS", "JavaScript"},
		Text:     text,
		SelStart: caret,
		SelEnd:   caret,
		Caret:    caret,
		Hints:    []string{"Ctrl+Q Quit"},
	}
}

func TestDrawLayout(t *testing.T) {
	g := newGrid(50, 5)
	r := New(g, DefaultTheme())

	r.Draw(baseView("<p>hi</p>\nsecond", 3))

	if got := g.row(0); !strings.HasPrefix(got, " HTML  CSS  JavaScript ") || !strings.HasSuffix(got, "CodeForge") {
		t.Errorf("tab row = %q", got)
	}
	if got := g.row(1); got != "<p>hi</p>" {
		t.Errorf("row 1 = %q", got)
	}
	if got := g.row(2); got != "second" {
		t.Errorf("row 2 = %q", got)
	}
	if got := g.row(3); got != "~" {
		t.Errorf("row 3 = %q, want filler", got)
	}
	status := g.row(4)
	if !strings.HasPrefix(status, " Ctrl+Q Quit") || !strings.HasSuffix(status, "Ln 1, Col 4") {
		t.Errorf("status row = %q", status)
	}
	if g.cursorX != 3 || g.cursorY != 1 || g.hidden {
		t.Errorf("cursor = (%d,%d) hidden=%v, want (3,1)", g.cursorX, g.cursorY, g.hidden)
	}
	if g.shows != 1 {
		t.Errorf("Show called %d times", g.shows)
	}
}

func TestDrawActiveTabStyle(t *testing.T) {
	g := newGrid(40, 4)
	th := DefaultTheme()
	r := New(g, th)

	v := baseView("", 0)
	v.Active = 1
	r.Draw(v)

	// " HTML " spans 0..5, " CSS " starts at 6.
	if got := g.cells[[2]int{7, 0}].style; got != th.TabActive {
		t.Errorf("CSS tab style = %+v, want active", got)
	}
	if got := g.cells[[2]int{1, 0}].style; got != th.TabInactive {
		t.Errorf("HTML tab style = %+v, want inactive", got)
	}
}

func TestDrawSelection(t *testing.T) {
	g := newGrid(20, 4)
	th := DefaultTheme()
	r := New(g, th)

	v := baseView("abcd", 3)
	v.SelStart, v.SelEnd = 1, 3
	r.Draw(v)

	for x, want := range []backend.Style{th.Text, th.Selection, th.Selection, th.Text} {
		if got := g.cells[[2]int{x, 1}].style; got != want {
			t.Errorf("cell %d style = %+v, want %+v", x, got, want)
		}
	}
}

func TestDrawNoticeSeverity(t *testing.T) {
	th := DefaultTheme()
	tests := []struct {
		sev  events.Severity
		want backend.Style
	}{
		{events.SeverityInfo, th.Status},
		{events.SeverityWarn, th.StatusWarn},
		{events.SeverityError, th.StatusError},
	}

	for _, tt := range tests {
		g := newGrid(60, 4)
		r := New(g, th)
		v := baseView("", 0)
		v.Notice = events.Notice{Message: "Nothing more to undo", Severity: tt.sev}
		r.Draw(v)

		if got := g.row(3); !strings.HasPrefix(got, " Nothing more to undo") {
			t.Errorf("status = %q", got)
		}
		if got := g.cells[[2]int{1, 3}].style; got != tt.want {
			t.Errorf("severity %d style = %+v, want %+v", tt.sev, got, tt.want)
		}
	}
}

func TestDrawTabsExpand(t *testing.T) {
	g := newGrid(20, 4)
	r := New(g, DefaultTheme())

	r.Draw(baseView("\tx", 2))

	if got := g.row(1); got != "    x" {
		t.Errorf("row = %q, want tab expanded to 4 cells", got)
	}
	if g.cursorX != 5 {
		t.Errorf("cursorX = %d, want 5", g.cursorX)
	}
}

func TestDrawWideAndCombining(t *testing.T) {
	g := newGrid(20, 4)
	r := New(g, DefaultTheme())

	text := "e\u0301界x"
	r.Draw(baseView(text, len(text)))

	if got := g.cells[[2]int{0, 1}].text; got != "e\u0301" {
		t.Errorf("cell 0 = %q, want combined cluster", got)
	}
	if got := g.cells[[2]int{1, 1}].text; got != "界" {
		t.Errorf("cell 1 = %q", got)
	}
	if got := g.cells[[2]int{3, 1}].text; got != "x" {
		t.Errorf("cell 3 = %q, want x after wide char", got)
	}
	if g.cursorX != 4 {
		t.Errorf("cursorX = %d, want 4", g.cursorX)
	}
}

func TestDrawScrollsToCaret(t *testing.T) {
	g := newGrid(20, 5) // three body rows
	r := New(g, DefaultTheme())

	text := "l1\nl2\nl3\nl4\nl5"
	r.Draw(baseView(text, len(text)))

	if vp := r.Viewport(0); vp.Top != 2 {
		t.Errorf("Top = %d, want 2", vp.Top)
	}
	if got := g.row(1); got != "l3" {
		t.Errorf("first body row = %q, want l3", got)
	}
	if g.cursorY != 3 {
		t.Errorf("cursorY = %d, want 3", g.cursorY)
	}

	// Each tab keeps its own scroll position.
	v := baseView("a", 0)
	v.Active = 1
	r.Draw(v)
	if vp := r.Viewport(0); vp.Top != 2 {
		t.Errorf("tab 0 Top = %d after drawing tab 1", vp.Top)
	}
}

func TestDrawTinyScreen(t *testing.T) {
	g := newGrid(10, 2)
	r := New(g, DefaultTheme())

	r.Draw(baseView("hello", 0))
	if !g.hidden {
		t.Error("cursor should be hidden when there is no body")
	}

	z := newGrid(0, 0)
	New(z, DefaultTheme()).Draw(baseView("x", 0))
	if z.shows != 0 {
		t.Error("zero-size surface should not be drawn")
	}
}

func TestViewportFollow(t *testing.T) {
	tests := []struct {
		name      string
		start     Viewport
		line, col int
		want      Viewport
	}{
		{"visible", Viewport{}, 2, 3, Viewport{}},
		{"below", Viewport{}, 12, 0, Viewport{Top: 3}},
		{"above", Viewport{Top: 5}, 1, 0, Viewport{Top: 1}},
		{"right", Viewport{}, 0, 25, Viewport{Left: 6}},
		{"left", Viewport{Left: 10}, 0, 4, Viewport{Left: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp := tt.start
			vp.Follow(tt.line, tt.col, 20, 10)
			if vp != tt.want {
				t.Errorf("Follow = %+v, want %+v", vp, tt.want)
			}
		})
	}
}

func TestNewThemeRejectsBadColor(t *testing.T) {
	tc := config.Default().Theme
	tc.Muted = "grey"
	if _, err := NewTheme(tc); err == nil {
		t.Error("expected error for non-hex color")
	}
}

func TestNewThemeSelectionBlends(t *testing.T) {
	th := DefaultTheme()
	bg := th.Text.Background
	sel := th.Selection.Background
	if sel == bg {
		t.Error("selection background should differ from the text background")
	}
	if th.TabActive.Foreground == th.TabInactive.Foreground {
		t.Error("active tab should use the accent color")
	}
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"\t", 4},
		{"ab\tc", 5},
		{"界", 2},
		{"e\u0301", 1},
		{"x\r", 1},
	}
	for _, tt := range tests {
		if got := displayWidth(tt.in, 4); got != tt.want {
			t.Errorf("displayWidth(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
