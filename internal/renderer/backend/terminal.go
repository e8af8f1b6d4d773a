package backend

import (
	"errors"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Sadvi2004/CodeForge/internal/input/key"
)

// ErrClosed is returned by PollEvent after Shutdown.
var ErrClosed = errors.New("terminal closed")

// Style describes how a cell is drawn.
type Style struct {
	Foreground colorful.Color
	Background colorful.Color
	Bold       bool
	Underline  bool
}

// Terminal wraps a tcell screen.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex

	// Bracketed paste state. Only touched by the polling goroutine.
	pasting bool
	paste   strings.Builder
}

// NewTerminal creates a terminal backend on the controlling tty.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return New(screen), nil
}

// New wraps an existing screen, such as a tcell.SimulationScreen.
func New(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Screen returns the underlying tcell screen.
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnablePaste()
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

// Put draws one grapheme cluster at (x, y). Extra runes of the cluster are
// passed to tcell as combining characters.
func (t *Terminal) Put(x, y int, cluster string, style Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	runes := []rune(cluster)
	if len(runes) == 0 {
		runes = []rune{' '}
	}
	t.screen.SetContent(x, y, runes[0], runes[1:], convertStyle(style))
}

// Fill paints the cells of row y from x0 up to x1 with blanks.
func (t *Terminal) Fill(y, x0, x1 int, style Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	st := convertStyle(style)
	for x := x0; x < x1; x++ {
		t.screen.SetContent(x, y, ' ', nil, st)
	}
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

// PostInterrupt queues data to be returned by PollEvent as an
// EventInterrupt. It is safe to call from any goroutine.
func (t *Terminal) PostInterrupt(data any) error {
	return t.screen.PostEvent(tcell.NewEventInterrupt(data))
}

// PollEvent blocks until the next event. Key presses inside a bracketed
// paste are collected and returned as a single EventPaste.
func (t *Terminal) PollEvent() (Event, error) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{}, ErrClosed
		}

		switch e := ev.(type) {
		case *tcell.EventPaste:
			if e.Start() {
				t.pasting = true
				t.paste.Reset()
				continue
			}
			t.pasting = false
			return Event{Type: EventPaste, PasteText: t.paste.String()}, nil

		case *tcell.EventKey:
			if t.pasting {
				t.paste.WriteString(pasteText(e))
				continue
			}
			k, ok := convertKey(e)
			if !ok {
				continue
			}
			return Event{Type: EventKey, Key: k}, nil

		case *tcell.EventResize:
			w, h := e.Size()
			return Event{Type: EventResize, Width: w, Height: h}, nil

		case *tcell.EventInterrupt:
			return Event{Type: EventInterrupt, Data: e.Data()}, nil
		}
	}
}

// pasteText returns the text a key contributes to a bracketed paste.
func pasteText(e *tcell.EventKey) string {
	switch e.Key() {
	case tcell.KeyRune:
		return string(e.Rune())
	case tcell.KeyEnter, tcell.KeyLF:
		return "\n"
	case tcell.KeyTab:
		return "\t"
	}
	return ""
}

// convertKey converts a tcell key event to a key.Event. It reports false
// for keys the editor has no use for.
func convertKey(e *tcell.EventKey) (key.Event, bool) {
	mods := convertMod(e.Modifiers())

	switch k := e.Key(); k {
	case tcell.KeyRune:
		return key.NewRuneEvent(e.Rune(), mods), true
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods), true
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods), true
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods), true
	case tcell.KeyBacktab:
		return key.NewSpecialEvent(key.KeyTab, mods|key.ModShift), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods), true
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods), true
	case tcell.KeyInsert:
		return key.NewSpecialEvent(key.KeyInsert, mods), true
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods), true
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods), true
	case tcell.KeyPgUp:
		return key.NewSpecialEvent(key.KeyPageUp, mods), true
	case tcell.KeyPgDn:
		return key.NewSpecialEvent(key.KeyPageDown, mods), true
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods), true
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods), true
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods), true
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods), true
	default:
		// Control chords arrive as their own key codes.
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			r := 'a' + rune(k-tcell.KeyCtrlA)
			if mods.HasShift() {
				r = 'A' + rune(k-tcell.KeyCtrlA)
			}
			return key.NewRuneEvent(r, mods|key.ModCtrl), true
		}
	}
	return key.Event{}, false
}

func convertMod(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= key.ModMeta
	}
	return mods
}

func convertStyle(s Style) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(convertColor(s.Foreground)).
		Background(convertColor(s.Background))
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Underline {
		st = st.Underline(true)
	}
	return st
}

func convertColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
