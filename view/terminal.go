// SPDX-License-Identifier: MIT

package view

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal is a Screen backed by a tcell terminal. Keys arrive on the
// channel returned by Keys, pumped by a background goroutine.
type Terminal struct {
	screen tcell.Screen
	style  tcell.Style
	keys   chan Key

	stop     chan struct{} // closed by Close; unblocks a pending key send
	done     chan struct{} // closed when pump returns
	stopOnce sync.Once
}

// NewTerminal initializes the terminal and starts the key pump.
// Call Close to restore the terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	return newTerminal(screen), nil
}

// newTerminal wraps an initialized screen and starts the key pump.
func newTerminal(screen tcell.Screen) *Terminal {
	t := &Terminal{
		screen: screen,
		style:  tcell.StyleDefault.Foreground(tcell.ColorWhite),
		keys:   make(chan Key, 16),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go t.pump()

	return t
}

// Size reports the terminal size in cells.
func (t *Terminal) Size() (w, h int) {
	return t.screen.Size()
}

// Show draws c onto the terminal.
func (t *Terminal) Show(c *Canvas) {
	t.screen.Clear()
	for y := 0; y < c.H; y++ {
		for x := 0; x < c.W; x++ {
			if r := c.At(x, y); r != ' ' {
				t.screen.SetContent(x, y, r, nil, t.style)
			}
		}
	}
	t.screen.Show()
}

// Keys returns the input channel. It is closed by Close; keys still
// buffered at that point remain readable.
func (t *Terminal) Keys() <-chan Key {
	return t.keys
}

// Close stops the key pump and restores the terminal. It returns once the
// pump has exited, even if nobody reads Keys. Safe to call more than once.
func (t *Terminal) Close() {
	t.stopOnce.Do(func() {
		close(t.stop)
		// Wake a pump parked in PollEvent.
		_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
		t.screen.Fini()
		<-t.done
	})
}

// pump translates tcell events until Close.
func (t *Terminal) pump() {
	defer close(t.done)
	defer close(t.keys)
	for {
		select {
		case <-t.stop:
			return
		default:
		}

		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		k, ok := translate(ev)
		if !ok {
			continue
		}

		select {
		case t.keys <- k:
		case <-t.stop:
			return
		}
	}
}

// translate maps a tcell event onto a Key.
func translate(ev tcell.Event) (Key, bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Key{Code: KeyResize}, true
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyLeft:
			return Key{Code: KeyLeft}, true
		case tcell.KeyRight:
			return Key{Code: KeyRight}, true
		case tcell.KeyEnter:
			return Key{Code: KeyEnter}, true
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			return Key{Code: KeyBackspace}, true
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return Key{Code: KeyEscape}, true
		case tcell.KeyRune:
			return Key{Code: KeyRune, Rune: ev.Rune()}, true
		}
	}

	return Key{}, false
}
