// SPDX-License-Identifier: MIT

package view

// Screen displays finished canvases.
type Screen interface {
	// Size reports the drawable area in cells.
	Size() (w, h int)

	// Show replaces the visible content with c.
	Show(c *Canvas)
}

// KeyCode classifies a key press, independent of the terminal library.
type KeyCode int

// Key codes understood by the views.
const (
	KeyRune KeyCode = iota
	KeyLeft
	KeyRight
	KeyEnter
	KeyBackspace
	KeyEscape
	KeyResize
)

// Key is one input event. Rune is set only for KeyRune.
type Key struct {
	Code KeyCode
	Rune rune
}

// isQuit reports whether k asks to leave the current view.
func isQuit(k Key) bool {
	return k.Code == KeyEscape || (k.Code == KeyRune && k.Rune == 'q')
}
