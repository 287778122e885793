// SPDX-License-Identifier: MIT

package view

// Hold draws with draw and redraws on every resize until a quit key
// arrives or keys is closed.
func Hold(screen Screen, keys <-chan Key, draw func(c *Canvas)) {
	show := func() {
		w, h := screen.Size()
		c := NewCanvas(w, h)
		draw(c)
		c.Text(0, h-1, "esc/q: continue")
		screen.Show(c)
	}

	show()
	for k := range keys {
		if isQuit(k) {
			return
		}
		if k.Code == KeyResize {
			show()
		}
	}
}

// Interact runs the slider until it asks to close or keys is closed.
func Interact(screen Screen, keys <-chan Key, s *Slider) {
	show := func() {
		w, h := screen.Size()
		c := NewCanvas(w, h)
		s.Render(c)
		screen.Show(c)
	}

	show()
	for k := range keys {
		if !s.HandleKey(k) {
			return
		}
		show()
	}
}
