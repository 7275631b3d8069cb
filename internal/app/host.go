package app

import "github.com/rs/zerolog/log"

// host is the resize.Host of the whole screen. While a drag is active the
// pointer is captured: every mouse event goes to the dragging panel only.
type host struct {
	pointer  int
	resizing bool
}

func (h *host) BeginResize(pointerID int) {
	h.pointer = pointerID
	h.resizing = true
	log.Debug().Int("pointer", pointerID).Msg("pointer captured")
}

func (h *host) EndResize() {
	h.pointer = 0
	h.resizing = false
}
