package main

import (
	"log"

	"github.com/hubastard/orbit/engine/core"
	"github.com/hubastard/orbit/engine/viewport"
)

type closer interface {
	RequestClose()
}

// host drives the viewport from the window loop and handles the viewer's own keys.
type host struct {
	vp  *viewport.Viewport
	win closer

	capturePath    string
	captureAndExit bool
	captureQueued  bool
	err            error
}

// Tick saves pending captures first so the back buffer that gets swapped
// holds the full frame, not the clean capture frame.
func (h *host) Tick() {
	switch {
	case h.captureAndExit:
		h.err = h.vp.SaveRender(h.capturePath)
		h.win.RequestClose()
	case h.captureQueued:
		h.captureQueued = false
		if err := h.vp.SaveRender(h.capturePath); err != nil {
			log.Printf("capture failed: %v", err)
		}
	}
	h.vp.Tick()
}

func (h *host) onEvent(ev core.Event) {
	switch e := ev.(type) {
	case core.EventResize:
		h.vp.Resize(e.W, e.H)
	case core.EventKey:
		if !e.Down {
			return
		}
		switch e.Key {
		case core.KeyF12:
			h.captureQueued = true
		case core.KeyEscape:
			h.win.RequestClose()
		}
	}
}
