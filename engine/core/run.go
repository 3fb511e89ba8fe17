package core

import (
	"log"
	"runtime"
)

// Ticker is driven once per displayed frame.
type Ticker interface {
	Tick()
}

// Run drives t from the window's frame loop until the window is asked to close.
// onEvent sees every window event before the next tick.
func Run(win Window, t Ticker, onEvent func(Event)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win.SetEventCallback(func(ev Event) {
		if onEvent != nil {
			onEvent(ev)
		}
	})

	for !win.ShouldClose() {
		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		t.Tick()

		// Present
		win.SwapBuffers()
	}

	log.Println("Viewport exit")
	return nil
}
