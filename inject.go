package tabletop

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates. Each event is consumed by exactly one pass.
type syntheticPointerEvent struct {
	screenX, screenY float64
	outside          bool
	pressed          bool
}

// InjectPress queues a left-button press at the given screen coordinates.
// Consumed on the next pass.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: true,
	})
}

// InjectRelease queues a left-button release at the given screen coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
	})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two passes; the pick happens on the second.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectClickOutside queues a press and release with the cursor outside the
// window.
func (s *Scene) InjectClickOutside() {
	s.injectQueue = append(s.injectQueue,
		syntheticPointerEvent{outside: true, pressed: true},
		syntheticPointerEvent{outside: true},
	)
}

// InjectWorldClick converts world coordinates to screen space through the
// scene camera and queues a click there. No-op without a camera.
func (s *Scene) InjectWorldClick(wx, wy float64) {
	if s.camera == nil {
		return
	}
	sx, sy := s.camera.WorldToScreen(wx, wy)
	s.InjectClick(sx, sy)
}

// processInjectedInput pops one event from the inject queue. ok is false when
// the queue is empty and real input should be read instead.
func (s *Scene) processInjectedInput() (pointerSample, bool) {
	if len(s.injectQueue) == 0 {
		return pointerSample{}, false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	released := s.injectDown && !evt.pressed
	s.injectDown = evt.pressed
	return pointerSample{
		screenX:  evt.screenX,
		screenY:  evt.screenY,
		inside:   !evt.outside,
		released: released,
	}, true
}
