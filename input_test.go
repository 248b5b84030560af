package tabletop

import "testing"

// fakeInput is a scripted InputSource: each pass reads the current fields.
type fakeInput struct {
	x, y     float64
	inside   bool
	released bool
}

func (f *fakeInput) CursorPosition() (float64, float64, bool) {
	return f.x, f.y, f.inside
}

func (f *fakeInput) LeftJustReleased() bool {
	return f.released
}

func TestInsideWindow(t *testing.T) {
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{1279, 719, true},
		{1280, 0, false},
		{0, 720, false},
		{-1, 5, false},
		{5, -1, false},
	}
	for _, tt := range tests {
		if got := insideWindow(tt.x, tt.y, 1280, 720); got != tt.want {
			t.Errorf("insideWindow(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestEbitenInputSetSize(t *testing.T) {
	in := NewEbitenInput(640, 480)
	in.SetSize(1280, 720)
	if in.width != 1280 || in.height != 720 {
		t.Errorf("size = %dx%d, want 1280x720", in.width, in.height)
	}
}

func TestProcessInputRealSourceClick(t *testing.T) {
	s, logs := newObservedScene(t, DefaultLayout())
	s.Update()
	in := &fakeInput{x: 640, y: 360, inside: true, released: true}
	s.SetInput(in)

	s.Update()
	if logs.FilterMessage("clicked card Dog").Len() != 1 {
		t.Error("expected clicked card Dog")
	}

	in.released = false
	s.Update()
	if logs.FilterMessage("clicked card Dog").Len() != 1 {
		t.Error("held or idle pointer should not pick again")
	}
}

func TestProcessInputCursorAbsent(t *testing.T) {
	s, logs := newObservedScene(t, DefaultLayout())
	s.Update()
	logs.TakeAll()
	fp := s.Fingerprint()
	gen := s.Generation()

	s.SetInput(&fakeInput{released: true, inside: false})
	var fired int
	s.OnPick(func(PickResult) { fired++ })
	s.Update()

	if logs.Len() != 0 {
		t.Errorf("absent cursor produced %d log lines", logs.Len())
	}
	if fired != 0 {
		t.Error("absent cursor should not pick")
	}
	if s.Fingerprint() != fp || s.Generation() != gen {
		t.Error("absent cursor should not change state")
	}
}

func TestProcessInputDegenerateCamera(t *testing.T) {
	s, logs := newObservedScene(t, DefaultLayout())
	s.Update()
	logs.TakeAll()
	s.Camera().Zoom = 0
	s.SetInput(&fakeInput{x: 640, y: 360, inside: true, released: true})
	s.Update()
	if logs.Len() != 0 {
		t.Error("failed conversion should skip the click silently")
	}
}

func TestProcessInputNoCamera(t *testing.T) {
	s, logs := newObservedScene(t, DefaultLayout())
	s.SetCamera(nil)
	s.Update()
	logs.TakeAll()
	s.SetInput(&fakeInput{x: 640, y: 360, inside: true, released: true})
	s.Update()
	if logs.Len() != 0 {
		t.Error("no camera should skip the click silently")
	}
}

func TestProcessInputInjectedTakesPrecedence(t *testing.T) {
	s, logs := newObservedScene(t, DefaultLayout())
	s.SetInput(&fakeInput{x: 640, y: 360, inside: true, released: true})
	s.InjectWorldClick(-360, 0)
	s.Update() // injected press; real release ignored
	s.Update() // injected release
	if logs.FilterMessage("clicked card Dog").Len() != 0 {
		t.Error("real input should be ignored while injected events are queued")
	}
	if logs.FilterMessage("clicked card Ostrich").Len() != 1 {
		t.Error("expected injected click on Ostrich")
	}
}
