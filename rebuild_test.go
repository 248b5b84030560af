package tabletop

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return zap.New(core), logs
}

func newTestController(t *testing.T) (*RebuildController, *Graph, Handle, *int, *observer.ObservedLogs) {
	t.Helper()
	g, root := newTestGraph()
	calls := new(int)
	populate := func(g *Graph, parent Handle) Population {
		*calls++
		return Populate(g, parent, DefaultLayout())
	}
	log, logs := newObservedLogger()
	c := NewRebuildController(g, root, populate, log)
	populate(g, root)
	*calls = 0
	return c, g, root, calls, logs
}

func TestRebuildControllerIdleByDefault(t *testing.T) {
	c, _, _, calls, logs := newTestController(t)
	if c.State() != RebuildIdle {
		t.Errorf("State = %v, want idle", c.State())
	}
	if c.Process() {
		t.Error("Process with no signal should not rebuild")
	}
	if *calls != 0 || logs.Len() != 0 {
		t.Errorf("idle pass populated %d times and logged %d lines", *calls, logs.Len())
	}
}

func TestRebuildControllerSingleSignal(t *testing.T) {
	c, g, root, calls, logs := newTestController(t)
	before := append([]Handle(nil), g.Children(root)...)

	c.Request()
	if c.State() != RebuildPending {
		t.Errorf("State = %v, want pending", c.State())
	}
	if !c.Process() {
		t.Fatal("Process should rebuild after a signal")
	}
	if c.State() != RebuildIdle {
		t.Errorf("State after Process = %v, want idle", c.State())
	}
	if *calls != 1 || c.Rebuilds() != 1 {
		t.Errorf("calls = %d, rebuilds = %d; want 1, 1", *calls, c.Rebuilds())
	}
	for _, h := range before {
		if g.Valid(h) {
			t.Errorf("handle %s from the previous generation survived", h)
		}
	}
	if n := logs.FilterMessage("World cleared!").Len(); n != 1 {
		t.Errorf("World cleared! logged %d times, want 1", n)
	}
}

func TestRebuildControllerCollapsesSignals(t *testing.T) {
	c, g, root, calls, logs := newTestController(t)
	for i := 0; i < 5; i++ {
		c.Request()
	}
	if !c.Process() {
		t.Fatal("expected a rebuild")
	}
	if *calls != 1 {
		t.Errorf("populate called %d times, want 1", *calls)
	}
	if n := logs.FilterMessage("World cleared!").Len(); n != 1 {
		t.Errorf("World cleared! logged %d times, want 1", n)
	}
	if got := len(g.Children(root)); got != 6 {
		t.Errorf("root children = %d, want 6", got)
	}
	if c.Process() {
		t.Error("second Process in a later pass should be a no-op")
	}
}

func TestRebuildControllerSkipsWithoutRoot(t *testing.T) {
	g := NewGraph()
	calls := 0
	c := NewRebuildController(g, Handle{Index: 0, Generation: 1}, func(*Graph, Handle) Population {
		calls++
		return Population{}
	}, nil)
	c.Request()
	if c.Process() {
		t.Error("rebuild should be skipped with no root")
	}
	if calls != 0 {
		t.Errorf("populate called %d times, want 0", calls)
	}
	if c.State() != RebuildIdle {
		t.Error("signal should still be drained")
	}
}

func TestRebuildStateString(t *testing.T) {
	if RebuildIdle.String() != "idle" || RebuildPending.String() != "pending" {
		t.Error("unexpected RebuildState strings")
	}
}

func TestOnceTriggerFiresOnce(t *testing.T) {
	var tr OnceTrigger
	if !tr.Armed() {
		t.Fatal("new trigger should be armed")
	}
	fired := 0
	for i := 0; i < 100; i++ {
		if tr.Poll() {
			fired++
		}
	}
	if fired != 1 || tr.Fires() != 1 {
		t.Errorf("fired = %d (Fires %d), want 1", fired, tr.Fires())
	}
	if tr.Armed() {
		t.Error("trigger should be disarmed after firing")
	}
}

func TestOnceTriggerRearm(t *testing.T) {
	var tr OnceTrigger
	tr.Poll()
	tr.Rearm()
	tr.Rearm() // re-arming twice still fires once
	if !tr.Poll() {
		t.Error("re-armed trigger should fire")
	}
	if tr.Poll() {
		t.Error("trigger should fire only once per arm")
	}
	if tr.Fires() != 2 {
		t.Errorf("Fires = %d, want 2", tr.Fires())
	}
}
