package tabletop

import (
	"testing"
)

func TestPickCardBoundary(t *testing.T) {
	g, root := newTestGraph()
	g.AttachChild(root, NodeSpec{
		Name: "Dog", Type: NodeTypeCard, Width: 120, Height: 220,
		Card: &Card{Name: "Dog", Value: 5},
	})
	for _, p := range []Vec2{{60, 110}, {-60, -110}, {60, -110}, {-60, 110}} {
		if _, _, ok := PickCard(g, p); !ok {
			t.Errorf("PickCard(%v) missed, want hit", p)
		}
	}
	if _, _, ok := PickCard(g, Vec2{60.0001, 0}); ok {
		t.Error("PickCard(60.0001, 0) hit, want miss")
	}
}

func TestPickCardIgnoresZonesAndTable(t *testing.T) {
	g, root := newTestGraph()
	Populate(g, root, ZonesLayout())
	if _, _, ok := PickCard(g, Vec2{-450, -180}); ok {
		t.Error("zones carry no card data and must not be picked")
	}
	if _, _, ok := PickCard(g, Vec2{0, 0}); ok {
		t.Error("the table must not be picked")
	}
}

func TestPickCardUsesWorldPosition(t *testing.T) {
	g, root := newTestGraph()
	group := g.AttachChild(root, NodeSpec{Name: "hand", X: 500, Y: 100})
	g.AttachChild(group, NodeSpec{
		Name: "Owl", Type: NodeTypeCard, Width: 100, Height: 100,
		Card: &Card{Name: "Owl"},
	})
	_, n, ok := PickCard(g, Vec2{500, 100})
	if !ok || n.Card.Name != "Owl" {
		t.Error("nested card should be hit at its world position")
	}
	if _, _, ok := PickCard(g, Vec2{0, 0}); ok {
		t.Error("nested card should not be hit at its local position")
	}
}

func TestSceneEndToEndClicks(t *testing.T) {
	s, logs := newObservedScene(t, DefaultLayout())

	s.InjectWorldClick(-360, 0)
	s.Update() // trigger rebuild + press
	s.Update() // release -> pick
	if n := logs.FilterMessage("clicked card Ostrich").Len(); n != 1 {
		t.Errorf("clicked card Ostrich logged %d times, want 1", n)
	}

	s.InjectWorldClick(1000, 0)
	s.Update()
	s.Update()
	if n := logs.FilterMessage("Clicked no card").Len(); n != 1 {
		t.Errorf("Clicked no card logged %d times, want 1", n)
	}
}

func TestSceneEachCardPickable(t *testing.T) {
	s, _ := newObservedScene(t, DefaultLayout())
	s.Update()
	names := map[float64]string{-360: "Ostrich", -180: "Eagle", 0: "Dog", 180: "Camel", 360: "Rabbit"}
	for x, want := range names {
		res := s.PickAt(x, 100)
		if !res.Hit || res.Card.Name != want {
			t.Errorf("PickAt(%v, 100) = %+v, want %s", x, res, want)
		}
		if !s.Graph().Valid(res.Handle) {
			t.Errorf("picked handle for %s should be valid", want)
		}
	}
}

func TestSceneOnPick(t *testing.T) {
	s, _ := newObservedScene(t, DefaultLayout())
	var results []PickResult
	h := s.OnPick(func(r PickResult) { results = append(results, r) })

	s.PickAt(180, 0)
	s.PickAt(0, 500)
	if len(results) != 2 {
		t.Fatalf("OnPick fired %d times, want 2", len(results))
	}
	if !results[0].Hit || results[0].Card != (Card{Name: "Camel", Value: 8, BaseFame: 0}) {
		t.Errorf("first result = %+v", results[0])
	}
	if results[1].Hit || results[1].WorldY != 500 {
		t.Errorf("second result = %+v", results[1])
	}

	h.Remove()
	h.Remove()
	s.PickAt(180, 0)
	if len(results) != 2 {
		t.Error("removed callback should not fire")
	}
	CallbackHandle{}.Remove() // zero handle is a no-op
}

func TestSceneOnPickRemoveDuringDispatch(t *testing.T) {
	s, _ := newObservedScene(t, DefaultLayout())
	var onceCalls, otherCalls int
	var once CallbackHandle
	once = s.OnPick(func(PickResult) {
		onceCalls++
		once.Remove()
	})
	s.OnPick(func(PickResult) { otherCalls++ })

	s.PickAt(-360, 0)
	if onceCalls != 1 || otherCalls != 1 {
		t.Fatalf("first pick: once=%d other=%d, want 1, 1", onceCalls, otherCalls)
	}

	s.PickAt(-360, 0)
	if onceCalls != 1 {
		t.Errorf("self-removed callback fired again: %d", onceCalls)
	}
	if otherCalls != 2 {
		t.Errorf("remaining callback fired %d times, want 2", otherCalls)
	}
}

type recordingStore struct {
	picks []PickResult
}

func (r *recordingStore) EmitPick(res PickResult) {
	r.picks = append(r.picks, res)
}

func TestScenePickStore(t *testing.T) {
	s, _ := newObservedScene(t, DefaultLayout())
	store := &recordingStore{}
	s.SetPickStore(store)
	s.PickAt(-180, 0)
	if len(store.picks) != 1 || store.picks[0].Card.Name != "Eagle" {
		t.Errorf("store received %+v", store.picks)
	}
}

func TestSceneClickAfterRebuildSamePass(t *testing.T) {
	s, logs := newObservedScene(t, DefaultLayout())
	s.InjectWorldClick(0, 0)
	s.Update() // trigger rebuild, press
	s.RequestRebuild()

	var picked PickResult
	s.OnPick(func(r PickResult) { picked = r })
	s.Update() // rebuild first, then release -> pick

	if s.Generation() != 2 {
		t.Fatalf("Generation = %d, want 2", s.Generation())
	}
	if !picked.Hit || picked.Card.Name != "Dog" {
		t.Fatalf("picked = %+v, want Dog", picked)
	}
	if !s.Graph().Valid(picked.Handle) {
		t.Error("pick must resolve against the rebuilt generation")
	}
	if logs.FilterMessage("clicked card Dog").Len() != 1 {
		t.Error("expected clicked card Dog")
	}
}
