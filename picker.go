package tabletop

import (
	"go.uber.org/zap"
)

// PickResult is the outcome of resolving one click. Hit is false for the
// distinguished "no card" outcome.
type PickResult struct {
	Hit    bool
	Handle Handle
	Card   Card
	WorldX float64
	WorldY float64
}

// PickStore receives every pick result, e.g. to forward it into an ECS.
type PickStore interface {
	EmitPick(result PickResult)
}

// PickCard scans the graph for the first card whose rectangle contains p.
// Scan order follows the arena and is not guaranteed. Zones and other nodes
// without card data are never picked.
func PickCard(g *Graph, p Vec2) (Handle, *Node, bool) {
	var (
		hit   Handle
		found *Node
	)
	g.Each(func(h Handle, n *Node) bool {
		if !n.IsCard() {
			return true
		}
		center, ok := g.WorldPosition(h)
		if !ok {
			return true
		}
		if HitTest(center, n.Size(), p) {
			hit, found = h, n
			return false
		}
		return true
	})
	return hit, found, found != nil
}

// PickAt resolves a world-space point to a card, logs the outcome and
// dispatches it to OnPick callbacks and the PickStore.
func (s *Scene) PickAt(wx, wy float64) PickResult {
	res := PickResult{WorldX: wx, WorldY: wy}
	if h, n, ok := PickCard(s.graph, Vec2{wx, wy}); ok {
		res.Hit = true
		res.Handle = h
		res.Card = *n.Card
		s.log.Info("clicked card "+n.Card.Name,
			zap.Int("value", n.Card.Value),
			zap.Int("base_fame", n.Card.BaseFame),
			zap.Stringer("handle", h))
	} else {
		s.log.Info("Clicked no card", zap.Float64("x", wx), zap.Float64("y", wy))
	}
	s.firePick(res)
	return res
}

// --- Pick callbacks ---

type pickHandler struct {
	id uint32
	fn func(PickResult)
}

type handlerRegistry struct {
	pick   []pickHandler
	nextID uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires. Safe to call from
// inside a pick callback; the dispatch in progress still completes.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.pick
	for i := range s {
		if s[i].id == h.id {
			// Build a new backing array; firePick may be ranging over the old one.
			kept := make([]pickHandler, 0, len(s)-1)
			kept = append(kept, s[:i]...)
			h.reg.pick = append(kept, s[i+1:]...)
			return
		}
	}
}

// OnPick registers a scene-level callback fired once per resolved click,
// including "no card" outcomes.
func (s *Scene) OnPick(fn func(PickResult)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.pick = append(s.handlers.pick, pickHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers}
}

// SetPickStore sets the optional pick bridge.
func (s *Scene) SetPickStore(store PickStore) {
	s.store = store
}

func (s *Scene) firePick(res PickResult) {
	for _, h := range s.handlers.pick {
		h.fn(res)
	}
	if s.store != nil {
		s.store.EmitPick(res)
	}
}
