package gamelib

import "github.com/hajimehoshi/ebiten/v2"

// ClickContext carries click event data.
type ClickContext struct {
	Node     *Node
	EntityID uint32
	UserData any
	GlobalX  float64
	GlobalY  float64
	LocalX   float64
	LocalY   float64
	Button   MouseButton
}

// OnMouseClick runs action when ctx is a click with the given button.
//
//	node.OnClick = func(ctx gamelib.ClickContext) {
//		gamelib.OnMouseClick(ctx, gamelib.MouseButtonRight, openMenu)
//	}
func OnMouseClick(ctx ClickContext, button MouseButton, action func()) {
	if ctx.Button != button {
		return
	}
	action()
}

// MouseClickFilter wraps fn so it only sees clicks with the given button.
func MouseClickFilter(button MouseButton, fn func(ClickContext)) func(ClickContext) {
	return func(ctx ClickContext) {
		if ctx.Button == button {
			fn(ctx)
		}
	}
}

// --- Mouse pointer state ---

type pointerState struct {
	down    bool
	button  MouseButton
	hitNode *Node
}

// --- Handler registry ---

type clickHandler struct {
	id uint32
	fn func(ClickContext)
}

type handlerRegistry struct {
	nextID uint32
	click  []clickHandler
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	scene *Scene
}

// Remove unregisters this callback. Safe to call more than once.
func (h CallbackHandle) Remove() {
	if h.scene == nil {
		return
	}
	r := &h.scene.handlers
	for i, c := range r.click {
		if c.id == h.id {
			r.click = append(r.click[:i], r.click[i+1:]...)
			return
		}
	}
}

// OnClick registers a scene-level callback for click events on any node.
func (s *Scene) OnClick(fn func(ClickContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.click = append(s.handlers.click, clickHandler{id: id, fn: fn})
	return CallbackHandle{id: id, scene: s}
}

// --- Hit testing ---

// nodeContainsLocal reports whether the local point lies inside n's
// rectangle. Only sprites have an area.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.Type != NodeTypeSprite {
		return false
	}
	return lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height
}

// hitTest returns the topmost visible interactable node at the world point.
// Later siblings are drawn over earlier ones and win ties.
func (s *Scene) hitTest(wx, wy float64) *Node {
	var walk func(n *Node) *Node
	walk = func(n *Node) *Node {
		if !n.Visible {
			return nil
		}
		for i := len(n.children) - 1; i >= 0; i-- {
			if hit := walk(n.children[i]); hit != nil {
				return hit
			}
		}
		if n.Interactable {
			lx, ly := n.WorldToLocal(wx, wy)
			if nodeContainsLocal(n, lx, ly) {
				return n
			}
		}
		return nil
	}
	return walk(s.root)
}

// --- Per-frame processing ---

// pollMouse feeds the real mouse state through processPointer.
func (s *Scene) pollMouse() {
	mx, my := ebiten.CursorPosition()
	var pressed bool
	var button MouseButton
	for _, b := range [...]MouseButton{MouseButtonLeft, MouseButtonRight, MouseButtonMiddle} {
		if ebiten.IsMouseButtonPressed(b.ebitenButton()) {
			pressed, button = true, b
			break
		}
	}
	s.processPointer(float64(mx), float64(my), pressed, button)
}

// processPointer turns press/release transitions into pointer and click
// events. A click needs press and release over the same node.
func (s *Scene) processPointer(wx, wy float64, pressed bool, button MouseButton) {
	ps := &s.pointer
	switch {
	case pressed && !ps.down:
		target := s.hitTest(wx, wy)
		ps.down = true
		ps.button = button
		ps.hitNode = target
		s.emitPointer(EventPointerDown, target, wx, wy, button)
	case !pressed && ps.down:
		target := s.hitTest(wx, wy)
		if ps.hitNode != nil && ps.hitNode == target {
			s.fireClick(target, wx, wy, ps.button)
		}
		s.emitPointer(EventPointerUp, target, wx, wy, ps.button)
		ps.down = false
		ps.hitNode = nil
	}
}

func (s *Scene) emitPointer(typ EventType, n *Node, wx, wy float64, button MouseButton) {
	if n == nil || s.store == nil {
		return
	}
	lx, ly := n.WorldToLocal(wx, wy)
	s.emit(InteractionEvent{Type: typ, EntityID: n.EntityID, GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly, Button: button})
}

func (s *Scene) fireClick(n *Node, wx, wy float64, button MouseButton) {
	lx, ly := n.WorldToLocal(wx, wy)
	ctx := ClickContext{
		Node:     n,
		EntityID: n.EntityID,
		UserData: n.UserData,
		GlobalX:  wx,
		GlobalY:  wy,
		LocalX:   lx,
		LocalY:   ly,
		Button:   button,
	}
	if n.OnClick != nil {
		n.OnClick(ctx)
	}
	for _, h := range s.handlers.click {
		h.fn(ctx)
	}
	s.emit(InteractionEvent{Type: EventClick, EntityID: n.EntityID, GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly, Button: button})
}
