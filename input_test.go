package gamelib

import "testing"

func click(s *Scene, x, y float64, button MouseButton) {
	s.InjectClick(x, y, button)
	s.Advance(0)
	s.Advance(0)
}

func TestHitTestTopmostWins(t *testing.T) {
	s := NewScene()
	bottom := NewSprite("bottom", 100, 100)
	bottom.Interactable = true
	top := NewSprite("top", 50, 50)
	top.Interactable = true
	s.Root().AddChild(bottom)
	s.Root().AddChild(top)
	updateWorldTransform(s.root, identityTransform, 1, false)

	if got := s.hitTest(25, 25); got != top {
		t.Errorf("hitTest(25,25) = %v, want top", got)
	}
	if got := s.hitTest(75, 75); got != bottom {
		t.Errorf("hitTest(75,75) = %v, want bottom", got)
	}
	if got := s.hitTest(200, 200); got != nil {
		t.Errorf("hitTest outside = %v, want nil", got)
	}
}

func TestHitTestSkipsHiddenAndInert(t *testing.T) {
	s := NewScene()
	inert := NewSprite("inert", 100, 100)
	hidden := NewSprite("hidden", 100, 100)
	hidden.Interactable = true
	hidden.Visible = false
	s.Root().AddChild(inert)
	s.Root().AddChild(hidden)
	updateWorldTransform(s.root, identityTransform, 1, false)

	if got := s.hitTest(10, 10); got != nil {
		t.Errorf("hitTest = %s, want nil", got.Name)
	}
}

func TestHitTestTransformedNode(t *testing.T) {
	s := NewScene()
	parent := NewContainer("parent")
	parent.SetPosition(100, 100)
	parent.SetScale(2, 2)
	sprite := NewSprite("s", 10, 10)
	sprite.Interactable = true
	parent.AddChild(sprite)
	s.Root().AddChild(parent)
	updateWorldTransform(s.root, identityTransform, 1, false)

	if got := s.hitTest(115, 115); got != sprite {
		t.Error("scaled sprite should cover (115, 115)")
	}
	if got := s.hitTest(125, 125); got != nil {
		t.Error("(125, 125) is outside the scaled sprite")
	}
}

func TestNodeOnClickAndContext(t *testing.T) {
	s, sprite := newClickScene()
	sprite.SetPosition(10, 20)
	sprite.EntityID = 4
	sprite.UserData = "payload"

	var got ClickContext
	sprite.OnClick = func(ctx ClickContext) { got = ctx }
	click(s, 15, 30, MouseButtonRight)

	if got.Node != sprite || got.EntityID != 4 || got.UserData != "payload" {
		t.Errorf("context = %+v", got)
	}
	if got.GlobalX != 15 || got.GlobalY != 30 || got.LocalX != 5 || got.LocalY != 10 {
		t.Errorf("coords = (%v,%v) local (%v,%v)", got.GlobalX, got.GlobalY, got.LocalX, got.LocalY)
	}
	if got.Button != MouseButtonRight {
		t.Errorf("Button = %v, want right", got.Button)
	}
}

func TestOnMouseClickFiltersButton(t *testing.T) {
	s, sprite := newClickScene()
	var left, right int
	sprite.OnClick = func(ctx ClickContext) {
		OnMouseClick(ctx, MouseButtonLeft, func() { left++ })
	}
	s.OnClick(MouseClickFilter(MouseButtonRight, func(ClickContext) { right++ }))

	click(s, 10, 10, MouseButtonLeft)
	click(s, 10, 10, MouseButtonRight)
	click(s, 10, 10, MouseButtonMiddle)

	if left != 1 {
		t.Errorf("left = %d, want 1", left)
	}
	if right != 1 {
		t.Errorf("right = %d, want 1", right)
	}
}

func TestCallbackHandleRemove(t *testing.T) {
	s, _ := newClickScene()
	var a, b int
	ha := s.OnClick(func(ClickContext) { a++ })
	s.OnClick(func(ClickContext) { b++ })

	click(s, 10, 10, MouseButtonLeft)
	ha.Remove()
	ha.Remove()
	click(s, 10, 10, MouseButtonLeft)

	if a != 1 || b != 2 {
		t.Errorf("a = %d, b = %d, want 1 and 2", a, b)
	}
	CallbackHandle{}.Remove() // zero handle is a no-op
}

func TestPointerEventsReachStore(t *testing.T) {
	s, sprite := newClickScene()
	sprite.EntityID = 11
	store := &recordingStore{}
	s.SetEntityStore(store)

	click(s, 10, 10, MouseButtonLeft)

	want := []EventType{EventPointerDown, EventClick, EventPointerUp}
	if len(store.events) != len(want) {
		t.Fatalf("events = %+v", store.events)
	}
	for i, typ := range want {
		if store.events[i].Type != typ || store.events[i].EntityID != 11 {
			t.Errorf("event %d = %+v, want type %v", i, store.events[i], typ)
		}
	}
}
