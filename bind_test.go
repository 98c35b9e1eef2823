package gamelib

import (
	"errors"
	"testing"
)

type hud struct {
	Sprite *Node
	Label  *Node
	Health *Node

	player    *playerScript
	setCalls  []string
	bindCalls int
}

func (h *hud) Bindings() []Binding {
	h.bindCalls++
	return []Binding{
		Property("Player", func(p *playerScript) {
			h.player = p
			h.setCalls = append(h.setCalls, "Player")
		}),
		Field(&h.Sprite, "Sprite"),
		Field(&h.Label, "Label", WithKey("panel/Title")),
		Field(&h.Health, "Health", WithType(NodeTypeSprite)),
	}
}

type playerScript struct{ hp int }

type emptyTarget struct{ untouched *Node }

func (emptyTarget) Bindings() []Binding { return nil }

func newHUDTree() (ctx, sprite, title, health, player *Node) {
	ctx = NewContainer("hud")
	sprite = NewSprite("Sprite", 8, 8)
	sprite.SetUniqueName(true)
	panel := NewContainer("panel")
	title = NewSprite("Title", 8, 8)
	health = NewSprite("Health", 8, 8)
	health.SetUniqueName(true)
	player = NewContainer("Player")
	player.SetUniqueName(true)
	player.Script = &playerScript{hp: 3}

	ctx.AddChild(sprite)
	ctx.AddChild(panel)
	panel.AddChild(title)
	ctx.AddChild(health)
	ctx.AddChild(player)
	return
}

func TestBindingKey(t *testing.T) {
	var n *Node
	tests := []struct {
		name string
		b    Binding
		want string
	}{
		{"derived", Field(&n, "Sprite"), "%Sprite"},
		{"explicit", Field(&n, "Sprite", WithKey("a/b")), "a/b"},
		{"explicit unique", Field(&n, "Sprite", WithKey("%Other")), "%Other"},
		{"empty explicit falls back", Field(&n, "Sprite", WithKey("")), "%Sprite"},
		{"property derived", Property("Hp", func(*Node) {}), "%Hp"},
	}
	for _, tt := range tests {
		if got := tt.b.Key(); got != tt.want {
			t.Errorf("%s: Key() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestBindMembers(t *testing.T) {
	ctx, sprite, title, health, player := newHUDTree()
	h := &hud{}

	if err := BindMembers(ctx, h); err != nil {
		t.Fatalf("BindMembers: %v", err)
	}
	if h.Sprite != sprite {
		t.Error("Sprite should hold the %Sprite node")
	}
	if h.Label != title {
		t.Error("Label should hold the node at the explicit key, ignoring its name")
	}
	if h.Health != health {
		t.Error("Health should be bound")
	}
	if h.player != player.Script {
		t.Error("Player property should receive the node's script")
	}
}

func TestBindMembersZeroBindings(t *testing.T) {
	ctx := NewContainer("ctx")
	target := emptyTarget{}
	if err := BindMembers(ctx, target); err != nil {
		t.Fatalf("BindMembers with no bindings: %v", err)
	}
	if target.untouched != nil {
		t.Error("target should be unchanged")
	}
}

func TestBindMembersLookupFailure(t *testing.T) {
	ctx := NewContainer("ctx")
	keep := NewContainer("keep")
	var n *Node = keep

	err := Bind(ctx, Field(&n, "Sprite"))
	if !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("err = %v, want ErrNodeNotFound", err)
	}
	var le *LookupError
	if !errors.As(err, &le) {
		t.Fatalf("err should be a *LookupError, got %T", err)
	}
	if le.Member != "Sprite" || le.Key != "%Sprite" {
		t.Errorf("LookupError = %+v", le)
	}
	if n != keep {
		t.Error("failed member must not be assigned")
	}
}

func TestBindMembersTypeMismatchScript(t *testing.T) {
	ctx := NewContainer("ctx")
	plain := NewContainer("Player")
	plain.SetUniqueName(true)
	ctx.AddChild(plain)

	var p *playerScript
	err := Bind(ctx, Field(&p, "Player"))
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("err = %v, want ErrTypeMismatch", err)
	}
	var tm *TypeMismatchError
	if !errors.As(err, &tm) || tm.Want != "*gamelib.playerScript" {
		t.Errorf("TypeMismatchError = %+v", tm)
	}
	if p != nil {
		t.Error("member must stay nil on mismatch")
	}
}

func TestBindMembersTypeMismatchNodeType(t *testing.T) {
	ctx := NewContainer("ctx")
	c := NewContainer("Health")
	c.SetUniqueName(true)
	ctx.AddChild(c)

	var n *Node
	err := Bind(ctx, Field(&n, "Health", WithType(NodeTypeSprite)))
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("err = %v, want ErrTypeMismatch", err)
	}
	if n != nil {
		t.Error("member must stay nil on mismatch")
	}
}

func TestBindFieldsBeforeProperties(t *testing.T) {
	ctx := NewContainer("ctx")
	a := NewContainer("A")
	a.SetUniqueName(true)
	ctx.AddChild(a)

	var f1, f2 *Node
	var sawFields bool
	err := Bind(ctx,
		Property("A", func(*Node) { sawFields = f1 != nil && f2 != nil }),
		Field(&f1, "A"),
		Field(&f2, "A"),
	)
	if err != nil {
		t.Fatal(err)
	}
	if !sawFields {
		t.Error("property setter ran before all fields were bound")
	}
}

func TestBindStopsAtFirstFailure(t *testing.T) {
	ctx := NewContainer("ctx")
	a := NewContainer("A")
	a.SetUniqueName(true)
	ctx.AddChild(a)

	var first, second, third *Node
	err := Bind(ctx,
		Field(&first, "A"),
		Field(&second, "Missing"),
		Field(&third, "A"),
	)
	if err == nil {
		t.Fatal("expected error")
	}
	if first != a {
		t.Error("members before the failure stay bound")
	}
	if second != nil || third != nil {
		t.Error("the failing member and later members are untouched")
	}
}

func TestBindMembersRebinds(t *testing.T) {
	ctx, sprite, _, _, _ := newHUDTree()
	h := &hud{}
	if err := BindMembers(ctx, h); err != nil {
		t.Fatal(err)
	}

	replacement := NewSprite("Sprite", 1, 1)
	replacement.SetUniqueName(true)
	sprite.RemoveFromParent()
	ctx.AddChild(replacement)

	if err := BindMembers(ctx, h); err != nil {
		t.Fatal(err)
	}
	if h.Sprite != replacement {
		t.Error("second BindMembers should re-resolve every member")
	}
	if h.bindCalls != 2 || len(h.setCalls) != 2 {
		t.Errorf("bindCalls = %d, setCalls = %v", h.bindCalls, h.setCalls)
	}
}

func TestMustBindMembersPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic")
		}
	}()
	MustBindMembers(NewContainer("ctx"), &hud{})
}

func TestBindInterfaceField(t *testing.T) {
	type named interface{ Path() string }
	ctx, sprite, _, _, _ := newHUDTree()

	var n named
	if err := Bind(ctx, Field(&n, "Sprite")); err != nil {
		t.Fatal(err)
	}
	if n != sprite {
		t.Error("interface field satisfied by *Node should receive the node")
	}
}

func TestNodeAs(t *testing.T) {
	n := NewContainer("n")
	if v, ok := NodeAs[*Node](n); !ok || v != n {
		t.Error("NodeAs[*Node] should return the node")
	}
	if _, ok := NodeAs[*playerScript](n); ok {
		t.Error("NodeAs without a script should fail")
	}
	n.Script = &playerScript{hp: 1}
	if v, ok := NodeAs[*playerScript](n); !ok || v.hp != 1 {
		t.Error("NodeAs should return the script")
	}
}
