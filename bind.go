package gamelib

import (
	"fmt"
	"reflect"
)

// Bindable is implemented by types whose members are populated from the node
// tree. Bindings returns the marked members; unmarked members are simply
// absent from the table.
//
//	type HUD struct {
//		Score *gamelib.Node
//		Label *gamelib.Node
//		Player *Player
//	}
//
//	func (h *HUD) Bindings() []gamelib.Binding {
//		return []gamelib.Binding{
//			gamelib.Field(&h.Score, "Score"),
//			gamelib.Field(&h.Label, "Label", gamelib.WithKey("Panel/Label")),
//			gamelib.Property("Player", h.SetPlayer),
//		}
//	}
//
// Scripts created by PackedScene.Instantiate are bound automatically before
// Ready runs. Hand-built trees call BindMembers themselves.
type Bindable interface {
	Bindings() []Binding
}

// Binding is one marked member: where to store the node and which key
// resolves it. Build with Field or Property.
type Binding struct {
	member   string
	key      string
	property bool
	wantType NodeType
	typed    bool
	assign   func(*Node) (want string, ok bool)
}

// BindOption adjusts a Binding.
type BindOption func(*Binding)

// WithKey sets an explicit lookup key (a path or "%Name"). An empty key
// leaves the derived "%<member>" key in place.
func WithKey(key string) BindOption {
	return func(b *Binding) { b.key = key }
}

// WithType requires the resolved node to be of type t.
func WithType(t NodeType) BindOption {
	return func(b *Binding) {
		b.wantType = t
		b.typed = true
	}
}

// Field marks the variable at dst, declared as name, for binding. T is either
// *Node or a type implemented by the resolved node's Script.
func Field[T any](dst *T, name string, opts ...BindOption) Binding {
	if dst == nil {
		panic("gamelib: Field requires a destination")
	}
	return newBinding(name, false, opts, func(n *Node) (string, bool) {
		v, ok := NodeAs[T](n)
		if !ok {
			return typeName[T](), false
		}
		*dst = v
		return "", true
	})
}

// Property marks a setter-backed member. Property bindings run after all
// Field bindings of the same table.
func Property[T any](name string, set func(T), opts ...BindOption) Binding {
	if set == nil {
		panic("gamelib: Property requires a setter")
	}
	return newBinding(name, true, opts, func(n *Node) (string, bool) {
		v, ok := NodeAs[T](n)
		if !ok {
			return typeName[T](), false
		}
		set(v)
		return "", true
	})
}

func newBinding(name string, property bool, opts []BindOption, assign func(*Node) (string, bool)) Binding {
	b := Binding{member: name, property: property, assign: assign}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Member returns the declared member name.
func (b Binding) Member() string { return b.member }

// IsProperty reports whether the binding was created with Property.
func (b Binding) IsProperty() bool { return b.property }

// Key returns the lookup key: the explicit key when set, otherwise the
// member name prefixed with UniquePrefix.
func (b Binding) Key() string {
	if b.key != "" {
		return b.key
	}
	return string(UniquePrefix) + b.member
}

// BindMembers resolves every binding of target against the tree around
// context and assigns the results. Fields are bound before properties. The
// first failure is returned as a *LookupError or *TypeMismatchError; members
// bound before it keep their new values and the failing member is untouched.
func BindMembers(context *Node, target Bindable) error {
	return Bind(context, target.Bindings()...)
}

// MustBindMembers is like BindMembers but panics on failure.
func MustBindMembers(context *Node, target Bindable) {
	if err := BindMembers(context, target); err != nil {
		panic("gamelib: " + err.Error())
	}
}

// Bind is BindMembers over an explicit binding table.
func Bind(context *Node, bindings ...Binding) error {
	if context == nil {
		panic("gamelib: cannot bind against a nil node")
	}
	for _, property := range [2]bool{false, true} {
		for i := range bindings {
			if bindings[i].property != property {
				continue
			}
			if err := bindOne(context, &bindings[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

func bindOne(context *Node, b *Binding) error {
	key := b.Key()
	n := context.resolve(key)
	if n == nil {
		return &LookupError{Member: b.member, Key: key, From: context.Path()}
	}
	if b.typed && n.Type != b.wantType {
		return &TypeMismatchError{Member: b.member, Key: key, Want: b.wantType.String() + " node", Got: describeNode(n)}
	}
	if want, ok := b.assign(n); !ok {
		return &TypeMismatchError{Member: b.member, Key: key, Want: want, Got: describeNode(n)}
	}
	return nil
}

// NodeAs converts n to T. *Node (or any interface *Node satisfies) converts
// directly; any other T must be implemented by n.Script.
func NodeAs[T any](n *Node) (T, bool) {
	if v, ok := any(n).(T); ok {
		return v, true
	}
	if n.Script != nil {
		if v, ok := n.Script.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

func describeNode(n *Node) string {
	if n.Script != nil {
		return fmt.Sprintf("%s node with script %T", n.Type, n.Script)
	}
	return n.Type.String() + " node"
}
