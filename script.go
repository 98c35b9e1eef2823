package gamelib

import "fmt"

// ScriptFactory creates a fresh behavior value for a node.
type ScriptFactory func() any

// Readier is implemented by scripts that need to run once their node and all
// of its descendants exist.
type Readier interface {
	Ready(n *Node) error
}

// ScriptRegistry maps script names, as used in packed scene files, to
// factories.
type ScriptRegistry struct {
	factories map[string]ScriptFactory
}

// NewScriptRegistry creates an empty registry.
func NewScriptRegistry() *ScriptRegistry {
	return &ScriptRegistry{factories: make(map[string]ScriptFactory)}
}

// Register adds a factory under name. Panics on a nil factory or a
// duplicate name.
func (r *ScriptRegistry) Register(name string, factory ScriptFactory) {
	if factory == nil {
		panic("gamelib: nil script factory for " + name)
	}
	if _, dup := r.factories[name]; dup {
		panic("gamelib: script registered twice: " + name)
	}
	r.factories[name] = factory
}

// New creates a script by name.
func (r *ScriptRegistry) New(name string) (any, error) {
	if r == nil {
		return nil, fmt.Errorf("new script %q: %w", name, ErrUnknownScript)
	}
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("new script %q: %w", name, ErrUnknownScript)
	}
	return f(), nil
}

// InstantiateScript creates a script by name and converts it to T.
func InstantiateScript[T any](r *ScriptRegistry, name string) (T, error) {
	var zero T
	v, err := r.New(name)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, &TypeMismatchError{Key: name, Want: typeName[T](), Got: fmt.Sprintf("%T", v)}
	}
	return t, nil
}
