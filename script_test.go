package gamelib

import (
	"errors"
	"testing"
)

type spinner struct{ speed float64 }

func TestScriptRegistry(t *testing.T) {
	r := NewScriptRegistry()
	r.Register("spinner", func() any { return &spinner{speed: 2} })

	a, err := InstantiateScript[*spinner](r, "spinner")
	if err != nil {
		t.Fatal(err)
	}
	b, _ := InstantiateScript[*spinner](r, "spinner")
	if a == b {
		t.Error("each call should create a fresh script")
	}
	if a.speed != 2 {
		t.Errorf("speed = %v, want 2", a.speed)
	}
}

func TestScriptRegistryUnknown(t *testing.T) {
	r := NewScriptRegistry()
	if _, err := r.New("ghost"); !errors.Is(err, ErrUnknownScript) {
		t.Errorf("err = %v, want ErrUnknownScript", err)
	}
	var nilReg *ScriptRegistry
	if _, err := nilReg.New("ghost"); !errors.Is(err, ErrUnknownScript) {
		t.Errorf("nil registry err = %v, want ErrUnknownScript", err)
	}
}

func TestInstantiateScriptWrongType(t *testing.T) {
	r := NewScriptRegistry()
	r.Register("spinner", func() any { return &spinner{} })

	_, err := InstantiateScript[Readier](r, "spinner")
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("err = %v, want ErrTypeMismatch", err)
	}
}

func TestScriptRegistryRegisterPanics(t *testing.T) {
	r := NewScriptRegistry()
	r.Register("a", func() any { return nil })

	for name, fn := range map[string]func(){
		"duplicate": func() { r.Register("a", func() any { return nil }) },
		"nil":       func() { r.Register("b", nil) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			fn()
		})
	}
}
