package gamelib

import (
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, interaction and timer events are forwarded to it.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries event data for the ECS bridge.
type InteractionEvent struct {
	Type     EventType
	EntityID uint32
	GlobalX  float64
	GlobalY  float64
	LocalX   float64
	LocalY   float64
	Button   MouseButton
	// Elapsed is the scene time at which an EventTimer fired.
	Elapsed time.Duration
}

// Scene is the top-level object that owns the node tree, the update loop,
// timers, tweens and input state.
type Scene struct {
	root  *Node
	store EntityStore
	debug bool

	logger       *slog.Logger
	customLogger bool

	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color

	updateFunc func() error

	// Scene clock, advanced only by Update/Advance.
	now      time.Duration
	timers   timerQueue
	timerSeq uint64

	tweens []*TweenGroup

	// Input state
	handlers    handlerRegistry
	pointer     pointerState
	injectQueue []syntheticPointerEvent
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Interactable = true
	return &Scene{
		root:   root,
		logger: slog.New(slog.DiscardHandler),
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Now returns the accumulated scene time.
func (s *Scene) Now() time.Duration {
	return s.now
}

// SetUpdateFunc sets a function called once per Update after timers and
// tweens have run. A returned error stops Run.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Update advances the scene by one ebiten tick, reading the real mouse when
// no injected input is queued.
func (s *Scene) Update() error {
	return s.step(time.Second/time.Duration(ebiten.TPS()), true)
}

// Advance steps the scene by dt: refreshes world transforms, consumes one
// injected input event, fires due timers, advances tweens, then calls the
// update func. It never reads the real mouse, which makes it the entry
// point for deterministic stepping.
func (s *Scene) Advance(dt time.Duration) error {
	return s.step(dt, false)
}

func (s *Scene) step(dt time.Duration, pollMouse bool) error {
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	if !s.processInjectedInput() && pollMouse {
		s.pollMouse()
	}

	if dt > 0 {
		s.now += dt
	}
	s.fireTimers()
	s.updateTweens(float32(dt.Seconds()))

	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// Tween registers g to be advanced by the scene each Advance until it is Done.
func (s *Scene) Tween(g *TweenGroup) *TweenGroup {
	s.tweens = append(s.tweens, g)
	return g
}

func (s *Scene) updateTweens(dt float32) {
	live := s.tweens[:0]
	for _, g := range s.tweens {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	clear(s.tweens[len(live):])
	s.tweens = live
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetLogger replaces the scene logger. Passing nil restores the default,
// which discards output unless debug mode is on.
func (s *Scene) SetLogger(l *slog.Logger) {
	s.customLogger = l != nil
	if l == nil {
		s.logger = defaultLogger(s.debug)
		return
	}
	s.logger = l
}

// Logger returns the scene logger.
func (s *Scene) Logger() *slog.Logger {
	return s.logger
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are logged, and timer
// activity is logged at debug level. Without a custom logger, output goes
// to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	if !s.customLogger {
		s.logger = defaultLogger(enabled)
	}
	debugLogger = s.logger
}

func defaultLogger(debug bool) *slog.Logger {
	if !debug {
		return slog.New(slog.DiscardHandler)
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h).With("component", "gamelib")
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene.
var globalDebug bool

// debugLogger is the logger of the scene that last called SetDebugMode.
var debugLogger = slog.New(slog.DiscardHandler)

func (s *Scene) emit(ev InteractionEvent) {
	if s.store != nil {
		s.store.EmitEvent(ev)
	}
}
