package gamelib

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"sync"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for scene files that are neither YAML nor HCL.
var ErrUnsupportedFormat = errors.New("unsupported scene format")

// NodeSpec describes one node of a packed scene.
type NodeSpec struct {
	Name         string      `yaml:"name"`
	Type         string      `yaml:"type"`
	X            float64     `yaml:"x"`
	Y            float64     `yaml:"y"`
	Rotation     float64     `yaml:"rotation"`
	Width        float64     `yaml:"width"`
	Height       float64     `yaml:"height"`
	Color        string      `yaml:"color"`
	Unique       bool        `yaml:"unique"`
	Hidden       bool        `yaml:"hidden"`
	Interactable bool        `yaml:"interactable"`
	Script       string      `yaml:"script"`
	Points       [][]float64 `yaml:"points"`
	LineWidth    float64     `yaml:"line_width"`
	Children     []NodeSpec  `yaml:"children"`
}

// PackedScene is a parsed scene file that can be instantiated any number of
// times.
type PackedScene struct {
	Path string
	Root NodeSpec
}

// hclNode mirrors NodeSpec for gohcl; the name is the block label.
//
//	node "Player" {
//	  type   = "sprite"
//	  unique = true
//	  node "Hitbox" { width = 8 }
//	}
type hclNode struct {
	Name         string      `hcl:"name,label"`
	Type         string      `hcl:"type,optional"`
	X            float64     `hcl:"x,optional"`
	Y            float64     `hcl:"y,optional"`
	Rotation     float64     `hcl:"rotation,optional"`
	Width        float64     `hcl:"width,optional"`
	Height       float64     `hcl:"height,optional"`
	Color        string      `hcl:"color,optional"`
	Unique       bool        `hcl:"unique,optional"`
	Hidden       bool        `hcl:"hidden,optional"`
	Interactable bool        `hcl:"interactable,optional"`
	Script       string      `hcl:"script,optional"`
	Points       [][]float64 `hcl:"points,optional"`
	LineWidth    float64     `hcl:"line_width,optional"`
	Children     []hclNode   `hcl:"node,block"`
}

type hclFile struct {
	Nodes []hclNode `hcl:"node,block"`
}

func (h hclNode) spec() NodeSpec {
	s := NodeSpec{
		Name: h.Name, Type: h.Type,
		X: h.X, Y: h.Y, Rotation: h.Rotation,
		Width: h.Width, Height: h.Height,
		Color: h.Color, Unique: h.Unique, Hidden: h.Hidden,
		Interactable: h.Interactable, Script: h.Script,
		Points: h.Points, LineWidth: h.LineWidth,
	}
	for _, c := range h.Children {
		s.Children = append(s.Children, c.spec())
	}
	return s
}

// ParseScene parses scene data. The format is chosen by the extension of
// name: .yaml/.yml or .hcl. Unknown keys are errors in both formats.
func ParseScene(name string, data []byte) (*PackedScene, error) {
	var root NodeSpec
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse scene %q: %w", name, err)
		}
	case ".hcl":
		f, diags := hclparse.NewParser().ParseHCL(data, name)
		if diags.HasErrors() {
			return nil, fmt.Errorf("parse scene %q: %w", name, diags)
		}
		var file hclFile
		if diags := gohcl.DecodeBody(f.Body, nil, &file); diags.HasErrors() {
			return nil, fmt.Errorf("parse scene %q: %w", name, diags)
		}
		if len(file.Nodes) != 1 {
			return nil, fmt.Errorf("parse scene %q: want exactly one root node block, got %d", name, len(file.Nodes))
		}
		root = file.Nodes[0].spec()
	default:
		return nil, fmt.Errorf("parse scene %q: %w", name, ErrUnsupportedFormat)
	}
	if err := validateSpec(&root, "/"); err != nil {
		return nil, fmt.Errorf("parse scene %q: %w", name, err)
	}
	return &PackedScene{Path: name, Root: root}, nil
}

func validateSpec(s *NodeSpec, parent string) error {
	if s.Name == "" {
		return fmt.Errorf("node under %s has no name", parent)
	}
	if strings.ContainsAny(s.Name, "/%") {
		return fmt.Errorf("node name %q may not contain '/' or '%%'", s.Name)
	}
	where := path.Join(parent, s.Name)
	if _, ok := parseNodeType(s.Type); !ok {
		return fmt.Errorf("node %s: unknown type %q", where, s.Type)
	}
	if s.Color != "" {
		if _, err := ParseColor(s.Color); err != nil {
			return fmt.Errorf("node %s: %w", where, err)
		}
	}
	for i, p := range s.Points {
		if len(p) != 2 {
			return fmt.Errorf("node %s: point %d has %d components, want 2", where, i, len(p))
		}
	}
	for i := range s.Children {
		if err := validateSpec(&s.Children[i], where); err != nil {
			return err
		}
	}
	return nil
}

// Instantiate builds a new node tree from the scene. Every descendant gets the
// new root as Owner. Scripts are created from scripts, then, children before
// parents, each Bindable script is bound against its node and each Readier
// script has Ready called. The first error aborts and is returned.
func (p *PackedScene) Instantiate(scripts *ScriptRegistry) (*Node, error) {
	root, err := buildNode(&p.Root, nil, scripts)
	if err != nil {
		return nil, fmt.Errorf("instantiate %q: %w", p.Path, err)
	}
	if err := readyTree(root); err != nil {
		return nil, fmt.Errorf("instantiate %q: %w", p.Path, err)
	}
	return root, nil
}

func buildNode(s *NodeSpec, owner *Node, scripts *ScriptRegistry) (*Node, error) {
	typ, _ := parseNodeType(s.Type)
	n := &Node{Name: s.Name, Type: typ}
	nodeDefaults(n)
	n.X, n.Y, n.Rotation = s.X, s.Y, s.Rotation
	n.Width, n.Height = s.Width, s.Height
	n.Unique = s.Unique
	n.Visible = !s.Hidden
	n.Interactable = s.Interactable
	n.LineWidth = s.LineWidth
	n.Owner = owner
	n.instanceRoot = owner == nil
	if s.Color != "" {
		n.Color, _ = ParseColor(s.Color)
	}
	for _, pt := range s.Points {
		n.Points = append(n.Points, Vec2{pt[0], pt[1]})
	}
	if s.Script != "" {
		sc, err := scripts.New(s.Script)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", s.Name, err)
		}
		n.Script = sc
	}
	childOwner := owner
	if childOwner == nil {
		childOwner = n
	}
	for i := range s.Children {
		c, err := buildNode(&s.Children[i], childOwner, scripts)
		if err != nil {
			return nil, err
		}
		n.AddChild(c)
	}
	return n, nil
}

func readyTree(n *Node) error {
	for _, c := range n.children {
		if err := readyTree(c); err != nil {
			return err
		}
	}
	if b, ok := n.Script.(Bindable); ok {
		if err := BindMembers(n, b); err != nil {
			return err
		}
	}
	if r, ok := n.Script.(Readier); ok {
		if err := r.Ready(n); err != nil {
			return fmt.Errorf("ready %s: %w", n.Path(), err)
		}
	}
	return nil
}

// --- Loader ---

// Loader reads packed scenes from a file system and caches them by path.
// It is safe for concurrent use.
type Loader struct {
	fsys    fs.FS
	scripts *ScriptRegistry
	logger  *slog.Logger

	mu    sync.RWMutex
	cache map[string]*PackedScene
}

// NewLoader creates a loader over fsys. scripts may be nil when no scene uses
// scripts.
func NewLoader(fsys fs.FS, scripts *ScriptRegistry) *Loader {
	return &Loader{
		fsys:    fsys,
		scripts: scripts,
		logger:  slog.New(slog.DiscardHandler),
		cache:   make(map[string]*PackedScene),
	}
}

// SetLogger sets the logger used for load activity. Passing nil restores
// the default, which discards output.
func (l *Loader) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	l.logger = logger
}

// Load returns the packed scene at p, reading and parsing it on first use.
func (l *Loader) Load(p string) (*PackedScene, error) {
	l.mu.RLock()
	ps, ok := l.cache[p]
	l.mu.RUnlock()
	if ok {
		return ps, nil
	}

	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("load scene %q: %w", p, err)
	}
	ps, err = ParseScene(p, data)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("scene loaded", "path", p, "bytes", len(data))

	l.mu.Lock()
	if cached, ok := l.cache[p]; ok {
		ps = cached
	} else {
		l.cache[p] = ps
	}
	l.mu.Unlock()
	return ps, nil
}

// Instantiate loads the scene at p and builds a new instance of it.
func (l *Loader) Instantiate(p string) (*Node, error) {
	ps, err := l.Load(p)
	if err != nil {
		return nil, err
	}
	return ps.Instantiate(l.scripts)
}

// SceneInstance instantiates the scene at p and converts its root to T the
// way the binder converts members: *Node directly, anything else through the
// root's Script.
func SceneInstance[T any](l *Loader, p string) (T, error) {
	var zero T
	root, err := l.Instantiate(p)
	if err != nil {
		return zero, err
	}
	v, ok := NodeAs[T](root)
	if !ok {
		return zero, &TypeMismatchError{Key: p, Want: typeName[T](), Got: describeNode(root)}
	}
	return v, nil
}
