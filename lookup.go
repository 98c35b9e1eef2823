package gamelib

import "strings"

// UniquePrefix marks a path segment as a unique name rather than a child name.
const UniquePrefix = '%'

// Root returns the topmost ancestor of n (n itself when it has no parent).
func (n *Node) Root() *Node {
	r := n
	for r.Parent != nil {
		r = r.Parent
	}
	return r
}

// Path returns the absolute slash-separated path of n, e.g. "/root/ui/score".
func (n *Node) Path() string {
	var segs []string
	for p := n; p != nil; p = p.Parent {
		segs = append(segs, p.Name)
	}
	var b strings.Builder
	for i := len(segs) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(segs[i])
	}
	return b.String()
}

// FindChild returns the first direct child named name, or nil.
func (n *Node) FindChild(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// GetNode resolves key against the tree n belongs to. Accepted forms:
//
//	%Name         unique node in n's owner scope
//	%Name/a/b     relative path below a unique node
//	/root/a/b     absolute path; the first segment names the tree root
//	a/b, ./a, ..  relative path from n
//
// A key that matches nothing returns a *LookupError.
func (n *Node) GetNode(key string) (*Node, error) {
	if found := n.resolve(key); found != nil {
		return found, nil
	}
	return nil, &LookupError{Key: key, From: n.Path()}
}

// FindNode is GetNode without the error: nil when nothing matches.
func (n *Node) FindNode(key string) *Node {
	return n.resolve(key)
}

func (n *Node) resolve(key string) *Node {
	if key == "" {
		return nil
	}
	cur := n
	rest := key
	if strings.HasPrefix(key, "/") {
		root := n.Root()
		rest = strings.TrimPrefix(key, "/")
		first, tail, _ := strings.Cut(rest, "/")
		if first != root.Name {
			return nil
		}
		cur, rest = root, tail
	}
	for _, seg := range strings.Split(rest, "/") {
		switch {
		case seg == "" || seg == ".":
			continue
		case seg == "..":
			cur = cur.Parent
		case seg[0] == UniquePrefix:
			cur = findUnique(uniqueScope(cur), seg[1:])
		default:
			cur = cur.FindChild(seg)
		}
		if cur == nil {
			return nil
		}
	}
	return cur
}

// uniqueScope returns the node whose unique names n can see.
func uniqueScope(n *Node) *Node {
	if n.Owner != nil {
		return n.Owner
	}
	return n
}

// findUnique does a pre-order search below scope for a unique node named
// name that belongs to scope. Unowned nodes belong to every scope, except
// packed scene instance roots, which belong to none.
func findUnique(scope *Node, name string) *Node {
	if name == "" {
		return nil
	}
	var walk func(*Node) *Node
	walk = func(p *Node) *Node {
		for _, c := range p.children {
			if c.Unique && c.Name == name && inScope(c, scope) {
				return c
			}
			if found := walk(c); found != nil {
				return found
			}
		}
		return nil
	}
	return walk(scope)
}

func inScope(n, scope *Node) bool {
	if n.Owner == nil {
		return !n.instanceRoot
	}
	return n.Owner == scope
}
