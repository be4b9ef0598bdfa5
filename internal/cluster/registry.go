package cluster

import "errors"

// ErrNilNode is returned by AddNode for a nil node.
var ErrNilNode = errors.New("cluster: nil node")

// Registry groups nodes by cluster name and keeps the largest x and y seen.
// The maxima are updated on every insertion, so they are valid at any time.
type Registry struct {
	groups map[string][]Node
	keys   []string // first-seen order
	count  int
	maxX   float64
	maxY   float64
}

// NewRegistry returns an empty registry with both maxima at 0.
func NewRegistry() *Registry {
	return &Registry{groups: make(map[string][]Node)}
}

// AddNode appends n to the group named by its cluster name.
func (r *Registry) AddNode(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	if _, ok := r.groups[n.name]; !ok {
		r.keys = append(r.keys, n.name)
	}
	r.groups[n.name] = append(r.groups[n.name], *n)
	r.count++
	if n.x > r.maxX {
		r.maxX = n.x
	}
	if n.y > r.maxY {
		r.maxY = n.y
	}
	return nil
}

// Keys returns the cluster names in the order they were first seen.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Get returns the nodes of the named cluster in insertion order, or nil.
func (r *Registry) Get(name string) []Node {
	g, ok := r.groups[name]
	if !ok {
		return nil
	}
	out := make([]Node, len(g))
	copy(out, g)
	return out
}

// MaxX is the largest x inserted so far, 0 when empty.
func (r *Registry) MaxX() float64 { return r.maxX }

// MaxY is the largest y inserted so far, 0 when empty.
func (r *Registry) MaxY() float64 { return r.maxY }

// Len is the total number of nodes across all clusters.
func (r *Registry) Len() int { return r.count }
