package cluster

import "strconv"

// Node is a single point owned by a named cluster. It is immutable once built.
type Node struct {
	x    float64
	y    float64
	name string
}

// NewNode returns an immutable node; its fields are only readable through accessors.
func NewNode(x, y float64, clusterName string) *Node {
	return &Node{x: x, y: y, name: clusterName}
}

// X is the horizontal coordinate.
func (n Node) X() float64 { return n.x }

// Y is the vertical coordinate.
func (n Node) Y() float64 { return n.y }

// ClusterName is the group the node belongs to.
func (n Node) ClusterName() string { return n.name }

func (n Node) String() string {
	return n.name + "(x=" + strconv.FormatFloat(n.x, 'g', -1, 64) +
		", y=" + strconv.FormatFloat(n.y, 'g', -1, 64) + ")"
}
