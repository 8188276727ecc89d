package node

import (
	"errors"
	"fmt"
	"image/color"

	"axis-gizmo/internal/geom"

	"github.com/jinzhu/copier"
)

// GeometryKind names the primitive a node renders.
type GeometryKind string

const (
	Sphere   GeometryKind = "sphere"
	Cylinder GeometryKind = "cylinder"
)

// Geometry is a renderable primitive centered on its node's origin.
// Cylinders extend along local +Y from -Height/2 to +Height/2.
type Geometry struct {
	Kind   GeometryKind `yaml:"kind"`
	Radius float32      `yaml:"radius"`
	Height float32      `yaml:"height,omitempty"`
}

// Material holds surface appearance. Diffuse is the base color.
type Material struct {
	Diffuse color.RGBA `yaml:"diffuse,flow"`
}

// LightType is the kind of light a node emits.
type LightType string

const (
	Omni    LightType = "omni"
	Ambient LightType = "ambient"
)

// Light makes a node a light source. Omni lights shine from the node's world position;
// ambient lights ignore position.
type Light struct {
	Type  LightType  `yaml:"type"`
	Color color.RGBA `yaml:"color,flow"`
}

// Camera makes a node a viewpoint. Fovy is the vertical field of view in degrees.
type Camera struct {
	Fovy float32 `yaml:"fovy"`
}

// Node is an entry in the scene graph. Position and Rotation are relative to the parent.
// A node owns its Geometry, Material and Children; use Clone or Extract to share a subtree.
type Node struct {
	Name     string    `yaml:"name,omitempty"`
	Position geom.Vec3 `yaml:"position,flow"`
	Rotation geom.Quat `yaml:"rotation,flow"`
	Geometry *Geometry `yaml:"geometry,omitempty"`
	Material *Material `yaml:"material,omitempty"`
	Light    *Light    `yaml:"light,omitempty"`
	Camera   *Camera   `yaml:"camera,omitempty"`
	Children []*Node   `yaml:"children,omitempty"`
}

// New returns an empty node at the parent's origin with identity rotation.
func New(name string) *Node {
	return &Node{Name: name, Rotation: geom.Identity()}
}

// NewWithGeometry returns an unnamed node owning g.
func NewWithGeometry(g Geometry) *Node {
	n := New("")
	n.Geometry = &g
	return n
}

// AddChild appends c to n's children. Insertion order is preserved.
func (n *Node) AddChild(c *Node) {
	n.Children = append(n.Children, c)
}

// SetPosition sets the local position.
func (n *Node) SetPosition(p geom.Vec3) {
	n.Position = p
}

// Rotate applies rotation q to the node about pivot (in parent space): the orientation is
// pre-multiplied by q and the position is swung around pivot.
func (n *Node) Rotate(q geom.Quat, pivot geom.Vec3) {
	n.Rotation = q.Mul(n.Rotation)
	n.Position = pivot.Add(q.Rotate(n.Position.Sub(pivot)))
}

// Transform is a world-space pose.
type Transform struct {
	Position geom.Vec3
	Rotation geom.Quat
}

// Apply returns the local point p expressed in the space t describes.
func (t Transform) Apply(p geom.Vec3) geom.Vec3 {
	return t.Position.Add(t.Rotation.Rotate(p))
}

// Child composes t with a child's local pose.
func (t Transform) Child(c *Node) Transform {
	return Transform{
		Position: t.Apply(c.Position),
		Rotation: t.Rotation.Mul(c.Rotation),
	}
}

// Root is the transform of a scene root.
var Root = Transform{Rotation: geom.Identity()}

// Walk calls fn for n and every descendant in depth-first pre-order with each node's
// world transform. Returning false from fn skips that node's children.
func (n *Node) Walk(fn func(*Node, Transform) bool) {
	n.walk(Root.Child(n), fn)
}

func (n *Node) walk(world Transform, fn func(*Node, Transform) bool) {
	if !fn(n, world) {
		return
	}
	for _, c := range n.Children {
		c.walk(world.Child(c), fn)
	}
}

// ErrNotFound is returned when no node in a subtree has the requested name.
var ErrNotFound = errors.New("node not found")

// Find returns the first node in n's subtree (including n) with the given name.
func (n *Node) Find(name string) *Node {
	found, _ := n.find(name)
	return found
}

func (n *Node) find(name string) (*Node, Transform) {
	var (
		found *Node
		world Transform
	)
	n.Walk(func(c *Node, w Transform) bool {
		if found != nil {
			return false
		}
		if c.Name == name {
			found, world = c, w
			return false
		}
		return true
	})
	return found, world
}

// Count returns the number of nodes in n's subtree, including n.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node, Transform) bool {
		count++
		return true
	})
	return count
}

// Clone returns a deep copy of n and its subtree.
func (n *Node) Clone() (*Node, error) {
	out := &Node{}
	if err := copier.CopyWithOption(out, n, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("clone node %q: %w", n.Name, err)
	}
	return out, nil
}

// Extract returns a deep copy of the first subtree of n named name. The copy's root carries the
// node's world pose, so the copy renders in the same place on its own. n is left untouched.
func (n *Node) Extract(name string) (*Node, error) {
	found, world := n.find(name)
	if found == nil {
		return nil, fmt.Errorf("extract %q: %w", name, ErrNotFound)
	}
	out, err := found.Clone()
	if err != nil {
		return nil, err
	}
	out.Position, out.Rotation = world.Position, world.Rotation
	return out, nil
}
