package node

import (
	"fmt"
	"io"

	"axis-gizmo/internal/geom"

	"gopkg.in/yaml.v3"
)

// Encode writes n and its subtree to w as YAML.
func Encode(w io.Writer, n *Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		return fmt.Errorf("encode node tree: %w", err)
	}
	return enc.Close()
}

// UnmarshalYAML decodes a node, leaving the rotation at identity when the document omits it.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	type plain Node
	p := plain{Rotation: geom.Identity()}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*n = Node(p)
	return nil
}

// Decode reads a node tree previously written by Encode. Omitted rotations are identity.
func Decode(r io.Reader) (*Node, error) {
	var n Node
	if err := yaml.NewDecoder(r).Decode(&n); err != nil {
		return nil, fmt.Errorf("decode node tree: %w", err)
	}
	return &n, nil
}
