package render

import "github.com/yaklabco/protoview/pkg/pbtext"

// Attribute is one name/value pair of a rendered block.
type Attribute struct {
	Name  string `json:"name"  yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Node is a materialized outline of one block and its descendants.
// The root container has an empty Name and no position.
type Node struct {
	Name       string      `json:"name"                 yaml:"name"`
	Line       int         `json:"line,omitempty"       yaml:"line,omitempty"`
	Column     int         `json:"column,omitempty"     yaml:"column,omitempty"`
	Attributes []Attribute `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Children   []*Node     `json:"children,omitempty"   yaml:"children,omitempty"`

	// Truncated is set when children were cut off by the depth limit.
	Truncated bool `json:"truncated,omitempty" yaml:"truncated,omitempty"`
}

// Build materializes the outline below v. Blocks nested deeper than
// maxDepth levels below v are dropped and their parent marked Truncated.
// A maxDepth of zero or less means no limit.
func Build(v pbtext.View, maxDepth int) *Node {
	if !v.IsValid() {
		return &Node{}
	}
	return build(v, 0, maxDepth)
}

func build(v pbtext.View, depth, maxDepth int) *Node {
	node := &Node{Name: v.Name()}
	if pos := v.Position(); pos.IsValid() {
		node.Line = pos.Line
		node.Column = pos.Column
	}

	for _, field := range v.Fields() {
		node.Attributes = append(node.Attributes, Attribute{Name: field.Name, Value: field.Value})
	}

	children := v.Children()
	if len(children) == 0 {
		return node
	}
	if maxDepth > 0 && depth >= maxDepth {
		node.Truncated = true
		return node
	}

	node.Children = make([]*Node, 0, len(children))
	for _, child := range children {
		node.Children = append(node.Children, build(child, depth+1, maxDepth))
	}
	return node
}

// Count returns the number of blocks in the outline, n excluded.
func (n *Node) Count() int {
	if n == nil {
		return 0
	}
	total := len(n.Children)
	for _, child := range n.Children {
		total += child.Count()
	}
	return total
}
