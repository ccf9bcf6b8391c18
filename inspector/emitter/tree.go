package emitter

import "strings"

// Attr represents an attribute
type Attr struct {
	Name  string
	Value string
}

// Node represents a recorded element
type Node struct {
	Name     string
	Attrs    []Attr
	Text     string
	Children []*Node
}

// Attr returns attribute value
func (n *Node) Attr(name string) (string, bool) {
	for _, attr := range n.Attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// AttrNames returns attribute names in emission order
func (n *Node) AttrNames() []string {
	ret := make([]string, 0, len(n.Attrs))
	for _, attr := range n.Attrs {
		ret = append(ret, attr.Name)
	}
	return ret
}

// Child returns first child with name
func (n *Node) Child(name string) *Node {
	for _, child := range n.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// ChildNames returns child element names in emission order
func (n *Node) ChildNames() []string {
	ret := make([]string, 0, len(n.Children))
	for _, child := range n.Children {
		ret = append(ret, child.Name)
	}
	return ret
}

// Find returns descendant for slash separated path of child names, nil if missing
func (n *Node) Find(path string) *Node {
	current := n
	for _, name := range strings.Split(path, "/") {
		if current = current.Child(name); current == nil {
			return nil
		}
	}
	return current
}

// Replay writes recorded node to sink
func (n *Node) Replay(sink Sink) {
	sink.StartElement(n.Name)
	for _, attr := range n.Attrs {
		sink.Attribute(attr.Name, attr.Value)
	}
	if n.Text != "" {
		sink.Text(n.Text)
	}
	for _, child := range n.Children {
		child.Replay(sink)
	}
	sink.EndElement()
}

// Tree represents an in-memory Sink recording elements
type Tree struct {
	Root  *Node
	stack []*Node
	open  bool
}

// NewTree creates a recording sink
func NewTree() *Tree {
	return &Tree{}
}

// StartElement opens an element
func (t *Tree) StartElement(name string) {
	if !IsName(name) {
		misuse("invalid element name %q", name)
	}
	node := &Node{Name: name}
	if len(t.stack) == 0 {
		if t.Root != nil {
			misuse("second root element %v", name)
		}
		t.Root = node
	} else {
		parent := t.stack[len(t.stack)-1]
		parent.Children = append(parent.Children, node)
	}
	t.stack = append(t.stack, node)
	t.open = true
}

// Attribute adds an attribute to the element just opened
func (t *Tree) Attribute(name, value string) {
	if !t.open {
		misuse("attribute %v outside of a start tag", name)
	}
	current := t.stack[len(t.stack)-1]
	current.Attrs = append(current.Attrs, Attr{Name: name, Value: value})
}

// Text adds character data
func (t *Tree) Text(value string) {
	if len(t.stack) == 0 {
		misuse("text outside of an element")
	}
	if value == "" {
		return
	}
	t.open = false
	t.stack[len(t.stack)-1].Text += value
}

// EndElement closes current element
func (t *Tree) EndElement() {
	if len(t.stack) == 0 {
		misuse("end element without start")
	}
	t.stack = t.stack[:len(t.stack)-1]
	t.open = false
}

// Balanced returns true when every element was closed
func (t *Tree) Balanced() bool {
	return len(t.stack) == 0
}
