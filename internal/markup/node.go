package markup

// NodeType identifies what a Node holds.
type NodeType uint8

const (
	// ElementNode is a tag with attributes and children.
	ElementNode NodeType = iota
	// TextNode is character data between tags, including pure whitespace.
	TextNode
	// CommentNode is a <!-- --> comment.
	CommentNode
)

func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case CommentNode:
		return "comment"
	default:
		return "unknown"
	}
}

// Node is one entry in a parsed markup tree.
type Node struct {
	Type NodeType
	// Tag is the lower-cased element name. Empty for text and comments.
	Tag string
	// Attrs maps lower-cased attribute names to their unescaped raw values.
	Attrs map[string]string
	// Text holds character data for text and comment nodes.
	Text string
	// Line is the 1-based source line the node starts on.
	Line int

	FirstChild  *Node
	NextSibling *Node

	lastChild *Node
}

// IsElement reports whether n is an element node.
func (n *Node) IsElement() bool {
	return n != nil && n.Type == ElementNode
}

// Attr returns the raw value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil || n.Attrs == nil {
		return "", false
	}
	v, ok := n.Attrs[name]
	return v, ok
}

// HasElementChildren reports whether any direct child is an element.
func (n *Node) HasElementChildren() bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.IsElement() {
			return true
		}
	}
	return false
}

// appendChild links c as the last child of n.
func (n *Node) appendChild(c *Node) {
	if n.lastChild == nil {
		n.FirstChild = c
	} else {
		n.lastChild.NextSibling = c
	}
	n.lastChild = c
}
