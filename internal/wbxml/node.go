package wbxml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Node is one element of an ActiveSync XML document. Space holds the XML
// namespace, which is also the code page name; an empty Space inherits the
// namespace of the parent element.
type Node struct {
	Space    string
	Name     string
	Text     string
	Children []*Node
}

// ParseXML parses an XML document into a Node tree. Namespace declarations
// are consumed; any other attribute is rejected.
func ParseXML(s string) (*Node, error) {
	dec := xml.NewDecoder(strings.NewReader(s))

	var (
		root  *Node
		stack []*Node
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidXML, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
					continue
				}
				return nil, fmt.Errorf("%w: %s on <%s>", ErrUnsupportedAttribute, a.Name.Local, t.Name.Local)
			}
			n := &Node{Space: t.Name.Space, Name: t.Name.Local}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: more than one root element", ErrInvalidXML)
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if len(n.Children) > 0 {
				if strings.TrimSpace(n.Text) != "" {
					return nil, fmt.Errorf("%w: <%s>", ErrMixedContent, n.Name)
				}
				n.Text = ""
			}
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrInvalidXML)
	}
	return root, nil
}

// String renders the tree as XML. Empty elements are written as <Name />,
// and an element carries xmlns only where its namespace differs from its
// parent's.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b, "")
	return b.String()
}

func (n *Node) write(b *strings.Builder, parentSpace string) {
	space := n.Space
	if space == "" {
		space = parentSpace
	}

	b.WriteByte('<')
	b.WriteString(n.Name)
	if space != parentSpace {
		b.WriteString(` xmlns="`)
		b.WriteString(space)
		b.WriteByte('"')
	}
	if n.Text == "" && len(n.Children) == 0 {
		b.WriteString(" />")
		return
	}
	b.WriteByte('>')
	if n.Text != "" {
		_ = xml.EscapeText(b, []byte(n.Text))
	}
	for _, c := range n.Children {
		c.write(b, space)
	}
	b.WriteString("</")
	b.WriteString(n.Name)
	b.WriteByte('>')
}

// Child returns the first direct child with the given local name.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Walk visits n and every descendant depth-first, parents before children.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// FindAll returns every element at any depth (including n) with the given
// local name, in document order.
func (n *Node) FindAll(name string) []*Node {
	var found []*Node
	n.Walk(func(x *Node) {
		if x.Name == name {
			found = append(found, x)
		}
	})
	return found
}

// Equal reports whether two trees have the same names, resolved namespaces,
// nesting and text.
func (n *Node) Equal(other *Node) bool {
	return equalNodes(n, other, "", "")
}

func equalNodes(a, b *Node, aParent, bParent string) bool {
	if a == nil || b == nil {
		return a == b
	}
	aSpace, bSpace := a.Space, b.Space
	if aSpace == "" {
		aSpace = aParent
	}
	if bSpace == "" {
		bSpace = bParent
	}
	if aSpace != bSpace || a.Name != b.Name || a.Text != b.Text || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !equalNodes(a.Children[i], b.Children[i], aSpace, bSpace) {
			return false
		}
	}
	return true
}
