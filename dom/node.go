package dom

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node is a handle on a tree node inside a Document. Two handles on the same
// underlying node are interchangeable.
type Node struct {
	doc *Document
	n   *html.Node
}

func (n *Node) HTML() *html.Node {
	return n.n
}

func (n *Node) Document() *Document {
	return n.doc
}

func (n *Node) Same(other *Node) bool {
	return other != nil && n.n == other.n
}

func (n *Node) IsElement() bool {
	return n.n.Type == html.ElementNode
}

func (n *Node) IsText() bool {
	return n.n.Type == html.TextNode
}

func (n *Node) Tag() string {
	if !n.IsElement() {
		return ""
	}
	return n.n.Data
}

func (n *Node) Parent() *Node {
	return n.doc.wrap(n.n.Parent)
}

// Children returns a snapshot of the child list.
func (n *Node) Children() []*Node {
	var children []*Node
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, n.doc.wrap(c))
	}
	return children
}

func (n *Node) HasChildren() bool {
	return n.n.FirstChild != nil
}

// MoveChildrenTo detaches every child of n and appends it to dst, keeping
// order.
func (n *Node) MoveChildrenTo(dst *Node) {
	for c := n.n.FirstChild; c != nil; c = n.n.FirstChild {
		n.n.RemoveChild(c)
		dst.n.AppendChild(c)
	}
}

// Text returns the text content: the data of a text node, or the
// concatenated text of every descendant otherwise.
func (n *Node) Text() string {
	if n.n.Type == html.TextNode {
		return n.n.Data
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(h *html.Node) {
		for c := h.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				sb.WriteString(c.Data)
			}
			walk(c)
		}
	}
	walk(n.n)
	return sb.String()
}

// SetText replaces the text content. On an element all children are
// replaced by a single text node.
func (n *Node) SetText(s string) {
	if n.n.Type == html.TextNode {
		n.n.Data = s
		return
	}
	for c := n.n.FirstChild; c != nil; c = n.n.FirstChild {
		n.n.RemoveChild(c)
	}
	if s != "" {
		n.n.AppendChild(&html.Node{Type: html.TextNode, Data: s})
	}
}

func (n *Node) Attrs() []html.Attribute {
	attrs := make([]html.Attribute, len(n.n.Attr))
	copy(attrs, n.n.Attr)
	return attrs
}

func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func (n *Node) SetAttr(name, value string) {
	for i, a := range n.n.Attr {
		if a.Namespace == "" && a.Key == name {
			n.n.Attr[i].Val = value
			return
		}
	}
	n.n.Attr = append(n.n.Attr, html.Attribute{Key: name, Val: value})
}

func (n *Node) RemoveAttr(name string) {
	for i, a := range n.n.Attr {
		if a.Namespace == "" && a.Key == name {
			n.n.Attr = append(n.n.Attr[:i], n.n.Attr[i+1:]...)
			return
		}
	}
}

// Value is the live value of an input-like element. Until something sets
// it, it falls back to the markup.
func (n *Node) Value() string {
	if st, ok := n.doc.state[n.n]; ok && st.value != nil {
		return *st.value
	}
	if n.n.DataAtom == atom.Textarea {
		return n.Text()
	}
	v, _ := n.Attr("value")
	return v
}

// SetValue updates the live value and mirrors it into the markup so that
// rendering shows it.
func (n *Node) SetValue(v string) {
	n.doc.stateOf(n.n).value = &v
	if n.n.DataAtom == atom.Textarea {
		n.SetText(v)
		return
	}
	n.SetAttr("value", v)
}

// Display returns the display declaration of the inline style, or "" when
// none is set.
func (n *Node) Display() string {
	style, _ := n.Attr("style")
	for _, decl := range strings.Split(style, ";") {
		prop, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(prop), "display") {
			return strings.TrimSpace(val)
		}
	}
	return ""
}

func (n *Node) SetDisplay(display string) {
	style, _ := n.Attr("style")
	var decls []string
	replaced := false
	for _, decl := range strings.Split(style, ";") {
		if strings.TrimSpace(decl) == "" {
			continue
		}
		prop, _, _ := strings.Cut(decl, ":")
		if strings.EqualFold(strings.TrimSpace(prop), "display") {
			decls = append(decls, "display: "+display)
			replaced = true
			continue
		}
		decls = append(decls, strings.TrimSpace(decl))
	}
	if !replaced {
		decls = append(decls, "display: "+display)
	}
	n.SetAttr("style", strings.Join(decls, "; ")+";")
}

// Path describes the node's position from the root, e.g. "html/0>body/1>div/0".
func (n *Node) Path() string {
	var parts []string
	for h := n.n; h.Parent != nil; h = h.Parent {
		idx := 0
		for s := h.PrevSibling; s != nil; s = s.PrevSibling {
			idx++
		}
		name := h.Data
		if h.Type == html.TextNode {
			name = "#text"
		}
		parts = append(parts, name+"/"+strconv.Itoa(idx))
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ">")
}

// ID is a stable hash of Path. It changes if the node moves.
func (n *Node) ID() uint64 {
	return xxhash.Sum64String(n.Path())
}

func (n *Node) InnerHTML() string {
	var buf bytes.Buffer
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return ""
		}
	}
	return buf.String()
}

func (n *Node) OuterHTML() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n.n); err != nil {
		return ""
	}
	return buf.String()
}
