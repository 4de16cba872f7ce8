// Package dom is a small live document over golang.org/x/net/html trees. It
// carries the state a browser keeps beside the markup: event listeners and
// the current value of input elements.
package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

type nodeState struct {
	listeners map[string][]Listener
	value     *string
}

// Document owns a parsed tree and the side table of per-node state.
type Document struct {
	root  *html.Node
	state map[*html.Node]*nodeState
}

func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("error while parsing document: %w", err)
	}
	return NewDocument(root), nil
}

func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

func NewDocument(root *html.Node) *Document {
	return &Document{
		root:  root,
		state: map[*html.Node]*nodeState{},
	}
}

func (d *Document) Root() *Node {
	return d.wrap(d.root)
}

// Query returns the first element matching selector, or nil when there is
// none.
func (d *Document) Query(selector string) (*Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	n := sel.MatchFirst(d.root)
	if n == nil {
		return nil, nil
	}
	return d.wrap(n), nil
}

// QueryAll returns every element matching selector in document order.
func (d *Document) QueryAll(selector string) ([]*Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	matches := sel.MatchAll(d.root)
	nodes := make([]*Node, len(matches))
	for i, n := range matches {
		nodes[i] = d.wrap(n)
	}
	return nodes, nil
}

// NewFragment returns an empty container that is not attached to the tree.
func (d *Document) NewFragment() *Node {
	return d.wrap(&html.Node{Type: html.DocumentNode})
}

// Input simulates a user typing into node: the live value changes and an
// input event is dispatched.
func (d *Document) Input(n *Node, value string) {
	n.SetValue(value)
	n.Dispatch(&Event{Type: "input"})
}

func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("error while rendering document: %w", err)
	}
	return nil
}

func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

func (d *Document) wrap(n *html.Node) *Node {
	if n == nil {
		return nil
	}
	return &Node{doc: d, n: n}
}

func (d *Document) stateOf(n *html.Node) *nodeState {
	st, ok := d.state[n]
	if !ok {
		st = &nodeState{}
		d.state[n] = st
	}
	return st
}
