// Package compiler scans a mounted subtree once and turns interpolations and
// v-* directives into live bindings against a view model.
package compiler

import (
	"log"
	"regexp"
	"strings"

	"github.com/delaneyj/plate/dom"
	"github.com/delaneyj/plate/reactive"
)

// ViewModel is what templates bind against.
type ViewModel interface {
	reactive.Owner
	System() *reactive.System
	Get(key string) any
	Set(key string, v any)
	// Method returns the named method bound to the view model.
	Method(name string) (dom.Listener, bool)
	Logger() *log.Logger
}

type BindingKind string

const (
	BindText  BindingKind = "text"
	BindEvent BindingKind = "event"
	BindShow  BindingKind = "show"
	BindModel BindingKind = "model"
)

// Binding records one binding established during compilation. Event
// bindings have no watcher.
type Binding struct {
	Kind    BindingKind
	Node    *dom.Node
	Path    string
	Event   string
	Watcher *reactive.Watcher
}

const directivePrefix = "v-"

var interpolation = regexp.MustCompile(`\{\{(.*)\}\}`)

type Compiler struct {
	vm       ViewModel
	el       *dom.Node
	fragment *dom.Node
	bindings []Binding
}

// Compile binds the children of the element matching selector. A missing
// element is reported through the view model's logger and nothing is bound.
func Compile(doc *dom.Document, selector string, vm ViewModel) *Compiler {
	c := &Compiler{vm: vm}

	el, err := doc.Query(selector)
	if err != nil {
		vm.Logger().Printf("element %q not found: %v", selector, err)
		return c
	}
	if el == nil {
		vm.Logger().Printf("element %q not found", selector)
		return c
	}
	c.el = el

	c.fragment = doc.NewFragment()
	el.MoveChildrenTo(c.fragment)
	c.compileElement(c.fragment)
	c.fragment.MoveChildrenTo(el)

	return c
}

// Mounted reports whether the mount element was found.
func (c *Compiler) Mounted() bool {
	return c.el != nil
}

func (c *Compiler) El() *dom.Node {
	return c.el
}

func (c *Compiler) Bindings() []Binding {
	bindings := make([]Binding, len(c.bindings))
	copy(bindings, c.bindings)
	return bindings
}

func (c *Compiler) compileElement(parent *dom.Node) {
	for _, node := range parent.Children() {
		if node.IsElement() {
			c.compile(node)
		} else if node.IsText() {
			if m := interpolation.FindStringSubmatch(node.Text()); m != nil {
				c.compileText(node, strings.TrimSpace(m[1]))
			}
		}

		if node.HasChildren() {
			c.compileElement(node)
		}
	}
}

func (c *Compiler) compile(node *dom.Node) {
	for _, attr := range node.Attrs() {
		if attr.Namespace != "" || !isDirective(attr.Key) {
			continue
		}
		exp := attr.Val
		dir := attr.Key[len(directivePrefix):]
		if isEventDirective(dir) {
			c.compileEvent(node, exp, dir)
		} else {
			switch dir {
			case "show":
				c.compileShow(node, exp)
			case "model":
				c.compileModel(node, exp)
			}
		}
		node.RemoveAttr(attr.Key)
	}
}

func (c *Compiler) compileText(node *dom.Node, exp string) {
	updateText(node, c.vm.Get(exp))
	w := reactive.NewWatcher(c.vm.System(), c.vm, exp, func(value, _ any) {
		updateText(node, value)
	})
	c.bindings = append(c.bindings, Binding{Kind: BindText, Node: node, Path: exp, Watcher: w})
}

func (c *Compiler) compileEvent(node *dom.Node, exp, dir string) {
	_, eventType, _ := strings.Cut(dir, ":")
	if eventType == "" {
		return
	}
	fn, ok := c.vm.Method(exp)
	if !ok {
		return
	}
	node.AddEventListener(eventType, fn)
	c.bindings = append(c.bindings, Binding{Kind: BindEvent, Node: node, Path: exp, Event: eventType})
}

func (c *Compiler) compileShow(node *dom.Node, exp string) {
	exp = strings.TrimSpace(exp)
	var value any
	if b, ok := ParseBool(exp); ok {
		value = b
	} else {
		value = c.vm.Get(exp)
	}
	displayNode(node, value)
	w := reactive.NewWatcher(c.vm.System(), c.vm, exp, func(value, _ any) {
		displayNode(node, value)
	})
	c.bindings = append(c.bindings, Binding{Kind: BindShow, Node: node, Path: exp, Watcher: w})
}

func (c *Compiler) compileModel(node *dom.Node, exp string) {
	val := c.vm.Get(exp)
	updateModel(node, val)
	w := reactive.NewWatcher(c.vm.System(), c.vm, exp, func(value, _ any) {
		updateModel(node, value)
	})

	node.AddEventListener("input", func(e *dom.Event) {
		newValue := e.Target.Value()
		if reactive.StrictEqual(val, newValue) {
			return
		}
		c.vm.Set(exp, newValue)
		val = newValue
	})
	c.bindings = append(c.bindings, Binding{Kind: BindModel, Node: node, Path: exp, Watcher: w})
}

func isDirective(attr string) bool {
	return strings.HasPrefix(attr, directivePrefix)
}

func isEventDirective(dir string) bool {
	return strings.HasPrefix(dir, "on:")
}
