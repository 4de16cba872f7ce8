// Package plate is the entry point: it makes a model reactive and binds it to
// a mounted part of a document.
//
//	doc, _ := dom.ParseString(`<div id="app">{{ msg }}</div>`)
//	vm := plate.New(plate.Options{
//		El:       "#app",
//		Document: doc,
//		Data:     map[string]any{"msg": "hi"},
//	})
//	vm.Set("msg", "bye") // the div now reads "bye"
package plate

import (
	"log"
	"sort"

	"github.com/delaneyj/plate/compiler"
	"github.com/delaneyj/plate/dom"
	"github.com/delaneyj/plate/reactive"
)

// Method is an event handler invoked with the instance as its receiver.
type Method func(vm *Plate, e *dom.Event)

type Options struct {
	// El selects the mount element.
	El       string
	Document *dom.Document
	Data     map[string]any
	Methods  map[string]Method
	// Logger receives non-fatal diagnostics. Defaults to log.Default().
	Logger *log.Logger
}

type Plate struct {
	sys      *reactive.System
	doc      *dom.Document
	data     *reactive.Object
	methods  map[string]Method
	logger   *log.Logger
	proxied  map[string]struct{}
	keys     []string
	extra    map[string]any
	compiler *compiler.Compiler
}

func New(opts Options) *Plate {
	p := &Plate{
		sys:     reactive.NewSystem(),
		doc:     opts.Document,
		methods: opts.Methods,
		logger:  opts.Logger,
		proxied: map[string]struct{}{},
		extra:   map[string]any{},
	}
	if p.logger == nil {
		p.logger = log.Default()
	}

	data := opts.Data
	if data == nil {
		data = map[string]any{}
	}
	for key := range data {
		p.proxyKey(key)
	}
	sort.Strings(p.keys)

	p.data = reactive.Observe(p.sys, data)

	if p.doc == nil {
		p.logger.Printf("no document to mount %q into", opts.El)
		return p
	}
	p.compiler = compiler.Compile(p.doc, opts.El, p)

	return p
}

func (p *Plate) proxyKey(key string) {
	p.proxied[key] = struct{}{}
	p.keys = append(p.keys, key)
}

// Get reads a top-level model key. Keys that were not in the data at
// construction are plain fields of the instance.
func (p *Plate) Get(key string) any {
	if _, ok := p.proxied[key]; ok {
		return p.data.Get(key)
	}
	return p.extra[key]
}

func (p *Plate) Set(key string, v any) {
	if _, ok := p.proxied[key]; ok {
		p.data.Set(key, v)
		return
	}
	p.extra[key] = v
}

// Keys returns the proxied model keys.
func (p *Plate) Keys() []string {
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

func (p *Plate) Data() *reactive.Object {
	return p.data
}

func (p *Plate) System() *reactive.System {
	return p.sys
}

func (p *Plate) Document() *dom.Document {
	return p.doc
}

func (p *Plate) Logger() *log.Logger {
	return p.logger
}

func (p *Plate) Methods() map[string]Method {
	return p.methods
}

func (p *Plate) Method(name string) (dom.Listener, bool) {
	m, ok := p.methods[name]
	if !ok || m == nil {
		return nil, false
	}
	return func(e *dom.Event) {
		m(p, e)
	}, true
}

// Mounted reports whether the mount element was found and compiled.
func (p *Plate) Mounted() bool {
	return p.compiler != nil && p.compiler.Mounted()
}

func (p *Plate) Bindings() []compiler.Binding {
	if p.compiler == nil {
		return nil
	}
	return p.compiler.Bindings()
}
