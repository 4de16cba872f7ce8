package reactive

import (
	"sort"
)

// Property is one reactive cell: a value and the Dep of everyone who read it
// while collecting.
type Property struct {
	sys   *System
	data  map[string]any
	key   string
	value any
	dep   *Dep
}

func (p *Property) Key() string {
	return p.key
}

func (p *Property) Dep() *Dep {
	return p.dep
}

func (p *Property) Get() any {
	if target := p.sys.Target(); target != nil {
		p.dep.AddSub(target)
	}
	return p.value
}

// Set stores v, writes it through to the model map and notifies
// subscribers. Assigning a strictly equal value is a no-op; for a nested
// object that includes the map it was observed from. New values are not
// observed.
func (p *Property) Set(v any) {
	if p.same(v) {
		return
	}
	p.value = v
	p.data[p.key] = v
	p.dep.Notify()
}

func (p *Property) same(v any) bool {
	if StrictEqual(v, p.value) {
		return true
	}
	nested, ok := p.value.(*Object)
	return ok && StrictEqual(v, nested.data)
}

// Object is a model map whose keys at wrap time are reactive. A nested map
// stays in the model map as is, but Get returns its *Object; Set accepts
// either form as the current value.
type Object struct {
	sys   *System
	data  map[string]any
	keys  []string
	props map[string]*Property
}

// Observe makes every key already present in data reactive. Nested
// map[string]any values are observed too and replaced by their *Object.
// Keys added to data later stay plain.
func Observe(sys *System, data map[string]any) *Object {
	if data == nil {
		data = map[string]any{}
	}
	o := &Object{
		sys:   sys,
		data:  data,
		keys:  make([]string, 0, len(data)),
		props: make(map[string]*Property, len(data)),
	}
	o.walk()
	return o
}

func (o *Object) walk() {
	for key := range o.data {
		o.keys = append(o.keys, key)
	}
	sort.Strings(o.keys)
	for _, key := range o.keys {
		o.defineReactive(key, o.data[key])
	}
}

func (o *Object) defineReactive(key string, val any) {
	if nested, ok := val.(map[string]any); ok {
		val = Observe(o.sys, nested)
	}
	o.props[key] = &Property{
		sys:   o.sys,
		data:  o.data,
		key:   key,
		value: val,
		dep:   NewDep(key),
	}
}

// String matches how a plain object prints in a template.
func (o *Object) String() string {
	return "[object Object]"
}

func (o *Object) System() *System {
	return o.sys
}

// Keys returns the reactive keys in walk order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

func (o *Object) IsReactive(key string) bool {
	_, ok := o.props[key]
	return ok
}

func (o *Object) Property(key string) (*Property, bool) {
	p, ok := o.props[key]
	return p, ok
}

func (o *Object) Get(key string) any {
	if p, ok := o.props[key]; ok {
		return p.Get()
	}
	return o.data[key]
}

func (o *Object) Set(key string, v any) {
	p, ok := o.props[key]
	if !ok {
		o.data[key] = v
		return
	}
	p.Set(v)
}

// Raw returns a plain snapshot of the current values with nested objects
// unwrapped. Reading through Raw is never tracked.
func (o *Object) Raw() map[string]any {
	out := make(map[string]any, len(o.data))
	for k, v := range o.data {
		out[k] = v
	}
	for key, p := range o.props {
		v := p.value
		if nested, ok := v.(*Object); ok {
			v = nested.Raw()
		}
		out[key] = v
	}
	return out
}
