package compiler_test

import (
	"bytes"
	"log"
	"math"
	"testing"

	"github.com/delaneyj/plate/compiler"
	"github.com/delaneyj/plate/dom"
	"github.com/delaneyj/plate/plate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mount(t *testing.T, tmpl string, data map[string]any, methods map[string]plate.Method) (*plate.Plate, *dom.Document) {
	t.Helper()
	doc, err := dom.ParseString(tmpl)
	require.NoError(t, err)
	vm := plate.New(plate.Options{
		El:       "#app",
		Document: doc,
		Data:     data,
		Methods:  methods,
	})
	return vm, doc
}

func query(t *testing.T, doc *dom.Document, sel string) *dom.Node {
	t.Helper()
	n, err := doc.Query(sel)
	require.NoError(t, err)
	require.NotNil(t, n)
	return n
}

func TestDirectivesAreStripped(t *testing.T) {
	_, doc := mount(t,
		`<div id="app"><input id="in" v-model="name" v-show="true" v-custom="x" v-on:="nope" data-keep="1"></div>`,
		map[string]any{"name": "a"},
		nil,
	)

	in := query(t, doc, "#in")
	for _, attr := range in.Attrs() {
		assert.NotContains(t, attr.Key, "v-")
	}
	keep, ok := in.Attr("data-keep")
	assert.True(t, ok)
	assert.Equal(t, "1", keep)
	assert.Equal(t, "a", in.Value())
	assert.Equal(t, "block", in.Display())
}

func TestTextInterpolation(t *testing.T) {
	vm, doc := mount(t,
		`<div id="app"><p id="a">Hello {{ who }}!</p><p id="b">{{missing}}</p><p id="c">{{ n }}</p><p id="d">{ static }</p></div>`,
		map[string]any{"who": "you", "n": 3},
		nil,
	)

	// the whole text node is replaced by the value
	assert.Equal(t, "you", query(t, doc, "#a").Text())
	assert.Equal(t, "", query(t, doc, "#b").Text())
	assert.Equal(t, "3", query(t, doc, "#c").Text())
	assert.Equal(t, "{ static }", query(t, doc, "#d").Text())

	vm.Set("n", 4)
	assert.Equal(t, "4", query(t, doc, "#c").Text())
	vm.Set("who", nil)
	assert.Equal(t, "", query(t, doc, "#a").Text())
}

func TestNestedElementsAreCompiled(t *testing.T) {
	vm, doc := mount(t,
		`<div id="app"><section><ul><li id="deep">{{ item }}</li></ul></section></div>`,
		map[string]any{"item": "x"},
		nil,
	)
	assert.Equal(t, "x", query(t, doc, "#deep").Text())
	vm.Set("item", "y")
	assert.Equal(t, "y", query(t, doc, "#deep").Text())
}

func TestShowLiterals(t *testing.T) {
	_, doc := mount(t,
		`<div id="app"><p id="t" v-show="true"></p><p id="f" v-show=" false "></p></div>`,
		nil,
		nil,
	)
	assert.Equal(t, "block", query(t, doc, "#t").Display())
	assert.Equal(t, "none", query(t, doc, "#f").Display())
}

func TestShowFollowsTruthiness(t *testing.T) {
	vm, doc := mount(t,
		`<div id="app"><p id="p" v-show="items"></p></div>`,
		map[string]any{"items": 0},
		nil,
	)
	p := query(t, doc, "#p")
	assert.Equal(t, "none", p.Display())

	vm.Set("items", 2)
	assert.Equal(t, "block", p.Display())
	vm.Set("items", "")
	assert.Equal(t, "none", p.Display())
}

func TestEventWithoutMethodIsIgnored(t *testing.T) {
	vm, doc := mount(t,
		`<div id="app"><button id="b" v-on:click="missing"></button></div>`,
		map[string]any{"count": 0},
		nil,
	)
	b := query(t, doc, "#b")
	assert.Equal(t, 0, b.ListenerCount("click"))
	assert.Empty(t, vm.Bindings())
}

func TestModelInputGuard(t *testing.T) {
	sets := 0
	vm, doc := mount(t,
		`<div id="app"><input id="in" v-model="name"><p id="out">{{ name }}</p></div>`,
		map[string]any{"name": "a"},
		nil,
	)
	in := query(t, doc, "#in")
	out := query(t, doc, "#out")

	prop, ok := vm.Data().Property("name")
	require.True(t, ok)
	watcherCount := len(prop.Dep().Subs())

	in.AddEventListener("input", func(e *dom.Event) {
		sets++
	})

	// typing the value the binding last wrote is not written back
	doc.Input(in, "a")
	assert.Equal(t, "a", vm.Get("name"))

	doc.Input(in, "b")
	assert.Equal(t, "b", vm.Get("name"))
	assert.Equal(t, "b", out.Text())
	assert.Equal(t, 2, sets)
	assert.Len(t, prop.Dep().Subs(), watcherCount)
}

func TestMissingMountLogs(t *testing.T) {
	var buf bytes.Buffer
	doc, err := dom.ParseString(`<div id="other">{{ msg }}</div>`)
	require.NoError(t, err)

	vm := plate.New(plate.Options{
		El:       "#app",
		Document: doc,
		Data:     map[string]any{"msg": "hi"},
		Logger:   log.New(&buf, "", 0),
	})
	assert.False(t, vm.Mounted())
	assert.Empty(t, vm.Bindings())
	assert.Contains(t, buf.String(), `"#app" not found`)

	other := query(t, doc, "#other")
	assert.Equal(t, "{{ msg }}", other.Text())
}

func TestInvalidSelectorLogs(t *testing.T) {
	var buf bytes.Buffer
	doc, err := dom.ParseString(`<div id="app"></div>`)
	require.NoError(t, err)

	vm := plate.New(plate.Options{
		El:       "[[",
		Document: doc,
		Logger:   log.New(&buf, "", 0),
	})
	assert.False(t, vm.Mounted())
	assert.NotEmpty(t, buf.String())
}

func TestBindingsAreRecorded(t *testing.T) {
	vm, _ := mount(t,
		`<div id="app">{{ msg }}<input v-model="msg"><p v-show="on"></p><button v-on:click="go"></button></div>`,
		map[string]any{"msg": "m", "on": true},
		map[string]plate.Method{"go": func(vm *plate.Plate, e *dom.Event) {}},
	)

	kinds := map[compiler.BindingKind]int{}
	for _, b := range vm.Bindings() {
		kinds[b.Kind]++
		if b.Kind == compiler.BindEvent {
			assert.Equal(t, "click", b.Event)
			assert.Nil(t, b.Watcher)
		} else {
			assert.NotNil(t, b.Watcher)
		}
	}
	assert.Equal(t, map[compiler.BindingKind]int{
		compiler.BindText:  1,
		compiler.BindModel: 1,
		compiler.BindShow:  1,
		compiler.BindEvent: 1,
	}, kinds)
}

func TestValues(t *testing.T) {
	b, ok := compiler.ParseBool("true")
	assert.True(t, ok)
	assert.True(t, b)
	b, ok = compiler.ParseBool("false")
	assert.True(t, ok)
	assert.False(t, b)
	_, ok = compiler.ParseBool("True")
	assert.False(t, ok)

	assert.False(t, compiler.Truthy(nil))
	assert.False(t, compiler.Truthy(0))
	assert.False(t, compiler.Truthy(0.0))
	assert.False(t, compiler.Truthy(math.NaN()))
	assert.False(t, compiler.Truthy(""))
	assert.False(t, compiler.Truthy(false))
	assert.True(t, compiler.Truthy("0"))
	assert.True(t, compiler.Truthy(-1))
	assert.True(t, compiler.Truthy(map[string]any{}))

	assert.Equal(t, "", compiler.Stringify(nil))
	assert.Equal(t, "1.5", compiler.Stringify(1.5))
	assert.Equal(t, "true", compiler.Stringify(true))
}

func TestNumbersAndObjectsRenderLikeTemplateText(t *testing.T) {
	vm, doc := mount(t,
		`<div id="app"><p id="ts">{{ ts }}</p><p id="big">{{ big }}</p><p id="user">{{ user }}</p><input id="in" v-model="ts"></div>`,
		map[string]any{
			"ts":   1700000000.0,
			"big":  1000000.0,
			"user": map[string]any{"name": "ann"},
		},
		nil,
	)
	assert.Equal(t, "1700000000", query(t, doc, "#ts").Text())
	assert.Equal(t, "1000000", query(t, doc, "#big").Text())
	assert.Equal(t, "[object Object]", query(t, doc, "#user").Text())
	assert.Equal(t, "1700000000", query(t, doc, "#in").Value())

	vm.Set("ts", 0.5)
	assert.Equal(t, "0.5", query(t, doc, "#ts").Text())
	assert.Equal(t, "0.5", query(t, doc, "#in").Value())
}

func TestStringifyNumbers(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1e21, "1e+21"},
		{1.5e-7, "1.5e-7"},
		{0.000001, "0.000001"},
		{123456789012, "123456789012"},
		{-2.25, "-2.25"},
		{math.Copysign(0, -1), "0"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, compiler.Stringify(c.in), "%v", c.in)
	}
	assert.Equal(t, "NaN", compiler.Stringify(math.NaN()))
	assert.Equal(t, "2.5", compiler.Stringify(float32(2.5)))
	assert.Equal(t, "[object Object]", compiler.Stringify(map[string]any{}))
}
