package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/delaneyj/plate/cmd/plate/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const counterTemplate = `<!DOCTYPE html>
<html><body>
<div id="app">
  <p id="count">{{ count }}</p>
  <button id="inc" v-on:click="inc"></button>
  <input id="name" v-model="name">
  <div id="box" v-show="open"></div>
</div>
</body></html>`

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "app.toml", `
el = "#root"

[data]
count = 1
name = "ann"

[data.user]
email = "a@b.c"

[methods]
inc = "count++"
`)
	cfg, err := loadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "#root", cfg.El)
	assert.Equal(t, int64(1), cfg.Data["count"])
	assert.Equal(t, map[string]any{"email": "a@b.c"}, cfg.Data["user"])
	assert.Contains(t, cfg.Methods, "inc")
}

func TestLoadTOMLUnknownKey(t *testing.T) {
	path := writeFile(t, "app.toml", "mount = \"#x\"\n")
	_, err := loadAppConfig(path)
	assert.Error(t, err)
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "app.json", `{"data": {"count": 2}, "methods": {"inc": "count++"}}`)
	cfg, err := loadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, defaultEl, cfg.El)
	assert.Equal(t, 2.0, cfg.Data["count"])
}

func TestLoadErrors(t *testing.T) {
	_, err := loadAppConfig(writeFile(t, "app.yaml", "a: 1"))
	assert.Error(t, err)
	_, err = loadAppConfig(writeFile(t, "app.json", `{"methods": {"inc": ""}}`))
	assert.Error(t, err)
	_, err = loadAppConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	cfg, err := loadAppConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultEl, cfg.El)
}

func TestMountRunsSteps(t *testing.T) {
	tmpl := writeFile(t, "index.html", counterTemplate)
	data := writeFile(t, "app.json", `{"data": {"count": 0, "name": "a", "open": false}, "methods": {"inc": "count++"}}`)

	vm, err := mount(tmpl, data, "", []string{"click:#inc", "click:#inc", "input:#name=bob", "set:open=true"})
	require.NoError(t, err)

	assert.Equal(t, 2.0, vm.Get("count"))
	assert.Equal(t, "bob", vm.Get("name"))
	out := vm.Document().String()
	assert.Contains(t, out, `<p id="count">2</p>`)
	assert.Contains(t, out, `value="bob"`)
	assert.Contains(t, out, `display: block;`)
	assert.NotContains(t, out, "v-on:click")

	_, err = mount(tmpl, data, "", []string{"bogus"})
	assert.Error(t, err)
}

func TestInspectReport(t *testing.T) {
	tmpl := writeFile(t, "index.html", counterTemplate)
	data := writeFile(t, "app.json", `{"data": {"count": 0, "name": "a", "open": true}, "methods": {"inc": "count++"}}`)
	vm, err := mount(tmpl, data, "", nil)
	require.NoError(t, err)

	r := buildReport(vm)
	assert.True(t, r.Mounted)
	require.Len(t, r.Bindings, 4)
	assert.Equal(t, []string{"count", "name", "open"}, r.ModelKeys)

	var buf bytes.Buffer
	writeBindingTable(&buf, r)
	assert.Contains(t, buf.String(), "click → inc")
	assert.Contains(t, buf.String(), "mounted: true")

	html := templates.BindingReport(r)
	assert.Contains(t, html, `<tr class="kind-model">`)
	assert.Contains(t, html, "<code>open</code>")
}

func TestBench(t *testing.T) {
	tbl, err := runBenchmarks(io.Discard, 10, 5)
	require.NoError(t, err)
	assert.Equal(t, len(benchCases), tbl.Length())
}
