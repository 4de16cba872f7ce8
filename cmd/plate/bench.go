package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/delaneyj/plate/dom"
	"github.com/delaneyj/plate/plate"
	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

func bench(ctx context.Context, cmd *cli.Command) error {
	watchers := int(cmd.Uint(watchersKey))
	iters := int(cmd.Uint(itersKey))
	if watchers <= 0 || iters <= 0 {
		return fmt.Errorf("watchers and iters must be positive")
	}

	log.Printf("warming up")
	if _, err := runBenchmarks(io.Discard, watchers, iters); err != nil {
		return err
	}
	_, err := runBenchmarks(os.Stdout, watchers, iters)
	return err
}

type benchCase struct {
	name  string
	build func(n int) (tmpl string, data map[string]any, keys []string)
}

var benchCases = []benchCase{
	{
		name: "fan-out",
		build: func(n int) (string, map[string]any, []string) {
			var sb strings.Builder
			sb.WriteString(`<div id="app">`)
			for i := 0; i < n; i++ {
				sb.WriteString(`<p>{{ n }}</p>`)
			}
			sb.WriteString(`</div>`)
			return sb.String(), map[string]any{"n": 0}, []string{"n"}
		},
	},
	{
		name: "wide",
		build: func(n int) (string, map[string]any, []string) {
			var sb strings.Builder
			data := make(map[string]any, n)
			keys := make([]string, n)
			sb.WriteString(`<div id="app">`)
			for i := 0; i < n; i++ {
				key := "k" + strconv.Itoa(i)
				keys[i] = key
				data[key] = 0
				sb.WriteString(`<p>{{ ` + key + ` }}</p>`)
			}
			sb.WriteString(`</div>`)
			return sb.String(), data, keys
		},
	},
}

func runBenchmarks(w io.Writer, watchers, iters int) (table.Writer, error) {
	tbl := table.NewWriter()
	tbl.SetTitle(fmt.Sprintf("plate: %s bindings", humanize.Comma(int64(watchers))))
	tbl.SetOutputMirror(w)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, bc := range benchCases {
		tmpl, data, keys := bc.build(watchers)
		doc, err := dom.ParseString(tmpl)
		if err != nil {
			return nil, err
		}
		vm := plate.New(plate.Options{El: "#app", Document: doc, Data: data})

		tach := tachymeter.New(&tachymeter.Config{Size: iters})
		for i := 1; i <= iters; i++ {
			key := keys[i%len(keys)]
			start := time.Now()
			vm.Set(key, i)
			tach.AddTime(time.Since(start))
		}

		calc := tach.Calc()
		tbl.AppendRow(table.Row{
			bc.name,
			calc.Time.Avg,
			calc.Time.Min,
			calc.Time.P75,
			calc.Time.P99,
			calc.Time.Max,
		})
	}

	tbl.Render()
	return tbl, nil
}
