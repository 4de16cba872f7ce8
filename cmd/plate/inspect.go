package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/delaneyj/plate/cmd/plate/templates"
	"github.com/delaneyj/plate/compiler"
	"github.com/delaneyj/plate/plate"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

func inspect(ctx context.Context, cmd *cli.Command) error {
	vm, err := mount(cmd.String(templateKey), cmd.String(dataKey), cmd.String(elKey), cmd.StringSlice(stepKey))
	if err != nil {
		return err
	}
	report := buildReport(vm)
	if cmd.Bool(htmlKey) {
		templates.WriteBindingReport(os.Stdout, report)
		return nil
	}
	writeBindingTable(os.Stdout, report)
	return nil
}

func buildReport(vm *plate.Plate) *templates.Report {
	r := &templates.Report{
		Mounted:   vm.Mounted(),
		Size:      humanize.Bytes(uint64(len(vm.Document().String()))),
		Bindings:  make([]templates.BindingRow, 0, len(vm.Bindings())),
		ModelKeys: vm.Keys(),
	}
	for _, b := range vm.Bindings() {
		row := templates.BindingRow{
			Node: fmt.Sprintf("%016x", b.Node.ID()),
			Tag:  b.Node.Tag(),
			Kind: string(b.Kind),
			Path: b.Path,
		}
		if b.Kind == compiler.BindEvent {
			row.Path = b.Event + " → " + b.Path
		}
		if b.Watcher != nil {
			row.Value = compiler.Stringify(b.Watcher.Value())
			for _, dep := range b.Watcher.Deps() {
				row.Subscribers += len(dep.Subs())
			}
		}
		r.Bindings = append(r.Bindings, row)
	}
	return r
}

func writeBindingTable(w io.Writer, r *templates.Report) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"node", "tag", "kind", "binding", "value", "subscribers"})
	for _, row := range r.Bindings {
		table.Append([]string{
			row.Node,
			row.Tag,
			row.Kind,
			row.Path,
			strconv.Quote(row.Value),
			humanize.Comma(int64(row.Subscribers)),
		})
	}
	table.SetFooter([]string{"", "", "", "", "bindings", humanize.Comma(int64(len(r.Bindings)))})
	table.Render()
	fmt.Fprintf(w, "mounted: %v, document: %s\n", r.Mounted, r.Size)
}
