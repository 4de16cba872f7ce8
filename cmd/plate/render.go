package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func render(ctx context.Context, cmd *cli.Command) error {
	vm, err := mount(cmd.String(templateKey), cmd.String(dataKey), cmd.String(elKey), cmd.StringSlice(stepKey))
	if err != nil {
		return err
	}
	if err := vm.Document().Render(os.Stdout); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout)
	return nil
}
