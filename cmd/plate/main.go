package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

const (
	templateKey = "template"
	dataKey     = "data"
	elKey       = "el"
	stepKey     = "step"
	htmlKey     = "html"
	watchersKey = "watchers"
	itersKey    = "iters"
)

func main() {
	documentFlags := []cli.Flag{
		&cli.StringFlag{
			Name:     templateKey,
			Aliases:  []string{"t"},
			Usage:    "HTML file holding the template",
			Required: true,
		},
		&cli.StringFlag{
			Name:    dataKey,
			Aliases: []string{"d"},
			Usage:   "JSON or TOML file with el, data and methods",
		},
		&cli.StringFlag{
			Name:  elKey,
			Usage: "Mount selector, overrides the data file",
		},
		&cli.StringSliceFlag{
			Name:    stepKey,
			Aliases: []string{"s"},
			Usage:   "Step to run after mounting: set:key=value, input:selector=text or event:selector",
		},
	}

	cmd := &cli.Command{
		Name:  "plate",
		Usage: "Compile templates against reactive data and drive them",
		Commands: []*cli.Command{
			{
				Name:   "render",
				Usage:  "Mount, run steps and print the resulting HTML",
				Flags:  documentFlags,
				Action: render,
			},
			{
				Name:  "inspect",
				Usage: "Mount, run steps and list the established bindings",
				Flags: append(documentFlags, &cli.BoolFlag{
					Name:  htmlKey,
					Usage: "Write an HTML report instead of a table",
				}),
				Action: inspect,
			},
			{
				Name:  "bench",
				Usage: "Measure set to render latency",
				Flags: []cli.Flag{
					&cli.UintFlag{
						Name:  watchersKey,
						Usage: "Number of text bindings",
						Value: 1_000,
					},
					&cli.UintFlag{
						Name:  itersKey,
						Usage: "Number of updates to time",
						Value: 100,
					},
				},
				Action: bench,
			},
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
