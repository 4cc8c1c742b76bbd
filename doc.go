/*
Package figures renders a fixed set of decorative vector drawings (sun, spiral, honeycomb,
snowflake, flower, bee, rhombuses, prism, Olympic rings and a few more) with a stateful pen,
shows them in a preview window and waits for the user to dismiss it.

The package provides a command line interface, supporting various flags for selecting the
figure pack, the output file and the layout configuration. To check the supported commands type:

	$ figures --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"os"

		"github.com/esimov/figures"
	)

	func main() {
		p := &figures.Processor{
			Pack:   figures.PackPlus,
			Config: figures.DefaultConfig(),
		}

		if err := p.Process(os.Stdout, "png"); err != nil {
			fmt.Printf("Error rendering the figures: %s", err.Error())
		}
	}

Single figures can be drawn on any Canvas through a Pen:

	rec := figures.NewRecording()
	pen := figures.NewPen(rec)
	if err := figures.Sun(pen, 0, 0, figures.DefaultSunOptions()); err != nil {
		// handle error
	}
*/
package figures
