package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/esimov/figures"
	"github.com/esimov/figures/utils"
)

const HelpBanner = `
┌─┐┬┌─┐┬ ┬┬─┐┌─┐┌─┐
├┤ ││ ┬│ │├┬┘├┤ └─┐
└  ┴└─┘└─┘┴└─└─┘└─┘

Turtle graphics figure packs.
    Version: %s

`

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	pack        = flag.String("pack", string(figures.PackPlus), "Figure pack: "+packNames())
	destination = flag.String("out", "", "Destination file (png, jpg, bmp, gif, tiff, svg) or - for stdout")
	preview     = flag.Bool("preview", true, "Show the figures in a window")
	configPath  = flag.String("config", "", "Layout configuration file or URL (TOML)")
	dumpConfig  = flag.Bool("dump-config", false, "Print the default layout configuration and exit")
	debug       = flag.Bool("debug", false, "Log the drawing operations")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *dumpConfig {
		if err := figures.DefaultConfig().Encode(os.Stdout); err != nil {
			log.Fatalf(utils.DecorateText("Unable to encode the configuration: %v", utils.ErrorMessage), err)
		}
		return
	}

	if !validPack(figures.Pack(*pack)) {
		log.Fatalf(utils.DecorateText("Unknown figure pack %q, use one of: %s", utils.ErrorMessage), *pack, packNames())
	}

	if *debug {
		figures.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	proc := figures.NewProcessor(figures.Pack(*pack))
	proc.Preview = *preview

	if *destination == "" && !*preview {
		log.Fatal(utils.DecorateText("Nothing to do: set an output file with -out or enable -preview", utils.ErrorMessage))
	}

	op := &figures.Ops{
		Dst:        *destination,
		PipeName:   pipeName,
		ConfigPath: *configPath,
	}
	proc.Execute(op)
}

func validPack(p figures.Pack) bool {
	for _, pk := range figures.Packs {
		if pk == p {
			return true
		}
	}
	return false
}

func packNames() string {
	names := make([]string, len(figures.Packs))
	for i, p := range figures.Packs {
		names[i] = string(p)
	}
	return strings.Join(names, "|")
}
