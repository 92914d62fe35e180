// Command hillclimb prints the length of the shortest climbing route on an
// elevation map.
//
// Usage:
//
//	hillclimb [flags] [part] [input]
//
// part is 1 (summit: ascend from S to E) or 2 (trailhead: descend from E to
// the nearest 'a'); it defaults to 1. input defaults to ./input, "-" reads
// stdin. -query runs any query defined in the config file instead.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/term"

	"github.com/katalvlaran/hillclimb"
	"github.com/katalvlaran/hillclimb/astar"
	"github.com/katalvlaran/hillclimb/config"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/render"
)

// parts maps the positional part number to a query name.
var parts = map[string]string{
	"1": "summit",
	"2": "trailhead",
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("hillclimb: ")

	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatal(describe(err))
	}
}

// run is main without the process exit, so it can be tested.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("hillclimb", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML config file (default $"+config.EnvPath+")")
	queryName := fs.String("query", "", "named query from the config; overrides part")
	draw := fs.Bool("render", false, "draw the route on stderr")
	terrain := fs.Bool("terrain", false, "with -render, show terrain symbols off the route")
	colorMode := fs.String("color", "auto", "colour the rendering: auto, always or never")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if cfg.Locale.Dir != "" {
		gotext.Configure(cfg.Locale.Dir, cfg.Locale.Lang, cfg.Locale.Domain)
	}

	part, input, err := positional(fs.Args())
	if err != nil {
		return err
	}
	name := *queryName
	if name == "" {
		name = parts[part]
	}
	q, err := cfg.Query(name)
	if err != nil {
		return err
	}

	text, err := readInput(input, stdin)
	if err != nil {
		return err
	}
	opts, err := cfg.HeightmapOptions()
	if err != nil {
		return err
	}
	g, err := heightmap.Parse(text, opts...)
	if err != nil {
		return err
	}

	fmt.Fprintln(stderr, gotext.Get("=== Solving %s ===", name))
	route, err := hillclimb.Solve(g, q)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, route.Length())

	if *draw {
		useColor, err := wantColor(*colorMode, stderr)
		if err != nil {
			return err
		}
		return render.Render(stderr, g, route, render.Options{Color: useColor, Terrain: *terrain})
	}

	return nil
}

// loadConfig reads path, or falls back to $HILLCLIMB_CONFIG and then the
// built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}

	return config.LoadEnv()
}

// positional splits [part] [input]. A lone argument is a part when it names
// one, otherwise the input path.
func positional(args []string) (part, input string, err error) {
	part, input = "1", "input"
	switch len(args) {
	case 0:
	case 1:
		if _, ok := parts[args[0]]; ok {
			part = args[0]
		} else {
			input = args[0]
		}
	case 2:
		part, input = args[0], args[1]
	default:
		return "", "", errors.New(gotext.Get("too many arguments: %v", args))
	}
	if _, ok := parts[part]; !ok {
		return "", "", errors.New(gotext.Get("%s is not a valid part", part))
	}

	return part, input, nil
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// wantColor resolves the -color flag; auto enables colour only on a terminal.
func wantColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		color.ForceColor()
		return true, nil
	case "never":
		return false, nil
	case "auto":
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, errors.New(gotext.Get("unknown colour mode %q", mode))
	}
}

// describe prefixes domain failures with a translated summary.
func describe(err error) string {
	switch {
	case errors.Is(err, hillclimb.ErrNoPathFound):
		return gotext.Get("no route exists: %v", err)
	case errors.Is(err, hillclimb.ErrMarkerNotFound):
		return gotext.Get("marker missing from map: %v", err)
	case errors.Is(err, hillclimb.ErrMalformedInput):
		return gotext.Get("cannot read map: %v", err)
	case errors.Is(err, astar.ErrExpansionLimit):
		return gotext.Get("search gave up: %v", err)
	default:
		return err.Error()
	}
}
