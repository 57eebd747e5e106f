package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/Tsukumogami-Software/go-tiled-editor/render"
	"github.com/google/subcommands"
)

type coordsCmd struct {
	mapFlags
	toScreen bool
}

func (c *coordsCmd) Name() string     { return "coords" }
func (c *coordsCmd) Synopsis() string { return "convert between screen and tile coordinates" }
func (c *coordsCmd) Usage() string {
	return "tilerender coords [-orientation <name>] [-to-screen] <x> <y> [<x> <y>...]\n"
}
func (c *coordsCmd) SetFlags(f *flag.FlagSet) {
	c.mapFlags.SetFlags(f)
	f.BoolVar(&c.toScreen, "to-screen", false, "Convert tile coordinates to screen coordinates")
}

func (c *coordsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	args := f.Args()
	if len(args) == 0 || len(args)%2 != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	m, err := c.newMap()
	if err != nil {
		slog.Error("invalid map", "err", err)
		return subcommands.ExitUsageError
	}
	r, err := render.NewMapRenderer(m)
	if err != nil {
		slog.Error("create renderer", "err", err)
		return subcommands.ExitFailure
	}

	for i := 0; i < len(args); i += 2 {
		x, errX := strconv.ParseFloat(args[i], 64)
		y, errY := strconv.ParseFloat(args[i+1], 64)
		if errX != nil || errY != nil {
			slog.Error("invalid coordinate", "x", args[i], "y", args[i+1])
			return subcommands.ExitUsageError
		}

		if c.toScreen {
			p := r.TileToScreenCoords(x, y)
			fmt.Printf("tile %g,%g -> screen %g,%g\n", x, y, p.X, p.Y)
			continue
		}
		p := r.ScreenToTileCoords(x, y)
		fmt.Printf("screen %g,%g -> tile %g,%g (cell %d,%d)\n", x, y, p.X, p.Y,
			int(math.Floor(p.X)), int(math.Floor(p.Y)))
	}
	return subcommands.ExitSuccess
}
