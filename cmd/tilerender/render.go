package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Tsukumogami-Software/go-tiled-editor/internal/demo"
	"github.com/Tsukumogami-Software/go-tiled-editor/render"
	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"
)

type renderCmd struct {
	mapFlags

	outputPath string
	grid       bool
	selection  string
	lineWidth  float64
	outlines   bool
	verbose    bool
}

func (c *renderCmd) Name() string     { return "render" }
func (c *renderCmd) Synopsis() string { return "render a generated map to an image file" }
func (c *renderCmd) Usage() string {
	return "tilerender render -o <path> [-orientation <name>] [-size WxH] [-tile WxH] [-grid]\n"
}
func (c *renderCmd) SetFlags(f *flag.FlagSet) {
	c.mapFlags.SetFlags(f)
	f.StringVar(&c.outputPath, "o", "map.png", "Output file path (.png, .jpg, .gif)")
	f.BoolVar(&c.grid, "grid", false, "Draw the tile grid")
	f.StringVar(&c.selection, "select", "", "Highlight a tile region given as X,Y,WxH")
	f.Float64Var(&c.lineWidth, "line-width", 1, "Object line width")
	f.BoolVar(&c.outlines, "outlines", false, "Outline tile objects")
	f.BoolVar(&c.verbose, "v", false, "Log debug output")
}

func parseRegion(s string) (image.Rectangle, error) {
	pos, size, ok := strings.Cut(s, ",")
	if !ok {
		return image.Rectangle{}, fmt.Errorf("invalid region %q, expected X,Y,WxH", s)
	}
	ys, size, ok := strings.Cut(size, ",")
	if !ok {
		return image.Rectangle{}, fmt.Errorf("invalid region %q, expected X,Y,WxH", s)
	}
	var x, y int
	if _, err := fmt.Sscanf(pos+" "+ys, "%d %d", &x, &y); err != nil {
		return image.Rectangle{}, fmt.Errorf("invalid region %q: %w", s, err)
	}
	w, h, err := parseSize(size)
	if err != nil {
		return image.Rectangle{}, err
	}
	return image.Rect(x, y, x+w, y+h), nil
}

func (c *renderCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if c.verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		render.SetLogger(slog.Default())
	}

	m, err := c.newMap()
	if err != nil {
		slog.Error("invalid map", "err", err)
		return subcommands.ExitUsageError
	}

	images := render.NewTilesetCache(nil)
	if err := demo.Populate(m, images); err != nil {
		slog.Error("generate map", "err", err)
		return subcommands.ExitFailure
	}

	opts := []render.Option{
		render.WithTilesetCache(images),
		render.WithBackground(color.NRGBA{0x20, 0x20, 0x28, 0xff}),
		render.WithObjectLineWidth(c.lineWidth),
	}
	if c.outlines {
		opts = append(opts, render.WithFlags(render.ShowTileObjectOutlines))
	}

	r, err := render.NewRenderer(m, opts...)
	if err != nil {
		slog.Error("create renderer", "err", err)
		return subcommands.ExitFailure
	}
	defer r.Close()

	bar := progressbar.New(len(m.Layers))
	for i, l := range m.Layers {
		if l.IsVisible() {
			if err := r.RenderLayer(i); err != nil {
				slog.Error("render layer", "layer", l.LayerName(), "err", err)
				return subcommands.ExitFailure
			}
		}
		bar.Add(1)
	}
	bar.Finish()
	fmt.Println()

	if c.selection != "" {
		region, err := parseRegion(c.selection)
		if err != nil {
			slog.Error("invalid selection", "err", err)
			return subcommands.ExitUsageError
		}
		r.RenderSelection([]image.Rectangle{region}, color.NRGBA{0x40, 0x80, 0xff, 0x60})
	}
	if c.grid {
		r.RenderGrid(color.Black)
	}

	f, err := os.Create(c.outputPath)
	if err != nil {
		slog.Error("create output", "err", err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(c.outputPath)) {
	case ".jpg", ".jpeg":
		err = r.SaveAsJpeg(f, &jpeg.Options{Quality: 90})
	case ".gif":
		err = r.SaveAsGif(f, &gif.Options{NumColors: 256})
	default:
		err = r.SaveAsPng(f)
	}
	if err != nil {
		slog.Error("write output", "path", c.outputPath, "err", err)
		return subcommands.ExitFailure
	}

	size := r.MapRenderer().MapSize()
	slog.Info("rendered map", "path", c.outputPath, "orientation", m.Orientation, "width", size.X, "height", size.Y)
	return subcommands.ExitSuccess
}
