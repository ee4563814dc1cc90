// btxt-atlas rasterizes a ggfnt bitmap font into a glyph atlas that
// btxt renderers can load:
//   btxt-atlas -font tiny.ggfnt -cell 32 -out tiny.bmp
//
// Glyphs for codes 32 to 255 are painted white on black into the left
// half of their 16x16 grid cells, scaled by the largest integer factor
// that fits. Codes missing from the font are left empty.
package main

import "os"
import "fmt"
import "flag"
import "log/slog"

import "github.com/tinne26/btxt"
import "github.com/tinne26/btxt/atlas"

func main() {
	var fontPath, outPath string
	var cellSize int
	var verbose bool
	flag.StringVar(&fontPath, "font", "", "path to the .ggfnt font to rasterize")
	flag.IntVar(&cellSize, "cell", 32, "size of the atlas grid cells, in pixels (even, >= 2)")
	flag.StringVar(&outPath, "out", "atlas.bmp", "output bitmap path")
	flag.BoolVar(&verbose, "v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if verbose { level = slog.LevelDebug }
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{ Level: level }))
	btxt.SetLogger(logger)

	if fontPath == "" {
		fmt.Fprint(os.Stderr, "missing -font argument\n")
		flag.Usage()
		os.Exit(2)
	}
	if cellSize < 2 || cellSize % 2 != 0 || cellSize*atlas.GridSize > atlas.MaxDimension {
		fmt.Fprintf(os.Stderr, "invalid -cell value %d (must be even, >= 2 and <= %d)\n", cellSize, atlas.MaxDimension/atlas.GridSize)
		os.Exit(2)
	}

	err := run(logger, fontPath, cellSize, outPath)
	if err != nil {
		logger.Error("atlas generation failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, fontPath string, cellSize int, outPath string) error {
	font, err := parseFont(fontPath)
	if err != nil { return err }
	logger.Info("font parsed", "name", font.Header().Name(), "glyphs", font.Glyphs().Count())

	img, stats := rasterizeFont(font, cellSize)
	logger.Info("glyphs rasterized", "mapped", stats.mapped, "missing", stats.missing, "scale", stats.scale)

	data, err := encodeAtlas(img, cellSize)
	if err != nil { return err }
	err = os.WriteFile(outPath, data, 0o644)
	if err != nil { return fmt.Errorf("writing atlas: %w", err) }
	logger.Info("atlas written", "path", outPath, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return nil
}
