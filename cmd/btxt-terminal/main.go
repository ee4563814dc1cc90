// btxt-terminal emulates a terminal printing random numbers, as a
// small btxt demo:
//   btxt-terminal -atlas font.bmp -size 16
//
// Press P to pause the text rolling and C to clear the screen. The
// window can be resized freely.
package main

import "os"
import "fmt"
import "time"
import "flag"
import "log/slog"
import "math/rand"
import "image/color"

import "github.com/tinne26/btxt"

import "github.com/hajimehoshi/ebiten/v2"
import "github.com/hajimehoshi/ebiten/v2/inpututil"
import "github.com/hajimehoshi/ebiten/v2/ebitenutil"

var backColor = color.RGBA{217, 217, 217, 255}
var textColor = color.RGBA{51, 51, 51, 255}

const marginLeft = 10
const marginTop = 2

type Game struct {
	text *btxt.Renderer
	term *terminal
	rng *rand.Rand
	logger *slog.Logger

	paused bool
	ticksPerLine int
	ticks int
	width, height int
}

func (self *Game) Layout(winWidth, winHeight int) (int, int) {
	scale := ebiten.DeviceScaleFactor()
	width, height := int(float64(winWidth)*scale), int(float64(winHeight)*scale)
	if width != self.width || height != self.height {
		self.width, self.height = width, height
		self.text.SetViewport(max(width, 1), max(height, 1))
		self.term.Resize(height)
		self.logger.Debug("viewport resized", "viewport", self.text.GetViewport().String())
	}
	return width, height
}

func (self *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		self.paused = !self.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		self.term.Clear()
	}
	if self.paused { return nil }

	self.ticks += 1
	if self.ticks >= self.ticksPerLine {
		self.ticks = 0
		self.term.PrintLine(randomLine(self.rng))
	}
	return nil
}

func (self *Game) Draw(canvas *ebiten.Image) {
	canvas.Fill(backColor)

	// lines go from the top down, but btxt coordinates are bottom-up
	fontSize := int(self.text.GetFontSize())
	startY := self.height - fontSize - marginTop
	for i, line := range self.term.Lines() {
		y := startY - i*(fontSize + 1)
		err := self.text.Draw(canvas, line, marginLeft, float32(y))
		if err != nil { self.logger.Warn("line skipped", "error", err) }
	}

	ebitenutil.DebugPrintAt(canvas, fpsLabel(ebiten.ActualFPS()), self.width - 72, 0)
}

func fpsLabel(fps float64) string {
	return fmt.Sprintf("%.1f FPS", fps)
}

func main() {
	var atlasPath string
	var fontSize int
	var interval time.Duration
	var verbose bool
	flag.StringVar(&atlasPath, "atlas", "", "path to the glyph atlas bitmap")
	flag.IntVar(&fontSize, "size", 16, "font size, in pixels")
	flag.DurationVar(&interval, "interval", 0, "time between printed lines (0 prints one per tick)")
	flag.BoolVar(&verbose, "v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if verbose { level = slog.LevelDebug }
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{ Level: level }))
	btxt.SetLogger(logger)

	if atlasPath == "" || fontSize <= 0 {
		flag.Usage()
		os.Exit(2)
	}

	// create and configure renderer
	renderer := btxt.NewRenderer()
	err := renderer.LoadAtlas(atlasPath)
	if err != nil {
		logger.Error("failed to load atlas", "error", err)
		os.Exit(1)
	}
	renderer.SetFontSize(float32(fontSize))
	renderer.SetColor(textColor)

	ticksPerLine := max(1, int(interval.Seconds()*float64(ebiten.TPS())))
	game := &Game{
		text: renderer,
		term: newTerminal(fontSize, 500),
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: logger,
		ticksPerLine: ticksPerLine,
	}

	// run the game
	ebiten.SetWindowTitle("btxt-terminal")
	ebiten.SetWindowSize(500, 500)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	err = ebiten.RunGame(game)
	if err != nil {
		logger.Error("game loop failed", "error", err)
		os.Exit(1)
	}
}
