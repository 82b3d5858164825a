// Package window runs the game in a desktop window using Ebiten. The surface
// is drawn at its native resolution and Ebiten scales it to the window.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// brickGap keeps neighboring bricks visually apart.
const brickGap = 1

var background = color.RGBA{12, 12, 20, 255}

// palette maps display colors to RGBA.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault: {220, 220, 220, 255},
	core.ColorBlack:   {0, 0, 0, 255},
	core.ColorRed:     {220, 60, 60, 255},
	core.ColorGreen:   {80, 200, 100, 255},
	core.ColorBlue:    {70, 130, 230, 255},
	core.ColorYellow:  {235, 210, 70, 255},
	core.ColorMagenta: {200, 80, 200, 255},
	core.ColorCyan:    {70, 210, 220, 255},
	core.ColorWhite:   {245, 245, 245, 255},
	core.ColorOrange:  {240, 150, 50, 255},
	core.ColorGray:    {130, 130, 130, 255},
}

// RGBA returns the window color for a display color.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}

// rawInput is the device state sampled once per Update.
type rawInput struct {
	left, right bool
	restart     bool
	fullscreen  bool
	cursorX     int
	cursorY     int
}

// Window implements ebiten.Game for a breakout game.
type Window struct {
	game   *breakout.Game
	logger *log.Logger

	lastCursor [2]int
	cursorSeen bool
}

// New creates a window frontend for the game.
func New(game *breakout.Game, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Window{game: game, logger: logger}
}

// frame converts sampled input into an input frame. The cursor only steers
// the paddle after it moves, so a resting cursor does not fight the keys.
func (w *Window) frame(in rawInput) core.InputFrame {
	f := core.NewInputFrame()
	if in.left {
		f.Set(core.ActionLeft)
	}
	if in.right {
		f.Set(core.ActionRight)
	}
	if in.restart {
		f.Set(core.ActionRestart)
	}
	if in.fullscreen {
		f.Set(core.ActionFullscreen)
	}

	cursor := [2]int{in.cursorX, in.cursorY}
	if w.cursorSeen && cursor != w.lastCursor {
		f.SetPointer(float64(in.cursorX), float64(in.cursorY))
	}
	w.lastCursor = cursor
	w.cursorSeen = true
	return f
}

// Update samples input and advances the game by one tick.
func (w *Window) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	cx, cy := ebiten.CursorPosition()
	in := rawInput{
		left:       ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		right:      ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		restart:    inpututil.IsKeyJustPressed(ebiten.KeyR),
		fullscreen: inpututil.IsKeyJustPressed(ebiten.KeyF),
		cursorX:    cx,
		cursorY:    cy,
	}

	f := w.frame(in)
	if f.Has(core.ActionFullscreen) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	w.game.Step(f)
	return nil
}

// Draw renders the surface.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	s := w.game.Session()
	w.drawBricks(screen, s)

	p := s.Paddle()
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), RGBA(p.Color), false)

	b := s.Ball()
	vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(b.Radius), RGBA(b.Color), true)

	st := s.Stats()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  Bricks: %d  Rounds: %d  Resets: %d",
		w.game.Title(), s.Grid().BricksLeft(), st.RoundsCleared, st.FloorResets), 4, int(s.Surface().Height)-16)

	switch s.Phase() {
	case breakout.PhaseWin:
		w.drawOverlay(screen, "YOU WIN!")
	case breakout.PhaseLose:
		w.drawOverlay(screen, "GAME OVER")
	}
}

func (w *Window) drawBricks(screen *ebiten.Image, s *breakout.Session) {
	grid := s.Grid()
	cw, ch := grid.CellSize()
	brickColor, _ := core.ParseColor(w.game.Config().Bricks.Color)
	clr := RGBA(brickColor)

	for row := range grid.Rows() {
		for col := range grid.Cols() {
			if !grid.Alive(col, row) {
				continue
			}
			x := float32(float64(col) * cw)
			y := float32(float64(row) * ch)
			vector.DrawFilledRect(screen, x+brickGap, y+brickGap, float32(cw)-2*brickGap, float32(ch)-2*brickGap, clr, false)
		}
	}
}

func (w *Window) drawOverlay(screen *ebiten.Image, title string) {
	surface := w.game.Session().Surface()
	cx, cy := int(surface.Width/2), int(surface.Height/2)
	ebitenutil.DebugPrintAt(screen, title, cx-len(title)*3, cy-16)
	ebitenutil.DebugPrintAt(screen, "Press R to restart", cx-54, cy)
}

// Layout keeps the logical screen at the surface size.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	surface := w.game.Session().Surface()
	return int(surface.Width), int(surface.Height)
}

// Run opens a window and blocks until it is closed.
func Run(game *breakout.Game, tickRate int, logger *log.Logger) error {
	if tickRate <= 0 {
		tickRate = 60
	}
	w := New(game, logger)
	surface := game.Session().Surface()

	game.Reset(core.RuntimeConfig{
		ScreenW:  int(surface.Width),
		ScreenH:  int(surface.Height),
		TickRate: tickRate,
	})

	ebiten.SetWindowSize(int(surface.Width), int(surface.Height))
	ebiten.SetWindowTitle("Breakout - " + game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tickRate)

	w.logger.Info("window started", "tps", tickRate)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
