package breakout

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
)

// Brick glyphs alternate in a checkerboard so neighboring bricks stay distinct.
var BrickGlyphs = []rune{'█', '▓'}

// Minimum terminal size for the play field.
const (
	MinScreenW = 30
	MinScreenH = 12
)

// Layout rows: HUD on row 0, field border from row 1 to the last row.
const (
	hudRows   = 1
	fieldTopY = hudRows + 1
)

// Game adapts a Session to the registry.Game interface: it translates input
// frames into paddle positions, ticks the session and renders it into a
// character screen.
type Game struct {
	id    string
	title string

	cfg     config.Config
	session *Session
	logger  *log.Logger

	runtime        core.RuntimeConfig
	screenTooSmall bool
}

// New creates a game for the given variant. opts.Config must already carry
// the variant preset and pass Validate.
func New(id, title string, opts registry.Options, sessionOpts ...Option) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		id:      id,
		title:   title,
		cfg:     opts.Config,
		session: NewSession(opts.Config, sessionOpts...),
		logger:  logger.With("variant", id),
		runtime: core.DefaultConfig(),
	}
	g.session.Subscribe(g.logEvent)
	return g
}

// ID returns the variant identifier.
func (g *Game) ID() string { return g.id }

// Title returns the display name for this variant.
func (g *Game) Title() string { return g.title }

// Session exposes the simulation for frontends that draw the surface directly.
func (g *Game) Session() *Session { return g.session }

// Config returns the configuration the session was built from.
func (g *Game) Config() config.Config { return g.cfg }

// Reset restarts the session and records the terminal size.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.Resize(runtime)
	g.session.Restart()
	g.logger.Info("reset",
		"screen", fmt.Sprintf("%dx%d", runtime.ScreenW, runtime.ScreenH),
		"bricks", g.cfg.InitialBricks(),
		"steering", g.cfg.Physics.Steering)
}

// Resize records a new terminal size without touching the session.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH
}

// Step applies input and advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.session.Phase().Terminal() {
		if in.Has(core.ActionRestart) {
			g.session.Restart()
		}
		return core.StepResult{State: g.State()}
	}

	g.updatePaddle(in)
	g.session.Tick()

	return core.StepResult{State: g.State()}
}

// updatePaddle moves the paddle from pointer and keyboard input, keeping it
// inside the surface.
func (g *Game) updatePaddle(in core.InputFrame) {
	p := g.session.Paddle()
	x := p.X

	if px, _, ok := in.Pointer(); ok {
		x = core.PaddleXForPointer(px, g.cfg.Surface.Width, p.Width)
	}
	if in.Has(core.ActionLeft) {
		x -= g.cfg.Paddle.KeyStep
	}
	if in.Has(core.ActionRight) {
		x += g.cfg.Paddle.KeyStep
	}

	g.session.MovePaddle(core.ClampPaddleX(x, g.cfg.Surface.Width, p.Width), p.Y)
}

// SurfacePoint maps a terminal cell to surface coordinates.
// Used by the terminal frontend to turn mouse motion into pointer input.
func (g *Game) SurfacePoint(cellX, cellY int) (x, y float64) {
	proj := g.projection()
	return proj.SurfaceX(cellX - 1), float64(cellY-fieldTopY) * g.cfg.Surface.Height / float64(core.Max(proj.CellsH, 1))
}

// projection maps the surface onto the bordered field below the HUD.
func (g *Game) projection() core.Projection {
	return core.Projection{
		SurfaceW: g.cfg.Surface.Width,
		SurfaceH: g.cfg.Surface.Height,
		CellsW:   core.Max(g.runtime.ScreenW-2, 1),
		CellsH:   core.Max(g.runtime.ScreenH-fieldTopY-1, 1),
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	dst.DrawBox(core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows))

	proj := g.projection()
	g.renderBricks(dst, proj)
	g.renderPaddle(dst, proj)
	g.renderBall(dst, proj)
	g.renderOverlay(dst)
}

// renderHUD draws the variant title and counters.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, g.title)

	stats := g.session.Stats()
	counters := fmt.Sprintf("Bricks: %d  Rounds: %d  Resets: %d",
		g.session.Grid().BricksLeft(), stats.RoundsCleared, stats.FloorResets)
	dst.DrawTextCentered(0, counters)

	tick := fmt.Sprintf("T%d", stats.Ticks)
	dst.DrawText(dst.Width()-len(tick)-1, 0, tick)
}

// renderBricks draws all alive bricks.
func (g *Game) renderBricks(dst *core.Screen, proj core.Projection) {
	grid := g.session.Grid()
	bw, bh := grid.CellSize()
	brickColor, _ := core.ParseColor(g.cfg.Bricks.Color)

	for row := range grid.Rows() {
		for col := range grid.Cols() {
			if !grid.Alive(col, row) {
				continue
			}
			r := proj.Rect(float64(col)*bw, float64(row)*bh, bw, bh)
			r.X++
			r.Y += fieldTopY
			dst.DrawRect(r, BrickGlyphs[(row+col)%len(BrickGlyphs)], brickColor)
		}
	}
}

// renderPaddle draws the player's paddle.
func (g *Game) renderPaddle(dst *core.Screen, proj core.Projection) {
	p := g.session.Paddle()
	r := proj.Rect(p.X, p.Y, p.Width, p.Height)
	r.X++
	r.Y += fieldTopY
	r.H = 1
	dst.DrawRect(r, PaddleChar, p.Color)
}

// renderBall draws the ball at its center cell.
func (g *Game) renderBall(dst *core.Screen, proj core.Projection) {
	b := g.session.Ball()
	x := proj.CellX(b.X) + 1
	y := proj.CellY(b.Y) + fieldTopY
	if x > 0 && x < dst.Width()-1 && y >= fieldTopY && y < dst.Height()-1 {
		dst.SetColored(x, y, BallChar, b.Color)
	}
}

// renderOverlay draws terminal phase messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.session.Phase() {
	case PhaseWin:
		g.drawCenteredBox(dst, "YOU WIN!", "Press R to restart")
	case PhaseLose:
		g.drawCenteredBox(dst, "GAME OVER", "Press R to restart")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.session.State()
}

// logEvent writes core events to the game logger.
func (g *Game) logEvent(e Event) {
	switch e.Kind {
	case EventBrickDestroyed:
		g.logger.Debug("brick destroyed", "tick", e.Tick, "col", e.Col, "row", e.Row,
			"left", g.session.Grid().BricksLeft())
	case EventWallBounce, EventCeilingBounce, EventPaddleHit:
		g.logger.Debug("bounce", "tick", e.Tick, "surface", e.Kind, "x", e.X, "y", e.Y)
	case EventFloorReset:
		g.logger.Info("floor reset", "tick", e.Tick)
	case EventRoundReset:
		g.logger.Info("round cleared", "tick", e.Tick, "rounds", g.session.Stats().RoundsCleared)
	case EventPhaseChanged:
		g.logger.Info("phase", "tick", e.Tick, "phase", e.Phase)
	}
}

// Register the variants with the registry
func init() {
	for _, v := range config.Variants() {
		registry.Register(v.ID, v.Title, func(opts registry.Options) registry.Game {
			return New(v.ID, v.Title, opts)
		})
	}
}
