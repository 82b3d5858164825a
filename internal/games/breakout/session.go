package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Phase is the round state machine position.
type Phase int

const (
	PhaseInit Phase = iota
	PhaseRunning
	PhaseWin
	PhaseLose
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhaseRunning:
		return "running"
	case PhaseWin:
		return "win"
	case PhaseLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further ticks are processed in this phase.
func (p Phase) Terminal() bool {
	return p == PhaseWin || p == PhaseLose
}

// Referee decides whether a running session has been won or lost.
// It is consulted once per running tick after collisions are resolved.
// Returning anything but PhaseWin or PhaseLose keeps the session running.
type Referee interface {
	Judge(s *Session) Phase
}

// RefereeFunc adapts a function to the Referee interface.
type RefereeFunc func(s *Session) Phase

// Judge calls f(s).
func (f RefereeFunc) Judge(s *Session) Phase { return f(s) }

// Stats are counters accumulated since the last Restart.
type Stats struct {
	Ticks           uint64 // Running ticks processed
	BricksDestroyed int
	RoundsCleared   int // Paddle hits that refilled an empty grid
	FloorResets     int
	PaddleHits      int
}

// Option configures a Session.
type Option func(*Session)

// WithResolver replaces the brick collision strategy.
func WithResolver(r BrickResolver) Option {
	return func(s *Session) { s.resolver = r }
}

// WithReferee installs a win/lose trigger. Without one, the session never
// leaves PhaseRunning on its own.
func WithReferee(r Referee) Option {
	return func(s *Session) { s.referee = r }
}

// Session owns the ball, paddle and brick grid and advances them one tick at
// a time. It is not safe for concurrent use; callers serialize Tick and
// MovePaddle on a single goroutine.
type Session struct {
	surface  Surface
	steering float64
	launchVX float64
	launchVY float64
	paddleX0 float64

	ball   Ball
	paddle Paddle
	grid   *BrickGrid
	phase  Phase

	resolver  BrickResolver
	referee   Referee
	listeners []Listener
	stats     Stats
}

// NewSession builds a session in PhaseInit from a validated configuration.
// The ball starts at the surface center with the configured launch velocity,
// and the paddle starts horizontally centered at its configured height.
func NewSession(cfg config.Config, opts ...Option) *Session {
	ballColor, _ := core.ParseColor(cfg.Ball.Color)
	paddleColor, _ := core.ParseColor(cfg.Paddle.Color)

	paddleX := cfg.Surface.Width / 2
	if paddleX > cfg.Surface.Width-cfg.Paddle.Width {
		paddleX = cfg.Surface.Width - cfg.Paddle.Width
	}

	s := &Session{
		surface:  Surface{Width: cfg.Surface.Width, Height: cfg.Surface.Height},
		steering: cfg.Physics.Steering,
		launchVX: cfg.Ball.SpeedX,
		launchVY: cfg.Ball.SpeedY,
		paddleX0: paddleX,
		ball: Ball{
			Radius: cfg.Ball.Radius,
			Color:  ballColor,
		},
		paddle: Paddle{
			Y:      cfg.PaddleY(),
			Width:  cfg.Paddle.Width,
			Height: cfg.Paddle.Height,
			Color:  paddleColor,
		},
		grid: NewBrickGrid(
			cfg.Columns(),
			cfg.Bricks.Rows,
			cfg.Bricks.ResetOffsetRows,
			cfg.Bricks.Width,
			cfg.Bricks.Height,
		),
		resolver: DeltaResolver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Restart()
	return s
}

// Restart returns the session to PhaseInit with launch velocity, a centered
// ball and paddle, an empty grid and zeroed stats. Listeners are kept.
func (s *Session) Restart() {
	s.ball.X = s.surface.Width / 2
	s.ball.Y = s.surface.Height / 2
	s.ball.VX = s.launchVX
	s.ball.VY = s.launchVY
	s.paddle.X = s.paddleX0
	s.grid.restore(make([]bool, s.grid.cols*s.grid.rows))
	s.stats = Stats{}
	s.setPhase(PhaseInit)
}

// Tick runs one step of the state machine. In PhaseInit it resets the ball
// position and the grid and enters PhaseRunning. In PhaseRunning it moves
// the ball, resolves brick then paddle collisions and consults the referee.
// Terminal phases ignore the call.
func (s *Session) Tick() {
	switch s.phase {
	case PhaseInit:
		s.resetBall()
		s.grid.Reset()
		s.setPhase(PhaseRunning)
	case PhaseRunning:
		s.stats.Ticks++
		Advance(s)
		s.resolver.Resolve(s)
		ResolvePaddle(s)
		if s.referee != nil {
			if next := s.referee.Judge(s); next.Terminal() {
				s.setPhase(next)
			}
		}
	}
}

// Finish forces a terminal phase. Non-terminal phases are ignored.
func (s *Session) Finish(p Phase) {
	if p.Terminal() && !s.phase.Terminal() {
		s.setPhase(p)
	}
}

// MovePaddle sets the paddle position. Callers keep
// 0 <= x <= surface width - paddle width; the session does not clamp.
func (s *Session) MovePaddle(x, y float64) {
	s.paddle.X = x
	s.paddle.Y = y
}

// Phase returns the current state machine phase.
func (s *Session) Phase() Phase { return s.phase }

// Ball returns a copy of the ball.
func (s *Session) Ball() Ball { return s.ball }

// Paddle returns a copy of the paddle.
func (s *Session) Paddle() Paddle { return s.paddle }

// Grid returns the brick grid. Callers must treat it as read-only.
func (s *Session) Grid() *BrickGrid { return s.grid }

// Surface returns the playing field dimensions.
func (s *Session) Surface() Surface { return s.surface }

// Stats returns the accumulated counters.
func (s *Session) Stats() Stats { return s.stats }

// State returns the platform-facing summary.
func (s *Session) State() core.GameState {
	return core.GameState{
		Phase:      s.phase.String(),
		BricksLeft: s.grid.BricksLeft(),
		Rounds:     s.stats.RoundsCleared,
		Over:       s.phase.Terminal(),
	}
}

// resetBall re-centers the ball, offset by its radius. Velocity is kept.
func (s *Session) resetBall() {
	s.ball.X = s.surface.Width/2 - s.ball.Radius
	s.ball.Y = s.surface.Height/2 - s.ball.Radius
}

func (s *Session) setPhase(p Phase) {
	if s.phase == p && p != PhaseInit {
		return
	}
	s.phase = p
	s.emit(Event{Kind: EventPhaseChanged, Phase: p})
}
