package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// newRunning returns a session with the default configuration after the
// Init tick: grid populated, ball centered, phase Running.
func newRunning(t *testing.T, opts ...Option) *Session {
	t.Helper()
	s := NewSession(config.DefaultConfig(), opts...)
	require.Equal(t, PhaseInit, s.Phase())
	s.Tick()
	require.Equal(t, PhaseRunning, s.Phase())
	return s
}

// placeBall puts the ball at (x, y) with velocity (vx, vy).
func placeBall(s *Session, x, y, vx, vy float64) {
	s.ball.X, s.ball.Y = x, y
	s.ball.VX, s.ball.VY = vx, vy
}

// trackBall moves the paddle under the ball, clamped like the input path.
func trackBall(s *Session) {
	p := s.Paddle()
	s.MovePaddle(core.PaddleXForPointer(s.Ball().X, s.Surface().Width, p.Width), p.Y)
}

func TestInitTick(t *testing.T) {
	s := NewSession(config.DefaultConfig())
	assert.Equal(t, 0, s.Grid().BricksLeft(), "grid is empty before Init runs")
	assert.Equal(t, 400.0, s.Ball().X)
	assert.Equal(t, 300.0, s.Ball().Y)

	s.Tick()

	assert.Equal(t, PhaseRunning, s.Phase())
	assert.Equal(t, 390.0, s.Ball().X, "ball is offset by its radius on reset")
	assert.Equal(t, 290.0, s.Ball().Y)
	assert.Equal(t, 3.0, s.Ball().VX)
	assert.Equal(t, 5.0, s.Ball().VY)
	assert.Equal(t, uint64(0), s.Stats().Ticks, "the Init tick does not move the ball")
	assert.Equal(t, 110, s.Grid().BricksLeft())
}

func TestResetInvariant(t *testing.T) {
	for _, v := range config.Variants() {
		t.Run(v.ID, func(t *testing.T) {
			cfg := config.DefaultConfig()
			require.NoError(t, config.ApplyVariant(&cfg, v.ID))

			s := NewSession(cfg)
			s.Tick()

			g := s.Grid()
			want := (cfg.Bricks.Rows - cfg.Bricks.ResetOffsetRows) * cfg.Columns()
			assert.Equal(t, want, g.BricksLeft())
			assert.Equal(t, want, g.LiveCount())
			assert.Equal(t, cfg.InitialBricks(), g.BricksLeft())

			for row := range g.Rows() {
				for col := range g.Cols() {
					assert.Equal(t, row >= cfg.Bricks.ResetOffsetRows, g.Alive(col, row),
						"cell (%d,%d)", col, row)
				}
			}
		})
	}
}

func TestBricksLeftMatchesLiveCountEveryTick(t *testing.T) {
	s := newRunning(t)

	for range 5000 {
		trackBall(s)
		s.Tick()
		require.Equal(t, s.Grid().LiveCount(), s.Grid().BricksLeft(), "tick %d", s.Stats().Ticks)
	}

	assert.Positive(t, s.Stats().BricksDestroyed)
	assert.Positive(t, s.Stats().PaddleHits)
}

func TestBricksLeftMatchesLiveCountWithoutPaddle(t *testing.T) {
	s := newRunning(t)

	for range 3000 {
		s.MovePaddle(0, s.Paddle().Y)
		s.Tick()
		require.Equal(t, s.Grid().LiveCount(), s.Grid().BricksLeft(), "tick %d", s.Stats().Ticks)
	}
	assert.Positive(t, s.Stats().FloorResets)
}

func TestResolveBrickIdempotent(t *testing.T) {
	s := newRunning(t)
	placeBall(s, 100, 100, 5, 5)

	s.resolver.Resolve(s)
	require.Equal(t, 109, s.Grid().BricksLeft())
	after := s.Ball()

	s.resolver.Resolve(s)
	assert.Equal(t, after, s.Ball(), "second call must not reflect again")
	assert.Equal(t, 109, s.Grid().BricksLeft())
	assert.Equal(t, 1, s.Stats().BricksDestroyed)
}

func TestResolveBrickOutsideGrid(t *testing.T) {
	s := newRunning(t)

	for _, pos := range [][2]float64{{400, 30}, {400, 400}, {-5, 100}, {805, 100}} {
		placeBall(s, pos[0], pos[1], 3, 5)
		s.resolver.Resolve(s)
		assert.Equal(t, 3.0, s.Ball().VX, "pos %v", pos)
		assert.Equal(t, 5.0, s.Ball().VY, "pos %v", pos)
	}
	assert.Equal(t, 110, s.Grid().BricksLeft())
}

func TestAdvanceWallBoundary(t *testing.T) {
	tests := []struct {
		name   string
		x, vx  float64
		wantVX float64
	}{
		{"left edge moving out", 10, -3, 3},
		{"left edge moving in", 10, 3, 3},
		{"past left edge moving in", 5, 3, 3},
		{"right edge moving out", 790, 3, -3},
		{"past right edge moving in", 795, -3, -3},
		{"center", 400, -3, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRunning(t)
			placeBall(s, tt.x, 300, tt.vx, 0)
			Advance(s)
			assert.Equal(t, tt.wantVX, s.Ball().VX)
		})
	}
}

func TestAdvanceCeilingBoundary(t *testing.T) {
	s := newRunning(t)
	placeBall(s, 400, 7, 0, -5)
	Advance(s)
	assert.Equal(t, 5.0, s.Ball().VY)
	assert.Equal(t, 2.0, s.Ball().Y)

	// Still above the ceiling line but already moving down.
	Advance(s)
	assert.Equal(t, 5.0, s.Ball().VY)
	assert.Equal(t, 7.0, s.Ball().Y)
}

func TestDegenerateHitFlipsBoth(t *testing.T) {
	s := newRunning(t)
	// Previous position (100,100) and current (105,105) share cell (1,5).
	placeBall(s, 105, 105, 5, 5)

	s.resolver.Resolve(s)

	assert.False(t, s.Grid().Alive(1, 5))
	assert.Equal(t, -5.0, s.Ball().VX)
	assert.Equal(t, -5.0, s.Ball().VY)
}

func TestScenarioRowChangeWithLiveNeighbor(t *testing.T) {
	s := newRunning(t)
	// Ball at (100,100) moving (5,5) came from (95,95): cell (1,4) into (1,5).
	// The vertical neighbor (1,4) is alive, so neither component flips.
	placeBall(s, 100, 100, 5, 5)

	s.resolver.Resolve(s)

	assert.False(t, s.Grid().Alive(1, 5))
	assert.True(t, s.Grid().Alive(1, 4))
	assert.Equal(t, 5.0, s.Ball().VX)
	assert.Equal(t, 5.0, s.Ball().VY)
	assert.Equal(t, 109, s.Grid().BricksLeft())
}

func TestScenarioDiagonalBetweenLiveNeighbors(t *testing.T) {
	s := newRunning(t)
	// (78,78) in cell (0,3) to (83,83) in cell (1,4); (0,4) and (1,3) alive.
	placeBall(s, 83, 83, 5, 5)

	s.resolver.Resolve(s)

	assert.False(t, s.Grid().Alive(1, 4))
	assert.Equal(t, 5.0, s.Ball().VX)
	assert.Equal(t, 5.0, s.Ball().VY)
}

func TestColumnChangeIntoExposedEdge(t *testing.T) {
	s := newRunning(t)
	require.True(t, s.Grid().Destroy(0, 4))

	// (78,84) in cell (0,4) to (83,85) in cell (1,4).
	placeBall(s, 83, 85, 5, 1)
	s.resolver.Resolve(s)

	assert.False(t, s.Grid().Alive(1, 4))
	assert.Equal(t, -5.0, s.Ball().VX)
	assert.Equal(t, 1.0, s.Ball().VY)
	assert.Equal(t, s.Grid().LiveCount(), s.Grid().BricksLeft())
}

func TestRowChangeIntoExposedEdge(t *testing.T) {
	s := newRunning(t)

	// (99,56) in empty cell (1,2) to (100,61) in cell (1,3).
	placeBall(s, 100, 61, 1, 5)
	s.resolver.Resolve(s)

	assert.False(t, s.Grid().Alive(1, 3))
	assert.Equal(t, 1.0, s.Ball().VX)
	assert.Equal(t, -5.0, s.Ball().VY)
}

func TestPaddleSteering(t *testing.T) {
	s := newRunning(t)
	s.MovePaddle(350, 550)
	placeBall(s, 350, 545, 3, 5)

	ResolvePaddle(s)

	assert.InDelta(t, 12.5, s.Ball().VX, 1e-9)
	assert.Equal(t, -5.0, s.Ball().VY)
	assert.Equal(t, 1, s.Stats().PaddleHits)
	assert.Equal(t, 110, s.Grid().BricksLeft(), "grid untouched while bricks remain")
}

func TestPaddleTriggerBand(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		hit  bool
	}{
		{"inside", 400, 545, true},
		{"on paddle top", 400, 550, false},
		{"top of band", 400, 540, false},
		{"left tolerance", 341, 545, true},
		{"left of tolerance", 340, 545, false},
		{"right edge", 450, 545, false},
		{"just inside right", 449, 545, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRunning(t)
			s.MovePaddle(350, 550)
			placeBall(s, tt.x, tt.y, 3, 5)

			ResolvePaddle(s)

			if tt.hit {
				assert.Equal(t, -5.0, s.Ball().VY)
			} else {
				assert.Equal(t, 5.0, s.Ball().VY)
				assert.Equal(t, 3.0, s.Ball().VX)
			}
		})
	}
}

func TestFloorResetsBallAndGrid(t *testing.T) {
	s := newRunning(t)
	for col := range s.Grid().Cols() {
		s.Grid().Destroy(col, 10)
	}
	require.Equal(t, 100, s.Grid().BricksLeft())

	placeBall(s, 200, 589, -3, 5)
	Advance(s)

	b := s.Ball()
	assert.Equal(t, 390.0, b.X)
	assert.Equal(t, 290.0, b.Y)
	assert.Equal(t, -3.0, b.VX, "velocity survives a floor reset")
	assert.Equal(t, 5.0, b.VY)
	assert.Equal(t, 110, s.Grid().BricksLeft())
	assert.Equal(t, 110, s.Grid().LiveCount())
	assert.Equal(t, 1, s.Stats().FloorResets)
}

func TestRoundTrip(t *testing.T) {
	s := newRunning(t)
	g := s.Grid()
	initial := g.Cells()
	bw, bh := g.CellSize()

	left := g.BricksLeft()
	for row := range g.Rows() {
		for col := range g.Cols() {
			if !g.Alive(col, row) {
				continue
			}
			placeBall(s, float64(col)*bw+bw/2, float64(row)*bh+bh/2, 0.5, 0.5)
			s.resolver.Resolve(s)
			left--
			require.Equal(t, left, g.BricksLeft())
			require.Equal(t, g.LiveCount(), g.BricksLeft())
		}
	}
	require.Zero(t, g.BricksLeft())

	s.MovePaddle(350, 550)
	placeBall(s, 400, 545, 0, 5)
	ResolvePaddle(s)

	assert.Equal(t, initial, g.Cells())
	assert.Equal(t, 110, g.BricksLeft())
	assert.Equal(t, 1, s.Stats().RoundsCleared)
	assert.Equal(t, 400.0, s.Ball().X, "a new round keeps the ball in place")
	assert.Equal(t, 545.0, s.Ball().Y)
}

func TestBricklessLayoutNeverCountsRounds(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, config.ApplyVariant(&cfg, "paddle"))
	s := NewSession(cfg)
	s.Tick()

	s.MovePaddle(350, 550)
	placeBall(s, 400, 545, 0, 5)
	ResolvePaddle(s)

	assert.Equal(t, -5.0, s.Ball().VY)
	assert.Zero(t, s.Stats().RoundsCleared)
	assert.Zero(t, s.Grid().BricksLeft())
}

func TestTerminalPhasesStopTicking(t *testing.T) {
	for _, p := range []Phase{PhaseWin, PhaseLose} {
		t.Run(p.String(), func(t *testing.T) {
			s := newRunning(t)
			s.Tick()
			s.Finish(p)
			require.Equal(t, p, s.Phase())
			assert.True(t, s.State().Over)

			before := s.Snapshot()
			for range 10 {
				s.Tick()
			}
			assert.Equal(t, before.Hash(), s.Snapshot().Hash())

			s.Finish(PhaseRunning)
			assert.Equal(t, p, s.Phase(), "Finish ignores non-terminal phases")
		})
	}
}

func TestNoTransitionWithoutReferee(t *testing.T) {
	s := newRunning(t)
	for range 2000 {
		s.Tick()
		require.Equal(t, PhaseRunning, s.Phase())
	}
}

func TestRefereeEndsSession(t *testing.T) {
	ref := RefereeFunc(func(s *Session) Phase {
		if s.Stats().Ticks >= 3 {
			return PhaseLose
		}
		return PhaseRunning
	})
	s := newRunning(t, WithReferee(ref))

	s.Tick()
	s.Tick()
	assert.Equal(t, PhaseRunning, s.Phase())
	s.Tick()
	assert.Equal(t, PhaseLose, s.Phase())

	s.Tick()
	assert.Equal(t, uint64(3), s.Stats().Ticks)
}

func TestRestart(t *testing.T) {
	s := newRunning(t)
	for range 200 {
		s.Tick()
	}
	s.Finish(PhaseWin)

	s.Restart()

	assert.Equal(t, PhaseInit, s.Phase())
	assert.Equal(t, Stats{}, s.Stats())
	assert.Equal(t, 3.0, s.Ball().VX)
	assert.Equal(t, 5.0, s.Ball().VY)
	assert.Equal(t, 400.0, s.Paddle().X)

	s.Tick()
	assert.Equal(t, PhaseRunning, s.Phase())
	assert.Equal(t, 110, s.Grid().BricksLeft())
}

type countingResolver struct{ calls int }

func (r *countingResolver) Resolve(*Session) { r.calls++ }

func TestCustomResolver(t *testing.T) {
	r := &countingResolver{}
	s := newRunning(t, WithResolver(r))

	for range 5 {
		s.Tick()
	}
	assert.Equal(t, 5, r.calls)
	assert.Equal(t, 110, s.Grid().BricksLeft())
}

func TestEvents(t *testing.T) {
	s := NewSession(config.DefaultConfig())
	var got []Event
	s.Subscribe(func(e Event) { got = append(got, e) })

	s.Tick()
	require.Len(t, got, 1)
	assert.Equal(t, EventPhaseChanged, got[0].Kind)
	assert.Equal(t, PhaseRunning, got[0].Phase)

	got = nil
	placeBall(s, 100, 100, 5, 5)
	s.resolver.Resolve(s)
	require.Len(t, got, 1)
	assert.Equal(t, EventBrickDestroyed, got[0].Kind)
	assert.Equal(t, 1, got[0].Col)
	assert.Equal(t, 5, got[0].Row)

	got = nil
	placeBall(s, 200, 589, 3, 5)
	Advance(s)
	require.Len(t, got, 1)
	assert.Equal(t, EventFloorReset, got[0].Kind)
	assert.Equal(t, 203.0, got[0].X, "floor event carries the contact point")
	assert.Equal(t, 594.0, got[0].Y)
	assert.Equal(t, 390.0, s.Ball().X)

	got = nil
	placeBall(s, 788, 300, 3, 0)
	Advance(s)
	require.Len(t, got, 1)
	assert.Equal(t, EventWallBounce, got[0].Kind)
	assert.Equal(t, "wall", got[0].Kind.String())
}

func TestDeterminism(t *testing.T) {
	run := func() *Session {
		s := newRunning(t)
		for i := range 3000 {
			p := s.Paddle()
			x := core.ClampPaddleX(float64((i*37)%800)-50, 800, p.Width)
			s.MovePaddle(x, p.Y)
			s.Tick()
		}
		return s
	}

	a, b := run(), run()
	snapA, snapB := a.Snapshot(), b.Snapshot()
	assert.Equal(t, snapA, snapB)
	assert.Equal(t, snapA.Hash(), snapB.Hash())
}

func TestSnapshotApply(t *testing.T) {
	a := newRunning(t)
	for range 500 {
		trackBall(a)
		a.Tick()
	}
	snap := a.Snapshot()

	b := NewSession(config.DefaultConfig())
	require.True(t, b.ApplySnapshot(snap))
	assert.Equal(t, snap.Hash(), b.Snapshot().Hash())

	for range 100 {
		trackBall(a)
		a.Tick()
		trackBall(b)
		b.Tick()
	}
	assert.Equal(t, a.Snapshot().Hash(), b.Snapshot().Hash())

	snap.Bricks = snap.Bricks[:3]
	assert.False(t, b.ApplySnapshot(snap))
}

func TestSnapshotRejectsUnknownPhase(t *testing.T) {
	s := newRunning(t)
	before := s.Snapshot().Hash()

	for _, phase := range []int{-1, int(PhaseLose) + 1, 42} {
		snap := s.Snapshot()
		snap.Phase = phase
		assert.False(t, s.ApplySnapshot(snap), "phase %d", phase)
	}
	assert.Equal(t, PhaseRunning, s.Phase())
	assert.Equal(t, before, s.Snapshot().Hash(), "rejected snapshot leaves the session untouched")

	snap := s.Snapshot()
	snap.Phase = int(PhaseWin)
	require.True(t, s.ApplySnapshot(snap))
	assert.Equal(t, PhaseWin, s.Phase())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "init", PhaseInit.String())
	assert.Equal(t, "running", PhaseRunning.String())
	assert.Equal(t, "win", PhaseWin.String())
	assert.Equal(t, "lose", PhaseLose.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
