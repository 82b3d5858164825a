package breakout

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot contains the complete simulation state for replay and
// determinism checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick    uint64
	Phase   int
	BallX   float64
	BallY   float64
	BallVX  float64
	BallVY  float64
	PaddleX float64
	PaddleY float64

	BricksLeft      int
	BricksDestroyed int
	RoundsCleared   int
	FloorResets     int
	PaddleHits      int

	// Brick states, row-major
	Bricks []bool
}

// Snapshot returns the current session state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:            s.stats.Ticks,
		Phase:           int(s.phase),
		BallX:           s.ball.X,
		BallY:           s.ball.Y,
		BallVX:          s.ball.VX,
		BallVY:          s.ball.VY,
		PaddleX:         s.paddle.X,
		PaddleY:         s.paddle.Y,
		BricksLeft:      s.grid.BricksLeft(),
		BricksDestroyed: s.stats.BricksDestroyed,
		RoundsCleared:   s.stats.RoundsCleared,
		FloorResets:     s.stats.FloorResets,
		PaddleHits:      s.stats.PaddleHits,
		Bricks:          s.grid.Cells(),
	}
}

// ApplySnapshot restores session state from a snapshot taken from a session
// with the same configuration. The live counter is recomputed from the
// cells. Returns false, leaving the session untouched, if the grid shape does
// not match or the phase is unknown.
func (s *Session) ApplySnapshot(snap Snapshot) bool {
	if snap.Phase < int(PhaseInit) || snap.Phase > int(PhaseLose) {
		return false
	}
	if !s.grid.restore(snap.Bricks) {
		return false
	}
	s.phase = Phase(snap.Phase)
	s.ball.X, s.ball.Y = snap.BallX, snap.BallY
	s.ball.VX, s.ball.VY = snap.BallVX, snap.BallVY
	s.paddle.X, s.paddle.Y = snap.PaddleX, snap.PaddleY
	s.stats = Stats{
		Ticks:           snap.Tick,
		BricksDestroyed: snap.BricksDestroyed,
		RoundsCleared:   snap.RoundsCleared,
		FloorResets:     snap.FloorResets,
		PaddleHits:      snap.PaddleHits,
	}
	return true
}

// Hash returns an FNV-1a hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}

	put(snap.Tick)
	put(uint64(snap.Phase)) //#nosec G115 -- hash computation
	for _, f := range []float64{snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.PaddleX, snap.PaddleY} {
		put(math.Float64bits(f))
	}
	for _, n := range []int{snap.BricksLeft, snap.BricksDestroyed, snap.RoundsCleared, snap.FloorResets, snap.PaddleHits} {
		put(uint64(n)) //#nosec G115 -- hash computation
	}

	bits := make([]byte, len(snap.Bricks))
	for i, alive := range snap.Bricks {
		if alive {
			bits[i] = 1
		}
	}
	_, _ = h.Write(bits)

	return h.Sum64()
}
