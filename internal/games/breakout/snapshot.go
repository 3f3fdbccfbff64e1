package breakout

// Snapshot contains the complete game state for logging and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Frame       uint64
	MoveCounter int
	Outcome     int

	BallX, BallY   int
	BallDX, BallDY int
	PaddleX        int

	// Block states, flattened row*cols + col; 1 = broken
	GridRows int
	GridCols int
	GridData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	data := make([]int, g.grid.Rows()*g.grid.Cols())
	for row := range g.grid.Rows() {
		for col := range g.grid.Cols() {
			if g.grid.Broken(row, col) {
				data[row*g.grid.Cols()+col] = 1
			}
		}
	}

	return Snapshot{
		Frame:       uint64(g.frames), //#nosec G115 -- frame count is always positive
		MoveCounter: g.moveCounter,
		Outcome:     int(g.outcome),
		BallX:       g.ball.X,
		BallY:       g.ball.Y,
		BallDX:      g.ball.DX,
		BallDY:      g.ball.DY,
		PaddleX:     g.paddle.X,
		GridRows:    g.grid.Rows(),
		GridCols:    g.grid.Cols(),
		GridData:    data,
	}
}

// ApplySnapshot restores game state from a snapshot taken with the same configuration.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.frames = int(snap.Frame) //#nosec G115 -- frame count fits in int
	g.moveCounter = snap.MoveCounter
	g.outcome = Outcome(snap.Outcome)
	g.ball = Ball{X: snap.BallX, Y: snap.BallY, DX: snap.BallDX, DY: snap.BallDY}
	g.paddle.X = snap.PaddleX
	g.lastMove = MoveResult{}

	g.grid = NewGrid(g.cfg.Blocks.Rows, g.cfg.Blocks.Cols)
	if snap.GridRows == g.grid.Rows() && snap.GridCols == g.grid.Cols() && len(snap.GridData) == snap.GridRows*snap.GridCols {
		for i, v := range snap.GridData {
			if v == 1 {
				g.grid.Break(i/snap.GridCols, i%snap.GridCols)
			}
		}
	}
	g.sprites.Rebuild(g.grid)
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.MoveCounter) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Outcome)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallX)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallDX+1)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallDY+1)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleX)     //#nosec G115 -- hash computation

	for _, v := range snap.GridData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
