package rockswap

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateCascading   GameStateType = "cascading"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Mode       string // "classic" or "zen"
	Board      string // match3.ParseBoard text form
	Score      int
	High       int
	Moves      int
	MovesLeft  int // -1 when unlimited
	LastChain  int
	BestChain  int
	Reshuffles int
	Cursor     [2]int // row, col
	Selected   [2]int // row, col; -1,-1 when nothing is selected
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.cascade != nil:
		state = StateCascading
	}

	sel := [2]int{-1, -1}
	if g.hasSel {
		sel = [2]int{g.selected.Row, g.selected.Col}
	}

	return Snapshot{
		Tick:       g.tick,
		Mode:       string(g.mode),
		Board:      g.board.String(),
		Score:      g.score,
		High:       g.highScore(),
		Moves:      g.moves,
		MovesLeft:  g.MovesLeft(),
		LastChain:  g.lastChain,
		BestChain:  g.bestChain,
		Reshuffles: g.reshuffles,
		Cursor:     [2]int{g.cursor.Row, g.cursor.Col},
		Selected:   sel,
		State:      state,
	}
}
