package ecosnake

import "github.com/vovakirdan/ecosnake/internal/config"

// Snapshot is the render-ready state of a session after a frame. It shares
// no memory with the session.
type Snapshot struct {
	Frame      uint64
	Cells      []Position // Head first
	Item       Item
	Score      int
	Outcome    Outcome
	Direction  Direction
	Speed      int
	Difficulty string
	Tier       config.Tier
	Player     string
	SessionID  string
	Moved      bool // The collector moved this frame
	Consumed   bool // An item was collected this frame
}

// Head returns the first cell.
func (s Snapshot) Head() Position {
	return s.Cells[0]
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Frame:      s.frame,
		Cells:      s.collector.Cells(),
		Item:       s.item,
		Score:      s.score,
		Outcome:    s.outcome,
		Direction:  s.collector.Direction(),
		Speed:      s.difficulty.Speed,
		Difficulty: s.difficulty.Label,
		Tier:       s.difficulty.Tier,
		Player:     s.player,
		SessionID:  s.id,
		Moved:      s.moved,
		Consumed:   s.consumed,
	}
}
