package ecosnake

import (
	"math/rand"

	"github.com/vovakirdan/ecosnake/internal/config"
	"github.com/vovakirdan/ecosnake/internal/core"
)

// Item is the piece of trash currently waiting to be collected.
type Item struct {
	Position Position
	Kind     config.TrashKind
}

// Spawner places items uniformly inside the spawn rectangle.
type Spawner struct {
	field Playfield
	area  core.Rect // In cells
	kinds []config.TrashKind
	rng   *rand.Rand
}

// NewSpawner creates a spawner for a profile. The rng is shared with the
// session so equal seeds replay equal games.
func NewSpawner(field Playfield, cfg config.Config, rng *rand.Rand) *Spawner {
	return &Spawner{
		field: field,
		area:  cfg.SpawnRect(),
		kinds: cfg.Trash,
		rng:   rng,
	}
}

// Area returns the spawn rectangle in cells.
func (s *Spawner) Area() core.Rect { return s.area }

// Spawn draws a new item. The collector's cells are not excluded.
func (s *Spawner) Spawn() Item {
	col := s.area.X + s.rng.Intn(s.area.W)
	row := s.area.Y + s.rng.Intn(s.area.H)
	return Item{
		Position: s.field.At(col, row),
		Kind:     s.kinds[s.rng.Intn(len(s.kinds))],
	}
}

// Inside reports whether p lies in the spawn rectangle.
func (s *Spawner) Inside(p Position) bool {
	col, row := s.field.Cell(p)
	return s.field.Aligned(p) && s.area.Contains(col, row)
}
