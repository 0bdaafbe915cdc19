package ecosnake

import "github.com/vovakirdan/ecosnake/internal/core"

// minCollisionLen is the shortest chain that can run into itself.
const minCollisionLen = 4

// Collector is the chain steered by the player. Cells are ordered head
// first; the chain never shrinks.
type Collector struct {
	field   Playfield
	cells   []Position
	dir     Direction // Committed on the last move
	pending Direction // Buffered until the next move
}

// NewCollector creates a one-cell collector at the playfield center,
// heading right.
func NewCollector(field Playfield) *Collector {
	return &Collector{
		field:   field,
		cells:   []Position{field.Center()},
		dir:     DirRight,
		pending: DirRight,
	}
}

// SetDirection buffers a direction for the next move. Reversing into the
// committed direction and the zero direction are ignored; among several
// calls between moves the last accepted one wins.
func (c *Collector) SetDirection(d Direction) {
	if d.IsZero() || d == c.dir.Opposite() {
		return
	}
	c.pending = d
}

// Move advances the head one cell with wrap-around, shifts the body after
// it and returns the tail cell that was dropped.
func (c *Collector) Move() Position {
	c.dir = c.pending
	dropped := c.cells[len(c.cells)-1]

	head := c.field.Wrap(c.cells[0].Add(c.dir, c.field.CellSize))
	copy(c.cells[1:], c.cells[:len(c.cells)-1])
	c.cells[0] = head

	return dropped
}

// CheckSelfCollision reports whether the head lies within tol pixels, on
// both axes, of a body cell. The first neck cells behind the head are
// skipped, and chains shorter than four cells never collide.
func (c *Collector) CheckSelfCollision(tol, neck int) bool {
	if len(c.cells) < minCollisionLen {
		return false
	}
	head := c.cells[0]
	for _, cell := range c.cells[max(neck, 1):] {
		if core.Within(head.X, head.Y, cell.X, cell.Y, tol) {
			return true
		}
	}
	return false
}

// Grow appends a cell at the tail.
func (c *Collector) Grow(cell Position) {
	c.cells = append(c.cells, cell)
}

// Head returns the head cell.
func (c *Collector) Head() Position { return c.cells[0] }

// Tail returns the last cell.
func (c *Collector) Tail() Position { return c.cells[len(c.cells)-1] }

// Len returns the number of cells.
func (c *Collector) Len() int { return len(c.cells) }

// Direction returns the committed direction.
func (c *Collector) Direction() Direction { return c.dir }

// Cells returns a copy of the chain, head first.
func (c *Collector) Cells() []Position {
	out := make([]Position, len(c.cells))
	copy(out, c.cells)
	return out
}
