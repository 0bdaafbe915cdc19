package ecosnake

import "github.com/vovakirdan/ecosnake/internal/config"

// Position is a pixel coordinate on the playfield. Every position the game
// produces is a multiple of the cell size on both axes.
type Position struct {
	X, Y int
}

// Add returns p shifted by d scaled to whole cells.
func (p Position) Add(d Direction, cell int) Position {
	return Position{X: p.X + d.X*cell, Y: p.Y + d.Y*cell}
}

// Direction is a unit step along one axis.
type Direction struct {
	X, Y int
}

// Cardinal directions. The zero Direction means "no command".
var (
	DirUp    = Direction{X: 0, Y: -1}
	DirDown  = Direction{X: 0, Y: 1}
	DirLeft  = Direction{X: -1, Y: 0}
	DirRight = Direction{X: 1, Y: 0}
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

// IsZero reports whether d carries no movement.
func (d Direction) IsZero() bool {
	return d.X == 0 && d.Y == 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case Direction{}:
		return "none"
	default:
		return "unknown"
	}
}

// Playfield is the toroidal grid the collector moves on. The top
// StatusRows rows belong to the status band and are never occupied.
type Playfield struct {
	CellSize   int
	Cols       int
	Rows       int
	StatusRows int
}

// NewPlayfield builds a playfield from a profile's grid section.
func NewPlayfield(g config.GridConfig) Playfield {
	return Playfield{
		CellSize:   g.CellSize,
		Cols:       g.Cols,
		Rows:       g.Rows,
		StatusRows: g.StatusRows,
	}
}

// Width returns the playfield width in pixels.
func (f Playfield) Width() int { return f.Cols * f.CellSize }

// Height returns the playfield height in pixels, status band included.
func (f Playfield) Height() int { return f.Rows * f.CellSize }

// Top returns the first pixel row below the status band.
func (f Playfield) Top() int { return f.StatusRows * f.CellSize }

// Center returns the start cell: the middle column, and the middle row
// floored to the first row under the status band.
func (f Playfield) Center() Position {
	return Position{
		X: f.Cols / 2 * f.CellSize,
		Y: max(f.StatusRows, f.Rows/2) * f.CellSize,
	}
}

// Wrap maps a position that left the playfield by one step back onto the
// opposite edge. The vertical axis wraps between Top and Height, skipping
// the status band.
func (f Playfield) Wrap(p Position) Position {
	switch {
	case p.X < 0:
		p.X = f.Width() - f.CellSize
	case p.X >= f.Width():
		p.X = 0
	}
	switch {
	case p.Y < f.Top():
		p.Y = f.Height() - f.CellSize
	case p.Y >= f.Height():
		p.Y = f.Top()
	}
	return p
}

// Aligned reports whether p sits exactly on a cell corner.
func (f Playfield) Aligned(p Position) bool {
	return p.X%f.CellSize == 0 && p.Y%f.CellSize == 0
}

// Cell converts a pixel position to column and row indices.
func (f Playfield) Cell(p Position) (col, row int) {
	return p.X / f.CellSize, p.Y / f.CellSize
}

// At returns the pixel position of a cell.
func (f Playfield) At(col, row int) Position {
	return Position{X: col * f.CellSize, Y: row * f.CellSize}
}
