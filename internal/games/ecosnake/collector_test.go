package ecosnake

import (
	"testing"

	"github.com/vovakirdan/ecosnake/internal/config"
)

func testField() Playfield {
	return NewPlayfield(config.DefaultConfig().Grid)
}

// collectorWith builds a collector from grid cells, head first.
func collectorWith(field Playfield, dir Direction, cells ...[2]int) *Collector {
	c := &Collector{field: field, dir: dir, pending: dir}
	for _, cell := range cells {
		c.cells = append(c.cells, field.At(cell[0], cell[1]))
	}
	return c
}

func TestNewCollectorCenter(t *testing.T) {
	tests := []struct {
		name     string
		rows     int
		expected Position
	}{
		{"default grid", 17, Position{X: 385, Y: 280}},
		{"twelve rows", 12, Position{X: 385, Y: 210}},
		{"band floor", 3, Position{X: 385, Y: 70}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			field := testField()
			field.Rows = tc.rows
			c := NewCollector(field)

			if c.Len() != 1 {
				t.Errorf("Len() = %d, expected 1", c.Len())
			}
			if c.Head() != tc.expected {
				t.Errorf("Head() = %+v, expected %+v", c.Head(), tc.expected)
			}
			if c.Direction() != DirRight {
				t.Errorf("Direction() = %v, expected right", c.Direction())
			}
		})
	}
}

func TestWrapAllEdges(t *testing.T) {
	field := testField()
	last := field.Cols - 1
	bottom := field.Rows - 1
	top := field.StatusRows

	tests := []struct {
		name     string
		dir      Direction
		from     [2]int
		expected [2]int
	}{
		{"right edge", DirRight, [2]int{last, 5}, [2]int{0, 5}},
		{"left edge", DirLeft, [2]int{0, 5}, [2]int{last, 5}},
		{"bottom edge", DirDown, [2]int{4, bottom}, [2]int{4, top}},
		{"top under band", DirUp, [2]int{4, top}, [2]int{4, bottom}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := collectorWith(field, tc.dir, tc.from)
			c.Move()

			expected := field.At(tc.expected[0], tc.expected[1])
			if c.Head() != expected {
				t.Errorf("Head() = %+v, expected %+v", c.Head(), expected)
			}
		})
	}
}

func TestNoReverse(t *testing.T) {
	c := NewCollector(testField())
	start := c.Head()

	c.SetDirection(DirLeft)
	c.Move()

	if c.Direction() != DirRight {
		t.Errorf("Direction() = %v, expected right", c.Direction())
	}
	if c.Head().X != start.X+35 || c.Head().Y != start.Y {
		t.Errorf("Head() = %+v, expected one cell right of %+v", c.Head(), start)
	}
}

func TestSetDirectionLastWriterWins(t *testing.T) {
	c := NewCollector(testField())
	start := c.Head()

	// Down is the reverse of the buffered Up, not of the committed Right.
	c.SetDirection(DirUp)
	c.SetDirection(DirDown)
	c.Move()

	if c.Direction() != DirDown || c.Head().Y != start.Y+35 {
		t.Errorf("expected down move, got %v at %+v", c.Direction(), c.Head())
	}
}

func TestSetDirectionReverseOfCommitted(t *testing.T) {
	c := NewCollector(testField())

	c.SetDirection(DirUp)
	c.SetDirection(DirLeft) // Reverse of committed Right
	c.SetDirection(Direction{})
	c.Move()

	if c.Direction() != DirUp {
		t.Errorf("Direction() = %v, expected up", c.Direction())
	}
}

func TestMoveShiftsBodyAndReturnsTail(t *testing.T) {
	field := testField()
	c := collectorWith(field, DirRight, [2]int{5, 5}, [2]int{4, 5}, [2]int{3, 5})

	dropped := c.Move()

	if dropped != field.At(3, 5) {
		t.Errorf("dropped = %+v, expected %+v", dropped, field.At(3, 5))
	}
	expected := []Position{field.At(6, 5), field.At(5, 5), field.At(4, 5)}
	got := c.Cells()
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("cell %d = %+v, expected %+v", i, got[i], expected[i])
		}
	}
}

func TestCellsIsCopy(t *testing.T) {
	c := NewCollector(testField())
	cells := c.Cells()
	cells[0] = Position{X: -1, Y: -1}

	if c.Head() == cells[0] {
		t.Error("mutating Cells() result should not affect the collector")
	}
}

func TestCollisionSuppressedBelowFour(t *testing.T) {
	field := testField()
	for n := 1; n < 4; n++ {
		cells := make([][2]int, n)
		for i := range cells {
			cells[i] = [2]int{5, 5}
		}
		c := collectorWith(field, DirRight, cells...)

		if c.CheckSelfCollision(17, 1) {
			t.Errorf("length %d should never collide", n)
		}
	}
}

func TestCollisionSkipsNeck(t *testing.T) {
	field := testField()
	// Stacked neck right after growth, rest of the body far away.
	c := collectorWith(field, DirRight, [2]int{5, 5}, [2]int{5, 5}, [2]int{5, 5}, [2]int{9, 9})

	if c.CheckSelfCollision(17, 3) {
		t.Error("cells inside the neck should be skipped")
	}
	if !c.CheckSelfCollision(17, 1) {
		t.Error("with a one-cell neck the stacked cells should collide")
	}
}

func TestCollisionTolerance(t *testing.T) {
	field := testField()
	c := collectorWith(field, DirRight, [2]int{5, 5}, [2]int{6, 5}, [2]int{7, 5}, [2]int{8, 5}, [2]int{6, 5})

	// Adjacent cells are 35px apart: outside a 17px tolerance.
	if c.CheckSelfCollision(17, 4) {
		t.Error("adjacent cell should not collide at half-cell tolerance")
	}
	if !c.CheckSelfCollision(35, 4) {
		t.Error("adjacent cell should collide at full-cell tolerance")
	}
}

func TestScenarioCLoopIntoOwnBody(t *testing.T) {
	field := testField()
	top := field.StatusRows
	// Head came up from (1,2); turning left closes the loop on index 4.
	c := collectorWith(field, DirUp,
		[2]int{1, top + 1}, [2]int{1, top + 2}, [2]int{0, top + 2}, [2]int{0, top + 1}, [2]int{0, top})

	c.SetDirection(DirLeft)
	c.Move()

	if c.Head() != field.At(0, top+1) {
		t.Fatalf("Head() = %+v, expected %+v", c.Head(), field.At(0, top+1))
	}
	if !c.CheckSelfCollision(17, 3) {
		t.Error("head on cell 4 should collide")
	}
}

func TestDirectionHelpers(t *testing.T) {
	if DirUp.Opposite() != DirDown || DirLeft.Opposite() != DirRight {
		t.Error("Opposite() mismatch")
	}
	if !(Direction{}).IsZero() || DirUp.IsZero() {
		t.Error("IsZero() mismatch")
	}
	if DirLeft.String() != "left" || (Direction{}).String() != "none" {
		t.Error("String() mismatch")
	}
}
