package ecosnake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/ecosnake/internal/config"
)

func TestSpawnInsideArea(t *testing.T) {
	for _, profile := range []string{config.ProfileEcoSnake, config.ProfileClassic} {
		t.Run(profile, func(t *testing.T) {
			cfg, err := config.Load(profile, "")
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			field := NewPlayfield(cfg.Grid)
			s := NewSpawner(field, cfg, rand.New(rand.NewSource(7)))

			allowed := make(map[config.TrashKind]bool)
			for _, k := range cfg.Trash {
				allowed[k] = true
			}

			seenCols := make(map[int]bool)
			for iter := 0; iter < 2000; iter++ {
				it := s.Spawn()
				if !s.Inside(it.Position) {
					t.Fatalf("item %+v outside spawn area %+v", it.Position, s.Area())
				}
				if it.Position.Y < field.Top() {
					t.Fatalf("item %+v inside the status band", it.Position)
				}
				if !allowed[it.Kind] {
					t.Fatalf("kind %s not in profile", it.Kind)
				}
				col, _ := field.Cell(it.Position)
				seenCols[col] = true
			}
			if len(seenCols) != s.Area().W {
				t.Errorf("saw %d columns, expected all %d", len(seenCols), s.Area().W)
			}
		})
	}
}

func TestSpawnDeterministic(t *testing.T) {
	cfg := config.DefaultConfig()
	field := NewPlayfield(cfg.Grid)
	a := NewSpawner(field, cfg, rand.New(rand.NewSource(99)))
	b := NewSpawner(field, cfg, rand.New(rand.NewSource(99)))

	for i := 0; i < 50; i++ {
		if x, y := a.Spawn(), b.Spawn(); x != y {
			t.Fatalf("spawn %d differs: %+v vs %+v", i, x, y)
		}
	}
}
