package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/ecosnake/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{State: g.state} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return g.state }

func TestRegisterCreateList(t *testing.T) {
	var got Options
	Register("zz_stub", "Stub", func(opts Options) (Game, error) {
		got = opts
		return &stubGame{id: "zz_stub"}, nil
	})

	if !Exists("zz_stub") {
		t.Fatal("registered profile should exist")
	}

	g, err := Create("zz_stub", Options{Player: "Ada"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub" || got.Player != "Ada" {
		t.Errorf("factory got %+v, game %q", got, g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" && info.Title == "Stub" {
			found = true
		}
	}
	if !found {
		t.Error("List() should include the stub profile")
	}
}

func TestListSorted(t *testing.T) {
	Register("zz_b", "B", func(Options) (Game, error) { return &stubGame{}, nil })
	Register("zz_a", "A", func(Options) (Game, error) { return &stubGame{}, nil })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestCreateErrors(t *testing.T) {
	if _, err := Create("missing", Options{}); err == nil {
		t.Error("unknown profile should fail")
	}

	boom := errors.New("boom")
	Register("zz_fail", "Fail", func(Options) (Game, error) { return nil, boom })
	if _, err := Create("zz_fail", Options{}); !errors.Is(err, boom) {
		t.Errorf("factory error should be wrapped, got %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", "Dup", func(Options) (Game, error) { return &stubGame{}, nil })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", "Dup", func(Options) (Game, error) { return &stubGame{}, nil })
}
