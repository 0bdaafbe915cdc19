package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ecosnake/internal/config"
	"github.com/vovakirdan/ecosnake/internal/core"
	"github.com/vovakirdan/ecosnake/internal/games/ecosnake"
	"github.com/vovakirdan/ecosnake/internal/storage"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60, Seed: 7}
}

func send(t *testing.T, a App, msgs ...tea.Msg) App {
	t.Helper()
	var m tea.Model = a
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m.(App)
}

func newTestApp(t *testing.T, store *storage.Store, player string) App {
	t.Helper()
	a, err := NewApp(store, AppConfig{Runtime: testRuntime(), Player: player})
	if err != nil {
		t.Fatalf("NewApp() failed: %v", err)
	}
	return a
}

func TestAppMenuToPlayingAndAbort(t *testing.T) {
	a := newTestApp(t, nil, "Ada")
	if a.State() != StateMenu {
		t.Fatalf("State() = %v, expected menu", a.State())
	}

	a = send(t, a, keyEnter)
	if a.State() != StateName {
		t.Fatalf("State() = %v, expected name", a.State())
	}

	a = send(t, a, keyEnter)
	if a.State() != StateDifficulty {
		t.Fatalf("State() = %v, expected difficulty", a.State())
	}

	a = send(t, a, keyEnter)
	if a.State() != StatePlaying {
		t.Fatalf("State() = %v, expected playing", a.State())
	}
	if !strings.Contains(a.View(), "Ada") {
		t.Error("playing view should show the player")
	}

	a = send(t, a, TickMsg(time.Now()))
	if a.GameState().Aborted || a.GameState().GameOver {
		t.Fatalf("session ended early: %+v", a.GameState())
	}

	a = send(t, a, keyEsc, TickMsg(time.Now()))
	if a.State() != StateMenu {
		t.Errorf("State() = %v after abort, expected menu", a.State())
	}
}

func TestAppNameValidation(t *testing.T) {
	a := newTestApp(t, nil, "A")

	a = send(t, a, keyEnter, keyEnter)
	if a.State() != StateName {
		t.Fatalf("one-letter name should be rejected, state %v", a.State())
	}
	if !strings.Contains(a.View(), "characters") {
		t.Error("rejection should be explained")
	}

	a = send(t, a, runeKey('l'), keyEnter)
	if a.State() != StateDifficulty || a.Player() != "Al" {
		t.Errorf("State() = %v, player %q", a.State(), a.Player())
	}

	a = send(t, a, keyEsc)
	if a.State() != StateName {
		t.Errorf("Esc on difficulty should go back to the name, got %v", a.State())
	}
}

func TestAppSettingsSaved(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	a := newTestApp(t, store, "Ada")
	a = send(t, a, keyDown, keyDown, keyEnter)
	if a.State() != StateSettings {
		t.Fatalf("State() = %v, expected settings", a.State())
	}

	a = send(t, a, keyRight, keyEsc)
	if a.State() != StateMenu {
		t.Errorf("State() = %v, expected menu", a.State())
	}

	got := store.LoadAppearance()
	if got.Character != config.CharacterBlondeGirl {
		t.Errorf("saved character = %v, expected blonde_girl", got.Character)
	}
}

func TestAppScoresScreen(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.MergeScore(config.ProfileEcoSnake, core.ScoreRecord{Name: "Zed", Score: 12, Difficulty: "Hard"}, 10)

	a := newTestApp(t, store, "Ada")
	a = send(t, a, keyDown, keyEnter)
	if a.State() != StateScores {
		t.Fatalf("State() = %v, expected scores", a.State())
	}
	if !strings.Contains(a.View(), "Zed") {
		t.Error("scoreboard should list stored scores")
	}

	a = send(t, a, keyEsc)
	if a.State() != StateMenu {
		t.Errorf("State() = %v, expected menu", a.State())
	}
}

func TestAppDirect(t *testing.T) {
	a, err := NewApp(nil, AppConfig{
		Runtime: testRuntime(),
		Player:  "Bo",
		Tier:    config.TierHard,
		Direct:  true,
	})
	if err != nil {
		t.Fatalf("NewApp() failed: %v", err)
	}
	if a.State() != StatePlaying {
		t.Fatalf("State() = %v, expected playing", a.State())
	}
	if a.Init() == nil {
		t.Error("direct app should start ticking")
	}

	a = send(t, a, keyEsc, TickMsg(time.Now()))
	if a.View() != "" {
		t.Error("aborting a direct session should quit")
	}
}

func TestAppPacesMovementAtTickRate(t *testing.T) {
	tests := []struct {
		name     string
		tickRate int
		frames   int
	}{
		{"explicit 30 fps", 30, 30},
		{"profile frame rate", 0, 60},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rc := testRuntime()
			rc.TickRate = tc.tickRate
			a, err := NewApp(nil, AppConfig{Runtime: rc, Player: "Ada", Tier: config.TierMedium, Direct: true})
			if err != nil {
				t.Fatalf("NewApp() failed: %v", err)
			}

			moves := 0
			for iter := 0; iter < tc.frames; iter++ {
				a = send(t, a, TickMsg(time.Now()))
				if a.game.(*ecosnake.Game).Snapshot().Moved {
					moves++
				}
			}
			// One second of frames at medium speed.
			if moves != 10 {
				t.Errorf("moved %d cells in %d frames, expected 10", moves, tc.frames)
			}
		})
	}
}

func TestAppDirectOwnsFirstTickChain(t *testing.T) {
	a, err := NewApp(nil, AppConfig{Runtime: testRuntime(), Player: "Bo", Direct: true})
	if err != nil {
		t.Fatalf("NewApp() failed: %v", err)
	}
	if a.Init() == nil {
		t.Fatal("direct app should start ticking")
	}
	if cmd := a.resumeTicks(); cmd != nil {
		t.Error("resuming while the first chain is pending would double the frame rate")
	}
}

func TestAppDirectRejectsBadName(t *testing.T) {
	_, err := NewApp(nil, AppConfig{Runtime: testRuntime(), Player: "", Direct: true})
	if err == nil {
		t.Error("empty player name should be rejected")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColor(0, 0, "Hi", core.ColorGreen)
	s.DrawText(0, 1, "there")

	out := RenderScreen(s)
	if !strings.Contains(out, "Hi") || !strings.Contains(out, "there") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
}
