package ecosnake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/ecosnake/internal/config"
	"github.com/vovakirdan/ecosnake/internal/core"
	"github.com/vovakirdan/ecosnake/internal/registry"
)

// cellWidth is the number of terminal columns one grid cell occupies.
// Terminal glyphs are roughly twice as tall as wide.
const cellWidth = 2

// Game adapts a Session to the platform's registry.Game interface.
type Game struct {
	id         string
	title      string
	opts       registry.Options
	difficulty config.DifficultyEntry

	session *Session
	rng     *rand.Rand // Seeds restarts
	last    Snapshot
	paused  bool

	screenW  int
	screenH  int
	tickRate int
}

func init() {
	registry.Register(config.ProfileEcoSnake, "EcoSnake", func(opts registry.Options) (registry.Game, error) {
		return New(config.ProfileEcoSnake, "EcoSnake", opts)
	})
	registry.Register(config.ProfileClassic, "Trash Collector (Classic)", func(opts registry.Options) (registry.Game, error) {
		return New(config.ProfileClassic, "Trash Collector (Classic)", opts)
	})
}

// New creates a game for a profile. The rules are validated and the
// difficulty tier resolved here so Reset cannot fail later.
func New(id, title string, opts registry.Options) (*Game, error) {
	if err := opts.Rules.Validate(); err != nil {
		return nil, err
	}
	entry, ok := opts.Rules.Difficulty.Lookup(opts.Tier)
	if !ok {
		return nil, fmt.Errorf("ecosnake: profile %q has no %s difficulty", id, opts.Tier)
	}
	if err := opts.Rules.ValidateName(opts.Player); err != nil {
		return nil, err
	}

	g := &Game{
		id:         id,
		title:      title,
		opts:       opts,
		difficulty: entry,
	}
	cfg := core.DefaultConfig()
	cfg.TickRate = opts.Rules.FrameRate
	g.Reset(cfg)
	return g, nil
}

// ID returns the profile identifier.
func (g *Game) ID() string { return g.id }

// Title returns the display name.
func (g *Game) Title() string { return g.title }

// Reset starts a fresh session. Movement is paced against cfg.TickRate,
// the rate the platform will call Step at.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	g.paused = false

	s, err := NewSession(Options{
		Rules:      g.opts.Rules,
		Difficulty: g.difficulty,
		Player:     g.opts.Player,
		Seed:       cfg.Seed,
		TickRate:   cfg.TickRate,
		Sink:       g.opts.Sink,
	})
	if err != nil {
		// Options were validated in New.
		panic(err)
	}
	g.session = s
	g.last = s.Snapshot()
}

// Step maps the frame's input to a session command and advances one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.Outcome() == OutcomeSelfCollision && (in.Has(core.ActionRestart) || in.Has(core.ActionConfirm)) {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.session.Outcome().Terminal() {
		g.paused = !g.paused
	}
	if g.paused && !in.Has(core.ActionAbort) {
		return core.StepResult{State: g.State()}
	}
	g.paused = false

	g.last = g.session.Step(CommandFor(in, g.last.Direction))
	return core.StepResult{State: g.State()}
}

// CommandFor picks the session command for a frame of input: Abort wins,
// otherwise the most recent direction that does not reverse heading. A
// reversal pressed after a valid turn in the same frame does not cancel it.
func CommandFor(in core.InputFrame, heading Direction) Command {
	if in.Has(core.ActionAbort) {
		return CommandAbort
	}
	dirs := in.Directions()
	for i := len(dirs) - 1; i >= 0; i-- {
		cmd := commandForAction(dirs[i])
		if cmd.Direction() != heading.Opposite() {
			return cmd
		}
	}
	return CommandNone
}

func commandForAction(a core.Action) Command {
	switch a {
	case core.ActionUp:
		return CommandUp
	case core.ActionDown:
		return CommandDown
	case core.ActionLeft:
		return CommandLeft
	case core.ActionRight:
		return CommandRight
	default:
		return CommandNone
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	o := g.session.Outcome()
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: o == OutcomeSelfCollision,
		Aborted:  o == OutcomeAborted,
		Paused:   g.paused,
	}
}

// Outcome returns the current session outcome.
func (g *Game) Outcome() Outcome { return g.session.Outcome() }

// Snapshot returns the state after the last frame.
func (g *Game) Snapshot() Snapshot { return g.last }

// Difficulty returns the resolved difficulty preset.
func (g *Game) Difficulty() config.DifficultyEntry { return g.difficulty }

// Render draws the playfield, status band and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	field := g.session.Playfield()
	w := field.Cols * cellWidth
	h := field.Rows
	if dst.Width() < w || dst.Height() < h {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	ox := (dst.Width() - w) / 2
	snap := g.last

	g.renderBackground(dst, field, ox)
	g.renderStatus(dst, field, ox, w, snap)

	item := snap.Item.Kind.Look()
	g.drawCell(dst, field, ox, snap.Item.Position, item.Glyph, item.Color)

	head := g.opts.Appearance.Character.Look()
	bag := g.opts.Appearance.Bag.Look()
	// Body first so the head stays visible when cells stack after growth.
	for i := len(snap.Cells) - 1; i >= 1; i-- {
		g.drawCell(dst, field, ox, snap.Cells[i], bag.Glyph, bag.Color)
	}
	g.drawCell(dst, field, ox, snap.Cells[0], head.Glyph, head.Color)

	switch {
	case snap.Outcome == OutcomeSelfCollision:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("%s collected %d", snap.Player, snap.Score),
			"Enter: again  S: scores  Esc: menu")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue", "")
	}
}

func (g *Game) renderBackground(dst *core.Screen, field Playfield, ox int) {
	bg := g.opts.Appearance.Background.Look()
	if bg.Glyph == ' ' {
		return
	}
	for row := field.StatusRows; row < field.Rows; row++ {
		for col := 0; col < field.Cols; col++ {
			dst.SetColor(ox+col*cellWidth, row, bg.Glyph, bg.Color)
		}
	}
}

func (g *Game) renderStatus(dst *core.Screen, field Playfield, ox, w int, snap Snapshot) {
	if field.StatusRows == 0 {
		return
	}
	left := fmt.Sprintf(" %s  Score: %d", snap.Player, snap.Score)
	dst.DrawText(ox, 0, left)

	label := "[" + snap.Difficulty + "]"
	dst.DrawTextColor(ox+w-len([]rune(label))-1, 0, label, g.difficulty.Color)

	if field.StatusRows > 1 {
		dst.DrawHLine(ox, field.StatusRows-1, w, '─', core.ColorGray)
	}
}

func (g *Game) drawCell(dst *core.Screen, field Playfield, ox int, p Position, r rune, c core.Color) {
	col, row := field.Cell(p)
	dst.SetColor(ox+col*cellWidth, row, r, c)
}

func (g *Game) renderOverlay(dst *core.Screen, title, line1, line2 string) {
	boxW := max(len([]rune(title)), len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	if line2 != "" {
		boxH = 6
	}
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	dst.DrawBox(box)

	dst.DrawTextCentered(box.Y+1, title)
	dst.DrawTextCentered(box.Y+3, line1)
	if line2 != "" {
		dst.DrawTextCentered(box.Y+4, line2)
	}
}
