package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ecosnake/internal/config"
	"github.com/vovakirdan/ecosnake/internal/core"
	"github.com/vovakirdan/ecosnake/internal/registry"
	"github.com/vovakirdan/ecosnake/internal/storage"
)

// State is one screen of the application state machine.
type State int

const (
	StateMenu State = iota
	StateName
	StateDifficulty
	StatePlaying
	StateScores
	StateSettings
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateName:
		return "name"
	case StateDifficulty:
		return "difficulty"
	case StatePlaying:
		return "playing"
	case StateScores:
		return "scores"
	case StateSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// RulesLoader resolves the rules of a profile.
type RulesLoader func(profile string) (config.Config, error)

// AppConfig configures an App.
type AppConfig struct {
	// Runtime.TickRate of zero paces each session at its profile's
	// frame rate.
	Runtime core.RuntimeConfig
	Profile string      // Preselected rule profile
	Player  string      // Prefilled player name
	Tier    config.Tier // Used when Direct is set
	// Direct starts a session immediately and quits instead of returning
	// to the menu.
	Direct bool
	Rules  RulesLoader
	Logger *log.Logger
}

// App is the top-level Bubble Tea model: menu, name entry, difficulty,
// the running session with its game over screen, scores and settings.
// Used both for local play and for each SSH session.
type App struct {
	cfg        AppConfig
	store      *storage.Store
	logger     *log.Logger
	state      State
	profile    string
	rules      config.Config
	player     string
	appearance config.Appearance
	message    string // Shown on the menu after a failure

	menu         MenuModel
	name         NameModel
	difficulty   DifficultyModel
	settings     SettingsModel
	scores       ScoreboardModel
	scoresReturn State

	game      registry.Game
	screen    *core.Screen
	input     core.InputFrame
	gameState core.GameState
	keyMapper *KeyMapper
	tickRate  int // Rate of the running session
	ticking   bool
	quitting  bool
}

// NewApp creates the application. With cfg.Direct the session is created
// here, so invalid options are reported before the terminal is taken over.
func NewApp(store *storage.Store, cfg AppConfig) (App, error) {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Rules == nil {
		cfg.Rules = func(profile string) (config.Config, error) {
			return config.Load(profile, "")
		}
	}
	if cfg.Profile == "" {
		cfg.Profile = config.ProfileEcoSnake
	}

	a := App{
		cfg:        cfg,
		store:      store,
		logger:     cfg.Logger,
		profile:    cfg.Profile,
		player:     cfg.Player,
		appearance: config.DefaultAppearance(),
		screen:     core.NewScreen(cfg.Runtime.ScreenW, cfg.Runtime.ScreenH),
		input:      core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
	if store != nil {
		a.appearance = store.LoadAppearance()
	}

	if !cfg.Direct {
		a.toMenu()
		return a, nil
	}

	rules, err := cfg.Rules(cfg.Profile)
	if err != nil {
		return App{}, err
	}
	a.rules = rules
	if err := a.startGame(cfg.Tier); err != nil {
		return App{}, err
	}
	// Init starts the first tick chain.
	a.ticking = true
	return a, nil
}

// Init starts the frame loop when the app opens on a session.
func (a App) Init() tea.Cmd {
	if a.state == StatePlaying {
		return tickCmd(a.tickRate)
	}
	return nil
}

// Update routes messages to the active screen.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.cfg.Runtime.ScreenW = msg.Width
		a.cfg.Runtime.ScreenH = msg.Height
		a.screen.Resize(msg.Width, msg.Height)

	case TickMsg:
		return a.handleTick()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.quitting = true
			return a, tea.Quit
		}
		if a.state == StatePlaying {
			return a.handlePlayingKey(msg)
		}
	}

	var cmd tea.Cmd
	switch a.state {
	case StateMenu:
		a.menu, cmd = a.menu.Update(msg)
		return a.afterMenu(cmd)
	case StateName:
		a.name, cmd = a.name.Update(msg)
		return a.afterName(cmd)
	case StateDifficulty:
		a.difficulty, cmd = a.difficulty.Update(msg)
		return a.afterDifficulty(cmd)
	case StateScores:
		a.scores, cmd = a.scores.Update(msg)
		return a.afterScores(cmd)
	case StateSettings:
		a.settings, cmd = a.settings.Update(msg)
		return a.afterSettings(cmd)
	}
	return a, nil
}

func (a App) afterMenu(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	switch a.menu.Choice() {
	case MenuChoiceQuit:
		a.quitting = true
		return a, tea.Quit

	case MenuChoicePlay:
		a.profile = a.menu.Profile().ID
		if !a.loadRules() {
			return a, nil
		}
		a.name = NewNameModel(a.rules, a.player, a.cfg.Runtime.ScreenW)
		a.state = StateName
		return a, a.name.Init()

	case MenuChoiceScores:
		a.profile = a.menu.Profile().ID
		if !a.loadRules() {
			return a, nil
		}
		a.openScores("")
		return a, nil

	case MenuChoiceSettings:
		a.settings = NewSettingsModel(a.store, a.appearance, a.logger, a.cfg.Runtime.ScreenW)
		a.state = StateSettings
		return a, nil
	}
	return a, cmd
}

func (a App) afterName(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	switch {
	case a.name.Back():
		a.toMenu()
		return a, nil
	case a.name.Done():
		a.player = a.name.Name()
		a.difficulty = NewDifficultyModel(a.rules, a.cfg.Runtime.ScreenW)
		a.state = StateDifficulty
		return a, nil
	}
	return a, cmd
}

func (a App) afterDifficulty(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	switch {
	case a.difficulty.IsQuitting():
		a.quitting = true
		return a, tea.Quit
	case a.difficulty.Back():
		a.name = NewNameModel(a.rules, a.player, a.cfg.Runtime.ScreenW)
		a.state = StateName
		return a, a.name.Init()
	case a.difficulty.Done():
		if err := a.startGame(a.difficulty.Selected().Tier); err != nil {
			a.logger.Error("could not start session", "profile", a.profile, "error", err)
			a.toMenu()
			a.message = err.Error()
			return a, nil
		}
		return a, a.resumeTicks()
	}
	return a, cmd
}

func (a App) afterScores(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	switch {
	case a.scores.IsQuitting():
		a.quitting = true
		return a, tea.Quit
	case a.scores.IsGoingBack():
		if a.scoresReturn == StatePlaying && a.game != nil {
			a.state = StatePlaying
			return a, a.resumeTicks()
		}
		a.toMenu()
		return a, nil
	}
	return a, cmd
}

func (a App) afterSettings(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	a.appearance = a.settings.Appearance()
	if a.settings.Back() {
		a.toMenu()
	}
	return a, cmd
}

// handlePlayingKey buffers in-game keys until the next frame. On the game
// over screen S opens the scores and Esc leaves the session.
func (a App) handlePlayingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		a.saveScreenshot()
		return a, nil
	}
	if a.gameState.GameOver {
		switch msg.String() {
		case "s", "S":
			a.scoresReturn = StatePlaying
			a.openScores(a.player)
			return a, nil
		case "esc", "b":
			return a.leaveGame()
		}
	}

	if a.keyMapper.MapKeyToFrame(msg, &a.input) {
		a.quitting = true
		return a, tea.Quit
	}
	return a, nil
}

// handleTick runs one simulation frame and re-arms the tick.
func (a App) handleTick() (tea.Model, tea.Cmd) {
	if a.state != StatePlaying || a.game == nil {
		a.ticking = false
		return a, nil
	}

	result := a.game.Step(a.input)
	a.input.Clear()
	a.gameState = result.State

	if a.gameState.Aborted {
		a.logger.Debug("session aborted", "player", a.player, "score", a.gameState.Score)
		a.ticking = false
		return a.leaveGame()
	}

	return a, tickCmd(a.tickRate)
}

// saveScreenshot writes the current frame as plain text under
// ~/.ecosnake/screenshots.
func (a App) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".ecosnake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		a.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	a.game.Render(a.screen)
	name := fmt.Sprintf("%s_%s.txt", a.profile, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(a.screen.String()), 0o600); err != nil {
		a.logger.Warn("could not save screenshot", "error", err)
		return
	}
	a.logger.Info("screenshot saved", "path", path)
}

// startGame creates a session for the current profile, player and tier.
func (a *App) startGame(tier config.Tier) error {
	game, err := registry.Create(a.profile, registry.Options{
		Rules:      a.rules,
		Tier:       tier,
		Player:     a.player,
		Appearance: a.appearance,
		Sink:       storage.NewRecorder(a.store, a.profile, a.rules.HighScores.Limit, a.logger),
	})
	if err != nil {
		return err
	}

	rc := a.cfg.Runtime
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if rc.TickRate <= 0 {
		rc.TickRate = a.rules.FrameRate
	}
	game.Reset(rc)

	a.game = game
	a.tickRate = rc.TickRate
	a.gameState = game.State()
	a.input.Clear()
	a.state = StatePlaying
	a.logger.Info("session started", "profile", a.profile, "player", a.player, "tier", tier, "fps", rc.TickRate)
	return nil
}

// resumeTicks starts the frame loop unless one is already pending.
func (a *App) resumeTicks() tea.Cmd {
	if a.ticking {
		return nil
	}
	a.ticking = true
	return tickCmd(a.tickRate)
}

func (a App) leaveGame() (tea.Model, tea.Cmd) {
	a.game = nil
	a.gameState = core.GameState{}
	if a.cfg.Direct {
		a.quitting = true
		return a, tea.Quit
	}
	a.toMenu()
	return a, nil
}

func (a *App) loadRules() bool {
	rules, err := a.cfg.Rules(a.profile)
	if err != nil {
		a.logger.Error("could not load rules", "profile", a.profile, "error", err)
		a.toMenu()
		a.message = fmt.Sprintf("Could not load %s rules", a.profile)
		return false
	}
	a.rules = rules
	return true
}

func (a *App) openScores(highlight string) {
	if highlight == "" {
		a.scoresReturn = StateMenu
	}
	a.scores = NewScoreboardModel(a.store, a.profile, highlight, a.rules.HighScores.Limit,
		a.cfg.Runtime.ScreenW, a.cfg.Runtime.ScreenH)
	a.state = StateScores
}

func (a *App) toMenu() {
	a.menu = NewMenuModel(a.store, a.profile, a.cfg.Runtime.ScreenW, a.cfg.Runtime.ScreenH)
	a.message = ""
	a.state = StateMenu
}

// View renders the active screen.
func (a App) View() string {
	if a.quitting {
		return ""
	}

	switch a.state {
	case StatePlaying:
		a.game.Render(a.screen)
		return RenderScreen(a.screen)
	case StateName:
		return a.name.View()
	case StateDifficulty:
		return a.difficulty.View()
	case StateScores:
		return a.scores.View()
	case StateSettings:
		return a.settings.View()
	default:
		view := a.menu.View()
		if a.message != "" {
			view += "\n" + centerText(errorStyle.Render(a.message), a.cfg.Runtime.ScreenW)
		}
		return view
	}
}

// State returns the active screen.
func (a App) State() State { return a.state }

// GameState returns the state of the running session.
func (a App) GameState() core.GameState { return a.gameState }

// Player returns the current player name.
func (a App) Player() string { return a.player }

// Run starts the Bubble Tea program for a local terminal.
func Run(store *storage.Store, cfg AppConfig) error {
	app, err := NewApp(store, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
