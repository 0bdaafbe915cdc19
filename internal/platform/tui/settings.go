package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ecosnake/internal/config"
	"github.com/vovakirdan/ecosnake/internal/storage"
)

const (
	settingCharacter = iota
	settingBackground
	settingBag
	settingCount
)

var settingLabels = [settingCount]string{"Character", "Background", "Garbage Bag"}

// SettingsModel cycles the appearance choices and saves each change.
type SettingsModel struct {
	appearance config.Appearance
	store      *storage.Store
	logger     *log.Logger
	cursor     int
	width      int
	keyMapper  *KeyMapper
	back       bool
}

// NewSettingsModel creates the settings screen for the current appearance.
func NewSettingsModel(store *storage.Store, a config.Appearance, logger *log.Logger, width int) SettingsModel {
	return SettingsModel{
		appearance: a,
		store:      store,
		logger:     logger,
		width:      width,
		keyMapper:  NewKeyMapper(),
	}
}

// Update handles messages for the settings screen.
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < settingCount-1 {
				m.cursor++
			}
		case MenuActionLeft:
			m.cycle(-1)
		case MenuActionRight, MenuActionSelect:
			m.cycle(1)
		case MenuActionBack, MenuActionQuit:
			m.back = true
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m *SettingsModel) cycle(delta int) {
	switch m.cursor {
	case settingCharacter:
		m.appearance.Character = next(config.Characters(), m.appearance.Character, delta)
	case settingBackground:
		m.appearance.Background = next(config.Backgrounds(), m.appearance.Background, delta)
	case settingBag:
		m.appearance.Bag = next(config.Bags(), m.appearance.Bag, delta)
	}

	if m.store == nil {
		return
	}
	if err := m.store.SaveAppearance(m.appearance); err != nil {
		m.logger.Warn("could not save settings", "error", err)
	}
}

// next returns the element delta steps after cur, wrapping around.
func next[T comparable](all []T, cur T, delta int) T {
	for i, v := range all {
		if v == cur {
			return all[(i+delta+len(all))%len(all)]
		}
	}
	return all[0]
}

// View renders the settings screen with a preview glyph per row.
func (m SettingsModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("Settings"), m.width))
	b.WriteString("\n\n")

	looks := [settingCount]config.Look{
		m.appearance.Character.Look(),
		m.appearance.Background.Look(),
		m.appearance.Bag.Look(),
	}
	for i, look := range looks {
		preview := styleFor(look.Color).Render(string(look.Glyph))
		line := settingLabels[i] + ":  < " + look.Title + " > " + preview
		b.WriteString(centerText(cursorLine(line, i == m.cursor), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render("Up/Down: Choose  |  Left/Right: Change  |  Esc: Back"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Appearance returns the current choices.
func (m SettingsModel) Appearance() config.Appearance { return m.appearance }

// Back reports whether the player left the screen.
func (m SettingsModel) Back() bool { return m.back }
