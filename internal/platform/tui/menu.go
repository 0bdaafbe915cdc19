package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ecosnake/internal/registry"
	"github.com/vovakirdan/ecosnake/internal/storage"
)

// MenuChoice is what the player picked on the main menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScores
	MenuChoiceSettings
	MenuChoiceQuit
)

type menuItem struct {
	label  string
	choice MenuChoice
}

var menuItems = []menuItem{
	{"Play", MenuChoicePlay},
	{"High Scores", MenuChoiceScores},
	{"Settings", MenuChoiceSettings},
	{"Quit", MenuChoiceQuit},
}

// MenuModel is the main menu: the item list plus a rule profile selector.
type MenuModel struct {
	profiles      []registry.Info
	profileCursor int
	cursor        int
	highScore     int
	store         *storage.Store
	width         int
	height        int
	keyMapper     *KeyMapper
	choice        MenuChoice
}

// NewMenuModel creates a menu with the given profile preselected.
func NewMenuModel(store *storage.Store, profile string, width, height int) MenuModel {
	m := MenuModel{
		profiles:  registry.List(),
		store:     store,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	for i, p := range m.profiles {
		if p.ID == profile {
			m.profileCursor = i
		}
	}
	m.loadHighScore()
	return m
}

func (m *MenuModel) loadHighScore() {
	m.highScore = 0
	if m.store == nil || len(m.profiles) == 0 {
		return
	}
	if high, err := m.store.HighScore(m.Profile().ID); err == nil {
		m.highScore = high
	}
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (MenuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.choice = MenuChoiceQuit
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(menuItems)-1 {
				m.cursor++
			}
		case MenuActionLeft:
			m.cycleProfile(-1)
		case MenuActionRight:
			m.cycleProfile(1)
		case MenuActionSelect:
			m.choice = menuItems[m.cursor].choice
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m *MenuModel) cycleProfile(delta int) {
	if len(m.profiles) == 0 {
		return
	}
	m.profileCursor = (m.profileCursor + delta + len(m.profiles)) % len(m.profiles)
	m.loadHighScore()
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  E C O S N A K E  "), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(subtitleStyle.Render("Collect the trash, keep the planet clean"), m.width))
	b.WriteString("\n\n")

	if len(m.profiles) > 0 {
		profile := fmt.Sprintf("< %s >", m.Profile().Title)
		b.WriteString(centerText(profile, m.width))
		b.WriteString("\n")
		b.WriteString(centerText(subtitleStyle.Render(fmt.Sprintf("Best: %d", m.highScore)), m.width))
		b.WriteString("\n\n")
	}

	for i, item := range menuItems {
		b.WriteString(centerText(cursorLine(item.label, i == m.cursor), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Rules  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(helpStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the picked item, or MenuChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Profile returns the selected rule profile.
func (m MenuModel) Profile() registry.Info {
	if len(m.profiles) == 0 {
		return registry.Info{}
	}
	return m.profiles[m.profileCursor]
}
