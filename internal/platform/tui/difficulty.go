package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ecosnake/internal/config"
)

// DifficultyModel picks a tier from the profile's difficulty table.
type DifficultyModel struct {
	entries   []config.DifficultyEntry
	cursor    int
	width     int
	keyMapper *KeyMapper
	done      bool
	back      bool
	quitting  bool
}

// NewDifficultyModel creates the picker with the first tier selected.
func NewDifficultyModel(rules config.Config, width int) DifficultyModel {
	return DifficultyModel{
		entries:   rules.Difficulty,
		width:     width,
		keyMapper: NewKeyMapper(),
	}
}

// Update handles messages for the picker.
func (m DifficultyModel) Update(msg tea.Msg) (DifficultyModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			m.done = true
		case MenuActionBack:
			m.back = true
		case MenuActionQuit:
			m.quitting = true
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// View renders the picker with each tier in its color.
func (m DifficultyModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("Choose a difficulty"), m.width))
	b.WriteString("\n\n")

	for i, e := range m.entries {
		label := styleFor(e.Color).Render(e.Label)
		detail := subtitleStyle.Render(fmt.Sprintf("  %d moves/s", e.Speed))
		marker := "  "
		if i == m.cursor {
			marker = selectedStyle.Render("> ")
		}
		b.WriteString(centerText(marker+label+detail, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render("Up/Down: Navigate  |  Enter: Start  |  Esc: Back"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the highlighted entry.
func (m DifficultyModel) Selected() config.DifficultyEntry {
	return m.entries[m.cursor]
}

// Done reports whether a tier was confirmed.
func (m DifficultyModel) Done() bool { return m.done }

// Back reports whether the player left the picker.
func (m DifficultyModel) Back() bool { return m.back }

// IsQuitting reports whether the player asked to quit.
func (m DifficultyModel) IsQuitting() bool { return m.quitting }
