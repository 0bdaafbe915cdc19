package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ecosnake/internal/config"
)

// NameModel asks for the player name before a session.
type NameModel struct {
	input textinput.Model
	rules config.Config
	err   string
	width int
	done  bool
	back  bool
}

// NewNameModel creates a focused name prompt, prefilled when a name is
// already known (for example the SSH user).
func NewNameModel(rules config.Config, prefill string, width int) NameModel {
	ti := textinput.New()
	ti.Placeholder = "Your name"
	ti.CharLimit = rules.Player.MaxName
	ti.Width = rules.Player.MaxName + 1
	ti.Prompt = "> "
	ti.SetValue(truncateRunes(prefill, rules.Player.MaxName))
	ti.Focus()

	return NameModel{
		input: ti,
		rules: rules,
		width: width,
	}
}

// Init starts the cursor blink.
func (m NameModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the prompt.
func (m NameModel) Update(msg tea.Msg) (NameModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if err := m.rules.ValidateName(m.Name()); err != nil {
				m.err = fmt.Sprintf("Name must be %d-%d characters", m.rules.Player.MinName, m.rules.Player.MaxName)
				return m, nil
			}
			m.done = true
			return m, nil
		case "esc":
			m.back = true
			return m, nil
		}
		m.err = ""

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt.
func (m NameModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("Who is collecting today?"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.input.View(), m.width))
	b.WriteString("\n\n")
	if m.err != "" {
		b.WriteString(centerText(errorStyle.Render(m.err), m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(helpStyle.Render("Enter: Continue  |  Esc: Back"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Name returns the trimmed input.
func (m NameModel) Name() string {
	return strings.TrimSpace(m.input.Value())
}

// Done reports whether a valid name was confirmed.
func (m NameModel) Done() bool { return m.done }

// Back reports whether the player left the prompt.
func (m NameModel) Back() bool { return m.back }

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
