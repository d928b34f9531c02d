package tui

import (
	"github.com/MKhiriev/remote-mirror/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel asks a single yes/no question and quits on the first answer.
type confirmModel struct {
	question  string
	buildInfo models.AppBuildInfo

	answered  bool
	confirmed bool
}

func newConfirmModel(question string, info models.AppBuildInfo) confirmModel {
	return confirmModel{question: question, buildInfo: info}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.yes):
		m.answered, m.confirmed = true, true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.no):
		m.answered, m.confirmed = true, false
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.answered {
		return ""
	}
	box := promptBoxStyle.Render(questionStyle.Render(m.question) + "\n\n" + helpStyle.Render("y yes    n no"))
	return renderPage(pageTitle(m.buildInfo), box, "q / ctrl+c: abort")
}
