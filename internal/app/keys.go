package app

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/panes/internal/keymap"
)

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m.quit()
	}
	if m.filtering {
		return m.handleFilterKey(msg)
	}

	switch keymap.Default.Resolve(key) {
	case keymap.ActionQuit:
		return m.quit()
	case keymap.ActionSwitchPanel:
		m.active = m.nextPanel()
	case keymap.ActionFilter:
		m.filtering = true
		m.setInputFocused(true)
		return m, m.filter.Focus()
	case keymap.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case keymap.ActionMoveUp:
		m.cat.move(-1)
	case keymap.ActionMoveDown:
		m.cat.move(1)
	case keymap.ActionShrink, keymap.ActionShrinkLarge, keymap.ActionGrow, keymap.ActionGrowLarge:
		return m, m.panels[m.active].Update(msg)
	}
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch keymap.Default.Resolve(msg.String()) {
	case keymap.ActionCancel:
		m.filter.SetValue("")
		m.cat.setQuery("")
		m.endFilter()
		return m, nil
	case keymap.ActionConfirm:
		m.endFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.cat.setQuery(m.filter.Value())
	return m, cmd
}

func (m *Model) endFilter() {
	m.filtering = false
	m.filter.Blur()
	m.setInputFocused(false)
}

func (m Model) setInputFocused(focused bool) {
	for _, p := range m.panels {
		p.SetInputFocused(focused)
	}
}

// nextPanel cycles through the visible resizable panels.
func (m Model) nextPanel() int {
	visible := m.visiblePanels()
	for step := 1; step <= len(visible); step++ {
		i := visible[(max(slices.Index(visible, m.active), 0)+step)%len(visible)]
		if m.panels[i].Resizable() {
			return i
		}
	}
	return m.active
}

func (m Model) quit() (Model, tea.Cmd) {
	log.Info().Msg("quitting")
	m.Close()
	m.quitting = true
	return m, tea.Quit
}
