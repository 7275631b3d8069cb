package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/panes/internal/errmsg"
	"github.com/llehouerou/panes/internal/keymap"
	"github.com/llehouerou/panes/internal/resize"
	"github.com/llehouerou/panes/internal/ui/headerbar"
	"github.com/llehouerou/panes/internal/ui/layout"
)

const statusHeight = 1

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width

	case BatchesLoadedMsg:
		if msg.Err != nil {
			m.errMsg = errmsg.Format(errmsg.OpBatchLoad, msg.Err)
			log.Error().Err(msg.Err).Msg("batch load failed")
			m.cat.set(nil)
			break
		}
		m.errMsg = ""
		m.cat.set(msg.Batches)
		log.Info().Int("count", len(msg.Batches)).Msg("batches loaded")

	case resize.TimerMsg:
		cmds := make([]tea.Cmd, 0, len(m.panels))
		for _, p := range m.panels {
			cmds = append(cmds, p.Update(msg))
		}
		cmd = tea.Batch(cmds...)

	case tea.MouseMsg:
		m, cmd = m.handleMouse(msg)

	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	default:
		if m.filtering {
			m.filter, cmd = m.filter.Update(msg)
		}
	}

	m.relayout()
	return m, cmd
}

func (m Model) filterHeight() int {
	if m.filtering || m.filter.Value() != "" {
		return 1
	}
	return 0
}

func (m Model) helpHeight() int {
	if !m.help.ShowAll {
		return 0
	}
	return lipgloss.Height(m.help.View(keymap.Help{}))
}

func (m Model) contentTop() int {
	return headerbar.Height + m.filterHeight()
}

// panelWidth is the column a panel takes. Resizable panels publish their
// size through the shared registry, which the layout reads back.
func (m Model) panelWidth(i int) int {
	p := m.panels[i]
	name := p.Controller().Config().VariableName
	if !p.Resizable() || name == "" {
		return p.Width()
	}
	return m.vars.Int(name, p.Width())
}

func (m *Model) relayout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := layout.ContentHeight(m.height, layout.ContentOpts{
		HeaderHeight: headerbar.Height,
		FilterHeight: m.filterHeight(),
		StatusHeight: statusHeight,
		HelpHeight:   m.helpHeight(),
	})
	top := m.contentTop()
	m.cols = layout.ColumnWidths(m.width, m.panelWidth(panelList), m.panelWidth(panelDetails))

	m.panels[panelList].SetBounds(0, top, h)
	if m.cols.Narrow {
		m.panels[panelDetails].SetBounds(m.cols.RightOffset(), top, 0)
		if m.active == panelDetails && m.panels[panelList].Resizable() {
			m.active = panelList
		}
		return
	}
	m.panels[panelDetails].SetBounds(m.cols.RightOffset(), top, h)
}

// visiblePanels returns the indices of panels currently on screen.
func (m Model) visiblePanels() []int {
	if m.cols.Narrow {
		return []int{panelList}
	}
	return []int{panelList, panelDetails}
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.host.resizing {
		for _, p := range m.panels {
			if p.Controller().IsDragging() {
				return m, p.Update(msg)
			}
		}
	}

	cmds := make([]tea.Cmd, 0, len(m.panels))
	for _, i := range m.visiblePanels() {
		p := m.panels[i]
		cmds = append(cmds, p.Update(msg))
		if p.Controller().IsDragging() {
			m.active = i
		}
	}
	if !m.host.resizing {
		m.handleListMouse(msg)
	}
	return m, tea.Batch(cmds...)
}

// handleListMouse selects batches by click and scrolls with the wheel.
func (m *Model) handleListMouse(msg tea.MouseMsg) {
	list := m.panels[panelList]
	top := m.contentTop() + 1 // panel title row
	inner := m.cols.Left
	if list.Resizable() {
		inner--
	}
	if msg.X < 0 || msg.X >= inner || msg.Y < top || msg.Y >= m.contentTop()+list.Height() {
		return
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.cat.move(-1)
	case tea.MouseButtonWheelDown:
		m.cat.move(1)
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress {
			m.cat.selectRow(msg.Y-top, list.Height()-1)
		}
	}
}
