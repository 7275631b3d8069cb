// Package app is the root bubbletea model: a batch list and a details panel,
// both resizable, around a centre pane that shows the selected batch.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/panes/internal/batches"
	"github.com/llehouerou/panes/internal/config"
	"github.com/llehouerou/panes/internal/errmsg"
	"github.com/llehouerou/panes/internal/resize"
	"github.com/llehouerou/panes/internal/state"
	"github.com/llehouerou/panes/internal/ui/handle"
	"github.com/llehouerou/panes/internal/ui/layout"
	"github.com/llehouerou/panes/internal/ui/panel"
	"github.com/llehouerou/panes/internal/ui/vars"
)

// Panel indices.
const (
	panelList = iota
	panelDetails
)

const appTitle = "panes"

// Options holds the dependencies of the model.
type Options struct {
	Config *config.Config
	Store  state.Interface
	Source batches.Source
	Vars   *vars.Registry   // default: vars.Global
	Now    func() time.Time // default: time.Now

	// ResizeOptions are passed to every panel controller.
	ResizeOptions []resize.Option
}

// Model is the root application model.
type Model struct {
	store  state.Interface
	source batches.Source
	vars   *vars.Registry
	host   *host
	cat    *catalog

	panels []*panel.Model
	names  []string
	active int

	// Sizes as last reported by the debounced size callbacks.
	sizes map[string]float64

	filter    textinput.Model
	filtering bool
	help      help.Model
	errMsg    string

	width, height int
	cols          layout.Columns
	quitting      bool
}

// New builds the model and its panels. Panel sizes are restored from the
// store right away.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	reg := opts.Vars
	if reg == nil {
		reg = vars.Global
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	m := Model{
		store:  opts.Store,
		source: opts.Source,
		vars:   reg,
		host:   &host{},
		cat:    newCatalog(now),
		names:  []string{config.PanelSidebar, config.PanelDetails},
		sizes:  make(map[string]float64),
		help:   help.New(),
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter batches"
	ti.CharLimit = 64
	m.filter = ti

	var store resize.Store
	if opts.Store != nil {
		store = opts.Store
	}
	ports := resize.Ports{Store: store, Vars: reg, Host: m.host}

	contents := []panel.ContentFunc{m.cat.listView, m.cat.detailsView}
	titles := []string{"Batches", "Details"}
	for i, name := range m.names {
		po := panelOptions(cfg, name, titles[i])
		sizes := m.sizes
		po.Config.OnSizeChange = func(size float64) {
			sizes[name] = size
			log.Debug().Str("panel", name).Float64("size", size).Msg("panel size settled")
		}
		p := panel.New(po, ports, contents[i], opts.ResizeOptions...)
		m.sizes[name] = p.Controller().Size()
		m.panels = append(m.panels, p)
	}
	if !m.panels[panelList].Resizable() && m.panels[panelDetails].Resizable() {
		m.active = panelDetails
	}
	return m
}

func panelOptions(cfg *config.Config, name, title string) panel.Options {
	pc := cfg.Panel(name)
	keys := cfg.GetKeys()
	return panel.Options{
		Config: resize.Config{
			DefaultSize:    pc.DefaultSize,
			MinSize:        pc.MinSize,
			MaxSize:        pc.MaxSize,
			VariableName:   pc.VariableName,
			PersistenceKey: pc.PersistenceKey,
			KeyStep:        keys.Step,
			ShiftKeyStep:   keys.ShiftStep,
		},
		Side:      handle.ParseSide(pc.Side),
		Resizable: pc.IsResizable(),
		Title:     title,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.source == nil {
		return nil
	}
	return loadBatches(m.source)
}

// Panel returns the panel at index i (0: batch list, 1: details).
func (m Model) Panel(i int) *panel.Model { return m.panels[i] }

// ActivePanel returns the index of the panel receiving resize keys.
func (m Model) ActivePanel() int { return m.active }

// Columns returns the current column layout.
func (m Model) Columns() layout.Columns { return m.cols }

// SettledSize returns the last size reported for the named panel.
func (m Model) SettledSize(name string) float64 { return m.sizes[name] }

// Close stops all controllers and closes the store.
func (m Model) Close() {
	for _, p := range m.panels {
		p.Close()
	}
	if m.store == nil {
		return
	}
	if err := m.store.Close(); err != nil {
		log.Error().Err(err).Msg(errmsg.Format(errmsg.OpSizeSave, err))
	}
}
