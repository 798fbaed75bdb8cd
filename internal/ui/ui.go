package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/rfx/internal/services"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	ListView ViewState = iota
	FormView
	DetailView
)

// navIntent enumerates the navigation requests a controller can raise.
type navIntent int

const (
	navNone navIntent = iota
	navToList
	navToAdd
	navToEdit
	navToDetail
	navQuit
)

// nav is a routing request from a controller to the shell.
type nav struct {
	to navIntent
	id string
}

// Model is the navigation shell: it mounts one controller per screen and
// routes keys, async results, and navigation intents between them.
type Model struct {
	ctx    context.Context
	store  services.Store
	logger *log.Logger

	view   ViewState
	mount  int
	width  int
	height int

	list   *listController
	form   *formController
	detail *detailController

	help help.Model
	keys keyMap
}

// NewModel creates the TUI shell with the provided dependencies.
func NewModel(ctx context.Context, store services.Store, logger *log.Logger) *Model {
	return &Model{
		ctx:    ctx,
		store:  store,
		logger: logger,
		help:   help.New(),
		keys:   newKeyMap(),
	}
}

// Init mounts the list view and kicks off the initial fetch.
func (m *Model) Init() tea.Cmd {
	return m.showList()
}

// Update handles incoming messages and routes them to the mounted controller.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.list != nil {
			m.list.resize(msg.Width, msg.Height)
		}
		return m, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		var nv nav
		switch m.view {
		case ListView:
			cmd, nv = m.list.handleKeys(msg)
		case FormView:
			cmd, nv = m.form.handleKeys(msg)
		case DetailView:
			cmd, nv = m.detail.handleKeys(msg)
		}
		if nv.to != navNone {
			return m, m.navigate(nv)
		}
		return m, cmd
	}

	// Results issued under a previous mount belong to a screen the user
	// already left; applying them would resurrect stale state.
	if res, ok := msg.(mounted); ok && res.mountID() != m.mount {
		return m, nil
	}

	switch msg := msg.(type) {
	case rfpsLoadedMsg:
		m.list.handleLoaded(msg)
		return m, nil

	case listDeleteDoneMsg:
		return m, m.list.handleDeleteDone(msg)

	case formFetchedMsg:
		m.form.handleFetched(msg)
		return m, nil

	case saveDoneMsg:
		return m, m.form.handleSaveDone(msg)

	case successTickMsg:
		return m, m.showList()

	case formDeleteDoneMsg:
		if nv := m.form.handleDeleteDone(msg); nv.to != navNone {
			return m, m.navigate(nv)
		}
		return m, nil

	case detailLoadedMsg:
		m.detail.handleLoaded(msg)
		return m, nil
	}

	return m, m.forward(msg)
}

// View renders the mounted controller.
func (m *Model) View() string {
	switch m.view {
	case ListView:
		return m.list.view()
	case FormView:
		return m.form.view()
	case DetailView:
		return m.detail.view()
	default:
		return ""
	}
}

// navigate unmounts the current controller and mounts the requested one.
func (m *Model) navigate(nv nav) tea.Cmd {
	switch nv.to {
	case navToList:
		return m.showList()
	case navToAdd:
		return m.showForm("")
	case navToEdit:
		return m.showForm(nv.id)
	case navToDetail:
		return m.showDetail(nv.id)
	case navQuit:
		return tea.Quit
	}
	return nil
}

func (m *Model) showList() tea.Cmd {
	m.mount++
	m.view = ListView
	m.form = nil
	m.detail = nil
	m.list = newListController(m.ctx, m.store, m.logger, m.mount, m.width, m.height, m.help, m.keys)
	return m.list.init()
}

func (m *Model) showForm(id string) tea.Cmd {
	m.mount++
	m.view = FormView
	m.list = nil
	m.detail = nil
	m.form = newFormController(m.ctx, m.store, m.logger, m.mount, id, m.help, m.keys)
	return m.form.init()
}

func (m *Model) showDetail(id string) tea.Cmd {
	m.mount++
	m.view = DetailView
	m.list = nil
	m.form = nil
	m.detail = newDetailController(m.ctx, m.store, m.logger, m.mount, id, m.help, m.keys)
	return m.detail.init()
}

// forward passes non-key messages (spinner ticks, cursor blinks, list
// internals) to the mounted controller.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	switch m.view {
	case ListView:
		return m.list.update(msg)
	case FormView:
		return m.form.update(msg)
	}
	return nil
}
