package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/rfx/internal/models"
	"github.com/desertthunder/rfx/internal/services"
	"github.com/desertthunder/rfx/internal/shared"
)

var _ list.Item = rfpItem{}

// rfpItem wraps [models.RFP] to implement [list.Item].
type rfpItem struct {
	rfp models.RFP
}

func (i rfpItem) FilterValue() string { return i.rfp.CarrierName }
func (i rfpItem) Title() string       { return i.rfp.CarrierName }
func (i rfpItem) Description() string {
	return fmt.Sprintf("Employee count: %d • Submitted %s", i.rfp.EmployeeCount, shared.FormatDate(i.rfp.DateSubmitted))
}

// listController owns the collection snapshot and the delete-confirmation
// workflow. The snapshot is never patched in place: any mutation ends in a
// full refetch so the view re-derives truth from the store.
type listController struct {
	ctx    context.Context
	store  services.Store
	logger *log.Logger
	mount  int

	rows   list.Model
	ready  bool
	err    error
	width  int
	height int

	confirming bool
	deleting   bool
	target     models.RFP // delete dialog subject, keyed by id

	notice    string
	noticeErr bool

	help help.Model
	keys keyMap
}

func newListController(ctx context.Context, store services.Store, logger *log.Logger, mount, width, height int, hlp help.Model, keys keyMap) *listController {
	return &listController{
		ctx:    ctx,
		store:  store,
		logger: logger,
		mount:  mount,
		width:  width,
		height: height,
		help:   hlp,
		keys:   keys,
	}
}

// init fetches the full collection.
func (c *listController) init() tea.Cmd {
	mount := c.mount
	return func() tea.Msg {
		rfps, err := c.store.List(c.ctx)
		return rfpsLoadedMsg{mount: mount, rfps: rfps, err: err}
	}
}

func (c *listController) handleLoaded(msg rfpsLoadedMsg) {
	if msg.err != nil {
		c.err = msg.err
		c.logger.Error("failed to fetch RFPs", "error", msg.err)
		return
	}

	items := make([]list.Item, len(msg.rfps))
	for i, rfp := range msg.rfps {
		items[i] = rfpItem{rfp: rfp}
	}

	c.rows = list.New(items, list.NewDefaultDelegate(), 0, 0)
	c.rows.Title = "RFPs"
	c.rows.SetSize(c.width-4, c.height-8)
	c.ready = true
	c.err = nil
}

func (c *listController) handleKeys(msg tea.KeyMsg) (tea.Cmd, nav) {
	if c.confirming {
		switch {
		case key.Matches(msg, c.keys.yes):
			if c.deleting {
				return nil, nav{}
			}
			c.deleting = true
			return c.deleteTarget(), nav{}
		case key.Matches(msg, c.keys.no), key.Matches(msg, c.keys.back):
			if !c.deleting {
				c.confirming = false
			}
			return nil, nav{}
		}
		return nil, nav{}
	}

	// Adding a record never depends on the snapshot, so the key works even
	// while the fetch is in flight or after it failed.
	if c.err != nil {
		switch msg.String() {
		case "q", "ctrl+c":
			return nil, nav{to: navQuit}
		case "r":
			c.err = nil
			return c.init(), nav{}
		case "a":
			return nil, nav{to: navToAdd}
		}
		return nil, nav{}
	}

	if !c.ready {
		switch msg.String() {
		case "q", "ctrl+c":
			return nil, nav{to: navQuit}
		case "a":
			return nil, nav{to: navToAdd}
		}
		return nil, nav{}
	}

	// While the built-in filter prompt is active, every key belongs to it.
	if c.rows.FilterState() == list.Filtering {
		var cmd tea.Cmd
		c.rows, cmd = c.rows.Update(msg)
		return cmd, nav{}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return nil, nav{to: navQuit}
	case "enter":
		if rfp, ok := c.selected(); ok {
			return nil, nav{to: navToDetail, id: rfp.ID}
		}
		return nil, nav{}
	case "e":
		if rfp, ok := c.selected(); ok {
			return nil, nav{to: navToEdit, id: rfp.ID}
		}
		return nil, nav{}
	case "a":
		return nil, nav{to: navToAdd}
	case "d":
		if rfp, ok := c.selected(); ok {
			c.confirming = true
			c.target = rfp
		}
		return nil, nav{}
	case "r":
		return c.init(), nav{}
	}

	var cmd tea.Cmd
	c.rows, cmd = c.rows.Update(msg)
	return cmd, nav{}
}

// handleDeleteDone closes the dialog and refetches the whole list no matter
// how the delete went: the snapshot is invalidated, not patched.
func (c *listController) handleDeleteDone(msg listDeleteDoneMsg) tea.Cmd {
	c.confirming = false
	c.deleting = false

	if msg.err != nil {
		c.notice = "Failed to delete RFP. Please try again."
		c.noticeErr = true
		c.logger.Error("failed to delete RFP", "id", c.target.ID, "error", msg.err)
	} else {
		c.notice = fmt.Sprintf("%s deleted successfully!", msg.carrier)
		c.noticeErr = false
	}

	return c.init()
}

func (c *listController) update(msg tea.Msg) tea.Cmd {
	if !c.ready {
		return nil
	}
	var cmd tea.Cmd
	c.rows, cmd = c.rows.Update(msg)
	return cmd
}

func (c *listController) resize(width, height int) {
	c.width = width
	c.height = height
	if c.ready {
		c.rows.SetSize(width-4, height-8)
	}
}

func (c *listController) selected() (models.RFP, bool) {
	item := c.rows.SelectedItem()
	if item == nil {
		return models.RFP{}, false
	}
	row, ok := item.(rfpItem)
	return row.rfp, ok
}

func (c *listController) deleteTarget() tea.Cmd {
	mount := c.mount
	target := c.target
	return func() tea.Msg {
		err := c.store.Delete(c.ctx, target.ID)
		return listDeleteDoneMsg{mount: mount, carrier: target.CarrierName, err: err}
	}
}

func (c *listController) view() string {
	if c.err != nil {
		return styles.err.Render(fmt.Sprintf("Failed to load RFPs: %v", c.err)) +
			"\n\n" + c.help.ShortHelpView([]key.Binding{c.keys.refresh, c.keys.add, c.keys.quit})
	}

	if !c.ready {
		return styles.help.Render("Loading RFPs...")
	}

	if c.confirming {
		title := styles.title.Render("Confirm Deletion")
		body := fmt.Sprintf("Are you sure you want to delete %s? This action cannot be undone.", c.target.CarrierName)
		if c.deleting {
			body += "\n\n" + styles.warn.Render("Deleting...")
		}
		helpView := c.help.ShortHelpView([]key.Binding{c.keys.yes, c.keys.no})
		return fmt.Sprintf("%s\n%s\n\n%s", title, body, helpView)
	}

	var notice string
	if c.notice != "" {
		if c.noticeErr {
			notice = "\n" + styles.err.Render(c.notice)
		} else {
			notice = "\n" + styles.ok.Render(c.notice)
		}
	}

	helpKeys := []key.Binding{c.keys.enter, c.keys.add, c.keys.edit, c.keys.remove, c.keys.quit}
	helpView := c.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s%s\n\n%s", c.rows.View(), notice, helpView)
}
