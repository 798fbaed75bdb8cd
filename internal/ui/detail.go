package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/rfx/internal/models"
	"github.com/desertthunder/rfx/internal/services"
	"github.com/desertthunder/rfx/internal/shared"
)

// detailController is a read-only projection of one record. It fetches on
// mount and holds no mutation state.
type detailController struct {
	ctx    context.Context
	store  services.Store
	logger *log.Logger
	mount  int

	id       string
	rfp      *models.RFP
	fetchErr error

	help help.Model
	keys keyMap
}

func newDetailController(ctx context.Context, store services.Store, logger *log.Logger, mount int, id string, hlp help.Model, keys keyMap) *detailController {
	return &detailController{
		ctx:    ctx,
		store:  store,
		logger: logger,
		mount:  mount,
		id:     id,
		help:   hlp,
		keys:   keys,
	}
}

func (c *detailController) init() tea.Cmd {
	mount := c.mount
	return func() tea.Msg {
		rfp, err := c.store.Get(c.ctx, c.id)
		return detailLoadedMsg{mount: mount, rfp: rfp, err: err}
	}
}

func (c *detailController) handleLoaded(msg detailLoadedMsg) {
	if msg.err != nil {
		c.fetchErr = msg.err
		c.logger.Error("failed to fetch RFP details", "id", c.id, "error", msg.err)
		return
	}
	c.rfp = msg.rfp
}

func (c *detailController) handleKeys(msg tea.KeyMsg) (tea.Cmd, nav) {
	switch msg.String() {
	case "q", "ctrl+c":
		return nil, nav{to: navQuit}
	case "esc", "b":
		return nil, nav{to: navToList}
	case "e":
		if c.rfp != nil {
			return nil, nav{to: navToEdit, id: c.rfp.ID}
		}
		return nil, nav{}
	case "r":
		if c.fetchErr != nil {
			c.fetchErr = nil
			return c.init(), nav{}
		}
		return nil, nav{}
	}
	return nil, nav{}
}

func (c *detailController) view() string {
	if c.fetchErr != nil {
		return styles.err.Render(fmt.Sprintf("Failed to fetch RFP details: %v", c.fetchErr)) +
			"\n\n" + c.help.ShortHelpView([]key.Binding{c.keys.refresh, c.keys.back})
	}

	if c.rfp == nil {
		return styles.help.Render("Loading...")
	}

	title := styles.title.Render("RFP Details")
	body := fmt.Sprintf(
		"%s %s\n%s %d\n%s %s\n%s %s",
		styles.label.Render("Carrier Name:"), c.rfp.CarrierName,
		styles.label.Render("Employee Count:"), c.rfp.EmployeeCount,
		styles.label.Render("Misc Data:"), models.MiscString(c.rfp.MiscData),
		styles.label.Render("Date Submitted:"), shared.FormatDate(c.rfp.DateSubmitted),
	)

	helpKeys := []key.Binding{c.keys.edit, c.keys.back, c.keys.quit}
	helpView := c.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n\n%s", title, body, helpView)
}
