package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/rfx/internal/models"
	"github.com/desertthunder/rfx/internal/services"
)

// formMode distinguishes create from edit. It is decided once at mount time
// from the presence of an id and never re-derived afterward.
type formMode int

const (
	modeCreate formMode = iota
	modeEdit
)

// formState is the submission lifecycle of the form.
type formState int

const (
	formLoading formState = iota // edit-mode prefetch in flight
	formEditing
	formSubmitting
	formSucceeded
)

// successNoticeDelay holds the success notice on screen before navigating
// back to the list.
const successNoticeDelay = 2 * time.Second

const (
	fieldCarrier = iota
	fieldEmployees
	fieldMisc
	fieldDate
	fieldCount
)

var fieldLabels = [fieldCount]string{"Carrier Name", "Employee Count", "Misc Data", "Date Submitted"}

// formController owns the working copy of a single record through the
// create/edit/delete workflow. The copy lives and dies with the controller:
// cancel, success, or navigation discards it.
type formController struct {
	ctx    context.Context
	store  services.Store
	logger *log.Logger
	mount  int

	mode  formMode
	id    string // edit mode only
	state formState

	inputs   [fieldCount]textinput.Model
	focus    int
	fieldErr string

	// delete confirmation, orthogonal to the submission lifecycle
	confirming bool
	deleting   bool

	notice    string
	noticeErr bool
	fetchErr  error

	help help.Model
	keys keyMap
}

func newFormController(ctx context.Context, store services.Store, logger *log.Logger, mount int, id string, hlp help.Model, keys keyMap) *formController {
	f := &formController{
		ctx:    ctx,
		store:  store,
		logger: logger,
		mount:  mount,
		id:     id,
		help:   hlp,
		keys:   keys,
	}

	if id != "" {
		f.mode = modeEdit
		f.state = formLoading
	} else {
		f.mode = modeCreate
		f.state = formEditing
	}

	placeholders := [fieldCount]string{"Carrier name", "0", "Free-form notes", "YYYY-MM-DD"}
	for i := range f.inputs {
		input := textinput.New()
		input.Placeholder = placeholders[i]
		f.inputs[i] = input
	}
	f.inputs[fieldCarrier].Focus()

	return f
}

// init prefetches the record in edit mode; create mode starts empty.
func (f *formController) init() tea.Cmd {
	if f.mode == modeCreate {
		return textinput.Blink
	}

	mount := f.mount
	return func() tea.Msg {
		rfp, err := f.store.Get(f.ctx, f.id)
		return formFetchedMsg{mount: mount, rfp: rfp, err: err}
	}
}

func (f *formController) handleFetched(msg formFetchedMsg) {
	if msg.err != nil {
		f.fetchErr = msg.err
		f.logger.Error("failed to fetch RFP details", "id", f.id, "error", msg.err)
		return
	}

	f.inputs[fieldCarrier].SetValue(msg.rfp.CarrierName)
	f.inputs[fieldEmployees].SetValue(strconv.Itoa(msg.rfp.EmployeeCount))
	f.inputs[fieldMisc].SetValue(models.MiscString(msg.rfp.MiscData))
	f.inputs[fieldDate].SetValue(msg.rfp.DateSubmitted.Format("2006-01-02"))
	f.state = formEditing
}

func (f *formController) handleKeys(msg tea.KeyMsg) (tea.Cmd, nav) {
	if msg.String() == "ctrl+c" {
		return nil, nav{to: navQuit}
	}

	if f.confirming {
		switch {
		case key.Matches(msg, f.keys.yes):
			if f.deleting {
				return nil, nav{}
			}
			f.deleting = true
			return f.deleteRecord(), nav{}
		case key.Matches(msg, f.keys.no), key.Matches(msg, f.keys.back):
			if !f.deleting {
				f.confirming = false
			}
		}
		return nil, nav{}
	}

	if f.fetchErr != nil {
		switch msg.String() {
		case "esc", "q":
			return nil, nav{to: navToList}
		case "r":
			f.fetchErr = nil
			f.state = formLoading
			return f.init(), nav{}
		}
		return nil, nav{}
	}

	switch f.state {
	case formLoading:
		if msg.String() == "esc" {
			return nil, nav{to: navToList}
		}
		return nil, nav{}
	case formSubmitting, formSucceeded:
		// Plain submitting signal: input is ignored until the call resolves.
		return nil, nav{}
	}

	switch msg.String() {
	case "esc":
		return nil, nav{to: navToList}
	case "tab", "down":
		f.cycleFocus(1)
		return nil, nav{}
	case "shift+tab", "up":
		f.cycleFocus(-1)
		return nil, nav{}
	case "enter":
		return f.submit(), nav{}
	case "ctrl+d":
		if f.mode == modeEdit {
			f.confirming = true
		}
		return nil, nav{}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd, nav{}
}

func (f *formController) cycleFocus(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	f.inputs[f.focus].Focus()
}

// submit runs the client-side validation gate and, only when it passes,
// issues the create or update call. Validation failures never reach the store.
func (f *formController) submit() tea.Cmd {
	f.fieldErr = ""
	f.notice = ""

	carrier := f.inputs[fieldCarrier].Value()
	if strings.TrimSpace(carrier) == "" {
		f.fieldErr = "Carrier Name is required."
		return nil
	}

	employees := 0
	if raw := strings.TrimSpace(f.inputs[fieldEmployees].Value()); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			f.fieldErr = "Employee count must be a number."
			return nil
		}
		if n < 0 {
			// Guard against negative input rather than silently rejecting it.
			f.inputs[fieldEmployees].SetValue("0")
			f.fieldErr = "Employee count must be 0 or above."
			return nil
		}
		employees = n
	}

	submitted := time.Now().UTC()
	if raw := strings.TrimSpace(f.inputs[fieldDate].Value()); raw != "" {
		parsed, err := parseSubmissionDate(raw)
		if err != nil {
			f.fieldErr = "Date must be in YYYY-MM-DD form."
			return nil
		}
		submitted = parsed
	}

	draft := models.RFPDraft{
		CarrierName:   carrier,
		EmployeeCount: employees,
		MiscData:      f.inputs[fieldMisc].Value(),
		DateSubmitted: submitted,
	}

	f.state = formSubmitting
	mount := f.mount
	return func() tea.Msg {
		var err error
		if f.mode == modeEdit {
			_, err = f.store.Update(f.ctx, f.id, draft)
		} else {
			_, err = f.store.Create(f.ctx, draft)
		}
		return saveDoneMsg{mount: mount, err: err}
	}
}

// handleSaveDone returns to editing with the entered values intact on
// failure; on success it schedules the navigation back to the list.
func (f *formController) handleSaveDone(msg saveDoneMsg) tea.Cmd {
	if msg.err != nil {
		f.state = formEditing
		f.notice = "Failed to save RFP. Please try again."
		f.noticeErr = true
		f.logger.Error("failed to save RFP", "error", msg.err)
		return nil
	}

	f.state = formSucceeded
	f.notice = "RFP saved successfully!"
	f.noticeErr = false

	mount := f.mount
	return tea.Tick(successNoticeDelay, func(time.Time) tea.Msg {
		return successTickMsg{mount: mount}
	})
}

func (f *formController) deleteRecord() tea.Cmd {
	mount := f.mount
	return func() tea.Msg {
		err := f.store.Delete(f.ctx, f.id)
		return formDeleteDoneMsg{mount: mount, err: err}
	}
}

// handleDeleteDone closes the confirmation dialog unconditionally; success
// navigates back to the list, failure stays on the form with an error notice.
func (f *formController) handleDeleteDone(msg formDeleteDoneMsg) nav {
	f.confirming = false
	f.deleting = false

	if msg.err != nil {
		f.notice = "Failed to delete RFP. Please try again."
		f.noticeErr = true
		f.logger.Error("failed to delete RFP", "id", f.id, "error", msg.err)
		return nav{}
	}

	return nav{to: navToList}
}

func (f *formController) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *formController) view() string {
	if f.fetchErr != nil {
		return styles.err.Render(fmt.Sprintf("Failed to fetch RFP details: %v", f.fetchErr)) +
			"\n\n" + f.help.ShortHelpView([]key.Binding{f.keys.refresh, f.keys.back})
	}

	if f.state == formLoading {
		return styles.help.Render("Loading RFP...")
	}

	if f.confirming {
		title := styles.title.Render("Confirm Deletion")
		body := "Are you sure you want to delete this RFP? This action cannot be undone."
		if f.deleting {
			body += "\n\n" + styles.warn.Render("Deleting...")
		}
		helpView := f.help.ShortHelpView([]key.Binding{f.keys.yes, f.keys.no})
		return fmt.Sprintf("%s\n%s\n\n%s", title, body, helpView)
	}

	heading := "Add RFP"
	if f.mode == modeEdit {
		heading = "Edit RFP"
	}

	var b strings.Builder
	b.WriteString(styles.title.Render(heading))
	b.WriteString("\n")

	for i := range f.inputs {
		b.WriteString(styles.label.Render(fieldLabels[i]))
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}

	if f.fieldErr != "" {
		b.WriteString("\n")
		b.WriteString(styles.err.Render(f.fieldErr))
		b.WriteString("\n")
	}

	switch {
	case f.state == formSubmitting:
		b.WriteString("\n")
		b.WriteString(styles.warn.Render("Saving..."))
		b.WriteString("\n")
	case f.notice != "":
		b.WriteString("\n")
		if f.noticeErr {
			b.WriteString(styles.err.Render(f.notice))
		} else {
			b.WriteString(styles.ok.Render(f.notice))
		}
		b.WriteString("\n")
	}

	helpKeys := []key.Binding{f.keys.submit, f.keys.back}
	if f.mode == modeEdit {
		deleteKey := key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete"))
		helpKeys = append(helpKeys, deleteKey)
	}
	b.WriteString("\n")
	b.WriteString(f.help.ShortHelpView(helpKeys))

	return b.String()
}

// parseSubmissionDate accepts the form's YYYY-MM-DD entry or a full RFC 3339
// timestamp as prefilled by edit mode.
func parseSubmissionDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
