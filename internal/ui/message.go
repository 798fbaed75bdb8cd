package ui

import "github.com/desertthunder/rfx/internal/models"

// Async results carry the mount counter they were issued under; the shell
// drops anything from a departed screen (see [Model.Update]).
type mounted interface {
	mountID() int
}

// rfpsLoadedMsg delivers the list snapshot fetched on list mount or refetch.
type rfpsLoadedMsg struct {
	mount int
	rfps  []models.RFP
	err   error
}

// listDeleteDoneMsg reports the outcome of a confirmed row delete.
type listDeleteDoneMsg struct {
	mount   int
	carrier string
	err     error
}

// formFetchedMsg delivers the edit-mode prefetch of an existing record.
type formFetchedMsg struct {
	mount int
	rfp   *models.RFP
	err   error
}

// saveDoneMsg reports the outcome of a create or update submission.
type saveDoneMsg struct {
	mount int
	err   error
}

// formDeleteDoneMsg reports the outcome of a delete issued from the form.
type formDeleteDoneMsg struct {
	mount int
	err   error
}

// successTickMsg fires after the success notice delay to navigate back to the list.
type successTickMsg struct {
	mount int
}

// detailLoadedMsg delivers the record fetched for the detail view.
type detailLoadedMsg struct {
	mount int
	rfp   *models.RFP
	err   error
}

func (m rfpsLoadedMsg) mountID() int      { return m.mount }
func (m listDeleteDoneMsg) mountID() int  { return m.mount }
func (m formFetchedMsg) mountID() int     { return m.mount }
func (m saveDoneMsg) mountID() int        { return m.mount }
func (m formDeleteDoneMsg) mountID() int  { return m.mount }
func (m successTickMsg) mountID() int     { return m.mount }
func (m detailLoadedMsg) mountID() int    { return m.mount }
