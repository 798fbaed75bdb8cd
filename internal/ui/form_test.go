package ui

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/rfx/internal/shared"
	tu "github.com/desertthunder/rfx/internal/testing"
)

func newTestForm(t *testing.T, store *tu.MockStore, id string) *formController {
	t.Helper()
	logger := shared.NewLogger(io.Discard)
	return newFormController(context.Background(), store, logger, 1, id, help.New(), newKeyMap())
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFormController(t *testing.T) {
	t.Run("Mode", func(t *testing.T) {
		t.Run("no id means create", func(t *testing.T) {
			f := newTestForm(t, &tu.MockStore{}, "")
			if f.mode != modeCreate {
				t.Error("expected create mode without an id")
			}
			if f.state != formEditing {
				t.Error("expected create mode to start editing immediately")
			}
		})

		t.Run("id means edit with prefetch", func(t *testing.T) {
			f := newTestForm(t, &tu.MockStore{}, "abc")
			if f.mode != modeEdit {
				t.Error("expected edit mode with an id")
			}
			if f.state != formLoading {
				t.Error("expected edit mode to start loading")
			}
		})
	})

	t.Run("Validation", func(t *testing.T) {
		t.Run("blank carrier name blocks submission", func(t *testing.T) {
			store := &tu.MockStore{}
			f := newTestForm(t, store, "")
			f.inputs[fieldCarrier].SetValue("   ")

			cmd, _ := f.handleKeys(tea.KeyMsg{Type: tea.KeyEnter})

			if cmd != nil {
				t.Error("expected no command for invalid submission")
			}
			if store.CreateCalls != 0 {
				t.Errorf("expected zero store calls, got %d", store.CreateCalls)
			}
			if f.fieldErr != "Carrier Name is required." {
				t.Errorf("unexpected field error: %q", f.fieldErr)
			}
			if f.inputs[fieldCarrier].Value() != "   " {
				t.Error("expected carrier field to be left unchanged")
			}
		})

		t.Run("negative employee count blocks and resets to zero", func(t *testing.T) {
			store := &tu.MockStore{}
			f := newTestForm(t, store, "")
			f.inputs[fieldCarrier].SetValue("Carrier X")
			f.inputs[fieldEmployees].SetValue("-5")

			cmd, _ := f.handleKeys(tea.KeyMsg{Type: tea.KeyEnter})

			if cmd != nil {
				t.Error("expected no command for invalid submission")
			}
			if store.CreateCalls != 0 {
				t.Errorf("expected zero store calls, got %d", store.CreateCalls)
			}
			if f.inputs[fieldEmployees].Value() != "0" {
				t.Errorf("expected employee count reset to 0, got %q", f.inputs[fieldEmployees].Value())
			}
			if f.fieldErr != "Employee count must be 0 or above." {
				t.Errorf("unexpected field error: %q", f.fieldErr)
			}
		})

		t.Run("non-numeric employee count blocks without reset", func(t *testing.T) {
			store := &tu.MockStore{}
			f := newTestForm(t, store, "")
			f.inputs[fieldCarrier].SetValue("Carrier X")
			f.inputs[fieldEmployees].SetValue("lots")

			cmd, _ := f.handleKeys(tea.KeyMsg{Type: tea.KeyEnter})

			if cmd != nil || store.CreateCalls != 0 {
				t.Error("expected submission to be blocked")
			}
			if f.inputs[fieldEmployees].Value() != "lots" {
				t.Error("expected entered value to be preserved")
			}
		})

		t.Run("malformed date blocks submission", func(t *testing.T) {
			store := &tu.MockStore{}
			f := newTestForm(t, store, "")
			f.inputs[fieldCarrier].SetValue("Carrier X")
			f.inputs[fieldDate].SetValue("next tuesday")

			cmd, _ := f.handleKeys(tea.KeyMsg{Type: tea.KeyEnter})

			if cmd != nil || store.CreateCalls != 0 {
				t.Error("expected submission to be blocked")
			}
		})
	})

	t.Run("Create Flow", func(t *testing.T) {
		t.Run("submits one create with defaulted date", func(t *testing.T) {
			store := &tu.MockStore{}
			f := newTestForm(t, store, "")
			f.inputs[fieldCarrier].SetValue("Carrier X")
			f.inputs[fieldEmployees].SetValue("300")

			before := time.Now().UTC()
			cmd, _ := f.handleKeys(tea.KeyMsg{Type: tea.KeyEnter})
			if cmd == nil {
				t.Fatal("expected a submission command")
			}
			if f.state != formSubmitting {
				t.Error("expected submitting state while the call is in flight")
			}

			msg, ok := cmd().(saveDoneMsg)
			if !ok {
				t.Fatal("expected saveDoneMsg")
			}
			if msg.err != nil {
				t.Fatalf("expected successful save, got %v", msg.err)
			}

			if store.CreateCalls != 1 {
				t.Fatalf("expected exactly one create call, got %d", store.CreateCalls)
			}
			if store.UpdateCalls != 0 {
				t.Errorf("create mode must not call update, got %d", store.UpdateCalls)
			}
			if store.LastDraft.CarrierName != "Carrier X" {
				t.Errorf("expected carrier name Carrier X, got %q", store.LastDraft.CarrierName)
			}
			if store.LastDraft.EmployeeCount != 300 {
				t.Errorf("expected employee count 300, got %d", store.LastDraft.EmployeeCount)
			}
			if store.LastDraft.DateSubmitted.Before(before) {
				t.Error("expected blank date to default to submission time")
			}
		})

		t.Run("empty employee count defaults to zero", func(t *testing.T) {
			store := &tu.MockStore{}
			f := newTestForm(t, store, "")
			f.inputs[fieldCarrier].SetValue("Carrier Y")

			cmd, _ := f.handleKeys(tea.KeyMsg{Type: tea.KeyEnter})
			if cmd == nil {
				t.Fatal("expected a submission command")
			}
			cmd()

			if store.LastDraft.EmployeeCount != 0 {
				t.Errorf("expected employee count 0, got %d", store.LastDraft.EmployeeCount)
			}
		})

		t.Run("success schedules navigation after notice delay", func(t *testing.T) {
			f := newTestForm(t, &tu.MockStore{}, "")

			tick := f.handleSaveDone(saveDoneMsg{mount: 1})

			if f.state != formSucceeded {
				t.Error("expected succeeded state")
			}
			if f.notice != "RFP saved successfully!" || f.noticeErr {
				t.Errorf("unexpected notice: %q", f.notice)
			}
			if tick == nil {
				t.Error("expected delayed navigation command")
			}
		})

		t.Run("failure returns to editing with values preserved", func(t *testing.T) {
			f := newTestForm(t, &tu.MockStore{}, "")
			f.inputs[fieldCarrier].SetValue("Carrier X")
			f.inputs[fieldEmployees].SetValue("300")
			f.state = formSubmitting

			cmd := f.handleSaveDone(saveDoneMsg{mount: 1, err: errors.New("boom")})

			if cmd != nil {
				t.Error("expected no follow-up command on failure")
			}
			if f.state != formEditing {
				t.Error("expected to return to editing")
			}
			if !f.noticeErr || f.notice != "Failed to save RFP. Please try again." {
				t.Errorf("unexpected notice: %q", f.notice)
			}
			if f.inputs[fieldCarrier].Value() != "Carrier X" || f.inputs[fieldEmployees].Value() != "300" {
				t.Error("expected entered values to be preserved")
			}
		})
	})

	t.Run("Edit Flow", func(t *testing.T) {
		t.Run("prefetch populates all four fields", func(t *testing.T) {
			store := &tu.MockStore{}
			store.RFPs = append(store.RFPs, tu.SampleRFP("abc", "Carrier A", 100))

			f := newTestForm(t, store, "abc")
			cmd := f.init()
			if cmd == nil {
				t.Fatal("expected prefetch command")
			}

			msg, ok := cmd().(formFetchedMsg)
			if !ok {
				t.Fatal("expected formFetchedMsg")
			}
			f.handleFetched(msg)

			if store.GetCalls != 1 {
				t.Errorf("expected exactly one fetch, got %d", store.GetCalls)
			}
			if f.state != formEditing {
				t.Error("expected editing state after prefetch")
			}
			if f.inputs[fieldCarrier].Value() != "Carrier A" {
				t.Errorf("expected carrier field Carrier A, got %q", f.inputs[fieldCarrier].Value())
			}
			if f.inputs[fieldEmployees].Value() != "100" {
				t.Errorf("expected employee field 100, got %q", f.inputs[fieldEmployees].Value())
			}
			if f.inputs[fieldMisc].Value() != "sample" {
				t.Errorf("expected misc field sample, got %q", f.inputs[fieldMisc].Value())
			}
			if f.inputs[fieldDate].Value() != "2024-06-01" {
				t.Errorf("expected date field 2024-06-01, got %q", f.inputs[fieldDate].Value())
			}
		})

		t.Run("prefetch failure is distinguishable from loading", func(t *testing.T) {
			f := newTestForm(t, &tu.MockStore{}, "abc")
			f.handleFetched(formFetchedMsg{mount: 1, err: errors.New("boom")})

			view := f.view()
			if !strings.Contains(view, "Failed to fetch RFP details") {
				t.Errorf("expected visible fetch error, got %q", view)
			}
			if strings.Contains(view, "Loading") {
				t.Errorf("error view must not look like loading, got %q", view)
			}
		})

		t.Run("submission calls update with the mounted id", func(t *testing.T) {
			store := &tu.MockStore{}
			store.RFPs = append(store.RFPs, tu.SampleRFP("abc", "Carrier A", 100))

			f := newTestForm(t, store, "abc")
			f.handleFetched(formFetchedMsg{mount: 1, rfp: &store.RFPs[0]})
			f.inputs[fieldCarrier].SetValue("Carrier A Renamed")

			cmd, _ := f.handleKeys(tea.KeyMsg{Type: tea.KeyEnter})
			if cmd == nil {
				t.Fatal("expected a submission command")
			}
			cmd()

			if store.UpdateCalls != 1 {
				t.Fatalf("expected exactly one update call, got %d", store.UpdateCalls)
			}
			if store.CreateCalls != 0 {
				t.Errorf("edit mode must not call create, got %d", store.CreateCalls)
			}
			if store.LastID != "abc" {
				t.Errorf("expected update for id abc, got %q", store.LastID)
			}
			if store.LastDraft.CarrierName != "Carrier A Renamed" {
				t.Errorf("unexpected carrier in draft: %q", store.LastDraft.CarrierName)
			}
		})
	})

	t.Run("Delete Flow", func(t *testing.T) {
		t.Run("create mode has no delete affordance", func(t *testing.T) {
			f := newTestForm(t, &tu.MockStore{}, "")
			f.handleKeys(tea.KeyMsg{Type: tea.KeyCtrlD})

			if f.confirming {
				t.Error("create mode must not open a delete dialog")
			}
		})

		t.Run("declining issues zero delete calls", func(t *testing.T) {
			store := &tu.MockStore{}
			store.RFPs = append(store.RFPs, tu.SampleRFP("abc", "Carrier A", 100))

			f := newTestForm(t, store, "abc")
			f.state = formEditing
			f.handleKeys(tea.KeyMsg{Type: tea.KeyCtrlD})
			if !f.confirming {
				t.Fatal("expected delete dialog to open")
			}

			f.handleKeys(keyRunes("n"))

			if f.confirming {
				t.Error("expected dialog to close on decline")
			}
			if store.DeleteCalls != 0 {
				t.Errorf("expected zero delete calls, got %d", store.DeleteCalls)
			}
		})

		t.Run("confirming issues one delete then navigates to list", func(t *testing.T) {
			store := &tu.MockStore{}
			store.RFPs = append(store.RFPs, tu.SampleRFP("abc", "Carrier A", 100))

			f := newTestForm(t, store, "abc")
			f.state = formEditing
			f.handleKeys(tea.KeyMsg{Type: tea.KeyCtrlD})

			cmd, _ := f.handleKeys(keyRunes("y"))
			if cmd == nil {
				t.Fatal("expected delete command")
			}

			msg, ok := cmd().(formDeleteDoneMsg)
			if !ok {
				t.Fatal("expected formDeleteDoneMsg")
			}
			if store.DeleteCalls != 1 {
				t.Fatalf("expected exactly one delete call, got %d", store.DeleteCalls)
			}
			if store.LastID != "abc" {
				t.Errorf("expected delete for id abc, got %q", store.LastID)
			}

			nv := f.handleDeleteDone(msg)
			if nv.to != navToList {
				t.Error("expected navigation to list after delete")
			}
			if f.confirming {
				t.Error("expected dialog closed after completion")
			}
		})

		t.Run("failed delete closes dialog and stays", func(t *testing.T) {
			store := &tu.MockStore{Err: errors.New("boom")}
			f := newTestForm(t, store, "abc")
			f.state = formEditing
			f.confirming = true
			f.deleting = true

			nv := f.handleDeleteDone(formDeleteDoneMsg{mount: 1, err: errors.New("boom")})

			if nv.to != navNone {
				t.Error("expected to stay on the form after failed delete")
			}
			if f.confirming {
				t.Error("expected dialog closed unconditionally")
			}
			if !f.noticeErr {
				t.Error("expected error notice")
			}
		})
	})

	t.Run("Submitting Guard", func(t *testing.T) {
		store := &tu.MockStore{}
		f := newTestForm(t, store, "")
		f.inputs[fieldCarrier].SetValue("Carrier X")
		f.state = formSubmitting

		cmd, nv := f.handleKeys(tea.KeyMsg{Type: tea.KeyEnter})

		if cmd != nil || nv.to != navNone {
			t.Error("expected input to be ignored while submitting")
		}
		if store.CreateCalls != 0 {
			t.Errorf("expected no second submission, got %d calls", store.CreateCalls)
		}
	})
}

func TestParseSubmissionDate(t *testing.T) {
	t.Run("date only", func(t *testing.T) {
		got, err := parseSubmissionDate("2024-06-01")
		if err != nil {
			t.Fatalf("expected date to parse: %v", err)
		}
		if got.Year() != 2024 || got.Month() != time.June || got.Day() != 1 {
			t.Errorf("unexpected parse result: %v", got)
		}
	})

	t.Run("rfc3339", func(t *testing.T) {
		if _, err := parseSubmissionDate("2024-06-01T09:30:00Z"); err != nil {
			t.Errorf("expected RFC 3339 timestamp to parse: %v", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := parseSubmissionDate("next tuesday"); err == nil {
			t.Error("expected parse failure")
		}
	})
}
