package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/desertthunder/rfx/internal/formatter"
	"github.com/desertthunder/rfx/internal/models"
	"github.com/desertthunder/rfx/internal/shared"
	"github.com/urfave/cli/v3"
)

// RFPList fetches all records and renders them as JSON or via the formatter.
func (r *Runner) RFPList(ctx context.Context, cmd *cli.Command) error {
	rfps, err := r.store.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list RFPs: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(rfps, cmd.Bool("pretty"))
	}

	if output := cmd.String("output"); output != "" {
		if err := formatter.WriteExport(rfps, cmd.String("format"), output); err != nil {
			return err
		}
		return r.writePlain("Wrote %d records to %s\n", len(rfps), output)
	}

	data, err := formatter.Export(rfps, cmd.String("format"))
	if err != nil {
		return err
	}
	return r.writePlain("%s", data)
}

// RFPGet fetches a single record by ID.
func (r *Runner) RFPGet(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: id is required", shared.ErrMissingArgument)
	}

	rfp, err := r.store.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch RFP: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(rfp, cmd.Bool("pretty"))
	}

	r.writePlain("ID:             %s\n", rfp.ID)
	r.writePlain("Carrier Name:   %s\n", rfp.CarrierName)
	r.writePlain("Employee Count: %d\n", rfp.EmployeeCount)
	r.writePlain("Misc Data:      %s\n", models.MiscString(rfp.MiscData))
	r.writePlain("Date Submitted: %s\n", shared.FormatDate(rfp.DateSubmitted))
	return nil
}

// RFPAdd creates a new record from flags. The submission date defaults to now.
func (r *Runner) RFPAdd(ctx context.Context, cmd *cli.Command) error {
	draft := models.RFPDraft{
		CarrierName:   strings.TrimSpace(cmd.String("carrier")),
		EmployeeCount: cmd.Int("employees"),
	}
	if draft.CarrierName == "" {
		return fmt.Errorf("%w: carrier name is required", shared.ErrValidation)
	}
	if draft.EmployeeCount < 0 {
		return fmt.Errorf("%w: employee count must be 0 or above", shared.ErrValidation)
	}
	if misc := cmd.String("misc"); misc != "" {
		draft.MiscData = misc
	}

	date, err := parseDateFlag(cmd.String("date"))
	if err != nil {
		return err
	}
	draft.DateSubmitted = date

	created, err := r.store.Create(ctx, draft)
	if err != nil {
		return fmt.Errorf("failed to create RFP: %w", err)
	}

	r.logger.Info("rfp created", "id", created.ID)
	return r.writePlain("Created RFP %s (%s)\n", created.ID, created.CarrierName)
}

// RFPEdit fetches the record, applies the provided flags, and sends a full replace.
func (r *Runner) RFPEdit(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: id is required", shared.ErrMissingArgument)
	}

	existing, err := r.store.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch RFP: %w", err)
	}

	draft := existing.Draft()
	if cmd.IsSet("carrier") {
		draft.CarrierName = strings.TrimSpace(cmd.String("carrier"))
	}
	if cmd.IsSet("employees") {
		draft.EmployeeCount = cmd.Int("employees")
	}
	if cmd.IsSet("misc") {
		draft.MiscData = cmd.String("misc")
	}
	if cmd.IsSet("date") {
		date, err := parseDateFlag(cmd.String("date"))
		if err != nil {
			return err
		}
		draft.DateSubmitted = date
	}

	if draft.CarrierName == "" {
		return fmt.Errorf("%w: carrier name is required", shared.ErrValidation)
	}
	if draft.EmployeeCount < 0 {
		return fmt.Errorf("%w: employee count must be 0 or above", shared.ErrValidation)
	}

	updated, err := r.store.Update(ctx, id, draft)
	if err != nil {
		return fmt.Errorf("failed to update RFP: %w", err)
	}

	r.logger.Info("rfp updated", "id", updated.ID)
	return r.writePlain("Updated RFP %s (%s)\n", updated.ID, updated.CarrierName)
}

// RFPDelete removes a record, prompting for confirmation unless --yes is set.
func (r *Runner) RFPDelete(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: id is required", shared.ErrMissingArgument)
	}

	if !cmd.Bool("yes") {
		rfp, err := r.store.Get(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to fetch RFP: %w", err)
		}

		r.writePlain("Delete RFP %q? [y/N]: ", rfp.CarrierName)
		answer, _ := bufio.NewReader(r.input).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			return r.writePlain("Aborted.\n")
		}
	}

	if err := r.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete RFP: %w", err)
	}

	r.logger.Info("rfp deleted", "id", id)
	return r.writePlain("Deleted RFP %s\n", id)
}

// parseDateFlag accepts YYYY-MM-DD or RFC 3339. An empty value means "now".
func parseDateFlag(value string) (time.Time, error) {
	if value == "" {
		return time.Now().UTC(), nil
	}
	if date, err := time.Parse("2006-01-02", value); err == nil {
		return date.UTC(), nil
	}
	if date, err := time.Parse(time.RFC3339, value); err == nil {
		return date.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%w: date must be in YYYY-MM-DD form", shared.ErrValidation)
}
