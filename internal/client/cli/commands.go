package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/dmitrijs2005/jobwizard/internal/client/models"
	"github.com/dmitrijs2005/jobwizard/internal/client/services"
)

func (a *App) Get(ctx context.Context) error {
	if _, err := a.session.Load(ctx); err != nil {
		return err
	}
	return a.Show(ctx)
}

func (a *App) Show(ctx context.Context) error {
	d := a.session.Current()
	if d == nil {
		return a.Get(ctx)
	}
	printDraft(a, d)
	return nil
}

// Save writes one field. Without a value the user is prompted, which
// allows multi-line text for the scope.
func (a *App) Save(ctx context.Context, key, value string) error {
	if value == "" {
		text, err := GetMultiline(a.reader, "Enter value for "+key, a.out)
		if err != nil {
			return err
		}
		value = text
	}
	r, err := a.session.SaveField(ctx, key, ParseValue(value))
	if err != nil {
		return err
	}
	a.report(r)
	return nil
}

func (a *App) Advance(ctx context.Context, target string) error {
	r, err := a.session.Advance(ctx, target)
	if err != nil {
		return err
	}
	a.report(r)
	return nil
}

func (a *App) Appraise(ctx context.Context) error {
	r, err := a.session.Appraise(ctx)
	if err != nil {
		return err
	}
	a.report(r)
	return nil
}

func (a *App) Pay(ctx context.Context) error {
	p, err := a.session.Pay(ctx)
	if err != nil {
		return err
	}
	a.report(&p.Result)
	if p.Outcome == models.OutcomeOK {
		note := ""
		if p.Replayed {
			note = " (existing payment)"
		}
		fmt.Fprintf(a.out, "Payment %d %s%s\n  client secret: %s\n  return url:    %s\n",
			p.Amount, p.Currency, note, p.ClientSecret, p.ReturnURL)
	}
	return nil
}

func (a *App) Verify(ctx context.Context, reference string) error {
	v, err := a.session.Verify(ctx, reference)
	if err != nil {
		return err
	}
	if v.Idempotent {
		fmt.Fprintf(a.out, "Job %s was already confirmed\n", v.JobID)
	} else {
		fmt.Fprintf(a.out, "Job %s confirmed\n", v.JobID)
	}
	return nil
}

func (a *App) Photo(ctx context.Context, file string) error {
	data, err := a.readFile(file)
	if err != nil {
		return err
	}
	r, err := a.session.UploadPhoto(ctx, filepath.Base(file), data)
	if err != nil {
		return err
	}
	a.report(r)
	return nil
}

func (a *App) Reset(ctx context.Context) error {
	r, err := a.session.Reset(ctx)
	if err != nil {
		return err
	}
	a.report(r)
	return nil
}

func (a *App) Seed(ctx context.Context) error {
	r, err := a.session.Seed(ctx)
	if err != nil {
		return err
	}
	a.report(r)
	return nil
}

func (a *App) report(r *services.Result) {
	if r.Notice != "" {
		fmt.Fprintln(a.out, r.Notice)
	}
	switch r.Outcome {
	case models.OutcomeOK:
		fmt.Fprintln(a.out, "OK")
	case models.OutcomeStepInvalid:
		fmt.Fprintln(a.out, "Not allowed:", r.Reason)
	case models.OutcomeVersionConflict:
		fmt.Fprintln(a.out, "Nothing saved, review the latest draft and retry")
	}
	if r.NextAllowedStep != "" {
		fmt.Fprintln(a.out, "Next step:", r.NextAllowedStep)
	}
	if r.Draft != nil {
		printDraft(a, r.Draft)
	}
}

func printDraft(a *App, d *models.Draft) {
	fmt.Fprintf(a.out, "Draft %s  step=%s  version=%d\n", d.ID, d.CurrentStep, d.Version)
	if b, err := json.MarshalIndent(d.Data, "  ", "  "); err == nil {
		fmt.Fprintf(a.out, "  %s\n", b)
	}
	if len(d.Validation) > 0 {
		keys := make([]string, 0, len(d.Validation))
		for k := range d.Validation {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintln(a.out, "  Issues:")
		for _, k := range keys {
			fmt.Fprintf(a.out, "    %s: %s\n", k, d.Validation[k])
		}
	}
	if d.JobID != nil && d.CurrentStep == "CONFIRMED" {
		fmt.Fprintf(a.out, "  Job: %s\n", *d.JobID)
	}
}
