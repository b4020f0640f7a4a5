package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/roach88/masft/internal/catalog"
	"github.com/roach88/masft/internal/educator"
	"github.com/roach88/masft/internal/history"
	"github.com/roach88/masft/internal/resolve"
	"github.com/roach88/masft/internal/testutil"
)

// RunScenario loads the scenario's catalog and runs it.
func RunScenario(ctx context.Context, scenario *Scenario) (*Result, error) {
	cat, err := loadCatalog(scenario.Catalog)
	if err != nil {
		return nil, err
	}
	return Run(ctx, scenario, cat)
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.LoadDefault()
	}
	return catalog.LoadFile(path)
}

// Run asks every case of scenario against cat and checks the expectations
// and the interaction log.
func Run(ctx context.Context, scenario *Scenario, cat *catalog.Catalog) (*Result, error) {
	st, err := history.Open(":memory:",
		history.WithClock(testutil.NewDeterministicClock()),
		history.WithIDGenerator(testutil.NewSequentialIDs(scenario.Name)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	opts := []educator.Option{
		educator.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
	if scenario.MinScore > 0 {
		opts = append(opts, educator.WithResolverOptions(resolve.WithMinScore(scenario.MinScore)))
	}
	svc := educator.New(cat, st, opts...)

	result := NewResult()
	for _, c := range scenario.Cases {
		ans := svc.Ask(ctx, c.Query)
		if ans.Warning != nil {
			return nil, fmt.Errorf("failed to log query %q: %w", c.Query, ans.Warning)
		}

		cr := describe(c.Query, ans.Result)
		cr.RecordID = ans.Record.ID
		cr.Errors = checkExpect(c.Expect, cr)
		for _, msg := range cr.Errors {
			result.AddError(fmt.Sprintf("%q: %s", c.Query, msg))
		}
		result.Cases = append(result.Cases, cr)
	}

	if err := checkLog(ctx, st, result); err != nil {
		return nil, err
	}
	return result, nil
}

func describe(query string, r resolve.Result) CaseResult {
	cr := CaseResult{Query: query, Outcome: string(r.Outcome())}
	switch v := r.(type) {
	case resolve.Resolved:
		cr.Entity = v.Entity.Identifier()
		cr.Kind = string(v.Entity.Kind())
		cr.Confidence = v.Confidence
	case resolve.Ambiguous:
		for _, e := range v.Candidates {
			cr.Candidates = append(cr.Candidates, e.Identifier())
		}
		cr.Confidence = v.Score
	}
	return cr
}

func checkExpect(e Expect, got CaseResult) []string {
	var errs []string
	if got.Outcome != e.Outcome {
		errs = append(errs, fmt.Sprintf("outcome = %s, expected %s", got.Outcome, e.Outcome))
	}
	if e.Entity != "" && got.Entity != e.Entity {
		errs = append(errs, fmt.Sprintf("entity = %q, expected %q", got.Entity, e.Entity))
	}
	if e.Kind != "" && got.Kind != e.Kind {
		errs = append(errs, fmt.Sprintf("kind = %q, expected %q", got.Kind, e.Kind))
	}
	if len(e.Candidates) > 0 && !slices.Equal(got.Candidates, e.Candidates) {
		errs = append(errs, fmt.Sprintf("candidates = %v, expected %v", got.Candidates, e.Candidates))
	}
	if e.Confidence != 0 && got.Confidence != e.Confidence {
		errs = append(errs, fmt.Sprintf("confidence = %d, expected %d", got.Confidence, e.Confidence))
	}
	if e.MinConfidence != 0 && got.Confidence < e.MinConfidence {
		errs = append(errs, fmt.Sprintf("confidence = %d, expected at least %d", got.Confidence, e.MinConfidence))
	}
	return errs
}

// checkLog verifies one record per case, newest first, matching its case.
func checkLog(ctx context.Context, log history.Log, result *Result) error {
	records, err := log.History(ctx, len(result.Cases))
	if err != nil {
		return fmt.Errorf("failed to read interaction log: %w", err)
	}
	if len(records) != len(result.Cases) {
		result.AddError(fmt.Sprintf("log holds %d records, expected %d", len(records), len(result.Cases)))
		return nil
	}

	for i, rec := range records {
		c := result.Cases[len(result.Cases)-1-i]
		if rec.ID != c.RecordID || rec.Query != c.Query {
			result.AddError(fmt.Sprintf("%q: log record %d is %q (%s)", c.Query, i, rec.Query, rec.ID))
			continue
		}
		if string(rec.Outcome) != c.Outcome {
			result.AddError(fmt.Sprintf("%q: logged outcome %s, result was %s", c.Query, rec.Outcome, c.Outcome))
		}
		if (rec.ResolvedName != nil) != (c.Outcome == string(resolve.OutcomeResolved)) {
			result.AddError(fmt.Sprintf("%q: logged resolved name does not match outcome %s", c.Query, c.Outcome))
		}
		if rec.ResolvedName != nil && *rec.ResolvedName != c.Entity {
			result.AddError(fmt.Sprintf("%q: logged entity %q, result was %q", c.Query, *rec.ResolvedName, c.Entity))
		}
	}
	return nil
}
