package audit

import (
	"adqa/domain/table"
	"adqa/domain/verdict"
	"adqa/internal"
	"adqa/internal/catalog"
)

// Runner evaluates the whole catalog against a sheet collection,
// producing exactly one record per question, in catalog order. A single
// question's failure never aborts the batch; resolution and evaluation
// faults become per-record error verdicts.
type Runner struct {
	eval *Evaluator
	log  *internal.Logger
}

// NewRunner creates a batch runner over the given evaluator
func NewRunner(eval *Evaluator) *Runner {
	return &Runner{eval: eval, log: internal.DefaultLogger}
}

// Run evaluates every catalog question against its mapped sheet. The
// runner holds no state between calls; each run reads only the sheets
// it is handed.
func (r *Runner) Run(cat *catalog.Catalog, sheets table.SheetSet) []verdict.Record {
	records := make([]verdict.Record, 0, cat.Len())

	for _, question := range cat.Questions() {
		sheetName, ok := cat.SheetFor(question)
		if !ok {
			r.log.Warn("[Runner] no sheet mapping for question %q", question)
			records = append(records, verdict.Record{
				Question: question,
				Verdict:  verdict.Errorf("No sheet mapping defined for this question."),
			})
			continue
		}

		sheet, found := sheets[sheetName]
		if !found {
			r.log.Warn("[Runner] sheet %q not found for question %q", sheetName, question)
			records = append(records, verdict.Record{
				Question:  question,
				SheetName: sheetName,
				Verdict:   verdict.Errorf("Sheet '%s' not found in uploaded Excel file.", sheetName),
			})
			continue
		}

		records = append(records, verdict.Record{
			Question:  question,
			SheetName: sheetName,
			Verdict:   r.evaluate(question, sheetName, sheet),
		})
	}

	return records
}

// evaluate guards the batch against faults escaping the evaluator. The
// evaluator recovers rule panics itself; this is the outer layer for
// anything outside a rule body.
func (r *Runner) evaluate(question, sheetName string, sheet *table.Table) (v verdict.Verdict) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("[Runner] evaluation fault for question %q: %v", question, rec)
			v = verdict.Errorf("Error analyzing '%s': %v", sheetName, rec)
		}
	}()
	return r.eval.Evaluate(question, sheet)
}
