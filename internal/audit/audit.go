// Package audit implements the rule-evaluation engine: a fixed battery
// of account-quality rules dispatched by ordered keyword matching over
// the question text, each rule validating its required columns before
// filtering and aggregating rows into a verdict.
package audit

import (
	"fmt"
	"strings"

	"adqa/domain/table"
	"adqa/domain/verdict"
	"adqa/internal"
)

// LinkChecker reports which members of a URL set are broken. The only
// rule with a network dependency uses it; tests inject a fake.
type LinkChecker interface {
	Broken(urls []string) map[string]bool
}

// ChartRenderer persists a chart built from pure counts and returns a
// reference the page renderer can embed. Keeps rule evaluation itself
// side-effect-free.
type ChartRenderer interface {
	RenderPie(title string, labels []string, values []float64) (string, error)
}

// Rule pairs a question predicate with an evaluation procedure. The
// predicate receives the lower-cased question text.
type Rule struct {
	Name     string
	Matches  func(question string) bool
	Evaluate func(t *table.Table) verdict.Verdict
}

// Evaluator dispatches a question to the first matching rule. Predicates
// are not mutually exclusive, so registry order is load-bearing: the
// rules are tested top to bottom and the first match wins.
type Evaluator struct {
	rules []Rule
	log   *internal.Logger
}

// NewEvaluator builds the rule battery with its collaborators wired in
func NewEvaluator(links LinkChecker, charts ChartRenderer) *Evaluator {
	return &Evaluator{
		rules: ruleSet(links, charts),
		log:   internal.DefaultLogger,
	}
}

// Match returns the first rule whose predicate holds for the question
func (e *Evaluator) Match(question string) (Rule, bool) {
	q := strings.ToLower(question)
	for _, rule := range e.rules {
		if rule.Matches(q) {
			return rule, true
		}
	}
	return Rule{}, false
}

// Evaluate runs the matching rule against the table. Any internal fault
// is recovered at this boundary and converted into an error verdict
// carrying the fault's message; nothing is raised past the engine.
func (e *Evaluator) Evaluate(question string, t *table.Table) (v verdict.Verdict) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("[Evaluator] rule panicked for question %q: %v", question, r)
			v = verdict.Errorf("Error: %v", r)
		}
	}()

	rule, ok := e.Match(question)
	if !ok {
		return verdict.Info("Matched your question but logic for it isn't implemented yet.")
	}

	e.log.Debug("[Evaluator] question %q matched rule %s", question, rule.Name)

	// Rules see a trimmed-header working copy, never the caller's table.
	return rule.Evaluate(t.Normalize())
}

// containsFold reports whether s contains substr, case-insensitively
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// cellUpper returns the upper-cased textual form of a cell
func cellUpper(c table.Cell) string {
	return strings.ToUpper(c.String())
}

// detail projects rows onto columns, deduplicating on the displayed
// values. A missing display column faults the evaluation, matching the
// engine's treat-faults-as-error-verdicts contract.
func detail(t *table.Table, rows []table.Row, columns ...string) verdict.Detail {
	projected, err := t.SelectDistinct(rows, columns...)
	if err != nil {
		panic(fmt.Sprintf("%v", err))
	}
	return verdict.Detail{Columns: columns, Rows: projected}
}
