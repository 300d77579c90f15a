package verdict

import "fmt"

// Status represents the outcome class of a rule evaluation
type Status string

const (
	StatusPass  Status = "pass"
	StatusFail  Status = "fail"
	StatusInfo  Status = "info"
	StatusError Status = "error"
)

// Detail is an ordered table of supporting rows attached to a verdict
type Detail struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// Verdict is the result of evaluating one audit question against a
// sheet: a sentence, optionally followed by detail tables and a chart
// reference. Verdicts are immutable once produced.
type Verdict struct {
	Status   Status
	Text     string
	Details  []Detail
	ChartRef string
}

// HasDetail reports whether the verdict carries tabular detail
func (v Verdict) HasDetail() bool {
	return len(v.Details) > 0
}

// Pass creates a passing verdict
func Pass(format string, args ...interface{}) Verdict {
	return Verdict{Status: StatusPass, Text: fmt.Sprintf(format, args...)}
}

// Fail creates a failing verdict
func Fail(format string, args ...interface{}) Verdict {
	return Verdict{Status: StatusFail, Text: fmt.Sprintf(format, args...)}
}

// Info creates an informational verdict
func Info(format string, args ...interface{}) Verdict {
	return Verdict{Status: StatusInfo, Text: fmt.Sprintf(format, args...)}
}

// Errorf creates an error verdict
func Errorf(format string, args ...interface{}) Verdict {
	return Verdict{Status: StatusError, Text: fmt.Sprintf(format, args...)}
}

// WithDetail returns a copy of the verdict with a detail table appended
func (v Verdict) WithDetail(d Detail) Verdict {
	details := make([]Detail, 0, len(v.Details)+1)
	details = append(details, v.Details...)
	details = append(details, d)
	v.Details = details
	return v
}

// WithChart returns a copy of the verdict carrying a chart reference
func (v Verdict) WithChart(ref string) Verdict {
	v.ChartRef = ref
	return v
}

// Record pairs a question with its verdict and the resolved sheet name.
// SheetName is empty when the question had no sheet mapping.
type Record struct {
	Question  string
	SheetName string
	Verdict   Verdict
}
