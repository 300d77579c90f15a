package catalog

import (
	"bufio"
	"os"
	"strings"

	"adqa/internal/errors"
)

// Catalog is the fixed, ordered battery of audit questions together
// with the sheet each question must be evaluated against.
type Catalog struct {
	questions []string
	sheets    map[string]string
}

// New builds a catalog from an ordered question list and a
// question-to-sheet mapping
func New(questions []string, sheets map[string]string) *Catalog {
	qs := make([]string, len(questions))
	copy(qs, questions)
	m := make(map[string]string, len(sheets))
	for q, s := range sheets {
		m[q] = s
	}
	return &Catalog{questions: qs, sheets: m}
}

// Questions returns the questions in catalog order
func (c *Catalog) Questions() []string {
	out := make([]string, len(c.questions))
	copy(out, c.questions)
	return out
}

// SheetFor resolves the sheet a question is evaluated against. The
// second return is false for an unmapped question; surfacing that is
// the runner's job, not the catalog's.
func (c *Catalog) SheetFor(question string) (string, bool) {
	sheet, ok := c.sheets[question]
	return sheet, ok
}

// Len returns the number of questions
func (c *Catalog) Len() int {
	return len(c.questions)
}

// Loader supplies a catalog to the batch runner
type Loader interface {
	Load() (*Catalog, error)
}

// DefaultLoader serves the built-in catalog
type DefaultLoader struct{}

func (DefaultLoader) Load() (*Catalog, error) {
	return Default(), nil
}

// FileLoader reads the question list from a text file, one question per
// line, blank lines skipped. Sheet mappings come from the built-in map.
type FileLoader struct {
	Path string
}

func (l FileLoader) Load() (*Catalog, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open questions file %s", l.Path)
	}
	defer f.Close()

	var questions []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			questions = append(questions, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read questions file %s", l.Path)
	}

	return New(questions, defaultSheetMap), nil
}
