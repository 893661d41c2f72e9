package entities

import (
	"fmt"
	"io"
)

// Category classifies the outcome of one repository in a run.
type Category int

const (
	Cloned Category = iota
	Updated
	Dirty
	Failed
)

// categories lists every Category in report order.
var categories = []Category{Cloned, Updated, Dirty, Failed} //nolint:gochecknoglobals // fixed order

func (c Category) String() string {
	switch c {
	case Cloned:
		return "Cloned"
	case Updated:
		return "Updated"
	case Dirty:
		return "Dirty"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Outcome is the single terminal result of processing one repository.
type Outcome struct {
	Category   Category
	Repository string
	Detail     string // Failed only
}

// NewFailedOutcome converts a stage error into a Failed outcome.
func NewFailedOutcome(err *SyncError) Outcome {
	return Outcome{Category: Failed, Repository: err.Repository, Detail: err.Detail()}
}

func (o Outcome) String() string {
	if o.Detail != "" {
		return fmt.Sprintf("%s: %s", o.Repository, o.Detail)
	}
	return o.Repository
}

// ReportSection is one non-empty category of a RunReport.
type ReportSection struct {
	Category Category
	Entries  []Outcome
}

// Header is the line printed before the section entries.
func (s ReportSection) Header() string {
	return s.Category.String() + " repos:"
}

// RunReport accumulates outcomes across a run. It is append-only.
type RunReport struct {
	entries map[Category][]Outcome
}

// NewRunReport creates an empty report.
func NewRunReport() *RunReport {
	return &RunReport{entries: make(map[Category][]Outcome)}
}

// Record appends the outcome to its category.
func (r *RunReport) Record(outcome Outcome) {
	r.entries[outcome.Category] = append(r.entries[outcome.Category], outcome)
}

// Entries returns a copy of the outcomes recorded under category.
func (r *RunReport) Entries(category Category) []Outcome {
	return append([]Outcome(nil), r.entries[category]...)
}

// Names returns the repository names recorded under category.
func (r *RunReport) Names(category Category) []string {
	names := make([]string, 0, len(r.entries[category]))
	for _, o := range r.entries[category] {
		names = append(names, o.Repository)
	}
	return names
}

// Total is the number of outcomes recorded in every category.
func (r *RunReport) Total() int {
	total := 0
	for _, c := range categories {
		total += len(r.entries[c])
	}
	return total
}

// Sections returns the non-empty categories in report order.
func (r *RunReport) Sections() []ReportSection {
	var sections []ReportSection
	for _, c := range categories {
		if len(r.entries[c]) == 0 {
			continue
		}
		sections = append(sections, ReportSection{Category: c, Entries: r.Entries(c)})
	}
	return sections
}

// Render writes a header and one tab-indented line per entry for each
// non-empty section.
func (r *RunReport) Render(w io.Writer) error {
	return r.RenderBy(func(Category) io.Writer { return w })
}

// RenderBy is Render with the destination chosen per category. Every line
// is written with a single Write call.
func (r *RunReport) RenderBy(writerFor func(Category) io.Writer) error {
	for _, section := range r.Sections() {
		w := writerFor(section.Category)
		if _, err := fmt.Fprintln(w, section.Header()); err != nil {
			return err
		}
		for _, entry := range section.Entries {
			if _, err := fmt.Fprintf(w, "\t%s\n", entry); err != nil {
				return err
			}
		}
	}
	return nil
}
