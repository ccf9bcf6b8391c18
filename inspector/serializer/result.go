package serializer

import (
	"fmt"
)

// Category represents recoverable failure category
type Category string

const (
	CategorySubreport       Category = "subreport"
	CategoryDefinitionModel Category = "definition_model"
	CategoryParameters      Category = "parameters"
	CategoryField           Category = "field"
	CategoryContainer       Category = "container"
)

// Categories lists issue categories in reporting order
var Categories = []Category{CategorySubreport, CategoryDefinitionModel, CategoryParameters, CategoryField, CategoryContainer}

// Issue represents a recoverable failure; the element it occurred in was written incomplete or omitted
type Issue struct {
	Category Category
	Report   string // Slash joined report path
	Element  string // Field, object, stream or sub-report name
	Err      error
}

// Error returns issue description
func (i *Issue) Error() string {
	if i.Element == "" {
		return fmt.Sprintf("%v: %v: %v", i.Category, i.Report, i.Err)
	}
	return fmt.Sprintf("%v: %v/%v: %v", i.Category, i.Report, i.Element, i.Err)
}

// Unwrap returns underlying error
func (i *Issue) Unwrap() error {
	return i.Err
}

// Result represents serialization outcome
type Result struct {
	Reports  int // Report elements written, root included
	Embedded int // Embedded streams described
	Issues   []*Issue
}

// Count returns number of issues in category
func (r *Result) Count(category Category) int {
	count := 0
	for _, issue := range r.Issues {
		if issue.Category == category {
			count++
		}
	}
	return count
}

func (r *Result) merge(other *Result) {
	r.Reports += other.Reports
	r.Embedded += other.Embedded
	r.Issues = append(r.Issues, other.Issues...)
}

func (w *walker) issue(sc *scope, category Category, element string, err error) {
	issue := &Issue{Category: category, Report: sc.location(), Element: element, Err: err}
	w.result.Issues = append(w.result.Issues, issue)
	w.logger.Warn().
		Str("category", string(category)).
		Str("report", issue.Report).
		Str("element", element).
		Err(err).
		Msg("element written incomplete")
}
