package model

import (
	"sort"
)

// SortDirection represents sort field direction
type SortDirection string

const (
	SortAscending  SortDirection = "AscendingOrder"
	SortDescending SortDirection = "DescendingOrder"
	SortOriginal   SortDirection = "OriginalOrder"
	SortSpecified  SortDirection = "SpecifiedOrder"
)

// DataDefinition represents report formulas, grouping, sorting and field collections
type DataDefinition struct {
	GroupSelectionFormula  string       `yaml:"GroupSelectionFormula"`
	RecordSelectionFormula string       `yaml:"RecordSelectionFormula"`
	Groups                 []*Group     `yaml:"Groups"`
	SortFields             []*SortField `yaml:"SortFields"`
	FormulaFields          Fields       `yaml:"FormulaFields"`
	GroupNameFields        Fields       `yaml:"GroupNameFields"`
	ParameterFields        Fields       `yaml:"ParameterFields"` // Enumerated through Report.ParameterFields
	RunningTotalFields     Fields       `yaml:"RunningTotalFields"`
	SQLExpressionFields    Fields       `yaml:"SQLExpressionFields"`
	SummaryFields          Fields       `yaml:"SummaryFields"`
}

// SortedFormulaFields returns formula fields ordered by name, model order is kept for equal names
func (d *DataDefinition) SortedFormulaFields() Fields {
	result := make(Fields, len(d.FormulaFields))
	copy(result, d.FormulaFields)
	sort.SliceStable(result, func(i, j int) bool {
		return HeaderOf(result[i]).Name < HeaderOf(result[j]).Name
	})
	return result
}

// Group represents a report group
type Group struct {
	ConditionField FieldRef `yaml:"ConditionField"`
}

// SortField represents a record or group sort
type SortField struct {
	Field     FieldRef      `yaml:"Field"`
	Direction SortDirection `yaml:"SortDirection"` // Empty when the field kind cannot represent a direction
	SortType  string        `yaml:"SortType"`
}

// SortDirection returns sort direction, ok is false when the sorted field kind does not support one
func (s *SortField) SortDirection() (SortDirection, bool) {
	if s.Direction == "" {
		return "", false
	}
	return s.Direction, true
}
