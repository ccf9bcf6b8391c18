package loader

import (
	"fmt"
	"sort"

	"github.com/viant/rptxml/inspector/model"
)

// Definition represents a dumped secondary definition model
type Definition struct {
	GroupConditions map[string]string                 `yaml:"GroupConditions"` // Group name field formula name to group condition field formula name
	InitialValues   map[string][]model.ParameterValue `yaml:"InitialValues"`   // Parameter name to initial values
	MaxLines        map[string]int                    `yaml:"MaxLines"`        // Object name to max number of lines
	Conditions      []*Conditions                     `yaml:"Conditions"`
}

// Conditions represents condition formulas of one format element
type Conditions struct {
	Scope    model.ConditionScope `yaml:"Scope"`
	Owner    string               `yaml:"Owner"` // Area, section or object name, empty for page margins
	Formulas map[string]string    `yaml:"Formulas"`
}

// GroupNameCondition returns group condition field for group name field
func (d *Definition) GroupNameCondition(formulaName string) (string, error) {
	condition, ok := d.GroupConditions[formulaName]
	if !ok {
		return "", fmt.Errorf("group of %v: %w", formulaName, model.ErrNotFound)
	}
	return condition, nil
}

// ParameterInitialValues returns parameter initial values
func (d *Definition) ParameterInitialValues(parameterName string) ([]model.ParameterValue, error) {
	values, ok := d.InitialValues[parameterName]
	if !ok {
		return nil, fmt.Errorf("initial values of %v: %w", parameterName, model.ErrNotFound)
	}
	return values, nil
}

// MaxNumberOfLines returns object max number of lines
func (d *Definition) MaxNumberOfLines(objectName string) (int, bool) {
	lines, ok := d.MaxLines[objectName]
	return lines, ok
}

// ConditionFormulas returns element condition formulas sorted by name
func (d *Definition) ConditionFormulas(scope model.ConditionScope, owner string) []model.ConditionFormula {
	var ret []model.ConditionFormula
	for _, conditions := range d.Conditions {
		if conditions == nil || conditions.Scope != scope || conditions.Owner != owner {
			continue
		}
		for name, text := range conditions.Formulas {
			if text == "" {
				continue
			}
			ret = append(ret, model.ConditionFormula{Name: name, Text: text})
		}
	}
	sort.SliceStable(ret, func(i, j int) bool {
		return ret[i].Name < ret[j].Name
	})
	return ret
}
