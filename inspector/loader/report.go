package loader

import (
	"errors"
	"fmt"

	"github.com/viant/rptxml/inspector/model"
)

// ErrClosed indicates use of a closed report
var ErrClosed = errors.New("report closed")

// dump mirrors the reporting engine object model
type dump struct {
	Name             string                  `yaml:"Name"`
	model.Origin     `yaml:",inline"`        // Root report only
	Subreports       []*subreport            `yaml:"Subreports"`
	Database         *model.Database         `yaml:"Database"`
	DataDefinition   *model.DataDefinition   `yaml:"DataDefinition"`
	CustomFunctions  []*model.CustomFunction `yaml:"CustomFunctions"`
	ReportDefinition *model.ReportDefinition `yaml:"ReportDefinition"`
	DefinitionModel  *Definition             `yaml:"DefinitionModel"`
}

// subreport represents sub-report reference, either inline or by location
type subreport struct {
	Name     string `yaml:"Name"`
	Location string `yaml:"Location"` // Relative to the parent dump
	Report   *dump  `yaml:"Report"`
	loaded   *Report
	err      error
}

// Report represents a loaded report model
type Report struct {
	dump      *dump
	location  string
	subreport bool
	closed    bool
}

// Name returns report name
func (r *Report) Name() string {
	return r.dump.Name
}

// Location returns dump URL
func (r *Report) Location() string {
	return r.location
}

// IsSubreport returns true for sub-reports
func (r *Report) IsSubreport() bool {
	return r.subreport
}

// Origin returns root report information
func (r *Report) Origin() *model.Origin {
	if r.subreport {
		return nil
	}
	return &r.dump.Origin
}

// SubreportNames returns sub-report names in model order
func (r *Report) SubreportNames() []string {
	ret := make([]string, 0, len(r.dump.Subreports))
	for _, sub := range r.dump.Subreports {
		ret = append(ret, sub.Name)
	}
	return ret
}

// OpenSubreport returns named sub-report or its load error
func (r *Report) OpenSubreport(name string) (model.Report, error) {
	if r.closed {
		return nil, ErrClosed
	}
	for _, sub := range r.dump.Subreports {
		if sub.Name != name {
			continue
		}
		if sub.err != nil {
			return nil, sub.err
		}
		// Close of a sub-report view does not release the shared dump
		return &Report{dump: sub.loaded.dump, location: sub.loaded.location, subreport: true}, nil
	}
	return nil, fmt.Errorf("subreport %v: %w", name, model.ErrNotFound)
}

// Database returns tables and links
func (r *Report) Database() *model.Database {
	if r.dump.Database == nil {
		return &model.Database{}
	}
	return r.dump.Database
}

// DataDefinition returns data definition
func (r *Report) DataDefinition() *model.DataDefinition {
	if r.dump.DataDefinition == nil {
		return &model.DataDefinition{}
	}
	return r.dump.DataDefinition
}

// ParameterFields returns parameter fields, it fails when the collection holds other field kinds
func (r *Report) ParameterFields() (model.Fields, error) {
	fields := r.DataDefinition().ParameterFields
	for _, field := range fields {
		if _, ok := field.(*model.ParameterField); !ok {
			header := model.HeaderOf(field)
			return nil, fmt.Errorf("parameter field %v has unexpected kind %v", header.Name, header.Kind)
		}
	}
	return fields, nil
}

// CustomFunctions returns custom functions
func (r *Report) CustomFunctions() []*model.CustomFunction {
	return r.dump.CustomFunctions
}

// ReportDefinition returns layout
func (r *Report) ReportDefinition() *model.ReportDefinition {
	if r.dump.ReportDefinition == nil {
		return &model.ReportDefinition{}
	}
	return r.dump.ReportDefinition
}

// DefinitionModel returns secondary definition model
func (r *Report) DefinitionModel() (model.DefinitionModel, error) {
	if r.dump.DefinitionModel == nil {
		return nil, model.ErrNoDefinitionModel
	}
	return r.dump.DefinitionModel, nil
}

// Close releases report
func (r *Report) Close() error {
	r.closed = true
	return nil
}
