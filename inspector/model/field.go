package model

// FieldKind represents field definition kind tag
type FieldKind string

const (
	// Field kinds
	KindDatabaseField      FieldKind = "DatabaseField"
	KindFormulaField       FieldKind = "FormulaField"
	KindGroupNameField     FieldKind = "GroupNameField"
	KindParameterField     FieldKind = "ParameterField"
	KindRunningTotalField  FieldKind = "RunningTotalField"
	KindSpecialVarField    FieldKind = "SpecialVarField"
	KindSQLExpressionField FieldKind = "SQLExpressionField"
	KindSummaryField       FieldKind = "SummaryField"
)

// Field represents a field definition of any kind
type Field interface {
	Header() *FieldHeader
}

// FieldHeader represents attributes shared by all field kinds
type FieldHeader struct {
	FormulaName   string    `yaml:"FormulaName"`   // Stable identifier, e.g. {@Total}
	Name          string    `yaml:"Name"`          // Display name
	Kind          FieldKind `yaml:"Kind"`          // Kind tag
	NumberOfBytes int       `yaml:"NumberOfBytes"` // Size hint
	ValueType     string    `yaml:"ValueType"`     // Declared value type, e.g. StringField
}

// Header returns shared field attributes
func (h *FieldHeader) Header() *FieldHeader {
	return h
}

// HeaderOf returns field header or an empty header for nil field
func HeaderOf(field Field) *FieldHeader {
	if field == nil {
		return &FieldHeader{}
	}
	if header := field.Header(); header != nil {
		return header
	}
	return &FieldHeader{}
}

// DatabaseField represents a table column
type DatabaseField struct {
	FieldHeader `yaml:",inline"`
	TableName   string `yaml:"TableName"`
}

// FormulaField represents a formula
type FormulaField struct {
	FieldHeader `yaml:",inline"`
	Text        string `yaml:"Text"` // Formula text
}

// GroupNameField represents a group name field, its group condition is resolved through the definition model
type GroupNameField struct {
	FieldHeader        `yaml:",inline"`
	GroupNameFieldName string `yaml:"GroupNameFieldName"`
}

// ParameterField represents a report parameter
type ParameterField struct {
	FieldHeader                    `yaml:",inline"`
	AllowCustomCurrentValues       bool             `yaml:"AllowCustomCurrentValues"`
	EditMask                       string           `yaml:"EditMask"`
	EnableAllowEditingDefaultValue bool             `yaml:"EnableAllowEditingDefaultValue"`
	EnableAllowMultipleValue       bool             `yaml:"EnableAllowMultipleValue"`
	EnableNullValue                bool             `yaml:"EnableNullValue"`
	HasCurrentValue                bool             `yaml:"HasCurrentValue"`
	IsLinkedToSubreport            bool             `yaml:"IsLinkedToSubreport"`
	IsOptionalPrompt               bool             `yaml:"IsOptionalPrompt"`
	ParameterFieldName             string           `yaml:"ParameterFieldName"`
	ParameterFieldUsage            string           `yaml:"ParameterFieldUsage"`
	ParameterType                  string           `yaml:"ParameterType"`
	ParameterValueKind             string           `yaml:"ParameterValueKind"`
	PromptText                     string           `yaml:"PromptText"`
	ReportName                     string           `yaml:"ReportName"` // Target report of a linked parameter
	DefaultValues                  []ParameterValue `yaml:"DefaultValues"`
	CurrentValues                  []ParameterValue `yaml:"CurrentValues"`
}

// ParameterValueKind represents parameter value shape
type ParameterValueKind string

const (
	ValueDiscrete ParameterValueKind = "Discrete"
	ValueRange    ParameterValueKind = "Range"
	ValueDynamic  ParameterValueKind = "Dynamic"
)

// ParameterValue represents a default, initial or current parameter value
type ParameterValue struct {
	Kind              ParameterValueKind `yaml:"Kind"` // Empty means Discrete
	Description       string             `yaml:"Description"`
	Value             string             `yaml:"Value"`
	StartValue        string             `yaml:"StartValue"`
	EndValue          string             `yaml:"EndValue"`
	IncludeLowerBound bool               `yaml:"IncludeLowerBound"`
	IncludeUpperBound bool               `yaml:"IncludeUpperBound"`
}

// ValueKind returns value kind defaulting to Discrete
func (v *ParameterValue) ValueKind() ParameterValueKind {
	if v.Kind == "" {
		return ValueDiscrete
	}
	return v.Kind
}

// RunningTotalField represents a running total
type RunningTotalField struct {
	FieldHeader              `yaml:",inline"`
	EvaluationConditionType  string    `yaml:"EvaluationConditionType"`
	Operation                string    `yaml:"Operation"`
	OperationParameter       int       `yaml:"OperationParameter"`
	ResetConditionType       string    `yaml:"ResetConditionType"`
	SummarizedField          FieldRef  `yaml:"SummarizedField"`
	SecondarySummarizedField *FieldRef `yaml:"SecondarySummarizedField"`
}

// SpecialVarField represents an engine provided variable, e.g. PrintDate
type SpecialVarField struct {
	FieldHeader    `yaml:",inline"`
	SpecialVarType string `yaml:"SpecialVarType"`
}

// SQLExpressionField represents a server side expression
type SQLExpressionField struct {
	FieldHeader `yaml:",inline"`
	Text        string `yaml:"Text"`
}

// SummaryField represents a summary, Group is empty for grand totals
type SummaryField struct {
	FieldHeader              `yaml:",inline"`
	Group                    *Group    `yaml:"Group"`
	Operation                string    `yaml:"Operation"`
	OperationParameter       int       `yaml:"OperationParameter"`
	SummarizedField          FieldRef  `yaml:"SummarizedField"`
	SecondarySummarizedField *FieldRef `yaml:"SecondarySummarizedField"`
}

// UnknownField represents a field kind the model does not describe
type UnknownField struct {
	FieldHeader `yaml:",inline"`
}

// Fields represents an ordered collection of fields of mixed kinds
type Fields []Field

// FieldRef represents a reference to a single field
type FieldRef struct {
	Field Field
}

// FormulaName returns referenced field formula name or empty string
func (r *FieldRef) FormulaName() string {
	if r == nil {
		return ""
	}
	return HeaderOf(r.Field).FormulaName
}
