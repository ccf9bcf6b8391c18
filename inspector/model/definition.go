package model

// ConditionScope represents the format element a condition formula is attached to
type ConditionScope string

const (
	ScopePageMargins  ConditionScope = "PageMargins"
	ScopeAreaFormat   ConditionScope = "AreaFormat"
	ScopeSection      ConditionScope = "SectionFormat"
	ScopeBorder       ConditionScope = "Border"
	ScopeObjectFormat ConditionScope = "ObjectFormat"
	ScopeFont         ConditionScope = "Font"
)

// ConditionFormula represents a formula driving a format attribute, e.g. EnableSuppress
type ConditionFormula struct {
	Name string `yaml:"Name"`
	Text string `yaml:"Text"`
}

// DefinitionModel is the secondary report definition view; lookups are best effort
type DefinitionModel interface {
	// GroupNameCondition returns condition field formula name of the group a group name field summarizes
	GroupNameCondition(formulaName string) (string, error)

	// ParameterInitialValues returns initial values of a parameter field
	ParameterInitialValues(parameterName string) ([]ParameterValue, error)

	// MaxNumberOfLines returns maximum number of lines of a text bearing object
	MaxNumberOfLines(objectName string) (int, bool)

	// ConditionFormulas returns formulas attached to owner element sorted by name, owner is empty for report level scopes
	ConditionFormulas(scope ConditionScope, owner string) []ConditionFormula
}
