package serializer

import (
	"github.com/viant/rptxml/inspector/emitter"
	"github.com/viant/rptxml/inspector/model"
)

// FieldVariant represents closed set of field definition kinds
type FieldVariant int

const (
	FieldOther FieldVariant = iota
	FieldDatabase
	FieldFormula
	FieldGroupName
	FieldParameter
	FieldRunningTotal
	FieldSpecialVar
	FieldSQLExpression
	FieldSummary
)

var fieldElements = map[FieldVariant]string{
	FieldOther:         "FieldDefinition",
	FieldDatabase:      "DatabaseFieldDefinition",
	FieldFormula:       "FormulaFieldDefinition",
	FieldGroupName:     "GroupNameFieldDefinition",
	FieldParameter:     "ParameterFieldDefinition",
	FieldRunningTotal:  "RunningTotalFieldDefinition",
	FieldSpecialVar:    "SpecialVarFieldDefinition",
	FieldSQLExpression: "SQLExpressionFieldDefinition",
	FieldSummary:       "SummaryFieldDefinition",
}

// Element returns data definition element name of the variant
func (v FieldVariant) Element() string {
	if name, ok := fieldElements[v]; ok {
		return name
	}
	return fieldElements[FieldOther]
}

// ClassifyField returns field variant, unrecognized fields are FieldOther
func ClassifyField(field model.Field) FieldVariant {
	switch field.(type) {
	case *model.DatabaseField:
		return FieldDatabase
	case *model.FormulaField:
		return FieldFormula
	case *model.GroupNameField:
		return FieldGroupName
	case *model.ParameterField:
		return FieldParameter
	case *model.RunningTotalField:
		return FieldRunningTotal
	case *model.SpecialVarField:
		return FieldSpecialVar
	case *model.SQLExpressionField:
		return FieldSQLExpression
	case *model.SummaryField:
		return FieldSummary
	}
	return FieldOther
}

// ObjectVariant represents closed set of report object kinds
type ObjectVariant int

const (
	ObjectOther ObjectVariant = iota
	ObjectBox
	ObjectDrawing
	ObjectFieldHeading
	ObjectField
	ObjectText
)

// ClassifyObject returns report object variant, unrecognized objects are ObjectOther
func ClassifyObject(object model.ReportObject) ObjectVariant {
	switch object.(type) {
	case *model.BoxObject:
		return ObjectBox
	case *model.DrawingObject:
		return ObjectDrawing
	case *model.FieldHeadingObject:
		return ObjectFieldHeading
	case *model.FieldObject:
		return ObjectField
	case *model.TextObject:
		return ObjectText
	}
	return ObjectOther
}

// objectElement returns element name for report object
func objectElement(object model.ReportObject) string {
	switch ClassifyObject(object) {
	case ObjectBox:
		return string(model.KindBoxObject)
	case ObjectDrawing:
		return string(model.KindLineObject)
	case ObjectFieldHeading:
		return string(model.KindFieldHeadingObject)
	case ObjectField:
		return string(model.KindFieldObject)
	case ObjectText:
		return string(model.KindTextObject)
	}
	if header := object.Header(); header != nil && emitter.IsName(string(header.Kind)) {
		return string(header.Kind)
	}
	return "ReportObject"
}
