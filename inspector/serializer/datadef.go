package serializer

import (
	"errors"
	"fmt"

	"github.com/viant/rptxml/inspector/model"
)

func (w *walker) dataDefinition(sc *scope) {
	def := sc.report.DataDefinition()
	w.sink.StartElement("DataDefinition")
	w.textElement("GroupSelectionFormula", def.GroupSelectionFormula)
	w.textElement("RecordSelectionFormula", def.RecordSelectionFormula)

	w.sink.StartElement("Groups")
	for _, group := range def.Groups {
		if group == nil {
			continue
		}
		w.sink.StartElement("Group")
		w.attr("ConditionField", group.ConditionField.FormulaName())
		w.sink.EndElement()
	}
	w.sink.EndElement()

	w.sink.StartElement("SortFields")
	for _, sortField := range def.SortFields {
		if sortField == nil {
			continue
		}
		w.sink.StartElement("SortField")
		w.attr("Field", sortField.Field.FormulaName())
		if direction, ok := sortField.SortDirection(); ok {
			w.attr("SortDirection", string(direction))
		}
		w.attr("SortType", sortField.SortType)
		w.sink.EndElement()
	}
	w.sink.EndElement()

	w.fields(sc, "FormulaFieldDefinitions", def.SortedFormulaFields())
	w.fields(sc, "GroupNameFieldDefinitions", def.GroupNameFields)
	parameters, err := sc.report.ParameterFields()
	if err != nil {
		w.issue(sc, CategoryParameters, "ParameterFieldDefinitions", err)
		parameters = nil
	}
	w.fields(sc, "ParameterFieldDefinitions", parameters)
	w.fields(sc, "RunningTotalFieldDefinitions", def.RunningTotalFields)
	w.fields(sc, "SQLExpressionFields", def.SQLExpressionFields)
	w.fields(sc, "SummaryFields", def.SummaryFields)
	w.sink.EndElement()
}

func (w *walker) fields(sc *scope, name string, fields model.Fields) {
	w.sink.StartElement(name)
	for _, field := range fields {
		if field == nil {
			continue
		}
		w.field(sc, field)
	}
	w.sink.EndElement()
}

// field writes a field definition element named by its variant
func (w *walker) field(sc *scope, field model.Field) {
	variant := ClassifyField(field)
	header := model.HeaderOf(field)
	if parameter, ok := field.(*model.ParameterField); ok && sc.root && parameter.IsLinkedToSubreport {
		// linked parameter detail belongs to the sub-report pass
		w.sink.StartElement(variant.Element())
		w.attr("Name", header.Name)
		w.boolAttr("IsLinkedToSubreport", true)
		w.attr("ReportName", parameter.ReportName)
		w.sink.EndElement()
		return
	}
	w.sink.StartElement(variant.Element())
	switch actual := field.(type) {
	case *model.DatabaseField:
		w.common(header, func() {
			w.attr("TableName", actual.TableName)
		})
	case *model.FormulaField:
		w.common(header, nil)
		w.sink.Text(actual.Text)
	case *model.GroupNameField:
		w.attr("FormulaName", header.FormulaName)
		if sc.definition != nil {
			if group, err := sc.definition.GroupNameCondition(header.FormulaName); err != nil {
				w.issue(sc, CategoryField, header.Name, err)
			} else {
				w.attr("Group", group)
			}
		}
		w.attr("GroupNameFieldName", actual.GroupNameFieldName)
		w.attr("Kind", string(header.Kind))
		w.attr("Name", header.Name)
		w.intAttr("NumberOfBytes", header.NumberOfBytes)
		w.attr("ValueType", header.ValueType)
	case *model.ParameterField:
		w.parameter(sc, actual)
	case *model.RunningTotalField:
		w.attr("EvaluationConditionType", actual.EvaluationConditionType)
		w.attr("FormulaName", header.FormulaName)
		w.attr("Kind", string(header.Kind))
		w.attr("Name", header.Name)
		w.intAttr("NumberOfBytes", header.NumberOfBytes)
		w.attr("Operation", actual.Operation)
		w.intAttr("OperationParameter", actual.OperationParameter)
		w.attr("ResetConditionType", actual.ResetConditionType)
		if actual.SecondarySummarizedField != nil {
			w.attr("SecondarySummarizedField", actual.SecondarySummarizedField.FormulaName())
		}
		w.attr("SummarizedField", actual.SummarizedField.FormulaName())
		w.attr("ValueType", header.ValueType)
	case *model.SpecialVarField:
		w.common(header, func() {
			w.attr("SpecialVarType", actual.SpecialVarType)
		})
	case *model.SQLExpressionField:
		w.common(header, func() {
			w.attr("Text", actual.Text)
		})
	case *model.SummaryField:
		w.attr("FormulaName", header.FormulaName)
		if actual.Group != nil {
			w.attr("Group", actual.Group.ConditionField.FormulaName())
		}
		w.attr("Kind", string(header.Kind))
		w.attr("Name", header.Name)
		w.intAttr("NumberOfBytes", header.NumberOfBytes)
		w.attr("Operation", actual.Operation)
		w.intAttr("OperationParameter", actual.OperationParameter)
		if actual.SecondarySummarizedField != nil {
			w.attr("SecondarySummarizedField", actual.SecondarySummarizedField.FormulaName())
		}
		w.attr("SummarizedField", actual.SummarizedField.FormulaName())
		w.attr("ValueType", header.ValueType)
	default:
		w.common(header, nil)
	}
	w.sink.EndElement()
}

// common writes shared field attributes, extra attributes go between NumberOfBytes and ValueType
func (w *walker) common(header *model.FieldHeader, extra func()) {
	w.attr("FormulaName", header.FormulaName)
	w.attr("Kind", string(header.Kind))
	w.attr("Name", header.Name)
	w.intAttr("NumberOfBytes", header.NumberOfBytes)
	if extra != nil {
		extra()
	}
	w.attr("ValueType", header.ValueType)
}

func (w *walker) parameter(sc *scope, field *model.ParameterField) {
	w.boolAttr("AllowCustomCurrentValues", field.AllowCustomCurrentValues)
	w.attr("EditMask", field.EditMask)
	w.boolAttr("EnableAllowEditingDefaultValue", field.EnableAllowEditingDefaultValue)
	w.boolAttr("EnableAllowMultipleValue", field.EnableAllowMultipleValue)
	w.boolAttr("EnableNullValue", field.EnableNullValue)
	w.attr("FormulaName", field.FormulaName)
	w.boolAttr("HasCurrentValue", field.HasCurrentValue)
	w.boolAttr("IsLinkedToSubreport", field.IsLinkedToSubreport)
	w.boolAttr("IsOptionalPrompt", field.IsOptionalPrompt)
	w.attr("Kind", string(field.Kind))
	w.attr("Name", field.Name)
	w.intAttr("NumberOfBytes", field.NumberOfBytes)
	w.attr("ParameterFieldName", field.ParameterFieldName)
	w.attr("ParameterFieldUsage", field.ParameterFieldUsage)
	w.attr("ParameterType", field.ParameterType)
	w.attr("ParameterValueKind", field.ParameterValueKind)
	w.attr("PromptText", field.PromptText)
	w.attr("ReportName", field.ReportName)
	w.attr("ValueType", field.ValueType)

	w.parameterValues("ParameterDefaultValues", "ParameterDefaultValue", field.DefaultValues)
	if sc.definition != nil {
		values, err := sc.definition.ParameterInitialValues(field.Name)
		switch {
		case err == nil:
			w.parameterValues("ParameterInitialValues", "ParameterInitialValue", values)
		case errors.Is(err, model.ErrNotFound):
		default:
			w.issue(sc, CategoryParameters, field.Name, fmt.Errorf("initial values: %w", err))
		}
	}
	w.parameterValues("ParameterCurrentValues", "ParameterCurrentValue", field.CurrentValues)
}

func (w *walker) parameterValues(name, item string, values []model.ParameterValue) {
	w.sink.StartElement(name)
	for i := range values {
		value := &values[i]
		w.sink.StartElement(item)
		w.attr("Description", value.Description)
		kind := value.ValueKind()
		w.attr("Kind", string(kind))
		switch kind {
		case model.ValueRange:
			w.attr("StartValue", value.StartValue)
			w.attr("EndValue", value.EndValue)
			w.boolAttr("IncludeLowerBound", value.IncludeLowerBound)
			w.boolAttr("IncludeUpperBound", value.IncludeUpperBound)
		case model.ValueDynamic:
			// dynamic values have no value representation
		default:
			w.attr("Value", value.Value)
		}
		w.sink.EndElement()
	}
	w.sink.EndElement()
}
