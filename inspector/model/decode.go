package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type kindProbe struct {
	Kind string `yaml:"Kind"`
}

// NewField returns empty field for kind tag, unknown kinds map to UnknownField
func NewField(kind FieldKind) Field {
	switch kind {
	case KindDatabaseField:
		return &DatabaseField{}
	case KindFormulaField:
		return &FormulaField{}
	case KindGroupNameField:
		return &GroupNameField{}
	case KindParameterField:
		return &ParameterField{}
	case KindRunningTotalField:
		return &RunningTotalField{}
	case KindSpecialVarField:
		return &SpecialVarField{}
	case KindSQLExpressionField:
		return &SQLExpressionField{}
	case KindSummaryField:
		return &SummaryField{}
	}
	return &UnknownField{}
}

// NewObject returns empty report object for kind tag, unknown kinds map to OtherObject
func NewObject(kind ObjectKind) ReportObject {
	switch kind {
	case KindBoxObject:
		return &BoxObject{}
	case KindLineObject:
		return &DrawingObject{}
	case KindFieldHeadingObject:
		return &FieldHeadingObject{}
	case KindFieldObject:
		return &FieldObject{}
	case KindTextObject:
		return &TextObject{}
	}
	return &OtherObject{}
}

func decodeField(node *yaml.Node) (Field, error) {
	probe := &kindProbe{}
	if err := node.Decode(probe); err != nil {
		return nil, err
	}
	field := NewField(FieldKind(probe.Kind))
	if err := node.Decode(field); err != nil {
		return nil, fmt.Errorf("failed to decode %v at line %d: %w", probe.Kind, node.Line, err)
	}
	return field, nil
}

// UnmarshalYAML decodes fields by their Kind tag
func (f *Fields) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("expected field sequence at line %d", node.Line)
	}
	ret := make(Fields, 0, len(node.Content))
	for _, item := range node.Content {
		field, err := decodeField(item)
		if err != nil {
			return err
		}
		ret = append(ret, field)
	}
	*f = ret
	return nil
}

// UnmarshalYAML decodes a field reference, a scalar is taken as formula name
func (r *FieldRef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		r.Field = &UnknownField{FieldHeader: FieldHeader{FormulaName: node.Value}}
		return nil
	}
	field, err := decodeField(node)
	if err != nil {
		return err
	}
	r.Field = field
	return nil
}

// UnmarshalYAML decodes report objects by their Kind tag
func (o *Objects) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("expected report object sequence at line %d", node.Line)
	}
	ret := make(Objects, 0, len(node.Content))
	for _, item := range node.Content {
		probe := &kindProbe{}
		if err := item.Decode(probe); err != nil {
			return err
		}
		object := NewObject(ObjectKind(probe.Kind))
		if err := item.Decode(object); err != nil {
			return fmt.Errorf("failed to decode %v at line %d: %w", probe.Kind, item.Line, err)
		}
		ret = append(ret, object)
	}
	*o = ret
	return nil
}
