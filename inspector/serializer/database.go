package serializer

import (
	"github.com/viant/rptxml/inspector/model"
)

func (w *walker) database(database *model.Database) {
	w.sink.StartElement("Database")
	w.sink.StartElement("TableLinks")
	for _, link := range database.TableLinks {
		if link == nil {
			continue
		}
		w.sink.StartElement("TableLink")
		w.attr("JoinType", link.JoinType)
		w.plainFields("SourceFields", link.SourceFields)
		w.plainFields("DestinationFields", link.DestinationFields)
		w.sink.EndElement()
	}
	w.sink.EndElement()

	w.sink.StartElement("Tables")
	for _, table := range database.Tables {
		if table == nil {
			continue
		}
		w.sink.StartElement("Table")
		w.attr("Alias", table.Alias)
		w.attr("ClassName", table.ClassName)
		w.attr("Name", table.Name)
		w.sink.StartElement("ConnectionInfo")
		for _, property := range table.ConnectionInfo {
			w.sink.StartElement("Property")
			w.attr("Name", property.Name)
			w.attr("Value", property.Value)
			w.sink.EndElement()
		}
		w.sink.EndElement()
		if table.CommandText != "" {
			w.textElement("Command", table.CommandText)
		}
		w.plainFields("Fields", table.Fields)
		w.sink.EndElement()
	}
	w.sink.EndElement()
	w.sink.EndElement()
}

// plainFields writes fields with shared attributes only, database fields add their table
func (w *walker) plainFields(name string, fields model.Fields) {
	w.sink.StartElement(name)
	for _, field := range fields {
		header := model.HeaderOf(field)
		w.sink.StartElement("Field")
		w.attr("FormulaName", header.FormulaName)
		w.attr("Kind", string(header.Kind))
		w.attr("Name", header.Name)
		w.intAttr("NumberOfBytes", header.NumberOfBytes)
		if database, ok := field.(*model.DatabaseField); ok {
			w.attr("TableName", database.TableName)
		}
		w.attr("ValueType", header.ValueType)
		w.sink.EndElement()
	}
	w.sink.EndElement()
}
