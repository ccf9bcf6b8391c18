package serializer

import (
	"github.com/viant/rptxml/inspector/model"
)

func (w *walker) reportDefinition(sc *scope) {
	w.sink.StartElement("ReportDefinition")
	w.sink.StartElement("Areas")
	for _, area := range sc.report.ReportDefinition().Areas {
		if area == nil {
			continue
		}
		w.area(sc, area)
	}
	w.sink.EndElement()
	w.sink.EndElement()
}

func (w *walker) area(sc *scope, area *model.Area) {
	w.sink.StartElement("Area")
	w.attr("Kind", area.Kind)
	w.attr("Name", area.Name)

	format := area.AreaFormat
	if format == nil {
		format = &model.AreaFormat{}
	}
	w.sink.StartElement("AreaFormat")
	w.boolAttr("EnableHideForDrillDown", format.EnableHideForDrillDown)
	w.boolAttr("EnableKeepTogether", format.EnableKeepTogether)
	w.boolAttr("EnableNewPageAfter", format.EnableNewPageAfter)
	w.boolAttr("EnableNewPageBefore", format.EnableNewPageBefore)
	w.boolAttr("EnablePrintAtBottomOfPage", format.EnablePrintAtBottomOfPage)
	w.boolAttr("EnableResetPageNumberAfter", format.EnableResetPageNumberAfter)
	w.boolAttr("EnableSuppress", format.EnableSuppress)
	if area.Kind == model.AreaKindGroupHeader {
		group := format.GroupAreaFormat
		if group == nil {
			group = &model.GroupAreaFormat{}
		}
		w.sink.StartElement("GroupAreaFormat")
		w.boolAttr("EnableKeepGroupTogether", group.EnableKeepGroupTogether)
		w.boolAttr("EnableRepeatGroupHeader", group.EnableRepeatGroupHeader)
		w.intAttr("VisibleGroupNumberPerPage", group.VisibleGroupNumberPerPage)
		w.sink.EndElement()
	}
	w.conditionFormulas(sc, model.ScopeAreaFormat, area.Name)
	w.sink.EndElement()

	w.sink.StartElement("Sections")
	for _, section := range area.Sections {
		if section == nil {
			continue
		}
		w.section(sc, section)
	}
	w.sink.EndElement()
	w.sink.EndElement()
}

func (w *walker) section(sc *scope, section *model.Section) {
	w.sink.StartElement("Section")
	w.intAttr("Height", section.Height)
	w.attr("Kind", section.Kind)
	w.attr("Name", section.Name)

	format := section.SectionFormat
	if format == nil {
		format = &model.SectionFormat{}
	}
	w.sink.StartElement("SectionFormat")
	w.attr("CssClass", format.CssClass)
	w.boolAttr("EnableKeepTogether", format.EnableKeepTogether)
	w.boolAttr("EnableNewPageAfter", format.EnableNewPageAfter)
	w.boolAttr("EnableNewPageBefore", format.EnableNewPageBefore)
	w.boolAttr("EnablePrintAtBottomOfPage", format.EnablePrintAtBottomOfPage)
	w.boolAttr("EnableResetPageNumberAfter", format.EnableResetPageNumberAfter)
	w.boolAttr("EnableSuppress", format.EnableSuppress)
	w.boolAttr("EnableSuppressIfBlank", format.EnableSuppressIfBlank)
	w.boolAttr("EnableUnderlaySection", format.EnableUnderlaySection)
	w.color("BackgroundColor", format.BackgroundColor)
	w.conditionFormulas(sc, model.ScopeSection, section.Name)
	w.sink.EndElement()

	w.sink.StartElement("ReportObjects")
	for _, object := range section.ReportObjects {
		if object == nil || object.Header() == nil {
			continue
		}
		w.object(sc, object)
	}
	w.sink.EndElement()
	w.sink.EndElement()
}

// object writes a report object element named by its variant
func (w *walker) object(sc *scope, object model.ReportObject) {
	header := object.Header()
	w.sink.StartElement(objectElement(object))
	w.attr("Name", header.Name)
	w.attr("Kind", string(header.Kind))
	w.intAttr("Top", header.Top)
	w.intAttr("Left", header.Left)
	w.intAttr("Width", header.Width)
	w.intAttr("Height", header.Height)

	switch actual := object.(type) {
	case *model.BoxObject:
		w.line(&actual.Line)
		w.color("FillColor", actual.FillColor)
	case *model.DrawingObject:
		w.line(&actual.Line)
	case *model.FieldHeadingObject:
		w.attr("FieldObjectName", actual.FieldObjectName)
		w.maxLines(sc, header.Name)
		w.attr("Text", actual.Text)
		w.color("Color", actual.Color)
		w.font(sc, header.Name, actual.Font)
	case *model.FieldObject:
		w.attr("DataSource", actual.DataSource.FormulaName())
		w.maxLines(sc, header.Name)
		w.color("Color", actual.Color)
		w.font(sc, header.Name, actual.Font)
	case *model.TextObject:
		w.maxLines(sc, header.Name)
		w.attr("Text", actual.Text)
		w.color("Color", actual.Color)
		w.font(sc, header.Name, actual.Font)
	}
	w.border(sc, header)
	w.objectFormat(sc, header)
	w.sink.EndElement()
}

// line writes drawing attributes followed by the LineColor element
func (w *walker) line(line *model.Line) {
	w.intAttr("Bottom", line.Bottom)
	w.boolAttr("EnableExtendToBottomOfSection", line.EnableExtendToBottomOfSection)
	w.attr("EndSectionName", line.EndSectionName)
	w.attr("LineStyle", line.LineStyle)
	w.intAttr("LineThickness", line.LineThickness)
	w.intAttr("Right", line.Right)
	w.color("LineColor", line.LineColor)
}

func (w *walker) maxLines(sc *scope, objectName string) {
	if sc.definition == nil {
		return
	}
	if lines, ok := sc.definition.MaxNumberOfLines(objectName); ok {
		w.intAttr("MaxNumberOfLines", lines)
	}
}

func (w *walker) border(sc *scope, header *model.ObjectHeader) {
	border := header.Border
	if border == nil {
		border = &model.Border{}
	}
	w.sink.StartElement("Border")
	w.attr("BottomLineStyle", border.BottomLineStyle)
	w.boolAttr("HasDropShadow", border.HasDropShadow)
	w.attr("LeftLineStyle", border.LeftLineStyle)
	w.attr("RightLineStyle", border.RightLineStyle)
	w.attr("TopLineStyle", border.TopLineStyle)
	w.color("BackgroundColor", border.BackgroundColor)
	w.color("BorderColor", border.BorderColor)
	w.conditionFormulas(sc, model.ScopeBorder, header.Name)
	w.sink.EndElement()
}

func (w *walker) objectFormat(sc *scope, header *model.ObjectHeader) {
	format := header.ObjectFormat
	if format == nil {
		format = &model.ObjectFormat{}
	}
	w.sink.StartElement("ObjectFormat")
	w.attr("CssClass", format.CssClass)
	w.boolAttr("EnableCanGrow", format.EnableCanGrow)
	w.boolAttr("EnableCloseAtPageBreak", format.EnableCloseAtPageBreak)
	w.boolAttr("EnableKeepTogether", format.EnableKeepTogether)
	w.boolAttr("EnableSuppress", format.EnableSuppress)
	w.attr("HorizontalAlignment", format.HorizontalAlignment)
	w.conditionFormulas(sc, model.ScopeObjectFormat, header.Name)
	w.sink.EndElement()
}
