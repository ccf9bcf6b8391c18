package serializer

import (
	"strconv"

	"github.com/viant/rptxml/inspector/model"
)

func (w *walker) attr(name, value string) {
	w.sink.Attribute(name, value)
}

func (w *walker) boolAttr(name string, value bool) {
	if value {
		w.sink.Attribute(name, "True")
		return
	}
	w.sink.Attribute(name, "False")
}

func (w *walker) intAttr(name string, value int) {
	w.sink.Attribute(name, strconv.Itoa(value))
}

func (w *walker) floatAttr(name string, value float64) {
	w.sink.Attribute(name, strconv.FormatFloat(value, 'f', -1, 64))
}

// textElement writes an element holding character data only
func (w *walker) textElement(name, text string) {
	w.sink.StartElement(name)
	w.sink.Text(text)
	w.sink.EndElement()
}

func (w *walker) color(name string, color model.Color) {
	w.sink.StartElement(name)
	w.attr("Name", color.Name)
	w.intAttr("A", int(color.A))
	w.intAttr("R", int(color.R))
	w.intAttr("G", int(color.G))
	w.intAttr("B", int(color.B))
	w.sink.EndElement()
}

func (w *walker) font(sc *scope, owner string, font model.Font) {
	w.sink.StartElement("Font")
	w.boolAttr("Bold", font.Bold)
	w.attr("FontFamily", font.FontFamily)
	w.intAttr("GdiCharSet", font.GdiCharSet)
	w.boolAttr("GdiVerticalFont", font.GdiVerticalFont)
	w.intAttr("Height", font.Height)
	w.boolAttr("IsSystemFont", font.IsSystemFont)
	w.boolAttr("Italic", font.Italic)
	w.attr("Name", font.Name)
	w.attr("OriginalFontName", font.OriginalFontName)
	w.floatAttr("Size", font.Size)
	w.floatAttr("SizeInPoints", font.SizeInPoints)
	w.boolAttr("Strikeout", font.Strikeout)
	w.attr("Style", font.Style)
	w.attr("SystemFontName", font.SystemFontName)
	w.boolAttr("Underline", font.Underline)
	w.attr("Unit", font.Unit)
	w.conditionFormulas(sc, model.ScopeFont, owner)
	w.sink.EndElement()
}

// conditionFormulas writes definition model formulas of an element, nothing when there are none
func (w *walker) conditionFormulas(sc *scope, scope model.ConditionScope, owner string) {
	if sc.definition == nil {
		return
	}
	formulas := sc.definition.ConditionFormulas(scope, owner)
	if len(formulas) == 0 {
		return
	}
	w.sink.StartElement("ConditionFormulas")
	for _, formula := range formulas {
		w.sink.StartElement("ConditionFormula")
		w.attr("Name", formula.Name)
		w.sink.Text(formula.Text)
		w.sink.EndElement()
	}
	w.sink.EndElement()
}
