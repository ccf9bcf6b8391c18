package model

// ObjectKind represents report object kind tag
type ObjectKind string

const (
	// Report object kinds
	KindBoxObject          ObjectKind = "BoxObject"
	KindLineObject         ObjectKind = "LineObject"
	KindFieldHeadingObject ObjectKind = "FieldHeadingObject"
	KindFieldObject        ObjectKind = "FieldObject"
	KindTextObject         ObjectKind = "TextObject"
	KindPictureObject      ObjectKind = "PictureObject"
	KindSubreportObject    ObjectKind = "SubreportObject"
	KindChartObject        ObjectKind = "ChartObject"
	KindCrossTabObject     ObjectKind = "CrossTabObject"
	KindBlobFieldObject    ObjectKind = "BlobFieldObject"
)

// AreaKindGroupHeader identifies group header areas carrying group area format
const AreaKindGroupHeader = "GroupHeader"

// ReportDefinition represents report layout
type ReportDefinition struct {
	Areas []*Area `yaml:"Areas"`
}

// Area represents a report area, e.g. page header or a group header
type Area struct {
	Kind       string      `yaml:"Kind"`
	Name       string      `yaml:"Name"`
	AreaFormat *AreaFormat `yaml:"AreaFormat"`
	Sections   []*Section  `yaml:"Sections"`
}

// AreaFormat represents area format flags
type AreaFormat struct {
	EnableHideForDrillDown     bool             `yaml:"EnableHideForDrillDown"`
	EnableKeepTogether         bool             `yaml:"EnableKeepTogether"`
	EnableNewPageAfter         bool             `yaml:"EnableNewPageAfter"`
	EnableNewPageBefore        bool             `yaml:"EnableNewPageBefore"`
	EnablePrintAtBottomOfPage  bool             `yaml:"EnablePrintAtBottomOfPage"`
	EnableResetPageNumberAfter bool             `yaml:"EnableResetPageNumberAfter"`
	EnableSuppress             bool             `yaml:"EnableSuppress"`
	GroupAreaFormat            *GroupAreaFormat `yaml:"GroupAreaFormat"` // Group header areas only
}

// GroupAreaFormat represents group header specific format
type GroupAreaFormat struct {
	EnableKeepGroupTogether   bool `yaml:"EnableKeepGroupTogether"`
	EnableRepeatGroupHeader   bool `yaml:"EnableRepeatGroupHeader"`
	VisibleGroupNumberPerPage int  `yaml:"VisibleGroupNumberPerPage"`
}

// Section represents an area section
type Section struct {
	Height        int            `yaml:"Height"` // twips
	Kind          string         `yaml:"Kind"`
	Name          string         `yaml:"Name"`
	SectionFormat *SectionFormat `yaml:"SectionFormat"`
	ReportObjects Objects        `yaml:"ReportObjects"`
}

// SectionFormat represents section format flags
type SectionFormat struct {
	CssClass                   string `yaml:"CssClass"`
	EnableKeepTogether         bool   `yaml:"EnableKeepTogether"`
	EnableNewPageAfter         bool   `yaml:"EnableNewPageAfter"`
	EnableNewPageBefore        bool   `yaml:"EnableNewPageBefore"`
	EnablePrintAtBottomOfPage  bool   `yaml:"EnablePrintAtBottomOfPage"`
	EnableResetPageNumberAfter bool   `yaml:"EnableResetPageNumberAfter"`
	EnableSuppress             bool   `yaml:"EnableSuppress"`
	EnableSuppressIfBlank      bool   `yaml:"EnableSuppressIfBlank"`
	EnableUnderlaySection      bool   `yaml:"EnableUnderlaySection"`
	BackgroundColor            Color  `yaml:"BackgroundColor"`
}

// ReportObject represents a report object of any kind
type ReportObject interface {
	Header() *ObjectHeader
}

// ObjectHeader represents attributes shared by all report objects
type ObjectHeader struct {
	Name         string        `yaml:"Name"`
	Kind         ObjectKind    `yaml:"Kind"`
	Top          int           `yaml:"Top"`
	Left         int           `yaml:"Left"`
	Width        int           `yaml:"Width"`
	Height       int           `yaml:"Height"`
	Border       *Border       `yaml:"Border"`
	ObjectFormat *ObjectFormat `yaml:"ObjectFormat"`
}

// Header returns shared object attributes
func (h *ObjectHeader) Header() *ObjectHeader {
	return h
}

// Objects represents an ordered collection of report objects of mixed kinds
type Objects []ReportObject

// Line represents line attributes shared by drawing objects
type Line struct {
	Bottom                        int    `yaml:"Bottom"`
	Right                         int    `yaml:"Right"`
	EnableExtendToBottomOfSection bool   `yaml:"EnableExtendToBottomOfSection"`
	EndSectionName                string `yaml:"EndSectionName"`
	LineStyle                     string `yaml:"LineStyle"`
	LineThickness                 int    `yaml:"LineThickness"`
	LineColor                     Color  `yaml:"LineColor"`
}

// BoxObject represents a box
type BoxObject struct {
	ObjectHeader `yaml:",inline"`
	Line         `yaml:",inline"`
	FillColor    Color `yaml:"FillColor"`
}

// DrawingObject represents a line or another drawing object
type DrawingObject struct {
	ObjectHeader `yaml:",inline"`
	Line         `yaml:",inline"`
}

// FieldHeadingObject represents a field heading
type FieldHeadingObject struct {
	ObjectHeader    `yaml:",inline"`
	FieldObjectName string `yaml:"FieldObjectName"`
	Text            string `yaml:"Text"`
	Color           Color  `yaml:"Color"`
	Font            Font   `yaml:"Font"`
}

// FieldObject represents a field placed on a section
type FieldObject struct {
	ObjectHeader `yaml:",inline"`
	DataSource   FieldRef `yaml:"DataSource"`
	Color        Color    `yaml:"Color"`
	Font         Font     `yaml:"Font"`
}

// TextObject represents literal text
type TextObject struct {
	ObjectHeader `yaml:",inline"`
	Text         string `yaml:"Text"`
	Color        Color  `yaml:"Color"`
	Font         Font   `yaml:"Font"`
}

// OtherObject represents pictures, charts, sub-report frames and kinds the model does not describe
type OtherObject struct {
	ObjectHeader `yaml:",inline"`
}

// Border represents object border
type Border struct {
	BottomLineStyle string `yaml:"BottomLineStyle"`
	HasDropShadow   bool   `yaml:"HasDropShadow"`
	LeftLineStyle   string `yaml:"LeftLineStyle"`
	RightLineStyle  string `yaml:"RightLineStyle"`
	TopLineStyle    string `yaml:"TopLineStyle"`
	BackgroundColor Color  `yaml:"BackgroundColor"`
	BorderColor     Color  `yaml:"BorderColor"`
}

// ObjectFormat represents object format flags
type ObjectFormat struct {
	CssClass               string `yaml:"CssClass"`
	EnableCanGrow          bool   `yaml:"EnableCanGrow"`
	EnableCloseAtPageBreak bool   `yaml:"EnableCloseAtPageBreak"`
	EnableKeepTogether     bool   `yaml:"EnableKeepTogether"`
	EnableSuppress         bool   `yaml:"EnableSuppress"`
	HorizontalAlignment    string `yaml:"HorizontalAlignment"`
}

// Color represents ARGB color
type Color struct {
	Name string `yaml:"Name"`
	A    uint8  `yaml:"A"`
	R    uint8  `yaml:"R"`
	G    uint8  `yaml:"G"`
	B    uint8  `yaml:"B"`
}

// Font represents object font
type Font struct {
	Bold             bool    `yaml:"Bold"`
	FontFamily       string  `yaml:"FontFamily"`
	GdiCharSet       int     `yaml:"GdiCharSet"`
	GdiVerticalFont  bool    `yaml:"GdiVerticalFont"`
	Height           int     `yaml:"Height"`
	IsSystemFont     bool    `yaml:"IsSystemFont"`
	Italic           bool    `yaml:"Italic"`
	Name             string  `yaml:"Name"`
	OriginalFontName string  `yaml:"OriginalFontName"`
	Size             float64 `yaml:"Size"`
	SizeInPoints     float64 `yaml:"SizeInPoints"`
	Strikeout        bool    `yaml:"Strikeout"`
	Style            string  `yaml:"Style"`
	SystemFontName   string  `yaml:"SystemFontName"`
	Underline        bool    `yaml:"Underline"`
	Unit             string  `yaml:"Unit"`
}
