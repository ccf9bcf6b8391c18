package model

import "errors"

var (
	// ErrNoDefinitionModel indicates the report was loaded without its secondary definition model
	ErrNoDefinitionModel = errors.New("definition model not available")
	// ErrNotFound indicates a definition model lookup did not match any element
	ErrNotFound = errors.New("not found")
)

// Report is a read-only view of a report or sub-report produced by the reporting engine
type Report interface {
	// Name returns report name
	Name() string

	// IsSubreport returns true for reports embedded in another report
	IsSubreport() bool

	// Origin returns root-only report information, nil for sub-reports
	Origin() *Origin

	// SubreportNames returns sub-report names in model order
	SubreportNames() []string

	// OpenSubreport loads the named sub-report; the caller closes it
	OpenSubreport(name string) (Report, error)

	// Database returns tables and table links
	Database() *Database

	// DataDefinition returns formulas, groups, sort fields and field collections
	DataDefinition() *DataDefinition

	// ParameterFields enumerates parameter fields, the enumeration can fail independently of the rest of the model
	ParameterFields() (Fields, error)

	// CustomFunctions returns report custom functions
	CustomFunctions() []*CustomFunction

	// ReportDefinition returns areas, sections and report objects
	ReportDefinition() *ReportDefinition

	// DefinitionModel returns the secondary definition model view or ErrNoDefinitionModel
	DefinitionModel() (DefinitionModel, error)

	// Close releases report handle
	Close() error
}

// Origin represents root report information
type Origin struct {
	FileName     string         `yaml:"FileName"`     // File the report was loaded from
	HasSavedData bool           `yaml:"HasSavedData"` // Whether report was saved with data
	SummaryInfo  *SummaryInfo   `yaml:"SummaryInfo"`
	Options      *ReportOptions `yaml:"ReportOptions"`
	PrintOptions *PrintOptions  `yaml:"PrintOptions"`
}

// SummaryInfo represents report document properties
type SummaryInfo struct {
	KeywordsInReport string `yaml:"KeywordsInReport"`
	ReportAuthor     string `yaml:"ReportAuthor"`
	ReportComments   string `yaml:"ReportComments"`
	ReportSubject    string `yaml:"ReportSubject"`
	ReportTitle      string `yaml:"ReportTitle"`
}

// ReportOptions represents report level options
type ReportOptions struct {
	EnableSaveDataWithReport      bool   `yaml:"EnableSaveDataWithReport"`
	EnableSavePreviewPicture      bool   `yaml:"EnableSavePreviewPicture"`
	EnableSaveSummariesWithReport bool   `yaml:"EnableSaveSummariesWithReport"`
	EnableUseDummyData            bool   `yaml:"EnableUseDummyData"`
	InitialDataContext            string `yaml:"InitialDataContext"`
	InitialReportPartName         string `yaml:"InitialReportPartName"`
}

// PrintOptions represents page and printer settings
type PrintOptions struct {
	PageContentHeight int          `yaml:"PageContentHeight"` // twips
	PageContentWidth  int          `yaml:"PageContentWidth"`  // twips
	PaperOrientation  string       `yaml:"PaperOrientation"`
	PaperSize         string       `yaml:"PaperSize"`
	PaperSource       string       `yaml:"PaperSource"`
	PrinterDuplex     string       `yaml:"PrinterDuplex"`
	PrinterName       string       `yaml:"PrinterName"`
	PageMargins       *PageMargins `yaml:"PageMargins"`
}

// PageMargins represents page margins in twips
type PageMargins struct {
	BottomMargin int `yaml:"BottomMargin"`
	LeftMargin   int `yaml:"LeftMargin"`
	RightMargin  int `yaml:"RightMargin"`
	TopMargin    int `yaml:"TopMargin"`
}

// CustomFunction represents a report custom function
type CustomFunction struct {
	Name   string `yaml:"Name"`
	Syntax string `yaml:"Syntax"` // CrystalSyntax or BasicSyntax
	Text   string `yaml:"Text"`   // Function body
}
