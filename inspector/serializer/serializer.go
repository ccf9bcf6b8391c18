package serializer

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/viant/rptxml/inspector/container"
	"github.com/viant/rptxml/inspector/digest"
	"github.com/viant/rptxml/inspector/emitter"
	"github.com/viant/rptxml/inspector/model"
)

// ErrNotRoot indicates serialization started from a sub-report
var ErrNotRoot = errors.New("report is a subreport")

// DefaultEmbedMarker selects container entries describing embedded objects
const DefaultEmbedMarker = "Ole"

// Serializer writes report models as XML elements
type Serializer struct {
	logger      zerolog.Logger
	embedMarker string
}

// Option represents serializer option
type Option func(s *Serializer)

// WithLogger sets logger, recoverable failures are logged at warn level
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Serializer) {
		s.logger = logger
	}
}

// WithEmbedMarker sets substring of container entry names identifying embedded objects
func WithEmbedMarker(marker string) Option {
	return func(s *Serializer) {
		if marker != "" {
			s.embedMarker = marker
		}
	}
}

// New creates a serializer
func New(options ...Option) *Serializer {
	ret := &Serializer{logger: zerolog.Nop(), embedMarker: DefaultEmbedMarker}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// scope represents the report being walked
type scope struct {
	report     model.Report
	root       bool
	path       []string
	opened     []string              // sub-report entry names opened to reach this report
	definition model.DefinitionModel // nil when the definition model is unreachable
}

func (s *scope) location() string {
	return strings.Join(s.path, "/")
}

// walker drives one traversal; sub-reports use a child walker writing to a buffer
type walker struct {
	*Serializer
	sink   emitter.Sink
	result *Result
}

// Serialize writes root report with its sub-reports to sink. Content holds the bytes of the
// file the report was loaded from; when it is a compound file, embedded objects are described.
// Recoverable failures are returned as issues, sink misuse panics with emitter.ErrUnbalanced.
func (s *Serializer) Serialize(root model.Report, content []byte, sink emitter.Sink) (*Result, error) {
	if root.IsSubreport() {
		return nil, fmt.Errorf("%v: %w", root.Name(), ErrNotRoot)
	}
	w := &walker{Serializer: s, sink: sink, result: &Result{}}
	var files *container.Container
	if content != nil {
		var err error
		if files, err = container.Open(content); err != nil {
			if errors.Is(err, container.ErrNotContainer) {
				s.logger.Debug().Str("report", root.Name()).Msg("report file is not a compound file, no embedded objects")
			} else {
				w.issue(&scope{path: []string{root.Name()}}, CategoryContainer, "", err)
			}
			files = nil
		} else {
			defer files.Close()
		}
	}
	w.report(w.newScope(root, nil), files)
	return w.result, nil
}

func (w *walker) newScope(report model.Report, parent *scope) *scope {
	ret := &scope{report: report, root: parent == nil}
	if parent != nil {
		ret.path = append(ret.path, parent.path...)
	}
	ret.path = append(ret.path, report.Name())
	definition, err := report.DefinitionModel()
	switch {
	case err == nil:
		ret.definition = definition
	case errors.Is(err, model.ErrNoDefinitionModel):
		w.logger.Debug().Str("report", ret.location()).Msg("definition model not available")
	default:
		w.issue(ret, CategoryDefinitionModel, "", err)
	}
	return ret
}

func (w *walker) report(sc *scope, files *container.Container) {
	w.sink.StartElement("Report")
	w.attr("Name", sc.report.Name())
	if sc.root {
		origin := sc.report.Origin()
		if origin == nil {
			origin = &model.Origin{}
		}
		w.attr("FileName", origin.FileName)
		w.boolAttr("HasSavedData", origin.HasSavedData)
		if files != nil {
			w.embedInfo(sc, files)
		}
		w.summaryInfo(origin.SummaryInfo)
		w.reportOptions(origin.Options)
		w.printOptions(sc, origin.PrintOptions)
	}
	if names := sc.report.SubreportNames(); sc.root || len(names) > 0 {
		w.sink.StartElement("SubReports")
		for _, name := range names {
			w.subreport(sc, name)
		}
		w.sink.EndElement()
	}
	w.database(sc.report.Database())
	w.dataDefinition(sc)
	w.customFunctions(sc.report.CustomFunctions())
	w.reportDefinition(sc)
	w.sink.EndElement()
	w.result.Reports++
}

// subreport writes a sub-report into a buffer first so that a failed sub-report leaves no partial output
func (w *walker) subreport(parent *scope, name string) {
	if slices.Contains(parent.opened, name) {
		w.issue(parent, CategorySubreport, name, fmt.Errorf("subreport %v is already open on the report path", name))
		return
	}
	sub, err := parent.report.OpenSubreport(name)
	if err != nil {
		w.issue(parent, CategorySubreport, name, err)
		return
	}
	defer sub.Close()
	buffer := emitter.NewTree()
	child := &walker{Serializer: w.Serializer, sink: buffer, result: &Result{}}
	if err = capture(func() {
		sc := child.newScope(sub, parent)
		sc.opened = append(parent.opened[:len(parent.opened):len(parent.opened)], name)
		child.report(sc, nil)
	}); err != nil {
		w.result.Issues = append(w.result.Issues, child.result.Issues...)
		w.issue(parent, CategorySubreport, name, err)
		return
	}
	w.result.merge(child.result)
	buffer.Root.Replay(w.sink)
}

// capture converts a model failure panic into an error; sink misuse is re-raised
func capture(fn func()) (err error) {
	defer func() {
		recovered := recover()
		if recovered == nil {
			return
		}
		if cause, ok := recovered.(error); ok {
			if errors.Is(cause, emitter.ErrUnbalanced) {
				panic(recovered)
			}
			err = fmt.Errorf("traversal failed: %w", cause)
			return
		}
		err = fmt.Errorf("traversal failed: %v", recovered)
	}()
	fn()
	return nil
}

func (w *walker) embedInfo(sc *scope, files *container.Container) {
	w.sink.StartElement("Embedinfo")
	for entry := range files.Entries() {
		if !strings.Contains(entry.Name, w.embedMarker) {
			continue
		}
		w.sink.StartElement("Embed")
		w.attr("Name", entry.Name)
		w.attr("Path", entry.Path)
		if entry.IsStream() {
			if data, err := files.ReadStream(entry.Path); err != nil {
				w.issue(sc, CategoryContainer, entry.Path, err)
			} else {
				w.intAttr("Size", len(data))
				w.attr("MD5Hash", digest.Digest(data))
				w.result.Embedded++
			}
		}
		w.sink.EndElement()
	}
	w.sink.EndElement()
}

func (w *walker) summaryInfo(info *model.SummaryInfo) {
	if info == nil {
		info = &model.SummaryInfo{}
	}
	w.sink.StartElement("Summaryinfo")
	w.attr("KeywordsInReport", info.KeywordsInReport)
	w.attr("ReportAuthor", info.ReportAuthor)
	w.attr("ReportComments", info.ReportComments)
	w.attr("ReportSubject", info.ReportSubject)
	w.attr("ReportTitle", info.ReportTitle)
	w.sink.EndElement()
}

func (w *walker) reportOptions(options *model.ReportOptions) {
	if options == nil {
		options = &model.ReportOptions{}
	}
	w.sink.StartElement("ReportOptions")
	w.boolAttr("EnableSaveDataWithReport", options.EnableSaveDataWithReport)
	w.boolAttr("EnableSavePreviewPicture", options.EnableSavePreviewPicture)
	w.boolAttr("EnableSaveSummariesWithReport", options.EnableSaveSummariesWithReport)
	w.boolAttr("EnableUseDummyData", options.EnableUseDummyData)
	w.attr("InitialDataContext", options.InitialDataContext)
	w.attr("InitialReportPartName", options.InitialReportPartName)
	w.sink.EndElement()
}

func (w *walker) printOptions(sc *scope, options *model.PrintOptions) {
	if options == nil {
		options = &model.PrintOptions{}
	}
	w.sink.StartElement("PrintOptions")
	w.intAttr("PageContentHeight", options.PageContentHeight)
	w.intAttr("PageContentWidth", options.PageContentWidth)
	w.attr("PaperOrientation", options.PaperOrientation)
	w.attr("PaperSize", options.PaperSize)
	w.attr("PaperSource", options.PaperSource)
	w.attr("PrinterDuplex", options.PrinterDuplex)
	w.attr("PrinterName", options.PrinterName)
	margins := options.PageMargins
	if margins == nil {
		margins = &model.PageMargins{}
	}
	w.sink.StartElement("PageMargins")
	w.intAttr("BottomMargin", margins.BottomMargin)
	w.intAttr("LeftMargin", margins.LeftMargin)
	w.intAttr("RightMargin", margins.RightMargin)
	w.intAttr("TopMargin", margins.TopMargin)
	w.conditionFormulas(sc, model.ScopePageMargins, "")
	w.sink.EndElement()
	w.sink.EndElement()
}

func (w *walker) customFunctions(functions []*model.CustomFunction) {
	w.sink.StartElement("CustomFunctions")
	for _, function := range functions {
		if function == nil {
			continue
		}
		w.sink.StartElement("CustomFunction")
		w.attr("Name", function.Name)
		w.attr("Syntax", function.Syntax)
		w.sink.Text(function.Text)
		w.sink.EndElement()
	}
	w.sink.EndElement()
}
