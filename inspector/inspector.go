package inspector

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/rs/zerolog"
	"github.com/viant/rptxml/inspector/config"
	"github.com/viant/rptxml/inspector/emitter"
	"github.com/viant/rptxml/inspector/loader"
	"github.com/viant/rptxml/inspector/model"
	"github.com/viant/rptxml/inspector/serializer"
)

// Inspector provides an interface for loading report models
type Inspector interface {
	// Load loads report model from URL, the caller closes the report
	Load(ctx context.Context, URL string) (model.Report, error)
}

type dumpInspector struct {
	loader *loader.Loader
}

// Load loads report model dump
func (i *dumpInspector) Load(ctx context.Context, URL string) (model.Report, error) {
	report, err := i.loader.Load(ctx, URL)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// Factory creates report model inspectors and serializes reports
type Factory struct {
	config *config.Config
	logger zerolog.Logger
}

// NewFactory creates a new inspector factory with the given config
func NewFactory(cfg *config.Config, logger zerolog.Logger) *Factory {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Factory{config: cfg, logger: logger}
}

// GetInspector returns an appropriate inspector based on file extension
func (f *Factory) GetInspector(filename string) (Inspector, error) {
	ext := strings.ToLower(path.Ext(filename))
	switch ext {
	case ".yaml", ".yml", ".json":
		return &dumpInspector{loader: loader.New()}, nil
	default:
		return nil, fmt.Errorf("unsupported file type: %s", ext)
	}
}

// Load is a convenience method that gets the appropriate inspector and loads the report
func (f *Factory) Load(ctx context.Context, URL string) (model.Report, error) {
	inspector, err := f.GetInspector(URL)
	if err != nil {
		return nil, err
	}
	return inspector.Load(ctx, URL)
}

// Serialize writes loaded root report to sink, content is the original report file for embedded objects
func (f *Factory) Serialize(report model.Report, content []byte, sink emitter.Sink) (*serializer.Result, error) {
	s := serializer.New(
		serializer.WithLogger(f.logger),
		serializer.WithEmbedMarker(f.config.Embed.Marker),
	)
	return s.Serialize(report, content, sink)
}

// Inspect loads report from URL and writes it to sink; load failures are fatal
func (f *Factory) Inspect(ctx context.Context, URL string, content []byte, sink emitter.Sink) (*serializer.Result, error) {
	report, err := f.Load(ctx, URL)
	if err != nil {
		return nil, err
	}
	defer report.Close()
	return f.Serialize(report, content, sink)
}
