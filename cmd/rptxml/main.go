// rptxml renders a report model dump, with its sub-reports, as an indented XML document.
//
//	rptxml [flags] <report-dump> [output.xml|-]
//
// The document goes to stdout unless an output location is given. Logs go to stderr.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/viant/afs"
	"github.com/viant/rptxml/inspector"
	"github.com/viant/rptxml/inspector/config"
	"github.com/viant/rptxml/inspector/digest"
	"github.com/viant/rptxml/inspector/emitter"
	"github.com/viant/rptxml/inspector/serializer"
	"github.com/viant/rptxml/internal/logger"
	"github.com/viant/rptxml/internal/metrics"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

// exitError carries process exit code
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

// ExitCode returns process exit code
func (e *exitError) ExitCode() int { return e.code }

func usageError(format string, args ...interface{}) error {
	return &exitError{code: exitUsage, err: fmt.Errorf(format, args...)}
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		os.Exit(exitFailure)
	}
}

type options struct {
	configURL   string
	container   string
	logLevel    string
	pretty      bool
	embedMarker string
	compression string
	metricsFile string
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var opts options
	flagSet := pflag.NewFlagSet("rptxml", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&opts.configURL, "config", "", "configuration file (YAML)")
	flagSet.StringVar(&opts.container, "container", "", "original report file, embedded objects are described when it is a compound file")
	flagSet.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flagSet.BoolVar(&opts.pretty, "pretty", false, "human readable log output")
	flagSet.StringVar(&opts.embedMarker, "embed-marker", "", "substring of compound file entry names identifying embedded objects")
	flagSet.StringVar(&opts.compression, "compression", "", "output compression: none, gzip, zstd (default from output extension)")
	flagSet.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus textfile metrics to this path")
	flagSet.BoolP("help", "h", false, "show help")
	flagSet.Usage = func() {
		fmt.Fprintf(stderr, "Usage: rptxml [flags] <report-dump> [output.xml|-]\n\nFlags:\n%s", flagSet.FlagUsages())
	}

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return &exitError{code: exitUsage, err: err}
	}
	if help, _ := flagSet.GetBool("help"); help {
		flagSet.Usage()
		return nil
	}
	positional := flagSet.Args()
	if len(positional) < 1 || len(positional) > 2 {
		flagSet.Usage()
		return usageError("expected report dump and optional output location, got %d arguments", len(positional))
	}
	input, output := positional[0], "-"
	if len(positional) == 2 {
		output = positional[1]
	}

	cfg, err := loadConfig(ctx, &opts, flagSet)
	if err != nil {
		return usageError("%v", err)
	}
	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty, Output: stderr})

	fs := afs.New()
	var content []byte
	if opts.container != "" {
		if content, err = fs.DownloadWithURL(ctx, opts.container); err != nil {
			log.Warn().Err(err).Str("container", opts.container).Msg("report file not readable, embedded objects skipped")
			content = nil
		}
	}

	started := time.Now()
	factory := inspector.NewFactory(cfg, logger.Component(log, "serializer"))
	buffer := &bytes.Buffer{}
	writer := emitter.NewWriter(buffer, emitter.WithIndent(cfg.Output.Indent))
	var result *serializer.Result
	if err = guard(func() error {
		result, err = factory.Inspect(ctx, input, content, writer)
		return err
	}); err != nil {
		return &exitError{code: exitFailure, err: fmt.Errorf("failed to inspect report %v: %w", input, err)}
	}
	if err = writer.Flush(); err != nil {
		return err
	}
	fingerprint, err := digest.Fingerprint(buffer.Bytes())
	if err != nil {
		return err
	}
	document, err := inspector.Compress(buffer.Bytes(), cfg.Compression(output))
	if err != nil {
		return err
	}
	if output == "-" {
		if _, err = stdout.Write(document); err != nil {
			return err
		}
	} else if err = fs.Upload(ctx, output, 0o644, bytes.NewReader(document)); err != nil {
		return fmt.Errorf("failed to write %v: %w", output, err)
	}

	if cfg.Metrics.File != "" {
		m := metrics.New()
		m.Record(result, time.Since(started), len(document))
		if err = m.WriteTextfile(cfg.Metrics.File); err != nil {
			log.Warn().Err(err).Str("file", cfg.Metrics.File).Msg("failed to write metrics")
		}
	}
	summary(log, input, output, result, fingerprint)
	return nil
}

// guard runs fn, a document writer misuse panic is returned as an error
func guard(fn func() error) (err error) {
	defer func() {
		recovered := recover()
		if recovered == nil {
			return
		}
		cause, ok := recovered.(error)
		if !ok || !errors.Is(cause, emitter.ErrUnbalanced) {
			panic(recovered)
		}
		err = cause
	}()
	return fn()
}

// loadConfig loads configuration file and applies flags set on the command line
func loadConfig(ctx context.Context, opts *options, flagSet *pflag.FlagSet) (*config.Config, error) {
	cfg := config.Default()
	if opts.configURL != "" {
		var err error
		if cfg, err = config.Load(ctx, opts.configURL); err != nil {
			return nil, err
		}
	}
	if flagSet.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flagSet.Changed("pretty") {
		cfg.Log.Pretty = opts.pretty
	}
	if flagSet.Changed("embed-marker") {
		cfg.Embed.Marker = opts.embedMarker
	}
	if flagSet.Changed("compression") {
		cfg.Output.Compression = opts.compression
	}
	if flagSet.Changed("metrics-file") {
		cfg.Metrics.File = opts.metricsFile
	}
	return cfg, cfg.Validate()
}

func summary(log zerolog.Logger, input, output string, result *serializer.Result, fingerprint uint64) {
	event := log.Info().
		Str("input", input).
		Str("output", output).
		Int("reports", result.Reports).
		Int("embedded", result.Embedded).
		Str("fingerprint", fmt.Sprintf("%016x", fingerprint))
	var categories []string
	for _, category := range serializer.Categories {
		count := result.Count(category)
		event = event.Int("issues_"+string(category), count)
		if count > 0 {
			categories = append(categories, string(category))
		}
	}
	if len(categories) > 0 {
		event.Msg("report written with incomplete elements: " + strings.Join(categories, ", "))
		return
	}
	event.Msg("report written")
}
