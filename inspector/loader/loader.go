package loader

import (
	"context"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"github.com/viant/rptxml/inspector/model"
	"gopkg.in/yaml.v3"
)

// Loader loads report model dumps (YAML or JSON)
type Loader struct {
	fs afs.Service
}

// New creates a loader
func New() *Loader {
	return &Loader{fs: afs.New()}
}

// Load downloads and decodes report dump with its sub-reports
func (l *Loader) Load(ctx context.Context, URL string) (*Report, error) {
	data, err := l.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download report %v: %w", URL, err)
	}
	root := &dump{}
	if err = yaml.Unmarshal(data, root); err != nil {
		return nil, fmt.Errorf("failed to decode report %v: %w", URL, err)
	}
	l.loadSubreports(ctx, root, URL, []string{URL})
	return &Report{dump: root, location: URL}, nil
}

// Decode decodes report dump from memory; located sub-reports resolve against URL
func (l *Loader) Decode(ctx context.Context, data []byte, URL string) (*Report, error) {
	root := &dump{}
	if err := yaml.Unmarshal(data, root); err != nil {
		return nil, fmt.Errorf("failed to decode report %v: %w", URL, err)
	}
	l.loadSubreports(ctx, root, URL, []string{URL})
	return &Report{dump: root, location: URL}, nil
}

// loadSubreports loads sub-reports eagerly, failures are kept on the entry for OpenSubreport
func (l *Loader) loadSubreports(ctx context.Context, parent *dump, parentURL string, chain []string) {
	parent.Subreports = slices.DeleteFunc(parent.Subreports, func(sub *subreport) bool { return sub == nil })
	for _, sub := range parent.Subreports {
		if sub.Report != nil {
			if sub.Report.Name == "" {
				sub.Report.Name = sub.Name
			}
			l.loadSubreports(ctx, sub.Report, parentURL, chain)
			sub.loaded = &Report{dump: sub.Report, location: parentURL, subreport: true}
			continue
		}
		if sub.Location == "" {
			sub.err = fmt.Errorf("subreport %v: neither report nor location defined", sub.Name)
			continue
		}
		URL := resolve(parentURL, sub.Location)
		if contains(chain, URL) {
			sub.err = fmt.Errorf("subreport %v: location cycle %v", sub.Name, strings.Join(append(chain, URL), " -> "))
			continue
		}
		data, err := l.fs.DownloadWithURL(ctx, URL)
		if err != nil {
			sub.err = fmt.Errorf("failed to download subreport %v: %w", sub.Name, err)
			continue
		}
		child := &dump{}
		if err = yaml.Unmarshal(data, child); err != nil {
			sub.err = fmt.Errorf("failed to decode subreport %v: %w", sub.Name, err)
			continue
		}
		if child.Name == "" {
			child.Name = sub.Name
		}
		l.loadSubreports(ctx, child, URL, append(chain[:len(chain):len(chain)], URL))
		sub.loaded = &Report{dump: child, location: URL, subreport: true}
	}
}

func resolve(parentURL, location string) string {
	if strings.Contains(location, "://") || path.IsAbs(location) {
		return location
	}
	parent, _ := url.Split(parentURL, "file")
	return url.Join(parent, location)
}

func contains(chain []string, URL string) bool {
	for _, candidate := range chain {
		if url.Path(candidate) == url.Path(URL) {
			return true
		}
	}
	return false
}

var _ model.Report = (*Report)(nil)
