package main

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/rptxml/inspector/container/cfbtest"
	"github.com/viant/rptxml/inspector/digest"
	"github.com/viant/rptxml/inspector/emitter"
)

const dump = `
Name: Orders
FileName: orders.rpt
Subreports:
  - Name: Missing
    Location: missing.yaml
DataDefinition:
  RecordSelectionFormula: "{Orders.Amount} > 0"
`

func setup(t *testing.T) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "orders.yaml"), []byte(dump), 0o644))
	return dir
}

func TestRun_Stdout(t *testing.T) {
	dir := setup(t)
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(context.Background(), []string{"--log-level", "warn", filepath.Join(dir, "orders.yaml")}, stdout, stderr)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout.String(), `<?xml version="1.0" encoding="utf-8"?>`))
	assert.Contains(t, stdout.String(), "{Orders.Amount} &gt; 0")
	assert.Contains(t, stderr.String(), `"category":"subreport"`)
	assertWellFormed(t, stdout.Bytes())
}

func TestRun_OutputFile(t *testing.T) {
	dir := setup(t)
	payload := []byte("embedded picture")
	container := filepath.Join(dir, "orders.rpt")
	require.NoError(t, os.WriteFile(container, cfbtest.Build(cfbtest.Entry{Path: "ObjectPool/_1/Ole", Data: payload}), 0o644))
	output := filepath.Join(dir, "orders.xml.gz")
	metricsFile := filepath.Join(dir, "rptxml.prom")

	stderr := &bytes.Buffer{}
	err := run(context.Background(), []string{"--container", container, "--metrics-file", metricsFile, filepath.Join(dir, "orders.yaml"), output}, io.Discard, stderr)
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), `"reports":1`)

	compressed, err := os.ReadFile(output)
	require.NoError(t, err)
	reader, err := gzip.NewReader(bytes.NewReader(compressed))
	require.NoError(t, err)
	document, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Contains(t, string(document), `MD5Hash="`+digest.Digest(payload)+`"`)

	metrics, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "rptxml_embedded_streams_total 1")
}

func TestRun_Failures(t *testing.T) {
	dir := setup(t)
	testCases := []struct {
		description string
		args        []string
		code        int
	}{
		{description: "no arguments", args: nil, code: exitUsage},
		{description: "unknown flag", args: []string{"--verbose", "orders.yaml"}, code: exitUsage},
		{description: "bad compression", args: []string{"--compression", "lz4", filepath.Join(dir, "orders.yaml")}, code: exitUsage},
		{description: "missing report", args: []string{filepath.Join(dir, "none.yaml")}, code: exitFailure},
		{description: "unsupported report", args: []string{filepath.Join(dir, "orders.rpt")}, code: exitFailure},
	}
	for _, testCase := range testCases {
		err := run(context.Background(), testCase.args, io.Discard, io.Discard)
		var coder *exitError
		if assert.True(t, errors.As(err, &coder), testCase.description) {
			assert.Equal(t, testCase.code, coder.ExitCode(), testCase.description)
		}
	}
}

func TestGuard(t *testing.T) {
	err := guard(func() error {
		emitter.NewTree().EndElement()
		return nil
	})
	assert.ErrorIs(t, err, emitter.ErrUnbalanced)

	failure := errors.New("load failed")
	assert.Equal(t, failure, guard(func() error { return failure }))
	assert.NoError(t, guard(func() error { return nil }))
	assert.PanicsWithValue(t, "model bug", func() {
		_ = guard(func() error { panic("model bug") })
	})
}

func TestRun_Help(t *testing.T) {
	stderr := &bytes.Buffer{}
	assert.NoError(t, run(context.Background(), []string{"--help"}, io.Discard, stderr))
	assert.Contains(t, stderr.String(), "Usage: rptxml")
}

func assertWellFormed(t *testing.T, data []byte) {
	t.Helper()
	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		_, err := decoder.Token()
		if err == io.EOF {
			return
		}
		if !assert.NoError(t, err) {
			return
		}
	}
}
