package inspector_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/rptxml/inspector"
	"github.com/viant/rptxml/inspector/config"
	"github.com/viant/rptxml/inspector/emitter"
)

func TestFactory_GetInspector(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{name: "YAML dump", filename: "orders.yaml"},
		{name: "YML dump", filename: "orders.YML"},
		{name: "JSON dump", filename: "orders.json"},
		{name: "Report file", filename: "orders.rpt", wantErr: true},
	}
	factory := inspector.NewFactory(nil, zerolog.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insp, err := factory.GetInspector(tt.filename)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, insp)
		})
	}
}

func TestFactory_Inspect(t *testing.T) {
	dir := t.TempDir()
	location := filepath.Join(dir, "orders.json")
	require.NoError(t, os.WriteFile(location, []byte(`{"Name": "Orders", "FileName": "orders.rpt", "Subreports": [{"Name": "Lines", "Report": {}}]}`), 0o644))

	factory := inspector.NewFactory(config.Default(), zerolog.Nop())
	buffer := &bytes.Buffer{}
	writer := emitter.NewWriter(buffer)
	result, err := factory.Inspect(context.Background(), location, nil, writer)
	require.NoError(t, err)
	require.NoError(t, writer.Flush())
	assert.Equal(t, 2, result.Reports)
	assert.Empty(t, result.Issues)
	assert.Contains(t, buffer.String(), `<Report Name="Orders" FileName="orders.rpt" HasSavedData="False">`)
	assert.Contains(t, buffer.String(), `<Report Name="Lines">`)

	_, err = factory.Inspect(context.Background(), filepath.Join(dir, "missing.yaml"), nil, emitter.NewTree())
	assert.Error(t, err)
}

func TestCompress(t *testing.T) {
	document := bytes.Repeat([]byte("<Report Name=\"Orders\"/>\n"), 50)

	plain, err := inspector.Compress(document, config.CompressionNone)
	require.NoError(t, err)
	assert.Equal(t, document, plain)

	gzipped, err := inspector.Compress(document, config.CompressionGzip)
	require.NoError(t, err)
	reader, err := gzip.NewReader(bytes.NewReader(gzipped))
	require.NoError(t, err)
	actual, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, document, actual)

	zstded, err := inspector.Compress(document, config.CompressionZstd)
	require.NoError(t, err)
	decoder, err := zstd.NewReader(nil)
	require.NoError(t, err)
	defer decoder.Close()
	actual, err = decoder.DecodeAll(zstded, nil)
	require.NoError(t, err)
	assert.Equal(t, document, actual)

	_, err = inspector.Compress(document, "lz4")
	assert.Error(t, err)
}
