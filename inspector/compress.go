package inspector

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/viant/rptxml/inspector/config"
)

// Compress encodes document with configured compression
func Compress(data []byte, compression string) ([]byte, error) {
	switch compression {
	case "", config.CompressionNone:
		return data, nil
	case config.CompressionGzip:
		buffer := &bytes.Buffer{}
		writer := gzip.NewWriter(buffer)
		if _, err := writer.Write(data); err != nil {
			return nil, fmt.Errorf("gzip compress: %w", err)
		}
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("gzip compress: %w", err)
		}
		return buffer.Bytes(), nil
	case config.CompressionZstd:
		encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("zstd compress: %w", err)
		}
		defer encoder.Close()
		return encoder.EncodeAll(data, nil), nil
	}
	return nil, fmt.Errorf("unsupported compression: %v", compression)
}
