package accounts

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"go.uber.org/multierr"
)

// Format identifies a chart file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".csv":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("unsupported chart file extension %q", filepath.Ext(path))
}

// ParseFormat validates a format name given on the command line.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatYAML, FormatCSV:
		return f, nil
	}
	return "", fmt.Errorf("unsupported format %q (want json, yaml or csv)", s)
}

// Decode reads a chart in the given format.
func Decode(r io.Reader, format Format) (*Chart, error) {
	switch format {
	case FormatJSON:
		return DecodeJSON(r)
	case FormatYAML:
		return DecodeYAML(r)
	case FormatCSV:
		return ReadCSV(r)
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

// Encode writes a chart in the given format.
func Encode(w io.Writer, chart *Chart, format Format) error {
	switch format {
	case FormatJSON:
		return EncodeJSON(w, chart)
	case FormatYAML:
		return EncodeYAML(w, chart)
	case FormatCSV:
		return WriteCSV(w, chart)
	}
	return fmt.Errorf("unsupported format %q", format)
}

// LoadFile reads a chart file, choosing the decoder from its extension.
func LoadFile(path string) (chart *Chart, err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	chart, err = Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts %s: %w", path, err)
	}
	return chart, nil
}

// SaveFile writes a chart file atomically, choosing the encoder from its
// extension. Missing parent directories are created.
func SaveFile(path string, chart *Chart) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating chart dir: %w", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, chart, format); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("writing chart of accounts %s: %w", path, err)
	}
	return nil
}
