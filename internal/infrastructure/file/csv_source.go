package file

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	domain "github.com/mohammadpnp/customer-import/internal/domain/customer"
)

// CSVSource opens uploaded CSV files as forward-only row streams. The first
// record is the header; each subsequent record becomes a column-name to
// value map. The file is never materialized in memory.
type CSVSource struct {
	BaseDir string
}

func NewCSVSource(baseDir string) *CSVSource {
	if baseDir == "" {
		baseDir = "."
	}
	return &CSVSource{BaseDir: baseDir}
}

func (s *CSVSource) Open(ctx context.Context, sourcePath string) (domain.RowReader, error) {
	_ = ctx

	path := sourcePath
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.BaseDir, sourcePath)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file %s: %w", path, err)
	}

	r := csv.NewReader(f)
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	headers, err := r.Read()
	if err != nil && !errors.Is(err, io.EOF) {
		f.Close()
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	return &CSVReader{file: f, reader: r, headers: headers}, nil
}

type CSVReader struct {
	file    *os.File
	reader  *csv.Reader
	headers []string
}

// Next returns the following data row, io.EOF after the last one, or the
// decode error that makes the rest of the file unreadable. Short records
// simply omit the trailing columns from the map.
func (r *CSVReader) Next() (map[string]string, error) {
	if len(r.headers) == 0 {
		return nil, io.EOF
	}

	record, err := r.reader.Read()
	if err != nil {
		return nil, err
	}

	row := make(map[string]string, len(r.headers))
	for i, header := range r.headers {
		if i < len(record) {
			row[header] = record[i]
		}
	}
	return row, nil
}

func (r *CSVReader) Close() error {
	return r.file.Close()
}
