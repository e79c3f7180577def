// Package output - CSV rendering
package output

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"plan-migrate/internal/errors"
)

// WriteCSV renders rows in input order under the schema's header
func WriteCSV(w io.Writer, version SchemaVersion, rows []Row) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(version.Columns()); err != nil {
		return errors.Output("writing CSV header", err)
	}
	for _, row := range rows {
		if err := writer.Write(version.Record(row)); err != nil {
			return errors.Output("writing CSV row", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Output("flushing CSV", err)
	}
	return nil
}

// WriteCSVFile writes rows to a file path, creating parent directories
func WriteCSVFile(path string, version SchemaVersion, rows []Row) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Output("creating output directory", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Output("creating output file", err)
	}
	defer file.Close()

	return WriteCSV(file, version, rows)
}
