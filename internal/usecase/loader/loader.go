// Package loader reads a header-keyed dataset, validates each row and keeps
// the accepted records in source order.
package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/simaogato/statflow-etl/internal/domain"
	"github.com/simaogato/statflow-etl/internal/logger"
	"github.com/simaogato/statflow-etl/internal/usecase/validation"
)

// Summary counts what happened to the rows of one source
type Summary struct {
	Source    string
	Processed int
	Accepted  int
	Rejected  int
}

// Dataset is the ordered list of accepted records plus the load summary
type Dataset[T any] struct {
	Records []T
	Summary Summary
}

// Load reads the source at path, applies validate to every data row and returns
// the accepted records in file order. Rejected rows are logged and dropped.
// A missing path returns an error wrapping domain.ErrSourceNotFound.
func Load[T any](path string, validate validation.RowValidator[T], log *logger.Logger) (*Dataset[T], error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat source %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrSourceNotFound, path)
	}

	reader, err := openSource(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	dataset := &Dataset[T]{
		Records: []T{},
		Summary: Summary{Source: path},
	}

	first, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return dataset, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	header := normalizeHeader(first)

	for row := 1; ; row++ {
		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s row %d: %w", path, row, err)
		}
		if isBlank(cells) {
			continue
		}

		dataset.Summary.Processed++
		outcome := validate(toRawRow(header, cells))

		if record, ok := outcome.Record(); ok {
			dataset.Records = append(dataset.Records, record)
			dataset.Summary.Accepted++
			continue
		}

		rejection, _ := outcome.Rejection()
		dataset.Summary.Rejected++
		log.Warn(fmt.Sprintf("bad data in %s for %s", rejection.Field, rejection.Identity),
			"source", path,
			"row", row,
			"field", rejection.Field,
			"identity", rejection.Identity,
			"value", rejection.Value,
			"reason", rejection.Reason,
		)
	}

	return dataset, nil
}

// toRawRow keys cells by header name; cells beyond the header are ignored and
// missing trailing cells read as empty
func toRawRow(header, cells []string) domain.RawRow {
	row := make(domain.RawRow, len(header))
	for i, name := range header {
		if name == "" {
			continue
		}
		if i < len(cells) {
			row[name] = cells[i]
		} else {
			row[name] = ""
		}
	}
	return row
}
