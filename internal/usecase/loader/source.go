package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

const utf8BOM = "\ufeff"

// rowReader yields the cells of one source row per call and io.EOF at the end
type rowReader interface {
	Read() ([]string, error)
	Close() error
}

// openSource picks a reader by file extension: spreadsheets go through excelize,
// everything else is read as comma-separated text
func openSource(path string) (rowReader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return openSpreadsheet(path)
	default:
		return openDelimited(path)
	}
}

type delimitedReader struct {
	file *os.File
	r    *csv.Reader
}

func openDelimited(path string) (rowReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source: %w", err)
	}
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return &delimitedReader{file: f, r: r}, nil
}

func (d *delimitedReader) Read() ([]string, error) {
	return d.r.Read()
}

func (d *delimitedReader) Close() error {
	return d.file.Close()
}

// spreadsheetReader reads the first sheet of a workbook
type spreadsheetReader struct {
	file *excelize.File
	rows *excelize.Rows
}

func openSpreadsheet(path string) (rowReader, error) {
	// Raw values keep display formats such as "#,##0" out of numeric cells
	f, err := excelize.OpenFile(path, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		f.Close()
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return &spreadsheetReader{file: f, rows: rows}, nil
}

func (s *spreadsheetReader) Read() ([]string, error) {
	if !s.rows.Next() {
		if err := s.rows.Error(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	return s.rows.Columns()
}

func (s *spreadsheetReader) Close() error {
	if err := s.rows.Close(); err != nil {
		s.file.Close()
		return err
	}
	return s.file.Close()
}

// normalizeHeader trims header cells and drops a leading byte order mark
func normalizeHeader(cells []string) []string {
	header := make([]string, len(cells))
	for i, cell := range cells {
		if i == 0 {
			cell = strings.TrimPrefix(cell, utf8BOM)
		}
		header[i] = strings.TrimSpace(cell)
	}
	return header
}

func isBlank(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
