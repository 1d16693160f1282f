// Package sheet wraps excelize with the small reading and writing surface
// the import/export paths need: open a workbook, check sheet presence,
// read one sheet as cleaned header+rows, and write a multi-sheet workbook.
package sheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Workbook is a read handle on a spreadsheet file.
type Workbook struct {
	f *excelize.File
}

// Open opens the workbook at path. Callers must Close it on every exit
// path.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	return &Workbook{f: f}, nil
}

// OpenReader opens a workbook from a stream, e.g. an HTTP upload body.
func OpenReader(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return &Workbook{f: f}, nil
}

// Close releases the workbook handle.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// SheetNames returns the workbook's sheet names in file order.
func (w *Workbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// HasSheet reports whether a sheet with the exact given name exists.
func (w *Workbook) HasSheet(name string) bool {
	for _, s := range w.f.GetSheetList() {
		if s == name {
			return true
		}
	}
	return false
}

// ReadSheet returns the named sheet's header row and data rows. Header
// cells are normalized with CleanHeader, data cells with CleanCell. Short
// rows are padded to the header width so column lookups stay in bounds.
func (w *Workbook) ReadSheet(name string) (header []string, rows [][]string, err error) {
	raw, err := w.f.GetRows(name)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %s: %w", name, err)
	}
	if len(raw) == 0 {
		return nil, nil, nil
	}

	header = make([]string, len(raw[0]))
	for i, h := range raw[0] {
		header[i] = CleanHeader(h)
	}

	rows = make([][]string, 0, len(raw)-1)
	for _, r := range raw[1:] {
		row := make([]string, len(header))
		for i := range header {
			if i < len(r) {
				row[i] = CleanCell(r[i])
			}
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

// CleanHeader normalizes a header cell: strips a UTF-8 BOM and Excel
// formula prefixes, trims whitespace and lowercases.
func CleanHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.TrimPrefix(h, "=")
	return strings.ToLower(strings.TrimSpace(h))
}

// CleanCell trims surrounding whitespace from a data cell.
func CleanCell(c string) string {
	return strings.TrimSpace(c)
}
