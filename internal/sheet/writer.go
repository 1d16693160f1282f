package sheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Sheet is one tab of an output workbook. Cells may be any value excelize
// accepts (string, int, float64, time.Time, ...).
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]any
}

// Builder assembles a multi-sheet workbook in memory.
type Builder struct {
	f     *excelize.File
	first bool
}

// NewBuilder returns an empty workbook builder.
func NewBuilder() *Builder {
	return &Builder{f: excelize.NewFile(), first: true}
}

// Add appends a sheet. Every sheet gets its header row even when it has no
// data rows.
func (b *Builder) Add(s Sheet) error {
	if b.first {
		// Rename the default sheet rather than leaving an empty "Sheet1".
		if err := b.f.SetSheetName("Sheet1", s.Name); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
		b.first = false
	} else {
		if _, err := b.f.NewSheet(s.Name); err != nil {
			return fmt.Errorf("add sheet %s: %w", s.Name, err)
		}
	}

	header := make([]any, len(s.Header))
	for i, h := range s.Header {
		header[i] = h
	}
	if err := b.writeRow(s.Name, 1, header); err != nil {
		return err
	}
	for i, row := range s.Rows {
		if err := b.writeRow(s.Name, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) writeRow(sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := b.f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}

// SaveTo writes the workbook to path and closes it.
func (b *Builder) SaveTo(path string) error {
	defer b.f.Close()
	if err := b.f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

// WriteTo streams the workbook to w and closes it. Implements the sink
// side of export-as-download.
func (b *Builder) WriteTo(w io.Writer) error {
	defer b.f.Close()
	if _, err := b.f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
