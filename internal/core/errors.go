package core

import (
	"fmt"
	"strings"
)

// MissingSheetsError reports required sheets absent from an input
// workbook. It fails the whole operation before any mutation.
type MissingSheetsError struct {
	Sheets []string
}

func (e *MissingSheetsError) Error() string {
	return fmt.Sprintf("workbook is missing required sheets: %s", strings.Join(e.Sheets, ", "))
}

// MissingColumnsError reports required columns absent from a sheet's
// header row, detected before any of the sheet's rows are processed.
type MissingColumnsError struct {
	Sheet   string
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("sheet %s is missing required columns: %s", e.Sheet, strings.Join(e.Columns, ", "))
}

// RowErrorKind classifies why a single row failed.
type RowErrorKind int

const (
	// KindCoercion: a required field was missing or failed type coercion.
	KindCoercion RowErrorKind = iota
	// KindNotFound: the row references a customer or product that does not
	// exist in the store.
	KindNotFound
	// KindStore: the store rejected the row's mutation.
	KindStore
)

// RowError is a failure scoped to one cleaned row. Under the
// fail-fast-per-stage policy the first RowError aborts the entity stage
// and, with it, the whole import.
type RowError struct {
	Sheet string
	Row   int // 1-based position in the cleaned table
	Field string
	Kind  RowErrorKind
	Err   error
	Msg   string
}

func (e *RowError) Error() string {
	detail := e.Msg
	if detail == "" && e.Err != nil {
		detail = e.Err.Error()
	}
	if e.Field != "" {
		return fmt.Sprintf("%s row %d: %s: %s", e.Sheet, e.Row, e.Field, detail)
	}
	return fmt.Sprintf("%s row %d: %s", e.Sheet, e.Row, detail)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

func coercionErr(sheet string, row int, field, msg string) *RowError {
	return &RowError{Sheet: sheet, Row: row, Field: field, Kind: KindCoercion, Msg: msg}
}
