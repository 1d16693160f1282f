package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/jasonnnn886/sheetstore/internal/dataset"
	"github.com/jasonnnn886/sheetstore/internal/model"
	"github.com/jasonnnn886/sheetstore/internal/sheet"
	"github.com/jasonnnn886/sheetstore/internal/store"
)

// Service is the single entry point for data operations. It owns the
// store handle and the cleaning defaults and composes the import pipeline
// and the export serializer.
type Service struct {
	store    *store.Store
	defaults dataset.Defaults
}

// NewService creates a Service. defaults.Status and defaults.Now must be
// set; they are the explicit configuration behind the "pending" literal
// and the stamped timestamps.
func NewService(st *store.Store, defaults dataset.Defaults) *Service {
	return &Service{store: st, defaults: defaults}
}

// Request describes one Process invocation. All fields are optional, but
// at least Input or Output should be set for the call to do anything.
type Request struct {
	// Input is a workbook to import.
	Input string
	// Output is a workbook path to export the store contents to.
	Output string
	// Sheet restricts the import to a single sheet name.
	Sheet string
}

// Process performs, in order: import (when Input is set, restricted to
// Sheet when that is set), then export (when Output is set). It returns a
// newline-joined report of per-step confirmations. Any failure
// short-circuits the remaining steps; an import failure prevents the
// export from running even when Output was given.
func (s *Service) Process(ctx context.Context, req Request) (string, error) {
	runID := uuid.NewString()
	log := slog.With("run_id", runID)

	var messages []string

	if req.Input != "" {
		if req.Sheet != "" && !ValidSheet(req.Sheet) {
			return "", fmt.Errorf("unknown sheet %q (valid: %s)", req.Sheet, strings.Join(AllSheets(), ", "))
		}

		wb, err := sheet.Open(req.Input)
		if err != nil {
			return "", err
		}

		imported, err := s.importWorkbook(ctx, log, wb, req.Sheet)
		closeErr := wb.Close()
		if err != nil {
			return "", err
		}
		if closeErr != nil {
			return "", fmt.Errorf("close workbook: %w", closeErr)
		}
		messages = append(messages, imported...)
	}

	if req.Output != "" {
		if err := s.ExportFile(ctx, req.Output); err != nil {
			log.Error("export failed", "path", req.Output, "error", err)
			return "", fmt.Errorf("export failed: %w", err)
		}
		log.Info("export complete", "path", req.Output)
		messages = append(messages, "data exported to "+req.Output)
	}

	if len(messages) == 0 {
		return "operation completed", nil
	}
	return strings.Join(messages, "\n"), nil
}

// ImportReader runs the import pipeline on a streamed workbook, e.g. an
// uploaded file. Semantics match the Input half of Process.
func (s *Service) ImportReader(ctx context.Context, r io.Reader, only string) (string, error) {
	runID := uuid.NewString()
	log := slog.With("run_id", runID)

	if only != "" && !ValidSheet(only) {
		return "", fmt.Errorf("unknown sheet %q (valid: %s)", only, strings.Join(AllSheets(), ", "))
	}

	wb, err := sheet.OpenReader(r)
	if err != nil {
		return "", err
	}

	messages, err := s.importWorkbook(ctx, log, wb, only)
	closeErr := wb.Close()
	if err != nil {
		return "", err
	}
	if closeErr != nil {
		return "", fmt.Errorf("close workbook: %w", closeErr)
	}
	return strings.Join(messages, "\n"), nil
}

// Clear deletes every product, customer and order. Dependent orders go
// with their parents.
func (s *Service) Clear(ctx context.Context) error {
	return s.store.ClearAll(ctx)
}

// Counts returns per-entity row counts for the admin surface.
func (s *Service) Counts(ctx context.Context) (products, customers, orders int64, err error) {
	return s.store.Counts(ctx)
}

// Products lists products filtered by an optional search term.
func (s *Service) Products(ctx context.Context, search string) ([]model.Product, error) {
	return s.store.SearchProducts(ctx, search)
}

// Customers lists customers filtered by an optional search term.
func (s *Service) Customers(ctx context.Context, search string) ([]model.Customer, error) {
	return s.store.SearchCustomers(ctx, search)
}

// Orders lists orders filtered by an optional search term and status.
func (s *Service) Orders(ctx context.Context, search string, status model.OrderStatus) ([]model.Order, error) {
	return s.store.SearchOrders(ctx, search, status)
}
