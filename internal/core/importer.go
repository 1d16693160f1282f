package core

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jasonnnn886/sheetstore/internal/dataset"
	"github.com/jasonnnn886/sheetstore/internal/sheet"
)

// importWorkbook runs the import pipeline over an open workbook. When only
// is non-empty the pipeline is restricted to that single sheet; otherwise
// all three are required. Sheet presence is validated up front, so a
// missing sheet fails the whole operation with zero mutations applied.
//
// Stages run in dependency order (products, customers, orders) and
// fail-fast: the first stage error aborts the import without touching the
// remaining stages. Each successful stage appends one message to the
// ordered report.
func (s *Service) importWorkbook(ctx context.Context, log *slog.Logger, wb *sheet.Workbook, only string) ([]string, error) {
	required := AllSheets()
	if only != "" {
		required = []string{only}
	}

	var missing []string
	for _, name := range required {
		if !wb.HasSheet(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingSheetsError{Sheets: missing}
	}

	isRequired := func(name string) bool {
		for _, r := range required {
			if r == name {
				return true
			}
		}
		return false
	}

	var messages []string
	for _, entity := range stageOrder {
		name := sheetName[entity]
		if !isRequired(name) {
			continue
		}
		res, err := s.runStage(ctx, wb, entity)
		if err != nil {
			log.Error("import stage failed", "sheet", name, "error", err)
			return nil, fmt.Errorf("%s import failed: %w", name, err)
		}
		log.Info("import stage complete", "sheet", name, "created", res.Created, "updated", res.Updated)
		messages = append(messages, stageMessage(entity, res))
	}
	return messages, nil
}

// runStage reads one sheet, applies cleaning and formatting, and resolves
// every row against the store.
func (s *Service) runStage(ctx context.Context, wb *sheet.Workbook, entity dataset.Entity) (stageResult, error) {
	name := sheetName[entity]

	header, rows, err := wb.ReadSheet(name)
	if err != nil {
		return stageResult{}, err
	}

	var missing []string
	for _, col := range requiredColumns[entity] {
		if !contains(header, col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return stageResult{}, &MissingColumnsError{Sheet: name, Columns: missing}
	}

	t := dataset.New(header, rows)
	dataset.Clean(t, entity, s.defaults)
	dataset.Format(t, entity)

	switch entity {
	case dataset.Product:
		return s.resolveProducts(ctx, t)
	case dataset.Customer:
		return s.resolveCustomers(ctx, t)
	default:
		return s.resolveOrders(ctx, t)
	}
}

func stageMessage(entity dataset.Entity, res stageResult) string {
	switch entity {
	case dataset.Product:
		return fmt.Sprintf("products imported: %d created, %d updated", res.Created, res.Updated)
	case dataset.Customer:
		return fmt.Sprintf("customers imported: %d created, %d already present", res.Created, res.Updated)
	default:
		return fmt.Sprintf("orders imported: %d created", res.Created)
	}
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
