package core

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jasonnnn886/sheetstore/internal/dataset"
	"github.com/jasonnnn886/sheetstore/internal/model"
	"github.com/jasonnnn886/sheetstore/internal/sheet"
	"github.com/jasonnnn886/sheetstore/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	svc := NewService(st, dataset.Defaults{
		Status: "pending",
		Now:    func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) },
	})
	return svc, st
}

// writeWorkbook writes the given sheets to a temp workbook and returns its
// path.
func writeWorkbook(t *testing.T, sheets ...sheet.Sheet) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.xlsx")
	b := sheet.NewBuilder()
	for _, s := range sheets {
		require.NoError(t, b.Add(s))
	}
	require.NoError(t, b.SaveTo(path))
	return path
}

func productsSheet(rows ...[]any) sheet.Sheet {
	return sheet.Sheet{Name: SheetProducts, Header: []string{"name", "price", "stock"}, Rows: rows}
}

func customersSheet(rows ...[]any) sheet.Sheet {
	return sheet.Sheet{Name: SheetCustomers, Header: []string{"name", "email", "phone", "address"}, Rows: rows}
}

func ordersSheet(rows ...[]any) sheet.Sheet {
	return sheet.Sheet{
		Name:   SheetOrders,
		Header: []string{"customer_email", "customer_phone", "product_name", "quantity", "total_price", "status"},
		Rows:   rows,
	}
}

func TestImportAllSheets(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	path := writeWorkbook(t,
		productsSheet([]any{"Soap", 9.99, 5}, []any{"Towel", 4.5, 3}),
		customersSheet([]any{"Amy", "amy@example.com", "123", "1 Main St"}),
		ordersSheet([]any{"amy@example.com", "123", "Soap", 2, 19.98, "completed"}),
	)

	report, err := svc.Process(ctx, Request{Input: path})
	require.NoError(t, err)
	require.Contains(t, report, "products imported: 2 created, 0 updated")
	require.Contains(t, report, "customers imported: 1 created, 0 already present")
	require.Contains(t, report, "orders imported: 1 created")

	products, customers, orders, err := st.Counts(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, products)
	require.EqualValues(t, 1, customers)
	require.EqualValues(t, 1, orders)
}

func TestImportIsIdempotentForProducts(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	path := writeWorkbook(t, productsSheet([]any{"Soap", 9.99, 5}))

	_, err := svc.Process(ctx, Request{Input: path, Sheet: SheetProducts})
	require.NoError(t, err)
	report, err := svc.Process(ctx, Request{Input: path, Sheet: SheetProducts})
	require.NoError(t, err)
	require.Contains(t, report, "0 created, 1 updated")

	p, err := st.FindProductByName(ctx, "Soap")
	require.NoError(t, err)
	require.True(t, p.Price.Equal(decimal.RequireFromString("9.99")))
	require.Equal(t, 5, p.Stock)

	products, _, _, err := st.Counts(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, products)
}

func TestDuplicateProductNameLastRowWins(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	path := writeWorkbook(t, productsSheet(
		[]any{"Soap", 9.99, 5},
		[]any{"Soap", 7.0, 8},
	))

	_, err := svc.Process(ctx, Request{Input: path, Sheet: SheetProducts})
	require.NoError(t, err)

	p, err := st.FindProductByName(ctx, "Soap")
	require.NoError(t, err)
	require.True(t, p.Price.Equal(decimal.RequireFromString("7")))
	require.Equal(t, 8, p.Stock)
}

func TestExistingCustomerIsNotOverwritten(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	first := writeWorkbook(t, customersSheet([]any{"Amy", "amy@example.com", "123", "1 Main St"}))
	_, err := svc.Process(ctx, Request{Input: first, Sheet: SheetCustomers})
	require.NoError(t, err)

	second := writeWorkbook(t, customersSheet([]any{"Amelia", "amy@example.com", "123", "2 Other St"}))
	_, err = svc.Process(ctx, Request{Input: second, Sheet: SheetCustomers})
	require.NoError(t, err)

	c, err := st.FindCustomerByEmailPhone(ctx, "amy@example.com", "123")
	require.NoError(t, err)
	require.Equal(t, "Amy", c.Name)
	require.Equal(t, "1 Main St", c.Address)
}

func TestOrderReferencingUnknownProductFailsStage(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	path := writeWorkbook(t,
		productsSheet([]any{"Soap", 9.99, 5}),
		customersSheet([]any{"Amy", "amy@example.com", "123", "1 Main St"}),
		ordersSheet([]any{"amy@example.com", "123", "Nonexistent", 1, 9.99, "pending"}),
	)

	_, err := svc.Process(ctx, Request{Input: path})
	require.Error(t, err)
	require.Contains(t, err.Error(), "orders import failed")
	require.Contains(t, err.Error(), "not found")

	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	require.Equal(t, KindNotFound, rowErr.Kind)

	// Earlier stages committed; the failing order was not created.
	products, customers, orders, err := st.Counts(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, products)
	require.EqualValues(t, 1, customers)
	require.Zero(t, orders)
}

func TestMissingSheetFailsWithZeroMutations(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	path := writeWorkbook(t,
		productsSheet([]any{"Soap", 9.99, 5}),
		ordersSheet(),
	)

	_, err := svc.Process(ctx, Request{Input: path})
	require.Error(t, err)

	var missing *MissingSheetsError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, []string{"customers"}, missing.Sheets)

	products, customers, orders, err := st.Counts(ctx)
	require.NoError(t, err)
	require.Zero(t, products)
	require.Zero(t, customers)
	require.Zero(t, orders)
}

func TestInvalidPriceFailsProductStage(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	path := writeWorkbook(t, productsSheet([]any{"Soap", "not a price", 5}))

	_, err := svc.Process(ctx, Request{Input: path, Sheet: SheetProducts})
	require.Error(t, err)
	require.Contains(t, err.Error(), "products import failed")
	require.Contains(t, err.Error(), "price")

	products, _, _, err := st.Counts(ctx)
	require.NoError(t, err)
	require.Zero(t, products)
}

func TestMissingRequiredColumnFailsStage(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	path := writeWorkbook(t, sheet.Sheet{
		Name:   SheetProducts,
		Header: []string{"name", "stock"},
		Rows:   [][]any{{"Soap", 5}},
	})

	_, err := svc.Process(ctx, Request{Input: path, Sheet: SheetProducts})
	require.Error(t, err)

	var cols *MissingColumnsError
	require.ErrorAs(t, err, &cols)
	require.Equal(t, []string{"price"}, cols.Columns)
}

func TestStatusDefaultApplied(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	path := writeWorkbook(t,
		productsSheet([]any{"Soap", 9.99, 5}),
		customersSheet([]any{"Amy", "amy@example.com", "123", "1 Main St"}),
		ordersSheet([]any{"amy@example.com", "123", "Soap", 1, 9.99, ""}),
	)

	_, err := svc.Process(ctx, Request{Input: path})
	require.NoError(t, err)

	orders, err := st.Orders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, model.StatusPending, orders[0].Status)
}

func TestUnknownStatusFailsRow(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	path := writeWorkbook(t,
		productsSheet([]any{"Soap", 9.99, 5}),
		customersSheet([]any{"Amy", "amy@example.com", "123", "1 Main St"}),
		ordersSheet([]any{"amy@example.com", "123", "Soap", 1, 9.99, "shipped"}),
	)

	_, err := svc.Process(ctx, Request{Input: path})
	require.Error(t, err)
	require.Contains(t, err.Error(), "status")
}

func TestUnknownSheetFilterRejected(t *testing.T) {
	svc, _ := newTestService(t)

	path := writeWorkbook(t, productsSheet())
	_, err := svc.Process(context.Background(), Request{Input: path, Sheet: "inventory"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown sheet")
}

func TestRoundTripDuplicatesOnlyOrders(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	input := writeWorkbook(t,
		productsSheet([]any{"Soap", 9.99, 5}, []any{"Towel", 4.5, 3}),
		customersSheet([]any{"Amy", "amy@example.com", "123", "1 Main St"}),
		ordersSheet(
			[]any{"amy@example.com", "123", "Soap", 2, 19.98, "completed"},
			[]any{"amy@example.com", "123", "Towel", 1, 4.5, "pending"},
		),
	)
	_, err := svc.Process(ctx, Request{Input: input})
	require.NoError(t, err)

	exported := filepath.Join(t.TempDir(), "export.xlsx")
	_, err = svc.Process(ctx, Request{Output: exported})
	require.NoError(t, err)

	_, err = svc.Process(ctx, Request{Input: exported})
	require.NoError(t, err)

	// Products and customers reconcile by natural key; orders append.
	products, customers, orders, err := st.Counts(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, products)
	require.EqualValues(t, 1, customers)
	require.EqualValues(t, 4, orders)

	p, err := st.FindProductByName(ctx, "Soap")
	require.NoError(t, err)
	require.True(t, p.Price.Equal(decimal.RequireFromString("9.99")))
	require.Equal(t, 5, p.Stock)
}

func TestExportEmptyStoreWritesHeaderOnlySheets(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "empty.xlsx")
	_, err := svc.Process(ctx, Request{Output: path})
	require.NoError(t, err)

	wb, err := sheet.Open(path)
	require.NoError(t, err)
	defer wb.Close()

	require.Equal(t, []string{SheetProducts, SheetCustomers, SheetOrders}, wb.SheetNames())
	for _, name := range AllSheets() {
		header, rows, err := wb.ReadSheet(name)
		require.NoError(t, err)
		require.NotEmpty(t, header, "sheet %s must keep its header row", name)
		require.Empty(t, rows)
	}
}

func TestImportFailurePreventsExport(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	input := writeWorkbook(t, productsSheet([]any{"Soap", "bad", 5}))
	output := filepath.Join(t.TempDir(), "out.xlsx")

	_, err := svc.Process(ctx, Request{Input: input, Output: output, Sheet: SheetProducts})
	require.Error(t, err)

	_, statErr := sheet.Open(output)
	require.Error(t, statErr, "export must not run after an import failure")
}

func TestClear(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	path := writeWorkbook(t,
		productsSheet([]any{"Soap", 9.99, 5}),
		customersSheet([]any{"Amy", "amy@example.com", "123", "1 Main St"}),
		ordersSheet([]any{"amy@example.com", "123", "Soap", 1, 9.99, "pending"}),
	)
	_, err := svc.Process(ctx, Request{Input: path})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx))

	products, customers, orders, err := st.Counts(ctx)
	require.NoError(t, err)
	require.Zero(t, products)
	require.Zero(t, customers)
	require.Zero(t, orders)
}

func TestRowErrorKinds(t *testing.T) {
	coercion := coercionErr(SheetProducts, 3, "price", "missing value")
	require.Equal(t, KindCoercion, coercion.Kind)
	require.Contains(t, coercion.Error(), "products row 3")
	require.Contains(t, coercion.Error(), "price")

	notFound := &RowError{Sheet: SheetOrders, Row: 1, Kind: KindNotFound, Msg: "product X not found"}
	require.Contains(t, notFound.Error(), "product X not found")
	require.False(t, errors.Is(notFound, coercion))
}
