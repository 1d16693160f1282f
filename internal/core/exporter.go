package core

import (
	"context"
	"fmt"
	"io"

	"github.com/jasonnnn886/sheetstore/internal/dataset"
	"github.com/jasonnnn886/sheetstore/internal/sheet"
)

// Column order of each exported sheet. created_at and order_date are
// written timezone-naive in the canonical datetime layout.
var (
	productHeader  = []string{"name", "price", "stock", "created_at"}
	customerHeader = []string{"name", "email", "phone", "address", "created_at"}
	orderHeader    = []string{"customer_name", "customer_email", "customer_phone",
		"product_name", "quantity", "total_price", "order_date", "status"}
)

// buildWorkbook reads every record of each entity and renders the three
// sheets. No sheet is omitted: an empty store still yields header-only
// sheets.
func (s *Service) buildWorkbook(ctx context.Context) (*sheet.Builder, error) {
	products, err := s.store.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("read products: %w", err)
	}
	customers, err := s.store.Customers(ctx)
	if err != nil {
		return nil, fmt.Errorf("read customers: %w", err)
	}
	orders, err := s.store.Orders(ctx)
	if err != nil {
		return nil, fmt.Errorf("read orders: %w", err)
	}

	b := sheet.NewBuilder()

	productRows := make([][]any, len(products))
	for i, p := range products {
		productRows[i] = []any{
			p.Name,
			p.Price.InexactFloat64(),
			p.Stock,
			p.CreatedAt.Format(dataset.DateTimeFormat),
		}
	}
	if err := b.Add(sheet.Sheet{Name: SheetProducts, Header: productHeader, Rows: productRows}); err != nil {
		return nil, err
	}

	customerRows := make([][]any, len(customers))
	for i, c := range customers {
		customerRows[i] = []any{
			c.Name, c.Email, c.Phone, c.Address,
			c.CreatedAt.Format(dataset.DateTimeFormat),
		}
	}
	if err := b.Add(sheet.Sheet{Name: SheetCustomers, Header: customerHeader, Rows: customerRows}); err != nil {
		return nil, err
	}

	orderRows := make([][]any, len(orders))
	for i, o := range orders {
		orderRows[i] = []any{
			o.Customer.Name,
			o.Customer.Email,
			o.Customer.Phone,
			o.Product.Name,
			o.Quantity,
			o.TotalPrice.InexactFloat64(),
			o.OrderDate.Format(dataset.DateTimeFormat),
			string(o.Status),
		}
	}
	if err := b.Add(sheet.Sheet{Name: SheetOrders, Header: orderHeader, Rows: orderRows}); err != nil {
		return nil, err
	}

	return b, nil
}

// ExportFile writes the full store contents to a workbook at path.
func (s *Service) ExportFile(ctx context.Context, path string) error {
	b, err := s.buildWorkbook(ctx)
	if err != nil {
		return err
	}
	return b.SaveTo(path)
}

// ExportTo streams the full store contents as a workbook to w, e.g. an
// HTTP response for a download.
func (s *Service) ExportTo(ctx context.Context, w io.Writer) error {
	b, err := s.buildWorkbook(ctx)
	if err != nil {
		return err
	}
	return b.WriteTo(w)
}
