package core

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jasonnnn886/sheetstore/internal/dataset"
	"github.com/jasonnnn886/sheetstore/internal/model"
	"github.com/jasonnnn886/sheetstore/internal/store"
)

// stageResult tallies what one entity stage did. Rows are applied
// sequentially and commit independently: a failure surfaces as an error
// but earlier rows stay persisted.
type stageResult struct {
	Created int
	Updated int
}

// resolveProducts upserts product rows by name. The batch is deduplicated
// by name first with last-write-wins, so a name appearing twice in one
// sheet ends up with the later row's price and stock.
func (s *Service) resolveProducts(ctx context.Context, t *dataset.Table) (stageResult, error) {
	var res stageResult
	dataset.DedupeBy(t, []string{"name"}, true)

	for i := 0; i < t.Len(); i++ {
		name, rerr := requireText(t, SheetProducts, i, "name")
		if rerr != nil {
			return res, rerr
		}
		price, rerr := requireNumber(t, SheetProducts, i, "price")
		if rerr != nil {
			return res, rerr
		}
		stock, rerr := requireInteger(t, SheetProducts, i, "stock")
		if rerr != nil {
			return res, rerr
		}
		if stock < 0 {
			return res, coercionErr(SheetProducts, i+1, "stock", "must be non-negative")
		}

		existing, err := s.store.FindProductByName(ctx, name)
		switch {
		case err == nil:
			if err := s.store.UpdateProductFields(ctx, existing.ID, price, stock); err != nil {
				return res, storeErr(SheetProducts, i+1, err)
			}
			res.Updated++
		case errors.Is(err, store.ErrNotFound):
			p := &model.Product{Name: name, Price: price, Stock: stock}
			if err := s.store.CreateProduct(ctx, p); err != nil {
				return res, storeErr(SheetProducts, i+1, err)
			}
			res.Created++
		default:
			return res, storeErr(SheetProducts, i+1, err)
		}
	}
	return res, nil
}

// resolveCustomers applies get-or-create semantics keyed on the
// (email, phone) pair. Existing customers are left entirely unchanged;
// name and address only apply on creation.
func (s *Service) resolveCustomers(ctx context.Context, t *dataset.Table) (stageResult, error) {
	var res stageResult
	dataset.DedupeBy(t, []string{"email", "phone"}, false)

	for i := 0; i < t.Len(); i++ {
		email, rerr := requireText(t, SheetCustomers, i, "email")
		if rerr != nil {
			return res, rerr
		}
		phone, rerr := requireText(t, SheetCustomers, i, "phone")
		if rerr != nil {
			return res, rerr
		}

		_, err := s.store.FindCustomerByEmailPhone(ctx, email, phone)
		switch {
		case err == nil:
			res.Updated++ // matched; nothing to write
		case errors.Is(err, store.ErrNotFound):
			c := &model.Customer{
				Name:    t.Cell(i, "name").Value,
				Email:   email,
				Phone:   phone,
				Address: t.Cell(i, "address").Value,
			}
			if err := s.store.CreateCustomer(ctx, c); err != nil {
				return res, storeErr(SheetCustomers, i+1, err)
			}
			res.Created++
		default:
			return res, storeErr(SheetCustomers, i+1, err)
		}
	}
	return res, nil
}

// resolveOrders always creates. Both referenced records must already
// exist; a failed lookup fails the row, and with it the stage.
func (s *Service) resolveOrders(ctx context.Context, t *dataset.Table) (stageResult, error) {
	var res stageResult

	for i := 0; i < t.Len(); i++ {
		email, rerr := requireText(t, SheetOrders, i, "customer_email")
		if rerr != nil {
			return res, rerr
		}
		phone, rerr := requireText(t, SheetOrders, i, "customer_phone")
		if rerr != nil {
			return res, rerr
		}
		productName, rerr := requireText(t, SheetOrders, i, "product_name")
		if rerr != nil {
			return res, rerr
		}
		quantity, rerr := requireInteger(t, SheetOrders, i, "quantity")
		if rerr != nil {
			return res, rerr
		}
		if quantity <= 0 {
			return res, coercionErr(SheetOrders, i+1, "quantity", "must be positive")
		}
		totalPrice, rerr := requireNumber(t, SheetOrders, i, "total_price")
		if rerr != nil {
			return res, rerr
		}

		status := model.OrderStatus(strings.ToLower(t.Cell(i, "status").Value))
		if !status.Valid() {
			return res, coercionErr(SheetOrders, i+1, "status",
				"must be one of pending, completed, cancelled")
		}

		customer, err := s.store.FindCustomerByEmailPhone(ctx, email, phone)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return res, &RowError{
					Sheet: SheetOrders, Row: i + 1, Kind: KindNotFound, Err: err,
					Msg: "customer with email " + email + " and phone " + phone + " not found",
				}
			}
			return res, storeErr(SheetOrders, i+1, err)
		}
		product, err := s.store.FindProductByName(ctx, productName)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return res, &RowError{
					Sheet: SheetOrders, Row: i + 1, Kind: KindNotFound, Err: err,
					Msg: "product " + productName + " not found",
				}
			}
			return res, storeErr(SheetOrders, i+1, err)
		}

		o := &model.Order{
			CustomerID: customer.ID,
			ProductID:  product.ID,
			Quantity:   quantity,
			TotalPrice: totalPrice,
			OrderDate:  s.defaults.Now(),
			Status:     status,
		}
		if err := s.store.CreateOrder(ctx, o); err != nil {
			return res, storeErr(SheetOrders, i+1, err)
		}
		res.Created++
	}
	return res, nil
}

func requireText(t *dataset.Table, sheet string, i int, col string) (string, *RowError) {
	c := t.Cell(i, col)
	if c.State != dataset.Present {
		return "", coercionErr(sheet, i+1, col, "missing value")
	}
	return c.Value, nil
}

func requireNumber(t *dataset.Table, sheet string, i int, col string) (decimal.Decimal, *RowError) {
	c := t.Cell(i, col)
	switch c.State {
	case dataset.Present:
		n := dataset.ToNumber(c.Value)
		if !n.Valid {
			return decimal.Decimal{}, coercionErr(sheet, i+1, col, "invalid numeric value "+strconv.Quote(c.Value))
		}
		return n.Dec, nil
	case dataset.Invalid:
		return decimal.Decimal{}, coercionErr(sheet, i+1, col, "invalid numeric value "+strconv.Quote(c.Value))
	default:
		return decimal.Decimal{}, coercionErr(sheet, i+1, col, "missing value")
	}
}

func requireInteger(t *dataset.Table, sheet string, i int, col string) (int, *RowError) {
	c := t.Cell(i, col)
	switch c.State {
	case dataset.Present:
		n := dataset.ToInteger(c.Value)
		if !n.Valid {
			return 0, coercionErr(sheet, i+1, col, "invalid integer value "+strconv.Quote(c.Value))
		}
		return n.Int, nil
	case dataset.Invalid:
		return 0, coercionErr(sheet, i+1, col, "invalid integer value "+strconv.Quote(c.Value))
	default:
		return 0, coercionErr(sheet, i+1, col, "missing value")
	}
}

func storeErr(sheet string, row int, err error) *RowError {
	return &RowError{Sheet: sheet, Row: row, Kind: KindStore, Err: err, Msg: "store write failed: " + err.Error()}
}
