// Package seed generates sample workbooks for trying out the import
// pipeline.
package seed

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/jasonnnn886/sheetstore/internal/sheet"
)

var productNames = []string{
	"Laundry Detergent", "Toilet Paper", "Shampoo", "Shower Gel", "Toothpaste",
	"Dish Soap", "Trash Bags", "Plastic Wrap", "Paper Towels", "Washing Powder",
}

var firstNames = []string{"Amy", "Ben", "Cora", "Dan", "Elle", "Finn", "Gina", "Hank"}
var lastNames = []string{"Lee", "Chen", "Wang", "Smith", "Jones", "Patel", "Kim", "Garcia"}

var statuses = []string{"pending", "completed", "cancelled"}

// Options controls how much sample data is generated.
type Options struct {
	Products  int
	Customers int
	Orders    int
	Seed      int64
}

// Workbook builds a sample workbook with consistent cross-references: every
// order points at a generated customer and product, and total_price is
// quantity times the product price.
func Workbook(opts Options) (*sheet.Builder, error) {
	if opts.Products <= 0 {
		opts.Products = 10
	}
	if opts.Products > len(productNames) {
		opts.Products = len(productNames)
	}
	if opts.Customers <= 0 {
		opts.Customers = 5
	}
	if opts.Orders <= 0 {
		opts.Orders = 20
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	type product struct {
		name  string
		price decimal.Decimal
	}
	products := make([]product, opts.Products)
	productRows := make([][]any, opts.Products)
	for i := range products {
		price := decimal.NewFromFloat(100 + rng.Float64()*900).Round(2)
		products[i] = product{name: productNames[i], price: price}
		productRows[i] = []any{productNames[i], price.InexactFloat64(), 10 + rng.Intn(91)}
	}

	type customer struct{ email, phone string }
	customers := make([]customer, opts.Customers)
	customerRows := make([][]any, opts.Customers)
	for i := range customers {
		name := firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
		email := fmt.Sprintf("customer%d@example.com", i+1)
		phone := fmt.Sprintf("1%09d", 300000000+rng.Intn(100000000))
		customers[i] = customer{email: email, phone: phone}
		customerRows[i] = []any{name, email, phone, fmt.Sprintf("%d Example Street", 1+rng.Intn(200))}
	}

	orderRows := make([][]any, opts.Orders)
	for i := range orderRows {
		p := products[rng.Intn(len(products))]
		c := customers[rng.Intn(len(customers))]
		qty := 1 + rng.Intn(5)
		total := p.price.Mul(decimal.NewFromInt(int64(qty)))
		orderRows[i] = []any{
			c.email, c.phone, p.name, qty,
			total.InexactFloat64(), statuses[rng.Intn(len(statuses))],
		}
	}

	b := sheet.NewBuilder()
	if err := b.Add(sheet.Sheet{
		Name:   "products",
		Header: []string{"name", "price", "stock"},
		Rows:   productRows,
	}); err != nil {
		return nil, err
	}
	if err := b.Add(sheet.Sheet{
		Name:   "customers",
		Header: []string{"name", "email", "phone", "address"},
		Rows:   customerRows,
	}); err != nil {
		return nil, err
	}
	if err := b.Add(sheet.Sheet{
		Name:   "orders",
		Header: []string{"customer_email", "customer_phone", "product_name", "quantity", "total_price", "status"},
		Rows:   orderRows,
	}); err != nil {
		return nil, err
	}
	return b, nil
}
