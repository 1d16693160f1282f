package core

import "github.com/jasonnnn886/sheetstore/internal/dataset"

// Sheets are addressed by exact lowercase name in both directions.
const (
	SheetProducts  = "products"
	SheetCustomers = "customers"
	SheetOrders    = "orders"
)

// stageOrder fixes the import sequence: orders reference the other two,
// so they always go last.
var stageOrder = []dataset.Entity{dataset.Product, dataset.Customer, dataset.Order}

// sheetName maps an entity to its sheet.
var sheetName = map[dataset.Entity]string{
	dataset.Product:  SheetProducts,
	dataset.Customer: SheetCustomers,
	dataset.Order:    SheetOrders,
}

// requiredColumns lists the input columns each sheet must carry.
// order_date is optional: the cleaning stage stamps it when absent.
var requiredColumns = map[dataset.Entity][]string{
	dataset.Product:  {"name", "price", "stock"},
	dataset.Customer: {"name", "email", "phone", "address"},
	dataset.Order:    {"customer_email", "customer_phone", "product_name", "quantity", "total_price", "status"},
}

// AllSheets returns the sheet names in import order.
func AllSheets() []string {
	out := make([]string, 0, len(stageOrder))
	for _, e := range stageOrder {
		out = append(out, sheetName[e])
	}
	return out
}

// ValidSheet reports whether name is one of the three known sheets.
func ValidSheet(name string) bool {
	for _, e := range stageOrder {
		if sheetName[e] == name {
			return true
		}
	}
	return false
}
