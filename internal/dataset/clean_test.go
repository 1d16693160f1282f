package dataset

import (
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func testDefaults() Defaults {
	return Defaults{Status: "pending", Now: fixedNow}
}

func TestCleanDropsEmptyRows(t *testing.T) {
	tbl := New([]string{"name", "price", "stock"}, [][]string{
		{"Soap", "9.99", "5"},
		{"", "", ""},
		{"Towel", "4.50", "3"},
	})

	Clean(tbl, Product, testDefaults())

	if tbl.Len() != 2 {
		t.Fatalf("expected 2 rows after cleaning, got %d", tbl.Len())
	}
	if got := tbl.Cell(1, "name").Value; got != "Towel" {
		t.Errorf("expected second row to be Towel, got %q", got)
	}
}

func TestCleanDropsExactDuplicates(t *testing.T) {
	tbl := New([]string{"name", "price", "stock"}, [][]string{
		{"Soap", "9.99", "5"},
		{"Soap", "9.99", "5"},
		{"Soap", "8.00", "5"}, // differs in price, kept
	})

	Clean(tbl, Product, testDefaults())

	if tbl.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", tbl.Len())
	}
}

func TestCleanStampsOrderDateWhenColumnAbsent(t *testing.T) {
	tbl := New([]string{"customer_email", "status"}, [][]string{
		{"a@example.com", "completed"},
		{"b@example.com", ""},
	})

	Clean(tbl, Order, testDefaults())

	if !tbl.HasColumn("order_date") {
		t.Fatal("expected order_date column to be added")
	}
	want := "2024-06-01 12:00:00"
	for i := 0; i < tbl.Len(); i++ {
		c := tbl.Cell(i, "order_date")
		if c.State != Present || c.Value != want {
			t.Errorf("row %d order_date = %+v, want present %q", i, c, want)
		}
	}
}

func TestCleanCoercesOrderDates(t *testing.T) {
	tbl := New([]string{"order_date", "status"}, [][]string{
		{"2024/03/15", "pending"},
		{"not a date", "pending"},
		{"", "pending"},
	})

	Clean(tbl, Order, testDefaults())

	if c := tbl.Cell(0, "order_date"); c.State != Present || c.Value != "2024-03-15 00:00:00" {
		t.Errorf("parseable date = %+v", c)
	}
	if c := tbl.Cell(1, "order_date"); c.State != Invalid {
		t.Errorf("unparseable date should be invalid, got %+v", c)
	}
	if c := tbl.Cell(2, "order_date"); c.State != Absent {
		t.Errorf("empty date should stay absent, got %+v", c)
	}
}

func TestCleanFillsMissingStatus(t *testing.T) {
	tbl := New([]string{"order_date", "status"}, [][]string{
		{"2024-03-15", ""},
		{"2024-03-16", "completed"},
	})

	Clean(tbl, Order, testDefaults())

	if got := tbl.Cell(0, "status").Value; got != "pending" {
		t.Errorf("missing status = %q, want pending", got)
	}
	if got := tbl.Cell(1, "status").Value; got != "completed" {
		t.Errorf("existing status overwritten: %q", got)
	}
}

func TestFormatMarksUnparseableNumericsInvalid(t *testing.T) {
	tbl := New([]string{"name", "price", "stock"}, [][]string{
		{"Soap", "abc", "5"},
		{"Towel", "4.50", ""},
	})

	Clean(tbl, Product, testDefaults())
	Format(tbl, Product)

	if c := tbl.Cell(0, "price"); c.State != Invalid || c.Value != "abc" {
		t.Errorf("bad price should be invalid keeping raw text, got %+v", c)
	}
	if c := tbl.Cell(1, "price"); c.State != Present {
		t.Errorf("good price should stay present, got %+v", c)
	}
	if c := tbl.Cell(1, "stock"); c.State != Absent {
		t.Errorf("empty stock should stay absent, got %+v", c)
	}
}

func TestDedupeByKeepLast(t *testing.T) {
	tbl := New([]string{"name", "price", "stock"}, [][]string{
		{"Soap", "9.99", "5"},
		{"Towel", "4.50", "3"},
		{"Soap", "7.00", "8"},
	})

	DedupeBy(tbl, []string{"name"}, true)

	if tbl.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", tbl.Len())
	}
	var soapPrice string
	for i := 0; i < tbl.Len(); i++ {
		if tbl.Cell(i, "name").Value == "Soap" {
			soapPrice = tbl.Cell(i, "price").Value
		}
	}
	if soapPrice != "7.00" {
		t.Errorf("expected later Soap row to win, got price %q", soapPrice)
	}
}

func TestDedupeByKeepFirst(t *testing.T) {
	tbl := New([]string{"email", "phone", "name"}, [][]string{
		{"a@example.com", "123", "First"},
		{"a@example.com", "123", "Second"},
		{"b@example.com", "123", "Other"},
	})

	DedupeBy(tbl, []string{"email", "phone"}, false)

	if tbl.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", tbl.Len())
	}
	if got := tbl.Cell(0, "name").Value; got != "First" {
		t.Errorf("expected first occurrence kept, got %q", got)
	}
}
