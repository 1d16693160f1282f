package seed

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jasonnnn886/sheetstore/internal/sheet"
)

func TestWorkbookShapes(t *testing.T) {
	b, err := Workbook(Options{Products: 4, Customers: 3, Orders: 6, Seed: 1})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "seed.xlsx")
	require.NoError(t, b.SaveTo(path))

	wb, err := sheet.Open(path)
	require.NoError(t, err)
	defer wb.Close()

	header, rows, err := wb.ReadSheet("products")
	require.NoError(t, err)
	require.Equal(t, []string{"name", "price", "stock"}, header)
	require.Len(t, rows, 4)

	_, rows, err = wb.ReadSheet("customers")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	header, rows, err = wb.ReadSheet("orders")
	require.NoError(t, err)
	require.Len(t, rows, 6)
	require.Contains(t, header, "customer_email")
	require.Contains(t, header, "status")
}

func TestWorkbookIsDeterministicForSeed(t *testing.T) {
	write := func() string {
		b, err := Workbook(Options{Products: 2, Customers: 2, Orders: 3, Seed: 42})
		require.NoError(t, err)
		path := filepath.Join(t.TempDir(), "seed.xlsx")
		require.NoError(t, b.SaveTo(path))
		return path
	}

	read := func(path string) [][]string {
		wb, err := sheet.Open(path)
		require.NoError(t, err)
		defer wb.Close()
		_, rows, err := wb.ReadSheet("orders")
		require.NoError(t, err)
		return rows
	}

	require.Equal(t, read(write()), read(write()))
}
