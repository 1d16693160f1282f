package sheet

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorkbookRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.xlsx")

	b := NewBuilder()
	require.NoError(t, b.Add(Sheet{
		Name:   "products",
		Header: []string{"name", "price", "stock"},
		Rows: [][]any{
			{"Soap", 9.99, 5},
			{"Towel", 4.5, 3},
		},
	}))
	require.NoError(t, b.Add(Sheet{
		Name:   "customers",
		Header: []string{"name", "email"},
		Rows:   nil, // header-only sheet
	}))
	require.NoError(t, b.SaveTo(path))

	wb, err := Open(path)
	require.NoError(t, err)
	defer wb.Close()

	require.Equal(t, []string{"products", "customers"}, wb.SheetNames())
	require.True(t, wb.HasSheet("products"))
	require.False(t, wb.HasSheet("orders"))

	header, rows, err := wb.ReadSheet("products")
	require.NoError(t, err)
	require.Equal(t, []string{"name", "price", "stock"}, header)
	require.Len(t, rows, 2)
	require.Equal(t, "Soap", rows[0][0])
	require.Equal(t, "9.99", rows[0][1])

	header, rows, err = wb.ReadSheet("customers")
	require.NoError(t, err)
	require.Equal(t, []string{"name", "email"}, header)
	require.Empty(t, rows)
}

func TestReadSheetPadsShortRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.xlsx")

	b := NewBuilder()
	require.NoError(t, b.Add(Sheet{
		Name:   "orders",
		Header: []string{"a", "b", "c"},
		Rows:   [][]any{{"only-a"}},
	}))
	require.NoError(t, b.SaveTo(path))

	wb, err := Open(path)
	require.NoError(t, err)
	defer wb.Close()

	_, rows, err := wb.ReadSheet("orders")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Len(t, rows[0], 3)
	require.Equal(t, "", rows[0][2])
}

func TestCleanHeader(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Name", "name"},
		{"  Price ", "price"},
		{"\ufeffname", "name"},
		{"=stock", "stock"},
	}
	for _, tt := range tests {
		if got := CleanHeader(tt.in); got != tt.want {
			t.Errorf("CleanHeader(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
