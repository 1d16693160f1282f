// Package dataset implements the cleaning and formatting stage: pure
// transformations over raw sheet rows that never fail. Unparseable cells
// are marked invalid rather than raising, so the resolver can tell "column
// missing or empty" apart from "value present but unusable".
package dataset

// Entity tags a table with the record type its rows describe.
type Entity string

const (
	Product  Entity = "product"
	Customer Entity = "customer"
	Order    Entity = "order"
)

// State describes what a cleaned cell holds.
type State int

const (
	// Absent: the column was missing from the sheet or the cell was empty.
	Absent State = iota
	// Present: the cell holds a usable value.
	Present
	// Invalid: the cell held a value that failed coercion. Value keeps the
	// raw text for error messages.
	Invalid
)

// Cell is a single cleaned value.
type Cell struct {
	Value string
	State State
}

func present(v string) Cell { return Cell{Value: v, State: Present} }

// Table is a cleaned tabular sheet: a fixed column list and rows of cells
// aligned to it.
type Table struct {
	Columns []string
	Rows    [][]Cell

	index map[string]int
}

// New builds a Table from a raw header and string rows. Empty cells and
// cells beyond the header width become Absent.
func New(columns []string, rows [][]string) *Table {
	t := &Table{Columns: columns}
	t.reindex()
	t.Rows = make([][]Cell, len(rows))
	for i, r := range rows {
		row := make([]Cell, len(columns))
		for j := range columns {
			if j < len(r) && r[j] != "" {
				row[j] = present(r[j])
			}
		}
		t.Rows[i] = row
	}
	return t
}

func (t *Table) reindex() {
	t.index = make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		t.index[c] = i
	}
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Cell returns the named cell of row i. Unknown columns read as Absent.
func (t *Table) Cell(i int, name string) Cell {
	j, ok := t.index[name]
	if !ok {
		return Cell{}
	}
	return t.Rows[i][j]
}

// setCell overwrites the named cell of row i, ignoring unknown columns.
func (t *Table) setCell(i int, name string, c Cell) {
	if j, ok := t.index[name]; ok {
		t.Rows[i][j] = c
	}
}

// addColumn appends a column filled with the given cell on every row.
func (t *Table) addColumn(name string, fill Cell) {
	t.Columns = append(t.Columns, name)
	t.reindex()
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], fill)
	}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
