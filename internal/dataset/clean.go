package dataset

import (
	"strings"
	"time"
)

// Defaults carries the values the cleaning stage injects. They are
// explicit configuration: callers decide the status literal and the
// clock rather than the stage reaching for globals.
type Defaults struct {
	Status string
	Now    func() time.Time
}

// Clean normalizes a raw table in place and returns it:
//
//   - rows that are entirely empty are dropped
//   - exact-duplicate rows are removed (first occurrence kept)
//   - for orders, an order_date column is parsed (unparseable values
//     become invalid, not errors) or, when absent, added with the current
//     timestamp stamped on every row
//   - missing status values are filled with the default literal
func Clean(t *Table, entity Entity, d Defaults) *Table {
	dropEmptyRows(t)
	dropDuplicateRows(t)

	if entity == Order {
		if t.HasColumn("order_date") {
			for i := range t.Rows {
				c := t.Cell(i, "order_date")
				if c.State != Present {
					continue
				}
				if dt := ToDateTime(c.Value); dt.Valid {
					t.setCell(i, "order_date", present(dt.Time.Format(DateTimeFormat)))
				} else {
					t.setCell(i, "order_date", Cell{Value: c.Value, State: Invalid})
				}
			}
		} else {
			stamp := d.Now().Format(DateTimeFormat)
			t.addColumn("order_date", present(stamp))
		}
	}

	if t.HasColumn("status") {
		for i := range t.Rows {
			if t.Cell(i, "status").State == Absent {
				t.setCell(i, "status", present(d.Status))
			}
		}
	}

	return t
}

// Format coerces the numeric columns of the given entity type. Cells that
// fail coercion are marked invalid and keep their raw text; absent cells
// stay absent. Downstream record creation decides whether that fails the
// row.
func Format(t *Table, entity Entity) *Table {
	var numeric []string
	switch entity {
	case Product:
		numeric = []string{"price", "stock"}
	case Order:
		numeric = []string{"quantity", "total_price"}
	default:
		return t
	}

	for _, col := range numeric {
		if !t.HasColumn(col) {
			continue
		}
		for i := range t.Rows {
			c := t.Cell(i, col)
			if c.State != Present {
				continue
			}
			if !ToNumber(c.Value).Valid {
				t.setCell(i, col, Cell{Value: c.Value, State: Invalid})
			}
		}
	}
	return t
}

// DedupeBy removes rows sharing the same values in the given columns. With
// keepLast set the final occurrence wins (last-write-wins within the
// batch); otherwise the first occurrence is kept.
func DedupeBy(t *Table, cols []string, keepLast bool) *Table {
	type slot struct{ pos int }
	seen := make(map[string]*slot, len(t.Rows))
	out := make([][]Cell, 0, len(t.Rows))

	for _, row := range t.Rows {
		key := subsetKey(t, row, cols)
		if s, ok := seen[key]; ok {
			if keepLast {
				out[s.pos] = row
			}
			continue
		}
		seen[key] = &slot{pos: len(out)}
		out = append(out, row)
	}

	t.Rows = out
	return t
}

func dropEmptyRows(t *Table) {
	out := t.Rows[:0]
	for _, row := range t.Rows {
		empty := true
		for _, c := range row {
			if c.State != Absent {
				empty = false
				break
			}
		}
		if !empty {
			out = append(out, row)
		}
	}
	t.Rows = out
}

func dropDuplicateRows(t *Table) {
	seen := make(map[string]bool, len(t.Rows))
	out := t.Rows[:0]
	for _, row := range t.Rows {
		key := rowKey(row)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, row)
	}
	t.Rows = out
}

func rowKey(row []Cell) string {
	var b strings.Builder
	for _, c := range row {
		b.WriteByte(byte('0' + c.State))
		b.WriteString(c.Value)
		b.WriteByte(0x1f)
	}
	return b.String()
}

func subsetKey(t *Table, row []Cell, cols []string) string {
	var b strings.Builder
	for _, col := range cols {
		if j, ok := t.index[col]; ok {
			b.WriteString(row[j].Value)
		}
		b.WriteByte(0x1f)
	}
	return b.String()
}
