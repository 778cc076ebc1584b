package export

import "fmt"

// Table is an ordered tabular dataset. Column order is significant and every
// row must carry exactly one cell per column.
type Table struct {
	Columns []string
	Rows    [][]string
}

func (t Table) validate() error {
	if len(t.Columns) == 0 {
		return fmt.Errorf("export table requires at least one column")
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("export table row %d has %d cells, want %d", i, len(row), len(t.Columns))
		}
	}
	return nil
}
