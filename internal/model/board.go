package model

import (
	"slices"
)

// Board is the full set of columns and tasks. The order of Tasks is the
// iteration order the drag logic works on; display order comes from Task.Order.
type Board struct {
	Columns []Column `json:"columns"`
	Tasks   []Task   `json:"tasks"`
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	return Board{
		Columns: slices.Clone(b.Columns),
		Tasks:   slices.Clone(b.Tasks),
	}
}

// FindTask returns the index of the task with the given id, or -1.
func (b Board) FindTask(id string) int {
	return slices.IndexFunc(b.Tasks, func(t Task) bool { return t.ID == id })
}

// FindColumn returns the index of the column with the given id, or -1.
func (b Board) FindColumn(id string) int {
	return slices.IndexFunc(b.Columns, func(c Column) bool { return c.ID == id })
}

// HasColumn reports whether a column with the given id exists.
func (b Board) HasColumn(id string) bool {
	return b.FindColumn(id) >= 0
}

// SortedColumns returns the columns ordered left to right.
func (b Board) SortedColumns() []Column {
	cols := slices.Clone(b.Columns)
	slices.SortStableFunc(cols, func(a, c Column) int { return a.Order - c.Order })
	return cols
}

// TasksIn returns the tasks of a column sorted by Order. Ties keep list order.
func (b Board) TasksIn(columnID string) []Task {
	var tasks []Task
	for _, t := range b.Tasks {
		if t.ColumnID == columnID {
			tasks = append(tasks, t)
		}
	}
	slices.SortStableFunc(tasks, func(a, c Task) int { return a.Order - c.Order })
	return tasks
}

// NextTaskOrder is the order a task appended to columnID should get: the
// number of tasks already there, or one past the highest order when the
// column has gaps (cross-column moves leave them behind).
func (b Board) NextTaskOrder(columnID string) int {
	count, highest := 0, -1
	for _, t := range b.Tasks {
		if t.ColumnID != columnID {
			continue
		}
		if t.Order > highest {
			highest = t.Order
		}
		count++
	}
	return max(count, highest+1)
}

// NextColumnOrder is the order for a column appended at the right end.
func (b Board) NextColumnOrder() int {
	count, highest := len(b.Columns), -1
	for _, c := range b.Columns {
		if c.Order > highest {
			highest = c.Order
		}
	}
	return max(count, highest+1)
}

// OrderConflicts reports the ids of columns in which two tasks share an order.
func (b Board) OrderConflicts() []string {
	type key struct {
		column string
		order  int
	}
	seen := make(map[key]bool, len(b.Tasks))
	var conflicts []string
	for _, t := range b.Tasks {
		k := key{t.ColumnID, t.Order}
		if seen[k] && !slices.Contains(conflicts, t.ColumnID) {
			conflicts = append(conflicts, t.ColumnID)
		}
		seen[k] = true
	}
	return conflicts
}

// ColumnOrderConflict reports whether two columns share an order.
func (b Board) ColumnOrderConflict() bool {
	seen := make(map[int]bool, len(b.Columns))
	for _, c := range b.Columns {
		if seen[c.Order] {
			return true
		}
		seen[c.Order] = true
	}
	return false
}

// RenumberColumns reassigns column orders to 0..N-1, keeping the current left
// to right sequence. Columns sharing an order keep their list order.
func (b *Board) RenumberColumns() {
	sorted := b.SortedColumns()
	pos := make(map[string]int, len(sorted))
	for i, c := range sorted {
		pos[c.ID] = i
	}
	for i := range b.Columns {
		b.Columns[i].Order = pos[b.Columns[i].ID]
	}
}

// Renumber reassigns the orders of a column's tasks to 0..N-1, following
// their current display order.
func (b *Board) Renumber(columnID string) {
	sorted := b.TasksIn(columnID)
	pos := make(map[string]int, len(sorted))
	for i, t := range sorted {
		pos[t.ID] = i
	}
	for i := range b.Tasks {
		if p, ok := pos[b.Tasks[i].ID]; ok {
			b.Tasks[i].Order = p
		}
	}
}
