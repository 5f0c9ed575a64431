package model

// Ids of the columns installed on a fresh board.
const (
	ColumnTodo       = "todo"
	ColumnInProgress = "in-progress"
	ColumnCompleted  = "completed"
)

// Column is one vertical lane of the board. Order sets its left to right place.
type Column struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Order int    `json:"order"`
}

// DefaultColumns returns a fresh copy of the three columns every empty board starts with.
func DefaultColumns() []Column {
	return []Column{
		{ID: ColumnTodo, Title: "TODO", Order: 0},
		{ID: ColumnInProgress, Title: "In Progress", Order: 1},
		{ID: ColumnCompleted, Title: "Completed", Order: 2},
	}
}

// IsDefaultColumn reports whether id is one of the reserved default column ids.
// The board itself does not protect them; callers that expose deletion to users do.
func IsDefaultColumn(id string) bool {
	switch id {
	case ColumnTodo, ColumnInProgress, ColumnCompleted:
		return true
	}
	return false
}
