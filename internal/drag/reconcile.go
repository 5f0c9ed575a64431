// Package drag turns drag-over observations into board mutations.
//
// Reconcile is pure and cheap; it runs on every pointer move while a task is
// being dragged. Apply hands the result to the board in a single call.
package drag

import (
	"context"
	"slices"

	"kanbanboard/internal/model"
)

type Kind int

const (
	// None means the observation requires no change.
	None Kind = iota
	// Reassign moves the active task into another column.
	Reassign
	// Reorder replaces the task list with a new arrangement.
	Reorder
)

func (k Kind) String() string {
	switch k {
	case Reassign:
		return "reassign"
	case Reorder:
		return "reorder"
	default:
		return "none"
	}
}

// Mutation is the outcome of one reconciliation step.
type Mutation struct {
	Kind Kind

	// Reassign
	TaskID   string
	ColumnID string
	Order    int

	// Reorder
	Tasks []model.Task
}

// Reconcile decides what dragging activeID over overID does to the board.
// overID may name a column or a task; an empty overID means the pointer is
// over nothing.
func Reconcile(b model.Board, activeID, overID string) Mutation {
	if overID == "" || activeID == overID {
		return Mutation{}
	}
	ai := b.FindTask(activeID)
	if ai < 0 {
		return Mutation{}
	}
	active := b.Tasks[ai]

	// Over a column's empty area
	if ci := b.FindColumn(overID); ci >= 0 {
		if col := b.Columns[ci]; col.ID != active.ColumnID {
			return reassign(b, active, col.ID)
		}
	}

	oi := b.FindTask(overID)
	if oi < 0 {
		return Mutation{}
	}
	over := b.Tasks[oi]

	if over.ColumnID != active.ColumnID {
		return reassign(b, active, over.ColumnID)
	}

	tasks, ok := move(b.Tasks, active.ColumnID, activeID, overID)
	if !ok {
		return Mutation{}
	}
	return Mutation{Kind: Reorder, Tasks: tasks}
}

// reassign appends the task at the end of the destination column so orders
// there stay unique. The source column keeps its gap.
func reassign(b model.Board, task model.Task, columnID string) Mutation {
	return Mutation{
		Kind:     Reassign,
		TaskID:   task.ID,
		ColumnID: columnID,
		Order:    b.NextTaskOrder(columnID),
	}
}

// move lifts the active task out of the list and reinserts it at the over
// task's position, then renumbers the column from the resulting list order.
// The column's tasks are first put in list order matching their orders so the
// list position and the displayed position agree.
func move(tasks []model.Task, columnID, activeID, overID string) ([]model.Task, bool) {
	list := align(tasks, columnID)
	from := slices.IndexFunc(list, func(t model.Task) bool { return t.ID == activeID })
	to := slices.IndexFunc(list, func(t model.Task) bool { return t.ID == overID })
	if from < 0 || to < 0 || from == to {
		return nil, false
	}

	moved := list[from]
	list = slices.Delete(list, from, from+1)
	list = slices.Insert(list, to, moved)

	order := 0
	for i := range list {
		if list[i].ColumnID == columnID {
			list[i].Order = order
			order++
		}
	}
	return list, true
}

// align returns a copy of tasks in which the slots held by columnID's tasks
// are refilled with those tasks sorted by order.
func align(tasks []model.Task, columnID string) []model.Task {
	list := slices.Clone(tasks)
	b := model.Board{Tasks: tasks}
	sorted := b.TasksIn(columnID)
	next := 0
	for i := range list {
		if list[i].ColumnID == columnID {
			list[i] = sorted[next]
			next++
		}
	}
	return list
}

// Mutator is the part of the board store a mutation is applied through.
type Mutator interface {
	UpdateTask(ctx context.Context, id string, patch model.TaskPatch) error
	ReorderTasks(ctx context.Context, tasks []model.Task) error
}

// Apply performs m with exactly one store call, or none for None.
func Apply(ctx context.Context, store Mutator, m Mutation) error {
	switch m.Kind {
	case Reassign:
		columnID, order := m.ColumnID, m.Order
		return store.UpdateTask(ctx, m.TaskID, model.TaskPatch{ColumnID: &columnID, Order: &order})
	case Reorder:
		return store.ReorderTasks(ctx, m.Tasks)
	}
	return nil
}
