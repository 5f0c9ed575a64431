// Package board holds the authoritative in-memory kanban board. Every
// mutation is applied atomically, written through to the persister and then
// published to observers.
package board

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"kanbanboard/internal/drag"
	"kanbanboard/internal/model"
	"kanbanboard/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Persister loads and saves full board snapshots. Load returns nil, nil when
// nothing has been stored yet.
type Persister interface {
	Load(ctx context.Context) (*model.Board, error)
	Save(ctx context.Context, b model.Board) error
}

// Observer receives a copy of the board after each mutation.
type Observer func(model.Board)

type Option func(*Store)

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Store) { s.log = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// errNoChange aborts a mutation without persisting or notifying.
var errNoChange = errors.New("no change")

type Store struct {
	mu        sync.Mutex
	board     model.Board
	persister Persister
	observers map[int]Observer
	nextObs   int

	// Each committed mutation takes a ticket under mu. Observers are called
	// after mu is released, one ticket at a time in ticket order.
	tickets    uint64
	notifyMu   sync.Mutex
	notifyTurn *sync.Cond
	notified   uint64

	log   logrus.FieldLogger
	now   func() time.Time
	newID func() string
}

// Open restores the board from p and makes sure the default columns exist.
// Unreadable snapshots (unknown version, corrupt data) start an empty board;
// any other load failure is returned.
func Open(ctx context.Context, p Persister, opts ...Option) (*Store, error) {
	s := &Store{
		persister: p,
		observers: make(map[int]Observer),
		log:       logrus.StandardLogger(),
		now:       time.Now,
		newID:     uuid.NewString,
	}
	s.notifyTurn = sync.NewCond(&s.notifyMu)
	for _, opt := range opts {
		opt(s)
	}

	restored, err := p.Load(ctx)
	switch {
	case errors.Is(err, repository.ErrUnsupportedVersion), errors.Is(err, repository.ErrCorruptSnapshot):
		s.log.WithError(err).Warn("⚠️  Stored board is unreadable, starting from an empty board")
	case err != nil:
		return nil, err
	case restored != nil:
		s.board = restored.Clone()
	}

	s.Initialize(ctx)
	s.repair(ctx)
	return s, nil
}

// Initialize installs the default columns when the board has none. It leaves
// a board that already has columns untouched.
func (s *Store) Initialize(ctx context.Context) {
	_ = s.mutate(ctx, "initialize", func(b *model.Board) error {
		if len(b.Columns) > 0 {
			return errNoChange
		}
		b.Columns = model.DefaultColumns()
		return nil
	})
}

// repair drops tasks of missing columns and renumbers columns or tasks that
// share an order. Older clients could leave both behind.
func (s *Store) repair(ctx context.Context) {
	_ = s.mutate(ctx, "repair", func(b *model.Board) error {
		changed := false
		kept := b.Tasks[:0]
		for _, t := range b.Tasks {
			if !b.HasColumn(t.ColumnID) {
				s.log.WithFields(logrus.Fields{"task": t.ID, "column": t.ColumnID}).Warn("Dropping task of missing column")
				changed = true
				continue
			}
			kept = append(kept, t)
		}
		b.Tasks = kept
		if b.ColumnOrderConflict() {
			s.log.Warn("Renumbering columns with duplicate orders")
			b.RenumberColumns()
			changed = true
		}
		for _, col := range b.OrderConflicts() {
			s.log.WithField("column", col).Warn("Renumbering column with duplicate task orders")
			b.Renumber(col)
			changed = true
		}
		if !changed {
			return errNoChange
		}
		return nil
	})
}

// Board returns a copy of the whole board.
func (s *Store) Board() model.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Clone()
}

// Columns returns the columns sorted left to right.
func (s *Store) Columns() []model.Column {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.SortedColumns()
}

// Tasks returns all tasks in list order.
func (s *Store) Tasks() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Clone().Tasks
}

// TasksByColumn returns the tasks of one column in display order.
func (s *Store) TasksByColumn(columnID string) []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.TasksIn(columnID)
}

func (s *Store) Column(id string) (model.Column, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.board.FindColumn(id)
	if i < 0 {
		return model.Column{}, false
	}
	return s.board.Columns[i], true
}

func (s *Store) Task(id string) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.board.FindTask(id)
	if i < 0 {
		return model.Task{}, false
	}
	return s.board.Tasks[i], true
}

// AddColumn appends a column at the right end of the board.
func (s *Store) AddColumn(ctx context.Context, title string) (model.Column, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Column{}, ErrEmptyTitle
	}
	var col model.Column
	err := s.mutate(ctx, "add column", func(b *model.Board) error {
		col = model.Column{
			ID:    s.newID(),
			Title: title,
			Order: b.NextColumnOrder(),
		}
		b.Columns = append(b.Columns, col)
		return nil
	})
	return col, err
}

// DeleteColumn removes the column and every task in it. Remaining columns
// keep their orders.
func (s *Store) DeleteColumn(ctx context.Context, id string) error {
	return s.mutate(ctx, "delete column", func(b *model.Board) error {
		i := b.FindColumn(id)
		if i < 0 {
			return ErrColumnNotFound
		}
		b.Columns = append(b.Columns[:i], b.Columns[i+1:]...)
		kept := b.Tasks[:0]
		for _, t := range b.Tasks {
			if t.ColumnID != id {
				kept = append(kept, t)
			}
		}
		b.Tasks = kept
		return nil
	})
}

func (s *Store) RenameColumn(ctx context.Context, id, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	return s.mutate(ctx, "rename column", func(b *model.Board) error {
		i := b.FindColumn(id)
		if i < 0 {
			return ErrColumnNotFound
		}
		b.Columns[i].Title = title
		return nil
	})
}

// AddTask appends a task to the end of columnID.
func (s *Store) AddTask(ctx context.Context, title, description, columnID string) (model.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Task{}, ErrEmptyTitle
	}
	var task model.Task
	err := s.mutate(ctx, "add task", func(b *model.Board) error {
		if !b.HasColumn(columnID) {
			return ErrColumnNotFound
		}
		task = model.Task{
			ID:          s.newID(),
			Title:       title,
			Description: description,
			ColumnID:    columnID,
			Order:       b.NextTaskOrder(columnID),
			CreatedAt:   s.now().UnixMilli(),
		}
		b.Tasks = append(b.Tasks, task)
		return nil
	})
	return task, err
}

// UpdateTask merges patch into the task. Orders are taken as given; callers
// that move tasks around supply consistent values.
func (s *Store) UpdateTask(ctx context.Context, id string, patch model.TaskPatch) error {
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return ErrEmptyTitle
		}
		patch.Title = &title
	}
	return s.mutate(ctx, "update task", func(b *model.Board) error {
		i := b.FindTask(id)
		if i < 0 {
			return ErrTaskNotFound
		}
		if patch.ColumnID != nil && !b.HasColumn(*patch.ColumnID) {
			return ErrColumnNotFound
		}
		if patch.IsEmpty() {
			return errNoChange
		}
		b.Tasks[i] = patch.Apply(b.Tasks[i])
		return nil
	})
}

func (s *Store) DeleteTask(ctx context.Context, id string) error {
	return s.mutate(ctx, "delete task", func(b *model.Board) error {
		i := b.FindTask(id)
		if i < 0 {
			return ErrTaskNotFound
		}
		b.Tasks = append(b.Tasks[:i], b.Tasks[i+1:]...)
		return nil
	})
}

// ReorderTasks replaces the whole task list with tasks. The list must be
// complete and consistent: known columns, unique ids, unique orders per column.
func (s *Store) ReorderTasks(ctx context.Context, tasks []model.Task) error {
	return s.mutate(ctx, "reorder tasks", func(b *model.Board) error {
		return replaceTasks(b, tasks)
	})
}

func replaceTasks(b *model.Board, tasks []model.Task) error {
	next := model.Board{Columns: b.Columns, Tasks: tasks}
	seen := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		if strings.TrimSpace(t.Title) == "" {
			return ErrEmptyTitle
		}
		if !next.HasColumn(t.ColumnID) {
			return ErrColumnNotFound
		}
		if seen[t.ID] {
			return ErrDuplicateTask
		}
		seen[t.ID] = true
	}
	if len(next.OrderConflicts()) > 0 {
		return ErrOrderConflict
	}
	b.Tasks = append([]model.Task(nil), tasks...)
	return nil
}

// Drag reconciles dragging activeID over overID against the current board and
// applies the result in the same step, so no other mutation can slip in
// between reading the board and writing it back.
func (s *Store) Drag(ctx context.Context, activeID, overID string) (drag.Mutation, error) {
	var m drag.Mutation
	err := s.mutate(ctx, "drag", func(b *model.Board) error {
		m = drag.Reconcile(*b, activeID, overID)
		switch m.Kind {
		case drag.Reassign:
			i := b.FindTask(m.TaskID)
			b.Tasks[i].ColumnID = m.ColumnID
			b.Tasks[i].Order = m.Order
			return nil
		case drag.Reorder:
			return replaceTasks(b, m.Tasks)
		}
		return errNoChange
	})
	if err != nil {
		return drag.Mutation{}, err
	}
	return m, nil
}

// Subscribe registers fn to be called after every mutation, in mutation order.
// Observers may read the store but must not mutate it. The returned func
// unsubscribes.
func (s *Store) Subscribe(fn Observer) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

// mutate runs fn on a copy of the board and commits it only when fn
// succeeds, so a failed operation leaves no trace.
func (s *Store) mutate(ctx context.Context, op string, fn func(*model.Board) error) error {
	s.mu.Lock()
	next := s.board.Clone()
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		if errors.Is(err, errNoChange) {
			return nil
		}
		return err
	}
	s.board = next
	s.persist(ctx, op)

	observers := make([]Observer, 0, len(s.observers))
	for _, o := range s.observers {
		observers = append(observers, o)
	}
	s.tickets++
	ticket := s.tickets
	s.mu.Unlock()

	s.notify(ticket, observers, next)
	return nil
}

// notify waits until every earlier ticket has been delivered, then calls the
// observers without holding any store lock.
func (s *Store) notify(ticket uint64, observers []Observer, b model.Board) {
	s.notifyMu.Lock()
	for s.notified+1 != ticket {
		s.notifyTurn.Wait()
	}
	s.notifyMu.Unlock()

	defer func() {
		s.notifyMu.Lock()
		s.notified = ticket
		s.notifyTurn.Broadcast()
		s.notifyMu.Unlock()
	}()
	for _, o := range observers {
		o(b.Clone())
	}
}

// persist writes the board through. A failed write keeps the session going
// in memory only.
func (s *Store) persist(ctx context.Context, op string) {
	if err := s.persister.Save(ctx, s.board); err != nil {
		s.log.WithError(err).WithField("op", op).Warn("⚠️  Failed to persist board, continuing in memory")
		return
	}
	s.log.WithFields(logrus.Fields{
		"op":      op,
		"columns": len(s.board.Columns),
		"tasks":   len(s.board.Tasks),
	}).Debug("Board persisted")
}
