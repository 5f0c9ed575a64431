package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"kanbanboard/internal/board"
	"kanbanboard/internal/handler"
	"kanbanboard/internal/model"
	"kanbanboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T) (*gin.Engine, *board.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger, _ := test.NewNullLogger()

	store, err := board.Open(context.Background(),
		repository.NewSnapshotRepository(repository.NewMemoryStore(), ""),
		board.WithLogger(logger))
	require.NoError(t, err)

	r := gin.New()
	boardHandler := handler.NewBoardHandler(store)
	columnHandler := handler.NewColumnHandler(store)
	taskHandler := handler.NewTaskHandler(store)
	dragHandler := handler.NewDragHandler(store, logger)

	r.GET("/board", boardHandler.Get)
	r.PUT("/board/tasks", taskHandler.Reorder)
	r.POST("/columns", columnHandler.Create)
	r.GET("/columns", columnHandler.GetAll)
	r.PUT("/columns/:id", columnHandler.Update)
	r.DELETE("/columns/:id", columnHandler.Delete)
	r.GET("/columns/:id/tasks", columnHandler.GetTasks)
	r.POST("/tasks", taskHandler.Create)
	r.GET("/tasks/:id", taskHandler.GetByID)
	r.PUT("/tasks/:id", taskHandler.Update)
	r.DELETE("/tasks/:id", taskHandler.Delete)
	r.POST("/drag/over", dragHandler.Over)
	return r, store
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decode[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	return out
}

func TestGetBoard_DefaultColumns(t *testing.T) {
	// Arrange
	router, _ := setupTest(t)

	// Act
	resp := doJSON(router, "GET", "/board", nil)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	b := decode[handler.BoardResponse](t, resp)
	require.Len(t, b.Columns, 3)
	assert.Equal(t, "TODO", b.Columns[0].Title)
	assert.Equal(t, "In Progress", b.Columns[1].Title)
	assert.Equal(t, "Completed", b.Columns[2].Title)
	assert.Empty(t, b.Columns[0].Tasks)
}

func TestCreateColumn_Success(t *testing.T) {
	// Arrange
	router, store := setupTest(t)

	// Act
	resp := doJSON(router, "POST", "/columns", handler.CreateColumnRequest{Title: "Review"})

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)
	col := decode[handler.ColumnResponse](t, resp)
	assert.Equal(t, "Review", col.Title)
	assert.Equal(t, 3, col.Order)
	assert.Len(t, store.Columns(), 4)
}

func TestCreateColumn_BlankTitle(t *testing.T) {
	router, store := setupTest(t)

	resp := doJSON(router, "POST", "/columns", handler.CreateColumnRequest{Title: "   "})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Len(t, store.Columns(), 3)
}

func TestCreateColumn_MissingTitle(t *testing.T) {
	router, _ := setupTest(t)

	resp := doJSON(router, "POST", "/columns", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestRenameColumn(t *testing.T) {
	router, store := setupTest(t)

	resp := doJSON(router, "PUT", "/columns/todo", handler.UpdateColumnRequest{Title: "Backlog"})

	assert.Equal(t, http.StatusOK, resp.Code)
	col, _ := store.Column("todo")
	assert.Equal(t, "Backlog", col.Title)

	resp = doJSON(router, "PUT", "/columns/ghost", handler.UpdateColumnRequest{Title: "x"})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeleteColumn_DefaultIsForbidden(t *testing.T) {
	router, store := setupTest(t)

	resp := doJSON(router, "DELETE", "/columns/todo", nil)

	assert.Equal(t, http.StatusForbidden, resp.Code)
	assert.True(t, store.Board().HasColumn("todo"))
}

func TestDeleteColumn_CascadesTasks(t *testing.T) {
	// Arrange
	router, store := setupTest(t)
	ctx := context.Background()
	col, err := store.AddColumn(ctx, "Review")
	require.NoError(t, err)
	_, err = store.AddTask(ctx, "Check PR", "", col.ID)
	require.NoError(t, err)
	kept, err := store.AddTask(ctx, "Keep me", "", model.ColumnTodo)
	require.NoError(t, err)

	// Act
	resp := doJSON(router, "DELETE", "/columns/"+col.ID, nil)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	tasks := store.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, kept.ID, tasks[0].ID)

	resp = doJSON(router, "DELETE", "/columns/"+col.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestCreateTask_AppendsToColumn(t *testing.T) {
	// Arrange
	router, _ := setupTest(t)

	// Act
	first := doJSON(router, "POST", "/tasks", handler.CreateTaskRequest{Title: "Fix bug", ColumnID: model.ColumnTodo})
	second := doJSON(router, "POST", "/tasks", handler.CreateTaskRequest{Title: "Write docs", Description: "API", ColumnID: model.ColumnTodo})

	// Assert
	require.Equal(t, http.StatusCreated, first.Code)
	require.Equal(t, http.StatusCreated, second.Code)
	a := decode[handler.TaskResponse](t, first)
	b := decode[handler.TaskResponse](t, second)
	assert.Equal(t, 0, a.Order)
	assert.Equal(t, 1, b.Order)
	assert.Equal(t, "API", b.Description)
	assert.NotZero(t, b.CreatedAt)

	resp := doJSON(router, "GET", "/columns/todo/tasks", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	tasks := decode[[]handler.TaskResponse](t, resp)
	require.Len(t, tasks, 2)
	assert.Equal(t, a.ID, tasks[0].ID)
}

func TestCreateTask_UnknownColumn(t *testing.T) {
	router, store := setupTest(t)

	resp := doJSON(router, "POST", "/tasks", handler.CreateTaskRequest{Title: "x", ColumnID: "ghost"})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Empty(t, store.Tasks())
}

func TestUpdateTask(t *testing.T) {
	// Arrange
	router, store := setupTest(t)
	task, err := store.AddTask(context.Background(), "Old", "keep", model.ColumnTodo)
	require.NoError(t, err)
	title := "  New  "

	// Act
	resp := doJSON(router, "PUT", "/tasks/"+task.ID, handler.UpdateTaskRequest{Title: &title})

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	got := decode[handler.TaskResponse](t, resp)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, "keep", got.Description)
}

func TestUpdateTask_Errors(t *testing.T) {
	router, store := setupTest(t)
	task, _ := store.AddTask(context.Background(), "Old", "", model.ColumnTodo)
	blank := ""
	title := "x"

	assert.Equal(t, http.StatusBadRequest, doJSON(router, "PUT", "/tasks/"+task.ID, handler.UpdateTaskRequest{Title: &blank}).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(router, "PUT", "/tasks/ghost", handler.UpdateTaskRequest{Title: &title}).Code)
}

func TestGetAndDeleteTask(t *testing.T) {
	router, store := setupTest(t)
	task, _ := store.AddTask(context.Background(), "Gone soon", "", model.ColumnTodo)

	assert.Equal(t, http.StatusOK, doJSON(router, "GET", "/tasks/"+task.ID, nil).Code)
	assert.Equal(t, http.StatusOK, doJSON(router, "DELETE", "/tasks/"+task.ID, nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(router, "GET", "/tasks/"+task.ID, nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(router, "DELETE", "/tasks/"+task.ID, nil).Code)
}

func TestReorderTasks(t *testing.T) {
	// Arrange
	router, store := setupTest(t)
	ctx := context.Background()
	a, _ := store.AddTask(ctx, "A", "", model.ColumnTodo)
	b, _ := store.AddTask(ctx, "B", "", model.ColumnTodo)
	req := handler.ReorderTasksRequest{Tasks: []handler.ReorderTaskItem{
		{ID: b.ID, Title: "B", ColumnID: model.ColumnTodo, Order: 0},
		{ID: a.ID, Title: "A", ColumnID: model.ColumnTodo, Order: 1},
	}}

	// Act
	resp := doJSON(router, "PUT", "/board/tasks", req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	todo := store.TasksByColumn(model.ColumnTodo)
	require.Len(t, todo, 2)
	assert.Equal(t, b.ID, todo[0].ID)
}

func TestReorderTasks_Conflict(t *testing.T) {
	router, store := setupTest(t)
	ctx := context.Background()
	a, _ := store.AddTask(ctx, "A", "", model.ColumnTodo)
	b, _ := store.AddTask(ctx, "B", "", model.ColumnTodo)
	before := store.Board()
	req := handler.ReorderTasksRequest{Tasks: []handler.ReorderTaskItem{
		{ID: a.ID, Title: "A", ColumnID: model.ColumnTodo, Order: 0},
		{ID: b.ID, Title: "B", ColumnID: model.ColumnTodo, Order: 0},
	}}

	resp := doJSON(router, "PUT", "/board/tasks", req)

	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Equal(t, before, store.Board())
}

func TestDragOver_ReassignsTask(t *testing.T) {
	// Arrange
	router, store := setupTest(t)
	ctx := context.Background()
	fix, _ := store.AddTask(ctx, "Fix bug", "", model.ColumnTodo)
	docs, _ := store.AddTask(ctx, "Write docs", "", model.ColumnTodo)

	// Act
	resp := doJSON(router, "POST", "/drag/over", handler.DragOverRequest{ActiveID: fix.ID, OverID: model.ColumnInProgress})

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	out := decode[handler.DragOverResponse](t, resp)
	assert.Equal(t, "reassign", out.Kind)
	moved, _ := store.Task(fix.ID)
	assert.Equal(t, model.ColumnInProgress, moved.ColumnID)
	assert.Equal(t, 0, moved.Order)
	stayed, _ := store.Task(docs.ID)
	assert.Equal(t, 1, stayed.Order)
}

func TestDragOver_NoOp(t *testing.T) {
	router, store := setupTest(t)
	task, _ := store.AddTask(context.Background(), "A", "", model.ColumnTodo)
	before := store.Board()

	resp := doJSON(router, "POST", "/drag/over", handler.DragOverRequest{ActiveID: task.ID, OverID: ""})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "none", decode[handler.DragOverResponse](t, resp).Kind)
	assert.Equal(t, before, store.Board())
}

// interleavingStore adds a task the first time the board is read, standing in
// for a request that lands while a drag is being handled.
type interleavingStore struct {
	*board.Store
	once   sync.Once
	inject func()
}

func (s *interleavingStore) Board() model.Board {
	s.once.Do(s.inject)
	return s.Store.Board()
}

func TestDragOver_KeepsTaskAddedDuringDrag(t *testing.T) {
	// Arrange
	_, store := setupTest(t)
	ctx := context.Background()
	a, _ := store.AddTask(ctx, "A", "", model.ColumnTodo)
	b, _ := store.AddTask(ctx, "B", "", model.ColumnTodo)
	wrapped := &interleavingStore{Store: store, inject: func() {
		_, err := store.AddTask(ctx, "concurrent", "", model.ColumnCompleted)
		require.NoError(t, err)
	}}
	logger, _ := test.NewNullLogger()
	router := gin.New()
	router.POST("/drag/over", handler.NewDragHandler(wrapped, logger).Over)

	// Act
	resp := doJSON(router, "POST", "/drag/over", handler.DragOverRequest{ActiveID: a.ID, OverID: b.ID})

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "reorder", decode[handler.DragOverResponse](t, resp).Kind)
	assert.Len(t, store.Tasks(), 3)
	assert.Len(t, store.TasksByColumn(model.ColumnCompleted), 1)
	todo := store.TasksByColumn(model.ColumnTodo)
	require.Len(t, todo, 2)
	assert.Equal(t, b.ID, todo[0].ID)
}
