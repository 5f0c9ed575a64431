package handler

import "kanbanboard/internal/model"

type ColumnResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Order int    `json:"order"`
}

type TaskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ColumnID    string `json:"column_id"`
	Order       int    `json:"order"`
	CreatedAt   int64  `json:"created_at"`
}

type BoardColumnResponse struct {
	ColumnResponse
	Tasks []TaskResponse `json:"tasks"`
}

type BoardResponse struct {
	Columns []BoardColumnResponse `json:"columns"`
}

func newColumnResponse(col model.Column) ColumnResponse {
	return ColumnResponse{ID: col.ID, Title: col.Title, Order: col.Order}
}

func newTaskResponse(t model.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		ColumnID:    t.ColumnID,
		Order:       t.Order,
		CreatedAt:   t.CreatedAt,
	}
}

func newTaskResponses(tasks []model.Task) []TaskResponse {
	response := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		response[i] = newTaskResponse(t)
	}
	return response
}

// newBoardResponse lays the board out as the UI draws it: columns left to
// right, each with its tasks top to bottom.
func newBoardResponse(b model.Board) BoardResponse {
	cols := b.SortedColumns()
	response := BoardResponse{Columns: make([]BoardColumnResponse, len(cols))}
	for i, col := range cols {
		response.Columns[i] = BoardColumnResponse{
			ColumnResponse: newColumnResponse(col),
			Tasks:          newTaskResponses(b.TasksIn(col.ID)),
		}
	}
	return response
}
