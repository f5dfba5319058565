package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// TaskStatus is a task's workflow state as the backend spells it.
type TaskStatus string

const (
	TaskPending    TaskStatus = "PENDING"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskDone       TaskStatus = "DONE"
)

// Task is a backend task record. Dates use the backend's "2006-01-02" form.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	DueDate     string     `json:"dueDate"`
	ProjectID   int64      `json:"projectId"`
	AssigneeID  int64      `json:"assigneeId"`
}

// TaskInput is the create/update payload for a task.
type TaskInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	DueDate     string     `json:"dueDate"`
	ProjectID   int64      `json:"projectId"`
	AssigneeID  int64      `json:"assigneeId,omitempty"`
}

// TaskFilters narrows List by due-date range. Zero values are omitted.
type TaskFilters struct {
	DateFrom string
	DateTo   string
}

// TeamMember is a backend user record, used to populate assignee pickers.
type TeamMember struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// TaskService calls the backend's /tasks and /users endpoints.
type TaskService struct {
	client *Client
}

// NewTaskService creates a TaskService on top of client.
func NewTaskService(client *Client) *TaskService {
	return &TaskService{client: client}
}

// List returns the user's tasks, optionally filtered by due-date range.
func (s *TaskService) List(ctx context.Context, filters TaskFilters) ([]Task, error) {
	path := "/tasks"
	q := url.Values{}
	if filters.DateFrom != "" {
		q.Set("dateFrom", filters.DateFrom)
	}
	if filters.DateTo != "" {
		q.Set("dateTo", filters.DateTo)
	}
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var tasks []Task
	if err := s.client.do(ctx, http.MethodGet, path, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// ByProject returns the tasks belonging to one project.
func (s *TaskService) ByProject(ctx context.Context, projectID int64) ([]Task, error) {
	var tasks []Task
	path := fmt.Sprintf("/tasks/project/%d", projectID)
	if err := s.client.do(ctx, http.MethodGet, path, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Create adds a task and returns the stored record.
func (s *TaskService) Create(ctx context.Context, in TaskInput) (*Task, error) {
	var task Task
	if err := s.client.do(ctx, http.MethodPost, "/tasks", in, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Update replaces the named task and returns the stored record.
func (s *TaskService) Update(ctx context.Context, id int64, in TaskInput) (*Task, error) {
	var task Task
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", id), in, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Delete removes the named task.
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, nil)
}

// Users returns all registered users for assignment.
func (s *TaskService) Users(ctx context.Context) ([]TeamMember, error) {
	var users []TeamMember
	if err := s.client.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
