package apiclient

import (
	"context"
	"fmt"
	"net/http"
)

// Project is a backend project record.
type Project struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProjectInput is the create/update payload for a project.
type ProjectInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProjectService calls the backend's /projects endpoints.
type ProjectService struct {
	client *Client
}

// NewProjectService creates a ProjectService on top of client.
func NewProjectService(client *Client) *ProjectService {
	return &ProjectService{client: client}
}

// List returns all projects visible to the authenticated user.
func (s *ProjectService) List(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := s.client.do(ctx, http.MethodGet, "/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Create adds a project and returns the stored record.
func (s *ProjectService) Create(ctx context.Context, in ProjectInput) (*Project, error) {
	var project Project
	if err := s.client.do(ctx, http.MethodPost, "/projects", in, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// Update replaces the named project and returns the stored record.
func (s *ProjectService) Update(ctx context.Context, id int64, in ProjectInput) (*Project, error) {
	var project Project
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/projects/%d", id), in, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// Delete removes the named project.
func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/projects/%d", id), nil, nil)
}
