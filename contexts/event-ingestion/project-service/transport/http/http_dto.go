package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateProjectRequest struct {
	Name string `json:"name"`
}

type ProjectDTO struct {
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

type CreateProjectResponse struct {
	Project ProjectDTO `json:"project"`
}

type GetProjectResponse struct {
	Project ProjectDTO `json:"project"`
}

type ListProjectsResponse struct {
	Items []ProjectDTO `json:"items"`
}
