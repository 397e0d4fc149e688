package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"rawvault/contexts/event-ingestion/project-service/application"
	"rawvault/contexts/event-ingestion/project-service/domain/entities"
	httptransport "rawvault/contexts/event-ingestion/project-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateProjectHandler(ctx context.Context, req httptransport.CreateProjectRequest) (httptransport.CreateProjectResponse, error) {
	project, err := h.Service.CreateProject(ctx, req.Name)
	if err != nil {
		return httptransport.CreateProjectResponse{}, err
	}
	return httptransport.CreateProjectResponse{Project: mapProject(project)}, nil
}

func (h Handler) GetProjectHandler(ctx context.Context, projectID string) (httptransport.GetProjectResponse, error) {
	project, err := h.Service.GetProject(ctx, projectID)
	if err != nil {
		return httptransport.GetProjectResponse{}, err
	}
	return httptransport.GetProjectResponse{Project: mapProject(project)}, nil
}

func (h Handler) ListProjectsHandler(ctx context.Context) (httptransport.ListProjectsResponse, error) {
	items, err := h.Service.ListProjects(ctx)
	if err != nil {
		return httptransport.ListProjectsResponse{}, err
	}
	result := make([]httptransport.ProjectDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapProject(item))
	}
	return httptransport.ListProjectsResponse{Items: result}, nil
}

func mapProject(project entities.Project) httptransport.ProjectDTO {
	return httptransport.ProjectDTO{
		ProjectID: project.ProjectID,
		Name:      project.Name,
		CreatedAt: project.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}
