package application

import (
	"context"
	"log/slog"
	"strings"

	"rawvault/contexts/event-ingestion/project-service/domain/entities"
	domainerrors "rawvault/contexts/event-ingestion/project-service/domain/errors"
	"rawvault/contexts/event-ingestion/project-service/ports"
)

type Service struct {
	Projects    ports.ProjectRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (s Service) CreateProject(ctx context.Context, name string) (entities.Project, error) {
	project := entities.Project{
		Name: strings.TrimSpace(name),
	}
	if !project.ValidName() {
		return entities.Project{}, domainerrors.ErrInvalidProjectName
	}

	projectID, err := s.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Project{}, err
	}
	project.ProjectID = projectID
	project.CreatedAt = s.Clock.Now().UTC()

	if err := s.Projects.CreateProject(ctx, project); err != nil {
		return entities.Project{}, err
	}

	s.logger().Info("project created",
		"event", "project_created",
		"module", "event-ingestion/project-service",
		"layer", "application",
		"project_id", project.ProjectID,
	)
	return project, nil
}

func (s Service) GetProject(ctx context.Context, projectID string) (entities.Project, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Project{}, domainerrors.ErrProjectNotFound
	}
	return s.Projects.GetProject(ctx, projectID)
}

func (s Service) ListProjects(ctx context.Context) ([]entities.Project, error) {
	return s.Projects.ListProjects(ctx)
}

func (s Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
