package ports

import (
	"context"
	"time"

	"rawvault/contexts/event-ingestion/project-service/domain/entities"
)

type ProjectRepository interface {
	CreateProject(ctx context.Context, project entities.Project) error
	GetProject(ctx context.Context, projectID string) (entities.Project, error)
	ListProjects(ctx context.Context) ([]entities.Project, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
