package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"rawvault/contexts/event-ingestion/project-service/domain/entities"
	domainerrors "rawvault/contexts/event-ingestion/project-service/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) CreateProject(ctx context.Context, project entities.Project) error {
	row := projectModelFromEntity(project)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrDuplicateProject
		}
		return err
	}
	return nil
}

func (r *Repository) GetProject(ctx context.Context, projectID string) (entities.Project, error) {
	var row projectModel
	err := r.db.WithContext(ctx).
		Where("project_id = ?", strings.TrimSpace(projectID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Project{}, domainerrors.ErrProjectNotFound
		}
		return entities.Project{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListProjects(ctx context.Context) ([]entities.Project, error) {
	var rows []projectModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]entities.Project, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

type projectModel struct {
	ProjectID string    `gorm:"column:project_id;primaryKey"`
	Name      string    `gorm:"column:name;type:varchar(200);not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

func (projectModel) TableName() string {
	return "projects"
}

func projectModelFromEntity(item entities.Project) projectModel {
	return projectModel{
		ProjectID: strings.TrimSpace(item.ProjectID),
		Name:      strings.TrimSpace(item.Name),
		CreatedAt: item.CreatedAt.UTC(),
	}
}

func (m projectModel) toEntity() entities.Project {
	return entities.Project{
		ProjectID: m.ProjectID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt.UTC(),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
