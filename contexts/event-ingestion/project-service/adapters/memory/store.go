package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"rawvault/contexts/event-ingestion/project-service/domain/entities"
	domainerrors "rawvault/contexts/event-ingestion/project-service/domain/errors"

	"github.com/google/uuid"
)

type Store struct {
	mu       sync.RWMutex
	projects map[string]entities.Project
}

func NewStore(seed []entities.Project) *Store {
	projects := make(map[string]entities.Project, len(seed))
	for _, item := range seed {
		projects[item.ProjectID] = item
	}
	return &Store{projects: projects}
}

func (s *Store) CreateProject(_ context.Context, project entities.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.projects[project.ProjectID]; exists {
		return domainerrors.ErrDuplicateProject
	}
	s.projects[project.ProjectID] = project
	return nil
}

func (s *Store) GetProject(_ context.Context, projectID string) (entities.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.projects[strings.TrimSpace(projectID)]
	if !exists {
		return entities.Project{}, domainerrors.ErrProjectNotFound
	}
	return item, nil
}

func (s *Store) ListProjects(_ context.Context) ([]entities.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Project, 0, len(s.projects))
	for _, project := range s.projects {
		items = append(items, project)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

// Now implements ports.Clock.
func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

// NewID implements ports.IDGenerator.
func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
