package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"rawvault/contexts/event-ingestion/project-service/adapters/memory"
	"rawvault/contexts/event-ingestion/project-service/domain/entities"
	domainerrors "rawvault/contexts/event-ingestion/project-service/domain/errors"
)

func newTestService() Service {
	store := memory.NewStore(nil)
	return Service{
		Projects:    store,
		Clock:       store,
		IDGenerator: store,
	}
}

func TestCreateAndGetProject(t *testing.T) {
	service := newTestService()

	created, err := service.CreateProject(context.Background(), "web frontend")
	if err != nil {
		t.Fatalf("create project failed: %v", err)
	}
	if created.ProjectID == "" {
		t.Fatalf("expected assigned project id")
	}

	fetched, err := service.GetProject(context.Background(), created.ProjectID)
	if err != nil {
		t.Fatalf("get project failed: %v", err)
	}
	if fetched.Name != "web frontend" {
		t.Fatalf("expected name preserved, got %s", fetched.Name)
	}
}

func TestCreateProjectRejectsInvalidName(t *testing.T) {
	service := newTestService()

	for _, name := range []string{"", "   ", strings.Repeat("x", entities.MaxProjectNameLength+1)} {
		if _, err := service.CreateProject(context.Background(), name); !errors.Is(err, domainerrors.ErrInvalidProjectName) {
			t.Fatalf("expected ErrInvalidProjectName for %q, got %v", name, err)
		}
	}
}

func TestGetProjectMiss(t *testing.T) {
	service := newTestService()

	if _, err := service.GetProject(context.Background(), "missing"); !errors.Is(err, domainerrors.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestListProjectsReturnsAllProjects(t *testing.T) {
	service := newTestService()

	first, err := service.CreateProject(context.Background(), "first")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := service.CreateProject(context.Background(), "second")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	items, err := service.ListProjects(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(items))
	}
	seen := map[string]bool{}
	for _, item := range items {
		seen[item.ProjectID] = true
	}
	if !seen[first.ProjectID] || !seen[second.ProjectID] {
		t.Fatalf("expected both projects listed, got %v", items)
	}
}
