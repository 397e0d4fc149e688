package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"rawvault/contexts/event-ingestion/rawevent-service/domain/entities"
	domainerrors "rawvault/contexts/event-ingestion/rawevent-service/domain/errors"
	"rawvault/contexts/event-ingestion/rawevent-service/ports"

	"github.com/google/uuid"
)

// Store backs the service in tests and local runs. It mirrors the
// postgres adapter's observable behavior, including the null event id
// policy: records without an event id never collide.
type Store struct {
	mu sync.RWMutex

	projects map[string]struct{}
	records  map[string]entities.RawEvent // keyed by raw_event_id
	pairs    map[string]string            // project|event_id -> raw_event_id
}

func NewStore(projectIDs []string) *Store {
	projects := make(map[string]struct{}, len(projectIDs))
	for _, id := range projectIDs {
		projects[strings.TrimSpace(id)] = struct{}{}
	}
	return &Store{
		projects: projects,
		records:  make(map[string]entities.RawEvent),
		pairs:    make(map[string]string),
	}
}

// SeedProject registers a project id so foreign-key checks pass.
func (s *Store) SeedProject(projectID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects[strings.TrimSpace(projectID)] = struct{}{}
}

func pairKey(projectID, eventID string) string {
	return strings.TrimSpace(projectID) + "\x00" + strings.TrimSpace(eventID)
}

func (s *Store) CreateRawEvent(_ context.Context, record entities.RawEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.projects[strings.TrimSpace(record.ProjectID)]; !exists {
		return domainerrors.ErrProjectNotFound
	}
	if record.HasEventID() {
		key := pairKey(record.ProjectID, record.EventID)
		if _, taken := s.pairs[key]; taken {
			return domainerrors.ErrDuplicateRawEvent
		}
		s.pairs[key] = record.RawEventID
	}
	s.records[record.RawEventID] = record
	return nil
}

func (s *Store) GetRawEvent(_ context.Context, projectID, eventID string) (entities.RawEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if strings.TrimSpace(eventID) == "" {
		return entities.RawEvent{}, domainerrors.ErrRawEventNotFound
	}
	rawEventID, exists := s.pairs[pairKey(projectID, eventID)]
	if !exists {
		return entities.RawEvent{}, domainerrors.ErrRawEventNotFound
	}
	return s.records[rawEventID], nil
}

func (s *Store) ListRawEventsByTimeRange(
	_ context.Context,
	projectID string,
	window ports.TimeRange,
	cursor string,
	limit int,
) (ports.ListPage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 100
	}

	matched := make([]entities.RawEvent, 0)
	for _, record := range s.records {
		if record.ProjectID != strings.TrimSpace(projectID) {
			continue
		}
		if !window.Contains(record.Datetime) {
			continue
		}
		matched = append(matched, record)
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].Datetime.Equal(matched[j].Datetime) {
			return matched[i].Datetime.Before(matched[j].Datetime)
		}
		return matched[i].RawEventID < matched[j].RawEventID
	})

	if strings.TrimSpace(cursor) != "" {
		afterTime, afterID, err := ports.DecodeListCursor(cursor)
		if err != nil {
			return ports.ListPage{}, err
		}
		start := sort.Search(len(matched), func(i int) bool {
			if !matched[i].Datetime.Equal(afterTime) {
				return matched[i].Datetime.After(afterTime)
			}
			return matched[i].RawEventID > afterID
		})
		matched = matched[start:]
	}

	page := ports.ListPage{Items: matched}
	if len(matched) > limit {
		page.Items = matched[:limit]
		last := page.Items[limit-1]
		page.NextCursor = ports.EncodeListCursor(last.Datetime, last.RawEventID)
	}
	return page, nil
}

func (s *Store) DeleteRawEvent(_ context.Context, projectID, eventID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(eventID) == "" {
		return false, nil
	}
	key := pairKey(projectID, eventID)
	rawEventID, exists := s.pairs[key]
	if !exists {
		return false, nil
	}
	delete(s.pairs, key)
	delete(s.records, rawEventID)
	return true, nil
}

func (s *Store) DeleteRawEventsBefore(_ context.Context, cutoff time.Time, limit int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for rawEventID, record := range s.records {
		if limit > 0 && removed >= int64(limit) {
			break
		}
		if !record.Datetime.Before(cutoff) {
			continue
		}
		if record.HasEventID() {
			delete(s.pairs, pairKey(record.ProjectID, record.EventID))
		}
		delete(s.records, rawEventID)
		removed++
	}
	return removed, nil
}

// Now implements ports.Clock.
func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

// NewID implements ports.IDGenerator.
func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
