package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"rawvault/contexts/event-ingestion/rawevent-service/domain/entities"
	domainerrors "rawvault/contexts/event-ingestion/rawevent-service/domain/errors"
	"rawvault/contexts/event-ingestion/rawevent-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
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

func (r *Repository) CreateRawEvent(ctx context.Context, record entities.RawEvent) error {
	row := rawEventModelFromEntity(record)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrDuplicateRawEvent
		}
		if isForeignKeyViolation(err) {
			return domainerrors.ErrProjectNotFound
		}
		return err
	}
	return nil
}

func (r *Repository) GetRawEvent(ctx context.Context, projectID, eventID string) (entities.RawEvent, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		// Records without an event id are not addressable by the pair.
		return entities.RawEvent{}, domainerrors.ErrRawEventNotFound
	}

	var row rawEventModel
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND event_id = ?", strings.TrimSpace(projectID), eventID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.RawEvent{}, domainerrors.ErrRawEventNotFound
		}
		return entities.RawEvent{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListRawEventsByTimeRange(
	ctx context.Context,
	projectID string,
	window ports.TimeRange,
	cursor string,
	limit int,
) (ports.ListPage, error) {
	if limit <= 0 {
		limit = 100
	}

	tx := r.db.WithContext(ctx).
		Model(&rawEventModel{}).
		Where("project_id = ?", strings.TrimSpace(projectID)).
		Where("datetime >= ? AND datetime <= ?", window.From.UTC(), window.To.UTC())

	if strings.TrimSpace(cursor) != "" {
		afterTime, afterID, err := ports.DecodeListCursor(cursor)
		if err != nil {
			return ports.ListPage{}, err
		}
		tx = tx.Where("(datetime, raw_event_id) > (?, ?)", afterTime, afterID)
	}

	var rows []rawEventModel
	if err := tx.
		Order("datetime ASC, raw_event_id ASC").
		Limit(limit + 1).
		Find(&rows).
		Error; err != nil {
		return ports.ListPage{}, err
	}

	page := ports.ListPage{Items: make([]entities.RawEvent, 0, len(rows))}
	more := len(rows) > limit
	if more {
		rows = rows[:limit]
	}
	for _, row := range rows {
		page.Items = append(page.Items, row.toEntity())
	}
	if more {
		last := rows[len(rows)-1]
		page.NextCursor = ports.EncodeListCursor(last.Datetime, last.RawEventID)
	}
	return page, nil
}

func (r *Repository) DeleteRawEvent(ctx context.Context, projectID, eventID string) (bool, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return false, nil
	}
	result := r.db.WithContext(ctx).
		Where("project_id = ? AND event_id = ?", strings.TrimSpace(projectID), eventID).
		Delete(&rawEventModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *Repository) DeleteRawEventsBefore(ctx context.Context, cutoff time.Time, limit int) (int64, error) {
	if limit <= 0 {
		limit = 1000
	}
	victims := r.db.WithContext(ctx).
		Model(&rawEventModel{}).
		Select("raw_event_id").
		Where("datetime < ?", cutoff.UTC()).
		Limit(limit)
	result := r.db.WithContext(ctx).
		Where("raw_event_id IN (?)", victims).
		Delete(&rawEventModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

type rawEventModel struct {
	RawEventID string         `gorm:"column:raw_event_id;primaryKey"`
	ProjectID  string         `gorm:"column:project_id;not null;uniqueIndex:uniq_raw_events_project_event,priority:1"`
	EventID    *string        `gorm:"column:event_id;type:varchar(32);uniqueIndex:uniq_raw_events_project_event,priority:2"`
	Datetime   time.Time      `gorm:"column:datetime;not null;index:idx_raw_events_datetime"`
	RefScope   *string        `gorm:"column:data_ref_scope"`
	RefVersion *int           `gorm:"column:data_ref_version"`
	Data       datatypes.JSON `gorm:"column:data;type:jsonb"`
}

func (rawEventModel) TableName() string {
	return "raw_events"
}

func rawEventModelFromEntity(item entities.RawEvent) rawEventModel {
	row := rawEventModel{
		RawEventID: strings.TrimSpace(item.RawEventID),
		ProjectID:  strings.TrimSpace(item.ProjectID),
		Datetime:   item.Datetime.UTC(),
	}
	if item.HasEventID() {
		eventID := strings.TrimSpace(item.EventID)
		row.EventID = &eventID
	}
	if item.Data != nil {
		refScope := item.Data.RefScope
		refVersion := item.Data.RefVersion
		row.RefScope = &refScope
		row.RefVersion = &refVersion
		row.Data = datatypes.JSON(append([]byte(nil), item.Data.Payload...))
	}
	return row
}

func (m rawEventModel) toEntity() entities.RawEvent {
	item := entities.RawEvent{
		RawEventID: m.RawEventID,
		ProjectID:  m.ProjectID,
		Datetime:   m.Datetime.UTC(),
	}
	if m.EventID != nil {
		item.EventID = *m.EventID
	}
	if m.RefScope != nil || len(m.Data) > 0 {
		data := &entities.NodeData{
			Payload: append([]byte(nil), m.Data...),
		}
		if m.RefScope != nil {
			data.RefScope = *m.RefScope
		}
		if m.RefVersion != nil {
			data.RefVersion = *m.RefVersion
		}
		item.Data = data
	}
	return item
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
