package raweventservice

import (
	"log/slog"
	"time"

	httpadapter "rawvault/contexts/event-ingestion/rawevent-service/adapters/http"
	"rawvault/contexts/event-ingestion/rawevent-service/adapters/memory"
	"rawvault/contexts/event-ingestion/rawevent-service/application/commands"
	"rawvault/contexts/event-ingestion/rawevent-service/application/queries"
	"rawvault/contexts/event-ingestion/rawevent-service/application/workers"
	"rawvault/contexts/event-ingestion/rawevent-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Sweeper workers.RetentionSweeper
	Store   *memory.Store
}

type Dependencies struct {
	RawEvents      ports.RawEventRepository
	Clock          ports.Clock
	IDGenerator    ports.IDGenerator
	Retention      time.Duration
	RetentionBatch int
	Logger         *slog.Logger
}

func NewModule(deps Dependencies) Module {
	storeRawEvent := commands.StoreRawEventUseCase{
		RawEvents:   deps.RawEvents,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	deleteRawEvent := commands.DeleteRawEventUseCase{
		RawEvents: deps.RawEvents,
		Logger:    deps.Logger,
	}
	getRawEvent := queries.GetRawEventUseCase{
		RawEvents: deps.RawEvents,
		Logger:    deps.Logger,
	}
	listByRange := queries.ListByTimeRangeUseCase{
		RawEvents: deps.RawEvents,
		Logger:    deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			StoreRawEvent:  storeRawEvent,
			DeleteRawEvent: deleteRawEvent,
			GetRawEvent:    getRawEvent,
			ListByRange:    listByRange,
			Logger:         deps.Logger,
		},
		Sweeper: workers.RetentionSweeper{
			RawEvents: deps.RawEvents,
			Clock:     deps.Clock,
			Retention: deps.Retention,
			BatchSize: deps.RetentionBatch,
			Logger:    deps.Logger,
		},
	}
}

func NewInMemoryModule(seedProjects []string, logger *slog.Logger) Module {
	store := memory.NewStore(seedProjects)
	module := NewModule(Dependencies{
		RawEvents:      store,
		Clock:          store,
		IDGenerator:    store,
		Retention:      90 * 24 * time.Hour,
		RetentionBatch: 1000,
		Logger:         logger,
	})
	module.Store = store
	return module
}
