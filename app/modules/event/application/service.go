package eventservice

import (
	"log/slog"

	auditservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit/application"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/application/parsers"
	eventdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/domain"
	eventdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/infrastructure/repositories"
	eventtime "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/time_utils"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/clock"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/observability/metrics"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/operation"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// EventService implements Service.
type EventService struct {
	repo      eventdb.Repository
	roster    RosterReader
	audit     auditservice.Recorder
	parsers   parsers.ParserFactory
	dates     eventtime.DateParser
	defaults  Defaults
	logger    *slog.Logger
	telemetry operation.Telemetry
	clock     clock.Clock
	db        *bun.DB
}

// Deps bundles the collaborators of EventService.
type Deps struct {
	Repo     eventdb.Repository
	Roster   RosterReader
	Audit    auditservice.Recorder
	Parsers  parsers.ParserFactory
	Dates    eventtime.DateParser
	Defaults Defaults
	Clock    clock.Clock
	DB       *bun.DB
}

// NewEventService creates a new EventService.
func NewEventService(deps Deps, logger *slog.Logger, metrics metrics.OperationMetrics, tracer trace.Tracer) *EventService {
	if logger == nil {
		logger = slog.Default()
	}
	if deps.Clock == nil {
		deps.Clock = clock.RealClock{}
	}
	if deps.Parsers == nil {
		deps.Parsers = parsers.NewFactory()
	}
	if deps.Dates == nil {
		deps.Dates = eventtime.NewTimeParser(nil)
	}
	return &EventService{
		repo:     deps.Repo,
		roster:   deps.Roster,
		audit:    deps.Audit,
		parsers:  deps.Parsers,
		dates:    deps.Dates,
		defaults: deps.Defaults,
		logger:   logger,
		telemetry: operation.Telemetry{
			Service: "EventService",
			Logger:  logger,
			Metrics: metrics,
			Tracer:  tracer,
		},
		clock: deps.Clock,
		db:    deps.DB,
	}
}

func toEvent(row *eventdb.Event) eventdomain.Event {
	return eventdomain.Event{
		ID:           row.ID,
		Name:         row.Name,
		Description:  row.Description,
		EventType:    row.EventType,
		EventDate:    row.EventDate,
		MemberPoints: row.MemberPoints,
		CoachPoints:  row.CoachPoints,
		IsActive:     row.IsActive,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func toAttendance(row *eventdb.Attendance) eventdomain.AttendanceRecord {
	return eventdomain.AttendanceRecord{
		ID:           row.ID,
		EventID:      row.EventID,
		MemberID:     row.MemberID,
		CoachName:    row.CoachName,
		Attended:     row.Attended,
		PointsEarned: row.PointsEarned,
		Sessions:     row.Sessions,
		SessionType:  row.SessionType,
		Notes:        row.Notes,
		RecordedBy:   row.RecordedBy,
		RecordedAt:   row.RecordedAt,
	}
}

var _ Service = (*EventService)(nil)
