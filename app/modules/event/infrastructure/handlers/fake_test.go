package eventhandlers

import (
	"context"

	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
	eventservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/application"
	eventdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/domain"
)

// FakeService is a programmable eventservice.Service.
type FakeService struct {
	CreateEventFunc            func(ctx context.Context, grant authdomain.Grant, input eventservice.CreateEventInput) (eventdomain.Event, error)
	UpdateEventFunc            func(ctx context.Context, grant authdomain.Grant, id int64, patch eventservice.UpdateEventInput) (eventdomain.Event, error)
	DeactivateEventFunc        func(ctx context.Context, grant authdomain.Grant, id int64) error
	ListEventsFunc             func(ctx context.Context, activeOnly bool) ([]eventdomain.Event, error)
	GetEventFunc               func(ctx context.Context, id int64) (eventdomain.EventWithAttendance, error)
	RecordAttendanceFunc       func(ctx context.Context, grant authdomain.Grant, input eventservice.RecordAttendanceInput) (eventdomain.AttendanceRecord, error)
	RecordMemberAttendanceFunc func(ctx context.Context, grant authdomain.Grant, eventID int64, attended map[int64]bool) (eventservice.BatchResult, error)
	RecordCoachAttendanceFunc  func(ctx context.Context, grant authdomain.Grant, eventID int64, sessions map[string]int) (eventservice.BatchResult, error)
	RecordBatchFunc            func(ctx context.Context, grant authdomain.Grant, eventID int64, batch eventservice.BatchInput) (eventservice.BatchResult, error)
	ImportAttendanceFunc       func(ctx context.Context, grant authdomain.Grant, eventID int64, filename string, data []byte) (eventservice.ImportReport, error)
}

func (f *FakeService) CreateEvent(ctx context.Context, grant authdomain.Grant, input eventservice.CreateEventInput) (eventdomain.Event, error) {
	if f.CreateEventFunc != nil {
		return f.CreateEventFunc(ctx, grant, input)
	}
	return eventdomain.Event{}, nil
}

func (f *FakeService) UpdateEvent(ctx context.Context, grant authdomain.Grant, id int64, patch eventservice.UpdateEventInput) (eventdomain.Event, error) {
	if f.UpdateEventFunc != nil {
		return f.UpdateEventFunc(ctx, grant, id, patch)
	}
	return eventdomain.Event{}, nil
}

func (f *FakeService) DeactivateEvent(ctx context.Context, grant authdomain.Grant, id int64) error {
	if f.DeactivateEventFunc != nil {
		return f.DeactivateEventFunc(ctx, grant, id)
	}
	return nil
}

func (f *FakeService) ListEvents(ctx context.Context, activeOnly bool) ([]eventdomain.Event, error) {
	if f.ListEventsFunc != nil {
		return f.ListEventsFunc(ctx, activeOnly)
	}
	return []eventdomain.Event{}, nil
}

func (f *FakeService) GetEvent(ctx context.Context, id int64) (eventdomain.EventWithAttendance, error) {
	if f.GetEventFunc != nil {
		return f.GetEventFunc(ctx, id)
	}
	return eventdomain.EventWithAttendance{}, nil
}

func (f *FakeService) RecordAttendance(ctx context.Context, grant authdomain.Grant, input eventservice.RecordAttendanceInput) (eventdomain.AttendanceRecord, error) {
	if f.RecordAttendanceFunc != nil {
		return f.RecordAttendanceFunc(ctx, grant, input)
	}
	return eventdomain.AttendanceRecord{}, nil
}

func (f *FakeService) RecordMemberAttendance(ctx context.Context, grant authdomain.Grant, eventID int64, attended map[int64]bool) (eventservice.BatchResult, error) {
	if f.RecordMemberAttendanceFunc != nil {
		return f.RecordMemberAttendanceFunc(ctx, grant, eventID, attended)
	}
	return eventservice.BatchResult{}, nil
}

func (f *FakeService) RecordCoachAttendance(ctx context.Context, grant authdomain.Grant, eventID int64, sessions map[string]int) (eventservice.BatchResult, error) {
	if f.RecordCoachAttendanceFunc != nil {
		return f.RecordCoachAttendanceFunc(ctx, grant, eventID, sessions)
	}
	return eventservice.BatchResult{}, nil
}

func (f *FakeService) RecordBatch(ctx context.Context, grant authdomain.Grant, eventID int64, batch eventservice.BatchInput) (eventservice.BatchResult, error) {
	if f.RecordBatchFunc != nil {
		return f.RecordBatchFunc(ctx, grant, eventID, batch)
	}
	return eventservice.BatchResult{}, nil
}

func (f *FakeService) ImportAttendance(ctx context.Context, grant authdomain.Grant, eventID int64, filename string, data []byte) (eventservice.ImportReport, error) {
	if f.ImportAttendanceFunc != nil {
		return f.ImportAttendanceFunc(ctx, grant, eventID, filename, data)
	}
	return eventservice.ImportReport{}, nil
}

var _ eventservice.Service = (*FakeService)(nil)
