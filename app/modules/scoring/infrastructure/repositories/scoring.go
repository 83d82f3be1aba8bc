package scoringdb

import (
	"context"
	"fmt"

	bonusdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/bonus/infrastructure/repositories"
	eventdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/infrastructure/repositories"
	rosterdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/roster/infrastructure/repositories"
	scoringdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/scoring/domain"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new scoring repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// LoadSnapshot reads every team, member, coach, event, attendance row and
// bonus award.
func (r *Impl) LoadSnapshot(ctx context.Context, db bun.IDB) (scoringdomain.Snapshot, error) {
	db = r.resolveDB(db)
	var snap scoringdomain.Snapshot

	var teams []*rosterdb.Team
	if err := db.NewSelect().Model(&teams).Order("t.id ASC").Scan(ctx); err != nil {
		return snap, fmt.Errorf("failed to load teams: %w", err)
	}
	for _, t := range teams {
		snap.Teams = append(snap.Teams, scoringdomain.Team{
			ID:           t.ID,
			Name:         t.Name,
			TotalMembers: t.TotalMembers,
			CoachName:    t.CoachName,
			Department:   t.Department,
			IsActive:     t.IsActive,
		})
	}

	var members []*rosterdb.Member
	if err := db.NewSelect().Model(&members).Order("m.id ASC").Scan(ctx); err != nil {
		return snap, fmt.Errorf("failed to load members: %w", err)
	}
	for _, m := range members {
		snap.Members = append(snap.Members, scoringdomain.Member{
			ID:       m.ID,
			TeamID:   m.TeamID,
			Name:     m.Name,
			IsLeader: m.IsLeader,
			IsActive: m.IsActive,
		})
	}

	var coaches []*rosterdb.Coach
	if err := db.NewSelect().Model(&coaches).Order("c.name ASC").Scan(ctx); err != nil {
		return snap, fmt.Errorf("failed to load coaches: %w", err)
	}
	for _, c := range coaches {
		snap.Coaches = append(snap.Coaches, scoringdomain.Coach{
			Name:       c.Name,
			Department: c.Department,
			IsActive:   c.IsActive,
		})
	}

	var events []*eventdb.Event
	if err := db.NewSelect().Model(&events).Order("e.event_date ASC", "e.id ASC").Scan(ctx); err != nil {
		return snap, fmt.Errorf("failed to load events: %w", err)
	}
	for _, e := range events {
		snap.Events = append(snap.Events, scoringdomain.Event{
			ID:           e.ID,
			Name:         e.Name,
			EventType:    e.EventType,
			EventDate:    e.EventDate,
			MemberPoints: e.MemberPoints,
			CoachPoints:  e.CoachPoints,
			IsActive:     e.IsActive,
		})
	}

	var attendance []*eventdb.Attendance
	if err := db.NewSelect().Model(&attendance).Order("a.id ASC").Scan(ctx); err != nil {
		return snap, fmt.Errorf("failed to load attendance: %w", err)
	}
	for _, a := range attendance {
		snap.Attendance = append(snap.Attendance, scoringdomain.Attendance{
			ID:           a.ID,
			EventID:      a.EventID,
			MemberID:     a.MemberID,
			CoachName:    a.CoachName,
			Attended:     a.Attended,
			PointsEarned: a.PointsEarned,
			Sessions:     a.Sessions,
		})
	}

	var bonuses []*bonusdb.BonusPoint
	if err := db.NewSelect().Model(&bonuses).Order("b.awarded_at ASC", "b.id ASC").Scan(ctx); err != nil {
		return snap, fmt.Errorf("failed to load bonus points: %w", err)
	}
	for _, b := range bonuses {
		snap.Bonuses = append(snap.Bonuses, scoringdomain.Bonus{
			ID:        b.ID,
			TeamID:    b.TeamID,
			Points:    b.Points,
			Reason:    b.Reason,
			AwardedBy: b.AwardedBy,
			AwardedAt: b.AwardedAt,
		})
	}

	return snap, nil
}
