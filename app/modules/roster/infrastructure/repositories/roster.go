package rosterdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/dberr"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new roster repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func insertErr(err error, what string) error {
	if dberr.IsUniqueViolation(err) {
		return ErrDuplicate
	}
	return fmt.Errorf("failed to insert %s: %w", what, err)
}

func selectErr(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("failed to get %s: %w", what, err)
}

// CreateTeam inserts a team and sets its ID.
func (r *Impl) CreateTeam(ctx context.Context, db bun.IDB, team *Team) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(team).Returning("id").Exec(ctx); err != nil {
		return insertErr(err, "team")
	}
	return nil
}

// GetTeamByID retrieves a team by id.
func (r *Impl) GetTeamByID(ctx context.Context, db bun.IDB, id int64) (*Team, error) {
	db = r.resolveDB(db)
	team := new(Team)
	if err := db.NewSelect().Model(team).Where("t.id = ?", id).Scan(ctx); err != nil {
		return nil, selectErr(err, "team by id")
	}
	return team, nil
}

// GetTeamByName retrieves a team by its unique name.
func (r *Impl) GetTeamByName(ctx context.Context, db bun.IDB, name string) (*Team, error) {
	db = r.resolveDB(db)
	team := new(Team)
	if err := db.NewSelect().Model(team).Where("t.name = ?", name).Scan(ctx); err != nil {
		return nil, selectErr(err, "team by name")
	}
	return team, nil
}

// ListTeams returns teams ordered by name.
func (r *Impl) ListTeams(ctx context.Context, db bun.IDB, activeOnly bool) ([]*Team, error) {
	db = r.resolveDB(db)
	var teams []*Team
	q := db.NewSelect().Model(&teams).Order("t.name ASC")
	if activeOnly {
		q = q.Where("t.is_active = ?", true)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// ListTeamsByCoach returns the teams coached by coachName.
func (r *Impl) ListTeamsByCoach(ctx context.Context, db bun.IDB, coachName string) ([]*Team, error) {
	db = r.resolveDB(db)
	var teams []*Team
	err := db.NewSelect().
		Model(&teams).
		Where("t.coach_name = ?", coachName).
		Order("t.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams by coach: %w", err)
	}
	return teams, nil
}

// CreateMember inserts a member and sets its ID.
func (r *Impl) CreateMember(ctx context.Context, db bun.IDB, member *Member) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(member).Returning("id").Exec(ctx); err != nil {
		return insertErr(err, "member")
	}
	return nil
}

// GetMember retrieves a member by id.
func (r *Impl) GetMember(ctx context.Context, db bun.IDB, id int64) (*Member, error) {
	db = r.resolveDB(db)
	member := new(Member)
	if err := db.NewSelect().Model(member).Where("m.id = ?", id).Scan(ctx); err != nil {
		return nil, selectErr(err, "member")
	}
	return member, nil
}

// ListMembers returns members ordered by name. teamID 0 lists every team.
func (r *Impl) ListMembers(ctx context.Context, db bun.IDB, teamID int64) ([]*Member, error) {
	db = r.resolveDB(db)
	var members []*Member
	q := db.NewSelect().Model(&members).Order("m.name ASC", "m.id ASC")
	if teamID != 0 {
		q = q.Where("m.team_id = ?", teamID)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// ClearLeader unsets is_leader on the team's other members.
func (r *Impl) ClearLeader(ctx context.Context, db bun.IDB, teamID, keepID int64) error {
	db = r.resolveDB(db)
	_, err := db.NewUpdate().
		Model((*Member)(nil)).
		Set("is_leader = ?", false).
		Where("team_id = ?", teamID).
		Where("id <> ?", keepID).
		Where("is_leader = ?", true).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear team leader: %w", err)
	}
	return nil
}

// CreateCoach inserts a coach and sets its ID.
func (r *Impl) CreateCoach(ctx context.Context, db bun.IDB, coach *Coach) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(coach).Returning("id").Exec(ctx); err != nil {
		return insertErr(err, "coach")
	}
	return nil
}

// GetCoachByName retrieves a coach by its unique name.
func (r *Impl) GetCoachByName(ctx context.Context, db bun.IDB, name string) (*Coach, error) {
	db = r.resolveDB(db)
	coach := new(Coach)
	if err := db.NewSelect().Model(coach).Where("c.name = ?", name).Scan(ctx); err != nil {
		return nil, selectErr(err, "coach")
	}
	return coach, nil
}

// ListCoaches returns coaches ordered by name.
func (r *Impl) ListCoaches(ctx context.Context, db bun.IDB) ([]*Coach, error) {
	db = r.resolveDB(db)
	var coaches []*Coach
	if err := db.NewSelect().Model(&coaches).Order("c.name ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list coaches: %w", err)
	}
	return coaches, nil
}
