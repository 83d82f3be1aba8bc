package rosterdb

import (
	"time"

	"github.com/uptrace/bun"
)

// Team is the teams table.
type Team struct {
	bun.BaseModel `bun:"table:teams,alias:t"`

	ID           int64     `bun:"id,pk,autoincrement"`
	Name         string    `bun:"name,notnull,unique"`
	TotalMembers int       `bun:"total_members,notnull,default:0"`
	CoachName    string    `bun:"coach_name"`
	Department   string    `bun:"department"`
	IsActive     bool      `bun:"is_active,notnull"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// Member is the members table.
type Member struct {
	bun.BaseModel `bun:"table:members,alias:m"`

	ID         int64     `bun:"id,pk,autoincrement"`
	TeamID     int64     `bun:"team_id,notnull,unique:members_team_name"`
	Name       string    `bun:"name,notnull,unique:members_team_name"`
	Department string    `bun:"department"`
	IsLeader   bool      `bun:"is_leader,notnull"`
	IsActive   bool      `bun:"is_active,notnull"`
	CreatedAt  time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// Coach is the coaches table.
type Coach struct {
	bun.BaseModel `bun:"table:coaches,alias:c"`

	ID         int64     `bun:"id,pk,autoincrement"`
	Name       string    `bun:"name,notnull,unique"`
	Department string    `bun:"department"`
	IsActive   bool      `bun:"is_active,notnull"`
	CreatedAt  time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
