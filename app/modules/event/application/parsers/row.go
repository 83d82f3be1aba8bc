// Package parsers reads bulk attendance uploads (CSV or XLSX).
package parsers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrEmptyFile       = errors.New("attendance file is empty")
	ErrNoNameColumn    = errors.New("attendance file has no member name column")
	ErrInvalidAttended = errors.New("unrecognized attended value")
)

// AttendanceRow is one data row of an upload. Line is 1-based in the source.
// Attended is empty when the sheet has no attended column, which meeting
// reports omit because every listed person attended.
type AttendanceRow struct {
	Line       int
	TeamName   string
	MemberName string
	Attended   string
	Points     string
	Sessions   string
}

var (
	teamColumns     = []string{"team_name", "team", "team name"}
	nameColumns     = []string{"member_name", "member", "name", "full name", "attendee", "participant"}
	attendedColumns = []string{"attended", "present", "attendance", "status"}
	pointsColumns   = []string{"points_earned", "points"}
	sessionsColumns = []string{"sessions", "session_count"}
)

// rowsToAttendance locates the header row and maps data rows onto columns.
func rowsToAttendance(rows [][]string) ([]AttendanceRow, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	headerIdx := detectHeaderRow(rows)
	if headerIdx < 0 {
		return nil, ErrNoNameColumn
	}
	header := rows[headerIdx]

	nameCol := findColumn(header, nameColumns)
	if nameCol < 0 {
		return nil, ErrNoNameColumn
	}
	teamCol := findColumn(header, teamColumns)
	attendedCol := findColumn(header, attendedColumns)
	pointsCol := findColumn(header, pointsColumns)
	sessionsCol := findColumn(header, sessionsColumns)

	var out []AttendanceRow
	for i := headerIdx + 1; i < len(rows); i++ {
		row := rows[i]
		name := cell(row, nameCol)
		if name == "" {
			continue
		}
		out = append(out, AttendanceRow{
			Line:       i + 1,
			TeamName:   cell(row, teamCol),
			MemberName: name,
			Attended:   cell(row, attendedCol),
			Points:     cell(row, pointsCol),
			Sessions:   cell(row, sessionsCol),
		})
	}
	if len(out) == 0 {
		return nil, ErrEmptyFile
	}
	return out, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// ParseAttended interprets an attended cell. An empty cell counts as attended.
func ParseAttended(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "1", "true", "yes", "y", "x", "present", "attended":
		return true, nil
	case "0", "false", "no", "n", "absent", "-":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q", ErrInvalidAttended, v)
}

// ParseSessions reads a sessions cell. Empty or invalid cells mean one session.
func ParseSessions(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
