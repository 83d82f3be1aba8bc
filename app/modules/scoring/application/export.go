package scoringservice

import (
	"context"
	"fmt"

	scoringdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/scoring/domain"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/operation"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/results"
	"github.com/xuri/excelize/v2"
)

const (
	leaderboardSheet = "Leaderboard"
	membersSheet     = "Members"
)

var (
	leaderboardHeader = []any{
		"Rank", "Team", "Coach", "Department", "Total Members", "Member Points",
		"Coach Points", "Bonus Points", "Final Score", "Members Attended", "Attendance Rate",
	}
	membersHeader = []any{
		"Team", "Member", "Display Name", "Leader", "Points", "Events Attended", "Attendance Rate",
	}
)

// ExportLeaderboard builds an XLSX workbook with the ranked teams on one
// sheet and every active member's score on another.
func (s *ScoringService) ExportLeaderboard(ctx context.Context) ([]byte, error) {
	result, err := operation.WithTelemetry(ctx, s.telemetry, "ExportLeaderboard", "all",
		func(ctx context.Context) (bytesResult, error) {
			snap, err := s.snapshot(ctx)
			if err != nil {
				return bytesResult{}, err
			}
			data, err := BuildWorkbook(scoringdomain.Leaderboard(snap, 0), scoringdomain.MemberScores(snap, 0))
			if err != nil {
				return bytesResult{}, err
			}
			return results.SuccessResult[[]byte, error](data), nil
		})
	return operation.Unwrap(result, err)
}

// BuildWorkbook writes teams and members into a new workbook.
func BuildWorkbook(teams []scoringdomain.TeamScore, members []scoringdomain.MemberScore) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", leaderboardSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(membersSheet); err != nil {
		return nil, fmt.Errorf("failed to add sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	teamRows := make([][]any, 0, len(teams))
	for _, t := range teams {
		teamRows = append(teamRows, []any{
			t.Rank, t.TeamName, t.CoachName, t.Department, t.TotalMembers, t.MemberPoints,
			t.CoachPoints, t.BonusPoints, t.FinalScore, t.MembersAttended, t.AttendanceRate.String(),
		})
	}
	if err := writeSheet(f, leaderboardSheet, leaderboardHeader, teamRows, bold); err != nil {
		return nil, err
	}

	memberRows := make([][]any, 0, len(members))
	for _, m := range members {
		leader := ""
		if m.IsLeader {
			leader = "yes"
		}
		memberRows = append(memberRows, []any{
			m.TeamName, m.Name, m.DisplayName, leader, m.Points, m.EventsAttended, m.AttendanceRate.String(),
		})
	}
	if err := writeSheet(f, membersSheet, membersHeader, memberRows, bold); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, header []any, rows [][]any, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", lastCol, 18)
}
