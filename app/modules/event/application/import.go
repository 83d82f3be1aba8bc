package eventservice

import (
	"context"
	"fmt"
	"strconv"

	auditdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/audit/domain"
	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/application/parsers"
	eventdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/event/domain"
	rosterdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/roster/domain"
	rosterdb "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/roster/infrastructure/repositories"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/observability/attr"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/operation"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/results"
	"github.com/uptrace/bun"
)

type importResult = results.OperationResult[ImportReport, error]

// rosterIndex is the roster keyed by normalized name.
type rosterIndex struct {
	teams       map[string]*rosterdb.Team
	teamMembers map[int64][]*rosterdb.Member
	members     []*rosterdb.Member
	coaches     map[string]string
}

// pendingRow is one attendee collected from the upload. Duplicate rows for
// the same attendee are folded together with attended OR-ed.
type pendingRow struct {
	input RecordAttendanceInput
	line  int
	name  string
}

// ImportAttendance records attendance from an uploaded CSV or XLSX file.
// Rows that cannot be matched are reported and skipped; the rest are written
// in one transaction.
func (s *EventService) ImportAttendance(ctx context.Context, grant authdomain.Grant, eventID int64, filename string, data []byte) (ImportReport, error) {
	result, err := operation.WithTelemetry(ctx, s.telemetry, "ImportAttendance", strconv.FormatInt(eventID, 10),
		func(ctx context.Context) (importResult, error) {
			if err := grant.Require(authdomain.RoleEditor); err != nil {
				return results.FailureResult[ImportReport](err), nil
			}

			parser, err := s.parsers.GetParser(filename)
			if err != nil {
				return results.FailureResult[ImportReport](fmt.Errorf("%w: %v", ErrInvalidUpload, err)), nil
			}
			rows, err := parser.Parse(data)
			if err != nil {
				return results.FailureResult[ImportReport](fmt.Errorf("%w: %v", ErrInvalidUpload, err)), nil
			}

			return operation.RunInTx(ctx, s.db, nil, func(ctx context.Context, db bun.IDB) (importResult, error) {
				return s.importRows(ctx, db, grant, eventID, filename, rows)
			})
		})
	return operation.Unwrap(result, err)
}

func (s *EventService) importRows(
	ctx context.Context,
	db bun.IDB,
	grant authdomain.Grant,
	eventID int64,
	filename string,
	rows []parsers.AttendanceRow,
) (importResult, error) {
	event, err := s.loadActiveEvent(ctx, db, eventID)
	if err != nil {
		return failOrAbort[ImportReport](err)
	}

	idx, err := s.loadRosterIndex(ctx, db)
	if err != nil {
		return importResult{}, err
	}

	report := ImportReport{EventID: eventID, Errors: []RowError{}}
	var order []string
	pending := make(map[string]*pendingRow)

	for _, row := range rows {
		report.Processed++

		attendee, reason := idx.match(row)
		if reason == "" {
			if _, err := parsers.ParseAttended(row.Attended); err != nil {
				reason = err.Error()
			}
		}
		if reason != "" {
			report.Skipped++
			report.Errors = append(report.Errors, RowError{Line: row.Line, Name: row.MemberName, Reason: reason})
			continue
		}
		attended, _ := parsers.ParseAttended(row.Attended)

		key := "m:" + strconv.FormatInt(attendee.MemberID, 10)
		if attendee.IsCoach() {
			key = "c:" + attendee.CoachName
		}
		if p, ok := pending[key]; ok {
			p.input.Attended = p.input.Attended || attended
			if attendee.IsCoach() {
				p.input.Sessions = max(p.input.Sessions, parsers.ParseSessions(row.Sessions))
			}
			report.Merged++
			continue
		}

		in := RecordAttendanceInput{
			EventID:  eventID,
			Attendee: attendee,
			Attended: attended,
			Notes:    "imported from " + filename,
		}
		if attendee.IsCoach() {
			in.Sessions = parsers.ParseSessions(row.Sessions)
		}
		pending[key] = &pendingRow{input: in, line: row.Line, name: row.MemberName}
		order = append(order, key)
	}

	for _, key := range order {
		p := pending[key]
		if _, err := s.writeAttendance(ctx, db, grant, event, p.input); err != nil {
			failure := domainFailure(err)
			if failure == nil {
				return importResult{}, err
			}
			report.Skipped++
			report.Errors = append(report.Errors, RowError{Line: p.line, Name: p.name, Reason: failure.Error()})
			continue
		}
		report.Recorded++
	}

	if err := s.audit.Record(ctx, db, auditdomain.Entry{
		Action:   auditdomain.ActionImportAttendance,
		Entity:   "event",
		EntityID: strconv.FormatInt(eventID, 10),
		Actor:    grant.Subject,
		Details: map[string]any{
			"filename":  filename,
			"processed": report.Processed,
			"recorded":  report.Recorded,
			"merged":    report.Merged,
			"skipped":   report.Skipped,
		},
	}); err != nil {
		return importResult{}, err
	}

	s.logger.InfoContext(ctx, "Attendance imported",
		attr.Int64("event_id", eventID),
		attr.String("filename", filename),
		attr.Int("processed", report.Processed),
		attr.Int("recorded", report.Recorded),
		attr.Int("skipped", report.Skipped),
	)
	return results.SuccessResult[ImportReport, error](report), nil
}

func (s *EventService) loadRosterIndex(ctx context.Context, db bun.IDB) (*rosterIndex, error) {
	teams, err := s.roster.ListTeams(ctx, db, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	members, err := s.roster.ListMembers(ctx, db, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	coaches, err := s.roster.ListCoaches(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("failed to list coaches: %w", err)
	}

	idx := &rosterIndex{
		teams:       make(map[string]*rosterdb.Team, len(teams)),
		teamMembers: make(map[int64][]*rosterdb.Member),
		coaches:     make(map[string]string),
	}
	for _, t := range teams {
		idx.teams[rosterdomain.NormalizeForMatching(t.Name)] = t
		if t.CoachName != "" {
			idx.coaches[rosterdomain.NormalizeForMatching(t.CoachName)] = t.CoachName
		}
	}
	for _, c := range coaches {
		idx.coaches[rosterdomain.NormalizeForMatching(c.Name)] = c.Name
	}
	for _, m := range members {
		if !m.IsActive {
			continue
		}
		idx.members = append(idx.members, m)
		idx.teamMembers[m.TeamID] = append(idx.teamMembers[m.TeamID], m)
	}
	return idx, nil
}

// match resolves an uploaded row to an attendee. A non-empty reason means
// the row could not be matched.
func (idx *rosterIndex) match(row parsers.AttendanceRow) (eventdomain.Attendee, string) {
	name := rosterdomain.NormalizeForMatching(row.MemberName)
	if name == "" {
		return eventdomain.Attendee{}, "empty name"
	}

	if row.TeamName != "" {
		team, ok := idx.teams[rosterdomain.NormalizeForMatching(row.TeamName)]
		if !ok {
			return eventdomain.Attendee{}, fmt.Sprintf("unknown team %q", row.TeamName)
		}
		if m, reason := matchMember(idx.teamMembers[team.ID], row.MemberName); m != nil {
			return eventdomain.Attendee{MemberID: m.ID}, ""
		} else if reason != "" {
			return eventdomain.Attendee{}, reason
		}
		if team.CoachName != "" && rosterdomain.NormalizeForMatching(team.CoachName) == name {
			return eventdomain.Attendee{CoachName: team.CoachName}, ""
		}
		return eventdomain.Attendee{}, fmt.Sprintf("no member named %q on team %q", row.MemberName, team.Name)
	}

	if coach, ok := idx.coaches[name]; ok {
		return eventdomain.Attendee{CoachName: coach}, ""
	}
	if m, reason := matchMember(idx.members, row.MemberName); m != nil {
		return eventdomain.Attendee{MemberID: m.ID}, ""
	} else if reason != "" {
		return eventdomain.Attendee{}, reason
	}
	return eventdomain.Attendee{}, fmt.Sprintf("no member or coach named %q", row.MemberName)
}

// matchMember finds the member named name: an exact normalized match, or
// failing that the single candidate sharing the most name tokens (at least
// MinFuzzyTokens). A tie is reported as ambiguous.
func matchMember(candidates []*rosterdb.Member, name string) (*rosterdb.Member, string) {
	want := rosterdomain.NormalizeForMatching(name)

	var exact []*rosterdb.Member
	for _, m := range candidates {
		if rosterdomain.NormalizeForMatching(m.Name) == want {
			exact = append(exact, m)
		}
	}
	switch len(exact) {
	case 0:
	case 1:
		return exact[0], ""
	default:
		return nil, fmt.Sprintf("name %q matches %d members", name, len(exact))
	}

	var best []*rosterdb.Member
	bestScore := rosterdomain.MinFuzzyTokens
	for _, m := range candidates {
		score := rosterdomain.SharedTokens(m.Name, name)
		switch {
		case score > bestScore:
			best, bestScore = []*rosterdb.Member{m}, score
		case score == bestScore:
			best = append(best, m)
		}
	}
	switch len(best) {
	case 0:
		return nil, ""
	case 1:
		return best[0], ""
	default:
		return nil, fmt.Sprintf("name %q matches %d members", name, len(best))
	}
}
