// Package eventtime parses administrator-entered event dates.
package eventtime

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/clock"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// ErrInvalidDate is returned when no layout or natural-language rule matches.
var ErrInvalidDate = errors.New("could not recognize event date")

// DateParser turns user input into an event timestamp.
type DateParser interface {
	ParseEventDate(input string, clk clock.Clock) (time.Time, error)
}

// TimeParser parses dates in a fixed event timezone.
type TimeParser struct {
	loc *time.Location
	w   *when.Parser
}

var (
	compactClock = regexp.MustCompile(`(\d{1,2})(\d{2})(am|pm)`)
	layouts      = []string{
		time.RFC3339,
		"2006-01-02T15:04",
		"2006-01-02 15:04",
		"2006-01-02",
		"01/02/2006",
		"January 2, 2006",
		"Jan 2, 2006",
	}
)

// NewTimeParser creates a TimeParser for loc. A nil loc means UTC.
func NewTimeParser(loc *time.Location) *TimeParser {
	if loc == nil {
		loc = time.UTC
	}
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &TimeParser{loc: loc, w: w}
}

// ParseEventDate accepts fixed layouts ("2006-01-02", RFC3339, ...) and falls
// back to natural language such as "today 3pm" or "next friday". Layouts
// without a zone are read in the parser's timezone. Empty input means now.
func (tp *TimeParser) ParseEventDate(input string, clk clock.Clock) (time.Time, error) {
	now := clk.Now().In(tp.loc)

	input = strings.TrimSpace(input)
	if input == "" {
		return now.Truncate(time.Minute), nil
	}

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, input, tp.loc); err == nil {
			return t, nil
		}
	}

	normalized := strings.ToLower(input)
	normalized = strings.ReplaceAll(normalized, "today ", "today at ")
	normalized = strings.ReplaceAll(normalized, "tomorrow ", "tomorrow at ")
	normalized = compactClock.ReplaceAllString(normalized, "$1:$2 $3")

	r, err := tp.w.Parse(normalized, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, input, err)
	}
	if r == nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, input)
	}
	return r.Time.In(tp.loc).Truncate(time.Minute), nil
}

var _ DateParser = (*TimeParser)(nil)
