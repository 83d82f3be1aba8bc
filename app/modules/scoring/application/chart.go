package scoringservice

import (
	"bytes"
	"context"

	scoringdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/scoring/domain"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/operation"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/results"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type bytesResult = results.OperationResult[[]byte, error]

// ChartPalette holds the colors used by rendered charts.
type ChartPalette struct {
	Background drawing.Color
	Bar        drawing.Color
	Text       drawing.Color
}

// DefaultPalette is the scoreboard's chart theme.
var DefaultPalette = ChartPalette{
	Background: drawing.ColorFromHex("0f172a"),
	Bar:        drawing.ColorFromHex("38bdf8"),
	Text:       drawing.ColorFromHex("e2e8f0"),
}

// EventAnalyticsChart renders members attended per event as a PNG bar chart.
func (s *ScoringService) EventAnalyticsChart(ctx context.Context) ([]byte, error) {
	result, err := operation.WithTelemetry(ctx, s.telemetry, "EventAnalyticsChart", "all",
		func(ctx context.Context) (bytesResult, error) {
			snap, err := s.snapshot(ctx)
			if err != nil {
				return bytesResult{}, err
			}
			png, err := RenderAttendanceChart(scoringdomain.EventAnalytics(snap), s.palette)
			if err != nil {
				return bytesResult{}, err
			}
			return results.SuccessResult[[]byte, error](png), nil
		})
	return operation.Unwrap(result, err)
}

// RenderAttendanceChart draws one bar per event. With no events it renders a
// placeholder image instead.
func RenderAttendanceChart(stats []scoringdomain.EventStats, palette ChartPalette) ([]byte, error) {
	if len(stats) == 0 {
		return renderNoDataPlaceholder(palette)
	}

	bars := make([]chart.Value, 0, len(stats))
	peak := 1
	for _, st := range stats {
		bars = append(bars, chart.Value{
			Label: st.Name,
			Value: float64(st.MembersAttended),
			Style: chart.Style{
				FillColor:   palette.Bar,
				StrokeColor: palette.Bar,
			},
		})
		peak = max(peak, st.MembersAttended)
	}

	graph := chart.BarChart{
		Title:  "Members attended per event",
		Width:  max(400, 100*len(stats)+160),
		Height: 400,
		TitleStyle: chart.Style{
			FontColor: palette.Text,
		},
		Background: chart.Style{
			FillColor: palette.Background,
			Padding:   chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		XAxis: chart.Style{
			FontColor: palette.Text,
		},
		YAxis: chart.YAxis{
			Style: chart.Style{
				FontColor: palette.Text,
			},
			// A fixed range keeps an all-zero series renderable.
			Range: &chart.ContinuousRange{Min: 0, Max: float64(peak)},
		},
		BarWidth:   60,
		BarSpacing: 40,
		Bars:       bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// renderNoDataPlaceholder draws the message straight onto a PNG renderer;
// chart.Chart refuses to render without a series.
func renderNoDataPlaceholder(palette ChartPalette) ([]byte, error) {
	const (
		width  = 400
		height = 200
		msg    = "No events recorded yet"
	)

	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, err
	}

	r.SetFillColor(palette.Background)
	r.MoveTo(0, 0)
	r.LineTo(width, 0)
	r.LineTo(width, height)
	r.LineTo(0, height)
	r.Close()
	r.Fill()

	r.SetFont(font)
	r.SetFontColor(palette.Text)
	r.SetFontSize(12.0)
	tb := r.MeasureText(msg)
	r.Text(msg, (width-tb.Width())/2, (height+tb.Height())/2)

	buffer := bytes.NewBuffer([]byte{})
	if err := r.Save(buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
