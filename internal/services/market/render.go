package market

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/agrilens/agrilens/internal/models"
)

// renderSparkline renders a PNG line chart of closing prices.
// Returns raw PNG bytes.
func renderSparkline(ticker string, period models.ChartPeriod, points []models.ChartPoint) ([]byte, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("need at least 2 data points for %s, got %d", ticker, len(points))
	}

	xValues := make([]time.Time, 0, len(points))
	yValues := make([]float64, 0, len(points))

	for _, p := range points {
		d, err := time.Parse("2006-01-02", p.Date)
		if err != nil {
			continue
		}
		xValues = append(xValues, d)
		yValues = append(yValues, p.Close)
	}
	if len(xValues) < 2 {
		return nil, fmt.Errorf("no parseable bars for %s", ticker)
	}

	closeSeries := chart.TimeSeries{
		Name: fmt.Sprintf("%s close", ticker),
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("16a34a"), // green-600
			StrokeWidth: 2.0,
		},
		XValues: xValues,
		YValues: yValues,
	}

	smaSeries := chart.TimeSeries{
		Name: fmt.Sprintf("%s sma", ticker),
		Style: chart.Style{
			StrokeColor:     drawing.ColorFromHex("9ca3af"), // gray-400
			StrokeWidth:     1.0,
			StrokeDashArray: []float64{4.0, 3.0},
		},
		XValues: xValues,
		YValues: movingAverage(yValues, smaPeriod(period)),
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s (%s)", ticker, period),
		Width:  640,
		Height: 240,
		Background: chart.Style{
			Padding: chart.Box{Top: 30, Left: 10, Right: 15, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 02")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.2f", f)
				}
				return ""
			},
		},
		Series: []chart.Series{smaSeries, closeSeries},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	return buf.Bytes(), nil
}
