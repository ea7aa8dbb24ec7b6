package market

import "github.com/agrilens/agrilens/internal/models"

// movingAverage computes a trailing simple moving average over closing
// prices. Values are chronological ascending; the first period-1 output
// slots hold the partial average so the overlay spans the whole series.
func movingAverage(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	if period < 1 {
		period = 1
	}

	sum := 0.0
	for i, v := range values {
		sum += v
		n := i + 1
		if n > period {
			sum -= values[i-period]
			n = period
		}
		out[i] = sum / float64(n)
	}
	return out
}

// smaPeriod picks an overlay window proportional to the chart range.
func smaPeriod(period models.ChartPeriod) int {
	switch period {
	case models.Period1W:
		return 3
	case models.Period3M:
		return 20
	case models.Period1Y:
		return 10 // weekly bars
	default:
		return 7
	}
}
