package marketdata

import (
	"time"

	"github.com/rxtech-lab/argo-analysis/pkg/errors"
)

// Period is a named lookback window for historical daily bars.
type Period string

const (
	PeriodOneMonth    Period = "1mo"
	PeriodThreeMonths Period = "3mo"
	PeriodSixMonths   Period = "6mo"
	PeriodOneYear     Period = "1y"
	PeriodTwoYears    Period = "2y"
	PeriodFiveYears   Period = "5y"
)

// AllPeriods lists every supported period.
var AllPeriods = []Period{
	PeriodOneMonth,
	PeriodThreeMonths,
	PeriodSixMonths,
	PeriodOneYear,
	PeriodTwoYears,
	PeriodFiveYears,
}

// ParsePeriod validates a raw period string.
func ParsePeriod(s string) (Period, error) {
	for _, p := range AllPeriods {
		if Period(s) == p {
			return p, nil
		}
	}

	return "", errors.Newf(errors.ErrCodeInvalidPeriod, "unsupported period: %s", s)
}

// Start returns the beginning of the lookback window ending at now.
func (p Period) Start(now time.Time) time.Time {
	switch p {
	case PeriodOneMonth:
		return now.AddDate(0, -1, 0)
	case PeriodThreeMonths:
		return now.AddDate(0, -3, 0)
	case PeriodSixMonths:
		return now.AddDate(0, -6, 0)
	case PeriodOneYear:
		return now.AddDate(-1, 0, 0)
	case PeriodTwoYears:
		return now.AddDate(-2, 0, 0)
	case PeriodFiveYears:
		return now.AddDate(-5, 0, 0)
	default:
		return now.AddDate(-1, 0, 0)
	}
}
