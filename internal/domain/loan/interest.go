package loan

import (
	"math"
	"time"
)

// Schedule is the repayment plan computed at disbursement time.
type Schedule struct {
	DueDate  time.Time
	Interest float64
	TotalDue float64
}

// ComputeSchedule derives the due date and total amount due for a loan.
//
// The rate is expressed per one frequency unit, NOT annualized: a monthly loan
// with rate 0.05 accrues 5% per month. Callers working with annual rates must
// convert before calling.
//
//   - simple:   totalDue = principal * (1 + rate*periods)
//   - compound: totalDue = principal * (1 + rate)^periods
//
// periods = 0 is a valid degenerate schedule: totalDue = principal and the
// due date equals the start date. Non-positive principal/rate or a negative
// period count yields ErrInvalidLoanParams.
func ComputeSchedule(principal, rate float64, periods int, freq Frequency, mode InterestMode, start time.Time) (Schedule, error) {
	if principal <= 0 || rate <= 0 || periods < 0 {
		return Schedule{}, ErrInvalidLoanParams
	}
	switch mode {
	case ModeSimple, ModeCompound:
	default:
		return Schedule{}, ErrInvalidLoanParams
	}
	switch freq {
	case FreqDaily, FreqWeekly, FreqMonthly:
	default:
		return Schedule{}, ErrInvalidLoanParams
	}

	var interest float64
	if mode == ModeSimple {
		interest = principal * rate * float64(periods)
	} else {
		interest = principal * (math.Pow(1+rate, float64(periods)) - 1)
	}
	interest = Round2(interest)

	return Schedule{
		DueDate:  dueDate(start, periods, freq),
		Interest: interest,
		TotalDue: Round2(principal + interest),
	}, nil
}

func dueDate(start time.Time, periods int, freq Frequency) time.Time {
	start = DateOnly(start)
	switch freq {
	case FreqDaily:
		return start.AddDate(0, 0, periods)
	case FreqWeekly:
		return start.AddDate(0, 0, periods*7)
	default:
		return addMonths(start, periods)
	}
}

// addMonths adds calendar months with end-of-month clamping, so that
// Jan 31 + 1 month lands on Feb 28 (or Feb 29 in a leap year) instead of
// overflowing into March the way AddDate does.
func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, t.Location())
}

// Round2 rounds money to 2 decimals, half away from zero.
func Round2(v float64) float64 { return math.Round(v*100) / 100 }

// DateOnly strips the time-of-day component, keeping the calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
