package loan

import "time"

// DeriveStatus computes the status a loan should carry on a given day.
// Status is a pure function of (collected, totalDue, dueDate, today):
//
//	paid    ⇔ collected >= totalDue (terminal)
//	overdue ⇔ not paid and today is past the due date
//	active  otherwise
//
// It is idempotent and never reads the stored Status field, so stale stored
// values are corrected on the next derivation.
func DeriveStatus(l *Loan, today time.Time) Status {
	if l.Collected >= l.TotalDue {
		return StatusPaid
	}
	if DateOnly(today).After(DateOnly(l.DueDate)) {
		return StatusOverdue
	}
	return StatusActive
}

// SameDay reports whether two timestamps fall on the same calendar date (UTC).
func SameDay(a, b time.Time) bool { return DateOnly(a).Equal(DateOnly(b)) }
