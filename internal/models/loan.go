package models

import (
	"errors"
	"time"
)

// LoanStatus describes where a loan is in its lifecycle.
type LoanStatus string

const (
	LoanStatusIssued   LoanStatus = "issued"
	LoanStatusReturned LoanStatus = "returned"
)

const (
	// DefaultLoanDays is the loan period applied when no explicit
	// period is requested.
	DefaultLoanDays = 14

	// FinePerDay is the late-return penalty per whole overdue day.
	FinePerDay = 1.0
)

// ErrAlreadyReturned is reported when a return is attempted on a loan
// that has already been closed.
var ErrAlreadyReturned = errors.New("loan already returned")

// Loan records one borrowing event linking a member to a copy.
type Loan struct {
	ID           int64      `db:"loan_id" json:"id"`
	CopyID       int64      `db:"copy_id" json:"copy_id"`
	MemberID     int64      `db:"member_id" json:"member_id"`
	StaffID      *int64     `db:"staff_id" json:"staff_id,omitempty"`
	IssuedDate   time.Time  `db:"issued_date" json:"issued_date"`
	DueDate      time.Time  `db:"due_date" json:"due_date"`
	ReturnedDate *time.Time `db:"returned_date" json:"returned_date,omitempty"`
	Status       LoanStatus `db:"status" json:"status"`
	FineAmount   float64    `db:"fine_amount" json:"fine_amount"`
}

// LoanDetail is a Loan joined with member and book information for
// list views.
type LoanDetail struct {
	Loan
	MemberName  string `db:"member_name" json:"member_name"`
	BookTitle   string `db:"book_title" json:"book_title"`
	AccessionNo string `db:"accession_no" json:"accession_no"`
}

// DateOnly strips the time-of-day part, keeping a midnight-UTC date.
// Loan dates are date-only values.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current date as a date-only value.
func Today() time.Time {
	return DateOnly(time.Now())
}

// NewLoan builds an open loan issued on the given date. A loan period
// of zero or less falls back to DefaultLoanDays.
func NewLoan(copyID, memberID int64, issued time.Time, loanDays int) *Loan {
	if loanDays <= 0 {
		loanDays = DefaultLoanDays
	}
	issued = DateOnly(issued)

	return &Loan{
		CopyID:     copyID,
		MemberID:   memberID,
		IssuedDate: issued,
		DueDate:    issued.AddDate(0, 0, loanDays),
		Status:     LoanStatusIssued,
		FineAmount: 0,
	}
}

// IsOpen reports whether the loan has not been returned yet.
func (l *Loan) IsOpen() bool {
	return l.ReturnedDate == nil
}

// Close marks the loan returned on the given date and finalizes the
// fine. Closing an already-closed loan reports ErrAlreadyReturned and
// changes nothing.
func (l *Loan) Close(returned time.Time) error {
	if !l.IsOpen() {
		return ErrAlreadyReturned
	}

	returned = DateOnly(returned)
	l.ReturnedDate = &returned
	l.FineAmount = FineFor(l.DueDate, returned)
	l.Status = LoanStatusReturned

	return nil
}

// FineFor computes the late-return fine: whole overdue days times
// FinePerDay, zero when returned on or before the due date.
func FineFor(due, returned time.Time) float64 {
	days := int(DateOnly(returned).Sub(DateOnly(due)).Hours() / 24)
	if days <= 0 {
		return 0
	}
	return float64(days) * FinePerDay
}
