package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"

	"library-circulation/internal/models"
)

const listLoansLimit = 200

var (
	// ErrCopyNotFound is reported when an issue targets a copy that
	// does not exist.
	ErrCopyNotFound = errors.New("copy not found")

	// ErrCopyNotAvailable is reported when an issue targets a copy
	// that is not currently available.
	ErrCopyNotAvailable = errors.New("copy not available")

	// ErrLoanNotFound is reported when a return targets a loan that
	// does not exist.
	ErrLoanNotFound = errors.New("loan not found")
)

// IssueLoan lends a copy to a member for loanDays days (default period
// when loanDays <= 0). The copy status flips from available to loaned
// with a conditional update inside the same transaction as the loan
// insert, so two concurrent issuers cannot both succeed on one copy.
func (c *Client) IssueLoan(ctx context.Context, copyID, memberID int64, loanDays int) (*models.Loan, error) {
	loan := models.NewLoan(copyID, memberID, models.Today(), loanDays)

	err := c.withTx(ctx, func(tx *sqlx.Tx) error {
		var status models.CopyStatus
		err := tx.GetContext(ctx, &status,
			`SELECT status FROM copies WHERE copy_id = $1`, copyID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCopyNotFound
		}
		if err != nil {
			return fmt.Errorf("lookup copy: %w", err)
		}

		res, err := tx.ExecContext(ctx,
			`UPDATE copies SET status = $1 WHERE copy_id = $2 AND status = $3`,
			models.CopyStatusLoaned, copyID, models.CopyStatusAvailable)
		if err != nil {
			return fmt.Errorf("update copy status: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("update copy status: %w", err)
		}
		if affected == 0 {
			return ErrCopyNotAvailable
		}

		err = tx.GetContext(ctx, &loan.ID,
			`INSERT INTO loans (copy_id, member_id, staff_id, issued_date, due_date, status, fine_amount)
			 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING loan_id`,
			loan.CopyID, loan.MemberID, loan.StaffID,
			loan.IssuedDate, loan.DueDate, loan.Status, loan.FineAmount)
		if err != nil {
			return fmt.Errorf("insert loan: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return loan, nil
}

// ReturnLoan closes a loan: records the return date, finalizes the
// fine and makes the copy available again, all in one transaction.
// Returning an already-returned loan reports models.ErrAlreadyReturned
// and changes nothing.
func (c *Client) ReturnLoan(ctx context.Context, loanID int64) (*models.Loan, error) {
	var loan models.Loan

	err := c.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &loan,
			`SELECT loan_id, copy_id, member_id, staff_id, issued_date, due_date,
			        returned_date, status, fine_amount
			 FROM loans WHERE loan_id = $1`, loanID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrLoanNotFound
		}
		if err != nil {
			return fmt.Errorf("lookup loan: %w", err)
		}

		if err := loan.Close(models.Today()); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE loans SET returned_date = $1, fine_amount = $2, status = $3 WHERE loan_id = $4`,
			loan.ReturnedDate, loan.FineAmount, loan.Status, loan.ID)
		if err != nil {
			return fmt.Errorf("update loan: %w", err)
		}

		// A vanished copy is tolerated: the update then touches no rows.
		_, err = tx.ExecContext(ctx,
			`UPDATE copies SET status = $1 WHERE copy_id = $2`,
			models.CopyStatusAvailable, loan.CopyID)
		if err != nil {
			return fmt.Errorf("update copy status: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &loan, nil
}

// ListLoans returns loans newest first, joined with member names and
// book titles.
func (c *Client) ListLoans(ctx context.Context) ([]models.LoanDetail, error) {
	query, args, err := goqu.Dialect(dialect).
		From(goqu.T("loans")).
		Select(
			goqu.I("loans.loan_id"),
			goqu.I("loans.copy_id"),
			goqu.I("loans.member_id"),
			goqu.I("loans.staff_id"),
			goqu.I("loans.issued_date"),
			goqu.I("loans.due_date"),
			goqu.I("loans.returned_date"),
			goqu.I("loans.status"),
			goqu.I("loans.fine_amount"),
			goqu.I("members.full_name").As("member_name"),
			goqu.I("books.title").As("book_title"),
			goqu.I("copies.accession_no"),
		).
		Join(goqu.T("members"),
			goqu.On(goqu.I("loans.member_id").Eq(goqu.I("members.member_id")))).
		Join(goqu.T("copies"),
			goqu.On(goqu.I("loans.copy_id").Eq(goqu.I("copies.copy_id")))).
		Join(goqu.T("books"),
			goqu.On(goqu.I("copies.book_id").Eq(goqu.I("books.book_id")))).
		Order(goqu.I("loans.loan_id").Desc()).
		Limit(listLoansLimit).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build loans query: %w", err)
	}

	var loans []models.LoanDetail
	if err := c.db.SelectContext(ctx, &loans, query, args...); err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}

	return loans, nil
}
