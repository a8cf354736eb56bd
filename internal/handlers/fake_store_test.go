package handlers

import (
	"context"

	"library-circulation/internal/models"
)

type createdBook struct {
	title, isbn, publisher, category string
}

type createdMember struct {
	fullName, email string
}

type issueCall struct {
	copyID, memberID int64
	loanDays         int
}

// fakeStore satisfies CatalogStore, MemberStore and LoanStore with
// canned results, recording the mutating calls it receives.
type fakeStore struct {
	books           []models.BookDetail
	copies          []models.CopyDetail
	members         []models.Member
	loans           []models.LoanDetail
	availableCopies []models.CopyDetail

	createdBooks  []createdBook
	createBookErr error

	createdMembers  []createdMember
	createMemberErr error

	issueCalls []issueCall
	issueErr   error

	returnCalls  []int64
	returnErr    error
	returnedLoan *models.Loan
}

func (f *fakeStore) CreateBook(_ context.Context, title, isbn, publisherName, categoryName string) (*models.Book, error) {
	if f.createBookErr != nil {
		return nil, f.createBookErr
	}
	f.createdBooks = append(f.createdBooks, createdBook{title, isbn, publisherName, categoryName})
	return &models.Book{ID: int64(len(f.createdBooks)), Title: title, ISBN: isbn}, nil
}

func (f *fakeStore) ListBooks(context.Context) ([]models.BookDetail, error) {
	return f.books, nil
}

func (f *fakeStore) ListCopies(context.Context) ([]models.CopyDetail, error) {
	return f.copies, nil
}

func (f *fakeStore) CreateMember(_ context.Context, fullName, email string) (*models.Member, error) {
	if f.createMemberErr != nil {
		return nil, f.createMemberErr
	}
	f.createdMembers = append(f.createdMembers, createdMember{fullName, email})
	return &models.Member{ID: int64(len(f.createdMembers)), FullName: fullName, Email: email}, nil
}

func (f *fakeStore) ListMembers(context.Context) ([]models.Member, error) {
	return f.members, nil
}

func (f *fakeStore) IssueLoan(_ context.Context, copyID, memberID int64, loanDays int) (*models.Loan, error) {
	if f.issueErr != nil {
		return nil, f.issueErr
	}
	f.issueCalls = append(f.issueCalls, issueCall{copyID, memberID, loanDays})
	return models.NewLoan(copyID, memberID, models.Today(), loanDays), nil
}

func (f *fakeStore) ReturnLoan(_ context.Context, loanID int64) (*models.Loan, error) {
	if f.returnErr != nil {
		return nil, f.returnErr
	}
	f.returnCalls = append(f.returnCalls, loanID)
	if f.returnedLoan != nil {
		return f.returnedLoan, nil
	}
	return &models.Loan{ID: loanID, Status: models.LoanStatusReturned}, nil
}

func (f *fakeStore) ListLoans(context.Context) ([]models.LoanDetail, error) {
	return f.loans, nil
}

func (f *fakeStore) ListAvailableCopies(context.Context) ([]models.CopyDetail, error) {
	return f.availableCopies, nil
}
