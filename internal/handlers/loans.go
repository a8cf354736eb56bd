package handlers

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"library-circulation/internal/flash"
	"library-circulation/internal/models"
	"library-circulation/internal/postgres"
)

// LoanStore is the storage surface the loan handlers need.
type LoanStore interface {
	IssueLoan(ctx context.Context, copyID, memberID int64, loanDays int) (*models.Loan, error)
	ReturnLoan(ctx context.Context, loanID int64) (*models.Loan, error)
	ListLoans(ctx context.Context) ([]models.LoanDetail, error)
	ListAvailableCopies(ctx context.Context) ([]models.CopyDetail, error)
}

// LoansHandler serves the loan list and the issue/return actions.
type LoansHandler struct {
	loansTemplate *template.Template
	store         LoanStore
	members       MemberStore
	flashes       *flash.Signer
}

// NewLoansHandler creates the handler for loans.
func NewLoansHandler(store LoanStore, members MemberStore, flashes *flash.Signer) *LoansHandler {
	return &LoansHandler{
		loansTemplate: loadTemplate("internal/templates/loans.html"),
		store:         store,
		members:       members,
		flashes:       flashes,
	}
}

// ListLoansHandler lists loans newest first, plus the available copies
// and members for the issue form (GET /loans).
func (h *LoansHandler) ListLoansHandler(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(h.flashes.Pop(w, r))

	loans, err := h.store.ListLoans(r.Context())
	if err != nil {
		log.Printf("Error listing loans: %v", err)
		data["Error"] = "Error loading loans: " + err.Error()
	}

	availableCopies, err := h.store.ListAvailableCopies(r.Context())
	if err != nil {
		log.Printf("Error listing available copies: %v", err)
		data["Error"] = "Error loading copies: " + err.Error()
	}

	members, err := h.members.ListMembers(r.Context())
	if err != nil {
		log.Printf("Error listing members: %v", err)
		data["Error"] = "Error loading members: " + err.Error()
	}

	data["Loans"] = loans
	data["AvailableCopies"] = availableCopies
	data["Members"] = members
	render(w, h.loansTemplate, data)
}

// LoanActionHandler dispatches the loan form by its action field
// (POST /loans): "issue" lends a copy, "return" closes a loan.
func (h *LoansHandler) LoanActionHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}

	switch r.FormValue("action") {
	case "issue":
		h.issue(w, r)
	case "return":
		h.returnLoan(w, r)
	default:
		http.Redirect(w, r, "/loans", http.StatusSeeOther)
	}
}

func (h *LoansHandler) issue(w http.ResponseWriter, r *http.Request) {
	copyID, okCopy := formInt(r, "copy_id")
	memberID, okMember := formInt(r, "member_id")
	// Absent or unparsable loan_days falls back to the default period.
	loanDays, _ := formInt(r, "loan_days")

	if !okCopy || !okMember {
		h.flashes.Add(w, flash.CategoryWarning, "Please select both a copy and a member.")
		http.Redirect(w, r, "/loans", http.StatusSeeOther)
		return
	}

	_, err := h.store.IssueLoan(r.Context(), copyID, memberID, int(loanDays))
	switch {
	case errors.Is(err, postgres.ErrCopyNotFound):
		h.flashes.Add(w, flash.CategoryDanger, "Selected copy not found.")
	case errors.Is(err, postgres.ErrCopyNotAvailable):
		h.flashes.Add(w, flash.CategoryWarning, "Selected copy is not available.")
	case err != nil:
		log.Printf("Error issuing loan: %v", err)
		h.flashes.Add(w, flash.CategoryDanger, "Error issuing loan: "+err.Error())
	default:
		h.flashes.Add(w, flash.CategorySuccess, "Issued successfully.")
	}

	http.Redirect(w, r, "/loans", http.StatusSeeOther)
}

func (h *LoansHandler) returnLoan(w http.ResponseWriter, r *http.Request) {
	loanID, ok := formInt(r, "loan_id")
	if !ok {
		h.flashes.Add(w, flash.CategoryWarning, "No loan selected to return.")
		http.Redirect(w, r, "/loans", http.StatusSeeOther)
		return
	}

	loan, err := h.store.ReturnLoan(r.Context(), loanID)
	switch {
	case errors.Is(err, postgres.ErrLoanNotFound):
		h.flashes.Add(w, flash.CategoryDanger, "Loan not found.")
	case errors.Is(err, models.ErrAlreadyReturned):
		h.flashes.Add(w, flash.CategoryInfo, "Loan already returned.")
	case err != nil:
		log.Printf("Error returning loan: %v", err)
		h.flashes.Add(w, flash.CategoryDanger, "Error returning loan: "+err.Error())
	default:
		h.flashes.Add(w, flash.CategorySuccess, fmt.Sprintf("Returned. Fine: %g", loan.FineAmount))
	}

	http.Redirect(w, r, "/loans", http.StatusSeeOther)
}
