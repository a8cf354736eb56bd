package handlers

import (
	"context"
	"html/template"
	"log"
	"net/http"
	"strings"

	"library-circulation/internal/flash"
	"library-circulation/internal/models"
)

// MemberStore is the storage surface the member handlers need.
type MemberStore interface {
	CreateMember(ctx context.Context, fullName, email string) (*models.Member, error)
	ListMembers(ctx context.Context) ([]models.Member, error)
}

// MembersHandler serves the member list and member creation.
type MembersHandler struct {
	membersTemplate *template.Template
	store           MemberStore
	flashes         *flash.Signer
}

// NewMembersHandler creates the handler for members.
func NewMembersHandler(store MemberStore, flashes *flash.Signer) *MembersHandler {
	return &MembersHandler{
		membersTemplate: loadTemplate("internal/templates/members.html"),
		store:           store,
		flashes:         flashes,
	}
}

// ListMembersHandler lists members (GET /members).
func (h *MembersHandler) ListMembersHandler(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(h.flashes.Pop(w, r))

	members, err := h.store.ListMembers(r.Context())
	if err != nil {
		log.Printf("Error listing members: %v", err)
		data["Error"] = "Error loading members: " + err.Error()
	}

	data["Members"] = members
	render(w, h.membersTemplate, data)
}

// CreateMemberHandler creates a member from the form (POST /members).
func (h *MembersHandler) CreateMemberHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}

	fullName := strings.TrimSpace(r.FormValue("full_name"))
	email := strings.TrimSpace(r.FormValue("email"))

	if fullName == "" {
		h.flashes.Add(w, flash.CategoryDanger, "Name required")
		http.Redirect(w, r, "/members", http.StatusSeeOther)
		return
	}

	if _, err := h.store.CreateMember(r.Context(), fullName, email); err != nil {
		log.Printf("Error creating member: %v", err)
		h.flashes.Add(w, flash.CategoryDanger, "Error adding member: "+err.Error())
	} else {
		h.flashes.Add(w, flash.CategorySuccess, "Member added.")
	}

	http.Redirect(w, r, "/members", http.StatusSeeOther)
}
