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

// CatalogStore is the storage surface the book handlers need.
type CatalogStore interface {
	CreateBook(ctx context.Context, title, isbn, publisherName, categoryName string) (*models.Book, error)
	ListBooks(ctx context.Context) ([]models.BookDetail, error)
	ListCopies(ctx context.Context) ([]models.CopyDetail, error)
}

// BooksHandler serves the index page and book creation.
type BooksHandler struct {
	indexTemplate *template.Template
	store         CatalogStore
	flashes       *flash.Signer
}

// NewBooksHandler creates the handler for books and copies.
func NewBooksHandler(store CatalogStore, flashes *flash.Signer) *BooksHandler {
	return &BooksHandler{
		indexTemplate: loadTemplate("internal/templates/index.html"),
		store:         store,
		flashes:       flashes,
	}
}

// IndexHandler lists books and copies (GET /).
func (h *BooksHandler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(h.flashes.Pop(w, r))

	books, err := h.store.ListBooks(r.Context())
	if err != nil {
		log.Printf("Error listing books: %v", err)
		data["Error"] = "Error loading books: " + err.Error()
	}

	copies, err := h.store.ListCopies(r.Context())
	if err != nil {
		log.Printf("Error listing copies: %v", err)
		data["Error"] = "Error loading copies: " + err.Error()
	}

	data["Books"] = books
	data["Copies"] = copies
	render(w, h.indexTemplate, data)
}

// AddBookHandler creates a book from the form (POST /add_book).
// Publisher and category are free-text names resolved to rows,
// created on first use.
func (h *BooksHandler) AddBookHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	isbn := strings.TrimSpace(r.FormValue("isbn"))
	publisher := strings.TrimSpace(r.FormValue("publisher"))
	category := strings.TrimSpace(r.FormValue("category"))

	if title == "" {
		h.flashes.Add(w, flash.CategoryDanger, "Title is required")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if _, err := h.store.CreateBook(r.Context(), title, isbn, publisher, category); err != nil {
		log.Printf("Error creating book: %v", err)
		h.flashes.Add(w, flash.CategoryDanger, "Error adding book: "+err.Error())
	} else {
		h.flashes.Add(w, flash.CategorySuccess, "Book added.")
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
