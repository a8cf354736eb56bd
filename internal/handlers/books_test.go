package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-circulation/internal/flash"
	"library-circulation/internal/models"
)

func Test_AddBookHandler_RequiresTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
	}{
		{name: "missing_title", title: ""},
		{name: "whitespace_only_title", title: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			signer := flash.NewSigner("test-secret")
			h := NewBooksHandler(store, signer)

			rec := httptest.NewRecorder()
			h.AddBookHandler(rec, postForm("/add_book", url.Values{"title": {tt.title}}))

			assertRedirect(t, rec, "/")
			msg := popFlash(t, signer, rec)
			assert.Equal(t, flash.CategoryDanger, msg.Category)
			assert.Equal(t, "Title is required", msg.Text)
			assert.Empty(t, store.createdBooks, "no book must be created")
		})
	}
}

func Test_AddBookHandler_CreatesBookWithTrimmedInput(t *testing.T) {
	store := &fakeStore{}
	signer := flash.NewSigner("test-secret")
	h := NewBooksHandler(store, signer)

	form := url.Values{
		"title":     {"  Dune  "},
		"isbn":      {" 978-0-441-17271-9 "},
		"publisher": {" Ace Books "},
		"category":  {" Sci-Fi "},
	}

	rec := httptest.NewRecorder()
	h.AddBookHandler(rec, postForm("/add_book", form))

	assertRedirect(t, rec, "/")
	msg := popFlash(t, signer, rec)
	assert.Equal(t, flash.CategorySuccess, msg.Category)
	assert.Equal(t, "Book added.", msg.Text)

	require.Len(t, store.createdBooks, 1)
	created := store.createdBooks[0]
	assert.Equal(t, "Dune", created.title)
	assert.Equal(t, "978-0-441-17271-9", created.isbn)
	assert.Equal(t, "Ace Books", created.publisher)
	assert.Equal(t, "Sci-Fi", created.category)
}

func Test_AddBookHandler_ReportsStoreFailure(t *testing.T) {
	store := &fakeStore{createBookErr: errors.New("connection reset")}
	signer := flash.NewSigner("test-secret")
	h := NewBooksHandler(store, signer)

	rec := httptest.NewRecorder()
	h.AddBookHandler(rec, postForm("/add_book", url.Values{"title": {"Dune"}}))

	assertRedirect(t, rec, "/")
	msg := popFlash(t, signer, rec)
	assert.Equal(t, flash.CategoryDanger, msg.Category)
	assert.Equal(t, "Error adding book: connection reset", msg.Text)
}

func Test_IndexHandler_RendersBooksAndCopies(t *testing.T) {
	store := &fakeStore{
		books: []models.BookDetail{
			{Book: models.Book{ID: 1, Title: "Dune"}, PublisherName: "Ace Books", CategoryName: "Sci-Fi"},
		},
		copies: []models.CopyDetail{
			{Copy: models.Copy{ID: 5, BookID: 1, AccessionNo: "ACC-1A2B3C4D", Status: models.CopyStatusAvailable}, BookTitle: "Dune"},
		},
	}
	signer := flash.NewSigner("test-secret")
	h := NewBooksHandler(store, signer)

	rec := httptest.NewRecorder()
	h.IndexHandler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Dune")
	assert.Contains(t, body, "Ace Books")
	assert.Contains(t, body, "ACC-1A2B3C4D")
	assert.Contains(t, body, "available")
}

func Test_IndexHandler_ShowsFlashFromCookie(t *testing.T) {
	signer := flash.NewSigner("test-secret")
	h := NewBooksHandler(&fakeStore{}, signer)

	seed := httptest.NewRecorder()
	signer.Add(seed, flash.CategorySuccess, "Book added.")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range seed.Result().Cookies() {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	h.IndexHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Book added.")
}
