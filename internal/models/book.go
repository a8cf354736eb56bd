package models

// Publisher is a publishing house referenced by books.
type Publisher struct {
	ID   int64  `db:"publisher_id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Category is a subject classification referenced by books.
type Category struct {
	ID   int64  `db:"category_id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Book represents one title in the catalog. Physical units are tracked
// separately as copies.
type Book struct {
	ID              int64  `db:"book_id" json:"id"`
	Title           string `db:"title" json:"title"`
	ISBN            string `db:"isbn" json:"isbn"`
	PublisherID     *int64 `db:"publisher_id" json:"publisher_id,omitempty"`
	PublicationYear *int16 `db:"publication_year" json:"publication_year,omitempty"`
	Pages           *int16 `db:"pages" json:"pages,omitempty"`
	Language        string `db:"language" json:"language"`
	CategoryID      *int64 `db:"category_id" json:"category_id,omitempty"`
	Description     string `db:"description" json:"description"`
}

// BookDetail is a Book joined with its publisher and category names for
// list views.
type BookDetail struct {
	Book
	PublisherName string `db:"publisher_name" json:"publisher_name"`
	CategoryName  string `db:"category_name" json:"category_name"`
}
