package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"

	"library-circulation/internal/models"
)

const (
	listBooksLimit  = 200
	listCopiesLimit = 200
)

// resolvePublisher returns the id of the publisher whose name matches
// case-insensitively, inserting it first when absent. The insert is
// atomic against the case-insensitive unique index, so two concurrent
// resolutions of the same name converge on one row.
func resolvePublisher(ctx context.Context, tx *sqlx.Tx, name string) (int64, error) {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO publishers (name) VALUES ($1) ON CONFLICT ((LOWER(name))) DO NOTHING`, name)
	if err != nil {
		return 0, fmt.Errorf("insert publisher: %w", err)
	}

	var id int64
	err = tx.GetContext(ctx, &id,
		`SELECT publisher_id FROM publishers WHERE LOWER(name) = LOWER($1)`, name)
	if err != nil {
		return 0, fmt.Errorf("lookup publisher: %w", err)
	}

	return id, nil
}

// resolveCategory works like resolvePublisher for categories.
func resolveCategory(ctx context.Context, tx *sqlx.Tx, name string) (int64, error) {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO categories (name) VALUES ($1) ON CONFLICT ((LOWER(name))) DO NOTHING`, name)
	if err != nil {
		return 0, fmt.Errorf("insert category: %w", err)
	}

	var id int64
	err = tx.GetContext(ctx, &id,
		`SELECT category_id FROM categories WHERE LOWER(name) = LOWER($1)`, name)
	if err != nil {
		return 0, fmt.Errorf("lookup category: %w", err)
	}

	return id, nil
}

// CreateBook inserts one book, resolving publisher and category names
// to rows first. Empty names mean no association. Everything commits
// in one transaction.
func (c *Client) CreateBook(ctx context.Context, title, isbn, publisherName, categoryName string) (*models.Book, error) {
	book := &models.Book{
		Title: title,
		ISBN:  isbn,
	}

	err := c.withTx(ctx, func(tx *sqlx.Tx) error {
		if publisherName != "" {
			id, err := resolvePublisher(ctx, tx, publisherName)
			if err != nil {
				return err
			}
			book.PublisherID = &id
		}

		if categoryName != "" {
			id, err := resolveCategory(ctx, tx, categoryName)
			if err != nil {
				return err
			}
			book.CategoryID = &id
		}

		err := tx.GetContext(ctx, &book.ID,
			`INSERT INTO books (title, isbn, publisher_id, category_id)
			 VALUES ($1, $2, $3, $4) RETURNING book_id`,
			book.Title, book.ISBN, book.PublisherID, book.CategoryID)
		if err != nil {
			return fmt.Errorf("insert book: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return book, nil
}

// AddCopy registers one physical copy of a book, available for loan.
func (c *Client) AddCopy(ctx context.Context, bookID int64, accessionNo, location string, price float64) (*models.Copy, error) {
	cp := &models.Copy{
		BookID:      bookID,
		AccessionNo: accessionNo,
		Location:    location,
		Status:      models.CopyStatusAvailable,
		Price:       price,
	}

	err := c.db.GetContext(ctx, &cp.ID,
		`INSERT INTO copies (book_id, accession_no, location, status, price)
		 VALUES ($1, $2, $3, $4, $5) RETURNING copy_id`,
		cp.BookID, cp.AccessionNo, cp.Location, cp.Status, cp.Price)
	if err != nil {
		return nil, fmt.Errorf("insert copy: %w", err)
	}

	return cp, nil
}

// ListBooks returns books ordered by title, joined with publisher and
// category names.
func (c *Client) ListBooks(ctx context.Context) ([]models.BookDetail, error) {
	query, args, err := goqu.Dialect(dialect).
		From(goqu.T("books")).
		Select(
			goqu.I("books.book_id"),
			goqu.I("books.title"),
			goqu.I("books.isbn"),
			goqu.I("books.publisher_id"),
			goqu.I("books.publication_year"),
			goqu.I("books.pages"),
			goqu.I("books.language"),
			goqu.I("books.category_id"),
			goqu.I("books.description"),
			goqu.COALESCE(goqu.I("publishers.name"), goqu.V("")).As("publisher_name"),
			goqu.COALESCE(goqu.I("categories.name"), goqu.V("")).As("category_name"),
		).
		LeftJoin(goqu.T("publishers"),
			goqu.On(goqu.I("books.publisher_id").Eq(goqu.I("publishers.publisher_id")))).
		LeftJoin(goqu.T("categories"),
			goqu.On(goqu.I("books.category_id").Eq(goqu.I("categories.category_id")))).
		Order(goqu.I("books.title").Asc()).
		Limit(listBooksLimit).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build books query: %w", err)
	}

	var books []models.BookDetail
	if err := c.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	return books, nil
}

// ListCopies returns copies ordered by id, joined with their book
// titles.
func (c *Client) ListCopies(ctx context.Context) ([]models.CopyDetail, error) {
	return c.listCopies(ctx, false)
}

// ListAvailableCopies returns only copies that can be issued.
func (c *Client) ListAvailableCopies(ctx context.Context) ([]models.CopyDetail, error) {
	return c.listCopies(ctx, true)
}

func (c *Client) listCopies(ctx context.Context, availableOnly bool) ([]models.CopyDetail, error) {
	ds := goqu.Dialect(dialect).
		From(goqu.T("copies")).
		Select(
			goqu.I("copies.copy_id"),
			goqu.I("copies.book_id"),
			goqu.I("copies.accession_no"),
			goqu.I("copies.location"),
			goqu.I("copies.status"),
			goqu.I("copies.price"),
			goqu.I("books.title").As("book_title"),
		).
		Join(goqu.T("books"),
			goqu.On(goqu.I("copies.book_id").Eq(goqu.I("books.book_id")))).
		Order(goqu.I("copies.copy_id").Asc()).
		Limit(listCopiesLimit)

	if availableOnly {
		ds = ds.Where(goqu.I("copies.status").Eq(string(models.CopyStatusAvailable)))
	}

	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build copies query: %w", err)
	}

	var copies []models.CopyDetail
	if err := c.db.SelectContext(ctx, &copies, query, args...); err != nil {
		return nil, fmt.Errorf("list copies: %w", err)
	}

	return copies, nil
}
