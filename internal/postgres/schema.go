package postgres

import (
	"context"
	"fmt"
)

// schemaStatements creates the circulation schema. The case-insensitive
// unique indexes back the atomic lookup-or-create of publishers and
// categories; the partial unique index guarantees at most one open loan
// per copy.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS publishers (
		publisher_id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		category_id BIGSERIAL PRIMARY KEY,
		name VARCHAR(200) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		book_id BIGSERIAL PRIMARY KEY,
		title VARCHAR(500) NOT NULL,
		isbn VARCHAR(50) NOT NULL DEFAULT '',
		publisher_id BIGINT REFERENCES publishers(publisher_id),
		publication_year SMALLINT,
		pages SMALLINT,
		language VARCHAR(100) NOT NULL DEFAULT '',
		category_id BIGINT REFERENCES categories(category_id),
		description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS copies (
		copy_id BIGSERIAL PRIMARY KEY,
		book_id BIGINT NOT NULL REFERENCES books(book_id),
		accession_no VARCHAR(100) NOT NULL DEFAULT '',
		location VARCHAR(200) NOT NULL DEFAULT '',
		status VARCHAR(50) NOT NULL DEFAULT 'available',
		price NUMERIC(10,2) NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS members (
		member_id BIGSERIAL PRIMARY KEY,
		full_name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS staff (
		staff_id BIGSERIAL PRIMARY KEY,
		username VARCHAR(100) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS loans (
		loan_id BIGSERIAL PRIMARY KEY,
		copy_id BIGINT NOT NULL REFERENCES copies(copy_id),
		member_id BIGINT NOT NULL REFERENCES members(member_id),
		staff_id BIGINT REFERENCES staff(staff_id),
		issued_date DATE NOT NULL,
		due_date DATE NOT NULL,
		returned_date DATE,
		status VARCHAR(50) NOT NULL DEFAULT 'issued',
		fine_amount NUMERIC(10,2) NOT NULL DEFAULT 0
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS publishers_name_ci_key
		ON publishers (LOWER(name))`,
	`CREATE UNIQUE INDEX IF NOT EXISTS categories_name_ci_key
		ON categories (LOWER(name))`,
	`CREATE UNIQUE INDEX IF NOT EXISTS loans_open_copy_key
		ON loans (copy_id) WHERE returned_date IS NULL`,
}

// CreateSchema creates all tables and indexes that do not exist yet.
func (c *Client) CreateSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := c.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
