package models

// CopyStatus describes whether a physical copy can be issued.
type CopyStatus string

const (
	CopyStatusAvailable CopyStatus = "available"
	CopyStatusLoaned    CopyStatus = "loaned"
)

// Copy is one physical, loanable unit of a Book.
type Copy struct {
	ID          int64      `db:"copy_id" json:"id"`
	BookID      int64      `db:"book_id" json:"book_id"`
	AccessionNo string     `db:"accession_no" json:"accession_no"`
	Location    string     `db:"location" json:"location"`
	Status      CopyStatus `db:"status" json:"status"`
	Price       float64    `db:"price" json:"price"`
}

// IsAvailable reports whether the copy can be issued right now.
func (c *Copy) IsAvailable() bool {
	return c.Status == CopyStatusAvailable
}

// CopyDetail is a Copy joined with the title of its book for list views.
type CopyDetail struct {
	Copy
	BookTitle string `db:"book_title" json:"book_title"`
}
