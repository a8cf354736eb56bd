package models

// Member is a registered borrower.
type Member struct {
	ID       int64  `db:"member_id" json:"id"`
	FullName string `db:"full_name" json:"full_name"`
	Email    string `db:"email" json:"email"`
}

// Staff is an optional issuing agent recorded on a loan.
type Staff struct {
	ID       int64  `db:"staff_id" json:"id"`
	Username string `db:"username" json:"username"`
}
