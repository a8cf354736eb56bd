package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"library-circulation/internal/models"
)

const listMembersLimit = 500

// CreateMember registers one borrower.
func (c *Client) CreateMember(ctx context.Context, fullName, email string) (*models.Member, error) {
	member := &models.Member{
		FullName: fullName,
		Email:    email,
	}

	err := c.db.GetContext(ctx, &member.ID,
		`INSERT INTO members (full_name, email) VALUES ($1, $2) RETURNING member_id`,
		member.FullName, member.Email)
	if err != nil {
		return nil, fmt.Errorf("insert member: %w", err)
	}

	return member, nil
}

// ListMembers returns members ordered by name.
func (c *Client) ListMembers(ctx context.Context) ([]models.Member, error) {
	query, args, err := goqu.Dialect(dialect).
		From(goqu.T("members")).
		Select(
			goqu.I("member_id"),
			goqu.I("full_name"),
			goqu.I("email"),
		).
		Order(goqu.I("full_name").Asc()).
		Limit(listMembersLimit).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build members query: %w", err)
	}

	var members []models.Member
	if err := c.db.SelectContext(ctx, &members, query, args...); err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	return members, nil
}
