package blogservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atelierlumen/studio-api/internal/common"
)

func (m *BlogModel) getAuthors(ctx context.Context, limit, offset int) ([]Author, int, error) {
	query := `
		SELECT count(*) OVER(), id, name, avatar, role, bio, created_at, updated_at
		FROM authors
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`

	rows, err := m.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var total int
	var authors []Author
	for rows.Next() {
		var a Author
		err := rows.Scan(&total, &a.ID, &a.Name, &a.Avatar, &a.Role, &a.Bio, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, 0, err
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return authors, total, nil
}

func (m *BlogModel) getAuthorById(ctx context.Context, id int) (*Author, error) {
	query := `
		SELECT id, name, avatar, role, bio, created_at, updated_at
		FROM authors
		WHERE id = $1`

	row := m.db.QueryRowContext(ctx, query, id)

	var a Author
	err := row.Scan(&a.ID, &a.Name, &a.Avatar, &a.Role, &a.Bio, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &a, nil
}

func (m *BlogModel) insertAuthor(ctx context.Context, a *Author) error {
	query := `
		INSERT INTO authors (name, avatar, role, bio)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	return m.db.QueryRowContext(ctx, query, a.Name, a.Avatar, a.Role, a.Bio).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (m *BlogModel) updateAuthor(ctx context.Context, id int, name, avatar, role, bio *string) (*Author, error) {
	query := `
		UPDATE authors
		SET name = COALESCE($1, name),
		    avatar = COALESCE($2, avatar),
		    role = COALESCE($3, role),
		    bio = COALESCE($4, bio),
		    updated_at = now()
		WHERE id = $5
		RETURNING id, name, avatar, role, bio, created_at, updated_at`

	row := m.db.QueryRowContext(ctx, query, name, avatar, role, bio, id)

	var a Author
	err := row.Scan(&a.ID, &a.Name, &a.Avatar, &a.Role, &a.Bio, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &a, nil
}

func (m *BlogModel) deleteAuthor(ctx context.Context, id int) error {
	query := `
		DELETE FROM authors
		WHERE id = $1`

	res, err := m.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows != 1 {
		switch {
		case rows == 0:
			return common.ErrRecordNotFound
		default:
			return fmt.Errorf("expected 1 row to be affected, got %d", rows)
		}
	}

	return nil
}
