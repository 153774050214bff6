package blogservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atelierlumen/studio-api/internal/common"
)

// getCategories lists every category with its derived post count in a single
// grouped aggregate, ordered by name.
func (m *BlogModel) getCategories(ctx context.Context) ([]Category, error) {
	query := `
		SELECT c.id, c.name, c.created_at, c.updated_at, count(p.id)
		FROM categories c
		LEFT JOIN posts p ON p.category_id = c.id
		GROUP BY c.id
		ORDER BY c.name ASC`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt, &c.Count)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (m *BlogModel) getCategoryById(ctx context.Context, id int) (*Category, error) {
	query := `
		SELECT c.id, c.name, c.created_at, c.updated_at, count(p.id)
		FROM categories c
		LEFT JOIN posts p ON p.category_id = c.id
		WHERE c.id = $1
		GROUP BY c.id`

	row := m.db.QueryRowContext(ctx, query, id)

	var c Category
	err := row.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt, &c.Count)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &c, nil
}

func (m *BlogModel) insertCategory(ctx context.Context, c *Category) error {
	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id, created_at, updated_at`

	err := m.db.QueryRowContext(ctx, query, c.Name).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		switch {
		case UniqueViolationError(err, "categories_name_key"):
			return ErrDuplicateCategory
		default:
			return err
		}
	}

	return nil
}

func (m *BlogModel) updateCategory(ctx context.Context, id int, name *string) (*Category, error) {
	query := `
		UPDATE categories
		SET name = COALESCE($1, name), updated_at = now()
		WHERE id = $2
		RETURNING id, name, created_at, updated_at,
		          (SELECT count(*) FROM posts WHERE posts.category_id = categories.id)`

	row := m.db.QueryRowContext(ctx, query, name, id)

	var c Category
	err := row.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt, &c.Count)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		case UniqueViolationError(err, "categories_name_key"):
			return nil, ErrDuplicateCategory
		default:
			return nil, err
		}
	}

	return &c, nil
}

func (m *BlogModel) deleteCategory(ctx context.Context, id int) error {
	query := `
		DELETE FROM categories
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
