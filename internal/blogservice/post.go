package blogservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atelierlumen/studio-api/internal/common"
)

func (m *BlogModel) insertPost(ctx context.Context, p *Post) error {
	query := `
		INSERT INTO posts (title, slug, excerpt, content, featured_image, category_id, author_id, tags, meta_title, meta_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at, views`

	err := m.db.QueryRowContext(ctx, query, p.Title, p.Slug, p.Excerpt, p.Content, p.FeaturedImage, p.CategoryID, p.AuthorID, joinTags(p.Tags), p.MetaTitle, p.MetaDescription).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.Views)
	if err != nil {
		switch {
		case ForeignKeyError(err, "posts_category_id_fkey"):
			return ErrCategoryForeignKey
		case ForeignKeyError(err, "posts_author_id_fkey"):
			return ErrAuthorForeignKey
		case UniqueViolationError(err, "posts_slug_key"):
			return ErrDuplicateSlug
		default:
			return err
		}
	}

	return nil
}

// getPosts lists posts newest first with the search, category, and pagination
// predicates applied together. The filtered total rides along on every row
// via count(*) OVER() so the listing stays a single round trip. A page past
// the end returns no rows, so the total is recovered there with a second
// count over the same predicates.
func (m *BlogModel) getPosts(ctx context.Context, f PostFilters) ([]Post, int, error) {
	query := `
		SELECT count(*) OVER(), p.id, p.title, p.slug, p.excerpt, p.content, p.featured_image,
		       p.category_id, p.author_id, p.tags, p.meta_title, p.meta_description,
		       p.created_at, p.updated_at, p.views,
		       c.name, a.name, a.avatar, a.role
		FROM posts p
		LEFT JOIN categories c ON p.category_id = c.id
		LEFT JOIN authors a ON p.author_id = a.id
		WHERE (p.title ILIKE $1 OR p.excerpt ILIKE $1 OR p.content ILIKE $1)
		AND (p.category_id = $2 OR $2 = 0)
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $3 OFFSET $4`

	offset := (f.Page - 1) * f.Limit

	rows, err := m.db.QueryContext(ctx, query, "%"+f.Search+"%", f.CategoryID, f.Limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var total int
	var posts []Post
	for rows.Next() {
		var p Post
		var tags string
		err := rows.Scan(&total, &p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.FeaturedImage, &p.CategoryID, &p.AuthorID, &tags, &p.MetaTitle, &p.MetaDescription, &p.CreatedAt, &p.UpdatedAt, &p.Views, &p.CategoryName, &p.AuthorName, &p.AuthorAvatar, &p.AuthorRole)
		if err != nil {
			return nil, 0, err
		}
		p.Tags = splitTags(tags)
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if len(posts) == 0 && offset > 0 {
		count := `
			SELECT count(*)
			FROM posts p
			WHERE (p.title ILIKE $1 OR p.excerpt ILIKE $1 OR p.content ILIKE $1)
			AND (p.category_id = $2 OR $2 = 0)`

		if err := m.db.QueryRowContext(ctx, count, "%"+f.Search+"%", f.CategoryID).Scan(&total); err != nil {
			return nil, 0, err
		}
	}

	return posts, total, nil
}

func (m *BlogModel) getPostById(ctx context.Context, id int) (*Post, error) {
	query := `
		SELECT id, title, slug, excerpt, content, featured_image, category_id, author_id, tags, meta_title, meta_description, created_at, updated_at, views
		FROM posts
		WHERE id = $1`

	row := m.db.QueryRowContext(ctx, query, id)

	var p Post
	var tags string
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.FeaturedImage, &p.CategoryID, &p.AuthorID, &tags, &p.MetaTitle, &p.MetaDescription, &p.CreatedAt, &p.UpdatedAt, &p.Views)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}
	p.Tags = splitTags(tags)

	return &p, nil
}

// getPostBySlug is the public detail lookup, joining the category and author
// display fields for the view-model.
func (m *BlogModel) getPostBySlug(ctx context.Context, slug string) (*Post, error) {
	query := `
		SELECT p.id, p.title, p.slug, p.excerpt, p.content, p.featured_image,
		       p.category_id, p.author_id, p.tags, p.meta_title, p.meta_description,
		       p.created_at, p.updated_at, p.views,
		       c.name, a.name, a.avatar, a.role
		FROM posts p
		LEFT JOIN categories c ON p.category_id = c.id
		LEFT JOIN authors a ON p.author_id = a.id
		WHERE p.slug = $1`

	row := m.db.QueryRowContext(ctx, query, slug)

	var p Post
	var tags string
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.FeaturedImage, &p.CategoryID, &p.AuthorID, &tags, &p.MetaTitle, &p.MetaDescription, &p.CreatedAt, &p.UpdatedAt, &p.Views, &p.CategoryName, &p.AuthorName, &p.AuthorAvatar, &p.AuthorRole)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}
	p.Tags = splitTags(tags)

	return &p, nil
}

// updatePost changes only the columns whose arguments are non-nil and always
// refreshes updated_at. created_at and views are untouched.
func (m *BlogModel) updatePost(ctx context.Context, id int, title, slug, excerpt, content, featuredImage *string, categoryId, authorId *int, tags, metaTitle, metaDescription *string) (*Post, error) {
	query := `
		UPDATE posts
		SET title = COALESCE($1, title),
		    slug = COALESCE($2, slug),
		    excerpt = COALESCE($3, excerpt),
		    content = COALESCE($4, content),
		    featured_image = COALESCE($5, featured_image),
		    category_id = COALESCE($6, category_id),
		    author_id = COALESCE($7, author_id),
		    tags = COALESCE($8, tags),
		    meta_title = COALESCE($9, meta_title),
		    meta_description = COALESCE($10, meta_description),
		    updated_at = now()
		WHERE id = $11
		RETURNING id, title, slug, excerpt, content, featured_image, category_id, author_id, tags, meta_title, meta_description, created_at, updated_at, views`

	row := m.db.QueryRowContext(ctx, query, title, slug, excerpt, content, featuredImage, categoryId, authorId, tags, metaTitle, metaDescription, id)

	var p Post
	var dbTags string
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.FeaturedImage, &p.CategoryID, &p.AuthorID, &dbTags, &p.MetaTitle, &p.MetaDescription, &p.CreatedAt, &p.UpdatedAt, &p.Views)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		case ForeignKeyError(err, "posts_category_id_fkey"):
			return nil, ErrCategoryForeignKey
		case ForeignKeyError(err, "posts_author_id_fkey"):
			return nil, ErrAuthorForeignKey
		case UniqueViolationError(err, "posts_slug_key"):
			return nil, ErrDuplicateSlug
		default:
			return nil, err
		}
	}
	p.Tags = splitTags(dbTags)

	return &p, nil
}

func (m *BlogModel) deletePost(ctx context.Context, id int) error {
	query := `
		DELETE FROM posts
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

// incrementPostViews bumps the view counter without touching updated_at.
func (m *BlogModel) incrementPostViews(ctx context.Context, id int) error {
	query := `
		UPDATE posts
		SET views = views + 1
		WHERE id = $1`

	_, err := m.db.ExecContext(ctx, query, id)
	return err
}
