package blogservice

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

var (
	ErrCategoryForeignKey = errors.New("category_id does not exist")
	ErrAuthorForeignKey   = errors.New("author_id does not exist")
	ErrDuplicateSlug      = errors.New("slug already exists")
	ErrDuplicateCategory  = errors.New("category name already exists")
)

func newBlogModel(db *sql.DB) *BlogModel {
	return &BlogModel{db: db}
}

// ForeignKeyError is a helper function to check if the error is a foreign key constraint error.
func ForeignKeyError(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == "23503" && pqErr.Constraint == name {
			return true
		}
	}

	return false
}

// UniqueViolationError is a helper function to check if the error is a unique constraint error.
func UniqueViolationError(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == "23505" && pqErr.Constraint == name {
			return true
		}
	}

	return false
}
