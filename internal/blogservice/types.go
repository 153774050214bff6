package blogservice

import (
	"database/sql"
	"time"

	"github.com/atelierlumen/studio-api/internal/common"
)

type Post struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Excerpt string `json:"excerpt"`
	// Content is stored in Markdown format.
	Content         string    `json:"content"`
	FeaturedImage   string    `json:"featured_image"`
	CategoryID      *int      `json:"category_id"`
	AuthorID        *int      `json:"author_id"`
	Tags            []string  `json:"tags"`
	MetaTitle       *string   `json:"meta_title,omitempty"`
	MetaDescription *string   `json:"meta_description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Views           int       `json:"views"`

	// Display fields from the joined category and author rows. Only list
	// and slug lookups populate these; nil means the reference is missing
	// and the view-model falls back to its defaults.
	CategoryName *string `json:"-"`
	AuthorName   *string `json:"-"`
	AuthorAvatar *string `json:"-"`
	AuthorRole   *string `json:"-"`
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	// Count is derived from the posts table at read time, never stored.
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Author struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Role      string    `json:"role"`
	Bio       *string   `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BlogStats struct {
	TotalPosts   int      `json:"total_posts"`
	TotalAuthors int      `json:"total_authors"`
	TotalViews   int      `json:"total_views"`
	RecentPosts  []UIPost `json:"recent_posts"`
}

// PostFilters carries the composable listing predicates. A zero CategoryID
// means no category filter; an empty Search matches everything.
type PostFilters struct {
	Page       int
	Limit      int
	Search     string
	CategoryID int
}

type BlogModel struct {
	db *sql.DB
}

type BlogService struct {
	m *BlogModel
	c *common.Cache
}
