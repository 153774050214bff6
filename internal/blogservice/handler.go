package blogservice

import (
	"context"
	"database/sql"
	"time"

	"github.com/atelierlumen/studio-api/internal/common"
)

const statsCacheTTL = 5 * time.Minute

func NewBlogService(db *sql.DB, c *common.Cache) *BlogService {
	return &BlogService{m: newBlogModel(db), c: c}
}

type CreatePostRequest struct {
	Title           string   `json:"title"`
	Slug            string   `json:"slug"`
	Excerpt         string   `json:"excerpt"`
	Content         string   `json:"content"`
	FeaturedImage   string   `json:"featured_image"`
	CategoryID      *int     `json:"category_id"`
	AuthorID        *int     `json:"author_id"`
	Tags            []string `json:"tags"`
	MetaTitle       *string  `json:"meta_title"`
	MetaDescription *string  `json:"meta_description"`
}

// CreatePost inserts a new post. The server assigns the id and timestamps and
// the persisted row is returned.
func (s *BlogService) CreatePost(ctx context.Context, req *CreatePostRequest) (*Post, error) {
	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateSlug(v, req.Slug)
	validateContent(v, req.Content)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	p := &Post{
		Title:           req.Title,
		Slug:            req.Slug,
		Excerpt:         sanitizeMarkdown(req.Excerpt),
		Content:         sanitizeMarkdown(req.Content),
		FeaturedImage:   req.FeaturedImage,
		CategoryID:      req.CategoryID,
		AuthorID:        req.AuthorID,
		Tags:            splitTags(joinTags(req.Tags)),
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
	}

	if err := s.m.insertPost(ctx, p); err != nil {
		return nil, err
	}

	s.c.Flush()

	return p, nil
}

// GetPosts returns one page of denormalized posts plus the full filtered
// count. Page defaults to 1 and limit to 10 (capped at 100).
func (s *BlogService) GetPosts(ctx context.Context, f PostFilters) ([]UIPost, int, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
	if f.Limit > 100 {
		f.Limit = 100
	}

	posts, total, err := s.m.getPosts(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	ui := make([]UIPost, 0, len(posts))
	for i := range posts {
		ui = append(ui, toUIPost(&posts[i]))
	}

	return ui, total, nil
}

// GetPostByID returns the raw post row, the shape the admin edit form works on.
func (s *BlogService) GetPostByID(ctx context.Context, id int) (*Post, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getPostById(ctx, id)
}

// GetPostBySlug returns the denormalized view-model for the public detail
// page. Results are cached per slug until the next write.
func (s *BlogService) GetPostBySlug(ctx context.Context, slug string) (*UIPost, error) {
	v := common.NewValidator()
	validateSlug(v, slug)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	key := common.CacheKeyPostBySlug(slug)
	if cached, ok := s.c.Get(key); ok {
		if ui, ok := cached.(UIPost); ok {
			return &ui, nil
		}
	}

	p, err := s.m.getPostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	ui := toUIPost(p)
	s.c.Set(key, ui)

	return &ui, nil
}

// RecordPostView bumps the view counter. Cached copies keep their stale count
// until they expire or a write flushes them.
func (s *BlogService) RecordPostView(ctx context.Context, id int) error {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.incrementPostViews(ctx, id)
}

type UpdatePostRequest struct {
	Title           *string   `json:"title"`
	Slug            *string   `json:"slug"`
	Excerpt         *string   `json:"excerpt"`
	Content         *string   `json:"content"`
	FeaturedImage   *string   `json:"featured_image"`
	CategoryID      *int      `json:"category_id"`
	AuthorID        *int      `json:"author_id"`
	Tags            *[]string `json:"tags"`
	MetaTitle       *string   `json:"meta_title"`
	MetaDescription *string   `json:"meta_description"`
}

// UpdatePost changes only the fields present in the request. updated_at is
// always refreshed and the persisted row is returned.
func (s *BlogService) UpdatePost(ctx context.Context, id int, req *UpdatePostRequest) (*Post, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if req.Title != nil {
		validateTitle(v, *req.Title)
	}
	if req.Slug != nil {
		validateSlug(v, *req.Slug)
	}
	if req.Content != nil {
		validateContent(v, *req.Content)
	}
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if req.Excerpt != nil {
		clean := sanitizeMarkdown(*req.Excerpt)
		req.Excerpt = &clean
	}
	if req.Content != nil {
		clean := sanitizeMarkdown(*req.Content)
		req.Content = &clean
	}

	var tags *string
	if req.Tags != nil {
		joined := joinTags(*req.Tags)
		tags = &joined
	}

	p, err := s.m.updatePost(ctx, id, req.Title, req.Slug, req.Excerpt, req.Content, req.FeaturedImage, req.CategoryID, req.AuthorID, tags, req.MetaTitle, req.MetaDescription)
	if err != nil {
		return nil, err
	}

	s.c.Flush()

	return p, nil
}

// DeletePost hard-deletes one post. A missing id returns ErrRecordNotFound.
func (s *BlogService) DeletePost(ctx context.Context, id int) error {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return v.ValidationError()
	}

	if err := s.m.deletePost(ctx, id); err != nil {
		return err
	}

	s.c.Flush()

	return nil
}

// GetCategories lists all categories name-ascending with derived post counts.
func (s *BlogService) GetCategories(ctx context.Context) ([]Category, error) {
	return s.m.getCategories(ctx)
}

func (s *BlogService) GetCategoryByID(ctx context.Context, id int) (*Category, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getCategoryById(ctx, id)
}

func (s *BlogService) CreateCategory(ctx context.Context, name string) (*Category, error) {
	v := common.NewValidator()
	validateName(v, name, "name")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	c := &Category{Name: name}
	if err := s.m.insertCategory(ctx, c); err != nil {
		return nil, err
	}

	s.c.Flush()

	return c, nil
}

func (s *BlogService) UpdateCategory(ctx context.Context, id int, name *string) (*Category, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if name != nil {
		validateName(v, *name, "name")
	}
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	c, err := s.m.updateCategory(ctx, id, name)
	if err != nil {
		return nil, err
	}

	s.c.Flush()

	return c, nil
}

func (s *BlogService) DeleteCategory(ctx context.Context, id int) error {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return v.ValidationError()
	}

	if err := s.m.deleteCategory(ctx, id); err != nil {
		return err
	}

	s.c.Flush()

	return nil
}

// GetAuthors returns one page of authors newest first plus the total count.
func (s *BlogService) GetAuthors(ctx context.Context, page, limit int) ([]Author, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	return s.m.getAuthors(ctx, limit, (page-1)*limit)
}

func (s *BlogService) GetAuthorByID(ctx context.Context, id int) (*Author, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getAuthorById(ctx, id)
}

type CreateAuthorRequest struct {
	Name   string  `json:"name"`
	Avatar string  `json:"avatar"`
	Role   string  `json:"role"`
	Bio    *string `json:"bio"`
}

func (s *BlogService) CreateAuthor(ctx context.Context, req *CreateAuthorRequest) (*Author, error) {
	v := common.NewValidator()
	validateName(v, req.Name, "name")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	role := req.Role
	if role == "" {
		role = defaultAuthorRole
	}

	a := &Author{
		Name:   req.Name,
		Avatar: req.Avatar,
		Role:   role,
		Bio:    req.Bio,
	}
	if err := s.m.insertAuthor(ctx, a); err != nil {
		return nil, err
	}

	s.c.Flush()

	return a, nil
}

type UpdateAuthorRequest struct {
	Name   *string `json:"name"`
	Avatar *string `json:"avatar"`
	Role   *string `json:"role"`
	Bio    *string `json:"bio"`
}

func (s *BlogService) UpdateAuthor(ctx context.Context, id int, req *UpdateAuthorRequest) (*Author, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if req.Name != nil {
		validateName(v, *req.Name, "name")
	}
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	a, err := s.m.updateAuthor(ctx, id, req.Name, req.Avatar, req.Role, req.Bio)
	if err != nil {
		return nil, err
	}

	s.c.Flush()

	return a, nil
}

func (s *BlogService) DeleteAuthor(ctx context.Context, id int) error {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return v.ValidationError()
	}

	if err := s.m.deleteAuthor(ctx, id); err != nil {
		return err
	}

	s.c.Flush()

	return nil
}

// GetBlogStats returns the dashboard aggregate, cached for a few minutes.
func (s *BlogService) GetBlogStats(ctx context.Context) (*BlogStats, error) {
	key := common.CacheKeyBlogStats()
	if cached, ok := s.c.Get(key); ok {
		if stats, ok := cached.(*BlogStats); ok {
			return stats, nil
		}
	}

	stats, err := s.m.getBlogStats(ctx)
	if err != nil {
		return nil, err
	}

	s.c.Set(key, stats, statsCacheTTL)

	return stats, nil
}
