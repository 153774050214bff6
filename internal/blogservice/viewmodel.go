package blogservice

import (
	"fmt"
	"time"
)

const (
	defaultCategory   = "Uncategorized"
	defaultAuthorName = "Unknown"
	defaultAuthorRole = "Author"
	placeholderAvatar = "/images/avatar-placeholder.png"
	defaultReadTime   = "5 min"
)

type UIAuthor struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Role   string `json:"role"`
}

// UIPost is the denormalized shape the site pages consume: the category and
// author display fields are embedded, the date is pre-formatted, and tags are
// always a slice.
type UIPost struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Excerpt  string   `json:"excerpt"`
	Image    string   `json:"image"`
	Category string   `json:"category"`
	Author   UIAuthor `json:"author"`
	Date     string   `json:"date"`
	ReadTime string   `json:"read_time"`
	Tags     []string `json:"tags"`
	Views    int      `json:"views"`
}

var frenchMonths = [12]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// formatFrenchDate renders a long-form date the way the site displays it,
// e.g. "2 janvier 2026".
func formatFrenchDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), frenchMonths[t.Month()-1], t.Year())
}

// toUIPost converts a raw post row into the UI view-model, applying the
// display defaults for missing category or author references.
func toUIPost(p *Post) UIPost {
	ui := UIPost{
		ID:       p.ID,
		Title:    p.Title,
		Slug:     p.Slug,
		Excerpt:  p.Excerpt,
		Image:    p.FeaturedImage,
		Category: defaultCategory,
		Author: UIAuthor{
			Name:   defaultAuthorName,
			Avatar: placeholderAvatar,
			Role:   defaultAuthorRole,
		},
		Date:     formatFrenchDate(p.CreatedAt),
		ReadTime: defaultReadTime,
		Tags:     []string{},
		Views:    p.Views,
	}

	if p.CategoryName != nil && *p.CategoryName != "" {
		ui.Category = *p.CategoryName
	}

	if p.AuthorName != nil && *p.AuthorName != "" {
		ui.Author.Name = *p.AuthorName
	}
	if p.AuthorAvatar != nil && *p.AuthorAvatar != "" {
		ui.Author.Avatar = *p.AuthorAvatar
	}
	if p.AuthorRole != nil && *p.AuthorRole != "" {
		ui.Author.Role = *p.AuthorRole
	}

	if p.Tags != nil {
		ui.Tags = p.Tags
	}

	return ui
}
