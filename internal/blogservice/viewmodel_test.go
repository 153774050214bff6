package blogservice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestToUIPost(t *testing.T) {
	createdAt := time.Date(2025, time.March, 2, 10, 30, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		post     Post
		expected UIPost
	}{
		{
			name: "fully joined post",
			post: Post{
				ID:            1,
				Title:         "SEO Strategies 2025",
				Slug:          "seo-strategies-2025",
				Excerpt:       "How to rank.",
				FeaturedImage: "/images/seo.jpg",
				Tags:          []string{"seo", "2025"},
				CreatedAt:     createdAt,
				Views:         42,
				CategoryName:  strPtr("Marketing"),
				AuthorName:    strPtr("Claire Fontaine"),
				AuthorAvatar:  strPtr("/images/claire.jpg"),
				AuthorRole:    strPtr("Head of Content"),
			},
			expected: UIPost{
				ID:       1,
				Title:    "SEO Strategies 2025",
				Slug:     "seo-strategies-2025",
				Excerpt:  "How to rank.",
				Image:    "/images/seo.jpg",
				Category: "Marketing",
				Author: UIAuthor{
					Name:   "Claire Fontaine",
					Avatar: "/images/claire.jpg",
					Role:   "Head of Content",
				},
				Date:     "2 mars 2025",
				ReadTime: "5 min",
				Tags:     []string{"seo", "2025"},
				Views:    42,
			},
		},
		{
			name: "missing category and author",
			post: Post{
				ID:        2,
				Title:     "Orphaned Post",
				Slug:      "orphaned-post",
				CreatedAt: createdAt,
			},
			expected: UIPost{
				ID:       2,
				Title:    "Orphaned Post",
				Slug:     "orphaned-post",
				Category: "Uncategorized",
				Author: UIAuthor{
					Name:   "Unknown",
					Avatar: "/images/avatar-placeholder.png",
					Role:   "Author",
				},
				Date:     "2 mars 2025",
				ReadTime: "5 min",
				Tags:     []string{},
			},
		},
		{
			name: "empty joined strings fall back to defaults",
			post: Post{
				ID:           3,
				Title:        "Half Joined",
				Slug:         "half-joined",
				CreatedAt:    createdAt,
				CategoryName: strPtr(""),
				AuthorName:   strPtr("Marc"),
				AuthorAvatar: strPtr(""),
				AuthorRole:   strPtr(""),
			},
			expected: UIPost{
				ID:       3,
				Title:    "Half Joined",
				Slug:     "half-joined",
				Category: "Uncategorized",
				Author: UIAuthor{
					Name:   "Marc",
					Avatar: "/images/avatar-placeholder.png",
					Role:   "Author",
				},
				Date:     "2 mars 2025",
				ReadTime: "5 min",
				Tags:     []string{},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, toUIPost(&tc.post))
		})
	}
}

func TestFormatFrenchDate(t *testing.T) {
	testCases := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			name:     "january",
			date:     time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			expected: "1 janvier 2026",
		},
		{
			name:     "august with accent",
			date:     time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC),
			expected: "15 août 2025",
		},
		{
			name:     "december",
			date:     time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
			expected: "31 décembre 2024",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, formatFrenchDate(tc.date))
		})
	}
}
