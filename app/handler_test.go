package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheckHandler(t *testing.T) {
	app := &application{
		config: &Config{Environment: "test", Version: "1.0.0"},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	ts := newTestServer(t, app.routes())

	status, _, body := ts.get(t, "/v1/healthcheck")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "available", body["status"])

	systemInfo, ok := body["system_info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "test", systemInfo["environment"])
	assert.Equal(t, "1.0.0", systemInfo["version"])
}

func TestPostHandlers(t *testing.T) {
	app, _ := newTestApplication(t)

	ts := newTestServer(t, app.routes())

	// referenced rows
	status, _, body := ts.post(t, "/v1/categories", map[string]any{"name": "Design"})
	require.Equal(t, http.StatusCreated, status)
	categoryID := int(body["category"].(map[string]any)["id"].(float64))

	status, _, body = ts.post(t, "/v1/authors", map[string]any{"name": "Claire Fontaine", "role": "Directrice"})
	require.Equal(t, http.StatusCreated, status)
	authorID := int(body["author"].(map[string]any)["id"].(float64))

	status, _, body = ts.post(t, "/v1/posts", map[string]any{
		"title":       "Refonte du site",
		"slug":        "refonte-du-site",
		"excerpt":     "Un projet de refonte.",
		"content":     "Le contenu complet du billet.",
		"category_id": categoryID,
		"author_id":   authorID,
		"tags":        []string{"design", "web"},
	})
	require.Equal(t, http.StatusCreated, status)

	post := body["post"].(map[string]any)
	postID := int(post["id"].(float64))
	assert.Equal(t, "Refonte du site", post["title"])
	assert.Equal(t, []any{"design", "web"}, post["tags"])
	assert.Equal(t, float64(0), post["views"])

	t.Run("get by id", func(t *testing.T) {
		status, _, body := ts.get(t, fmt.Sprintf("/v1/posts/id/%d", postID))

		assert.Equal(t, http.StatusOK, status)
		post := body["post"].(map[string]any)
		assert.Equal(t, "refonte-du-site", post["slug"])
		assert.Equal(t, float64(categoryID), post["category_id"])
	})

	t.Run("invalid slug rejected", func(t *testing.T) {
		status, _, body := ts.post(t, "/v1/posts", map[string]any{
			"title":   "Another Title",
			"slug":    "Not A Slug",
			"content": "Some content here.",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.NotNil(t, body["error"])
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		status, _, _ := ts.post(t, "/v1/posts", map[string]any{
			"title":     "Another Title",
			"slug":      "another-title",
			"content":   "Some content here.",
			"publisher": "nobody",
		})

		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("missing category rejected", func(t *testing.T) {
		status, _, _ := ts.post(t, "/v1/posts", map[string]any{
			"title":       "Another Title",
			"slug":        "another-title",
			"content":     "Some content here.",
			"category_id": 9999,
		})

		assert.Equal(t, http.StatusUnprocessableEntity, status)
	})

	t.Run("missing post", func(t *testing.T) {
		status, _, _ := ts.get(t, "/v1/posts/id/9999")

		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("bad id parameter", func(t *testing.T) {
		status, _, _ := ts.get(t, "/v1/posts/id/abc")

		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestGetPostsHandler(t *testing.T) {
	app, _ := newTestApplication(t)

	ts := newTestServer(t, app.routes())

	for i := 1; i <= 3; i++ {
		status, _, _ := ts.post(t, "/v1/posts", map[string]any{
			"title":   fmt.Sprintf("Billet %d", i),
			"slug":    fmt.Sprintf("billet-%d", i),
			"content": "Le contenu complet du billet.",
		})
		require.Equal(t, http.StatusCreated, status)
	}

	status, _, body := ts.get(t, "/v1/posts?limit=2")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(3), body["total"])
	assert.Len(t, body["posts"], 2)

	// view-model defaults on the listing
	first := body["posts"].([]any)[0].(map[string]any)
	assert.Equal(t, "Uncategorized", first["category"])
	assert.Equal(t, "5 min", first["read_time"])

	status, _, body = ts.get(t, "/v1/posts?search=Billet+2")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["total"])
}

func TestGetPostBySlugHandler(t *testing.T) {
	app, _ := newTestApplication(t)

	ts := newTestServer(t, app.routes())

	status, _, body := ts.post(t, "/v1/posts", map[string]any{
		"title":   "Identité visuelle",
		"slug":    "identite-visuelle",
		"content": "Le contenu complet du billet.",
	})
	require.Equal(t, http.StatusCreated, status)
	postID := int(body["post"].(map[string]any)["id"].(float64))

	status, _, body = ts.get(t, "/v1/posts/slug/identite-visuelle")

	assert.Equal(t, http.StatusOK, status)
	post := body["post"].(map[string]any)
	assert.Equal(t, "Identité visuelle", post["title"])
	assert.Equal(t, "Unknown", post["author"].(map[string]any)["name"])
	assert.Equal(t, "/images/avatar-placeholder.png", post["author"].(map[string]any)["avatar"])

	// a second public read
	status, _, _ = ts.get(t, "/v1/posts/slug/identite-visuelle")
	assert.Equal(t, http.StatusOK, status)

	// both reads were counted
	status, _, body = ts.get(t, fmt.Sprintf("/v1/posts/id/%d", postID))
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(2), body["post"].(map[string]any)["views"])

	t.Run("missing slug", func(t *testing.T) {
		status, _, _ := ts.get(t, "/v1/posts/slug/does-not-exist")

		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestUpdateAndDeletePostHandlers(t *testing.T) {
	app, _ := newTestApplication(t)

	ts := newTestServer(t, app.routes())

	status, _, body := ts.post(t, "/v1/posts", map[string]any{
		"title":   "Premier billet",
		"slug":    "premier-billet",
		"content": "Le contenu complet du billet.",
	})
	require.Equal(t, http.StatusCreated, status)
	postID := int(body["post"].(map[string]any)["id"].(float64))

	status, _, _ = ts.post(t, "/v1/posts", map[string]any{
		"title":   "Second billet",
		"slug":    "second-billet",
		"content": "Le contenu complet du billet.",
	})
	require.Equal(t, http.StatusCreated, status)

	t.Run("partial update", func(t *testing.T) {
		status, _, body := ts.put(t, fmt.Sprintf("/v1/posts/id/%d", postID), map[string]any{
			"title": "Premier billet, revu",
		})

		assert.Equal(t, http.StatusOK, status)
		post := body["post"].(map[string]any)
		assert.Equal(t, "Premier billet, revu", post["title"])
		assert.Equal(t, "premier-billet", post["slug"])
	})

	t.Run("duplicate slug rejected", func(t *testing.T) {
		status, _, _ := ts.put(t, fmt.Sprintf("/v1/posts/id/%d", postID), map[string]any{
			"slug": "second-billet",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, status)
	})

	t.Run("delete", func(t *testing.T) {
		status, _, body := ts.delete(t, fmt.Sprintf("/v1/posts/id/%d", postID))

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "post deleted", body["message"])

		status, _, _ = ts.delete(t, fmt.Sprintf("/v1/posts/id/%d", postID))
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestCategoryHandlers(t *testing.T) {
	app, _ := newTestApplication(t)

	ts := newTestServer(t, app.routes())

	status, _, body := ts.post(t, "/v1/categories", map[string]any{"name": "Branding"})
	require.Equal(t, http.StatusCreated, status)
	categoryID := int(body["category"].(map[string]any)["id"].(float64))

	t.Run("duplicate name rejected", func(t *testing.T) {
		status, _, _ := ts.post(t, "/v1/categories", map[string]any{"name": "Branding"})

		assert.Equal(t, http.StatusUnprocessableEntity, status)
	})

	t.Run("list with counts", func(t *testing.T) {
		s, _, _ := ts.post(t, "/v1/posts", map[string]any{
			"title":       "Billet de marque",
			"slug":        "billet-de-marque",
			"content":     "Le contenu complet du billet.",
			"category_id": categoryID,
		})
		require.Equal(t, http.StatusCreated, s)

		status, _, body := ts.get(t, "/v1/categories")

		assert.Equal(t, http.StatusOK, status)
		categories := body["categories"].([]any)
		require.Len(t, categories, 1)
		assert.Equal(t, "Branding", categories[0].(map[string]any)["name"])
		assert.Equal(t, float64(1), categories[0].(map[string]any)["count"])
	})

	t.Run("rename", func(t *testing.T) {
		status, _, body := ts.put(t, fmt.Sprintf("/v1/categories/%d", categoryID), map[string]any{"name": "Identité"})

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Identité", body["category"].(map[string]any)["name"])
	})

	t.Run("delete", func(t *testing.T) {
		status, _, _ := ts.delete(t, fmt.Sprintf("/v1/categories/%d", categoryID))
		assert.Equal(t, http.StatusOK, status)

		status, _, _ = ts.get(t, fmt.Sprintf("/v1/categories/%d", categoryID))
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestAuthorHandlers(t *testing.T) {
	app, _ := newTestApplication(t)

	ts := newTestServer(t, app.routes())

	status, _, body := ts.post(t, "/v1/authors", map[string]any{"name": "Marc Dubois"})
	require.Equal(t, http.StatusCreated, status)

	author := body["author"].(map[string]any)
	authorID := int(author["id"].(float64))
	assert.Equal(t, "Author", author["role"])

	t.Run("get", func(t *testing.T) {
		status, _, body := ts.get(t, fmt.Sprintf("/v1/authors/%d", authorID))

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Marc Dubois", body["author"].(map[string]any)["name"])
	})

	t.Run("update", func(t *testing.T) {
		status, _, body := ts.put(t, fmt.Sprintf("/v1/authors/%d", authorID), map[string]any{"role": "Rédacteur"})

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Rédacteur", body["author"].(map[string]any)["role"])
	})

	t.Run("list", func(t *testing.T) {
		status, _, body := ts.get(t, "/v1/authors?page=1&limit=10")

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, float64(1), body["total"])
		assert.Len(t, body["authors"], 1)
	})

	t.Run("missing name rejected", func(t *testing.T) {
		status, _, _ := ts.post(t, "/v1/authors", map[string]any{"name": ""})

		assert.Equal(t, http.StatusUnprocessableEntity, status)
	})

	t.Run("delete", func(t *testing.T) {
		status, _, _ := ts.delete(t, fmt.Sprintf("/v1/authors/%d", authorID))
		assert.Equal(t, http.StatusOK, status)

		status, _, _ = ts.get(t, fmt.Sprintf("/v1/authors/%d", authorID))
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestGetBlogStatsHandler(t *testing.T) {
	app, _ := newTestApplication(t)

	ts := newTestServer(t, app.routes())

	for i := 1; i <= 2; i++ {
		status, _, _ := ts.post(t, "/v1/posts", map[string]any{
			"title":   fmt.Sprintf("Billet %d", i),
			"slug":    fmt.Sprintf("billet-%d", i),
			"content": "Le contenu complet du billet.",
		})
		require.Equal(t, http.StatusCreated, status)
	}

	status, _, body := ts.get(t, "/v1/stats")

	assert.Equal(t, http.StatusOK, status)
	stats := body["stats"].(map[string]any)
	assert.Equal(t, float64(2), stats["total_posts"])
	assert.Equal(t, float64(0), stats["total_authors"])
	assert.Equal(t, float64(0), stats["total_views"])
	assert.Len(t, stats["recent_posts"], 2)
}

func TestCreateEnquiryHandler(t *testing.T) {
	app := newTestBrokerApplication(t)

	ts := newTestServer(t, app.routes())

	t.Run("valid enquiry", func(t *testing.T) {
		status, _, body := ts.post(t, "/v1/enquiries", map[string]any{
			"name":    "Claire Fontaine",
			"email":   "claire@example.com",
			"subject": "Projet",
			"message": "Nous avons besoin d'un nouveau site.",
		})

		assert.Equal(t, http.StatusAccepted, status)
		assert.Equal(t, "enquiry received", body["message"])
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		status, _, _ := ts.post(t, "/v1/enquiries", map[string]any{
			"name":    "Claire Fontaine",
			"email":   "not-an-email",
			"message": "Bonjour.",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, status)
	})
}
