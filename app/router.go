package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundErrorResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", app.healthCheckHandler)

	// posts
	router.HandlerFunc(http.MethodGet, "/v1/posts", app.getPostsHandler)
	router.HandlerFunc(http.MethodPost, "/v1/posts", app.createPostHandler)
	router.HandlerFunc(http.MethodGet, "/v1/posts/id/:id", app.getPostHandler)
	router.HandlerFunc(http.MethodPut, "/v1/posts/id/:id", app.updatePostHandler)
	router.HandlerFunc(http.MethodDelete, "/v1/posts/id/:id", app.deletePostHandler)
	router.HandlerFunc(http.MethodGet, "/v1/posts/slug/:slug", app.getPostBySlugHandler)

	// categories
	router.HandlerFunc(http.MethodGet, "/v1/categories", app.getCategoriesHandler)
	router.HandlerFunc(http.MethodPost, "/v1/categories", app.createCategoryHandler)
	router.HandlerFunc(http.MethodGet, "/v1/categories/:id", app.getCategoryHandler)
	router.HandlerFunc(http.MethodPut, "/v1/categories/:id", app.updateCategoryHandler)
	router.HandlerFunc(http.MethodDelete, "/v1/categories/:id", app.deleteCategoryHandler)

	// authors
	router.HandlerFunc(http.MethodGet, "/v1/authors", app.getAuthorsHandler)
	router.HandlerFunc(http.MethodPost, "/v1/authors", app.createAuthorHandler)
	router.HandlerFunc(http.MethodGet, "/v1/authors/:id", app.getAuthorHandler)
	router.HandlerFunc(http.MethodPut, "/v1/authors/:id", app.updateAuthorHandler)
	router.HandlerFunc(http.MethodDelete, "/v1/authors/:id", app.deleteAuthorHandler)

	// stats and enquiries
	router.HandlerFunc(http.MethodGet, "/v1/stats", app.getBlogStatsHandler)
	router.HandlerFunc(http.MethodPost, "/v1/enquiries", app.createEnquiryHandler)

	return app.recoverPanic(app.rateLimit(app.enableCORS(app.logRequest(router))))
}
