package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/portfolio/backend/internal/render"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
)

// BlogHandler serves the blog pages.
type BlogHandler struct {
	blogService service.BlogService
	renderer    render.Renderer
}

func NewBlogHandler(blogService service.BlogService, renderer render.Renderer) *BlogHandler {
	return &BlogHandler{blogService: blogService, renderer: renderer}
}

// List handles GET /blog.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blogService.List(r.Context())
	if err != nil {
		slog.Error("list posts failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if err := h.renderer.Render(w, http.StatusOK, "blog_list.html", render.Context{"posts": posts}); err != nil {
		slog.Error("render failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// Detail handles GET /blog/{id}.
func (h *BlogHandler) Detail(w http.ResponseWriter, r *http.Request) {
	post, err := h.blogService.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("load post failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if err := h.renderer.Render(w, http.StatusOK, "blog_detail.html", render.Context{"post": post}); err != nil {
		slog.Error("render failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
