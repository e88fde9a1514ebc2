package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/portfolio/backend/internal/forms"
	"github.com/portfolio/backend/internal/render"
	"github.com/portfolio/backend/internal/service"
)

// PageHandler serves the portfolio pages.
type PageHandler struct {
	portfolioService service.PortfolioService
	renderer         render.Renderer
}

func NewPageHandler(portfolioService service.PortfolioService, renderer render.Renderer) *PageHandler {
	return &PageHandler{portfolioService: portfolioService, renderer: renderer}
}

// homeContext builds the landing page template context with an empty
// form state. Callers overwrite the form entries as needed.
func homeContext(data *service.HomeData) render.Context {
	return render.Context{
		"skills":       data.Skills,
		"projects":     data.Projects,
		"achievements": data.Achievements,
		"experiences":  data.Experiences,
		"recent_posts": data.RecentPosts,
		"form":         url.Values{},
		"form_errors":  forms.FieldErrors{},
		"form_attrs":   forms.ContactFieldAttrs,
	}
}

// Home handles GET /.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	data, err := h.portfolioService.Home(r.Context())
	if err != nil {
		slog.Error("load home content failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	ctx := homeContext(data)
	if f := popFlash(w, r); f != nil {
		ctx["flash"] = f
	}
	h.render(w, "index.html", ctx)
}

// Skills handles GET /skills.
func (h *PageHandler) Skills(w http.ResponseWriter, r *http.Request) {
	groups, err := h.portfolioService.SkillsByCategory(r.Context())
	if err != nil {
		slog.Error("load skills failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	h.render(w, "skills.html", render.Context{"skill_groups": groups})
}

// Projects handles GET /projects.
func (h *PageHandler) Projects(w http.ResponseWriter, r *http.Request) {
	data, err := h.portfolioService.Projects(r.Context())
	if err != nil {
		slog.Error("load projects failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	h.render(w, "projects.html", render.Context{
		"projects":    data.Projects,
		"completed":   data.Completed,
		"in_progress": data.InProgress,
	})
}

// About handles GET /about.
func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	data, err := h.portfolioService.About(r.Context())
	if err != nil {
		slog.Error("load about content failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	h.render(w, "about.html", render.Context{
		"achievements": data.Achievements,
		"experiences":  data.Experiences,
	})
}

func (h *PageHandler) render(w http.ResponseWriter, name string, ctx render.Context) {
	if err := h.renderer.Render(w, http.StatusOK, name, ctx); err != nil {
		slog.Error("render failed", "template", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
