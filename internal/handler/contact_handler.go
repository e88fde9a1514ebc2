package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/portfolio/backend/internal/forms"
	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/render"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
)

// User-visible outcome messages. Exactly one is shown per submission.
const (
	flashTextSuccess = "Thank you for your message! I will get back to you as soon as possible."
	flashTextWarning = "Your message was saved, but the notification email could not be sent. I may not have been alerted yet."
)

// ContactHandler handles contact form submission and the admin message
// endpoints.
type ContactHandler struct {
	contactService   service.ContactService
	portfolioService service.PortfolioService
	renderer         render.Renderer
}

// NewContactHandler creates a ContactHandler with the given services.
// The portfolio service supplies the landing page content needed to
// re-render the form on validation failure.
func NewContactHandler(contactService service.ContactService, portfolioService service.PortfolioService, renderer render.Renderer) *ContactHandler {
	return &ContactHandler{
		contactService:   contactService,
		portfolioService: portfolioService,
		renderer:         renderer,
	}
}

// Submit handles POST /contact (form-encoded).
// Validation failure re-renders the landing page with the entered values
// and per-field errors; success redirects to /#contact with a flash
// message so a refresh cannot resubmit.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	msg, fieldErrs := forms.ValidateContact(r.PostForm)
	if len(fieldErrs) > 0 {
		data, err := h.portfolioService.Home(r.Context())
		if err != nil {
			slog.Error("load home content failed", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		ctx := homeContext(data)
		ctx["form"] = r.PostForm
		ctx["form_errors"] = fieldErrs
		if err := h.renderer.Render(w, http.StatusOK, "index.html", ctx); err != nil {
			slog.Error("render failed", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	// The forwarded-for chain is unauthenticated; only store values that
	// actually parse as an address.
	if ip := ClientIP(r); net.ParseIP(ip) != nil {
		msg.IPAddress = ip
	}
	msg.UserAgent = r.UserAgent()

	res, err := h.contactService.Submit(r.Context(), msg)
	if err != nil {
		// Storage failure is fatal for this request; there is no
		// degraded outcome for it.
		slog.Error("contact submit failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if res.OperatorNotified {
		setFlash(w, flashSuccess, flashTextSuccess)
	} else {
		setFlash(w, flashWarning, flashTextWarning)
	}
	http.Redirect(w, r, "/#contact", http.StatusSeeOther)
}

// adminListResponse is the JSON response for GET /api/admin/messages.
type adminListResponse struct {
	Messages []*model.ContactMessage `json:"messages"`
}

// AdminList handles GET /api/admin/messages.
// Supports query params: status (all/read/unread/replied/unreplied),
// limit, offset.
func (h *ContactHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	opts := model.ContactListOptions{Limit: 20}

	switch r.URL.Query().Get("status") {
	case "", "all":
	case "read":
		opts.Read = boolPtr(true)
	case "unread":
		opts.Read = boolPtr(false)
	case "replied":
		opts.Replied = boolPtr(true)
	case "unreplied":
		opts.Replied = boolPtr(false)
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_status"})
		return
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			opts.Limit = n
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			opts.Offset = n
		}
	}

	messages, err := h.contactService.List(r.Context(), opts)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}

	// Return [] not null for empty lists
	if messages == nil {
		messages = []*model.ContactMessage{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(adminListResponse{Messages: messages})
}

// MarkRead handles PATCH /api/admin/messages/{id}/read.
func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	h.markFlag(w, r, h.contactService.MarkRead)
}

// MarkReplied handles PATCH /api/admin/messages/{id}/replied.
func (h *ContactHandler) MarkReplied(w http.ResponseWriter, r *http.Request) {
	h.markFlag(w, r, h.contactService.MarkReplied)
}

func (h *ContactHandler) markFlag(w http.ResponseWriter, r *http.Request, mark func(ctx context.Context, id string) error) {
	id := r.PathValue("id")

	if err := mark(r.Context(), id); err != nil {
		w.Header().Set("Content-Type", "application/json")
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "update_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"ok": "true"})
}

func boolPtr(b bool) *bool { return &b }
