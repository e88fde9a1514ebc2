package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

func TestBlogHandler_List(t *testing.T) {
	svc := &mockBlogService{
		listFunc: func(ctx context.Context) ([]*model.BlogPost, error) {
			return []*model.BlogPost{{ID: "1", Title: "First"}}, nil
		},
	}
	renderer := &mockRenderer{}
	h := NewBlogHandler(svc, renderer)

	req := httptest.NewRequest(http.MethodGet, "/blog", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if renderer.name != "blog_list.html" {
		t.Errorf("expected blog_list.html, got %q", renderer.name)
	}
}

func TestBlogHandler_Detail(t *testing.T) {
	svc := &mockBlogService{
		getFunc: func(ctx context.Context, id string) (*model.BlogPost, error) {
			return &model.BlogPost{ID: id, Title: "First"}, nil
		},
	}
	renderer := &mockRenderer{}
	h := NewBlogHandler(svc, renderer)

	req := httptest.NewRequest(http.MethodGet, "/blog/p1", nil)
	req.SetPathValue("id", "p1")
	rec := httptest.NewRecorder()
	h.Detail(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	post, ok := renderer.data["post"].(*model.BlogPost)
	if !ok || post.ID != "p1" {
		t.Errorf("expected post p1 in context, got %v", renderer.data["post"])
	}
}

func TestBlogHandler_Detail_NotFound(t *testing.T) {
	svc := &mockBlogService{
		getFunc: func(ctx context.Context, id string) (*model.BlogPost, error) {
			return nil, repository.ErrNotFound
		},
	}
	h := NewBlogHandler(svc, &mockRenderer{})

	req := httptest.NewRequest(http.MethodGet, "/blog/nope", nil)
	req.SetPathValue("id", "nope")
	rec := httptest.NewRecorder()
	h.Detail(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
