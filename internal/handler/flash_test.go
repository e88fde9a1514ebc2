package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFlash_RoundTrip(t *testing.T) {
	setRec := httptest.NewRecorder()
	setFlash(setRec, flashWarning, "saved, but notification failed")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range setRec.Result().Cookies() {
		req.AddCookie(c)
	}

	f := popFlash(httptest.NewRecorder(), req)
	if f == nil {
		t.Fatal("expected a flash message")
	}
	if f.Level != flashWarning {
		t.Errorf("expected level %q, got %q", flashWarning, f.Level)
	}
	if f.Text != "saved, but notification failed" {
		t.Errorf("unexpected text %q", f.Text)
	}
}

func TestPopFlash_NoCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if f := popFlash(httptest.NewRecorder(), req); f != nil {
		t.Errorf("expected nil without a cookie, got %+v", f)
	}
}

func TestPopFlash_GarbageCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: flashCookieName, Value: "not base64!"})
	if f := popFlash(httptest.NewRecorder(), req); f != nil {
		t.Errorf("expected nil for an undecodable cookie, got %+v", f)
	}
}
