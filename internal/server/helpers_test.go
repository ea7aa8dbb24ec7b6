package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestPathParamNoSuffix(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/quote/ADM", nil)
	if got := PathParam(r, "/quote/", ""); got != "ADM" {
		t.Errorf("got %q, want ADM", got)
	}
}

func TestPathParamWithSuffix(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/chart/GIS/image", nil)
	if got := PathParam(r, "/chart/", "/image"); got != "GIS" {
		t.Errorf("got %q, want GIS", got)
	}
}

func TestPathParamMissingPrefix(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/other/ADM", nil)
	if got := PathParam(r, "/quote/", ""); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestCacheControlFormat(t *testing.T) {
	got := cacheControl(5*time.Minute, time.Minute)
	want := "s-maxage=300, stale-while-revalidate=60"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteJSONCachedSetsHeaderBeforeBody(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSONCached(rec, http.StatusOK, time.Hour, 5*time.Minute, map[string]string{"ok": "yes"})

	if rec.Header().Get("Cache-Control") != "s-maxage=3600, stale-while-revalidate=300" {
		t.Errorf("Cache-Control = %q", rec.Header().Get("Cache-Control"))
	}
	if rec.Header().Get("Content-Type") != "application/json" {
		t.Errorf("Content-Type = %q", rec.Header().Get("Content-Type"))
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, http.StatusBadRequest, "bad input")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
	if body := rec.Body.String(); body != "{\"error\":\"bad input\"}\n" {
		t.Errorf("body = %q", body)
	}
}
