package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MiniPekkaaa/MiniApp/internal/auth"
)

type checkerMock struct {
	profile *auth.Profile
	err     error
}

func (m checkerMock) Profile(context.Context, string) (*auth.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.profile, nil
}

func authProbe() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_Registered(t *testing.T) {
	var seen *auth.Profile
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = profileFromContext(r.Context())
	})

	checker := checkerMock{profile: &auth.Profile{ChatID: "7944903241", OrganizationID: "org-1"}}
	handler := AuthMiddleware(checker, "https://t.me/beer_bot?start=register")(next)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/api/v1/cart", nil)
	request.Header.Set(ChatIDHeader, "7944903241")

	handler.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("expected %d, got %d", http.StatusOK, recorder.Code)
	}
	if seen == nil || seen.ChatID != "7944903241" {
		t.Errorf("profile not propagated: %+v", seen)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	next := authProbe()
	handler := AuthMiddleware(checkerMock{}, "")(next)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/v1/cart", nil))

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("expected %d, got %d", http.StatusUnauthorized, recorder.Code)
	}
}

func TestAuthMiddleware_NotRegistered(t *testing.T) {
	next := authProbe()
	handler := AuthMiddleware(checkerMock{err: auth.ErrNotRegistered}, "https://t.me/beer_bot?start=register")(next)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/api/v1/cart", nil)
	request.Header.Set(ChatIDHeader, "777")

	handler.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("expected %d, got %d", http.StatusUnauthorized, recorder.Code)
	}
}

func TestAuthMiddleware_StoreDown(t *testing.T) {
	next := authProbe()
	handler := AuthMiddleware(checkerMock{err: errors.New("redis: connection refused")}, "")(next)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/api/v1/cart", nil)
	request.Header.Set(ChatIDHeader, "777")

	handler.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusServiceUnavailable {
		t.Errorf("expected %d, got %d", http.StatusServiceUnavailable, recorder.Code)
	}
}
