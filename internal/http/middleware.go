package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MiniPekkaaa/MiniApp/internal/auth"
)

// ChatIDHeader carries the Telegram chat id the Mini App got from its init
// data. Validating the init data signature happens at the edge, before this
// service.
const ChatIDHeader = "X-Telegram-Chat-Id"

type ctxKey string

const profileKey ctxKey = "profile"

// AuthMiddleware resolves the chat id header against the registration store
// and puts the user profile into the request context. Unregistered users are
// sent to the external bot registration flow.
func AuthMiddleware(checker auth.Checker, registerURL string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			chatID := r.Header.Get(ChatIDHeader)
			if chatID == "" {
				respondError(w, http.StatusUnauthorized, "unauthorized", "missing chat id")
				return
			}

			profile, err := checker.Profile(r.Context(), chatID)
			if err != nil {
				if !errors.Is(err, auth.ErrNotRegistered) {
					respondError(w, http.StatusServiceUnavailable, "service_unavailable", "registration check failed")
					return
				}
				respondJSON(w, http.StatusUnauthorized, ErrorResponse{
					Error:   "user is not registered",
					Code:    "not_registered",
					Details: registerURL,
				})
				return
			}

			ctx := context.WithValue(r.Context(), profileKey, profile)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func profileFromContext(ctx context.Context) *auth.Profile {
	if p, ok := ctx.Value(profileKey).(*auth.Profile); ok {
		return p
	}
	return nil
}
