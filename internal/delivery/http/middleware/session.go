package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

// sessionKey carries the session id through the request context
const sessionKey contextKey = "session_id"

// SessionCookie is the cookie carrying the shopper's session id
const SessionCookie = "storefront_session"

// SessionHeader lets API clients pass the session id without cookies
const SessionHeader = "X-Session-ID"

// Session ensures every request carries a session id. The header wins over
// the cookie; when neither is present a fresh id is minted and set as a
// cookie so browser clients keep their cart across requests.
func Session() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(SessionHeader)

			if sessionID == "" {
				if cookie, err := r.Cookie(SessionCookie); err == nil {
					sessionID = cookie.Value
				}
			}

			if sessionID == "" {
				sessionID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    sessionID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), sessionKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionID extracts the session id from a request context. It is empty
// only for requests that bypassed the Session middleware.
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey).(string)
	return id
}
