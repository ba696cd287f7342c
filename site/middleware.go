package site

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"inkwell/constants"
	"inkwell/database"
)

type contextKey string

const currentUserKey = contextKey("current_user")

func currentUser(r *http.Request) *database.User {
	user, _ := r.Context().Value(currentUserKey).(*database.User)
	return user
}

// withCurrentUser resolves the session cookie to a user row and stores it in
// the request context. Requests with no (or a stale) session pass through
// anonymously.
func (s *Site) withCurrentUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := s.sessions.userID(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		user, err := s.store.UserByID(userID)
		if err != nil || user == nil {
			s.sessions.clear(w)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), currentUserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminOnly rejects any request whose session does not belong to the blog
// owner before the handler body runs.
func (s *Site) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(r)
		if user == nil || user.ID != constants.ADMIN_USER_ID {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusResponseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(srw, r)

		event := log.Info()
		if srw.status >= 500 {
			event = log.Error()
		}
		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", srw.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
