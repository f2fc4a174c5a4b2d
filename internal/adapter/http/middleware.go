package adapthttp

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"canteen/internal/app"

	"github.com/google/uuid"
)

type contextKey string

const (
	claimsContextKey    contextKey = "claims"
	requestIDContextKey contextKey = "requestID"
)

// requestIDHeader carries the per-request correlation id.
const requestIDHeader = "X-Request-ID"

var errMissingToken = errors.New("authentication required")

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// loggingMiddleware tags each request with an id and logs its outcome.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := r.Header.Get(requestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		ctx := context.WithValue(r.Context(), requestIDContextKey, id)
		next.ServeHTTP(rec, r.WithContext(ctx))

		log.Printf("%s %s %d %s %s", r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Microsecond), id)
	})
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}

// requireUser validates the bearer token and stores its claims in the
// request context.
func (s *Server) requireUser(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := s.authenticate(r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, err)
			return
		}
		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next(w, r.WithContext(ctx))
	})
}

// requireAdmin is requireUser plus an administrator check, done before the
// wrapped handler reads the body.
func (s *Server) requireAdmin(next http.HandlerFunc) http.Handler {
	return s.requireUser(func(w http.ResponseWriter, r *http.Request) {
		if !currentClaims(r).IsAdmin {
			writeError(w, http.StatusForbidden, errors.New("admin access required"))
			return
		}
		next(w, r)
	})
}

func (s *Server) authenticate(r *http.Request) (*app.Claims, error) {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return nil, errMissingToken
	}
	return s.auth.Verify(strings.TrimSpace(token))
}

func currentClaims(r *http.Request) *app.Claims {
	claims, _ := r.Context().Value(claimsContextKey).(*app.Claims)
	return claims
}

func currentUserID(r *http.Request) int64 {
	if c := currentClaims(r); c != nil {
		return c.UserID
	}
	return 0
}
