// Package httpapi exposes the letter service as a small JSON API.
package httpapi

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ymorimoto/mirai-letter/internal/compose"
	"github.com/ymorimoto/mirai-letter/internal/letter"
	"github.com/ymorimoto/mirai-letter/internal/letterpolish"
	"github.com/ymorimoto/mirai-letter/internal/observability"
	"github.com/ymorimoto/mirai-letter/internal/ratelimit"
)

type Server struct {
	composer *compose.Service
	limiter  *ratelimit.Limiter
	logger   *zap.Logger
}

// NewHandler wires the router, middleware, and routes.
func NewHandler(composer *compose.Service, limiter *ratelimit.Limiter, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{composer: composer, limiter: limiter, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(observability.RequestLogger(logger))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Use(s.rateLimit)
		r.Post("/letter", s.handleLetter)
	})
	return r
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, r *http.Request, apiErr *Error) {
	apiErr.RequestID = middleware.GetReqID(r.Context())
	if apiErr.RetryAfter > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(apiErr.RetryAfter))
	}
	writeJSON(w, apiErr.Status, map[string]any{"ok": false, "error": apiErr})
}

// rateLimit enforces the per-IP sliding window on the API routes.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok, retryAfter := s.limiter.Allow(clientIP(r))
		if !ok {
			apiErr := newError(CodeRateLimited, "too many requests")
			apiErr.Transient = true
			apiErr.RetryAfter = retryAfter
			writeError(w, r, apiErr)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleLetter(w http.ResponseWriter, r *http.Request) {
	var in letter.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, r, newError(CodeValidation, "invalid json: "+err.Error()))
		return
	}
	if err := in.Validate(); err != nil {
		writeError(w, r, newError(CodeValidation, err.Error()))
		return
	}

	res, err := s.composer.Compose(r.Context(), in)
	if err != nil {
		// The projection is always computable locally; return it alongside
		// the error so the client can show partial data.
		apiErr := composeError(err)
		apiErr.RequestID = middleware.GetReqID(r.Context())
		s.logger.Error("compose failed", zap.String("code", apiErr.Code), zap.Error(err))
		writeJSON(w, apiErr.Status, map[string]any{
			"ok":          false,
			"error":       apiErr,
			"projections": []letter.Projection{res.Projection},
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":          true,
		"projections": []letter.Projection{res.Projection},
		"content":     res.Content,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// composeError maps a compose failure to the wire error. Upstream polish
// failures never reach here; Compose recovers them with the template letter.
func composeError(err error) *Error {
	if errors.Is(err, letterpolish.ErrMissingAPIKey) {
		apiErr := newError(CodeMissingAPIKey, "text generation service credential is not configured")
		apiErr.Hint = letterpolish.HintForUpstream(401, "")
		return apiErr
	}
	apiErr := newError(CodeInternal, err.Error())
	apiErr.Transient = true
	return apiErr
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
