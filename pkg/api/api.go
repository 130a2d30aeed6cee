// Package api exposes the order board over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	otelglobal "go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"orderboard/pkg/board"
	"orderboard/pkg/logger"
	"orderboard/pkg/order"
	"orderboard/pkg/otel"
)

// SessionCookie names the cookie carrying the session id.
const SessionCookie = "session_id"

type ctxKey int

const sessionKey ctxKey = 1

// Config tunes the HTTP layer.
type Config struct {
	SessionTTL   time.Duration
	SecureCookie bool
}

type handlers struct {
	cfg    Config
	svc    *board.Service
	log    *logger.Logger
	tracer trace.Tracer
}

// NewRouter builds the HTTP routes for the board.
func NewRouter(cfg Config, svc *board.Service, log *logger.Logger, tracer trace.Tracer) *mux.Router {
	h := &handlers{cfg: cfg, svc: svc, log: log, tracer: tracer}

	r := mux.NewRouter()
	r.Use(h.traceMiddleware)
	r.HandleFunc("/sessions", h.openSession).Methods(http.MethodPost)
	r.HandleFunc("/sessions", h.closeSession).Methods(http.MethodDelete)

	api := r.PathPrefix("/ledger").Subrouter()
	api.Use(h.sessionMiddleware)
	api.HandleFunc("", h.getLedger).Methods(http.MethodGet)
	api.HandleFunc("/orders", h.submitOrder).Methods(http.MethodPost)
	api.HandleFunc("/items/{id}/increase", h.increaseQuantity).Methods(http.MethodPost)
	api.HandleFunc("/items/{id}/decrease", h.decreaseQuantity).Methods(http.MethodPost)
	api.HandleFunc("/items/{id}", h.removeItem).Methods(http.MethodDelete)
	api.HandleFunc("/totals", h.removeAllByName).Methods(http.MethodDelete)
	api.HandleFunc("/suggestions/customers", h.suggestCustomers).Methods(http.MethodGet)
	api.HandleFunc("/suggestions/items", h.suggestItems).Methods(http.MethodGet)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	return r
}

// traceMiddleware continues any incoming trace and makes the tracer
// available to otel.AddSpan.
func (h *handlers) traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otelglobal.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		ctx = otel.InjectTracing(ctx, h.tracer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionMiddleware requires a session cookie and pushes its expiry forward
// in step with the store's sliding TTL.
func (h *handlers) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(SessionCookie)
		if err != nil || c.Value == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		h.setSessionCookie(w, c.Value)
		ctx := context.WithValue(r.Context(), sessionKey, c.Value)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// setSessionCookie issues the session cookie. Without a TTL it lives as long
// as the browser session.
func (h *handlers) setSessionCookie(w http.ResponseWriter, id string) {
	c := &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cfg.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	}
	if h.cfg.SessionTTL > 0 {
		c.Expires = time.Now().Add(h.cfg.SessionTTL)
	}
	http.SetCookie(w, c)
}

func sessionFrom(ctx context.Context) string {
	s, _ := ctx.Value(sessionKey).(string)
	return s
}

// respond writes v as JSON, or maps err to a status code.
func (h *handlers) respond(ctx context.Context, w http.ResponseWriter, op string, status int, v any, err error) {
	if err != nil {
		if errors.Is(err, order.ErrSessionNotFound) {
			w.Header().Del("Set-Cookie")
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		h.log.Error(ctx, op, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Warn(ctx, "encode response", "op", op, "error", err)
	}
}
