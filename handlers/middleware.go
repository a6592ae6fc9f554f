package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"demobank/advisor"
	"demobank/bank"
)

// Response is the standard JSON envelope for all API responses.
type Response struct {
	Data  any    `json:"data"`
	Error string `json:"error,omitempty"`
}

// Sessions is the shared session manager used by all handlers.
var Sessions *bank.Manager

// Advice is the shared financial-assistant client.
var Advice *advisor.Client

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Data: data})
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Error: msg})
}

// writeEngineError maps an engine error to the right HTTP status. Input
// problems are 400, money-movement rejections are 422, missing resources
// 404, and a dead token 401.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bank.ErrInvalidAmount),
		errors.Is(err, bank.ErrMissingField),
		errors.Is(err, bank.ErrLimitConfig):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, bank.ErrInsufficientFunds),
		errors.Is(err, bank.ErrPerTransactionLimit),
		errors.Is(err, bank.ErrDailyLimit):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, bank.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, bank.ErrSessionNotFound):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusRequestTimeout, "transfer cancelled before completion")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

type contextKey string

const sessionKey contextKey = "session"

// RequireSession is middleware that resolves the bearer token to a live
// session and stores it on the request context.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		s, err := Sessions.Session(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "session not found")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, s)))
	})
}

// session returns the session RequireSession attached to the request.
func session(r *http.Request) *bank.Session {
	return r.Context().Value(sessionKey).(*bank.Session)
}
