package api

import (
	"net/http"
	"strings"
	"time"

	"igreja-digital/secretaria/internal/common"
	"igreja-digital/secretaria/internal/constants"
	"igreja-digital/secretaria/internal/models/dtos"
)

// Login handles POST /api/auth/login
func (h *Handlers) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.LoginRequest
		if !decodeBody(w, r, initTime, &req) {
			return
		}

		if req.Username == "" || req.Password == "" {
			common.RespondError(w, initTime, nil, constants.MsgValidationFailed, http.StatusBadRequest)
			return
		}

		resp, err := h.deps.Services.Auth.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Login realizado", resp)
	}
}

// Logout handles POST /api/auth/logout. Destroying an unknown session is
// not an error.
func (h *Handlers) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.LogoutRequest
		// body is optional; fall back to the bearer token
		_ = decodeLenient(r, &req)

		sessionID := req.SessionID
		if sessionID == "" {
			authHeader := r.Header.Get("Authorization")
			sessionID = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if sessionID != "" {
			if err := h.deps.Services.Auth.Logout(r.Context(), sessionID); err != nil {
				respondServiceError(w, initTime, err)
				return
			}
		}

		common.RespondSuccess(w, initTime, "Sessão encerrada", nil)
	}
}

// SessionCheck handles GET /api/auth/session
func (h *Handlers) SessionCheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		session := sessionFrom(r)
		if session == nil {
			common.RespondError(w, initTime, nil, constants.MsgUnauthenticated, http.StatusUnauthorized)
			return
		}

		common.RespondSuccess(w, initTime, "Sessão ativa", dtos.SessionUser{
			ID:        session.UserID,
			Username:  session.Username,
			Role:      session.Role.String(),
			MemberID:  session.MemberID,
			VisitorID: session.VisitorID,
		})
	}
}

// CsrfToken handles GET /api/csrf-token. Must be called after login and
// before the first mutating request.
func (h *Handlers) CsrfToken() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		session := sessionFrom(r)
		if session == nil {
			common.RespondError(w, initTime, nil, constants.MsgUnauthenticated, http.StatusUnauthorized)
			return
		}

		token, err := h.deps.Services.Auth.IssueCsrfToken(r.Context(), session)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Token emitido", dtos.CsrfTokenResponse{Token: token})
	}
}
