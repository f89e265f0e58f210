package api

import (
	"net/http"
	"time"

	"igreja-digital/secretaria/internal/common"
	"igreja-digital/secretaria/internal/constants"
	"igreja-digital/secretaria/internal/models/dtos"

	"github.com/go-chi/chi/v5"
)

// GrantLgpdConsent handles POST /api/lgpd/consents
func (h *Handlers) GrantLgpdConsent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.LgpdConsentRequest
		if !decodeBody(w, r, initTime, &req) {
			return
		}

		consent, err := h.deps.Services.Lgpd.GrantConsent(r.Context(), sessionFrom(r), &req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Consentimento registrado", consent)
	}
}

// ListLgpdConsents handles GET /api/lgpd/consents
func (h *Handlers) ListLgpdConsents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		consents, err := h.deps.Services.Lgpd.ListConsents(r.Context(), sessionFrom(r))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", consents)
	}
}

// RevokeLgpdConsent handles DELETE /api/lgpd/consents/{id}. Subjects can
// only revoke their own consents.
func (h *Handlers) RevokeLgpdConsent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := h.deps.Services.Lgpd.RevokeConsent(r.Context(), sessionFrom(r), chi.URLParam(r, "id")); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Consentimento revogado", nil)
	}
}

// CreateLgpdRequest handles POST /api/lgpd/requests
func (h *Handlers) CreateLgpdRequest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.LgpdRequestRequest
		if !decodeBody(w, r, initTime, &req) {
			return
		}

		request, err := h.deps.Services.Lgpd.CreateRequest(r.Context(), sessionFrom(r), &req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Solicitação registrada", request)
	}
}

// ListLgpdRequests handles GET /api/lgpd/requests
func (h *Handlers) ListLgpdRequests() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		requests, err := h.deps.Services.Lgpd.ListRequests(r.Context(), sessionFrom(r))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", requests)
	}
}

// LgpdMyData handles GET /api/lgpd/my-data
func (h *Handlers) LgpdMyData() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		data, err := h.deps.Services.Lgpd.MyData(r.Context(), sessionFrom(r))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", data)
	}
}

// LgpdExport handles GET /api/lgpd/export?format=json|csv|pdf and streams
// the rendered file directly.
func (h *Handlers) LgpdExport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		format := r.URL.Query().Get("format")
		if format == "" {
			format = "json"
		}

		payload, contentType, err := h.deps.Services.Lgpd.Export(r.Context(), sessionFrom(r), format)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", "attachment; filename=meus-dados."+format)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(payload)
	}
}

// LgpdExportLink handles POST /api/lgpd/export-link, answering a signed
// single-use download URL.
func (h *Handlers) LgpdExportLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		format := r.URL.Query().Get("format")
		if format == "" {
			format = "json"
		}

		link, err := h.deps.Services.Lgpd.SignedExportLink(sessionFrom(r), format)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Link de exportação emitido", link)
	}
}

// LgpdExportDownload handles GET /api/lgpd/export/download?token=... The
// token carries its own authentication, so this route sits outside the
// session middleware. Each token downloads once.
func (h *Handlers) LgpdExportDownload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		token, err := h.deps.Signer.Validate(r.URL.Query().Get("token"))
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgUnauthenticated, http.StatusUnauthorized)
			return
		}

		user, err := h.deps.Repo.Users.GetByID(r.Context(), token.UserID)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		session := &common.SessionData{
			UserID:    user.ID,
			Username:  user.Username,
			Role:      user.Role,
			MemberID:  user.MemberID,
			VisitorID: user.VisitorID,
		}

		payload, contentType, err := h.deps.Services.Lgpd.Export(r.Context(), session, token.Format)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		h.deps.Signer.MarkUsed(token.TokenID)

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", "attachment; filename=meus-dados."+token.Format)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(payload)
	}
}
