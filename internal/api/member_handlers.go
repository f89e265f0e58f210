package api

import (
	"net/http"
	"time"

	"igreja-digital/secretaria/internal/common"
	"igreja-digital/secretaria/internal/models/dtos"

	"github.com/go-chi/chi/v5"
)

// CreateMember handles POST /api/members
func (h *Handlers) CreateMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.MemberRequest
		if !decodeBody(w, r, initTime, &req) {
			return
		}

		member, err := h.deps.Services.Members.Create(r.Context(), &req, actorID(r))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Membro criado", member)
	}
}

// ListMembers handles GET /api/members
func (h *Handlers) ListMembers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		members, err := h.deps.Services.Members.List(r.Context())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", members)
	}
}

// GetMember handles GET /api/members/{id}
func (h *Handlers) GetMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		member, err := h.deps.Services.Members.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", member)
	}
}

// UpdateMember handles PUT /api/members/{id}
func (h *Handlers) UpdateMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.MemberRequest
		if !decodeBody(w, r, initTime, &req) {
			return
		}

		member, err := h.deps.Services.Members.Update(r.Context(), chi.URLParam(r, "id"), &req, actorID(r))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Membro atualizado", member)
	}
}

// DeleteMember handles DELETE /api/members/{id}
func (h *Handlers) DeleteMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := h.deps.Services.Members.Delete(r.Context(), chi.URLParam(r, "id"), actorID(r)); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Membro removido", nil)
	}
}

// MemberAuditTrail handles GET /api/members/{id}/audit
func (h *Handlers) MemberAuditTrail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		entries, err := h.deps.Repo.Audit.ListByRecord(r.Context(), "members", chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", entries)
	}
}
