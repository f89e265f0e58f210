package api

import (
	"net/http"
	"time"

	"igreja-digital/secretaria/internal/common"
	"igreja-digital/secretaria/internal/constants"
	gormModels "igreja-digital/secretaria/internal/models/gorm"
	"igreja-digital/secretaria/internal/models/dtos"

	"github.com/go-chi/chi/v5"
)

// CreateVisitor handles POST /api/visitors
func (h *Handlers) CreateVisitor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.VisitorRequest
		if !decodeBody(w, r, initTime, &req) {
			return
		}
		if req.FullName == "" || req.FirstSeen == "" {
			common.RespondError(w, initTime, nil, constants.MsgValidationFailed, http.StatusBadRequest)
			return
		}

		visitor := &gormModels.Visitor{
			FullName:  req.FullName,
			Phone:     req.Phone,
			Email:     req.Email,
			FirstSeen: req.FirstSeen,
			Notes:     req.Notes,
		}
		if err := h.deps.Repo.Visitors.Create(r.Context(), visitor); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Visitante criado", visitor)
	}
}

// ListVisitors handles GET /api/visitors
func (h *Handlers) ListVisitors() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		visitors, err := h.deps.Repo.Visitors.List(r.Context())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", visitors)
	}
}

// GetVisitor handles GET /api/visitors/{id}
func (h *Handlers) GetVisitor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		visitor, err := h.deps.Repo.Visitors.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", visitor)
	}
}

// UpdateVisitor handles PUT /api/visitors/{id}
func (h *Handlers) UpdateVisitor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.VisitorRequest
		if !decodeBody(w, r, initTime, &req) {
			return
		}
		if req.FullName == "" || req.FirstSeen == "" {
			common.RespondError(w, initTime, nil, constants.MsgValidationFailed, http.StatusBadRequest)
			return
		}

		visitor := &gormModels.Visitor{
			ID:        chi.URLParam(r, "id"),
			FullName:  req.FullName,
			Phone:     req.Phone,
			Email:     req.Email,
			FirstSeen: req.FirstSeen,
			Notes:     req.Notes,
		}
		if err := h.deps.Repo.Visitors.Update(r.Context(), visitor); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Visitante atualizado", visitor)
	}
}

// DeleteVisitor handles DELETE /api/visitors/{id}
func (h *Handlers) DeleteVisitor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := h.deps.Repo.Visitors.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Visitante removido", nil)
	}
}

// CreateSeminarian handles POST /api/seminarians
func (h *Handlers) CreateSeminarian() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.SeminarianRequest
		if !decodeBody(w, r, initTime, &req) {
			return
		}
		if req.MemberID == "" || req.Seminary == "" || req.StartYear == 0 {
			common.RespondError(w, initTime, nil, constants.MsgValidationFailed, http.StatusBadRequest)
			return
		}

		seminarian := &gormModels.Seminarian{
			MemberID:    req.MemberID,
			Seminary:    req.Seminary,
			StartYear:   req.StartYear,
			ExpectedEnd: req.ExpectedEnd,
			Notes:       req.Notes,
		}
		if err := h.deps.Repo.Seminarians.Create(r.Context(), seminarian); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Seminarista criado", seminarian)
	}
}

// ListSeminarians handles GET /api/seminarians
func (h *Handlers) ListSeminarians() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		seminarians, err := h.deps.Repo.Seminarians.List(r.Context())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", seminarians)
	}
}

// GetSeminarian handles GET /api/seminarians/{id}
func (h *Handlers) GetSeminarian() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		seminarian, err := h.deps.Repo.Seminarians.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", seminarian)
	}
}

// UpdateSeminarian handles PUT /api/seminarians/{id}
func (h *Handlers) UpdateSeminarian() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.SeminarianRequest
		if !decodeBody(w, r, initTime, &req) {
			return
		}
		if req.MemberID == "" || req.Seminary == "" || req.StartYear == 0 {
			common.RespondError(w, initTime, nil, constants.MsgValidationFailed, http.StatusBadRequest)
			return
		}

		seminarian := &gormModels.Seminarian{
			ID:          chi.URLParam(r, "id"),
			MemberID:    req.MemberID,
			Seminary:    req.Seminary,
			StartYear:   req.StartYear,
			ExpectedEnd: req.ExpectedEnd,
			Notes:       req.Notes,
		}
		if err := h.deps.Repo.Seminarians.Update(r.Context(), seminarian); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Seminarista atualizado", seminarian)
	}
}

// DeleteSeminarian handles DELETE /api/seminarians/{id}
func (h *Handlers) DeleteSeminarian() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := h.deps.Repo.Seminarians.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Seminarista removido", nil)
	}
}
