package api

import (
	"net/http"
	"time"

	"igreja-digital/secretaria/internal/common"
	"igreja-digital/secretaria/internal/constants"
	"igreja-digital/secretaria/internal/models/dtos"
	gormModels "igreja-digital/secretaria/internal/models/gorm"

	"github.com/go-chi/chi/v5"
)

// CreateDiaconalHelp handles POST /api/diaconal-help
func (h *Handlers) CreateDiaconalHelp() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.DiaconalHelpRequest
		if !decodeBody(w, r, initTime, &req) {
			return
		}
		if req.Beneficiary == "" || req.Date == "" || req.Amount <= 0 {
			common.RespondError(w, initTime, nil, constants.MsgValidationFailed, http.StatusBadRequest)
			return
		}

		help := &gormModels.DiaconalHelp{
			Beneficiary: req.Beneficiary,
			Amount:      req.Amount,
			Date:        req.Date,
			Description: req.Description,
		}
		if err := h.deps.Repo.DiaconalHelp.Create(r.Context(), help); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Auxílio registrado", help)
	}
}

// ListDiaconalHelp handles GET /api/diaconal-help
func (h *Handlers) ListDiaconalHelp() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		entries, err := h.deps.Repo.DiaconalHelp.List(r.Context())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", entries)
	}
}

// UpdateDiaconalHelp handles PUT /api/diaconal-help/{id}
func (h *Handlers) UpdateDiaconalHelp() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.DiaconalHelpRequest
		if !decodeBody(w, r, initTime, &req) {
			return
		}
		if req.Beneficiary == "" || req.Date == "" || req.Amount <= 0 {
			common.RespondError(w, initTime, nil, constants.MsgValidationFailed, http.StatusBadRequest)
			return
		}

		help := &gormModels.DiaconalHelp{
			ID:          chi.URLParam(r, "id"),
			Beneficiary: req.Beneficiary,
			Amount:      req.Amount,
			Date:        req.Date,
			Description: req.Description,
		}
		if err := h.deps.Repo.DiaconalHelp.Update(r.Context(), help); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Auxílio atualizado", help)
	}
}

// DeleteDiaconalHelp handles DELETE /api/diaconal-help/{id}
func (h *Handlers) DeleteDiaconalHelp() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := h.deps.Repo.DiaconalHelp.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Auxílio removido", nil)
	}
}
