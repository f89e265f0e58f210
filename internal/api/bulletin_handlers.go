package api

import (
	"net/http"
	"time"

	"igreja-digital/secretaria/internal/common"
	"igreja-digital/secretaria/internal/models/dtos"

	"github.com/go-chi/chi/v5"
)

// CreateBulletin handles POST /api/bulletins
func (h *Handlers) CreateBulletin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.BulletinRequest
		if !decodeBody(w, r, initTime, &req) {
			return
		}

		bulletin, err := h.deps.Services.Bulletins.Create(r.Context(), &req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Boletim criado", bulletin)
	}
}

// ListBulletins handles GET /api/bulletins
func (h *Handlers) ListBulletins() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		bulletins, err := h.deps.Services.Bulletins.List(r.Context())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", bulletins)
	}
}

// UpdateBulletin handles PUT /api/bulletins/{id}
func (h *Handlers) UpdateBulletin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.BulletinRequest
		if !decodeBody(w, r, initTime, &req) {
			return
		}

		bulletin, err := h.deps.Services.Bulletins.Update(r.Context(), chi.URLParam(r, "id"), &req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Boletim atualizado", bulletin)
	}
}

// PublishBulletin handles POST /api/bulletins/{id}/publish
func (h *Handlers) PublishBulletin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		bulletin, err := h.deps.Services.Bulletins.Publish(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Boletim publicado", bulletin)
	}
}

// DeleteBulletin handles DELETE /api/bulletins/{id}
func (h *Handlers) DeleteBulletin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := h.deps.Services.Bulletins.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Boletim removido", nil)
	}
}
