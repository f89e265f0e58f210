package api

import (
	"net/http"
	"time"

	"igreja-digital/secretaria/internal/common"
	"igreja-digital/secretaria/internal/models/dtos"

	"github.com/go-chi/chi/v5"
)

// CreateCatechumen handles POST /api/catechumens. When the record is created
// already at the final stage the promotion runs in the same call.
func (h *Handlers) CreateCatechumen() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CatechumenRequest
		if !decodeBody(w, r, initTime, &req) {
			return
		}

		catechumen, promotion, err := h.deps.Services.Catechumen.Create(r.Context(), &req, actorID(r))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		resp := dtos.CatechumenUpdateResponse{Catechumen: catechumen}
		if promotion != nil && promotion.MemberCreated {
			resp.MemberCreated = true
			resp.MemberID = promotion.MemberID
			resp.MemberName = promotion.MemberName
		}

		common.RespondSuccess(w, initTime, "Catecúmeno criado", resp)
	}
}

// ListCatechumens handles GET /api/catechumens
func (h *Handlers) ListCatechumens() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		catechumens, err := h.deps.Services.Catechumen.List(r.Context())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", catechumens)
	}
}

// GetCatechumen handles GET /api/catechumens/{id}
func (h *Handlers) GetCatechumen() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		catechumen, err := h.deps.Services.Catechumen.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", catechumen)
	}
}

// UpdateCatechumen handles PUT /api/catechumens/{id}. Moving the stage to
// its final value creates the corresponding member record.
func (h *Handlers) UpdateCatechumen() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CatechumenRequest
		if !decodeBody(w, r, initTime, &req) {
			return
		}

		catechumen, promotion, err := h.deps.Services.Catechumen.Update(r.Context(), chi.URLParam(r, "id"), &req, actorID(r))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		resp := dtos.CatechumenUpdateResponse{Catechumen: catechumen}
		if promotion != nil && promotion.MemberCreated {
			resp.MemberCreated = true
			resp.MemberID = promotion.MemberID
			resp.MemberName = promotion.MemberName
		}

		common.RespondSuccess(w, initTime, "Catecúmeno atualizado", resp)
	}
}

// DeleteCatechumen handles DELETE /api/catechumens/{id}
func (h *Handlers) DeleteCatechumen() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := h.deps.Services.Catechumen.Delete(r.Context(), chi.URLParam(r, "id"), actorID(r)); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Catecúmeno removido", nil)
	}
}
