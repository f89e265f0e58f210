package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"igreja-digital/secretaria/internal/common"
	"igreja-digital/secretaria/internal/constants"
	"igreja-digital/secretaria/internal/db/repositories"
	"igreja-digital/secretaria/internal/logging"
	"igreja-digital/secretaria/internal/services"
)

// decodeBody parses a JSON request body, answering 400 on malformed input.
// Returns false when the request was already answered.
func decodeBody(w http.ResponseWriter, r *http.Request, initTime time.Time, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		common.RespondError(w, initTime, err, constants.MsgValidationFailed, http.StatusBadRequest)
		return false
	}
	return true
}

// decodeLenient parses an optional JSON body, ignoring an empty or absent one.
func decodeLenient(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == io.EOF {
		return nil
	}
	return err
}

// respondServiceError maps service-layer errors onto the HTTP taxonomy.
// Unrecognized errors become a 500 with a generic message; the detail only
// goes to the log.
func respondServiceError(w http.ResponseWriter, initTime time.Time, err error) {
	var verr *services.ValidationError

	switch {
	case errors.As(err, &verr):
		common.RespondError(w, initTime, err, verr.Error(), http.StatusBadRequest)
	case errors.Is(err, repositories.ErrNotFound):
		common.RespondError(w, initTime, err, constants.MsgNotFound, http.StatusNotFound)
	case errors.Is(err, services.ErrInvalidCredentials):
		common.RespondError(w, initTime, err, constants.MsgInvalidCredentials, http.StatusUnauthorized)
	case errors.Is(err, services.ErrLoanLinkedExpense):
		common.RespondError(w, initTime, err, constants.MsgLoanLinkedExpense, http.StatusForbidden)
	case errors.Is(err, services.ErrUnsupportedFormat):
		common.RespondError(w, initTime, err, constants.MsgExportUnsupported, http.StatusBadRequest)
	case errors.Is(err, services.ErrPdfStub):
		common.RespondError(w, initTime, err, constants.MsgPdfExportStub, http.StatusNotImplemented)
	default:
		logging.Error("Handler failed", "error", err.Error())
		common.RespondError(w, initTime, nil, constants.MsgInternalError, http.StatusInternalServerError)
	}
}
