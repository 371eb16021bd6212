package handler

// Response helpers: every handler sends JSON through writeJSON and maps
// domain errors through writeError, so the status-code policy lives in
// exactly one place.
//
// STATUS CODE POLICY:
// The API reports validation failures and storage outages as 411 with the
// legacy body shapes clients already parse ({"message":"Incorrect inputs",
// "cause":...} and {"msg":"Something went wrong"}). Typed persistence
// errors get their own codes instead of collapsing into the generic 411:
// missing rows are 404, duplicate emails 409, ownership rejections 403.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/blog-platform/internal/apperror"
)

// validationResponse is the 411 body for a request that failed its schema.
// Cause carries only the first violation to keep responses compact.
type validationResponse struct {
	Message string `json:"message"`
	Cause   string `json:"cause"`
}

type errorResponse struct {
	Msg string `json:"msg"`
}

// writeJSON sends data as a JSON response with the given status. Headers and
// status must go out before the body — Encode writes immediately.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already sent; all we can do is log.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeValidation sends the 411 "Incorrect inputs" body with the first
// violation as the cause.
func writeValidation(w http.ResponseWriter, cause string) {
	writeJSON(w, http.StatusLengthRequired, validationResponse{
		Message: "Incorrect inputs",
		Cause:   cause,
	})
}

// writeError maps a domain error to an HTTP response.
//
// errors.Is walks the wrap chain, so services can annotate repository
// errors freely without breaking the mapping. Anything that isn't a typed
// apperror — including ErrUnavailable — becomes the generic 411 body; raw
// driver errors never reach the client.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		switch {
		case errors.Is(err, apperror.ErrValidation):
			writeValidation(w, appErr.Message)
			return
		case errors.Is(err, apperror.ErrNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse{Msg: appErr.Message})
			return
		case errors.Is(err, apperror.ErrConflict):
			writeJSON(w, http.StatusConflict, errorResponse{Msg: appErr.Message})
			return
		case errors.Is(err, apperror.ErrForbidden):
			writeJSON(w, http.StatusForbidden, errorResponse{Msg: appErr.Message})
			return
		case errors.Is(err, apperror.ErrUnauthenticated):
			writeJSON(w, http.StatusForbidden, errorResponse{Msg: "You are not signed in"})
			return
		}
	}

	writeJSON(w, http.StatusLengthRequired, errorResponse{Msg: "Something went wrong"})
}
