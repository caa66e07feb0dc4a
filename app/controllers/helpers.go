package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"inkpress/app/apperr"
)

// statusForKind maps the error taxonomy onto HTTP status codes.
func statusForKind(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation, apperr.KindEmptyPrompt:
		return http.StatusBadRequest
	case apperr.KindAuthorization:
		return http.StatusUnauthorized
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindUpstream:
		return http.StatusBadGateway
	case apperr.KindUpstreamTimeout:
		return http.StatusGatewayTimeout
	case apperr.KindStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func sendJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

// sendError writes the structured failure envelope. Internal detail is
// logged, never leaked to the client.
func sendError(w http.ResponseWriter, err error) {
	kind := apperr.KindOf(err)
	status := statusForKind(kind)

	message := "internal error"
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
	} else {
		slog.Error("unclassified handler error", "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
		"kind":    kind.String(),
	})
}

// credential extracts the raw token: clients send it as the whole
// Authorization header value, no scheme prefix.
func credential(r *http.Request) string {
	return r.Header.Get("Authorization")
}
