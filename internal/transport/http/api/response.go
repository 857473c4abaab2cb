package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorEnvelope struct {
	Error     Error  `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

// JSON writes the payload as-is so success bodies keep their public shape
// (for example {"total": 12}).
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func Fail(w http.ResponseWriter, status int, code, message, requestID string) {
	JSON(w, status, ErrorEnvelope{Error: Error{Code: code, Message: message}, RequestID: requestID})
}
