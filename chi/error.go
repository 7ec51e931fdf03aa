package chi

import (
	"encoding/json"
	"net/http"

	rustdocs "github.com/Michael-Obele/rust-docs"
)

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	rustdocs.EINVALID:  http.StatusBadRequest,
	rustdocs.ENOTFOUND: http.StatusNotFound,
	rustdocs.EUPSTREAM: http.StatusBadGateway,
	rustdocs.EINTERNAL: http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := rustdocs.ErrorCode(err)
	if code == rustdocs.EINTERNAL {
		s.Logger.Error("request failed",
			"request_id", RequestID(r.Context()),
			"path", r.URL.Path,
			"err", err,
		)
	}
	s.writeJSON(w, r, ErrorStatusCode(code), ErrorResponse{Error: rustdocs.ErrorMessage(err)})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("encode response", "request_id", RequestID(r.Context()), "err", err)
	}
}
