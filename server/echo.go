package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// EchoResponse is the acknowledgment envelope returned to POST clients
type EchoResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// handleEcho accumulates a POST body, parses it as JSON and returns it
// wrapped in an acknowledgment envelope. Bodies over the configured cap
// are rejected with 413, malformed JSON with 400.
func (s *Server) handleEcho(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes)
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.logger.Warning("Rejected oversize body from %s (limit %d bytes)",
				r.RemoteAddr, s.config.MaxBodyBytes)
			s.writeText(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		s.writeText(w, http.StatusBadRequest, "Error reading request body")
		return
	}

	var parsed interface{}
	if err := json.Unmarshal(data, &parsed); err != nil {
		s.logger.Warning("Invalid JSON from %s: %v", r.RemoteAddr, err)
		s.writeText(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	s.writeJSON(w, http.StatusCreated, EchoResponse{
		Message: "Datos recibidos",
		Data:    parsed,
	})
}
