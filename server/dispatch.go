package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/echosite/echosite/logger"
	"github.com/echosite/echosite/utils"
)

// responseRecorder wraps a ResponseWriter to capture the status code and
// the number of body bytes written, for request logging
type responseRecorder struct {
	http.ResponseWriter
	status   int
	bytesOut int64
}

// WriteHeader records the status code
func (r *responseRecorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

// Write counts body bytes
func (r *responseRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytesOut += int64(n)
	return n, err
}

// dispatch routes each request by method: GET to the static responder,
// POST to the JSON echo handler, anything else to 405
func (s *Server) dispatch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	reqID := utils.GenerateRequestID("req")
	s.logger.RequestStarted()

	rec := &responseRecorder{ResponseWriter: w}

	switch r.Method {
	case http.MethodGet:
		s.handleStatic(rec, r)
	case http.MethodPost:
		s.handleEcho(rec, r)
	default:
		s.writeText(rec, http.StatusMethodNotAllowed, "Método no permitido")
	}

	bytesIn := r.ContentLength
	if bytesIn < 0 {
		bytesIn = 0
	}
	record := logger.RequestRecord{
		ID:         reqID,
		Method:     r.Method,
		Path:       r.URL.Path,
		RemoteAddr: r.RemoteAddr,
		Status:     rec.status,
		BytesIn:    bytesIn,
		BytesOut:   rec.bytesOut,
		Duration:   time.Since(start),
		FinishedAt: time.Now(),
	}
	s.logger.RequestFinished(record)
	s.logger.Debug("%s: %s %s from %s -> %d (%v)",
		reqID, r.Method, r.URL.Path, r.RemoteAddr, rec.status, record.Duration)
}

// writeText sends a plain-text response
func (s *Server) writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	io.WriteString(w, body)
}

// writeHTML sends an HTML response
func (s *Server) writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	io.WriteString(w, body)
}

// writeJSON marshals v and sends it as a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("Failed to encode response: %v", err)
		s.writeText(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
