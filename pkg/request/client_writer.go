package request

import "net/http"

// ClientWriter wraps a http.ResponseWriter and records the status code
// written to it, as the status is not readable from the writer itself.
type ClientWriter struct {
	http.ResponseWriter

	statusCode  int
	wroteHeader bool
}

// NewClientWriter creates a new ClientWriter.
func NewClientWriter(w http.ResponseWriter) *ClientWriter {
	return &ClientWriter{
		ResponseWriter: w,
	}
}

// WriteHeader records the status code and forwards it.
func (w *ClientWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.statusCode = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write defaults the status to 200 when the handler never set one.
func (w *ClientWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// StatusCode returns the status code written to the response.
func (w *ClientWriter) StatusCode() int {
	if !w.wroteHeader {
		return http.StatusOK
	}
	return w.statusCode
}
