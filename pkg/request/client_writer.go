package request

import "net/http"

// ClientWriter wraps a http.ResponseWriter and records the status code that
// was written to it, so that middleware can report on it after the handler
// has run.
type ClientWriter struct {
	http.ResponseWriter

	// statusCode is the status code that was written to the client.
	statusCode int
}

// NewClientWriter creates a new ClientWriter.
func NewClientWriter(w http.ResponseWriter) *ClientWriter {
	return &ClientWriter{
		ResponseWriter: w,
	}
}

// WriteHeader records the status code and passes it to the underlying writer.
func (w *ClientWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write writes the body to the client. If no status code has been written
// yet, a 200 is recorded, matching the behaviour of the standard library.
func (w *ClientWriter) Write(b []byte) (int, error) {
	if w.statusCode == 0 {
		w.statusCode = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

// StatusCode returns the status code that was written to the client.
func (w *ClientWriter) StatusCode() int {
	return w.statusCode
}
