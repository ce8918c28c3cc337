// Package responsewriter records what a handler wrote so middleware can log,
// measure and trace the response after the fact.
package responsewriter

import "net/http"

// ResponseWriter captures the status code and body size of a response.
type ResponseWriter struct {
	http.ResponseWriter
	status  int
	bytes   int
	started bool
}

// Wrap returns a recorder around w. The status defaults to 200, which is what
// net/http sends when a handler writes a body without calling WriteHeader.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader forwards only the first call.
func (w *ResponseWriter) WriteHeader(code int) {
	if w.started {
		return
	}
	w.status = code
	w.started = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.started {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (w *ResponseWriter) StatusCode() int { return w.status }

func (w *ResponseWriter) BytesWritten() int { return w.bytes }

// Started reports whether the status line has gone out. After that point an
// error response can no longer replace what the client received.
func (w *ResponseWriter) Started() bool { return w.started }

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *ResponseWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
